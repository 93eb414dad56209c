package pipeline

import (
	"custdesc/describe"
	"custdesc/importer"
	"custdesc/output"
	"custdesc/storage"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Errors returned when a run stops early. The caller reports them as a
// graceful halt; every message has already been printed to Progress.
var (
	ErrNoInput     = errors.New("no input data")
	ErrNoRecords   = errors.New("no records could be parsed")
	ErrWriteFailed = errors.New("saving descriptions failed")
)

const DefaultPreviewCount = 3

const separator = "------------------------------------------------------------"

type Options struct {
	InputPath    string
	OutputPath   string
	Format       string
	Language     string
	PreviewCount int
	// ArchivePath enables the SQLite run archive when not empty.
	ArchivePath string
	Progress    io.Writer
}

type Summary struct {
	LinesLoaded   int
	Shape         importer.HeaderShape
	RowsRead      int
	RowsSkipped   int
	Descriptions  []describe.Description
	Written       int
	ArchivedRunID int64
}

// IsHalt reports whether err is one of the early-stop outcomes of Run rather
// than an invalid option.
func IsHalt(err error) bool {
	return errors.Is(err, ErrNoInput) || errors.Is(err, ErrNoRecords) || errors.Is(err, ErrWriteFailed)
}

// Run loads the input file, parses customer records, renders one description
// per record and writes them to the output file.
func Run(opts Options) (*Summary, error) {
	writer, err := output.WriterForFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	lang, err := describe.LanguageByCode(opts.Language)
	if err != nil {
		return nil, err
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	summary := &Summary{}

	fmt.Fprintf(progress, "\nLoading data from '%s'...\n", opts.InputPath)
	lines, err := importer.LoadLines(opts.InputPath)
	if err != nil {
		if errors.Is(err, importer.ErrInputNotFound) {
			fmt.Fprintf(progress, "File '%s' not found.\n", opts.InputPath)
		} else {
			fmt.Fprintf(progress, "Error reading file: %v\n", err)
		}
		slog.Debug("load input failed", "path", opts.InputPath, "error", err)
		return summary, fmt.Errorf("%w: %w", ErrNoInput, err)
	}
	if len(lines) == 0 {
		fmt.Fprintf(progress, "File '%s' is empty.\n", opts.InputPath)
		return summary, ErrNoInput
	}
	summary.LinesLoaded = len(lines)
	fmt.Fprintf(progress, "Lines loaded: %d\n", len(lines))

	fmt.Fprintln(progress, "\nParsing data...")
	parsed := importer.Parse(lines)
	summary.Shape = parsed.Shape
	summary.RowsRead = parsed.RowsRead
	summary.RowsSkipped = parsed.RowsSkipped
	fmt.Fprintf(progress, "Parsed successfully: %d records\n", len(parsed.Records))
	if len(parsed.Records) == 0 {
		fmt.Fprintln(progress, "Could not parse any records")
		return summary, ErrNoRecords
	}

	fmt.Fprintln(progress, "\nRendering descriptions...")
	summary.Descriptions = describe.NewRenderer(lang).RenderAll(parsed.Records)

	fmt.Fprintf(progress, "\nSaving descriptions to '%s'...\n", opts.OutputPath)
	written, err := writer.Write(opts.OutputPath, summary.Descriptions)
	summary.Written = written
	if err != nil {
		fmt.Fprintf(progress, "Save failed: %v\n", err)
		return summary, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	fmt.Fprintf(progress, "Saved %d descriptions\n", written)

	printPreview(progress, summary.Descriptions, opts.PreviewCount)
	fmt.Fprintf(progress, "\nTotal descriptions created: %d\n", len(summary.Descriptions))

	if strings.TrimSpace(opts.ArchivePath) != "" {
		runID, err := archiveRun(opts, lang.Code, summary)
		if err != nil {
			fmt.Fprintf(progress, "Warning: run was not archived: %v\n", err)
			slog.Warn("archive run failed", "db", opts.ArchivePath, "error", err)
		} else {
			summary.ArchivedRunID = runID
			fmt.Fprintf(progress, "Run archived as #%d in '%s'\n", runID, opts.ArchivePath)
		}
	}

	return summary, nil
}

func printPreview(w io.Writer, descriptions []describe.Description, count int) {
	if count > len(descriptions) {
		count = len(descriptions)
	}
	if count <= 0 {
		return
	}

	fmt.Fprintln(w, "\nSample descriptions:")
	fmt.Fprintln(w, separator)
	for i := 0; i < count; i++ {
		fmt.Fprintf(w, "\nSample %d:\n", i+1)
		fmt.Fprintln(w, descriptions[i].Text)
	}
	fmt.Fprintln(w, separator)
}

func archiveRun(opts Options, language string, summary *Summary) (int64, error) {
	store, err := storage.OpenSQLite(opts.ArchivePath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "text"
	}

	return store.SaveRun(storage.Run{
		InputPath:   opts.InputPath,
		OutputPath:  opts.OutputPath,
		Format:      format,
		Language:    language,
		HeaderShape: summary.Shape.Kind.String(),
		RowsRead:    summary.RowsRead,
		RowsSkipped: summary.RowsSkipped,
		Records:     len(summary.Descriptions),
	}, summary.Descriptions)
}
