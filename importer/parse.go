package importer

import (
	"custdesc/customer"
	"log/slog"
	"strings"
)

type ParseResult struct {
	Shape       HeaderShape
	Records     []customer.Record
	RowsRead    int
	RowsSkipped int
}

// Parse turns loaded lines into customer records. The first line is the
// header; blank lines are ignored and rows that do not fit the header shape
// are skipped without error.
func Parse(lines []string) ParseResult {
	if len(lines) == 0 {
		return ParseResult{}
	}

	shape := DetectShape(strings.TrimSpace(lines[0]))
	result := ParseResult{
		Shape:   shape,
		Records: make([]customer.Record, 0, len(lines)-1),
	}

	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineNumber := i + 2
		result.RowsRead++

		fields := strings.Split(line, fieldSeparator)
		values, ok := shape.mapFields(fields)
		if !ok {
			result.RowsSkipped++
			slog.Debug("skipping row with unexpected field count",
				"line", lineNumber,
				"shape", shape.Kind.String(),
				"fields", len(fields),
				"columns", len(shape.Columns),
			)
			continue
		}

		result.Records = append(result.Records, customer.Record{LineNumber: lineNumber, Values: values})
	}

	slog.Debug("parsed customer records",
		"shape", shape.Kind.String(),
		"records", len(result.Records),
		"skipped", result.RowsSkipped,
	)
	return result
}
