package storage

import (
	"custdesc/customer"
	"custdesc/describe"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

var ErrRunNotFound = errors.New("run not found")

// Run is one archived describe invocation.
type Run struct {
	ID          int64
	InputPath   string
	OutputPath  string
	Format      string
	Language    string
	HeaderShape string
	RowsRead    int
	RowsSkipped int
	Records     int
	CreatedAt   time.Time
}

// StoredDescription is one archived sentence of a run.
type StoredDescription struct {
	RunID      int64
	Position   int
	LineNumber int
	Name       string
	Text       string
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	input_path TEXT NOT NULL,
	output_path TEXT NOT NULL,
	format TEXT NOT NULL,
	language TEXT NOT NULL,
	header_shape TEXT NOT NULL,
	rows_read INTEGER NOT NULL CHECK(rows_read >= 0),
	rows_skipped INTEGER NOT NULL CHECK(rows_skipped >= 0),
	records INTEGER NOT NULL CHECK(records >= 0),
	created_at TEXT NOT NULL
);`,
		`
CREATE TABLE IF NOT EXISTS descriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	line_number INTEGER NOT NULL,
	customer_name TEXT NOT NULL,
	text TEXT NOT NULL,
	UNIQUE(run_id, position)
);`,
	}

	for _, statement := range statements {
		if _, err := s.db.Exec(statement); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// SaveRun stores run and its descriptions in one transaction and returns the
// new run ID.
func (s *SQLiteStore) SaveRun(run Run, descriptions []describe.Description) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	res, err := tx.Exec(`
INSERT INTO runs (
	input_path,
	output_path,
	format,
	language,
	header_shape,
	rows_read,
	rows_skipped,
	records,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		run.InputPath,
		run.OutputPath,
		run.Format,
		run.Language,
		run.HeaderShape,
		run.RowsRead,
		run.RowsSkipped,
		run.Records,
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("read run id: %w", err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO descriptions (
	run_id,
	position,
	line_number,
	customer_name,
	text
) VALUES (?, ?, ?, ?, ?);`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare description insert: %w", err)
	}
	defer stmt.Close()

	for i, description := range descriptions {
		if _, err := stmt.Exec(
			runID,
			i+1,
			description.Record.LineNumber,
			description.Record.GetOr(customer.FieldName, ""),
			description.Text,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert description %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return runID, nil
}

// ListRuns returns archived runs, newest first. A limit <= 0 returns all runs.
func (s *SQLiteStore) ListRuns(limit int) ([]Run, error) {
	query := `
SELECT id, input_path, output_path, format, language, header_shape, rows_read, rows_skipped, records, created_at
FROM runs
ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, 16)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

func (s *SQLiteStore) GetRun(id int64) (Run, error) {
	row := s.db.QueryRow(`
SELECT id, input_path, output_path, format, language, header_shape, rows_read, rows_skipped, records, created_at
FROM runs
WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	return run, err
}

// ListDescriptions returns the archived sentences of one run in output order.
func (s *SQLiteStore) ListDescriptions(runID int64) ([]StoredDescription, error) {
	if _, err := s.GetRun(runID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
SELECT run_id, position, line_number, customer_name, text
FROM descriptions
WHERE run_id = ?
ORDER BY position ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("query descriptions: %w", err)
	}
	defer rows.Close()

	out := make([]StoredDescription, 0, 64)
	for rows.Next() {
		var item StoredDescription
		if err := rows.Scan(&item.RunID, &item.Position, &item.LineNumber, &item.Name, &item.Text); err != nil {
			return nil, fmt.Errorf("scan description: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate descriptions: %w", err)
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run       Run
		createdAt string
	)
	if err := row.Scan(
		&run.ID,
		&run.InputPath,
		&run.OutputPath,
		&run.Format,
		&run.Language,
		&run.HeaderShape,
		&run.RowsRead,
		&run.RowsSkipped,
		&run.Records,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse run created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = parsed
	return run, nil
}
