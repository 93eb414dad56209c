package output

import (
	"custdesc/customer"
	"custdesc/describe"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleDescriptions() []describe.Description {
	return []describe.Description{
		{
			Record: customer.Record{LineNumber: 2, Values: map[string]string{
				customer.FieldName:    "Ann Lee",
				customer.FieldDevice:  "mobile",
				customer.FieldBrowser: "Chrome",
				customer.FieldGender:  "female",
				customer.FieldAge:     "29",
				customer.FieldAmount:  "150",
				customer.FieldRegion:  "EU",
			}},
			Text: "first sentence, with a comma.\n",
		},
		{
			Record: customer.Record{LineNumber: 4, Values: map[string]string{
				customer.FieldName: "Bob",
			}},
			Text: "second sentence.\n",
		},
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format  string
		want    Writer
		wantErr bool
	}{
		{format: "", want: &TextWriter{}},
		{format: "Text", want: &TextWriter{}},
		{format: "csv", want: &CSVWriter{}},
		{format: " XLSX ", want: &ExcelWriter{}},
		{format: "excel", want: &ExcelWriter{}},
		{format: "pdf", wantErr: true},
	}

	for _, tc := range tests {
		writer, err := WriterForFormat(tc.format)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.format)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.format, err)
		}
		switch tc.want.(type) {
		case *TextWriter:
			if _, ok := writer.(*TextWriter); !ok {
				t.Fatalf("format %q: expected text writer, got %T", tc.format, writer)
			}
		case *CSVWriter:
			if _, ok := writer.(*CSVWriter); !ok {
				t.Fatalf("format %q: expected csv writer, got %T", tc.format, writer)
			}
		case *ExcelWriter:
			if _, ok := writer.(*ExcelWriter); !ok {
				t.Fatalf("format %q: expected excel writer, got %T", tc.format, writer)
			}
		}
	}
}

func TestTextWriter_OverwritesWithDescriptionsOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "descriptions.txt")
	if err := os.WriteFile(path, []byte("stale content that must disappear\n"), 0o644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	written, err := (&TextWriter{}).Write(path, sampleDescriptions())
	if err != nil {
		t.Fatalf("write descriptions: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 written descriptions, got %d", written)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "first sentence, with a comma.\nsecond sentence.\n"
	if string(content) != want {
		t.Fatalf("unexpected output:\nwant %q\ngot  %q", want, string(content))
	}
}

func TestTextWriter_ReportsCreateFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	written, err := (&TextWriter{}).Write(path, sampleDescriptions())
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
	if written != 0 {
		t.Fatalf("expected 0 written descriptions, got %d", written)
	}
}

func TestCSVWriter_WritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "descriptions.csv")
	written, err := (&CSVWriter{}).Write(path, sampleDescriptions())
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 written rows, got %d", written)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "line" || rows[0][1] != customer.FieldName || rows[0][8] != "description" {
		t.Fatalf("unexpected header: %q", rows[0])
	}
	if rows[1][0] != "2" || rows[1][1] != "Ann Lee" || rows[1][8] != "first sentence, with a comma." {
		t.Fatalf("unexpected first row: %q", rows[1])
	}
	if rows[2][1] != "Bob" || rows[2][7] != "" {
		t.Fatalf("expected missing fields as empty cells, got %q", rows[2])
	}
}

func TestExcelWriter_WritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "descriptions.xlsx")
	written, err := (&ExcelWriter{}).Write(path, sampleDescriptions())
	if err != nil {
		t.Fatalf("write excel: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 written rows, got %d", written)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open excel: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][8] != "description" {
		t.Fatalf("unexpected header: %q", rows[0])
	}
	if rows[1][5] != "29" || rows[1][8] != "first sentence, with a comma." {
		t.Fatalf("unexpected first row: %q", rows[1])
	}
}
