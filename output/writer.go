package output

import (
	"custdesc/customer"
	"custdesc/describe"
	"fmt"
	"strconv"
	"strings"
)

type Writer interface {
	Write(path string, descriptions []describe.Description) (int, error)
}

func SupportedFormats() []string {
	return []string{"text", "csv", "excel"}
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "", "text", "txt":
		return &TextWriter{}, nil
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// tableHeaders is shared by the tabular writers.
func tableHeaders() []string {
	headers := make([]string, 0, len(customer.CanonicalFields)+2)
	headers = append(headers, "line")
	headers = append(headers, customer.CanonicalFields[:]...)
	return append(headers, "description")
}

func tableRow(description describe.Description) []string {
	row := make([]string, 0, len(customer.CanonicalFields)+2)
	row = append(row, strconv.Itoa(description.Record.LineNumber))
	for _, field := range customer.CanonicalFields {
		row = append(row, description.Record.GetOr(field, ""))
	}
	return append(row, strings.TrimSuffix(description.Text, "\n"))
}
