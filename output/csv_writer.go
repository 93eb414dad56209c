package output

import (
	"custdesc/describe"
	"encoding/csv"
	"fmt"
	"os"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, descriptions []describe.Description) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(tableHeaders()); err != nil {
		return 0, fmt.Errorf("write csv headers: %w", err)
	}

	for i, description := range descriptions {
		if err := writer.Write(tableRow(description)); err != nil {
			return i, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flush csv output: %w", err)
	}

	return len(descriptions), nil
}
