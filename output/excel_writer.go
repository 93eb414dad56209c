package output

import (
	"custdesc/describe"
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, descriptions []describe.Description) (int, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	for col, header := range tableHeaders() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return 0, fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, description := range descriptions {
		row := i + 2
		for col, value := range tableRow(description) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return i, fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return 0, fmt.Errorf("save excel output %s: %w", path, err)
	}

	return len(descriptions), nil
}
