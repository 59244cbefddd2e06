package amr

import (
	"github.com/360EntSecGroup-Skylar/excelize/v2"
)

// WriteXLSX saves the table as an Excel workbook for downstream manual
// inspection, one row per sample.
func (t *CountTable) WriteXLSX(path string) error {
	f := excelize.NewFile()
	sheet := "Sheet1"

	cell, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, "sample_id"); err != nil {
		return err
	}
	for j, id := range t.features {
		cell, err := excelize.CoordinatesToCellName(j+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, id); err != nil {
			return err
		}
	}
	for i, s := range t.samples {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, s); err != nil {
			return err
		}
		for j, id := range t.features {
			cell, err := excelize.CoordinatesToCellName(j+2, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, t.Get(s, id)); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}
