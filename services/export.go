package services

import (
	"time"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook menyusun satu workbook xlsx: satu sheet bernama
// sheetName, baris pertama header kolom, lalu seluruh baris data sesuai
// urutan kolom.
func BuildWorkbook(sheetName string, columns []string, rows []map[string]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, col := range columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, exportValue(row[col])); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// exportValue menormalkan nilai sel: waktu ditulis sebagai teks RFC3339
// supaya kolom timestamp terbaca konsisten.
func exportValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.RFC3339)
	default:
		return v
	}
}
