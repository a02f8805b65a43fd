package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const columnWidth = 18

// sheet is one worksheet: a bold header row followed by data rows.
type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

func (s sheet) render() (content []byte, err error) {
	book := excelize.NewFile()
	defer func() {
		if closeErr := book.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	defaultSheet := book.GetSheetName(0)
	if err = book.SetSheetName(defaultSheet, s.name); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range s.headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}

		if err = book.SetCellValue(s.name, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to address header cell: %w", err)
	}

	if err = book.SetCellStyle(s.name, "A1", lastHeader, bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for r, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row: %w", err)
		}

		if err = book.SetSheetRow(s.name, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	lastColumn, err := excelize.ColumnNumberToName(len(s.headers))
	if err != nil {
		return nil, fmt.Errorf("failed to address column: %w", err)
	}

	if err = book.SetColWidth(s.name, "A", lastColumn, columnWidth); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
