package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var templateHeader = []string{"email", "date", "amount", "type", "status"}

var templateRows = [][]string{
	{"john@example.com", "15/01/2025", "50", "credit_purchase", "paid"},
	{"jane@example.com", "20/02/2025", "120", "video_generation", "pending"},
	{"mike@example.com", "05/03/2025", "75", "credit_purchase", "failed"},
}

// TemplateCSV renders the import template: the five expected columns and
// three example rows.
func TemplateCSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(templateHeader); err != nil {
		return nil, fmt.Errorf("write template header: %w", err)
	}
	for _, row := range templateRows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write template row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush template: %w", err)
	}

	return buf.Bytes(), nil
}

// TemplateXLSX renders the same template as a single-sheet workbook.
func TemplateXLSX() ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)

	header := make([]any, len(templateHeader))
	for i, name := range templateHeader {
		header[i] = name
	}
	if err := workbook.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write template header: %w", err)
	}

	for i, row := range templateRows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		axis := fmt.Sprintf("A%d", i+2)
		if err := workbook.SetSheetRow(sheet, axis, &cells); err != nil {
			return nil, fmt.Errorf("write template row: %w", err)
		}
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render template workbook: %w", err)
	}
	return buf.Bytes(), nil
}
