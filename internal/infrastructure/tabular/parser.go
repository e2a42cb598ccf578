// Package tabular reads delimited-text and spreadsheet uploads into
// header-keyed records.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
)

// Parser turns an uploaded file into records keyed by lowercased, trimmed
// header names. The physical encoding is picked by file extension; both
// encodings produce the same record shape.
type Parser struct{}

func NewParser() Parser {
	return Parser{}
}

func (Parser) Parse(filename string, r io.Reader) ([]transaction.Record, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xls":
		return parseWorkbook(r)
	default:
		return nil, transaction.ErrUnsupportedFileType
	}
}

func parseCSV(r io.Reader) ([]transaction.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transaction.ErrUnreadableFile, err)
	}

	keys := headerKeys(header)

	var records []transaction.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", transaction.ErrUnreadableFile, err)
		}
		records = append(records, buildRecord(keys, row))
	}

	return records, nil
}

func parseWorkbook(r io.Reader) ([]transaction.Record, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transaction.ErrUnreadableFile, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, transaction.ErrNoSheets
	}

	// First sheet only; any others are ignored.
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transaction.ErrUnreadableFile, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	keys := headerKeys(rows[0])

	var records []transaction.Record
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		records = append(records, buildRecord(keys, row))
	}

	return records, nil
}

func headerKeys(header []string) []string {
	keys := make([]string, len(header))
	for i, name := range header {
		keys[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return keys
}

func buildRecord(keys []string, row []string) transaction.Record {
	rec := make(transaction.Record, len(keys))
	for i, key := range keys {
		if key == "" {
			continue
		}
		if i < len(row) {
			rec[key] = strings.TrimSpace(row[i])
		} else {
			rec[key] = ""
		}
	}
	return rec
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
