package tabular_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/tabular"
)

func TestParseCSV(t *testing.T) {
	t.Parallel()

	input := "Email, DATE ,Amount,Type,Status\n" +
		"john@example.com,15/01/2025,50,credit_purchase,Paid\n" +
		"jane@example.com,20/02/2025,120,video_generation,pending\n"

	records, err := tabular.NewParser().Parse("transactions.csv", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, "john@example.com", records[0]["email"])
	require.Equal(t, "15/01/2025", records[0]["date"])
	require.Equal(t, "50", records[0]["amount"])
	require.Equal(t, "pending", records[1]["status"])
}

func TestParseCSVShortRows(t *testing.T) {
	t.Parallel()

	input := "email,date,amount,type,status\njohn@example.com,15/01/2025\n"

	records, err := tabular.NewParser().Parse("transactions.csv", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "", records[0]["status"])
}

func TestParseEmptyCSV(t *testing.T) {
	t.Parallel()

	records, err := tabular.NewParser().Parse("empty.csv", strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestParseUnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := tabular.NewParser().Parse("notes.pdf", strings.NewReader("x"))
	require.ErrorIs(t, err, transaction.ErrUnsupportedFileType)
}

func TestParseWorkbook(t *testing.T) {
	t.Parallel()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	rows := [][]any{
		{"Email", "Date", "Amount", "Type", "Status"},
		{"john@example.com", "15/01/2025", "50", "credit_purchase", "Paid"},
		{"", "", "", "", ""},
		{"jane@example.com", "20/02/2025", "120", "video_generation", "pending"},
	}
	for i, row := range rows {
		cells := row
		require.NoError(t, workbook.SetSheetRow(sheet, cellRef(i+1), &cells))
	}

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)

	records, perr := tabular.NewParser().Parse("transactions.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, perr)
	require.Len(t, records, 2, "fully empty rows are skipped")
	require.Equal(t, "john@example.com", records[0]["email"])
	require.Equal(t, "120", records[1]["amount"])
}

func TestParseWorkbookGarbage(t *testing.T) {
	t.Parallel()

	_, err := tabular.NewParser().Parse("transactions.xlsx", strings.NewReader("not a zip archive"))
	require.ErrorIs(t, err, transaction.ErrUnreadableFile)
}

func TestTemplateCSVRoundTrips(t *testing.T) {
	t.Parallel()

	data, err := tabular.TemplateCSV()
	require.NoError(t, err)

	records, err := tabular.NewParser().Parse("template.csv", bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, rec := range records {
		for _, column := range []string{"email", "date", "amount", "type", "status"} {
			require.Contains(t, rec, column)
		}
	}
}

func TestTemplateXLSXRoundTrips(t *testing.T) {
	t.Parallel()

	data, err := tabular.TemplateXLSX()
	require.NoError(t, err)

	records, err := tabular.NewParser().Parse("template.xlsx", bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "john@example.com", records[0]["email"])
}

func cellRef(row int) string {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		panic(errors.New("bad cell coordinates"))
	}
	return ref
}
