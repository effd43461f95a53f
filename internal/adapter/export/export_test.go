package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

var exportNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func sampleRows() []domain.ReportRow {
	return []domain.ReportRow{
		{
			Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Title:       "Regar: Tomate",
			Description: `He said, "water daily", then left`,
		},
		{
			Date:  time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			Title: "Podar: Figueira",
		},
	}
}

func TestCSV_QuotesRoundTrip(t *testing.T) {
	data, err := CSV(sampleRows())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"date", "title", "description"}, records[0])
	require.Equal(t, []string{"2026-09-01", "Regar: Tomate", `He said, "water daily", then left`}, records[1])
	require.Equal(t, []string{"2026-09-02", "Podar: Figueira", ""}, records[2])
}

func TestCSV_EmptyPlanKeepsHeader(t *testing.T) {
	data, err := CSV(nil)
	require.NoError(t, err)
	require.Equal(t, "date,title,description\n", string(data))
}

func TestXLSX_RowsReadBack(t *testing.T) {
	data, err := XLSX(sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"date", "title", "description"}, rows[0])
	require.Equal(t, "Regar: Tomate", rows[1][1])
}

func TestPDF_ProducesDocument(t *testing.T) {
	data, err := PDF(sampleRows(), domain.LocalePT, exportNow)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFilename(t *testing.T) {
	require.Equal(t, "plano-pt-2026-08-31-30d.csv",
		Filename(domain.LocalePT, 30, domain.ReportFormatCSV, exportNow))
	require.Equal(t, "plano-en-2026-08-31-7d.pdf",
		Filename(domain.LocaleEN, 7, domain.ReportFormatPDF, exportNow))
}
