package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

// CSV renders rows as RFC 4180 CSV with a fixed date,title,description header.
// Dates stay ISO so spreadsheets sort them lexically.
func CSV(rows []domain.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Date.Format(time.DateOnly), r.Title, r.Description}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
