package export

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

// PDF renders the plan as an A4 document grouped by day, each day a dated
// heading followed by its bulleted tasks.
func PDF(rows []domain.ReportRow, locale domain.Locale, now time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(17, 17, 17)
	translate := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(17, 17, 17)
	doc.CellFormat(0, 10, translate(planTitle(locale)), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(85, 85, 85)
	doc.CellFormat(0, 6, localizeDate(locale, now), "", 1, "L", false, 0, "")
	doc.Ln(4)

	var currentDay string
	for _, r := range rows {
		day := r.Date.Format(time.DateOnly)
		if day != currentDay {
			currentDay = day
			doc.Ln(3)
			doc.SetFont("Helvetica", "BU", 12)
			doc.SetTextColor(15, 81, 50)
			doc.CellFormat(0, 7, localizeDate(locale, r.Date), "", 1, "L", false, 0, "")
		}

		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(17, 17, 17)
		doc.CellFormat(0, 6, translate("- "+r.Title), "", 1, "L", false, 0, "")
		if r.Description != "" {
			doc.SetFont("Helvetica", "", 9)
			doc.SetTextColor(85, 85, 85)
			doc.SetX(doc.GetX() + 6)
			doc.MultiCell(0, 5, translate(r.Description), "", "L", false)
			doc.SetX(17)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
