// Package export renders a compiled care plan into the downloadable formats
// the report endpoint serves: CSV, XLSX and PDF.
package export

import (
	"fmt"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

var csvHeader = []string{"date", "title", "description"}

// Filename builds the localized attachment name, e.g.
// "plano-pt-2026-08-31-30d.csv".
func Filename(locale domain.Locale, rangeDays int, format domain.ReportFormat, now time.Time) string {
	return fmt.Sprintf("plano-%s-%s-%dd.%s", locale, now.Format(time.DateOnly), rangeDays, format)
}

func localizeDate(locale domain.Locale, date time.Time) string {
	if locale == domain.LocaleEN {
		return fmt.Sprintf("%d/%d/%d", int(date.Month()), date.Day(), date.Year())
	}
	return date.Format("02/01/2006")
}

func planTitle(locale domain.Locale) string {
	if locale == domain.LocaleEN {
		return "Care Plan"
	}
	return "Plano de cuidados"
}
