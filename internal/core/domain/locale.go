package domain

import "strings"

// Locale is the closed set of languages the planner speaks. Portuguese is the
// product's home locale and the fallback for anything unrecognized.
type Locale string

const (
	LocalePT Locale = "pt"
	LocaleEN Locale = "en"
)

func ParseLocale(raw string) Locale {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "en") {
		return LocaleEN
	}
	return LocalePT
}

func (l Locale) String() string {
	return string(l)
}
