package utils

import (
	"strings"
	"time"
)

// LayoutLedgerDate is the fixed on-disk date format: zero-padded ISO
// date plus the weekday abbreviation ("2025-08-31-Sun"). Lexicographic
// order of these strings equals chronological order, which the range
// filters rely on. Do not change it without migrating stored rows.
const LayoutLedgerDate = "2006-01-02-Mon"

// ParseLedgerDate parses a stored ledger date in the local timezone.
func ParseLedgerDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutLedgerDate, strings.TrimSpace(s), time.Local)
}

// FormatLedgerDate renders t in the fixed ledger layout.
func FormatLedgerDate(t time.Time) string {
	return t.In(time.Local).Format(LayoutLedgerDate)
}

// TodayLedgerDate returns today's date in the ledger layout, used for
// the encoded_on audit stamp.
func TodayLedgerDate() string {
	return FormatLedgerDate(time.Now())
}

// NormalizeLedgerDate accepts either the full ledger layout or a bare
// YYYY-MM-DD and returns the canonical stored form.
func NormalizeLedgerDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := ParseLedgerDate(s); err == nil {
		return FormatLedgerDate(t), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return "", err
	}
	return FormatLedgerDate(t), nil
}
