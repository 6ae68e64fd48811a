package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timestampLayout matches the export's "15/11/2025 21:37:10" encoding.
const timestampLayout = "02/01/2006 15:04:05"

// ParseTimestamp converts an export timestamp into a naive local time.
// Empty or malformed input yields nil, never an error.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(timestampLayout, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// ParseDecimal converts a pt-BR formatted amount ("1.234,56") into a decimal.
// Dots are thousands separators and are stripped before the comma becomes the
// decimal point. Any parse failure yields zero; downstream consumers must
// read zero as "unparseable", not "free". This mirrors the behavior of every
// import run to date.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseBool converts the export's flag encoding. Unspecified means true (the
// platform assumes physical goods); otherwise only the known affirmative
// spellings count.
func ParseBool(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "sim", "yes", "true", "1":
		return true
	}
	return false
}
