// Package clean contains the pure value transforms applied to raw scraped
// strings before record construction. Every transform is total: input that
// cannot be coerced yields nil rather than an error, since a missing or
// placeholder value on the page is expected for many asset types.
package clean

import (
	"strconv"
	"strings"
	"time"
)

// placeholders Yahoo renders when a field has no value for the asset type.
var placeholders = map[string]bool{
	"":          true,
	"-":         true,
	"--":        true,
	"n/a":       true,
	"n/a (n/a)": true,
}

// normalize strips currency and formatting noise so the remainder can be
// handed to strconv. Returns "" for placeholder values.
func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if placeholders[strings.ToLower(s)] {
		return ""
	}
	r := strings.NewReplacer("$", "", ",", "", "%", "", "(", "", ")", "", "+", "")
	s = strings.TrimSpace(r.Replace(s))
	if placeholders[strings.ToLower(s)] {
		return ""
	}
	return s
}

// Float coerces a raw value like "$1,234.56", "+0.57%" or "N/A" to a float.
func Float(raw string) *float64 {
	s := normalize(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Int coerces a raw value to an integer, accepting the magnitude suffixes
// Yahoo uses for large quantities ("1.431T", "305.55B", "2.1M", "800K").
func Int(raw string) *int64 {
	s := normalize(raw)
	if s == "" {
		return nil
	}

	mult := float64(1)
	switch {
	case strings.HasSuffix(s, "T"):
		mult, s = 1e12, strings.TrimSuffix(s, "T")
	case strings.HasSuffix(s, "B"):
		mult, s = 1e9, strings.TrimSuffix(s, "B")
	case strings.HasSuffix(s, "M"):
		mult, s = 1e6, strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		mult, s = 1e3, strings.TrimSuffix(s, "K")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	v := int64(f * mult)
	return &v
}

// dateFormats in the order they appear on summary pages.
var dateFormats = []string{
	"Jan 02, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

// Date parses a date such as "Aug 05, 2020". Earnings dates are rendered as
// a "start - end" window; the start date is used.
func Date(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, " - "); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}
	if s == "" || placeholders[strings.ToLower(s)] {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// segment extracts one half of a two-valued raw string. An input without
// exactly two segments yields "" so the downstream coercion returns nil.
func segment(raw, sep string, second bool) string {
	parts := strings.SplitN(strings.TrimSpace(raw), sep, 2)
	if len(parts) != 2 {
		return ""
	}
	if second {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(parts[0])
}

// FirstOfDash extracts the first segment of a "210.00 - 215.00" style range.
func FirstOfDash(raw string) string { return segment(raw, " - ", false) }

// SecondOfDash extracts the second segment of a "210.00 - 215.00" style range.
func SecondOfDash(raw string) string { return segment(raw, " - ", true) }

// FirstOfSpace extracts the value part of a "0.82 (0.55%)" style pair.
func FirstOfSpace(raw string) string { return segment(raw, " ", false) }

// SecondOfSpace extracts the parenthesized part of a "0.82 (0.55%)" style pair.
func SecondOfSpace(raw string) string { return segment(raw, " ", true) }

// FirstOfX extracts the price part of a "212.69 x 1000" style pair.
func FirstOfX(raw string) string { return segment(raw, " x ", false) }

// SecondOfX extracts the size part of a "212.69 x 1000" style pair.
func SecondOfX(raw string) string { return segment(raw, " x ", true) }
