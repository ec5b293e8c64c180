// Package dateutils parses the dates printed on payment orders.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts used by payment orders and exports.
const (
	DateLayoutRussian = "02.01.2006"
	DateLayoutShort   = "2.1.2006"
	DateLayoutISO     = "2006-01-02"
)

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString trims the string and drops embedded whitespace, which the
// region text of a date cell may contain when it wraps.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), "")
}

// ParseRussianDate parses a dd.mm.yyyy date. Single-digit day and month are accepted.
func ParseRussianDate(dateStr string) (time.Time, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range []string{DateLayoutRussian, DateLayoutShort} {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseOptionalDate returns nil for an empty string and the parsed date otherwise.
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	if CleanDateString(dateStr) == "" {
		return nil, nil
	}
	t, err := ParseRussianDate(dateStr)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToRussianFormat formats a date as dd.mm.yyyy; the zero time yields "".
func ToRussianFormat(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutRussian)
}
