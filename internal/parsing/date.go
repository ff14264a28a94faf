// Package parsing normalizes raw tabular records into canonical articles.
package parsing

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrUnparsableDate is returned when a date value matches none of the
// supported formats. Callers decide the fallback policy; ParseDate itself
// never substitutes a default.
var ErrUnparsableDate = errors.New("date matches no supported format")

// Textual layouts tried in fixed priority order. The ordering is a contract:
// an ambiguous value like 01/02/2024 binds to MM/DD/YYYY because that layout
// is tried before DD/MM/YYYY.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
}

// ParseDate parses a raw date cell into a calendar date. Textual formats are
// tried first; a bare numeric value is then interpreted as an Excel serial
// date, which is how date-typed cells arrive when the sheet carries no date
// style.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparsableDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrUnparsableDate
}
