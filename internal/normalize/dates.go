package normalize

import (
	"strings"
	"time"
)

// serialEpoch is day 0 of the spreadsheet date-serial system (1900 system,
// compatible with the Lotus leap-year bug): 1899-12-30.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

const isoDate = "2006-01-02"

// Date layouts seen in hospital roster files. Ambiguous all-numeric layouts
// are interpreted day-first, matching the Chilean convention.
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ISODateFromString normalizes a date string to YYYY-MM-DD. A value that
// already starts with an ISO calendar date passes through date portion only.
// Returns nil when the input is blank or unparseable.
func ISODateFromString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if hasISOPrefix(s) {
		d := s[:10]
		return &d
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := t.Format(isoDate)
			return &d
		}
	}
	return nil
}

// ISODateFromSerial converts a spreadsheet date serial to YYYY-MM-DD.
// Fractional day parts (time of day) are truncated. Serials before day 1
// are rejected.
func ISODateFromSerial(serial float64) *string {
	if serial < 1 {
		return nil
	}
	d := serialEpoch.AddDate(0, 0, int(serial)).Format(isoDate)
	return &d
}

// CivilDate truncates t to its calendar date in UTC.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hasISOPrefix(s string) bool {
	if len(s) < 10 {
		return false
	}
	for i, c := range s[:10] {
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
