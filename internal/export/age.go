package export

import (
	"strings"
	"time"
)

// dateLayouts are tried in order against the date strings captured from
// report text; formats vary between rendering systems. First parse wins,
// same policy as field matching.
var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	"20060102",
	"01/02/2006",
	"2 Jan 2006",
}

// parseDate parses a captured date string with the known layouts.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age computes the age in completed years at the reference date. It
// returns false when either date fails to parse; an unparseable date makes
// the age absent, never an error.
func Age(birthDate, referenceDate string) (int, bool) {
	birth, ok := parseDate(birthDate)
	if !ok {
		return 0, false
	}
	ref, ok := parseDate(referenceDate)
	if !ok {
		return 0, false
	}

	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age, true
}
