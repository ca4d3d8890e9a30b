// Package experience computes true worked duration from a candidate's career
// history: it parses heterogeneous résumé date strings into month intervals,
// merges overlaps with a sweep line, and reports totals with a confidence signal.
package experience

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// presentTokens are end-date strings meaning "still employed".
var presentTokens = map[string]struct{}{
	"present": {},
	"current": {},
	"now":     {},
	"ongoing": {},
	"today":   {},
}

var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var (
	yearOnlyRe  = regexp.MustCompile(`^(\d{4})$`)
	yearMonthRe = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})(?:[-/.]\d{1,2})?$`)
	monthNameRe = regexp.MustCompile(`^([a-zA-Z]+)\.?,?\s+(\d{4})$`)
)

// MonthIndex converts a time to absolute months since year zero.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// ParseMonth parses one résumé date string into an absolute month index.
// Supported forms: "2021", "2021-03", "2021-03-15", "March 2021", and the
// present/current/now/ongoing/today tokens (resolved against now). Year-only
// dates resolve conservatively: January for starts, December for ends, so a
// "2020 - 2021" role is never credited with more than it states.
func ParseMonth(raw string, isEnd bool, now time.Time) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	if _, ok := presentTokens[s]; ok {
		return MonthIndex(now), true
	}

	if m := yearOnlyRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		if !plausibleYear(year) {
			return 0, false
		}
		month := 1
		if isEnd {
			month = 12
		}
		return year*12 + month - 1, true
	}

	if m := yearMonthRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if !plausibleYear(year) || month < 1 || month > 12 {
			return 0, false
		}
		return year*12 + month - 1, true
	}

	if m := monthNameRe.FindStringSubmatch(s); m != nil {
		month, ok := monthNames[m[1]]
		if !ok {
			return 0, false
		}
		year, _ := strconv.Atoi(m[2])
		if !plausibleYear(year) {
			return 0, false
		}
		return year*12 + month - 1, true
	}

	return 0, false
}

// plausibleYear rejects typos like "0202" without being opinionated about
// long careers.
func plausibleYear(year int) bool {
	return year >= 1950 && year <= 2100
}
