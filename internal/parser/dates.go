package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var monthsByName = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// A single date token: "2021-06-01", "2021", "03/2020" or "March 2019".
// Two-digit years are deliberately not recognized; headers carrying them fall
// through to the positional fallback.
const dateToken = `(?:\d{4}-\d{2}-\d{2}|[A-Za-z]{3,9}\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4})`

var (
	dateRangeRe = regexp.MustCompile(`(?i)(` + dateToken + `)\s*[-–—]\s*(` + dateToken + `|Present|Current|Now|Ongoing)`)
	monthYearRe = regexp.MustCompile(`(?i)^([A-Za-z]{3,9})\.?\s+(\d{4})$`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	bareYearRe  = regexp.MustCompile(`^\d{4}$`)
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NormalizeDate converts a loose date token into YYYY-MM-DD. A bare year maps
// to January 1st, MM/YYYY and "Month YYYY" to the first of the month.
// Anything else is passed through unchanged rather than rejected.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)

	if bareYearRe.MatchString(s) {
		return s + "-01-01"
	}
	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		if month >= 1 && month <= 12 {
			return fmt.Sprintf("%s-%02d-01", m[2], month)
		}
		return s
	}
	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		if month, ok := monthsByName[strings.ToLower(m[1])]; ok {
			return fmt.Sprintf("%s-%02d-01", m[2], month)
		}
	}
	return s
}

// dateRange is the parsed form of "Jan 2021 - Present" style tokens.
type dateRange struct {
	start   string // normalized YYYY-MM-DD
	end     string // normalized, empty when open-ended
	current bool   // the source said Present/Current/Now/Ongoing
}

// isSingleDate reports whether an entire header part is one date token with
// no range, e.g. a bare graduation year.
func isSingleDate(s string) bool {
	if isoDateRe.MatchString(s) || bareYearRe.MatchString(s) || slashDateRe.MatchString(s) {
		return true
	}
	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		_, ok := monthsByName[strings.ToLower(m[1])]
		return ok
	}
	return false
}

// parseDateRange extracts a date range from a header part. A part that is a
// single date token yields an open-ended range. ok is false when the part
// carries no recognizable date.
func parseDateRange(s string) (dateRange, bool) {
	m := dateRangeRe.FindStringSubmatch(s)
	if m == nil {
		if t := strings.TrimSpace(s); isSingleDate(t) {
			return dateRange{start: NormalizeDate(t)}, true
		}
		return dateRange{}, false
	}

	r := dateRange{start: NormalizeDate(m[1])}
	switch strings.ToLower(strings.TrimSpace(m[2])) {
	case "present", "current", "now", "ongoing":
		r.current = true
	default:
		r.end = NormalizeDate(m[2])
	}
	return r, true
}
