package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// months maps month names and abbreviations to zero-based indices, which
// keeps the arithmetic below aligned with the range interpretation.
var months = map[string]int{
	"jan": 0, "january": 0,
	"feb": 1, "february": 1,
	"mar": 2, "march": 2,
	"apr": 3, "april": 3,
	"may": 4,
	"jun": 5, "june": 5,
	"jul": 6, "july": 6,
	"aug": 7, "august": 7,
	"sep": 8, "sept": 8, "september": 8,
	"oct": 9, "october": 9,
	"nov": 10, "november": 10,
	"dec": 11, "december": 11,
}

var (
	ymdDateRe       = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)
	dmyDateRe       = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	monthYearDateRe = regexp.MustCompile(`^([A-Za-z]{3,9})\s+(\d{4})$`)
)

// parseDateFlexible accepts YYYY-MM-DD, DD-MM-YYYY and "Month YYYY" forms,
// with either slash or dash separators. Numeric dates with the year last are
// read day-first. Out-of-range components normalize forward the way calendar
// arithmetic does.
func parseDateFlexible(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if m := ymdDateRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if plausibleYear(y) {
			return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC), true
		}
	}
	if m := dmyDateRe.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if plausibleYear(y) {
			return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC), true
		}
	}
	if m := monthYearDateRe.FindStringSubmatch(s); m != nil {
		mo, ok := months[strings.ToLower(m[1])]
		y, _ := strconv.Atoi(m[2])
		if ok && plausibleYear(y) {
			return time.Date(y, time.Month(mo+1), 1, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
