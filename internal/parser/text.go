package parser

import (
	"math"
	"regexp"
	"strings"
	"time"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	lineSplit    = regexp.MustCompile(`\r?\n`)
	trailingWS   = regexp.MustCompile(`\s+$`)
)

// NormalizeWhitespace folds carriage returns into newlines, converts tabs and
// non-breaking spaces to plain spaces, collapses runs of horizontal
// whitespace, and trims the result. Newlines are preserved.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, " ", " ")
	s = horizontalWS.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// LinesOf splits text into lines with trailing whitespace stripped and blank
// lines dropped. Line indices elsewhere in this package refer to this slice.
func LinesOf(text string) []string {
	var out []string
	for _, l := range lineSplit.Split(text, -1) {
		l = trailingWS.ReplaceAllString(l, "")
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func plausibleYear(y int) bool {
	return y >= 1950 && y <= time.Now().Year()+1
}
