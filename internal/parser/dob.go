package parser

import "regexp"

var dobTokenRe = regexp.MustCompile(`\b(\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}[/-]\d{1,2}[/-]\d{4}|[A-Za-z]{3,9}\s+\d{4})\b`)

// extractDOB scans date-like tokens in order and keeps the first one whose
// year falls in the plausible birth window 1950..2010. The value is
// normalized to YYYY-MM-DD.
func extractDOB(text string) (string, float64) {
	for _, tok := range dobTokenRe.FindAllString(text, -1) {
		dt, ok := parseDateFlexible(tok)
		if !ok {
			continue
		}
		if y := dt.Year(); y >= 1950 && y <= 2010 {
			return dt.Format("2006-01-02"), 0.8
		}
	}
	return "", 0
}
