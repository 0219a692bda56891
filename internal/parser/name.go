package parser

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	docLabelRe     = regexp.MustCompile(`(?i)^(resume|curriculum vitae|cv)$`)
	contactLabelRe = regexp.MustCompile(`(?i)^(phone|mobile|email|address|contact)\b`)
	capitalWordRe  = regexp.MustCompile(`^[A-Z][a-z'’-]+$`)
	initialsRe     = regexp.MustCompile(`\b(\w+\.)+\b`)
	nonNameCharRe  = regexp.MustCompile(`[^A-Za-z\s'’-]`)
)

// extractName looks for a personal name in the header zone, the region above
// the first section header capped at ten lines. Lines that are document
// labels, contact labels, the email line, or over 80 characters are skipped.
// Candidates of one to six words are scored by how many words look like
// capitalized name words, with penalties for initials runs and for characters
// that do not belong in a name.
func extractName(text, email string) (string, float64) {
	lines, sections := DetectSections(text)

	firstSectionStart := min(len(lines), 20)
	if len(sections) > 0 {
		firstSectionStart = sections[0].Start
	}
	zone := lines[:min(10, firstSectionStart)]

	var candidates []string
	for _, l := range zone {
		l = strings.TrimSpace(strings.ReplaceAll(l, " ", " "))
		if l == "" || docLabelRe.MatchString(l) {
			continue
		}
		if email != "" && strings.Contains(l, email) {
			continue
		}
		if contactLabelRe.MatchString(l) {
			continue
		}
		if utf8.RuneCountInString(l) > 80 {
			continue
		}
		candidates = append(candidates, l)
	}

	var best string
	var bestScore float64
	for _, l := range candidates {
		words := strings.Fields(l)
		if len(words) < 1 || len(words) > 6 {
			continue
		}
		score := 0.2
		capCount := 0
		for _, w := range words {
			if capitalWordRe.MatchString(w) {
				capCount++
			}
		}
		score += float64(capCount) / math.Max(2, float64(len(words)))
		if initialsRe.MatchString(l) {
			score -= 0.2
		}
		if nonNameCharRe.MatchString(l) {
			score -= 0.2
		}
		if score > bestScore {
			best, bestScore = l, score
		}
	}
	if best == "" {
		return "", 0
	}
	return best, clamp(bestScore, 0, 0.95)
}
