package parser

import (
	"regexp"
	"strings"
)

var (
	emailRe          = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneCandidateRe = regexp.MustCompile(`\+?\d[\d\s().-]{8,}\d`)
	tenDigitsRe      = regexp.MustCompile(`\d{10,}`)
	nonPhoneCharRe   = regexp.MustCompile(`[^+\d]`)
	nonDigitRe       = regexp.MustCompile(`\D`)
	canonicalNSNRe   = regexp.MustCompile(`^(\+?\d{1,3})?(\d{10})$`)
	linkedinURLRe    = regexp.MustCompile(`(?i)https?://(?:[\w.-]+\.)?linkedin\.com/[\w/-]+`)
	githubURLRe      = regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[\w.-]+`)
)

func extractEmail(text string) (string, float64) {
	m := emailRe.FindString(text)
	if m == "" {
		return "", 0
	}
	return m, 0.99
}

// extractPhone scores up to five normalized candidates and keeps the best.
// Candidates are stripped to leading plus and digits; anything with fewer
// than ten digits is discarded before scoring.
func extractPhone(text string) (string, float64) {
	var cleaned []string
	for _, c := range phoneCandidateRe.FindAllString(text, -1) {
		s := nonPhoneCharRe.ReplaceAllString(c, "")
		if tenDigitsRe.MatchString(s) {
			cleaned = append(cleaned, s)
			if len(cleaned) == 5 {
				break
			}
		}
	}

	var best string
	var bestScore float64
	for _, raw := range cleaned {
		digits := nonDigitRe.ReplaceAllString(raw, "")
		score := 0.5
		if strings.HasPrefix(raw, "+") {
			score += 0.2
		}
		if len(digits) >= 10 && len(digits) <= 15 {
			score += 0.2
		}
		if canonicalNSNRe.MatchString(raw) {
			score += 0.05
		}
		if score > bestScore {
			best, bestScore = raw, score
		}
	}
	if best == "" {
		return "", 0
	}
	return best, clamp(bestScore, 0, 0.98)
}

// extractProfiles returns the social links found in the text, keyed by
// network. Only networks actually present appear in the map.
func extractProfiles(text string) map[string]string {
	out := map[string]string{}
	if m := linkedinURLRe.FindString(text); m != "" {
		out["linkedin"] = m
	}
	if m := githubURLRe.FindString(text); m != "" {
		out["github"] = m
	}
	return out
}
