package ats

import (
	"math"
	"regexp"
	"strings"
)

var actionVerbs = []string{
	"achieved", "built", "created", "delivered", "designed", "developed", "drove", "enabled", "enhanced", "executed", "expanded", "improved",
	"implemented", "launched", "led", "managed", "optimized", "orchestrated", "reduced", "shipped", "spearheaded", "streamlined", "supervised",
	"secured", "transformed", "won",
}

type sectionPattern struct {
	key string
	re  *regexp.Regexp
}

// sectionPatterns are matched against the whole text, not line by line.
// Order is preserved in the reported "found" list.
var sectionPatterns = []sectionPattern{
	{"summary", regexp.MustCompile(`(?i)(summary|about me|profile)`)},
	{"experience", regexp.MustCompile(`(?i)(experience|employment|work history)`)},
	{"projects", regexp.MustCompile(`(?i)(projects?|case studies)`)},
	{"education", regexp.MustCompile(`(?i)(education|academic)`)},
	{"skills", regexp.MustCompile(`(?i)(skills|technologies|tech stack)`)},
	{"certifications", regexp.MustCompile(`(?i)(certifications?|licenses?)`)},
	{"contact", regexp.MustCompile(`(?i)(contact|info|details)`)},
}

var requiredSections = []string{"experience", "education"}

var (
	bulletRe       = regexp.MustCompile(`^\s*(?:[-*•]|\d+\.)\s+`)
	actionVerbRe   = regexp.MustCompile(`(?i)^\s*(?:[-*•]|\d+\.)?\s*(?:` + strings.Join(actionVerbs, "|") + `)`)
	anyLineBreakRe = regexp.MustCompile(`\r?\n`)
	wsRunRe        = regexp.MustCompile(`\s+`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]+\s*`)

	contactEmailRe     = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	contactPhoneRe     = regexp.MustCompile(`\b(?:\+?\d[\d\s-]{6,}\d)\b`)
	contactLinkedInRe  = regexp.MustCompile(`(?i)linkedin\.com/`)
	contactPortfolioRe = regexp.MustCompile(`(?i)(github\.com/|behance\.net/|dribbble\.com/|medium\.com/|portfolio)`)
)

type sectionMetrics struct {
	score           float64
	found           []string
	missingRequired []string
	missingOptional []string
}

type keywordMetrics struct {
	score           float64
	matchedRequired []string
	missingRequired []string
	matchedNice     []string
	missingNice     []string
}

type bulletMetrics struct {
	score              float64
	bulletCount        int
	bulletDensity      float64
	actionVerbCoverage float64
}

type contactMetrics struct {
	score        float64
	hasEmail     bool
	hasPhone     bool
	hasLinkedIn  bool
	hasPortfolio bool
}

type readabilityMetrics struct {
	score             float64
	avgSentenceLength float64
	wordCount         int
	sentenceCount     int
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func scoreSections(text string) sectionMetrics {
	found := []string{}
	have := map[string]bool{}
	for _, sp := range sectionPatterns {
		if sp.re.MatchString(text) {
			found = append(found, sp.key)
			have[sp.key] = true
		}
	}

	missingRequired := []string{}
	for _, key := range requiredSections {
		if !have[key] {
			missingRequired = append(missingRequired, key)
		}
	}
	missingOptional := []string{}
	for _, sp := range sectionPatterns {
		if !have[sp.key] && sp.key != "experience" && sp.key != "education" {
			missingOptional = append(missingOptional, sp.key)
		}
	}

	coverage := float64(len(found)) / float64(len(sectionPatterns))
	requiredScore := clamp(float64(len(requiredSections)-len(missingRequired))/float64(len(requiredSections)), 0, 1)
	score := clamp(requiredScore*0.7+clamp(coverage, 0, 1)*0.3, 0, 1)

	return sectionMetrics{
		score:           score,
		found:           found,
		missingRequired: missingRequired,
		missingOptional: missingOptional,
	}
}

func (a *Analyzer) scoreKeywords(text, roleKey string) keywordMetrics {
	empty := keywordMetrics{
		matchedRequired: []string{},
		missingRequired: []string{},
		matchedNice:     []string{},
		missingNice:     []string{},
	}
	entry, ok := a.roles[roleKey]
	if roleKey == "" || !ok {
		empty.score = 0.55
		return empty
	}

	lowerText := strings.ToLower(text)
	check := func(list []string) (matched, missing []string) {
		matched, missing = []string{}, []string{}
		for _, keyword := range list {
			if keyword == "" {
				continue
			}
			re := a.keywordPattern(keyword)
			if re.MatchString(lowerText) {
				matched = append(matched, keyword)
			} else {
				missing = append(missing, keyword)
			}
		}
		return matched, missing
	}

	matchedReq, missingReq := check(entry.Required)
	matchedNice, missingNice := check(entry.Nice)

	requiredRatio := 0.7
	if len(entry.Required) > 0 {
		requiredRatio = float64(len(matchedReq)) / float64(len(entry.Required))
	}
	niceRatio := 0.5
	if len(entry.Nice) > 0 {
		niceRatio = float64(len(matchedNice)) / float64(len(entry.Nice))
	}

	return keywordMetrics{
		score:           clamp(requiredRatio*0.7+niceRatio*0.3, 0, 1),
		matchedRequired: matchedReq,
		missingRequired: missingReq,
		matchedNice:     matchedNice,
		missingNice:     missingNice,
	}
}

// keywordPattern returns a cached word-boundary matcher for a keyword.
func (a *Analyzer) keywordPattern(keyword string) *regexp.Regexp {
	a.mu.Lock()
	defer a.mu.Unlock()
	if re, ok := a.keywordRes[keyword]; ok {
		return re
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
	a.keywordRes[keyword] = re
	return re
}

// scoreBullets works on the raw line structure of the text, so it runs on
// the unnormalized input.
func scoreBullets(text string) bulletMetrics {
	lines := anyLineBreakRe.Split(text, -1)
	var bullets []string
	totalLines := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			totalLines++
		}
		if bulletRe.MatchString(line) {
			bullets = append(bullets, strings.TrimSpace(line))
		}
	}
	if totalLines == 0 {
		totalLines = 1
	}

	bulletCount := len(bullets)
	bulletDensity := float64(bulletCount) / float64(totalLines)
	actionVerbCount := 0
	for _, b := range bullets {
		if actionVerbRe.MatchString(b) {
			actionVerbCount++
		}
	}
	actionVerbCoverage := 0.0
	if bulletCount > 0 {
		actionVerbCoverage = float64(actionVerbCount) / float64(bulletCount)
	}

	bulletScore := clamp(bulletDensity/0.35, 0, 1)
	actionVerbScore := clamp(actionVerbCoverage/0.7, 0, 1)

	return bulletMetrics{
		score:              clamp(bulletScore*0.55+actionVerbScore*0.45, 0, 1),
		bulletCount:        bulletCount,
		bulletDensity:      bulletDensity,
		actionVerbCoverage: actionVerbCoverage,
	}
}

func scoreContact(text string) contactMetrics {
	m := contactMetrics{
		hasEmail:     contactEmailRe.MatchString(text),
		hasPhone:     contactPhoneRe.MatchString(text),
		hasLinkedIn:  contactLinkedInRe.MatchString(text),
		hasPortfolio: contactPortfolioRe.MatchString(text),
	}
	count := 0
	for _, ok := range []bool{m.hasEmail, m.hasPhone, m.hasLinkedIn, m.hasPortfolio} {
		if ok {
			count++
		}
	}
	// Three of four channels already earn full marks.
	m.score = clamp(float64(count)/3.2, 0, 1)
	return m
}

func scoreReadability(text string) readabilityMetrics {
	clean := strings.TrimSpace(wsRunRe.ReplaceAllString(text, " "))
	if clean == "" {
		return readabilityMetrics{}
	}

	sentences := 0
	for _, s := range sentenceEndRe.Split(clean, -1) {
		if s != "" {
			sentences++
		}
	}
	words := len(strings.Fields(clean))

	avg := float64(words)
	if sentences > 0 {
		avg = float64(words) / float64(sentences)
	}

	var score float64
	switch {
	case avg <= 16:
		score = 1
	case avg <= 20:
		score = 0.85
	case avg <= 24:
		score = 0.65
	case avg <= 28:
		score = 0.45
	default:
		score = 0.3
	}

	return readabilityMetrics{
		score:             score,
		avgSentenceLength: avg,
		wordCount:         words,
		sentenceCount:     sentences,
	}
}
