// Package ats scores resume text the way applicant tracking systems read it:
// section coverage, role keyword coverage, bullet discipline, contact
// channels, and readability, combined into a 0..100 score with actionable
// fixes. Scoring is deterministic for a given input.
package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"jobsprint/internal/types"
)

const (
	weightSections    = 0.22
	weightKeywords    = 0.28
	weightBullets     = 0.18
	weightContact     = 0.12
	weightReadability = 0.20
)

// Cleaned text at or below this length gets the upload-prompt fallback
// instead of a real score.
const minContentLength = 40

// Analyzer scores resumes against a role keyword library. The zero value is
// not usable; construct with NewAnalyzer.
type Analyzer struct {
	roles map[string]RoleProfile

	mu         sync.Mutex
	keywordRes map[string]*regexp.Regexp
}

// NewAnalyzer builds an analyzer over the built-in role library with any
// extra profiles merged over it by key.
func NewAnalyzer(extra map[string]RoleProfile) *Analyzer {
	roles := make(map[string]RoleProfile, len(builtinRoles)+len(extra))
	for k, v := range builtinRoles {
		roles[k] = v
	}
	for k, v := range extra {
		roles[k] = v
	}
	return &Analyzer{
		roles:      roles,
		keywordRes: make(map[string]*regexp.Regexp),
	}
}

var defaultAnalyzer = NewAnalyzer(nil)

// AnalyzeResume scores with the built-in role library only.
func AnalyzeResume(req types.ScoreRequest) types.AtsResult {
	return defaultAnalyzer.AnalyzeResume(req)
}

// AnalyzeResume produces the full ATS result for one resume. Unknown or
// empty roles fall back to role-neutral keyword scoring; they never fail the
// analysis.
func (a *Analyzer) AnalyzeResume(req types.ScoreRequest) types.AtsResult {
	cleaned := strings.TrimSpace(wsRunRe.ReplaceAllString(req.Text, " "))
	var fingerprint *string
	if cleaned != "" {
		fp := fingerprintOf(cleaned)
		fingerprint = &fp
	}

	if len([]rune(cleaned)) <= minContentLength {
		return fallbackResult(fingerprint)
	}

	role := req.Role
	if role == "" {
		role = req.TargetRole
	}
	roleKey := a.resolveRole(role)

	sections := scoreSections(req.Text)
	keywords := a.scoreKeywords(req.Text, roleKey)
	bullets := scoreBullets(req.Text)
	contact := scoreContact(req.Text)
	readability := scoreReadability(req.Text)

	weighted := sections.score*weightSections +
		keywords.score*weightKeywords +
		bullets.score*weightBullets +
		contact.score*weightContact +
		readability.score*weightReadability
	score := round100(clamp(weighted, 0, 1))

	var level string
	switch {
	case score >= 85:
		level = "great"
	case score >= 70:
		level = "good"
	case score >= 55:
		level = "average"
	default:
		level = "poor"
	}

	fixes := deriveFixes(allMetrics{
		sections:    sections,
		keywords:    keywords,
		bullets:     bullets,
		contact:     contact,
		readability: readability,
	})

	return types.AtsResult{
		Score:         score,
		Level:         level,
		Fixes:         fixes,
		TopSuggestion: fixes[0],
		CoachNote:     coachNotes[level],
		Fingerprint:   fingerprint,
		Breakdown: types.Breakdown{
			Sections: types.SectionBreakdown{
				Score:           round100(sections.score),
				Found:           sections.found,
				MissingRequired: sections.missingRequired,
				MissingOptional: sections.missingOptional,
			},
			Keywords: types.KeywordBreakdown{
				Score:           round100(keywords.score),
				MatchedRequired: keywords.matchedRequired,
				MissingRequired: keywords.missingRequired,
				MatchedNice:     keywords.matchedNice,
				MissingNice:     keywords.missingNice,
			},
			Bullets: types.BulletBreakdown{
				Score:              round100(bullets.score),
				BulletCount:        bullets.bulletCount,
				BulletDensity:      round2(bullets.bulletDensity),
				ActionVerbCoverage: round1(bullets.actionVerbCoverage * 100),
			},
			Contact: types.ContactBreakdown{
				Score:        round100(contact.score),
				HasEmail:     contact.hasEmail,
				HasPhone:     contact.hasPhone,
				HasLinkedIn:  contact.hasLinkedIn,
				HasPortfolio: contact.hasPortfolio,
			},
			Readability: types.ReadabilityBreakdown{
				Score:             round100(readability.score),
				AvgSentenceLength: round1(readability.avgSentenceLength),
				WordCount:         readability.wordCount,
				SentenceCount:     readability.sentenceCount,
			},
		},
	}
}

// fallbackResult is returned when there is not enough text to assess.
func fallbackResult(fingerprint *string) types.AtsResult {
	fixes := []string{"Upload your latest resume so we can run a full ATS check."}
	return types.AtsResult{
		Score:         35,
		Level:         "poor",
		Fixes:         fixes,
		TopSuggestion: fixes[0],
		CoachNote:     "Let’s get your wins into the system so we can polish them together.",
		Fingerprint:   fingerprint,
		Breakdown: types.Breakdown{
			Sections: types.SectionBreakdown{
				Found:           []string{},
				MissingRequired: []string{"experience", "education"},
				MissingOptional: []string{},
			},
			Keywords: types.KeywordBreakdown{
				MatchedRequired: []string{},
				MissingRequired: []string{},
				MatchedNice:     []string{},
				MissingNice:     []string{},
			},
		},
	}
}

// fingerprintOf builds a cheap dedupe key from the collapsed text.
func fingerprintOf(cleaned string) string {
	r := []rune(cleaned)
	head := r
	if len(head) > 120 {
		head = head[:120]
	}
	return fmt.Sprintf("%d:%s", len(r), strings.ToLower(string(head)))
}

func round100(v float64) int {
	return int(math.Round(v * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
