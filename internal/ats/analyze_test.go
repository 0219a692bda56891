package ats

import (
	"reflect"
	"testing"

	"jobsprint/internal/types"
)

const goodResume = `Jane Doe
jane.doe@example.com | +1 555 123 4567
linkedin.com/in/janedoe | github.com/janedoe

Summary
Frontend engineer who ships accessible interfaces.

Experience
- Led development of a React dashboard used by 40k users.
- Shipped a TypeScript design system with full testing coverage.
- Improved page load times by 38 percent.
- Built an accessibility audit pipeline with HTML and CSS checks.
- Delivered JavaScript tooling for the API layer.
- Reduced bundle size by half.
- Created onboarding docs for new hires.
- Launched an experiment framework.

Education
BSc Computer Science, State University.

Skills
JavaScript, CSS, HTML, React, TypeScript, Next.js, testing.`

func TestAnalyzeResumeKnownRole(t *testing.T) {
	result := AnalyzeResume(types.ScoreRequest{Text: goodResume, Role: "Frontend Developer"})

	if result.Level != "great" {
		t.Errorf("Level = %q, expected great (score %d)", result.Level, result.Score)
	}
	if result.Score < 85 {
		t.Errorf("Score = %d, expected >= 85", result.Score)
	}

	kw := result.Breakdown.Keywords
	if kw.Score != 100 {
		t.Errorf("keyword score = %d, expected 100", kw.Score)
	}
	if !reflect.DeepEqual(kw.MatchedRequired, []string{"javascript", "css", "html", "react"}) {
		t.Errorf("MatchedRequired = %v", kw.MatchedRequired)
	}
	if len(kw.MissingRequired) != 0 || len(kw.MissingNice) != 0 {
		t.Errorf("expected no missing keywords, got %v / %v", kw.MissingRequired, kw.MissingNice)
	}

	sec := result.Breakdown.Sections
	if !reflect.DeepEqual(sec.Found, []string{"summary", "experience", "education", "skills"}) {
		t.Errorf("sections found = %v", sec.Found)
	}
	if len(sec.MissingRequired) != 0 {
		t.Errorf("missing required sections = %v", sec.MissingRequired)
	}

	if result.Breakdown.Bullets.BulletCount != 8 {
		t.Errorf("bullet count = %d, expected 8", result.Breakdown.Bullets.BulletCount)
	}
	if result.Breakdown.Bullets.ActionVerbCoverage != 100 {
		t.Errorf("action verb coverage = %v, expected 100", result.Breakdown.Bullets.ActionVerbCoverage)
	}

	contact := result.Breakdown.Contact
	if !contact.HasEmail || !contact.HasPhone || !contact.HasLinkedIn || !contact.HasPortfolio {
		t.Errorf("contact breakdown = %+v, expected all channels", contact)
	}
	if contact.Score != 100 {
		t.Errorf("contact score = %d, expected 100", contact.Score)
	}

	if result.TopSuggestion != result.Fixes[0] {
		t.Errorf("TopSuggestion = %q, Fixes[0] = %q", result.TopSuggestion, result.Fixes[0])
	}
}

func TestAnalyzeResumeNoRole(t *testing.T) {
	result := AnalyzeResume(types.ScoreRequest{Text: goodResume})

	kw := result.Breakdown.Keywords
	if kw.Score != 55 {
		t.Errorf("role-neutral keyword score = %d, expected 55", kw.Score)
	}
	for name, list := range map[string][]string{
		"MatchedRequired": kw.MatchedRequired,
		"MissingRequired": kw.MissingRequired,
		"MatchedNice":     kw.MatchedNice,
		"MissingNice":     kw.MissingNice,
	} {
		if list == nil || len(list) != 0 {
			t.Errorf("%s = %v, expected empty non-nil slice", name, list)
		}
	}
}

func TestAnalyzeResumeUnknownRoleFallsBackToNeutral(t *testing.T) {
	withRole := AnalyzeResume(types.ScoreRequest{Text: goodResume, Role: "astronaut"})
	noRole := AnalyzeResume(types.ScoreRequest{Text: goodResume})
	if withRole.Score != noRole.Score {
		t.Errorf("unknown role score %d differs from role-neutral score %d", withRole.Score, noRole.Score)
	}
}

func TestAnalyzeResumeTargetRoleAlias(t *testing.T) {
	viaRole := AnalyzeResume(types.ScoreRequest{Text: goodResume, Role: "frontend_developer"})
	viaTarget := AnalyzeResume(types.ScoreRequest{Text: goodResume, TargetRole: "frontend_developer"})
	if !reflect.DeepEqual(viaRole, viaTarget) {
		t.Error("targetRole alias should produce identical results")
	}
}

func TestAnalyzeResumeDeterministic(t *testing.T) {
	req := types.ScoreRequest{Text: goodResume, Role: "software_engineer"}
	first := AnalyzeResume(req)
	second := AnalyzeResume(req)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input should produce identical results")
	}
}

func TestAnalyzeResumeShortTextFallback(t *testing.T) {
	result := AnalyzeResume(types.ScoreRequest{Text: "Hello World"})

	if result.Score != 35 {
		t.Errorf("Score = %d, expected 35", result.Score)
	}
	if result.Level != "poor" {
		t.Errorf("Level = %q, expected poor", result.Level)
	}
	if result.TopSuggestion != "Upload your latest resume so we can run a full ATS check." {
		t.Errorf("TopSuggestion = %q", result.TopSuggestion)
	}
	if result.Fingerprint == nil || *result.Fingerprint != "11:hello world" {
		t.Errorf("Fingerprint = %v, expected 11:hello world", result.Fingerprint)
	}
	if !reflect.DeepEqual(result.Breakdown.Sections.MissingRequired, []string{"experience", "education"}) {
		t.Errorf("MissingRequired = %v", result.Breakdown.Sections.MissingRequired)
	}
}

func TestAnalyzeResumeEmptyTextFallback(t *testing.T) {
	result := AnalyzeResume(types.ScoreRequest{Text: "   \n\t "})
	if result.Score != 35 || result.Level != "poor" {
		t.Errorf("Score/Level = %d/%q, expected 35/poor", result.Score, result.Level)
	}
	if result.Fingerprint != nil {
		t.Errorf("Fingerprint = %q, expected nil for empty text", *result.Fingerprint)
	}
}

func TestFingerprintOf(t *testing.T) {
	fp := fingerprintOf("Jane Doe Frontend Engineer")
	if fp != "26:jane doe frontend engineer" {
		t.Errorf("fingerprintOf() = %q", fp)
	}

	long := make([]rune, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'A')
	}
	fp = fingerprintOf(string(long))
	if len(fp) != len("200:")+120 {
		t.Errorf("long fingerprint length = %d", len(fp))
	}
}

func TestNewAnalyzerMergesCustomRoles(t *testing.T) {
	custom := map[string]RoleProfile{
		"platform_engineer": {Required: []string{"kubernetes", "terraform"}},
		// Overrides the builtin profile.
		"designer": {Required: []string{"figma"}},
	}
	a := NewAnalyzer(custom)

	if _, ok := a.roles["platform_engineer"]; !ok {
		t.Error("custom role not merged")
	}
	if !reflect.DeepEqual(a.roles["designer"].Required, []string{"figma"}) {
		t.Errorf("override not applied: %v", a.roles["designer"].Required)
	}
	if _, ok := a.roles["software_engineer"]; !ok {
		t.Error("builtin roles should survive the merge")
	}
}

func BenchmarkAnalyzeResume(b *testing.B) {
	req := types.ScoreRequest{Text: goodResume, Role: "frontend_developer"}
	for b.Loop() {
		AnalyzeResume(req)
	}
}
