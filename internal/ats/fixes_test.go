package ats

import (
	"reflect"
	"testing"
)

// cleanMetrics is a baseline with nothing to fix.
func cleanMetrics() allMetrics {
	return allMetrics{
		sections: sectionMetrics{
			found:           []string{"summary", "experience", "projects", "education", "skills", "certifications", "contact"},
			missingRequired: []string{},
			missingOptional: []string{},
		},
		keywords: keywordMetrics{
			matchedRequired: []string{"api"},
			missingRequired: []string{},
			matchedNice:     []string{"docker"},
			missingNice:     []string{},
		},
		bullets:     bulletMetrics{bulletCount: 10, actionVerbCoverage: 0.9},
		contact:     contactMetrics{hasEmail: true, hasPhone: true, hasLinkedIn: true, hasPortfolio: true},
		readability: readabilityMetrics{score: 1},
	}
}

func TestDeriveFixesCleanResume(t *testing.T) {
	fixes := deriveFixes(cleanMetrics())
	want := []string{"Great shape overall—keep tailoring keywords to each JD you target."}
	if !reflect.DeepEqual(fixes, want) {
		t.Errorf("fixes = %v, want %v", fixes, want)
	}
}

func TestDeriveFixesMissingRequiredSections(t *testing.T) {
	m := cleanMetrics()
	m.sections.missingRequired = []string{"experience", "education"}
	fixes := deriveFixes(m)

	want := "Add a dedicated experience & education section so recruiters can scan it quickly."
	if fixes[0] != want {
		t.Errorf("fixes[0] = %q, want %q", fixes[0], want)
	}
}

func TestDeriveFixesOptionalSectionsNeedTwoMissing(t *testing.T) {
	m := cleanMetrics()
	m.sections.missingOptional = []string{"certifications"}
	if fixes := deriveFixes(m); len(fixes) != 1 || fixes[0] != "Great shape overall—keep tailoring keywords to each JD you target." {
		t.Errorf("single missing optional section should not trigger a fix: %v", fixes)
	}

	m.sections.missingOptional = []string{"certifications", "projects"}
	fixes := deriveFixes(m)
	if fixes[0] != "Include a Skills or Summary section to help the ATS understand your strengths." {
		t.Errorf("fixes[0] = %q", fixes[0])
	}
}

func TestDeriveFixesKeywordHighlightCappedAtThree(t *testing.T) {
	m := cleanMetrics()
	m.keywords.missingRequired = []string{"sql", "python", "statistics", "model"}
	fixes := deriveFixes(m)

	want := "Work the role-critical keywords (sql, python, statistics) into your achievements."
	if fixes[0] != want {
		t.Errorf("fixes[0] = %q, want %q", fixes[0], want)
	}
}

func TestDeriveFixesContactPriority(t *testing.T) {
	tests := []struct {
		name    string
		contact contactMetrics
		want    string
	}{
		{"no email", contactMetrics{}, "Add a professional email address up top."},
		{"no phone", contactMetrics{hasEmail: true}, "Include a reachable phone number for quick callbacks."},
		{"no linkedin", contactMetrics{hasEmail: true, hasPhone: true}, "Link your LinkedIn so recruiters can review your profile."},
		{"no portfolio", contactMetrics{hasEmail: true, hasPhone: true, hasLinkedIn: true}, "Share a portfolio or GitHub link for deeper context."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := cleanMetrics()
			m.contact = tt.contact
			fixes := deriveFixes(m)
			if fixes[0] != tt.want {
				t.Errorf("fixes[0] = %q, want %q", fixes[0], tt.want)
			}
		})
	}
}

func TestDeriveFixesCappedAtFive(t *testing.T) {
	m := allMetrics{
		sections: sectionMetrics{missingRequired: []string{"experience", "education"}},
		keywords: keywordMetrics{missingRequired: []string{"sql"}},
		bullets:  bulletMetrics{bulletCount: 0, actionVerbCoverage: 0},
		contact:  contactMetrics{},
		// Would be the sixth suggestion.
		readability: readabilityMetrics{score: 0.3},
	}
	fixes := deriveFixes(m)

	if len(fixes) != 5 {
		t.Fatalf("len(fixes) = %d, want 5", len(fixes))
	}
	if fixes[4] != "Add a professional email address up top." {
		t.Errorf("fixes[4] = %q", fixes[4])
	}
}

func TestCoachNotesCoverAllLevels(t *testing.T) {
	for _, level := range []string{"great", "good", "average", "poor"} {
		if coachNotes[level] == "" {
			t.Errorf("no coach note for %q", level)
		}
	}
}
