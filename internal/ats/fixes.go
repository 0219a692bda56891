package ats

import (
	"fmt"
	"strings"
)

type allMetrics struct {
	sections    sectionMetrics
	keywords    keywordMetrics
	bullets     bulletMetrics
	contact     contactMetrics
	readability readabilityMetrics
}

var coachNotes = map[string]string{
	"great":   "Recruiters will love how quickly your story flows.",
	"good":    "Good structure— a quick tune-up will make it shine.",
	"average": "Let’s highlight your wins so they stand out instantly.",
	"poor":    "We’ll reshape this into a story hiring managers can’t ignore.",
}

// deriveFixes emits suggestions in a fixed priority order, most impactful
// first, capped at five.
func deriveFixes(m allMetrics) []string {
	var fixes []string

	if len(m.sections.missingRequired) > 0 {
		fixes = append(fixes, fmt.Sprintf("Add a dedicated %s section so recruiters can scan it quickly.",
			strings.Join(m.sections.missingRequired, " & ")))
	} else if len(m.sections.missingOptional) >= 2 {
		fixes = append(fixes, "Include a Skills or Summary section to help the ATS understand your strengths.")
	}

	if len(m.keywords.missingRequired) > 0 {
		highlight := m.keywords.missingRequired
		if len(highlight) > 3 {
			highlight = highlight[:3]
		}
		fixes = append(fixes, fmt.Sprintf("Work the role-critical keywords (%s) into your achievements.",
			strings.Join(highlight, ", ")))
	} else if len(m.keywords.missingNice) >= 2 {
		fixes = append(fixes, "Sprinkle in a few domain keywords from your target job description.")
	}

	if m.bullets.bulletCount < 8 {
		fixes = append(fixes, "Break dense paragraphs into bullet points so accomplishments pop.")
	}
	if m.bullets.actionVerbCoverage < 0.55 {
		fixes = append(fixes, `Start bullet points with strong action verbs like "Led" or "Shipped".`)
	}

	switch {
	case !m.contact.hasEmail:
		fixes = append(fixes, "Add a professional email address up top.")
	case !m.contact.hasPhone:
		fixes = append(fixes, "Include a reachable phone number for quick callbacks.")
	case !m.contact.hasLinkedIn:
		fixes = append(fixes, "Link your LinkedIn so recruiters can review your profile.")
	case !m.contact.hasPortfolio:
		fixes = append(fixes, "Share a portfolio or GitHub link for deeper context.")
	}

	if m.readability.score < 0.6 {
		fixes = append(fixes, "Shorten long sentences and keep each bullet crisp (under 20 words).")
	}

	if len(fixes) == 0 {
		fixes = append(fixes, "Great shape overall—keep tailoring keywords to each JD you target.")
	}
	if len(fixes) > 5 {
		fixes = fixes[:5]
	}
	return fixes
}
