// Package parser extracts structured candidate fields from plain resume
// text. Extraction is heuristic: every field carries a confidence score and
// absent fields stay null rather than guessed.
package parser

import (
	"strings"
	"time"

	apperrors "jobsprint/internal/errors"
	"jobsprint/internal/types"
)

// ParseResumeText extracts structured fields from raw resume text. The text
// is normalized once and every extractor runs on the normalized form.
// Extraction never fails on messy input; only empty or whitespace-only text
// returns an error.
func ParseResumeText(text string) (*types.ResumeFields, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewParseError(apperrors.ErrCodeNoTextExtracted,
			"no text extracted, likely a scanned or protected document", nil)
	}

	normalized := NormalizeWhitespace(text)
	now := time.Now()

	email, emailConf := extractEmail(normalized)
	phone, phoneConf := extractPhone(normalized)
	dob, dobConf := extractDOB(normalized)
	profiles := extractProfiles(normalized)
	name, nameConf := extractName(normalized, email)
	expYears, expConf := extractExperienceYears(normalized, now)

	fields := &types.ResumeFields{
		Profiles: profiles,
		Confidence: types.FieldConfidence{
			Name:            nameConf,
			Email:           emailConf,
			Phone:           phoneConf,
			DOB:             dobConf,
			ExperienceYears: expConf,
		},
	}
	if name != "" {
		fields.Name = &name
	}
	if email != "" {
		fields.Email = &email
	}
	if phone != "" {
		fields.Phone = &phone
	}
	if dob != "" {
		fields.DOB = &dob
	}
	if expConf > 0 {
		fields.ExperienceYears = &expYears
	}
	return fields, nil
}
