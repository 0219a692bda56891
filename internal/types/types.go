package types

// ParseRequest represents the input for parsing resume text
type ParseRequest struct {
	Text string `json:"text"`
}

// FieldConfidence mirrors each extracted field with the parser's confidence
type FieldConfidence struct {
	Name            float64 `json:"name"`
	Email           float64 `json:"email"`
	Phone           float64 `json:"phone"`
	DOB             float64 `json:"dob"`
	ExperienceYears float64 `json:"experience_years"`
}

// ResumeFields represents the structured fields extracted from resume text.
// Absent fields are null in the JSON output; profiles holds only the
// networks actually found.
type ResumeFields struct {
	Name            *string           `json:"name"`
	Email           *string           `json:"email"`
	Phone           *string           `json:"phone"`
	DOB             *string           `json:"dob"`
	ExperienceYears *float64          `json:"experience_years"`
	Profiles        map[string]string `json:"profiles"`
	Confidence      FieldConfidence   `json:"_confidence"`
}

// ScoreRequest represents the input for ATS scoring
type ScoreRequest struct {
	Text string `json:"text"`
	Role string `json:"role,omitempty"`
	// TargetRole is an accepted alias for Role
	TargetRole string `json:"targetRole,omitempty"`
}

// SectionBreakdown reports which resume sections were detected
type SectionBreakdown struct {
	Score           int      `json:"score"`
	Found           []string `json:"found"`
	MissingRequired []string `json:"missingRequired"`
	MissingOptional []string `json:"missingOptional"`
}

// KeywordBreakdown reports role keyword coverage
type KeywordBreakdown struct {
	Score           int      `json:"score"`
	MatchedRequired []string `json:"matchedRequired"`
	MissingRequired []string `json:"missingRequired"`
	MatchedNice     []string `json:"matchedNice"`
	MissingNice     []string `json:"missingNice"`
}

// BulletBreakdown reports bullet usage and action verb coverage
type BulletBreakdown struct {
	Score              int     `json:"score"`
	BulletCount        int     `json:"bulletCount"`
	BulletDensity      float64 `json:"bulletDensity"`
	ActionVerbCoverage float64 `json:"actionVerbCoverage"`
}

// ContactBreakdown reports which contact channels were found
type ContactBreakdown struct {
	Score        int  `json:"score"`
	HasEmail     bool `json:"hasEmail"`
	HasPhone     bool `json:"hasPhone"`
	HasLinkedIn  bool `json:"hasLinkedIn"`
	HasPortfolio bool `json:"hasPortfolio"`
}

// ReadabilityBreakdown reports sentence-length statistics
type ReadabilityBreakdown struct {
	Score             int     `json:"score"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	WordCount         int     `json:"wordCount"`
	SentenceCount     int     `json:"sentenceCount"`
}

// Breakdown groups the per-metric details behind an ATS score
type Breakdown struct {
	Sections    SectionBreakdown     `json:"sections"`
	Keywords    KeywordBreakdown     `json:"keywords"`
	Bullets     BulletBreakdown      `json:"bullets"`
	Contact     ContactBreakdown     `json:"contact"`
	Readability ReadabilityBreakdown `json:"readability"`
}

// AtsResult represents the output of an ATS analysis
type AtsResult struct {
	Score         int       `json:"score"`
	Level         string    `json:"level"`
	Fixes         []string  `json:"fixes"`
	TopSuggestion string    `json:"topSuggestion"`
	CoachNote     string    `json:"coachNote"`
	Fingerprint   *string   `json:"fingerprint"`
	Breakdown     Breakdown `json:"breakdown"`
}
