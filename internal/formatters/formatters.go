package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"jobsprint/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ResumeFields", &ParseTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeFields", &ParseMarkdownFormatter{})
	registry.RegisterFormatter("text", "AtsResult", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "AtsResult", &ScoreMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ResumeFields, *types.ResumeFields:
		return "ResumeFields"
	case types.AtsResult, *types.AtsResult:
		return "AtsResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func asResumeFields(data any) (*types.ResumeFields, bool) {
	switch v := data.(type) {
	case types.ResumeFields:
		return &v, true
	case *types.ResumeFields:
		return v, true
	default:
		return nil, false
	}
}

func asAtsResult(data any) (*types.AtsResult, bool) {
	switch v := data.(type) {
	case types.AtsResult:
		return &v, true
	case *types.AtsResult:
		return v, true
	default:
		return nil, false
	}
}

func orMissing(s *string) string {
	if s == nil {
		return "(not found)"
	}
	return *s
}

// ParseTextFormatter handles text formatting for parsed resume fields
type ParseTextFormatter struct{}

func (ptf *ParseTextFormatter) Format(data any) (string, error) {
	result, ok := asResumeFields(data)
	if !ok {
		return "", fmt.Errorf("expected ResumeFields, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTED FIELDS ===\n\n")
	output.WriteString(fmt.Sprintf("Name:  %s (confidence %.2f)\n", orMissing(result.Name), result.Confidence.Name))
	output.WriteString(fmt.Sprintf("Email: %s (confidence %.2f)\n", orMissing(result.Email), result.Confidence.Email))
	output.WriteString(fmt.Sprintf("Phone: %s (confidence %.2f)\n", orMissing(result.Phone), result.Confidence.Phone))
	output.WriteString(fmt.Sprintf("DOB:   %s (confidence %.2f)\n", orMissing(result.DOB), result.Confidence.DOB))

	if result.ExperienceYears != nil {
		output.WriteString(fmt.Sprintf("Experience: %.1f years (confidence %.2f)\n", *result.ExperienceYears, result.Confidence.ExperienceYears))
	} else {
		output.WriteString("Experience: (not found)\n")
	}

	if len(result.Profiles) > 0 {
		output.WriteString("\n=== PROFILES ===\n")
		for _, network := range sortedKeys(result.Profiles) {
			output.WriteString(fmt.Sprintf("%s: %s\n", network, result.Profiles[network]))
		}
	}

	return output.String(), nil
}

func (ptf *ParseTextFormatter) SupportedType() string {
	return "ResumeFields"
}

// ParseMarkdownFormatter handles markdown formatting for parsed resume fields
type ParseMarkdownFormatter struct{}

func (pmf *ParseMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asResumeFields(data)
	if !ok {
		return "", fmt.Errorf("expected ResumeFields, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extracted Resume Fields\n\n")
	output.WriteString("| Field | Value | Confidence |\n")
	output.WriteString("|-------|-------|------------|\n")
	output.WriteString(fmt.Sprintf("| Name | %s | %.2f |\n", orMissing(result.Name), result.Confidence.Name))
	output.WriteString(fmt.Sprintf("| Email | %s | %.2f |\n", orMissing(result.Email), result.Confidence.Email))
	output.WriteString(fmt.Sprintf("| Phone | %s | %.2f |\n", orMissing(result.Phone), result.Confidence.Phone))
	output.WriteString(fmt.Sprintf("| Date of birth | %s | %.2f |\n", orMissing(result.DOB), result.Confidence.DOB))
	if result.ExperienceYears != nil {
		output.WriteString(fmt.Sprintf("| Experience | %.1f years | %.2f |\n", *result.ExperienceYears, result.Confidence.ExperienceYears))
	} else {
		output.WriteString("| Experience | (not found) | |\n")
	}
	output.WriteString("\n")

	if len(result.Profiles) > 0 {
		output.WriteString("## Profiles\n\n")
		for _, network := range sortedKeys(result.Profiles) {
			output.WriteString(fmt.Sprintf("- **%s:** %s\n", network, result.Profiles[network]))
		}
	}

	return output.String(), nil
}

func (pmf *ParseMarkdownFormatter) SupportedType() string {
	return "ResumeFields"
}

// ScoreTextFormatter handles text formatting for ATS score results
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := asAtsResult(data)
	if !ok {
		return "", fmt.Errorf("expected AtsResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n\n", result.Score, result.Level))

	output.WriteString("=== BREAKDOWN ===\n")
	output.WriteString(fmt.Sprintf("Sections:    %d/100\n", result.Breakdown.Sections.Score))
	output.WriteString(fmt.Sprintf("Keywords:    %d/100\n", result.Breakdown.Keywords.Score))
	output.WriteString(fmt.Sprintf("Bullets:     %d/100\n", result.Breakdown.Bullets.Score))
	output.WriteString(fmt.Sprintf("Contact:     %d/100\n", result.Breakdown.Contact.Score))
	output.WriteString(fmt.Sprintf("Readability: %d/100\n\n", result.Breakdown.Readability.Score))

	if len(result.Breakdown.Sections.MissingRequired) > 0 {
		output.WriteString("Missing sections:\n")
		for _, section := range result.Breakdown.Sections.MissingRequired {
			output.WriteString(fmt.Sprintf("- %s\n", section))
		}
		output.WriteString("\n")
	}

	if len(result.Fixes) > 0 {
		output.WriteString("=== SUGGESTED FIXES ===\n")
		for i, fix := range result.Fixes {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, fix))
		}
		output.WriteString("\n")
	}

	output.WriteString(result.CoachNote)
	output.WriteString("\n")

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "AtsResult"
}

// ScoreMarkdownFormatter handles markdown formatting for ATS score results
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asAtsResult(data)
	if !ok {
		return "", fmt.Errorf("expected AtsResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Report\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", result.Score, result.Level))

	output.WriteString("## Breakdown\n\n")
	output.WriteString("| Check | Score |\n")
	output.WriteString("|-------|-------|\n")
	output.WriteString(fmt.Sprintf("| Sections | %d/100 |\n", result.Breakdown.Sections.Score))
	output.WriteString(fmt.Sprintf("| Keywords | %d/100 |\n", result.Breakdown.Keywords.Score))
	output.WriteString(fmt.Sprintf("| Bullets | %d/100 |\n", result.Breakdown.Bullets.Score))
	output.WriteString(fmt.Sprintf("| Contact | %d/100 |\n", result.Breakdown.Contact.Score))
	output.WriteString(fmt.Sprintf("| Readability | %d/100 |\n", result.Breakdown.Readability.Score))
	output.WriteString("\n")

	if len(result.Breakdown.Sections.MissingRequired) > 0 {
		output.WriteString("## Missing Sections\n\n")
		for _, section := range result.Breakdown.Sections.MissingRequired {
			output.WriteString(fmt.Sprintf("- %s\n", section))
		}
		output.WriteString("\n")
	}

	if len(result.Fixes) > 0 {
		output.WriteString("## Suggested Fixes\n\n")
		for i, fix := range result.Fixes {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, fix))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Coach Note\n\n")
	output.WriteString(result.CoachNote)
	output.WriteString("\n")

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "AtsResult"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
