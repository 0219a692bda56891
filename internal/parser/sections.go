package parser

import (
	"regexp"
	"strings"
)

var sectionHints = map[string]struct{}{
	"summary":                 {},
	"profile":                 {},
	"objective":               {},
	"experience":              {},
	"employment":              {},
	"work history":            {},
	"professional experience": {},
	"projects":                {},
	"education":               {},
	"skills":                  {},
	"certifications":          {},
	"awards":                  {},
	"publications":            {},
	"interests":               {},
	"hobbies":                 {},
	"volunteer":               {},
	"contact":                 {},
	"personal info":           {},
	"references":              {},
}

var sectionPrefix = regexp.MustCompile(`(?i)^(experience|education|skills|projects|summary|objective|contact)\b`)

// Section marks a detected header line together with the inclusive range of
// line indices its content spans.
type Section struct {
	Header string
	Start  int
	End    int
}

func isLikelySectionHeader(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	s = strings.TrimRight(s, ":.")
	if _, ok := sectionHints[s]; ok {
		return true
	}
	return sectionPrefix.MatchString(s)
}

// DetectSections returns the non-blank lines of text and the section headers
// found among them. A section runs from its header line to the line before
// the next header, or to the last line for the final section.
func DetectSections(text string) ([]string, []Section) {
	lines := LinesOf(text)
	var sections []Section
	for i, l := range lines {
		if isLikelySectionHeader(l) {
			sections = append(sections, Section{Header: strings.TrimSpace(l), Start: i})
		}
	}
	for i := range sections {
		if i < len(sections)-1 {
			sections[i].End = sections[i+1].Start - 1
		} else {
			sections[i].End = len(lines) - 1
		}
	}
	return lines, sections
}
