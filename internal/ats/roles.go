package ats

import (
	"regexp"
	"sort"
	"strings"
)

// RoleProfile lists the keywords a target role is screened against.
// Required keywords dominate the coverage score; nice-to-haves round it out.
type RoleProfile struct {
	Required []string `json:"required" mapstructure:"required"`
	Nice     []string `json:"nice" mapstructure:"nice"`
}

// builtinRoles is the stock screening library. Custom profiles loaded from
// configuration are merged over these by key.
var builtinRoles = map[string]RoleProfile{
	"software_engineer": {
		Required: []string{"javascript", "react", "api", "testing"},
		Nice:     []string{"typescript", "node", "docker", "aws", "microservices"},
	},
	"frontend_developer": {
		Required: []string{"javascript", "css", "html", "react"},
		Nice:     []string{"typescript", "next.js", "accessibility", "testing"},
	},
	"backend_developer": {
		Required: []string{"api", "database", "microservices", "testing"},
		Nice:     []string{"node", "python", "java", "cloud", "docker", "kubernetes"},
	},
	"data_scientist": {
		Required: []string{"python", "model", "statistics", "sql"},
		Nice:     []string{"pandas", "numpy", "ml", "scikit", "tableau"},
	},
	"data_analyst": {
		Required: []string{"sql", "excel", "dashboard", "insights"},
		Nice:     []string{"tableau", "power bi", "python", "visualisation"},
	},
	"product_manager": {
		Required: []string{"roadmap", "stakeholder", "product", "launch"},
		Nice:     []string{"metrics", "user research", "experiments", "agile"},
	},
	"designer": {
		Required: []string{"design", "ux", "ui", "prototype"},
		Nice:     []string{"figma", "user research", "wireframe", "visual"},
	},
	"qa_engineer": {
		Required: []string{"testing", "test cases", "automation", "qa"},
		Nice:     []string{"selenium", "cypress", "regression", "ci/cd"},
	},
	"marketing_manager": {
		Required: []string{"campaign", "strategy", "growth", "marketing"},
		Nice:     []string{"roi", "content", "performance", "analytics"},
	},
}

type roleAlias struct {
	re  *regexp.Regexp
	key string
}

// roleAliases map free-form role strings onto library keys. Order matters:
// the first matching alias wins, so broader patterns come after narrow ones.
var roleAliases = []roleAlias{
	{regexp.MustCompile(`(?i)(front[-\s]?end|ui) developer`), "frontend_developer"},
	{regexp.MustCompile(`(?i)(full[-\s]?stack)`), "software_engineer"},
	{regexp.MustCompile(`(?i)(software|swe|engineer)`), "software_engineer"},
	{regexp.MustCompile(`(?i)(back[-\s]?end)`), "backend_developer"},
	{regexp.MustCompile(`(?i)(data scientist)`), "data_scientist"},
	{regexp.MustCompile(`(?i)(data analyst|business analyst)`), "data_analyst"},
	{regexp.MustCompile(`(?i)(product manager|pm)`), "product_manager"},
	{regexp.MustCompile(`(?i)(designer|ux|ui)`), "designer"},
	{regexp.MustCompile(`(?i)(qa|quality assurance|test engineer)`), "qa_engineer"},
	{regexp.MustCompile(`(?i)(growth|marketing)`), "marketing_manager"},
}

var nonLetterRunRe = regexp.MustCompile(`[^a-z]+`)

// resolveRole maps a free-form role string to a library key. The lowercased,
// underscored form is tried as a direct key first, then the alias patterns in
// order. Unknown roles return the empty string.
func (a *Analyzer) resolveRole(role string) string {
	trimmed := strings.TrimSpace(role)
	if trimmed == "" {
		return ""
	}
	direct := nonLetterRunRe.ReplaceAllString(strings.ToLower(trimmed), "_")
	if _, ok := a.roles[direct]; ok {
		return direct
	}
	for _, alias := range roleAliases {
		if alias.re.MatchString(trimmed) {
			return alias.key
		}
	}
	return ""
}

// Roles returns the keys the analyzer can screen against, for display and
// for the stats endpoint.
func (a *Analyzer) Roles() []string {
	keys := make([]string, 0, len(a.roles))
	for k := range a.roles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
