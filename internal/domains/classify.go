// Package domains classifies free-text job titles into a closed set of
// professional domains and scores title/domain alignment between a candidate
// and a job. The domain gate is what keeps a Java Developer from matching a
// Business Analyst posting on keyword overlap alone.
package domains

import "regexp"

// Domain is the closed set of title categories.
type Domain string

// The closed domain set.
const (
	SoftwareEngineering Domain = "software-engineering"
	Frontend            Domain = "frontend"
	Backend             Domain = "backend"
	Fullstack           Domain = "fullstack"
	DataEngineering     Domain = "data-engineering"
	DataScience         Domain = "data-science"
	DataAnalytics       Domain = "data-analytics"
	BI                  Domain = "bi"
	DevOps              Domain = "devops"
	Mobile              Domain = "mobile"
	QA                  Domain = "qa"
	Security            Domain = "security"
	Management          Domain = "management"
	Design              Domain = "design"
	Product             Domain = "product"
	FinanceAnalyst      Domain = "finance-analyst"
	General             Domain = "general"
)

// classifierRule maps a title pattern to a domain. Rules are evaluated in
// order: specific patterns ("data engineer") must win over generic ones
// (bare "engineer"), so ordering is load-bearing.
type classifierRule struct {
	pattern *regexp.Regexp
	domain  Domain
}

var classifierRules = []classifierRule{
	{regexp.MustCompile(`(?i)\bdata\s+engineer`), DataEngineering},
	{regexp.MustCompile(`(?i)\b(etl|pipeline)\s+(developer|engineer)`), DataEngineering},
	{regexp.MustCompile(`(?i)\b(data\s+scien|machine\s+learning|ml\s+engineer|ai\s+engineer)`), DataScience},
	{regexp.MustCompile(`(?i)\b(business\s+intelligence|bi\s+(developer|engineer|analyst))`), BI},
	{regexp.MustCompile(`(?i)\b(financial|finance)\s+analyst`), FinanceAnalyst},
	{regexp.MustCompile(`(?i)\b(data|analytics|business|reporting)\s+analyst`), DataAnalytics},
	{regexp.MustCompile(`(?i)\bdata\s+analytics?\b`), DataAnalytics},
	{regexp.MustCompile(`(?i)\b(devops|sre|site\s+reliability|platform\s+engineer|infrastructure\s+engineer|cloud\s+engineer)`), DevOps},
	{regexp.MustCompile(`(?i)\b(ios|android|mobile)\s+(developer|engineer)`), Mobile},
	{regexp.MustCompile(`(?i)\b(qa|quality\s+assurance|test)\s+(engineer|analyst|automation)`), QA},
	{regexp.MustCompile(`(?i)\bsdet\b`), QA},
	{regexp.MustCompile(`(?i)\b(security\s+(engineer|analyst)|infosec|penetration\s+tester|appsec)`), Security},
	{regexp.MustCompile(`(?i)\b(front.?end|react|angular|vue|ui)\s+(developer|engineer)`), Frontend},
	{regexp.MustCompile(`(?i)\bfront.?end\b`), Frontend},
	{regexp.MustCompile(`(?i)\b(back.?end|server.?side)\s*(developer|engineer)?`), Backend},
	{regexp.MustCompile(`(?i)\bfull.?stack\b`), Fullstack},
	{regexp.MustCompile(`(?i)\b(engineering\s+manager|head\s+of|director|vp\b|cto|chief)`), Management},
	{regexp.MustCompile(`(?i)\bproduct\s+(manager|owner)`), Product},
	{regexp.MustCompile(`(?i)\b(ux|ui)\s+designer|\bdesigner\b`), Design},
	{regexp.MustCompile(`(?i)\b(software|web)\s+(developer|engineer)`), SoftwareEngineering},
	{regexp.MustCompile(`(?i)\b(developer|engineer|programmer|swe)\b`), SoftwareEngineering},
}

// Classify maps a free-text title to its domain. Titles matching no rule
// classify as General.
func Classify(title string) Domain {
	if title == "" {
		return General
	}
	for _, rule := range classifierRules {
		if rule.pattern.MatchString(title) {
			return rule.domain
		}
	}
	return General
}
