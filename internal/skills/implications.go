package skills

import "regexp"

// implicationGraph maps a canonical skill to skills it implies. Expansion is a
// single hop: implied skills do not imply further skills, which keeps the
// candidate set from snowballing through chains like
// distributed systems -> kafka -> streaming -> flink.
var implicationGraph = map[string][]string{
	"distributed systems":  {"microservices", "kafka", "redis", "scalability"},
	"microservices":        {"rest api", "docker", "api design"},
	"kubernetes":           {"docker", "containers", "devops"},
	"terraform":            {"infrastructure as code", "devops"},
	"aws":                  {"cloud", "s3", "ec2"},
	"gcp":                  {"cloud", "bigquery"},
	"azure":                {"cloud"},
	"django":               {"python", "rest api"},
	"flask":                {"python", "rest api"},
	"fastapi":              {"python", "rest api"},
	"rails":                {"ruby"},
	"spring":               {"java"},
	"spring boot":          {"java", "spring", "rest api"},
	"react":                {"javascript", "frontend development"},
	"angular":              {"typescript", "frontend development"},
	"vue":                  {"javascript", "frontend development"},
	"next.js":              {"react", "javascript"},
	"node.js":              {"javascript", "backend development"},
	"pandas":               {"python", "data analysis"},
	"scikit-learn":         {"python", "machine learning"},
	"tensorflow":           {"python", "machine learning", "deep learning"},
	"pytorch":              {"python", "machine learning", "deep learning"},
	"pyspark":              {"spark", "python"},
	"spark":                {"etl", "big data"},
	"airflow":              {"etl", "python", "orchestration"},
	"dbt":                  {"sql", "etl", "data modeling"},
	"snowflake":            {"sql", "data warehousing"},
	"bigquery":             {"sql", "data warehousing", "gcp"},
	"redshift":             {"sql", "data warehousing", "aws"},
	"power bi":             {"dax", "data visualization", "business intelligence"},
	"tableau":              {"data visualization", "business intelligence"},
	"looker":               {"sql", "data visualization", "business intelligence"},
	"machine learning":     {"python", "statistics"},
	"deep learning":        {"machine learning"},
	"data warehousing":     {"sql", "etl"},
	"etl":                  {"sql"},
	"kafka":                {"distributed systems", "event streaming"},
	"graphql":              {"api design"},
	"ci/cd":                {"devops", "automation"},
	"docker":               {"devops"},
	"ansible":              {"devops", "automation"},
	"prometheus":           {"monitoring", "devops"},
	"grafana":              {"monitoring", "data visualization"},
	"selenium":             {"test automation", "qa"},
	"cypress":              {"test automation", "javascript"},
	"postgresql":           {"sql"},
	"mysql":                {"sql"},
	"sql server":           {"sql"},
	"oracle":               {"sql"},
	"mongodb":              {"nosql"},
	"redis":                {"nosql", "caching"},
	"elasticsearch":        {"nosql", "search"},
}

// contextualPhrase maps a free-text pattern in résumé prose to skills it
// evidences even when the skill name itself never appears.
type contextualPhrase struct {
	pattern *regexp.Regexp
	implied []string
}

var contextualPhrases = []contextualPhrase{
	{regexp.MustCompile(`(?i)built?\s+(a\s+)?rest(ful)?\s*api`), []string{"rest api", "api design"}},
	{regexp.MustCompile(`(?i)designed?\s+(and\s+built\s+)?api`), []string{"api design"}},
	{regexp.MustCompile(`(?i)deploy(ed|ing)?\s+.{0,30}(to\s+)?(aws|amazon)`), []string{"aws", "cloud"}},
	{regexp.MustCompile(`(?i)deploy(ed|ing)?\s+.{0,30}(to\s+)?(gcp|google cloud)`), []string{"gcp", "cloud"}},
	{regexp.MustCompile(`(?i)(containeriz|dockeriz)(ed|ation|ing)`), []string{"docker", "containers"}},
	{regexp.MustCompile(`(?i)orchestrat(ed|ion|ing)\s+.{0,30}containers?`), []string{"kubernetes"}},
	{regexp.MustCompile(`(?i)(built|designed|maintained)\s+.{0,30}(data\s+)?pipelines?`), []string{"etl", "data pipelines"}},
	{regexp.MustCompile(`(?i)(trained|fine.?tuned|built)\s+.{0,30}(ml\s+)?models?`), []string{"machine learning"}},
	{regexp.MustCompile(`(?i)a\/b\s+test(s|ing)?`), []string{"experimentation", "statistics"}},
	{regexp.MustCompile(`(?i)(dashboards?|visualizations?)\s+(in|using|with)`), []string{"data visualization"}},
	{regexp.MustCompile(`(?i)(migrat|scal)(ed|ing)\s+.{0,40}(database|cluster|infrastructure)`), []string{"scalability"}},
	{regexp.MustCompile(`(?i)(event.driven|pub\/?sub|message\s+queue)`), []string{"event streaming"}},
	{regexp.MustCompile(`(?i)(wrote|authored|maintained)\s+.{0,30}(unit|integration)\s+tests?`), []string{"unit testing"}},
	{regexp.MustCompile(`(?i)infrastructure.as.code`), []string{"terraform", "infrastructure as code"}},
	{regexp.MustCompile(`(?i)(sprint|stand.?ups?|retrospectives?)`), []string{"agile"}},
	{regexp.MustCompile(`(?i)(etl|elt)\s+(jobs?|process(es)?|workflows?)`), []string{"etl"}},
	{regexp.MustCompile(`(?i)stored\s+procedures?`), []string{"sql"}},
	{regexp.MustCompile(`(?i)(real.?time|streaming)\s+(data|analytics|processing)`), []string{"event streaming", "big data"}},
}

// Implied returns the single-hop implication expansion of a canonical skill.
func Implied(canonical string) []string {
	return implicationGraph[Canonical(canonical)]
}

// impliedFromText scans prose for contextual phrases and returns the skills
// they evidence, canonicalized and deduplicated.
func impliedFromText(text string) []string {
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var result []string
	for _, phrase := range contextualPhrases {
		if !phrase.pattern.MatchString(text) {
			continue
		}
		for _, skill := range phrase.implied {
			canonical := Canonical(skill)
			if _, ok := seen[canonical]; ok {
				continue
			}
			seen[canonical] = struct{}{}
			result = append(result, canonical)
		}
	}
	return result
}
