// Package skills implements skill canonicalization and the keyword dimension of
// candidate-job fit scoring: section-aware, recency-weighted, implication-expanded
// coverage of a job's must-have, nice-to-have, and implicit skills.
package skills

import "strings"

// synonymGroups maps aliases to a canonical form. The first entry in each group
// is canonical; every other entry folds into it before any comparison.
var synonymGroups = [][]string{
	{"python", "python3"},
	{"java", "java8", "java 8", "java 11"},
	{"scala", "scala 2", "scala 3"},
	{"ruby", "ruby on rails"},
	{"php", "php7", "php8"},
	{"kotlin", "kt"},
	{"swift", "swiftui"},
	{"rust", "rustlang"},
	{"sql", "structured query language"},
	{"kubernetes", "k8s", "kube"},
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"postgresql", "postgres", "psql", "pgsql"},
	{"aws", "amazon web services"},
	{"gcp", "google cloud", "google cloud platform"},
	{"azure", "microsoft azure"},
	{"ci/cd", "cicd", "ci cd", "continuous integration", "continuous delivery"},
	{"golang", "go"},
	{"c#", "csharp", "c sharp", ".net", "dotnet"},
	{"c++", "cpp"},
	{"machine learning", "ml"},
	{"deep learning", "dl"},
	{"natural language processing", "nlp"},
	{"artificial intelligence", "ai"},
	{"react", "reactjs", "react.js"},
	{"vue", "vuejs", "vue.js"},
	{"angular", "angularjs"},
	{"node.js", "node", "nodejs"},
	{"next.js", "nextjs"},
	{"express", "expressjs", "express.js"},
	{"mongodb", "mongo"},
	{"elasticsearch", "elastic search", "elastic"},
	{"rest api", "rest", "restful", "restful api"},
	{"graphql", "graph ql"},
	{"microservices", "micro services", "microservice"},
	{"terraform", "tf"},
	{"docker", "containers", "containerization"},
	{"power bi", "powerbi"},
	{"tableau", "tableau desktop"},
	{"excel", "microsoft excel", "ms excel"},
	{"sql server", "mssql", "ms sql", "microsoft sql server"},
	{"etl", "elt", "data pipelines", "data pipeline"},
	{"airflow", "apache airflow"},
	{"spark", "apache spark", "pyspark"},
	{"kafka", "apache kafka"},
	{"hadoop", "apache hadoop"},
	{"snowflake", "snowflake dw"},
	{"dbt", "data build tool"},
	{"pandas", "python pandas"},
	{"scikit-learn", "sklearn", "scikit learn"},
	{"tensorflow", "tf2"},
	{"pytorch", "torch"},
	{"unit testing", "unit tests", "tdd", "test driven development"},
	{"agile", "scrum", "kanban"},
	{"html", "html5"},
	{"css", "css3"},
	{"bash", "shell scripting", "shell"},
	{"linux", "unix"},
	{"git", "github", "gitlab", "version control"},
	{"redis", "redis cache"},
	{"rabbitmq", "rabbit mq"},
	{"grpc", "g-rpc"},
	{"oauth", "oauth2", "oauth 2.0"},
	{"jira", "atlassian jira"},
	{"looker", "lookml"},
	{"qlik", "qlikview", "qlik sense"},
	{"sas", "sas programming"},
	{"r", "r language", "rlang"},
	{"data warehousing", "data warehouse", "dwh"},
	{"business intelligence", "bi"},
}

// canonicalBySynonym is the flattened alias lookup built from synonymGroups.
var canonicalBySynonym = buildSynonymIndex()

func buildSynonymIndex() map[string]string {
	index := make(map[string]string, len(synonymGroups)*3)
	for _, group := range synonymGroups {
		canonical := group[0]
		for _, alias := range group {
			index[alias] = canonical
		}
	}
	return index
}

// Canonical normalizes a free-text skill token: lowercase, trimmed, alias-folded.
// Tokens without a synonym entry pass through normalized but otherwise unchanged.
func Canonical(token string) string {
	normalized := strings.ToLower(strings.TrimSpace(token))
	normalized = strings.Trim(normalized, ".,;:!?")
	if canonical, ok := canonicalBySynonym[normalized]; ok {
		return canonical
	}
	return normalized
}

// CanonicalAll normalizes and deduplicates a slice of skill tokens, dropping empties.
func CanonicalAll(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		canonical := Canonical(token)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		result = append(result, canonical)
	}
	return result
}

// Aliases returns every known alias for a canonical skill, including itself.
// Skills without a synonym group return just themselves.
func Aliases(canonical string) []string {
	canonical = Canonical(canonical)
	for _, group := range synonymGroups {
		if group[0] == canonical {
			return group
		}
	}
	return []string{canonical}
}
