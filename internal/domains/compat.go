package domains

// compatibility is a directed graph: the candidate's domain may satisfy the
// listed job domains. Edges are not symmetric; a frontend developer can grow
// into a fullstack role, but a fullstack posting searching for frontend
// candidates is a different edge.
var compatibility = map[Domain][]Domain{
	SoftwareEngineering: {Backend, Frontend, Fullstack, DevOps, QA, Mobile},
	Frontend:            {Fullstack, SoftwareEngineering},
	Backend:             {Fullstack, SoftwareEngineering, DevOps, DataEngineering},
	Fullstack:           {SoftwareEngineering, Backend},
	DataEngineering:     {Backend, SoftwareEngineering, DataAnalytics, BI},
	DataScience:         {DataAnalytics, DataEngineering},
	DataAnalytics:       {BI, DataScience},
	BI:                  {DataAnalytics},
	DevOps:              {Backend, SoftwareEngineering, Security},
	Mobile:              {SoftwareEngineering, Frontend},
	QA:                  {SoftwareEngineering},
	Security:            {DevOps},
	Management:          {Product},
	Product:             {Management},
	FinanceAnalyst:      {DataAnalytics, BI},
}

// Compatible reports whether a candidate in one domain may satisfy a job in
// another. Same domain is always compatible.
func Compatible(candidate, job Domain) bool {
	if candidate == job {
		return true
	}
	for _, target := range compatibility[candidate] {
		if target == job {
			return true
		}
	}
	return false
}

// trivialTokens never justify a title match on their own. Seniority words are
// trivial, and so are "analyst", "data", "product", and "business": they span
// unrelated professions and appear in titles with nothing else in common.
var trivialTokens = map[string]struct{}{
	"senior": {}, "sr": {}, "junior": {}, "jr": {}, "staff": {}, "principal": {},
	"lead": {}, "head": {}, "chief": {}, "associate": {}, "entry": {}, "level": {},
	"i": {}, "ii": {}, "iii": {}, "iv": {},
	"analyst": {}, "data": {}, "product": {}, "business": {},
	"of": {}, "the": {}, "and": {}, "a": {}, "an": {},
}

// IsTrivialToken reports whether a lowercase title token is on the blocklist.
func IsTrivialToken(token string) bool {
	_, ok := trivialTokens[token]
	return ok
}
