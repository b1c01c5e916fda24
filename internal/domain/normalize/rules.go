package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleSpec is the persisted form of a normalization rule: an ordered
// regular expression mapped to the canonical display spelling.
type RuleSpec struct {
	Pattern   string
	Canonical string
}

type rule struct {
	re        *regexp.Regexp
	canonical string
}

// Rules is an immutable, ordered normalization rule set. Patterns are
// anchored so each one must match the whole cleaned name.
type Rules struct {
	rules []rule
}

func NewRules(specs []RuleSpec) (Rules, error) {
	compiled := make([]rule, 0, len(specs))
	for _, spec := range specs {
		p := strings.TrimSpace(spec.Pattern)
		if p == "" {
			continue
		}
		re, err := regexp.Compile(`^(?:` + p + `)$`)
		if err != nil {
			return Rules{}, fmt.Errorf("compile rule %q: %w", spec.Pattern, err)
		}
		compiled = append(compiled, rule{re: re, canonical: spec.Canonical})
	}
	return Rules{rules: compiled}, nil
}

// Canonical returns the canonical spelling of the first rule matching the
// whole name, if any.
func (r Rules) Canonical(name string) (string, bool) {
	for _, rl := range r.rules {
		if rl.re.MatchString(name) {
			return rl.canonical, true
		}
	}
	return "", false
}

func (r Rules) Len() int {
	return len(r.rules)
}

// DefaultRuleSpecs seeds the rule table on first boot and backs the
// pipeline when the table is empty.
func DefaultRuleSpecs() []RuleSpec {
	return []RuleSpec{
		{Pattern: `node[ .]?js|node`, Canonical: "Node.js"},
		{Pattern: `react[ .]?js|react`, Canonical: "React"},
		{Pattern: `vue[ .]?js|vue`, Canonical: "Vue.js"},
		{Pattern: `angular[ .]?js|angular`, Canonical: "Angular"},
		{Pattern: `next[ .]?js`, Canonical: "Next.js"},
		{Pattern: `js|javascript`, Canonical: "JavaScript"},
		{Pattern: `ts|typescript`, Canonical: "TypeScript"},
		{Pattern: `golang|go`, Canonical: "Go"},
		{Pattern: `c ?sharp|c#`, Canonical: "C#"},
		{Pattern: `c ?\+\+|cpp`, Canonical: "C++"},
		{Pattern: `dot ?net|\.?net(?: core)?`, Canonical: ".NET"},
		{Pattern: `postgres(?:ql)?`, Canonical: "PostgreSQL"},
		{Pattern: `mongo(?: ?db)?`, Canonical: "MongoDB"},
		{Pattern: `(?:ms |microsoft )?sql ?server|mssql`, Canonical: "SQL Server"},
		{Pattern: `my ?sql`, Canonical: "MySQL"},
		{Pattern: `k8s|kubernetes`, Canonical: "Kubernetes"},
		{Pattern: `aws|amazon web services`, Canonical: "AWS"},
		{Pattern: `gcp|google cloud(?: platform)?`, Canonical: "GCP"},
		{Pattern: `ci ?cd|ci cd`, Canonical: "CI/CD"},
		{Pattern: `html ?5?`, Canonical: "HTML"},
		{Pattern: `css ?3?`, Canonical: "CSS"},
		{Pattern: `power ?bi`, Canonical: "Power BI"},
		{Pattern: `rest(?: ?api)?|api rest`, Canonical: "REST APIs"},
		{Pattern: `spring(?: boot)?`, Canonical: "Spring Boot"},
	}
}
