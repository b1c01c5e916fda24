package normalize

import "testing"

func testRules(t *testing.T) Rules {
	t.Helper()
	rules, err := NewRules(DefaultRuleSpecs())
	if err != nil {
		t.Fatalf("compile default rules: %v", err)
	}
	return rules
}

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Desenvolvedor Sênior (Go/Python)!", "desenvolvedor senior gopython"},
		{"  multiple   spaces\t and\nlines ", "multiple spaces and lines"},
		{"ABC-123", "abc123"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeText(tc.in); got != tc.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSkillName_Rules(t *testing.T) {
	rules := testRules(t)

	cases := []struct {
		in   string
		want string
	}{
		{"node js", "Node.js"},
		{"Node.js", "Node.js"},
		{"NODEJS", "Node.js"},
		{"react-js", "React"},
		{"postgres", "PostgreSQL"},
		{"PostgreSQL", "PostgreSQL"},
		{"k8s", "Kubernetes"},
		{"golang", "Go"},
		{"c#", "C#"},
	}
	for _, tc := range cases {
		if got := NormalizeSkillName(tc.in, rules); got != tc.want {
			t.Errorf("NormalizeSkillName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSkillName_VersionSuffix(t *testing.T) {
	rules := testRules(t)

	cases := []struct {
		in   string
		want string
	}{
		{"java8", "Java"},
		{"Java - 11", "Java"},
		{"python 3.11", "Python"},
		{"angular9", "Angular"},
	}
	for _, tc := range cases {
		if got := NormalizeSkillName(tc.in, rules); got != tc.want {
			t.Errorf("NormalizeSkillName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSkillName_TitleCaseFallback(t *testing.T) {
	rules := testRules(t)

	cases := []struct {
		in   string
		want string
	}{
		{"  machine learning ", "Machine Learning"},
		{"gestão de projetos", "Gestao De Projetos"},
		{"scrum,", "Scrum"},
		{"comunicacao", "Comunicacao"},
	}
	for _, tc := range cases {
		if got := NormalizeSkillName(tc.in, rules); got != tc.want {
			t.Errorf("NormalizeSkillName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSkillName_Truncation(t *testing.T) {
	rules := testRules(t)

	long := ""
	for i := 0; i < 10; i++ {
		long += "abcdefghij"
	}
	got := NormalizeSkillName(long, rules)
	if len([]rune(got)) > maxSkillNameLen {
		t.Fatalf("expected truncation to %d runes, got %d", maxSkillNameLen, len([]rune(got)))
	}
}

func TestNormalizeSkillName_Empty(t *testing.T) {
	rules := testRules(t)
	if got := NormalizeSkillName("  ...  ", rules); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestDedupKey(t *testing.T) {
	if DedupKey("Node.js") != DedupKey("node js") {
		t.Fatalf("expected Node.js and node js to share a dedup key")
	}
	if DedupKey("Programação") != "programacao" {
		t.Fatalf("expected diacritics stripped, got %q", DedupKey("Programação"))
	}
	if DedupKey("C++") != "c" {
		t.Fatalf("expected non-alphanumerics removed, got %q", DedupKey("C++"))
	}
}

func TestNewRules_InvalidPattern(t *testing.T) {
	_, err := NewRules([]RuleSpec{{Pattern: `([`, Canonical: "Broken"}})
	if err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestRules_Order(t *testing.T) {
	rules, err := NewRules([]RuleSpec{
		{Pattern: `go.*`, Canonical: "First"},
		{Pattern: `golang`, Canonical: "Second"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, ok := rules.Canonical("golang")
	if !ok || got != "First" {
		t.Fatalf("expected first matching rule to win, got %q ok=%t", got, ok)
	}
}
