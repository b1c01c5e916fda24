// Package normalize canonicalizes free text and skill names so that
// differently spelled mentions of the same skill compare equal. All
// functions are pure; rule sets are immutable snapshots built once at
// startup and passed in explicitly.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSkillNameLen = 60

// edgePunct is trimmed from skill-name boundaries. '+' and '#' stay so
// names like "C++" and "C#" survive.
const edgePunct = ".,;:!?'\"`()[]{}<>|\\*"

var (
	separatorReplacer = strings.NewReplacer("-", " ", "_", " ", "/", " ")
	whitespaceRe      = regexp.MustCompile(`\s+`)
)

// versionedTechnologies are platform/language names whose trailing version
// numbers carry no identity: "java8", "python 3.11" and "angular 9" all
// name the same skill.
var versionedTechnologies = []string{
	"angular", "django", "dotnet", "drupal", "java", "laravel", "net",
	"node", "nodejs", "php", "python", "rails", "react", "ruby", "spring",
	"symfony", "vue",
}

var versionSuffixRe = regexp.MustCompile(
	`^(` + strings.Join(versionedTechnologies, "|") + `) ?v?\d+(\.\d+)*$`,
)

// SanitizeText normalizes free text for storage comparison: diacritics
// stripped, lowercased, everything outside [a-z0-9 ] removed, whitespace
// collapsed.
func SanitizeText(s string) string {
	s = stripDiacritics(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(b.String(), " "))
}

// NormalizeSkillName standardizes a raw candidate skill name into its
// display form. The first rule whose pattern matches the whole cleaned
// name wins; otherwise each word is title-cased.
func NormalizeSkillName(raw string, rules Rules) string {
	s := strings.TrimSpace(raw)
	s = separatorReplacer.Replace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if r := []rune(s); len(r) > maxSkillNameLen {
		s = strings.TrimSpace(string(r[:maxSkillNameLen]))
	}

	s = strings.ToLower(stripDiacritics(s))

	if m := versionSuffixRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	s = strings.Trim(s, edgePunct)
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if canonical, ok := rules.Canonical(s); ok {
		return canonical
	}

	return cases.Title(language.Und).String(s)
}

// DedupKey reduces a name to a comparison key: diacritics stripped,
// lowercased, everything non-alphanumeric removed. Keys are only ever
// compared, never displayed.
func DedupKey(name string) string {
	s := strings.ToLower(stripDiacritics(name))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}
