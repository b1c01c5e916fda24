// Package extraction turns free-text job descriptions into deduplicated
// candidate skills by delegating language understanding to an external
// classifier and normalizing whatever comes back.
package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"skill-bridge/internal/domain/normalize"

	"go.uber.org/zap"
)

// Candidate is one extracted skill suggestion. SuggestedCategory is empty
// when the classifier proposed nothing usable.
type Candidate struct {
	Name              string
	SuggestedCategory string
}

type Pipeline struct {
	classifier Classifier
	rules      normalize.Rules
	logger     *zap.Logger
}

func NewPipeline(classifier Classifier, rules normalize.Rules, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{classifier: classifier, rules: rules, logger: logger}
}

// Extract returns the deduplicated candidate skills found in description.
// Extraction is best effort: a failed classifier call or an unparseable
// response yields an empty list, never an error, so the surrounding
// workflow is never blocked.
func (p *Pipeline) Extract(ctx context.Context, description string, allowedCategories []string) []Candidate {
	if p == nil || p.classifier == nil {
		return nil
	}
	if strings.TrimSpace(description) == "" {
		return nil
	}

	raw, err := p.classifier.Classify(ctx, description, BuildInstructions(allowedCategories))
	if err != nil {
		p.logger.Warn("skill extraction degraded, returning no candidates", zap.Error(err))
		return nil
	}

	payload, err := parsePayload(raw)
	if err != nil {
		p.logger.Warn("skill extraction response unparseable, returning no candidates", zap.Error(err))
		return nil
	}

	allowed := make(map[string]string, len(allowedCategories))
	for _, c := range allowedCategories {
		allowed[strings.ToLower(strings.TrimSpace(c))] = strings.TrimSpace(c)
	}

	seen := make(map[string]struct{}, len(payload.Skills))
	out := make([]Candidate, 0, len(payload.Skills))
	for _, s := range payload.Skills {
		name := normalize.NormalizeSkillName(s.Name, p.rules)
		if name == "" {
			continue
		}

		key := normalize.DedupKey(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		category := ""
		if c, ok := allowed[strings.ToLower(strings.TrimSpace(s.Category))]; ok {
			category = c
		}

		out = append(out, Candidate{Name: name, SuggestedCategory: category})
	}

	return out
}

// BuildInstructions renders the classifier prompt, enumerating the exact
// category names the response may use.
func BuildInstructions(allowedCategories []string) string {
	var b strings.Builder
	b.WriteString("Extract the professional skills mentioned in the job description below.\n")
	b.WriteString("Respond with a single JSON object, no surrounding prose, in the form:\n")
	b.WriteString(`{"skills": [{"name": "<skill name>", "category": "<category>"}]}` + "\n")
	b.WriteString("The category of each skill MUST be exactly one of the following names:\n")
	for _, c := range allowedCategories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		b.WriteString("- " + c + "\n")
	}
	b.WriteString("If no listed category fits a skill, omit the category field for it.\n")
	return b.String()
}

type skillPayload struct {
	Skills []candidatePayload `json:"skills"`
}

type candidatePayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// parsePayload accepts either a bare JSON payload or a JSON object buried
// in surrounding text (code fences, prose). The first brace-matched object
// carrying a "skills" key wins.
func parsePayload(raw string) (skillPayload, error) {
	raw = strings.TrimSpace(raw)

	var direct skillPayload
	if err := json.Unmarshal([]byte(raw), &direct); err == nil && direct.Skills != nil {
		return direct, nil
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] != '{' {
			continue
		}
		end, ok := matchBrace(raw, i)
		if !ok {
			break
		}

		var embedded skillPayload
		if err := json.Unmarshal([]byte(raw[i:end+1]), &embedded); err == nil && embedded.Skills != nil {
			return embedded, nil
		}
		i = end
	}

	return skillPayload{}, errNoSkillsPayload
}

var errNoSkillsPayload = jsonError("no skills payload found in response")

type jsonError string

func (e jsonError) Error() string { return string(e) }

// matchBrace returns the index of the brace closing the object opened at
// start, skipping braces inside JSON strings.
func matchBrace(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
