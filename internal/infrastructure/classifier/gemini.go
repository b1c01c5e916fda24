// Package classifier provides the Gemini-backed implementation of the
// extraction pipeline's text-classification collaborator.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-bridge/internal/config"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

type Gemini struct {
	client    *genai.Client
	modelName string
}

func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*Gemini, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	return &Gemini{client: client, modelName: model}, nil
}

// Classify sends the instructions and description to Gemini and returns
// the concatenated textual response. JSON output is requested, but the
// caller still treats the payload as untrusted.
func (g *Gemini) Classify(ctx context.Context, description string, instructions string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini classifier is not initialized")
	}

	prompt := strings.TrimSpace(instructions) + "\n\nJob description:\n" + strings.TrimSpace(description)

	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

func (g *Gemini) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}
