// Package gemini implements sitebrief.Generator using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/sitebrief"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

var _ sitebrief.Generator = (*Generator)(nil)

// Generator implements sitebrief.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends req to Gemini and returns the reply text.
func (g *Generator) Generate(ctx context.Context, req sitebrief.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.User) == "" {
		return "", sitebrief.Errorf(sitebrief.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.User}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", sitebrief.Errorf(sitebrief.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", sitebrief.Errorf(sitebrief.EINTERNAL, "gemini returned empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for req.
func BuildConfig(req sitebrief.GenerateRequest) *genai.GenerateContentConfig {
	temp := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	return config
}
