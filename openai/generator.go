// Package openai implements sitebrief.Generator using the OpenAI chat
// completions API or any compatible endpoint.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/sitebrief"
	"github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT3Dot5Turbo

var _ sitebrief.Generator = (*Generator)(nil)

// Generator implements sitebrief.Generator using chat completions.
type Generator struct {
	client *openai.Client
	model  string
}

// NewClient creates a chat completions client. An empty baseURL uses the
// public OpenAI endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *openai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends req as a system and user message pair and returns the
// first choice's content.
func (g *Generator) Generate(ctx context.Context, req sitebrief.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.User) == "" {
		return "", sitebrief.Errorf(sitebrief.EINVALID, "prompt required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, BuildRequest(g.model, req))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", sitebrief.Errorf(sitebrief.EINTERNAL, "openai returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildRequest returns the chat completion request for req.
func BuildRequest(model string, req sitebrief.GenerateRequest) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
	}
}
