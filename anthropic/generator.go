// Package anthropic implements sitebrief.Generator using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/sitebrief"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5"

// DefaultMaxTokens bounds the length of a generated summary.
const DefaultMaxTokens = 4096

var _ sitebrief.Generator = (*Generator)(nil)

// Generator implements sitebrief.Generator using Claude.
type Generator struct {
	client anthropic.Client
	model  string
}

// NewGenerator creates a new Generator authenticated with apiKey. An empty
// model selects DefaultModel. The SDK's own retries are disabled since
// callers retry at a higher level; opts are applied after that.
func NewGenerator(apiKey, model string, opts ...option.RequestOption) *Generator {
	if model == "" {
		model = DefaultModel
	}
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	return &Generator{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Generate sends req to the Messages API and returns the concatenated text
// blocks of the reply.
func (g *Generator) Generate(ctx context.Context, req sitebrief.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.User) == "" {
		return "", sitebrief.Errorf(sitebrief.EINVALID, "prompt required")
	}

	message, err := g.client.Messages.New(ctx, BuildParams(g.model, req))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", sitebrief.Errorf(sitebrief.EINTERNAL, "anthropic returned empty response")
	}
	return sb.String(), nil
}

// BuildParams returns the message parameters for req.
func BuildParams(model string, req sitebrief.GenerateRequest) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: DefaultMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	return params
}
