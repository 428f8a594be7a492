package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/sitebrief"
	"github.com/fwojciec/sitebrief/anthropic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	System      []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func TestGenerator_Generate_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	gen := anthropic.NewGenerator("test-key", "")

	_, err := gen.Generate(context.Background(), sitebrief.GenerateRequest{System: "x"})

	require.Error(t, err)
	assert.Equal(t, sitebrief.EINVALID, sitebrief.ErrorCode(err))
}

func TestGenerator_Generate_SendsMessage(t *testing.T) {
	t.Parallel()

	var got messageRequest
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		gotKey = r.Header.Get("X-Api-Key")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-5","content":[{"type":"text","text":"### ⚡️ **TL;DR**"},{"type":"text","text":"\nA shop."}],"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":5}}`))
	}))
	defer server.Close()

	gen := anthropic.NewGenerator("test-key", "", option.WithBaseURL(server.URL))

	text, err := gen.Generate(context.Background(), sitebrief.GenerateRequest{
		System:      "Antworte auf Deutsch.",
		User:        "Fasse die Seite zusammen.",
		Temperature: sitebrief.DefaultTemperature,
	})

	require.NoError(t, err)
	assert.Equal(t, "### ⚡️ **TL;DR**\nA shop.", text)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, anthropic.DefaultModel, got.Model)
	assert.Equal(t, anthropic.DefaultMaxTokens, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	require.Len(t, got.System, 1)
	assert.Equal(t, "Antworte auf Deutsch.", got.System[0].Text)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	require.Len(t, got.Messages[0].Content, 1)
	assert.Equal(t, "Fasse die Seite zusammen.", got.Messages[0].Content[0].Text)
}

func TestGenerator_Generate_ReturnsErrorWhenReplyEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-5","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`))
	}))
	defer server.Close()

	gen := anthropic.NewGenerator("test-key", "", option.WithBaseURL(server.URL))

	_, err := gen.Generate(context.Background(), sitebrief.GenerateRequest{User: "hi"})

	require.Error(t, err)
	assert.Equal(t, sitebrief.EINTERNAL, sitebrief.ErrorCode(err))
}

func TestGenerator_Generate_DoesNotRetryAPIErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`))
	}))
	defer server.Close()

	gen := anthropic.NewGenerator("test-key", "", option.WithBaseURL(server.URL))

	_, err := gen.Generate(context.Background(), sitebrief.GenerateRequest{User: "hi"})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestBuildParams_OmitsEmptySystem(t *testing.T) {
	t.Parallel()

	params := anthropic.BuildParams("claude-haiku-4-5", sitebrief.GenerateRequest{User: "hi"})

	assert.Empty(t, params.System)
	assert.Equal(t, "claude-haiku-4-5", string(params.Model))
	require.Len(t, params.Messages, 1)
}
