package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/config"
)

// Request is one generation call. APIKey is the caller's key; providers never
// fall back to a key of their own.
type Request struct {
	Kind   catalog.Kind
	Prompt string
	APIKey string
}

// Part, Content and Candidate mirror the Gemini generateContent response.
// Every provider answers in this shape so clients parse a single format.
type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
	Index        int     `json:"index"`
}

type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount,omitempty"`
	CandidatesTokenCount int `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount      int `json:"totalTokenCount,omitempty"`
}

// Response is the body returned by the generation endpoint.
type Response struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
	ModelVersion  string         `json:"modelVersion,omitempty"`
}

// Text returns the text of the first part of the first candidate, or "".
func (r *Response) Text() string {
	if r == nil || len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

// TextResponse wraps plain text in the candidates shape.
func TextResponse(text, model string) *Response {
	return &Response{
		Candidates: []Candidate{{
			Content:      Content{Parts: []Part{{Text: text}}, Role: "model"},
			FinishReason: "STOP",
		}},
		ModelVersion: model,
	}
}

// Generator produces content for a prompt with a provider's model.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	Name() string
}

// UpstreamError is returned when the provider answers with a non-2xx status.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API returned %d: %s", e.Provider, e.StatusCode, e.Message)
}

// New creates the Generator selected by cfg.LLM.Provider.
func New(cfg *config.Config) (Generator, error) {
	client := &http.Client{Timeout: cfg.LLM.Timeout}
	switch cfg.LLM.Provider {
	case "", "gemini":
		return newGeminiGenerator(cfg, client), nil
	case "anthropic":
		return newAnthropicGenerator(cfg, client), nil
	case "openai", "openai-compatible":
		return newOpenAIGenerator(cfg, client), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}
