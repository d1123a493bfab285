package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/joestump/scribo/internal/config"
)

const defaultOpenAIModel = "gpt-4o-mini"

type openaiGenerator struct {
	model   string
	baseURL string
	client  *http.Client
}

func newOpenAIGenerator(cfg *config.Config, client *http.Client) *openaiGenerator {
	model := cfg.LLM.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	baseURL := strings.TrimRight(cfg.LLM.BaseURL, "/")
	if baseURL != "" && !strings.HasSuffix(baseURL, "/v1") {
		baseURL += "/v1"
	}
	return &openaiGenerator{
		model:   model,
		baseURL: baseURL,
		client:  client,
	}
}

func (o *openaiGenerator) Name() string { return "openai" }

func (o *openaiGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(req.APIKey),
		option.WithHTTPClient(o.client),
		option.WithMaxRetries(0),
	}
	if o.baseURL != "" {
		opts = append(opts, option.WithBaseURL(o.baseURL+"/"))
	}
	client := openai.NewClient(opts...)

	var msgs []openai.ChatCompletionMessageParamUnion
	if system := SystemPrompt(req.Kind); system != "" {
		msgs = append(msgs, openai.SystemMessage(system))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: msgs,
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &UpstreamError{Provider: "openai", StatusCode: apiErr.StatusCode, Message: apiErr.Message}
		}
		return nil, fmt.Errorf("openai request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty response from openai")
	}

	out := TextResponse(resp.Choices[0].Message.Content, resp.Model)
	out.UsageMetadata = &UsageMetadata{
		PromptTokenCount:     int(resp.Usage.PromptTokens),
		CandidatesTokenCount: int(resp.Usage.CompletionTokens),
		TotalTokenCount:      int(resp.Usage.TotalTokens),
	}
	return out, nil
}
