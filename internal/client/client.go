// Package client calls the scribo generation backend: one POST per
// generation, no retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/llm"
)

// NoContentText is the result when the backend succeeds without any text.
const NoContentText = "No content generated"

// Default user-facing messages.
const (
	MissingKeyMessage   = "Please configure your Gemini API key first."
	GenerateFailMessage = "Failed to generate content"
)

var (
	// ErrEmptyPrompt is returned, without any network call, for a blank prompt.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrMissingAPIKey is returned, without any network call, when no API key
	// is configured. Callers should send the user to key configuration.
	ErrMissingAPIKey = errors.New(MissingKeyMessage)

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New(GenerateFailMessage)
)

// APIError is a non-2xx answer from the backend. Its message is the
// backend's detail string.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return GenerateFailMessage
	}
	return e.Detail
}

// GenerateRequest is the wire body of a generation call.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"api_key"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// Client talks to the backend rooted at baseURL.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

// New returns a Client for the backend at baseURL, e.g. http://localhost:8000.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const (
	// GenerationIDHeader carries the history ID of a recorded generation.
	GenerationIDHeader = "X-Generation-Id"
	// OwnerHeader carries the history owner token of the caller.
	OwnerHeader = "X-Scribo-Owner"
)

// CallOption adds per-call metadata to a generation request.
type CallOption func(*http.Request)

// WithOwner files the generation under owner's history.
func WithOwner(owner string) CallOption {
	return func(req *http.Request) {
		if owner != "" {
			req.Header.Set(OwnerHeader, owner)
		}
	}
}

// WithForwardedFor reports addr as the originating client, so a backend
// behind chi's RealIP middleware rate limits the end user rather than the
// caller relaying the request.
func WithForwardedFor(addr string) CallOption {
	return func(req *http.Request) {
		if addr != "" {
			req.Header.Set("X-Forwarded-For", addr)
		}
	}
}

// Result is a successful generation.
type Result struct {
	Text string
	// GenerationID is the history ID reported by the backend, if any.
	GenerationID string
}

// Generate sends prompt to the endpoint for kind and returns the first
// candidate's text.
func (c *Client) Generate(ctx context.Context, kind catalog.Kind, prompt, apiKey string) (string, error) {
	res, err := c.GenerateResult(ctx, kind, prompt, apiKey)
	return res.Text, err
}

// GenerateResult is Generate with the response metadata.
func (c *Client) GenerateResult(ctx context.Context, kind catalog.Kind, prompt, apiKey string, opts ...CallOption) (Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return Result{}, ErrEmptyPrompt
	}
	if apiKey == "" {
		return Result{}, ErrMissingAPIKey
	}

	payload, err := json.Marshal(GenerateRequest{Prompt: prompt, APIKey: apiKey})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+kind.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("generate %s: %w", kind, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		return Result{}, &APIError{StatusCode: resp.StatusCode, Detail: eb.Detail}
	}

	var out llm.Response
	if err := json.Unmarshal(body, &out); err != nil {
		return Result{}, ErrMalformedResponse
	}
	res := Result{Text: out.Text(), GenerationID: resp.Header.Get(GenerationIDHeader)}
	if res.Text == "" {
		res.Text = NoContentText
	}
	return res, nil
}

// Message converts an error from Generate into the single string shown to
// the user.
func Message(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, ErrMissingAPIKey), errors.Is(err, ErrMalformedResponse):
		return err.Error()
	default:
		return GenerateFailMessage + ". Please check your API key and try again."
	}
}
