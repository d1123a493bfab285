package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/keystore"
)

type fakeGenerator struct {
	kind   catalog.Kind
	prompt string
	apiKey string
	calls  int
}

func (f *fakeGenerator) Generate(_ context.Context, kind catalog.Kind, prompt, apiKey string) (string, error) {
	if apiKey == "" {
		return "", client.ErrMissingAPIKey
	}
	f.calls++
	f.kind, f.prompt, f.apiKey = kind, prompt, apiKey
	return "generated", nil
}

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func newServer(key string) (*Server, *fakeGenerator) {
	gen := &fakeGenerator{}
	return New(catalog.Default, gen, keystore.NewMemoryStore(key)), gen
}

func TestListTemplates(t *testing.T) {
	s, _ := newServer("")
	res, err := s.handleListTemplates(context.Background(), call(map[string]any{"tool": "hashtag"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	out := text(t, res)
	assert.Contains(t, out, "Hashtags")
	assert.Contains(t, out, "`trending-mix`")
	assert.Contains(t, out, "## Quantity")
}

func TestListTemplatesUnknownTool(t *testing.T) {
	s, _ := newServer("")
	res, err := s.handleListTemplates(context.Background(), call(map[string]any{"tool": "poem"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestBuildPrompt(t *testing.T) {
	s, _ := newServer("")
	res, err := s.handleBuildPrompt(context.Background(), call(map[string]any{
		"tool":     "ideas",
		"template": "content-series",
		"topic":    "baking",
		"platform": "YouTube",
	}))
	require.NoError(t, err)
	assert.Equal(t,
		"Generate content series ideas about baking for target audience on YouTube. Create appropriate duration related content ideas that can be published over time.",
		text(t, res))
}

func TestBuildPromptUnknownTemplate(t *testing.T) {
	s, _ := newServer("")
	res, err := s.handleBuildPrompt(context.Background(), call(map[string]any{"tool": "title", "template": "tiktok-viral"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGenerateContentUsesStoredKey(t *testing.T) {
	s, gen := newServer("stored")
	res, err := s.handleGenerateContent(context.Background(), call(map[string]any{"tool": "script", "topic": "tea"}))
	require.NoError(t, err)
	assert.Equal(t, "generated", text(t, res))
	assert.Equal(t, catalog.Script, gen.kind)
	assert.Equal(t, "tea", gen.prompt)
	assert.Equal(t, "stored", gen.apiKey)
}

func TestGenerateContentExplicitKey(t *testing.T) {
	s, gen := newServer("stored")
	_, err := s.handleGenerateContent(context.Background(), call(map[string]any{"tool": "script", "topic": "tea", "api_key": "given"}))
	require.NoError(t, err)
	assert.Equal(t, "given", gen.apiKey)
}

func TestGenerateContentMissingKey(t *testing.T) {
	s, gen := newServer("")
	res, err := s.handleGenerateContent(context.Background(), call(map[string]any{"tool": "script", "topic": "tea"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "scribo key set")
	assert.Zero(t, gen.calls)
}

func TestGenerateContentEmptyPrompt(t *testing.T) {
	s, gen := newServer("k")
	res, err := s.handleGenerateContent(context.Background(), call(map[string]any{"tool": "script"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, gen.calls)
}

func TestTemplatesResource(t *testing.T) {
	s, _ := newServer("")
	contents, err := s.handleTemplatesResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	for _, c := range catalog.Default.Tools() {
		assert.Contains(t, tc.Text, c.Name)
	}
}
