package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/scribo/internal/api"
	"github.com/joestump/scribo/internal/llm"
)

type echoGenerator struct{ lastKey string }

func (g *echoGenerator) Name() string { return "echo" }

func (g *echoGenerator) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	g.lastKey = req.APIKey
	return llm.TextResponse("generated: "+req.Prompt, "echo-1"), nil
}

// setup points the CLI at a temp key file, an in-memory backend and a quiet
// logger.
func setup(t *testing.T) (*echoGenerator, string) {
	t.Helper()
	gen := &echoGenerator{}
	srv := httptest.NewServer(api.NewRouter(api.Deps{Generator: gen}))
	t.Cleanup(srv.Close)

	keyFile := filepath.Join(t.TempDir(), "key")
	t.Setenv("SCRIBO_ENDPOINT_BASE", srv.URL)
	t.Setenv("SCRIBO_KEY_FILE", keyFile)
	t.Setenv("SCRIBO_LOG_LEVEL", "error")
	t.Setenv("GEMINI_API_KEY", "")
	return gen, keyFile
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTemplatesList(t *testing.T) {
	setup(t)
	out, err := run(t, "templates")
	require.NoError(t, err)
	for _, name := range []string{"script", "title", "caption", "hashtag", "ideas"} {
		assert.Contains(t, out, name)
	}
}

func TestTemplatesForTool(t *testing.T) {
	setup(t)
	out, err := run(t, "templates", "ideas")
	require.NoError(t, err)
	assert.Contains(t, out, "content-series")
	assert.Contains(t, out, "Number: 5 ideas")

	_, err = run(t, "templates", "poem")
	assert.Error(t, err)
}

func TestGeneratePreview(t *testing.T) {
	setup(t)
	out, err := run(t, "generate", "--tool", "title", "--template", "email-subject", "--preview", "coffee")
	require.NoError(t, err)
	assert.Equal(t, "Write compelling email subject lines about coffee for target audience. Ensure high open rates and avoid spam triggers.\n", out)
}

func TestGenerateNeedsKey(t *testing.T) {
	setup(t)
	_, err := run(t, "generate", "coffee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scribo key set")
}

func TestKeySetShowGenerateRemove(t *testing.T) {
	gen, keyFile := setup(t)

	_, err := run(t, "key", "set", "abcd1234")
	require.NoError(t, err)
	_, err = os.Stat(keyFile)
	require.NoError(t, err)

	out, err := run(t, "key", "show")
	require.NoError(t, err)
	assert.Equal(t, "****1234\n", out)

	dir := t.TempDir()
	out, err = run(t, "generate", "--tool", "hashtag", "--out", dir, "coffee")
	require.NoError(t, err)
	assert.Equal(t, "generated: coffee\n", out)
	assert.Equal(t, "abcd1234", gen.lastKey)

	files, err := filepath.Glob(filepath.Join(dir, "scribo-ai-hashtag-*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	b, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "generated: coffee", string(b))

	_, err = run(t, "key", "remove")
	require.NoError(t, err)
	out, err = run(t, "key", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "no API key stored")
}

func TestGenerateUnknownTemplate(t *testing.T) {
	setup(t)
	_, err := run(t, "generate", "--tool", "caption", "--template", "youtube-seo", "x")
	assert.Error(t, err)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "***", maskKey("abc"))
	assert.Equal(t, "**cdef", maskKey("abcdef"))
}
