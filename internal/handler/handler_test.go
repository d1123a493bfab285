package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/scribo/internal/api"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/handler"
	"github.com/joestump/scribo/internal/llm"
	"github.com/joestump/scribo/internal/store"
	"github.com/joestump/scribo/internal/testutil"
)

type fakeGenerator struct {
	text string
	err  error
	last llm.Request
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return llm.TextResponse(f.text, "fake-1"), nil
}

// webEnv runs the full router behind a real listener so the UI's client can
// call the generation routes on the same origin. Each webEnv is one browser:
// its own cookie jar and, when addr is set, its own client address.
type webEnv struct {
	srv   *httptest.Server
	http  *http.Client
	addr  string
	gen   *fakeGenerator
	store *store.GenerationStore
}

func newWebEnv(t *testing.T, mutate ...func(*api.Deps)) *webEnv {
	t.Helper()
	gs := store.NewGenerationStore(testutil.NewTestDB(t))
	gen := &fakeGenerator{text: "HOOK: <b>tea</b> is great"}

	var router http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	deps := api.Deps{Generator: gen, Store: gs}
	for _, m := range mutate {
		m(&deps)
	}
	router = handler.NewRouter(handler.Deps{
		SessionManager: scs.New(),
		Client:         client.New(srv.URL),
		Store:          gs,
		API:            api.New(deps),
	})

	return &webEnv{srv: srv, http: newBrowserClient(t), gen: gen, store: gs}
}

func newBrowserClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// browser returns another browser on the same server with a fresh session,
// reaching it from addr.
func (e *webEnv) browser(t *testing.T, addr string) *webEnv {
	t.Helper()
	other := *e
	other.http = newBrowserClient(t)
	other.addr = addr
	return &other
}

func (e *webEnv) setHeaders(req *http.Request, header []string) {
	if e.addr != "" {
		req.Header.Set("X-Forwarded-For", e.addr)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
}

func (e *webEnv) get(t *testing.T, path string, header ...string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, e.srv.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/html")
	e.setHeaders(req, header)
	resp, err := e.http.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (e *webEnv) post(t *testing.T, path string, form url.Values, header ...string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, e.srv.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	e.setHeaders(req, header)
	resp, err := e.http.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func (e *webEnv) page(t *testing.T) string {
	t.Helper()
	resp := e.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return body(t, resp)
}

func (e *webEnv) saveKey(t *testing.T, key string) {
	t.Helper()
	resp := e.post(t, "/key", url.Values{"api_key": {key}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func (e *webEnv) generate(t *testing.T, form url.Values) {
	t.Helper()
	resp := e.post(t, "/generate", form)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

var historyLink = regexp.MustCompile(`/history/([0-9a-f-]{36})`)

// generationID returns the history ID linked from the generator page.
func (e *webEnv) generationID(t *testing.T) string {
	t.Helper()
	m := historyLink.FindStringSubmatch(e.page(t))
	require.NotNil(t, m, "generator page links the generation in history")
	return m[1]
}

func TestRootServesJSONToAPIClients(t *testing.T) {
	env := newWebEnv(t)
	resp := env.get(t, "/", "Accept", "application/json")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, api.ReadyMessage, got["message"])
}

func TestFirstLoadPromptsForKey(t *testing.T) {
	env := newWebEnv(t)
	html := env.page(t)

	assert.Contains(t, html, `action="/key"`)
	assert.Contains(t, html, "Set API key")
	assert.Contains(t, html, "Script generator")
}

func TestGenerateFlow(t *testing.T) {
	env := newWebEnv(t)
	env.saveKey(t, "my-key")

	html := env.page(t)
	assert.NotContains(t, html, `action="/key"`, "key modal closes after saving")
	assert.Contains(t, html, "Key configured")

	env.generate(t, url.Values{
		"template": {"tiktok-viral"},
		"topic":    {"tea"},
		"platform": {"TikTok"},
		"duration": {"1 minute"},
		"audience": {"Students"},
	})

	assert.Equal(t, "Write a viral TikTok script about tea that is 1 minute long for Students. Make it trendy, engaging with hooks in first 3 seconds.", env.gen.last.Prompt)
	assert.Equal(t, "my-key", env.gen.last.APIKey)

	html = env.page(t)
	assert.Contains(t, html, "HOOK: &lt;b&gt;tea&lt;/b&gt; is great")

	n, err := env.store.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	id := env.generationID(t)
	assert.Equal(t, http.StatusOK, env.get(t, "/history/"+id).StatusCode)
}

func TestGenerateWithoutKeyShowsMessage(t *testing.T) {
	env := newWebEnv(t)
	env.generate(t, url.Values{"topic": {"tea"}})

	html := env.page(t)
	assert.Contains(t, html, client.MissingKeyMessage)
	assert.Contains(t, html, `action="/key"`)
	assert.Empty(t, env.gen.last.Prompt, "no call without a key")
}

func TestGenerateUpstreamErrorShowsDetail(t *testing.T) {
	env := newWebEnv(t)
	env.gen.err = &llm.UpstreamError{Provider: "gemini", StatusCode: 400, Message: "API key not valid"}
	env.saveKey(t, "bad")
	env.generate(t, url.Values{"topic": {"tea"}})

	html := env.page(t)
	assert.Contains(t, html, "Error calling Gemini API: API key not valid")
}

func TestGenerateBlankFormIsNoop(t *testing.T) {
	env := newWebEnv(t)
	env.saveKey(t, "k")
	env.generate(t, url.Values{"topic": {"   "}})

	assert.Empty(t, env.gen.last.Prompt)
}

func TestGenerateBlankFormWithoutKeyIsNoop(t *testing.T) {
	env := newWebEnv(t)
	env.post(t, "/key/close", nil)
	env.generate(t, url.Values{"topic": {""}})

	html := env.page(t)
	assert.NotContains(t, html, client.MissingKeyMessage)
	assert.NotContains(t, html, `action="/key"`, "key modal stays closed")
	assert.Empty(t, env.gen.last.Prompt)
}

func TestSelectToolKeepsTemplate(t *testing.T) {
	env := newWebEnv(t)
	env.saveKey(t, "k")
	env.post(t, "/form", url.Values{"template": {"tiktok-viral"}, "topic": {"tea"}})

	resp := env.post(t, "/tool/title", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// The title tool has no tiktok-viral template, so the raw topic is sent.
	env.generate(t, url.Values{})
	assert.Equal(t, "tea", env.gen.last.Prompt)

	assert.Equal(t, http.StatusNotFound, env.post(t, "/tool/podcast", nil).StatusCode)
}

func TestPreview(t *testing.T) {
	env := newWebEnv(t)
	resp := env.get(t, "/preview?tool=caption&template=instagram-post&topic=tea&audience=Followers")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Write an engaging Instagram caption about tea for Followers.")
	assert.Contains(t, html, "Length: appropriate duration.")

	resp = env.get(t, "/preview?tool=caption&template=")
	assert.NotContains(t, body(t, resp), "Prompt preview")
}

func TestExportCurrentContent(t *testing.T) {
	env := newWebEnv(t)
	assert.Equal(t, http.StatusNotFound, env.get(t, "/export.txt").StatusCode)

	env.saveKey(t, "k")
	env.generate(t, url.Values{"topic": {"tea"}})

	env.post(t, "/export/open", nil)
	assert.Contains(t, env.page(t), "Download as text")

	resp := env.get(t, "/export.txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="scribo-ai-script-`)
	assert.Equal(t, env.gen.text, body(t, resp))

	assert.NotContains(t, env.page(t), "Download as text", "download closes the modal")

	resp = env.get(t, "/export/print")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Script Content")
	assert.Contains(t, html, "&lt;b&gt;tea&lt;/b&gt;")
	assert.Contains(t, html, "window.print()")
}

func TestHistory(t *testing.T) {
	env := newWebEnv(t)
	env.saveKey(t, "k")
	env.post(t, "/tool/hashtag", nil)
	env.generate(t, url.Values{"topic": {"tea"}})
	id := env.generationID(t)

	html := body(t, env.get(t, "/history"))
	assert.Contains(t, html, "/history/"+id)

	html = body(t, env.get(t, "/history?tool=script"))
	assert.NotContains(t, html, "/history/"+id)

	resp := env.get(t, "/history/"+id+"/export.txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "scribo-ai-hashtag-")
	assert.Equal(t, env.gen.text, body(t, resp))

	resp = env.get(t, "/history/"+id+"/print?autoprint=0")
	html = body(t, resp)
	assert.Contains(t, html, "Hashtag Content")
	assert.NotContains(t, html, "window.print()")

	assert.Equal(t, http.StatusNotFound, env.get(t, "/history/missing").StatusCode)

	resp = env.post(t, "/history/"+id+"/delete", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, env.get(t, "/history/"+id).StatusCode)
}

func TestKeyRemove(t *testing.T) {
	env := newWebEnv(t)
	env.saveKey(t, "k")
	env.post(t, "/key/open", nil)
	html := env.page(t)
	assert.Contains(t, html, `value="k"`, "modal is prefilled with the stored key")

	env.post(t, "/key/remove", nil)
	env.generate(t, url.Values{"topic": {"tea"}})
	assert.Contains(t, env.page(t), client.MissingKeyMessage)
}

func TestBlankKeyIsIgnored(t *testing.T) {
	env := newWebEnv(t)
	env.saveKey(t, "  ")
	assert.Contains(t, env.page(t), "Set API key")
}

func TestThemeToggle(t *testing.T) {
	env := newWebEnv(t)

	resp := env.post(t, "/theme", url.Values{"theme": {"scribo-dark"}}, "HX-Request", "true")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("HX-Trigger"), "scribo-dark")
	assert.Contains(t, env.page(t), `data-theme="scribo-dark"`)

	resp = env.post(t, "/theme", url.Values{"theme": {"neon"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newWebEnv(t)
	resp := env.get(t, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "scribo_")
}

func TestHistoryIsPrivateToEachBrowser(t *testing.T) {
	alice := newWebEnv(t)
	alice.saveKey(t, "alice-key")
	alice.generate(t, url.Values{"topic": {"alice private topic"}})
	id := alice.generationID(t)

	bob := alice.browser(t, "")
	bob.saveKey(t, "bob-key")

	html := body(t, bob.get(t, "/history"))
	assert.NotContains(t, html, "/history/"+id)
	assert.NotContains(t, html, "is great")

	assert.Equal(t, http.StatusNotFound, bob.get(t, "/history/"+id).StatusCode)
	assert.Equal(t, http.StatusNotFound, bob.get(t, "/history/"+id+"/export.txt").StatusCode)
	assert.Equal(t, http.StatusNotFound, bob.get(t, "/history/"+id+"/print").StatusCode)
	assert.Equal(t, http.StatusNotFound, bob.post(t, "/history/"+id+"/delete", nil).StatusCode)

	resp := alice.get(t, "/history/"+id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "alice private topic")
	assert.Contains(t, body(t, alice.get(t, "/history")), "/history/"+id)
}

func TestRateLimitIsPerBrowserAddress(t *testing.T) {
	env := newWebEnv(t, func(d *api.Deps) {
		d.RateLimit = 0.001
		d.RateBurst = 1
	})
	a := env.browser(t, "203.0.113.1")
	b := env.browser(t, "203.0.113.2")
	a.saveKey(t, "k")
	b.saveKey(t, "k")

	a.generate(t, url.Values{"topic": {"tea"}})
	assert.Contains(t, a.page(t), "is great")

	b.generate(t, url.Values{"topic": {"coffee"}})
	html := b.page(t)
	assert.Contains(t, html, "is great")
	assert.NotContains(t, html, api.DetailRateLimited)

	a.generate(t, url.Values{"topic": {"more tea"}})
	assert.Contains(t, a.page(t), api.DetailRateLimited)
}

func TestAPIDocs(t *testing.T) {
	env := newWebEnv(t)
	resp := env.get(t, "/api/docs/doc.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "Scribo AI API", doc.Info["title"])
	for _, endpoint := range []string{"/generatescript", "/generatetitle", "/generatecaption", "/generatehashtag", "/generateidea"} {
		assert.Contains(t, doc.Paths[endpoint], "post", endpoint)
	}
	assert.Contains(t, doc.Paths["/"], "get")
}
