package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/scribo/internal/catalog"
)

type recordedCall struct {
	path string
	body GenerateRequest
}

func newBackend(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32, *recordedCall) {
	t.Helper()
	var calls atomic.Int32
	rec := &recordedCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		rec.path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &rec.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls, rec
}

func TestGenerateSuccess(t *testing.T) {
	srv, _, rec := newBackend(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Hello"}]}}]}`)

	got, err := New(srv.URL).Generate(context.Background(), catalog.Ideas, "ideas about tea", "key-1")
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
	assert.Equal(t, "/generateidea", rec.path)
	assert.Equal(t, GenerateRequest{Prompt: "ideas about tea", APIKey: "key-1"}, rec.body)
}

func TestGenerateMissingKeyMakesNoCall(t *testing.T) {
	srv, calls, _ := newBackend(t, http.StatusOK, `{}`)

	_, err := New(srv.URL).Generate(context.Background(), catalog.Script, "a prompt", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, MissingKeyMessage, Message(err))
	assert.Zero(t, calls.Load())
}

func TestGenerateEmptyPromptMakesNoCall(t *testing.T) {
	srv, calls, _ := newBackend(t, http.StatusOK, `{}`)

	for _, p := range []string{"", "   ", "\n\t"} {
		_, err := New(srv.URL).Generate(context.Background(), catalog.Script, p, "key")
		assert.ErrorIs(t, err, ErrEmptyPrompt)
	}
	assert.Zero(t, calls.Load())
}

func TestGenerateErrorDetail(t *testing.T) {
	srv, _, _ := newBackend(t, http.StatusBadRequest, `{"detail":"bad key"}`)

	_, err := New(srv.URL).Generate(context.Background(), catalog.Title, "p", "key")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "bad key", err.Error())
	assert.Equal(t, "bad key", Message(err))
}

func TestGenerateErrorWithoutDetail(t *testing.T) {
	srv, _, _ := newBackend(t, http.StatusBadGateway, `<html>oops</html>`)

	_, err := New(srv.URL).Generate(context.Background(), catalog.Title, "p", "key")
	assert.Equal(t, GenerateFailMessage, Message(err))
}

func TestGenerateMalformedSuccessBody(t *testing.T) {
	srv, _, _ := newBackend(t, http.StatusOK, `{"candidates":`)

	_, err := New(srv.URL).Generate(context.Background(), catalog.Caption, "p", "key")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateNoCandidates(t *testing.T) {
	srv, _, _ := newBackend(t, http.StatusOK, `{"candidates":[]}`)

	got, err := New(srv.URL).Generate(context.Background(), catalog.Hashtag, "p", "key")
	require.NoError(t, err)
	assert.Equal(t, NoContentText, got)
}

func TestGenerateTransportFailure(t *testing.T) {
	srv, _, _ := newBackend(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	_, err := New(url).Generate(context.Background(), catalog.Script, "p", "key")
	require.Error(t, err)
	assert.Contains(t, Message(err), GenerateFailMessage)
}

func TestEndpointPerKind(t *testing.T) {
	srv, _, rec := newBackend(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"x"}]}}]}`)
	c := New(srv.URL + "/")
	for _, k := range catalog.Kinds() {
		_, err := c.Generate(context.Background(), k, "p", "key")
		require.NoError(t, err)
		assert.Equal(t, k.Endpoint(), rec.path)
	}
}

func TestGenerateResultCarriesGenerationID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(GenerationIDHeader, "gen-42")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"x"}]}}]}`)
	}))
	t.Cleanup(srv.Close)

	res, err := New(srv.URL).GenerateResult(context.Background(), catalog.Title, "p", "key")
	require.NoError(t, err)
	assert.Equal(t, Result{Text: "x", GenerationID: "gen-42"}, res)
}

func TestGenerateResultCallOptions(t *testing.T) {
	var owner, forwarded string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner = r.Header.Get(OwnerHeader)
		forwarded = r.Header.Get("X-Forwarded-For")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"x"}]}}]}`)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	_, err := c.GenerateResult(context.Background(), catalog.Title, "p", "key", WithOwner("tok"), WithForwardedFor("203.0.113.7"))
	require.NoError(t, err)
	assert.Equal(t, "tok", owner)
	assert.Equal(t, "203.0.113.7", forwarded)

	_, err = c.GenerateResult(context.Background(), catalog.Title, "p", "key", WithOwner(""), WithForwardedFor(""))
	require.NoError(t, err)
	assert.Empty(t, owner)
	assert.Empty(t, forwarded)
}
