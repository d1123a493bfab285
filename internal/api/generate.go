package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/llm"
	"github.com/joestump/scribo/internal/metrics"
	"github.com/joestump/scribo/internal/store"
)

// Detail strings returned by the generation routes.
const (
	DetailNoAPIKey      = "No API key provided. Please configure your Gemini API key."
	DetailPromptMissing = "prompt is required"
	DetailBadBody       = "invalid request body"
	DetailUpstreamFmt   = "Error calling Gemini API: "
	DetailRateLimited   = "Too many requests. Please wait a moment and try again."
)

// maxBodyBytes bounds the generation request body.
const maxBodyBytes = 1 << 20

// maxOwnerLen is the width of the generations.owner column.
const maxOwnerLen = 64

type generateHandler struct {
	generator   llm.Generator
	store       *store.GenerationStore
	fallbackKey string
}

// handle serves one generation route.
//
// @Summary      Generate content
// @Description  Sends the prompt to the configured model with the tool's system prompt and returns the provider's candidates.
// @Description  A request without api_key uses the server's key when one is configured.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request          body      client.GenerateRequest  true   "Prompt and API key"
// @Param        X-Scribo-Owner   header    string                  false  "History owner token"
// @Success      200              {object}  llm.Response
// @Header       200              {string}  X-Generation-Id  "History ID of the recorded generation"
// @Failure      400              {object}  ErrorResponse
// @Failure      422              {object}  ErrorResponse
// @Failure      429              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /generatescript [post]
// @Router       /generatetitle [post]
// @Router       /generatecaption [post]
// @Router       /generatehashtag [post]
// @Router       /generateidea [post]
func (h *generateHandler) handle(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req client.GenerateRequest
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			metrics.GenerationsTotal.WithLabelValues(string(kind), "bad_request").Inc()
			writeDetail(w, http.StatusBadRequest, DetailBadBody)
			return
		}
		if strings.TrimSpace(req.Prompt) == "" {
			metrics.GenerationsTotal.WithLabelValues(string(kind), "bad_request").Inc()
			writeDetail(w, http.StatusUnprocessableEntity, DetailPromptMissing)
			return
		}

		apiKey := strings.TrimSpace(req.APIKey)
		if apiKey == "" {
			apiKey = h.fallbackKey
		}
		if apiKey == "" {
			metrics.GenerationsTotal.WithLabelValues(string(kind), "no_key").Inc()
			writeDetail(w, http.StatusBadRequest, DetailNoAPIKey)
			return
		}

		start := time.Now()
		resp, err := h.generator.Generate(r.Context(), llm.Request{
			Kind:   kind,
			Prompt: req.Prompt,
			APIKey: apiKey,
		})
		metrics.GenerationDuration.WithLabelValues(h.generator.Name()).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.GenerationsTotal.WithLabelValues(string(kind), "error").Inc()
			log.Error().Err(err).Str("tool", string(kind)).Str("provider", h.generator.Name()).Msg("generation failed")
			writeDetail(w, http.StatusInternalServerError, DetailUpstreamFmt+upstreamMessage(err))
			return
		}

		metrics.GenerationsTotal.WithLabelValues(string(kind), "ok").Inc()
		log.Info().
			Str("tool", string(kind)).
			Str("provider", h.generator.Name()).
			Dur("elapsed", time.Since(start)).
			Msg("generated content")

		if id := h.record(r.Context(), kind, ownerOf(r), req.Prompt, resp); id != "" {
			w.Header().Set(client.GenerationIDHeader, id)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// record stores a successful generation and returns its ID. Failures are
// logged and counted but never fail the request.
func (h *generateHandler) record(ctx context.Context, kind catalog.Kind, owner, prompt string, resp *llm.Response) string {
	if h.store == nil {
		return ""
	}
	content := resp.Text()
	if content == "" {
		content = client.NoContentText
	}
	g, err := h.store.Create(context.WithoutCancel(ctx), store.NewGeneration{
		Owner:    owner,
		Tool:     kind,
		Prompt:   prompt,
		Content:  content,
		Provider: h.generator.Name(),
		Model:    resp.ModelVersion,
	})
	if err != nil {
		metrics.GenerationsRecordErrorsTotal.Inc()
		log.Warn().Err(err).Str("tool", string(kind)).Msg("record generation")
		return ""
	}
	metrics.GenerationsStored.Inc()
	return g.ID
}

// ownerOf returns the history owner token sent by the web UI. Oversized
// tokens are dropped and the generation is stored without an owner.
func ownerOf(r *http.Request) string {
	owner := strings.TrimSpace(r.Header.Get(client.OwnerHeader))
	if len(owner) > maxOwnerLen {
		return ""
	}
	return owner
}

func upstreamMessage(err error) string {
	var up *llm.UpstreamError
	if errors.As(err, &up) {
		return up.Message
	}
	return err.Error()
}
