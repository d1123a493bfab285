// Package api is the generation backend: one POST route per content kind,
// JSON in and out, with errors reported as {"detail": "..."}.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/llm"
	"github.com/joestump/scribo/internal/store"
)

// ReadyMessage is returned by GET / to JSON clients.
const ReadyMessage = "Scribo AI Backend - Ready to generate content!"

// Deps holds all dependencies required to build the API routes.
type Deps struct {
	Generator llm.Generator
	// Store records successful generations. Nil disables history.
	Store *store.GenerationStore
	// FallbackKey is used when a request carries no api_key.
	FallbackKey    string
	AllowedOrigins []string
	// RateLimit is requests per second per client; zero disables limiting.
	RateLimit float64
	RateBurst int
}

// API serves the generation routes.
type API struct {
	gen     *generateHandler
	cors    func(http.Handler) http.Handler
	limiter *clientLimiter
}

// New builds the API from deps.
func New(deps Deps) *API {
	return &API{
		gen: &generateHandler{
			generator:   deps.Generator,
			store:       deps.Store,
			fallbackKey: deps.FallbackKey,
		},
		cors:    corsMiddleware(deps.AllowedOrigins),
		limiter: newClientLimiter(deps.RateLimit, deps.RateBurst),
	}
}

// Routes registers the generation routes on r. The web UI mounts them
// alongside its own pages so the backend and UI share one origin.
func (a *API) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(a.cors)
		r.Use(jsonContentType)
		r.Use(a.limiter.middleware)
		for _, k := range catalog.Kinds() {
			r.Options(k.Endpoint(), noContent)
			r.Post(k.Endpoint(), a.gen.handle(k))
		}
	})
}

// NewRouter returns a standalone router serving GET / and the generation
// routes.
func NewRouter(deps Deps) chi.Router {
	a := New(deps)
	r := chi.NewRouter()
	r.With(a.cors).Get("/", Ready)
	a.Routes(r)
	return r
}

// Ready answers GET / for JSON clients.
//
// @Summary      Readiness check
// @Tags         Generation
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func Ready(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": ReadyMessage})
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
