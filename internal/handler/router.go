// Package handler serves the scribo web UI: the generator page, the API key
// modal, exports and history. It mounts the generation API on the same router.
package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/joestump/scribo/internal/api"
	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/keystore"
	"github.com/joestump/scribo/internal/logging"
	"github.com/joestump/scribo/internal/store"
	"github.com/joestump/scribo/web"

	_ "github.com/joestump/scribo/docs/swagger"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	Registry       *catalog.Registry
	// Client is how the UI reaches the generation backend.
	Client *client.Client
	Store  *store.GenerationStore
	API    *api.API
	// Keys defaults to a session-backed key store.
	Keys keystore.KeyStore
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	if deps.Registry == nil {
		deps.Registry = catalog.Default
	}
	if deps.Keys == nil {
		deps.Keys = keystore.NewSessionStore(deps.SessionManager)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.AccessLog)
	r.Use(middleware.Recoverer)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css and js/app.js directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI for the generation API.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	// Generation API, stateless and outside the session middleware.
	if deps.API != nil {
		deps.API.Routes(r)
	}

	state := &sessionState{sm: deps.SessionManager, keys: deps.Keys}
	gen := NewGeneratorHandler(deps.Registry, deps.Client, deps.Keys, state)
	keys := NewKeyHandler(deps.Keys, state)
	exports := NewExportHandler(state)
	history := NewHistoryHandler(deps.Registry, deps.Store, state)
	theme := NewThemeHandler()

	r.Group(func(r chi.Router) {
		r.Use(deps.SessionManager.LoadAndSave)

		r.Get("/", gen.Index)
		r.Post("/tool/{kind}", gen.SelectTool)
		r.Post("/form", gen.Update)
		r.Get("/preview", gen.Preview)
		r.Post("/generate", gen.Generate)
		r.Post("/error/dismiss", gen.DismissError)

		r.Post("/key", keys.Save)
		r.Post("/key/open", keys.Open)
		r.Post("/key/close", keys.Close)
		r.Post("/key/remove", keys.Remove)

		r.Post("/export/open", exports.Open)
		r.Post("/export/close", exports.Close)
		r.Get("/export.txt", exports.Text)
		r.Get("/export/print", exports.Print)

		r.Get("/history", history.Index)
		r.Get("/history/{id}", history.Detail)
		r.Get("/history/{id}/export.txt", history.Text)
		r.Get("/history/{id}/print", history.Print)
		r.Post("/history/{id}/delete", history.Delete)

		r.Post("/theme", theme.Toggle)
	})

	return r
}
