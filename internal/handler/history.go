package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/export"
	"github.com/joestump/scribo/internal/metrics"
	"github.com/joestump/scribo/internal/store"
)

// historyLimit is the number of generations listed on the history page.
const historyLimit = 50

// HistoryPage is the template data for the history list.
type HistoryPage struct {
	BasePage
	Filter      catalog.Kind
	Generations []*store.Generation
}

// HistoryDetailPage is the template data for one history entry.
type HistoryDetailPage struct {
	BasePage
	Generation *store.Generation
}

// HistoryHandler lists and exports the session's past generations.
type HistoryHandler struct {
	reg   *catalog.Registry
	store *store.GenerationStore
	state *sessionState
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(reg *catalog.Registry, gs *store.GenerationStore, state *sessionState) *HistoryHandler {
	return &HistoryHandler{reg: reg, store: gs, state: state}
}

func (h *HistoryHandler) base(r *http.Request) BasePage {
	return BasePage{
		Theme:         themeFromRequest(r),
		Nav:           "history",
		KeyConfigured: h.state.load(r.Context()).KeyConfigured,
		Tools:         h.reg.Tools(),
	}
}

// Index handles GET /history. ?tool= narrows the list to one tool.
func (h *HistoryHandler) Index(w http.ResponseWriter, r *http.Request) {
	filter, err := catalog.ParseKind(r.URL.Query().Get("tool"))
	if err != nil {
		filter = ""
	}
	gens, err := h.store.ListRecent(r.Context(), h.state.owner(r.Context()), filter, historyLimit)
	if err != nil {
		log.Error().Err(err).Msg("list history")
		http.Error(w, "could not load history", http.StatusInternalServerError)
		return
	}
	render(w, "history.html", HistoryPage{BasePage: h.base(r), Filter: filter, Generations: gens})
}

func (h *HistoryHandler) lookup(w http.ResponseWriter, r *http.Request) (*store.Generation, bool) {
	g, err := h.store.Get(r.Context(), h.state.owner(r.Context()), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("get generation")
		http.Error(w, "could not load generation", http.StatusInternalServerError)
		return nil, false
	}
	return g, true
}

// Detail handles GET /history/{id}.
func (h *HistoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if g, ok := h.lookup(w, r); ok {
		render(w, "history_detail.html", HistoryDetailPage{BasePage: h.base(r), Generation: g})
	}
}

func artifactOf(g *store.Generation) export.Artifact {
	return export.Artifact{Kind: g.Tool, Content: g.Content, GeneratedAt: g.CreatedAt}
}

// Text handles GET /history/{id}/export.txt.
func (h *HistoryHandler) Text(w http.ResponseWriter, r *http.Request) {
	if g, ok := h.lookup(w, r); ok {
		serveText(w, artifactOf(g))
	}
}

// Print handles GET /history/{id}/print.
func (h *HistoryHandler) Print(w http.ResponseWriter, r *http.Request) {
	if g, ok := h.lookup(w, r); ok {
		servePrintable(w, r, artifactOf(g))
	}
}

// Delete handles POST /history/{id}/delete.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), h.state.owner(r.Context()), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("delete generation")
		http.Error(w, "could not delete generation", http.StatusInternalServerError)
		return
	}
	metrics.GenerationsStored.Dec()
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}
