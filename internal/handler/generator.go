package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/joestump/scribo/internal/api"
	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/keystore"
	"github.com/joestump/scribo/internal/prompt"
	"github.com/joestump/scribo/internal/ui"
)

// GeneratorPage is the template data for the generator page.
type GeneratorPage struct {
	BasePage
	State       ui.State
	Tool        catalog.ToolConfig
	Template    catalog.Template
	HasTemplate bool
	Preview     PreviewData
	CanGenerate bool
}

// PreviewData is the template data for the "preview" fragment.
type PreviewData struct {
	Prompt       string
	Placeholders []string
}

// GeneratorHandler serves the generator page and its form actions.
type GeneratorHandler struct {
	reg    *catalog.Registry
	client *client.Client
	keys   keystore.KeyStore
	state  *sessionState
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(reg *catalog.Registry, c *client.Client, keys keystore.KeyStore, state *sessionState) *GeneratorHandler {
	return &GeneratorHandler{reg: reg, client: c, keys: keys, state: state}
}

func (h *GeneratorHandler) page(r *http.Request, st ui.State) GeneratorPage {
	tool, _ := h.reg.Tool(st.Tool)
	tmpl, ok := tool.Template(st.TemplateID)
	p := GeneratorPage{
		BasePage: BasePage{
			Theme:         themeFromRequest(r),
			Nav:           "generate",
			KeyConfigured: st.KeyConfigured,
			Tools:         h.reg.Tools(),
		},
		State:       st,
		Tool:        tool,
		Template:    tmpl,
		HasTemplate: ok,
		CanGenerate: ui.CanGenerate(st),
	}
	if ok {
		p.Preview = PreviewData{
			Prompt:       ui.Prompt(h.reg, st),
			Placeholders: prompt.Placeholders(tmpl.Prompt),
		}
	}
	return p
}

// wantsJSON reports whether a GET / caller is an API client rather than a
// browser.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "text/html") {
		return false
	}
	return accept == "" || strings.Contains(accept, "application/json") || strings.Contains(accept, "*/*")
}

// Index serves GET /: the generator page for browsers, the ready message for
// JSON clients.
func (h *GeneratorHandler) Index(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		api.Ready(w, r)
		return
	}
	st := h.state.load(r.Context())
	render(w, "generator.html", h.page(r, st))
}

// SelectTool handles POST /tool/{kind}.
func (h *GeneratorHandler) SelectTool(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.state.update(r.Context(), ui.SelectTool{Tool: kind})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// formActions turns the generator form into reducer actions. Fields absent
// from the form are left alone.
func formActions(r *http.Request) []ui.Action {
	var actions []ui.Action
	if _, ok := r.PostForm["template"]; ok {
		actions = append(actions, ui.SelectTemplate{ID: r.PostFormValue("template")})
	}
	if _, ok := r.PostForm["topic"]; ok {
		actions = append(actions, ui.SetTopic{Value: r.PostFormValue("topic")})
	}
	if _, ok := r.PostForm["platform"]; ok {
		actions = append(actions, ui.SetPlatform{Value: r.PostFormValue("platform")})
	}
	if _, ok := r.PostForm["duration"]; ok {
		actions = append(actions, ui.SetDuration{Value: r.PostFormValue("duration")})
	}
	if _, ok := r.PostForm["audience"]; ok {
		actions = append(actions, ui.SetAudience{Value: r.PostFormValue("audience")})
	}
	return actions
}

// Update handles POST /form: stores the form without generating.
func (h *GeneratorHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.state.update(r.Context(), formActions(r)...)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Preview handles GET /preview and renders the prompt the form would send.
// It reads the form from the query string so it can follow keystrokes.
func (h *GeneratorHandler) Preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind, err := catalog.ParseKind(q.Get("tool"))
	if err != nil {
		kind = h.state.load(r.Context()).Tool
	}
	data := PreviewData{}
	if tmpl, ok := h.reg.Lookup(kind, q.Get("template")); ok {
		data.Prompt = prompt.Build(h.reg, kind, tmpl.ID, prompt.Fields{
			Topic:    q.Get("topic"),
			Platform: q.Get("platform"),
			Duration: q.Get("duration"),
			Audience: q.Get("audience"),
		})
		data.Placeholders = prompt.Placeholders(tmpl.Prompt)
	}
	renderFragment(w, "preview", data)
}

// Generate handles POST /generate.
func (h *GeneratorHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	st := ui.ReduceAll(h.state.load(ctx), formActions(r)...)

	text := ui.Prompt(h.reg, st)
	if !ui.CanGenerate(st) || strings.TrimSpace(text) == "" {
		h.state.save(ctx, st)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	key, err := h.keys.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("load api key")
	}
	if key == "" {
		st = ui.Reduce(st, ui.KeyRequired{Message: client.MissingKeyMessage})
		h.state.save(ctx, st)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// The session commits once, after this handler, so Generating is never
	// observed by another request; the page disables the button instead.
	st = ui.Reduce(st, ui.GenerateStarted{})
	res, err := h.client.GenerateResult(ctx, st.Tool, text, key,
		client.WithOwner(h.state.owner(ctx)),
		client.WithForwardedFor(clientAddr(r)),
	)
	switch {
	case errors.Is(err, client.ErrEmptyPrompt):
		st.Generating = false
	case err != nil:
		log.Warn().Err(err).Str("tool", string(st.Tool)).Msg("generate")
		st = ui.Reduce(st, ui.GenerateFailed{Message: client.Message(err)})
	default:
		st = ui.Reduce(st, ui.GenerateSucceeded{Content: res.Text, GenerationID: res.GenerationID})
	}
	h.state.save(ctx, st)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DismissError handles POST /error/dismiss.
func (h *GeneratorHandler) DismissError(w http.ResponseWriter, r *http.Request) {
	h.state.update(r.Context(), ui.DismissError{})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
