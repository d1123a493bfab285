package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/joestump/scribo/internal/keystore"
	"github.com/joestump/scribo/internal/ui"
)

// KeyHandler manages the API key held in the browser session.
type KeyHandler struct {
	keys  keystore.KeyStore
	state *sessionState
}

// NewKeyHandler creates a new KeyHandler.
func NewKeyHandler(keys keystore.KeyStore, state *sessionState) *KeyHandler {
	return &KeyHandler{keys: keys, state: state}
}

// Open handles POST /key/open and prefills the modal with the stored key.
func (h *KeyHandler) Open(w http.ResponseWriter, r *http.Request) {
	current, _ := h.keys.Load(r.Context())
	h.state.update(r.Context(), ui.OpenKeyModal{Current: current})
	redirectBack(w, r)
}

// Close handles POST /key/close.
func (h *KeyHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.state.update(r.Context(), ui.CloseKeyModal{})
	redirectBack(w, r)
}

// Save handles POST /key. A blank key leaves the stored key untouched.
func (h *KeyHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	if err := h.keys.Save(ctx, r.PostFormValue("api_key")); err != nil {
		log.Error().Err(err).Msg("save api key")
		http.Error(w, "could not save key", http.StatusInternalServerError)
		return
	}
	stored, _ := h.keys.Load(ctx)
	h.state.update(ctx, ui.KeySaved{Configured: stored != ""}, ui.DismissError{})
	redirectBack(w, r)
}

// Remove handles POST /key/remove.
func (h *KeyHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.keys.Remove(ctx); err != nil {
		log.Error().Err(err).Msg("remove api key")
		http.Error(w, "could not remove key", http.StatusInternalServerError)
		return
	}
	h.state.update(ctx, ui.KeyRemoved{})
	redirectBack(w, r)
}
