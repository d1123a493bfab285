package handler

import (
	"context"
	"encoding/gob"
	"net"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"github.com/joestump/scribo/internal/keystore"
	"github.com/joestump/scribo/internal/ui"
)

const (
	// stateKey is the session key holding the generator's ui.State.
	stateKey = "ui_state"
	// ownerKey holds the random token that scopes the session's history.
	ownerKey = "history_owner"
)

func init() {
	gob.Register(ui.State{})
}

// sessionState loads and stores one ui.State per browser session.
type sessionState struct {
	sm   *scs.SessionManager
	keys keystore.KeyStore
}

// load returns the session's state. KeyConfigured always reflects the key
// store, which may have changed outside the reducer.
func (s *sessionState) load(ctx context.Context) ui.State {
	key, _ := s.keys.Load(ctx)
	st, ok := s.sm.Get(ctx, stateKey).(ui.State)
	if !ok {
		return ui.Initial(key != "")
	}
	st.KeyConfigured = key != ""
	return st
}

func (s *sessionState) save(ctx context.Context, st ui.State) {
	s.sm.Put(ctx, stateKey, st)
}

// update loads the state, applies actions, stores and returns the result.
func (s *sessionState) update(ctx context.Context, actions ...ui.Action) ui.State {
	st := ui.ReduceAll(s.load(ctx), actions...)
	s.save(ctx, st)
	return st
}

// owner returns the session's history owner token, creating it on first use.
// It is unrelated to the API key and never leaves the server.
func (s *sessionState) owner(ctx context.Context) string {
	if o := s.sm.GetString(ctx, ownerKey); o != "" {
		return o
	}
	o := uuid.NewString()
	s.sm.Put(ctx, ownerKey, o)
	return o
}

// clientAddr is the browser's address. chi's RealIP middleware has already
// applied any forwarding headers to RemoteAddr.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// backTo returns the local path in the "next" form value, or "/".
func backTo(r *http.Request) string {
	next := r.FormValue("next")
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func redirectBack(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}
