package keystore

import (
	"context"

	"github.com/alexedwards/scs/v2"
)

// SessionStore keeps the key in the caller's browser session. The context
// passed to each method must carry a session loaded by
// scs.SessionManager.LoadAndSave.
type SessionStore struct {
	sm *scs.SessionManager
}

// NewSessionStore returns a store bound to sm.
func NewSessionStore(sm *scs.SessionManager) *SessionStore {
	return &SessionStore{sm: sm}
}

func (s *SessionStore) Load(ctx context.Context) (string, error) {
	return s.sm.GetString(ctx, StorageKey), nil
}

func (s *SessionStore) Save(ctx context.Context, key string) error {
	k, ok := normalize(key)
	if !ok {
		return nil
	}
	s.sm.Put(ctx, StorageKey, k)
	return nil
}

func (s *SessionStore) Remove(ctx context.Context) error {
	s.sm.Remove(ctx, StorageKey)
	return nil
}
