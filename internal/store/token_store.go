package store

import (
	"go.uber.org/zap"

	"dante/internal/domain"
)

// SessionStore persists the bearer token under SessionKey.
type SessionStore struct {
	p *persisted[domain.TokenSession]
}

func NewSessionStore(kv domain.KV, log *zap.Logger) *SessionStore {
	return &SessionStore{p: newPersisted[domain.TokenSession](kv, SessionKey, log)}
}

// Login replaces the held token.
func (s *SessionStore) Login(token string) {
	s.p.set(domain.TokenSession{Token: &token})
}

// Logout resets the token to null.
func (s *SessionStore) Logout() {
	s.p.set(domain.TokenSession{})
}

func (s *SessionStore) Token() (string, bool) {
	st := s.p.get()
	if st.Token == nil {
		return "", false
	}
	return *st.Token, true
}

// IsAuthenticated reports whether a non-empty token is held.
func (s *SessionStore) IsAuthenticated() bool {
	t, ok := s.Token()
	return ok && t != ""
}

func (s *SessionStore) Snapshot() domain.TokenSession {
	st := s.p.get()
	if st.Token == nil {
		return domain.TokenSession{}
	}
	t := *st.Token
	return domain.TokenSession{Token: &t}
}

var _ domain.SessionStore = (*SessionStore)(nil)
