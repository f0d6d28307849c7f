package store

import (
	"go.uber.org/zap"

	"dante/internal/domain"
)

// UserStore persists the logged-in user under UserKey.
type UserStore struct {
	p *persisted[domain.UserSession]
}

func NewUserStore(kv domain.KV, log *zap.Logger) *UserStore {
	return &UserStore{p: newPersisted[domain.UserSession](kv, UserKey, log)}
}

// SetUser replaces the held user.
func (s *UserStore) SetUser(user domain.User) {
	s.p.set(domain.UserSession{User: &user})
}

// ClearUser resets the held user to null.
func (s *UserStore) ClearUser() {
	s.p.set(domain.UserSession{})
}

// Logout is ClearUser under the fanout's name.
func (s *UserStore) Logout() { s.ClearUser() }

func (s *UserStore) User() (domain.User, bool) {
	st := s.p.get()
	if st.User == nil {
		return domain.User{}, false
	}
	return *st.User, true
}

func (s *UserStore) Snapshot() domain.UserSession {
	st := s.p.get()
	if st.User == nil {
		return domain.UserSession{}
	}
	u := *st.User
	return domain.UserSession{User: &u}
}

var _ domain.UserStore = (*UserStore)(nil)
