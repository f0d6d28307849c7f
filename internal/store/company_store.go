package store

import (
	"go.uber.org/zap"

	"dante/internal/domain"
)

// CompanyStore persists the logged-in company and its token under CompanyKey.
type CompanyStore struct {
	p *persisted[domain.CompanySession]
}

// NewCompanyStore rehydrates the company session from kv.
func NewCompanyStore(kv domain.KV, log *zap.Logger) *CompanyStore {
	return &CompanyStore{p: newPersisted[domain.CompanySession](kv, CompanyKey, log)}
}

// Login replaces the held company and token. No validation is applied.
func (s *CompanyStore) Login(company domain.Company, token string) {
	s.p.set(domain.CompanySession{Company: &company, Token: &token})
}

// Logout resets both fields to null.
func (s *CompanyStore) Logout() {
	s.p.set(domain.CompanySession{})
}

func (s *CompanyStore) Company() (domain.Company, bool) {
	st := s.p.get()
	if st.Company == nil {
		return domain.Company{}, false
	}
	return *st.Company, true
}

func (s *CompanyStore) Token() (string, bool) {
	st := s.p.get()
	if st.Token == nil {
		return "", false
	}
	return *st.Token, true
}

// Snapshot returns a copy of the held state.
func (s *CompanyStore) Snapshot() domain.CompanySession {
	st := s.p.get()
	out := domain.CompanySession{}
	if st.Company != nil {
		c := *st.Company
		out.Company = &c
	}
	if st.Token != nil {
		t := *st.Token
		out.Token = &t
	}
	return out
}

var _ domain.CompanyStore = (*CompanyStore)(nil)
