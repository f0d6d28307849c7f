// Package scope resolves which company and user the current session acts for.
package scope

import (
	"dante/internal/domain"
)

// Scope reads the identity stores at call time, never caching the result.
type Scope struct {
	Companies domain.CompanyStore
	Users     domain.UserStore
}

func New(companies domain.CompanyStore, users domain.UserStore) *Scope {
	return &Scope{Companies: companies, Users: users}
}

// CompanyID returns the logged-in company, falling back to the user's company.
func (s *Scope) CompanyID() (domain.CompanyID, error) {
	if c, ok := s.Companies.Company(); ok && c.ID != "" {
		return c.ID, nil
	}
	if u, ok := s.Users.User(); ok && u.CompanyID != "" {
		return u.CompanyID, nil
	}
	return "", domain.ErrNotAuthenticated
}

// UserID returns the logged-in user.
func (s *Scope) UserID() (domain.UserID, error) {
	if u, ok := s.Users.User(); ok && u.ID != "" {
		return u.ID, nil
	}
	return "", domain.ErrNotAuthenticated
}
