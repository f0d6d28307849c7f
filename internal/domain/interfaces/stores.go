package interfaces

import (
	"context"

	domaintypes "dante/internal/domain/types"
)

// KV is the durable key-value backend that persisted stores write through to.
// Get returns (nil, nil) when the key does not exist.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LogoutParticipant is anything reset by the session fanout.
// Logout must be idempotent and must not fail from the caller's view.
type LogoutParticipant interface {
	Logout()
}

// CompanyStore holds the logged-in company profile and its token.
type CompanyStore interface {
	LogoutParticipant
	Login(company domaintypes.Company, token string)
	Company() (domaintypes.Company, bool)
	Token() (string, bool)
	Snapshot() domaintypes.CompanySession
}

// UserStore holds the logged-in user profile.
type UserStore interface {
	LogoutParticipant
	SetUser(user domaintypes.User)
	ClearUser()
	User() (domaintypes.User, bool)
	Snapshot() domaintypes.UserSession
}

// SessionStore holds the bearer token used for API calls.
type SessionStore interface {
	LogoutParticipant
	Login(token string)
	Token() (string, bool)
	IsAuthenticated() bool
	Snapshot() domaintypes.TokenSession
}
