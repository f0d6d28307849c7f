package store

// Namespaced keys under which each identity store persists its envelope.
const (
	CompanyKey = "dante-session-company"
	UserKey    = "dante-session-user"
	SessionKey = "dante-session-token"
)

// envelopeVersion is written with every envelope; newer versions are rejected.
const envelopeVersion = 0
