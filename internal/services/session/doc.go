// Package session resets every client-side store together on logout.
//
// The Coordinator calls Logout on each participant in a fixed order: identity
// stores first, then the domain caches, and the session token last. Each
// participant's Logout is self-contained; a participant that panics is logged
// and skipped so the rest are still reset.
package session
