// Package auth registers companies and logs companies or users in.
//
// Input is validated locally before any network call; failures are returned
// as *domain.ValidationError with one message per field. A successful login
// writes the returned profile and token into the identity stores.
package auth
