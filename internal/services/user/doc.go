// Package user manages the company's user accounts.
//
// Besides mirroring the user list, it keeps the logged-in user's profile in
// the user store fresh whenever that user is edited.
package user
