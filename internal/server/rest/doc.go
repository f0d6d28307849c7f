// Package rest is the danted HTTP API.
//
// Routes live under /api and speak JSON; create and update routes for records
// with images also accept multipart/form-data. Errors are always
// {"message": "..."}. Every route except company registration and login, user
// login, uploaded files, /healthz and /metrics needs a bearer JWT.
package rest
