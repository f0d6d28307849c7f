// Package api provides an HTTP implementation of the domain.APIClient
// interface used by the dante CLI.
//
// The client speaks to the danted REST server under the /api prefix.
// Supported operations cover companies, users, clients, products,
// categories, internal messages, support tickets and the assistant.
//
// Requests are JSON over HTTP unless a file is attached, in which case the
// body is multipart/form-data. Every call accepts a context for cancellation
// and deadlines, and carries the bearer token from the session store when one
// is held. Non-2xx statuses are returned as *Error values carrying the status
// code and the server's {"message"} text.
package api
