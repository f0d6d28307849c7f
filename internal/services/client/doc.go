// Package client keeps a local mirror of the logged-in company's clients.
package client
