// Package ticket files and tracks support tickets.
package ticket
