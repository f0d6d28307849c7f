package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the server.
type Error struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("api %s %s: %d %s", e.Method, e.Path, e.Status, msg)
}

// StatusOf returns the HTTP status carried by err, or 0 if err is not an *Error.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool { return StatusOf(err) == http.StatusNotFound }

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }

// decodeError reads the error body. The server answers {"message": ...};
// some routes historically used "msg" or "error".
func decodeError(method, path string, status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
		Err     string `json:"error"`
	}
	e := &Error{Method: method, Path: path, Status: status}
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.Message != "":
			e.Message = payload.Message
		case payload.Msg != "":
			e.Message = payload.Msg
		default:
			e.Message = payload.Err
		}
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	return e
}
