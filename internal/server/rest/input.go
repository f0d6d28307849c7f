package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// input is a request body read as loose key/value pairs, from either a JSON
// object or a form. Getters return nil for absent keys, which is what partial
// updates need; a malformed value is recorded and reported by Err.
type input struct {
	values map[string]any
	err    error
}

func readInput(c echo.Context) (*input, error) {
	req := c.Request()
	ct := req.Header.Get(echo.HeaderContentType)
	in := &input{values: map[string]any{}}

	switch {
	case strings.HasPrefix(ct, echo.MIMEMultipartForm), strings.HasPrefix(ct, echo.MIMEApplicationForm):
		form, err := c.FormParams()
		if err != nil {
			return nil, badRequest("Formulario inválido")
		}
		for k, vs := range form {
			if len(vs) > 0 {
				in.values[k] = vs[0]
			}
		}
	case req.ContentLength == 0:
	default:
		dec := json.NewDecoder(req.Body)
		dec.UseNumber()
		if err := dec.Decode(&in.values); err != nil && !errors.Is(err, io.EOF) {
			return nil, badRequest("JSON inválido")
		}
	}
	return in, nil
}

func (in *input) fail(key, what string) {
	if in.err == nil {
		in.err = badRequest(fmt.Sprintf("%s: %s", key, what))
	}
}

// Err returns the first malformed value as a 400 error.
func (in *input) Err() error { return in.err }

func (in *input) has(key string) bool {
	v, ok := in.values[key]
	return ok && v != nil
}

func (in *input) str(key string) *string {
	v, ok := in.values[key]
	if !ok || v == nil {
		return nil
	}
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case json.Number:
		s = x.String()
	case bool:
		s = strconv.FormatBool(x)
	default:
		in.fail(key, "se esperaba texto")
		return nil
	}
	return &s
}

// raw returns the string value untouched, or "".
func (in *input) raw(key string) string {
	if p := in.str(key); p != nil {
		return *p
	}
	return ""
}

// text returns the trimmed string value or "".
func (in *input) text(key string) string {
	if p := in.str(key); p != nil {
		return strings.TrimSpace(*p)
	}
	return ""
}

func (in *input) float(key string) *float64 {
	v, ok := in.values[key]
	if !ok || v == nil {
		return nil
	}
	var (
		f   float64
		err error
	)
	switch x := v.(type) {
	case json.Number:
		f, err = x.Float64()
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
		f, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		err = errors.New("not a number")
	}
	if err != nil {
		in.fail(key, "se esperaba un número")
		return nil
	}
	return &f
}

func (in *input) integer(key string) *int {
	v, ok := in.values[key]
	if !ok || v == nil {
		return nil
	}
	var (
		n   int64
		err error
	)
	switch x := v.(type) {
	case json.Number:
		n, err = x.Int64()
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
		n, err = strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	default:
		err = errors.New("not an integer")
	}
	if err != nil {
		in.fail(key, "se esperaba un entero")
		return nil
	}
	i := int(n)
	return &i
}

func (in *input) boolean(key string) *bool {
	v, ok := in.values[key]
	if !ok || v == nil {
		return nil
	}
	var (
		b   bool
		err error
	)
	switch x := v.(type) {
	case bool:
		b = x
	case string:
		b, err = strconv.ParseBool(strings.TrimSpace(x))
	default:
		err = errors.New("not a boolean")
	}
	if err != nil {
		in.fail(key, "se esperaba verdadero o falso")
		return nil
	}
	return &b
}

// formFile returns the named multipart file, or nil when the request has none.
func formFile(c echo.Context, field string) (*multipart.FileHeader, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, badRequest("Archivo inválido")
	}
	if fh.Filename == "" {
		return nil, nil
	}
	return fh, nil
}
