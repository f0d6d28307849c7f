package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"dante/internal/domain"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// TokenSource yields the bearer token for outgoing requests.
type TokenSource interface {
	Token() (string, bool)
}

// HTTPClient is the REST client for the danted server.
type HTTPClient struct {
	Base   string
	HTTP   *http.Client
	Tokens TokenSource
	Log    *zap.Logger
}

// NewHTTP returns a client for base (e.g. http://127.0.0.1:5000).
// httpClient and tokens may be nil.
func NewHTTP(base string, httpClient *http.Client, tokens TokenSource, log *zap.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPClient{
		Base:   strings.TrimRight(base, "/"),
		HTTP:   httpClient,
		Tokens: tokens,
		Log:    log,
	}
}

// do sends a JSON request (in may be nil) and decodes a JSON response into out (may be nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, path, out)
}

// doMultipart sends fields plus an optional file part as multipart/form-data.
func (c *HTTPClient) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField string, file *domain.Attachment, out any) error {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		fw, err := mw.CreatePart(filePartHeader(fileField, file.Filename))
		if err != nil {
			return err
		}
		if _, err := fw.Write(file.Data); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}
	req, err := c.newRequest(ctx, method, path, nil, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req, path, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.Base + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Tokens != nil {
		if tok, ok := c.Tokens.Token(); ok && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

func (c *HTTPClient) send(req *http.Request, path string, out any) error {
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	c.Log.Debug("api call",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return decodeError(req.Method, path, resp.StatusCode, b)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api %s %s: decode response: %w", req.Method, path, err)
	}
	return nil
}
