package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"dante/internal/domain"
	"dante/internal/server/auth"
	"dante/internal/server/storage/sqlite"
	"dante/internal/server/uploads"
)

type testServer struct {
	t     *testing.T
	e     *echo.Echo
	store *sqlite.Store
	files *uploads.Store
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()
	store, err := sqlite.Open(filepath.Join(dir, "dante.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	files := uploads.New(filepath.Join(dir, "uploads"))
	e := New(Deps{
		Store:      store,
		Tokens:     auth.NewTokens("0123456789abcdef0123456789abcdef", time.Hour),
		Uploads:    files,
		LoginRate:  rate.Inf,
		LoginBurst: 1,
	})
	return &testServer{t: t, e: e, store: store, files: files}
}

type response struct {
	Code int
	Body []byte
}

func (r response) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), string(r.Body))
}

func (r response) message(t *testing.T) string {
	t.Helper()
	var m messageBody
	r.decode(t, &m)
	return m.Message
}

func (s *testServer) send(req *http.Request) response {
	if s.token != "" && req.Header.Get(echo.HeaderAuthorization) == "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	body, _ := io.ReadAll(rec.Body)
	return response{Code: rec.Code, Body: body}
}

func (s *testServer) json(method, path string, body any) response {
	s.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return s.send(req)
}

func (s *testServer) multipart(method, path string, fields map[string]string, fileField, filename string, data []byte) response {
	s.t.Helper()
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(s.t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(s.t, err)
		_, err = fw.Write(data)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, mw.Close())
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return s.send(req)
}

// bootstrap registers a company, logs it in and returns its id.
func (s *testServer) bootstrap() domain.CompanyID {
	s.t.Helper()
	res := s.json(http.MethodPost, "/api/companies", map[string]string{
		"name": "Acme", "email": "owner@acme.com", "password": "s3cret",
	})
	require.Equal(s.t, http.StatusCreated, res.Code, string(res.Body))
	var company domain.Company
	res.decode(s.t, &company)

	res = s.json(http.MethodPost, "/api/companies/login", map[string]string{"email": "owner@acme.com", "password": "s3cret"})
	require.Equal(s.t, http.StatusOK, res.Code, string(res.Body))
	var login domain.CompanyLogin
	res.decode(s.t, &login)
	require.NotEmpty(s.t, login.AccessToken)
	s.token = login.AccessToken
	return company.ID
}

func (s *testServer) createUser(company domain.CompanyID, email string) domain.User {
	s.t.Helper()
	res := s.json(http.MethodPost, "/api/users", map[string]string{
		"name": "Ana", "email": email, "password": "pw", "company_id": company.String(),
	})
	require.Equal(s.t, http.StatusCreated, res.Code, string(res.Body))
	var u domain.User
	res.decode(s.t, &u)
	return u
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	res := s.json(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestMetricsExposed(t *testing.T) {
	s := newTestServer(t)
	s.json(http.MethodGet, "/healthz", nil)
	res := s.json(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, string(res.Body), "dante_http_requests_total")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)

	res := s.json(http.MethodGet, "/api/clients?company_id=x", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.NotEmpty(t, res.message(t))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, s.send(req).Code)

	assert.Equal(t, http.StatusOK, s.json(http.MethodGet, "/api/companies", nil).Code)
}

func TestLoginRateLimited(t *testing.T) {
	s := newTestServer(t)
	store := s.store
	e := New(Deps{
		Store:      store,
		Tokens:     auth.NewTokens("0123456789abcdef0123456789abcdef", time.Hour),
		Uploads:    s.files,
		LoginRate:  rate.Every(time.Hour),
		LoginBurst: 2,
	})
	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBufferString(`{"email":"x@y.com","password":"bad"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterSweep(t *testing.T) {
	rl := &RateLimiter{visitors: map[string]*visitor{}, rate: rate.Every(time.Second), burst: 1, ttl: time.Minute}
	now := time.Now()
	assert.True(t, rl.allow("1.1.1.1", now))
	assert.False(t, rl.allow("1.1.1.1", now))
	rl.sweep(now.Add(2 * time.Minute))
	assert.Empty(t, rl.visitors)
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler(zap.NewNop())
	e.GET("/boom", func(echo.Context) error { return context.DeadlineExceeded })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Error interno del servidor"}`, rec.Body.String())
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(rate.Inf))
	assert.Equal(t, 1, retryAfterSeconds(rate.Limit(5)))
	assert.Equal(t, 2, retryAfterSeconds(rate.Limit(0.5)))
	assert.Equal(t, 3600, retryAfterSeconds(rate.Every(1000*time.Hour)))
	assert.Equal(t, 3600, retryAfterSeconds(rate.Limit(1e-300)))
	assert.Equal(t, 3600, retryAfterSeconds(0))
}
