package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dante/internal/api"
	"dante/internal/domain"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

func newClient(t *testing.T, h http.HandlerFunc, tok string) *api.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.NewHTTP(srv.URL, srv.Client(), staticToken(tok), nil)
}

func TestLoginCompany_PostsJSONAndDecodes(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/companies/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var cred domain.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cred))
		assert.Equal(t, "a@acme.test", cred.Email)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "t1",
			"company":      map[string]any{"id_company": "c1", "name": "Acme"},
		})
	}, "")

	out, err := c.LoginCompany(context.Background(), domain.Credentials{Email: "a@acme.test", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "t1", out.AccessToken)
	assert.Equal(t, domain.CompanyID("c1"), out.Company.ID)
}

func TestErrorStatusAndMessage(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Credenciales inválidas"}`)
	}, "")

	_, err := c.LoginUser(context.Background(), domain.Credentials{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	var ae *api.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusUnauthorized, ae.Status)
	assert.Equal(t, "Credenciales inválidas", ae.Message)
	assert.True(t, api.IsUnauthorized(err))
}

func TestErrorLegacyMsgField(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"msg":"Falta el parámetro company_id"}`)
	}, "tok")

	_, err := c.ListClients(context.Background(), "")
	assert.Equal(t, 400, api.StatusOf(err))
	assert.Contains(t, err.Error(), "company_id")
}

func TestBearerTokenAndQuery(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "c1", r.URL.Query().Get("company_id"))
		assert.Equal(t, "2", r.URL.Query().Get("typeon"))
		_, _ = io.WriteString(w, `[{"id_category":"k1","typeon":2,"name":"Bebidas"}]`)
	}, "tok")

	cats, err := c.ListCategories(context.Background(), "c1", domain.InventoryGroup)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, domain.InventoryGroup, cats[0].Kind)
}

func TestCreateProduct_Multipart(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Café", r.FormValue("name"))
		assert.Equal(t, "3.5", r.FormValue("price"))
		assert.Equal(t, "10", r.FormValue("stock"))
		assert.Equal(t, "k1", r.FormValue("category_id"))

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "cafe.png", hdr.Filename)
		b, _ := io.ReadAll(f)
		assert.Equal(t, []byte("png"), b)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id_product":"p1","name":"Café","price":3.5,"stock":10}`)
	}, "tok")

	p, err := c.CreateProduct(context.Background(), domain.NewProduct{
		Name: "Café", Price: 3.5, Stock: 10, CategoryID: "k1", CompanyID: "c1",
	}, &domain.Attachment{Filename: "cafe.png", Data: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductID("p1"), p.ID)
}

func TestCreateClient_MultipartWithoutFile(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Acme", r.FormValue("name"))
		assert.Nil(t, r.MultipartForm.File["avatar"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"cl1","name":"Acme"}`)
	}, "tok")

	cl, err := c.CreateClient(context.Background(), domain.NewClient{Name: "Acme", CompanyID: "c1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ClientID("cl1"), cl.ID)
}

func TestDelete_NoContent(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/users/u%201", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	}, "tok")

	require.NoError(t, c.DeleteUser(context.Background(), "u 1"))
}

func TestContextCancelled(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ListCompanies(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestUserPatchOmitsNilFields(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"name": "Ana", "is_active": false}, body)
		_, _ = io.WriteString(w, `{"id_user":"u1","name":"Ana"}`)
	}, "tok")

	name, active := "Ana", false
	u, err := c.UpdateUser(context.Background(), "u1", domain.UserPatch{Name: &name, IsActive: &active}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
}
