package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dante/internal/domain"
)

func TestClientsFlow(t *testing.T) {
	s := newTestServer(t)
	company := s.bootstrap()

	res := s.json(http.MethodGet, "/api/clients", nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.multipart(http.MethodPost, "/api/clients", map[string]string{"name": "Juan"}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	var ids []domain.ClientID
	for _, email := range []string{"juan@x.com", "maria@x.com"} {
		res = s.multipart(http.MethodPost, "/api/clients", map[string]string{
			"name": email, "email": email, "company_id": company.String(),
		}, "", "", nil)
		require.Equal(t, http.StatusCreated, res.Code, string(res.Body))
		var c domain.Client
		res.decode(t, &c)
		ids = append(ids, c.ID)
	}

	res = s.json(http.MethodGet, "/api/clients?company_id="+company.String(), nil)
	require.Equal(t, http.StatusOK, res.Code)
	var list []domain.Client
	res.decode(t, &list)
	require.Len(t, list, 2)
	assert.Equal(t, ids[1], list[0].ID)

	res = s.json(http.MethodPut, "/api/clients/"+ids[0].String(), map[string]any{"phone": "555", "is_active": false})
	require.Equal(t, http.StatusOK, res.Code, string(res.Body))
	var c domain.Client
	res.decode(t, &c)
	assert.Equal(t, "555", c.Phone)
	assert.False(t, c.IsActive)
	assert.Equal(t, "juan@x.com", c.Email)

	assert.Equal(t, http.StatusNoContent, s.json(http.MethodDelete, "/api/clients/"+ids[0].String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.json(http.MethodGet, "/api/clients/"+ids[0].String(), nil).Code)
}

func (s *testServer) createCategory(company domain.CompanyID, name string, kind domain.CategoryKind) domain.Category {
	s.t.Helper()
	res := s.json(http.MethodPost, "/api/categories", map[string]any{
		"name": name, "company_id": company.String(), "typeon": int(kind),
	})
	require.Equal(s.t, http.StatusCreated, res.Code, string(res.Body))
	var g domain.Category
	res.decode(s.t, &g)
	return g
}

func TestProductsFlow(t *testing.T) {
	s := newTestServer(t)
	company := s.bootstrap()
	tools := s.createCategory(company, "Herramientas", domain.InventoryGroup)
	parts := s.createCategory(company, "Repuestos", domain.InventoryGroup)

	res := s.multipart(http.MethodPost, "/api/products", map[string]string{
		"name": "Acme", "company_id": company.String(), "category_id": tools.ID.String(),
	}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.message(t), "price")

	res = s.multipart(http.MethodPost, "/api/products", map[string]string{
		"name": "Acme", "price": "abc", "stock": "1", "company_id": company.String(), "category_id": tools.ID.String(),
	}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.json(http.MethodPost, "/api/products", map[string]any{
		"name": "Ghost", "price": 1, "stock": 1, "company_id": company.String(), "category_id": "does-not-exist",
	})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.multipart(http.MethodPost, "/api/products", map[string]string{
		"name": "Acme", "price": "9.99", "stock": "0", "company_id": company.String(), "category_id": tools.ID.String(),
	}, "image", "acme.jpg", []byte("jpg"))
	require.Equal(t, http.StatusCreated, res.Code, string(res.Body))
	var p domain.Product
	res.decode(t, &p)
	assert.Equal(t, 9.99, p.Price)
	assert.NotEmpty(t, p.Image)

	res = s.json(http.MethodPost, "/api/products", map[string]any{
		"name": "Bolt", "price": 1, "stock": 5, "company_id": company.String(), "category_id": parts.ID.String(),
	})
	require.Equal(t, http.StatusCreated, res.Code, string(res.Body))

	res = s.json(http.MethodGet, "/api/products?company_id="+company.String()+"&category_id="+tools.ID.String(), nil)
	var list []domain.Product
	res.decode(t, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)

	res = s.json(http.MethodPut, "/api/products/"+p.ID.String(), map[string]any{"category_id": "does-not-exist"})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.json(http.MethodPut, "/api/products/"+p.ID.String(), map[string]any{"name": "Acme2", "stock": 3})
	require.Equal(t, http.StatusOK, res.Code, string(res.Body))
	res.decode(t, &p)
	assert.Equal(t, "Acme2", p.Name)
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, tools.ID, p.CategoryID)

	assert.Equal(t, http.StatusNoContent, s.json(http.MethodDelete, "/api/products/"+p.ID.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.json(http.MethodDelete, "/api/products/"+p.ID.String(), nil).Code)
}

func TestDeleteCategoryInUse(t *testing.T) {
	s := newTestServer(t)
	company := s.bootstrap()
	tools := s.createCategory(company, "Herramientas", domain.InventoryGroup)

	res := s.json(http.MethodPost, "/api/products", map[string]any{
		"name": "Martillo", "price": 5, "stock": 2, "company_id": company.String(), "category_id": tools.ID.String(),
	})
	require.Equal(t, http.StatusCreated, res.Code, string(res.Body))
	var p domain.Product
	res.decode(t, &p)

	res = s.json(http.MethodDelete, "/api/categories/"+tools.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, res.Code)
	assert.Equal(t, http.StatusOK, s.json(http.MethodGet, "/api/categories/"+tools.ID.String(), nil).Code)

	require.Equal(t, http.StatusNoContent, s.json(http.MethodDelete, "/api/products/"+p.ID.String(), nil).Code)
	assert.Equal(t, http.StatusNoContent, s.json(http.MethodDelete, "/api/categories/"+tools.ID.String(), nil).Code)
}

func TestClientDocumentNumberConflict(t *testing.T) {
	s := newTestServer(t)
	company := s.bootstrap()

	create := func(email, doc string) int {
		return s.multipart(http.MethodPost, "/api/clients", map[string]string{
			"name": email, "email": email, "company_id": company.String(), "document_number": doc,
		}, "", "", nil).Code
	}
	assert.Equal(t, http.StatusCreated, create("a@x.com", ""))
	assert.Equal(t, http.StatusCreated, create("b@x.com", ""))
	assert.Equal(t, http.StatusCreated, create("c@x.com", "V-1"))
	assert.Equal(t, http.StatusConflict, create("d@x.com", "V-1"))
}

func TestCategoriesFlow(t *testing.T) {
	s := newTestServer(t)
	company := s.bootstrap()

	create := func(name, typeon string) int {
		return s.multipart(http.MethodPost, "/api/categories", map[string]string{
			"name": name, "company_id": company.String(), "typeon": typeon,
		}, "", "", nil).Code
	}
	assert.Equal(t, http.StatusCreated, create("VIP", "1"))
	assert.Equal(t, http.StatusCreated, create("Herramientas", "2"))
	assert.Equal(t, http.StatusBadRequest, create("VIP", "2"))
	assert.Equal(t, http.StatusBadRequest, create("Raro", "7"))

	res := s.multipart(http.MethodPost, "/api/categories", map[string]string{
		"name": "Con imagen", "company_id": company.String(),
	}, "image", "virus.exe", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Extensión de imagen no permitida", res.message(t))

	res = s.json(http.MethodGet, "/api/categories?company_id="+company.String()+"&typeon=2", nil)
	var list []domain.Category
	res.decode(t, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Herramientas", list[0].Name)
	assert.Equal(t, domain.InventoryGroup, list[0].Kind)

	res = s.json(http.MethodPut, "/api/categories/"+list[0].ID.String(), map[string]string{"description": "manuales"})
	require.Equal(t, http.StatusOK, res.Code)
	var g domain.Category
	res.decode(t, &g)
	assert.Equal(t, "manuales", g.Description)
	assert.Equal(t, "Herramientas", g.Name)
}

func TestMessagesFlow(t *testing.T) {
	s := newTestServer(t)
	company := s.bootstrap()
	ana := s.createUser(company, "ana@acme.com")
	bob := s.createUser(company, "bob@acme.com")

	res := s.json(http.MethodPost, "/api/messages", map[string]string{"sender_id": ana.ID.String()})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	var sent domain.Message
	for _, m := range []domain.NewMessage{
		{SenderID: ana.ID, ReceiverID: bob.ID, Content: "hola"},
		{SenderID: bob.ID, ReceiverID: ana.ID, Content: "qué tal"},
	} {
		res = s.json(http.MethodPost, "/api/messages", m)
		require.Equal(t, http.StatusCreated, res.Code, string(res.Body))
		res.decode(t, &sent)
	}

	assert.Equal(t, http.StatusBadRequest, s.json(http.MethodGet, "/api/messages/"+ana.ID.String(), nil).Code)

	res = s.json(http.MethodGet, "/api/messages/"+ana.ID.String()+"?other_user_id="+bob.ID.String(), nil)
	var conv []domain.Message
	res.decode(t, &conv)
	require.Len(t, conv, 2)
	assert.Equal(t, "hola", conv[0].Content)

	res = s.json(http.MethodPut, "/api/messages/"+sent.ID.String()+"/read", nil)
	require.Equal(t, http.StatusOK, res.Code)
	var read domain.Message
	res.decode(t, &read)
	assert.True(t, read.IsRead)

	res = s.json(http.MethodDelete, "/api/messages/"+sent.ID.String(), nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Mensaje eliminado", res.message(t))
}

func TestTicketsFlow(t *testing.T) {
	s := newTestServer(t)
	company := s.bootstrap()
	ana := s.createUser(company, "ana@acme.com")

	res := s.json(http.MethodPost, "/api/support/tickets", map[string]string{"subject": "x"})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.json(http.MethodPost, "/api/support/tickets", domain.NewTicket{Subject: "Impresora", Description: "atascada", UserID: ana.ID})
	require.Equal(t, http.StatusCreated, res.Code, string(res.Body))
	var tk domain.SupportTicket
	res.decode(t, &tk)
	assert.Equal(t, domain.TicketOpen, tk.Status)
	require.NotNil(t, tk.User)
	assert.Equal(t, "Ana", tk.User.Name)

	res = s.json(http.MethodPut, "/api/support/tickets/"+tk.ID.String(), map[string]string{"status": "Terminado"})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.json(http.MethodPut, "/api/support/tickets/"+tk.ID.String(), map[string]string{"status": string(domain.TicketClosed)})
	require.Equal(t, http.StatusOK, res.Code)
	res.decode(t, &tk)
	assert.Equal(t, domain.TicketClosed, tk.Status)
	assert.Equal(t, "Impresora", tk.Subject)

	res = s.json(http.MethodDelete, "/api/support/tickets/"+tk.ID.String(), nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, http.StatusNotFound, s.json(http.MethodGet, "/api/support/tickets/"+tk.ID.String(), nil).Code)
}

func TestChatbotPlaceholder(t *testing.T) {
	s := newTestServer(t)
	company := s.bootstrap()
	ana := s.createUser(company, "ana@acme.com")

	res := s.json(http.MethodPost, "/api/chatbot", map[string]string{"user_id": ana.ID.String()})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.json(http.MethodPost, "/api/chatbot", domain.ChatRequest{UserID: ana.ID, CompanyID: "nope", Message: "hola"})
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = s.json(http.MethodPost, "/api/chatbot", domain.ChatRequest{UserID: ana.ID, CompanyID: company, Message: "hola"})
	require.Equal(t, http.StatusOK, res.Code, string(res.Body))
	var reply domain.ChatReply
	res.decode(t, &reply)
	assert.Contains(t, reply.Reply, "Dante")

	history, err := s.store.ListExchanges(context.Background(), ana.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hola", history[0].Message)
}
