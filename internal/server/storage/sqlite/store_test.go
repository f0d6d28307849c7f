package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dante/internal/domain"
	"dante/internal/server/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "dante.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// Deterministic, strictly increasing clock so ordering assertions hold.
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func seedCompany(t *testing.T, s *Store) domain.Company {
	t.Helper()
	c, err := s.CreateCompany(context.Background(), domain.Company{ID: "c1", Name: "Acme", Email: "acme@example.com"}, "hash")
	require.NoError(t, err)
	return c
}

func seedUser(t *testing.T, s *Store, id domain.UserID, email string) domain.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), domain.User{
		ID: id, CompanyID: "c1", Name: string(id), Email: email, Role: domain.DefaultUserRole, IsActive: true,
	}, "hash-"+string(id))
	require.NoError(t, err)
	return u
}

func seedCategory(t *testing.T, s *Store, id domain.CategoryID, name string) {
	t.Helper()
	_, err := s.CreateCategory(context.Background(), domain.Category{ID: id, CompanyID: "c1", Kind: domain.InventoryGroup, Name: name})
	require.NoError(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dante.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestCompanies(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)

	_, err := s.CreateCompany(ctx, domain.Company{ID: "c2", Name: "Dup", Email: "ACME@example.com"}, "x")
	assert.ErrorIs(t, err, storage.ErrConflict)

	c, hash, err := s.CompanyByEmail(ctx, "acme@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyID("c1"), c.ID)
	assert.Equal(t, "hash", hash)

	_, err = s.GetCompany(ctx, "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)
	u := seedUser(t, s, "u1", "Ana@Example.com")
	assert.Equal(t, "ana@example.com", u.Email)

	_, err := s.CreateUser(ctx, domain.User{ID: "u2", CompanyID: "c1", Name: "x", Email: "ana@example.com"}, "h")
	assert.ErrorIs(t, err, storage.ErrConflict)

	_, err = s.CreateUser(ctx, domain.User{ID: "u3", CompanyID: "missing", Name: "x", Email: "x@example.com"}, "h")
	assert.ErrorIs(t, err, storage.ErrInvalidReference)

	got, hash, err := s.UserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash-u1", hash)
	assert.True(t, got.IsActive)

	got.JobTitle = "Cashier"
	got.IsVerified = true
	updated, err := s.UpdateUser(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Cashier", updated.JobTitle)
	assert.True(t, updated.IsVerified)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	require.NoError(t, s.SetUserPassword(ctx, "u1", "new-hash"))
	hash, err = s.UserPasswordHash(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", hash)

	list, err := s.ListUsers(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.UpdateUser(ctx, domain.User{ID: "ghost"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteUserRemovesMessages(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)
	seedUser(t, s, "u1", "a@example.com")
	seedUser(t, s, "u2", "b@example.com")

	_, err := s.CreateMessage(ctx, domain.Message{ID: "m1", SenderID: "u1", ReceiverID: "u2", Content: "hi"})
	require.NoError(t, err)
	_, err = s.CreateMessage(ctx, domain.Message{ID: "m2", SenderID: "u2", ReceiverID: "u1", Content: "hey"})
	require.NoError(t, err)
	_, err = s.CreateTicket(ctx, domain.SupportTicket{ID: "t1", UserID: "u1", Subject: "s", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx, "u1"))

	conv, err := s.Conversation(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Empty(t, conv)
	_, err = s.GetTicket(ctx, "t1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, "u1"), storage.ErrNotFound)
}

func TestClientsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)

	for _, id := range []domain.ClientID{"k1", "k2", "k3"} {
		_, err := s.CreateClient(ctx, domain.Client{ID: id, CompanyID: "c1", Name: string(id), Email: string(id) + "@x.com", IsActive: true})
		require.NoError(t, err)
	}
	_, err := s.CreateClient(ctx, domain.Client{ID: "k4", CompanyID: "c1", Name: "dup", Email: "K1@x.com"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	list, err := s.ListClients(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []domain.ClientID{"k3", "k2", "k1"}, []domain.ClientID{list[0].ID, list[1].ID, list[2].ID})

	c := list[0]
	c.Phone = "555"
	c.IsActive = false
	c, err = s.UpdateClient(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "555", c.Phone)
	assert.False(t, c.IsActive)

	require.NoError(t, s.DeleteClient(ctx, "k3"))
	assert.ErrorIs(t, s.DeleteClient(ctx, "k3"), storage.ErrNotFound)
}

func TestProductsFilter(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)

	seedCategory(t, s, "g1", "Tools")
	seedCategory(t, s, "g2", "Parts")

	_, err := s.CreateProduct(ctx, domain.Product{ID: "p1", CompanyID: "c1", CategoryID: "g1", Name: "Acme", Price: 9.5, Stock: 3})
	require.NoError(t, err)
	_, err = s.CreateProduct(ctx, domain.Product{ID: "p2", CompanyID: "c1", CategoryID: "g2", Name: "Bolt", Price: 1, Stock: 100})
	require.NoError(t, err)

	all, err := s.ListProducts(ctx, storage.ProductFilter{CompanyID: "c1"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	g1, err := s.ListProducts(ctx, storage.ProductFilter{CompanyID: "c1", CategoryID: "g1"})
	require.NoError(t, err)
	require.Len(t, g1, 1)
	assert.Equal(t, 9.5, g1[0].Price)

	p := g1[0]
	p.Name = "Acme2"
	p, err = s.UpdateProduct(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Acme2", p.Name)

	require.NoError(t, s.DeleteProduct(ctx, "p1"))
	_, err = s.GetProduct(ctx, "p1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProductCategoryReference(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)
	seedCategory(t, s, "g1", "Tools")

	_, err := s.CreateProduct(ctx, domain.Product{ID: "p1", CompanyID: "c1", CategoryID: "missing", Name: "Acme", Price: 1, Stock: 1})
	assert.ErrorIs(t, err, storage.ErrInvalidReference)

	p, err := s.CreateProduct(ctx, domain.Product{ID: "p1", CompanyID: "c1", CategoryID: "g1", Name: "Acme", Price: 1, Stock: 1})
	require.NoError(t, err)

	p.CategoryID = "missing"
	_, err = s.UpdateProduct(ctx, p)
	assert.ErrorIs(t, err, storage.ErrInvalidReference)

	assert.ErrorIs(t, s.DeleteCategory(ctx, "g1"), storage.ErrInvalidReference)
	_, err = s.GetCategory(ctx, "g1")
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(ctx, "p1"))
	require.NoError(t, s.DeleteCategory(ctx, "g1"))
}

func TestClientDocumentNumberUnique(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)

	for i, c := range []domain.Client{
		{ID: "k1", CompanyID: "c1", Name: "A", Email: "a@x.com"},
		{ID: "k2", CompanyID: "c1", Name: "B", Email: "b@x.com"},
		{ID: "k3", CompanyID: "c1", Name: "C", Email: "c@x.com", DocumentNumber: "V-123"},
	} {
		_, err := s.CreateClient(ctx, c)
		require.NoError(t, err, i)
	}
	_, err := s.CreateClient(ctx, domain.Client{ID: "k4", CompanyID: "c1", Name: "D", Email: "d@x.com", DocumentNumber: "V-123"})
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)

	_, err := s.CreateCategory(ctx, domain.Category{ID: "g1", CompanyID: "c1", Kind: domain.ClientGroup, Name: "VIP"})
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, domain.Category{ID: "g2", CompanyID: "c1", Kind: domain.InventoryGroup, Name: "Tools"})
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, domain.Category{ID: "g3", CompanyID: "c1", Kind: domain.InventoryGroup, Name: "VIP"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	inv, err := s.ListCategories(ctx, storage.CategoryFilter{CompanyID: "c1", Kind: domain.InventoryGroup})
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, "Tools", inv[0].Name)

	all, err := s.ListCategories(ctx, storage.CategoryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	g := inv[0]
	g.Description = "hand tools"
	g, err = s.UpdateCategory(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, "hand tools", g.Description)
	assert.Equal(t, domain.InventoryGroup, g.Kind)
}

func TestConversationOrderAndRead(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)
	seedUser(t, s, "u1", "a@example.com")
	seedUser(t, s, "u2", "b@example.com")
	seedUser(t, s, "u3", "c@example.com")

	for i, m := range []domain.Message{
		{ID: "m1", SenderID: "u1", ReceiverID: "u2", Content: "one"},
		{ID: "m2", SenderID: "u3", ReceiverID: "u1", Content: "other thread"},
		{ID: "m3", SenderID: "u2", ReceiverID: "u1", Content: "two"},
	} {
		_, err := s.CreateMessage(ctx, m)
		require.NoError(t, err, i)
	}

	conv, err := s.Conversation(ctx, "u2", "u1")
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, "one", conv[0].Content)
	assert.Equal(t, "two", conv[1].Content)

	m, err := s.MarkMessageRead(ctx, "m3")
	require.NoError(t, err)
	assert.True(t, m.IsRead)

	_, err = s.CreateMessage(ctx, domain.Message{ID: "m4", SenderID: "u1", ReceiverID: "ghost", Content: "x"})
	assert.ErrorIs(t, err, storage.ErrInvalidReference)
}

func TestTicketsEmbedUser(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)
	seedUser(t, s, "u1", "a@example.com")

	tk, err := s.CreateTicket(ctx, domain.SupportTicket{ID: "t1", UserID: "u1", Subject: "Printer", Description: "jammed"})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketOpen, tk.Status)
	require.NotNil(t, tk.User)
	assert.Equal(t, "a@example.com", tk.User.Email)

	tk.Status = domain.TicketClosed
	tk, err = s.UpdateTicket(ctx, tk)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketClosed, tk.Status)

	list, err := s.ListTickets(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestChatExchanges(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	seedCompany(t, s)
	seedUser(t, s, "u1", "a@example.com")

	for _, q := range []string{"a", "b", "c"} {
		require.NoError(t, s.SaveExchange(ctx, domain.ChatExchange{UserID: "u1", CompanyID: "c1", Message: q, Reply: "re " + q}))
	}
	xs, err := s.ListExchanges(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, xs, 2)
	assert.Equal(t, "b", xs[0].Message)
	assert.Equal(t, "c", xs[1].Message)
}
