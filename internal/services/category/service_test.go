package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dante/internal/domain"
	"dante/internal/services/category"
	"dante/internal/services/scope"
	"dante/internal/store"
)

type fakeAPI struct {
	listed    []domain.Category
	lastKind  domain.CategoryKind
	lastScope domain.CompanyID
	createErr error
	deleteErr error
}

func (f *fakeAPI) ListCategories(_ context.Context, company domain.CompanyID, kind domain.CategoryKind) ([]domain.Category, error) {
	f.lastScope, f.lastKind = company, kind
	return f.listed, nil
}

func (f *fakeAPI) GetCategory(_ context.Context, id domain.CategoryID) (domain.Category, error) {
	return domain.Category{ID: id}, nil
}

func (f *fakeAPI) CreateCategory(_ context.Context, in domain.NewCategory, _ *domain.Attachment) (domain.Category, error) {
	if f.createErr != nil {
		return domain.Category{}, f.createErr
	}
	return domain.Category{ID: "g1", Name: in.Name, Kind: in.Kind, CompanyID: in.CompanyID}, nil
}

func (f *fakeAPI) UpdateCategory(_ context.Context, id domain.CategoryID, patch domain.CategoryPatch, _ *domain.Attachment) (domain.Category, error) {
	g := domain.Category{ID: id}
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	return g, nil
}

func (f *fakeAPI) DeleteCategory(context.Context, domain.CategoryID) error { return f.deleteErr }

func newService(t *testing.T, api *fakeAPI, loggedIn bool) *category.Service {
	t.Helper()
	kv := store.NewMemoryKV()
	companies := store.NewCompanyStore(kv, nil)
	if loggedIn {
		companies.Login(domain.Company{ID: "c1"}, "t1")
	}
	return category.New(api, scope.New(companies, store.NewUserStore(kv, nil)))
}

func TestFetchAll_ScopesByCompanyAndKind(t *testing.T) {
	api := &fakeAPI{listed: []domain.Category{{ID: "a", Kind: domain.InventoryGroup}}}
	svc := newService(t, api, true)

	items, err := svc.FetchAll(context.Background(), domain.InventoryGroup)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, domain.CompanyID("c1"), api.lastScope)
	assert.Equal(t, domain.InventoryGroup, api.lastKind)
	assert.Equal(t, api.listed, svc.Categories())
}

func TestFetchAll_NeedsSession(t *testing.T) {
	svc := newService(t, &fakeAPI{}, false)
	_, err := svc.FetchAll(context.Background(), domain.AnyCategoryKind)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestAddUpdateRemove(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, &fakeAPI{listed: []domain.Category{{ID: "old"}}}, true)
	_, err := svc.FetchAll(ctx, domain.AnyCategoryKind)
	require.NoError(t, err)

	g, err := svc.Add(ctx, domain.NewCategory{Name: "VIP", Kind: domain.ClientGroup}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyID("c1"), g.CompanyID)
	require.Len(t, svc.Categories(), 2)
	assert.Equal(t, domain.CategoryID("g1"), svc.Categories()[0].ID)

	name := "Premium"
	_, err = svc.Update(ctx, "g1", domain.CategoryPatch{Name: &name}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Premium", svc.Categories()[0].Name)

	require.NoError(t, svc.Remove(ctx, "g1"))
	assert.Equal(t, []domain.Category{{ID: "old"}}, svc.Categories())
}

func TestFailuresLeaveListUnchanged(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{listed: []domain.Category{{ID: "a"}}, createErr: errors.New("400"), deleteErr: errors.New("409")}
	svc := newService(t, api, true)
	_, err := svc.FetchAll(ctx, domain.AnyCategoryKind)
	require.NoError(t, err)

	_, err = svc.Add(ctx, domain.NewCategory{Name: "x"}, nil)
	require.Error(t, err)
	require.Error(t, svc.Remove(ctx, "a"))
	assert.Equal(t, []domain.Category{{ID: "a"}}, svc.Categories())

	svc.Logout()
	assert.Empty(t, svc.Categories())
}
