package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dante/internal/domain"
	"dante/internal/services/scope"
	"dante/internal/store"
)

func TestCompanyID_ReadsAtCallTime(t *testing.T) {
	kv := store.NewMemoryKV()
	companies := store.NewCompanyStore(kv, nil)
	users := store.NewUserStore(kv, nil)
	sc := scope.New(companies, users)

	_, err := sc.CompanyID()
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	users.SetUser(domain.User{ID: "u1", CompanyID: "c-user"})
	id, err := sc.CompanyID()
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyID("c-user"), id)

	companies.Login(domain.Company{ID: "c1"}, "t")
	id, err = sc.CompanyID()
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyID("c1"), id)

	companies.Logout()
	users.Logout()
	_, err = sc.CompanyID()
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestUserID(t *testing.T) {
	kv := store.NewMemoryKV()
	users := store.NewUserStore(kv, nil)
	sc := scope.New(store.NewCompanyStore(kv, nil), users)

	_, err := sc.UserID()
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	users.SetUser(domain.User{ID: "u1"})
	id, err := sc.UserID()
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("u1"), id)
}
