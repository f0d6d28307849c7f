package commands

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dante/internal/api"
	"dante/internal/domain"
)

func TestDescribe(t *testing.T) {
	assert.Contains(t, describe(fmt.Errorf("fetch clients: %w", domain.ErrNotAuthenticated)), "not logged in")
	assert.Equal(t, "unauthorized: Credenciales inválidas",
		describe(fmt.Errorf("user login: %w", &api.Error{Status: http.StatusUnauthorized, Message: "Credenciales inválidas"})))
	assert.Equal(t, "server said 409: duplicate",
		describe(&api.Error{Status: http.StatusConflict, Message: "duplicate"}))
	assert.Equal(t, "request timed out", describe(fmt.Errorf("x: %w", context.DeadlineExceeded)))
	assert.Contains(t, describe(&domain.ValidationError{Fields: map[string]string{"email": "email is required"}}), "email is required")
}

func TestParseKind(t *testing.T) {
	k, err := parseKind("inventory")
	require.NoError(t, err)
	assert.Equal(t, domain.InventoryGroup, k)
	k, err = parseKind("1")
	require.NoError(t, err)
	assert.Equal(t, domain.ClientGroup, k)
	_, err = parseKind("vendors")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	st, err := parseStatus("in-progress")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketInProgress, st)
	st, err = parseStatus("Cerrado")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketClosed, st)
	_, err = parseStatus("done")
	assert.Error(t, err)
}

func TestReadAttachment(t *testing.T) {
	att, err := readAttachment("")
	require.NoError(t, err)
	assert.Nil(t, att)

	_, err = readAttachment("/nonexistent/avatar.png")
	assert.Error(t, err)
}
