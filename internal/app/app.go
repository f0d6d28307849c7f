package app

import (
	"errors"

	"go.uber.org/zap"

	"dante/internal/api"
	"dante/internal/services/auth"
	"dante/internal/services/category"
	"dante/internal/services/chat"
	"dante/internal/services/client"
	"dante/internal/services/message"
	"dante/internal/services/product"
	"dante/internal/services/session"
	"dante/internal/services/ticket"
	"dante/internal/services/user"
	"dante/internal/store"
)

// App bundles the stores and services commands use.
type App struct {
	Config Config
	Log    *zap.Logger
	API    *api.HTTPClient

	Companies *store.CompanyStore
	Users     *store.UserStore
	Session   *store.SessionStore

	Auth       *auth.Service
	Clients    *client.Service
	Products   *product.Service
	Categories *category.Service
	Messages   *message.Service
	People     *user.Service
	Tickets    *ticket.Service
	Chat       *chat.Service
	Logout     *session.Coordinator

	closers []func() error
}

// Close releases backend connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
