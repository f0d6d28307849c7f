package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"dante/internal/api"
	"dante/internal/domain"
	"dante/internal/services/auth"
	"dante/internal/services/category"
	"dante/internal/services/chat"
	"dante/internal/services/client"
	"dante/internal/services/message"
	"dante/internal/services/product"
	"dante/internal/services/scope"
	"dante/internal/services/session"
	"dante/internal/services/ticket"
	"dante/internal/services/user"
	"dante/internal/store"
)

// New constructs the dependency graph from cfg.
func New(cfg Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Config: cfg, Log: log}

	kv, err := a.backend(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Passphrase != "" {
		kv = store.NewSealedKV(kv, cfg.Passphrase)
	}

	// Identity stores
	a.Companies = store.NewCompanyStore(kv, log)
	a.Users = store.NewUserStore(kv, log)
	a.Session = store.NewSessionStore(kv, log)

	// API client carries the session token on every call
	httpClient := &http.Client{Timeout: cfg.Timeout}
	a.API = api.NewHTTP(cfg.APIURL, httpClient, a.Session, log.Named("api"))

	// High-level services
	sc := scope.New(a.Companies, a.Users)
	a.Auth = auth.New(a.API, a.Companies, a.Users, a.Session)
	a.Clients = client.New(a.API, sc)
	a.Products = product.New(a.API, sc)
	a.Categories = category.New(a.API, sc)
	a.Messages = message.New(a.API, sc)
	a.People = user.New(a.API, sc, a.Users)
	a.Tickets = ticket.New(a.API, sc)
	a.Chat = chat.New(a.API, sc)

	a.Logout = session.New(session.Participants{
		Users:      a.Users,
		Companies:  a.Companies,
		Clients:    a.Clients,
		Products:   a.Products,
		Categories: a.Categories,
		Messages:   a.Messages,
		UserCache:  a.People,
		Tickets:    a.Tickets,
		Session:    a.Session,
	}, log.Named("session"))

	return a, nil
}

func (a *App) backend(cfg Config) (domain.KV, error) {
	switch cfg.Backend {
	case BackendMemory:
		return store.NewMemoryKV(), nil
	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		a.closers = append(a.closers, rdb.Close)
		return store.NewRedisKV(rdb, cfg.RedisPrefix), nil
	default:
		return store.NewFileKV(cfg.Home), nil
	}
}
