package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"dante/internal/server/assistant"
	"dante/internal/server/auth"
	"dante/internal/server/storage"
	"dante/internal/server/uploads"
)

// Deps are the collaborators of the HTTP layer.
type Deps struct {
	Store     storage.Store
	Tokens    *auth.Tokens
	Uploads   *uploads.Store
	Assistant *assistant.Service
	Log       *zap.Logger

	// Registry receives the HTTP metrics; nil means a private registry.
	Registry *prometheus.Registry

	LoginRate  rate.Limit
	LoginBurst int
	// MaxBody caps request bodies, e.g. "8M". Empty means no limit.
	MaxBody string
}

type handler struct {
	store   storage.Store
	tokens  *auth.Tokens
	files   *uploads.Store
	chat    *assistant.Service
	log     *zap.Logger
	metrics *Metrics
}

// New builds the echo router with every route registered.
func New(d Deps) *echo.Echo {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	if d.LoginRate <= 0 {
		d.LoginRate = rate.Every(time.Second)
	}
	if d.LoginBurst <= 0 {
		d.LoginBurst = 5
	}
	if d.Assistant == nil {
		d.Assistant = assistant.New(d.Store, nil, d.Log)
	}

	h := &handler{
		store:   d.Store,
		tokens:  d.Tokens,
		files:   d.Uploads,
		chat:    d.Assistant,
		log:     d.Log,
		metrics: NewMetrics(d.Registry),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(d.Log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	if d.MaxBody != "" {
		e.Use(middleware.BodyLimit(d.MaxBody))
	}
	e.Use(requestLogger(d.Log))
	e.Use(h.metrics.Middleware())

	e.GET("/healthz", h.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	limiter := NewRateLimiter(d.LoginRate, d.LoginBurst)
	requireAuth := bearerAuth(d.Tokens)

	api := e.Group("/api")

	// Public.
	api.POST("/companies", h.createCompany)
	api.GET("/companies", h.listCompanies)
	api.POST("/companies/login", h.loginCompany, limiter.Middleware())
	api.POST("/users/login", h.loginUser, limiter.Middleware())
	api.GET("/uploads/avatars/:filename", h.serveUpload)

	// Authenticated.
	p := api.Group("", requireAuth)

	p.GET("/users", h.listUsers)
	p.POST("/users", h.createUser)
	p.GET("/users/:id", h.getUser)
	p.PUT("/users/:id", h.updateUser)
	p.PUT("/users/:id/avatar", h.updateAvatar)
	p.PUT("/users/:id/change-password", h.changePassword)
	p.DELETE("/users/:id", h.deleteUser)

	p.POST("/clients", h.createClient)
	p.GET("/clients", h.listClients)
	p.GET("/clients/:id", h.getClient)
	p.PUT("/clients/:id", h.updateClient)
	p.DELETE("/clients/:id", h.deleteClient)

	p.POST("/products", h.createProduct)
	p.GET("/products", h.listProducts)
	p.GET("/products/:id", h.getProduct)
	p.PUT("/products/:id", h.updateProduct)
	p.DELETE("/products/:id", h.deleteProduct)

	p.POST("/categories", h.createCategory)
	p.GET("/categories", h.listCategories)
	p.GET("/categories/:id", h.getCategory)
	p.PUT("/categories/:id", h.updateCategory)
	p.DELETE("/categories/:id", h.deleteCategory)

	p.POST("/messages", h.sendMessage)
	p.GET("/messages/:user_id", h.conversation)
	p.PUT("/messages/:id/read", h.markRead)
	p.DELETE("/messages/:id", h.deleteMessage)

	p.POST("/support/tickets", h.createTicket)
	p.GET("/support/tickets", h.listTickets)
	p.GET("/support/tickets/:id", h.getTicket)
	p.PUT("/support/tickets/:id", h.updateTicket)
	p.DELETE("/support/tickets/:id", h.deleteTicket)

	p.POST("/chatbot", h.chatbot)

	return e
}

func (h *handler) health(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) serveUpload(c echo.Context) error {
	path, ok := h.files.Path(c.Param("filename"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Archivo no encontrado")
	}
	return c.File(path)
}
