// Package storage declares the persistence contracts of the danted server.
package storage

import (
	"context"
	"errors"

	"dante/internal/domain"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique field (email, category name, document number) is taken.
	ErrConflict = errors.New("record already exists")
	// ErrInvalidReference is returned when a referenced company, user or category does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// ProductFilter narrows ListProducts. Empty fields match everything.
type ProductFilter struct {
	CompanyID  domain.CompanyID
	CategoryID domain.CategoryID
}

// CategoryFilter narrows ListCategories. Empty fields match everything.
type CategoryFilter struct {
	CompanyID domain.CompanyID
	Kind      domain.CategoryKind
}

type CompanyStore interface {
	CreateCompany(ctx context.Context, c domain.Company, passwordHash string) (domain.Company, error)
	GetCompany(ctx context.Context, id domain.CompanyID) (domain.Company, error)
	// CompanyByEmail returns the company and its password hash.
	CompanyByEmail(ctx context.Context, email string) (domain.Company, string, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, u domain.User, passwordHash string) (domain.User, error)
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	// UserByEmail returns the user and its password hash. The match ignores case.
	UserByEmail(ctx context.Context, email string) (domain.User, string, error)
	UserPasswordHash(ctx context.Context, id domain.UserID) (string, error)
	ListUsers(ctx context.Context, company domain.CompanyID) ([]domain.User, error)
	UpdateUser(ctx context.Context, u domain.User) (domain.User, error)
	SetUserPassword(ctx context.Context, id domain.UserID, passwordHash string) error
	// DeleteUser removes the user with its messages, tickets and chat history.
	DeleteUser(ctx context.Context, id domain.UserID) error
}

type ClientStore interface {
	CreateClient(ctx context.Context, c domain.Client) (domain.Client, error)
	GetClient(ctx context.Context, id domain.ClientID) (domain.Client, error)
	// ListClients returns the company's clients, newest first.
	ListClients(ctx context.Context, company domain.CompanyID) ([]domain.Client, error)
	UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error)
	DeleteClient(ctx context.Context, id domain.ClientID) error
}

type ProductStore interface {
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id domain.ProductID) (domain.Product, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id domain.ProductID) error
}

type CategoryStore interface {
	CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error)
	GetCategory(ctx context.Context, id domain.CategoryID) (domain.Category, error)
	ListCategories(ctx context.Context, f CategoryFilter) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, id domain.CategoryID) error
}

type MessageStore interface {
	CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error)
	GetMessage(ctx context.Context, id domain.MessageID) (domain.Message, error)
	// Conversation returns the messages exchanged by a and b, oldest first.
	Conversation(ctx context.Context, a, b domain.UserID) ([]domain.Message, error)
	MarkMessageRead(ctx context.Context, id domain.MessageID) (domain.Message, error)
	DeleteMessage(ctx context.Context, id domain.MessageID) error
}

type TicketStore interface {
	CreateTicket(ctx context.Context, t domain.SupportTicket) (domain.SupportTicket, error)
	GetTicket(ctx context.Context, id domain.TicketID) (domain.SupportTicket, error)
	// ListTickets returns every ticket, newest first.
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)
	UpdateTicket(ctx context.Context, t domain.SupportTicket) (domain.SupportTicket, error)
	DeleteTicket(ctx context.Context, id domain.TicketID) error
}

type ChatStore interface {
	SaveExchange(ctx context.Context, x domain.ChatExchange) error
	ListExchanges(ctx context.Context, user domain.UserID, limit int) ([]domain.ChatExchange, error)
}

// Store is everything the REST layer persists.
type Store interface {
	CompanyStore
	UserStore
	ClientStore
	ProductStore
	CategoryStore
	MessageStore
	TicketStore
	ChatStore
	Ping(ctx context.Context) error
	Close() error
}
