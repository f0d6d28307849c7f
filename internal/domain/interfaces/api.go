package interfaces

import (
	"context"

	domaintypes "dante/internal/domain/types"
)

// CompanyAPI covers the company endpoints of the REST API.
type CompanyAPI interface {
	RegisterCompany(ctx context.Context, reg domaintypes.CompanyRegistration) (domaintypes.Company, error)
	LoginCompany(ctx context.Context, cred domaintypes.Credentials) (domaintypes.CompanyLogin, error)
	ListCompanies(ctx context.Context) ([]domaintypes.Company, error)
}

// UserAPI covers the user endpoints of the REST API.
type UserAPI interface {
	LoginUser(ctx context.Context, cred domaintypes.Credentials) (domaintypes.UserLogin, error)
	ListUsers(ctx context.Context, company domaintypes.CompanyID) ([]domaintypes.User, error)
	GetUser(ctx context.Context, id domaintypes.UserID) (domaintypes.User, error)
	CreateUser(ctx context.Context, in domaintypes.NewUser, avatar *domaintypes.Attachment) (domaintypes.User, error)
	UpdateUser(ctx context.Context, id domaintypes.UserID, patch domaintypes.UserPatch, avatar *domaintypes.Attachment) (domaintypes.User, error)
	UpdateAvatar(ctx context.Context, id domaintypes.UserID, avatar domaintypes.Attachment) (domaintypes.User, error)
	ChangePassword(ctx context.Context, id domaintypes.UserID, change domaintypes.PasswordChange) error
	DeleteUser(ctx context.Context, id domaintypes.UserID) error
}

// ClientAPI covers the client endpoints of the REST API.
type ClientAPI interface {
	ListClients(ctx context.Context, company domaintypes.CompanyID) ([]domaintypes.Client, error)
	GetClient(ctx context.Context, id domaintypes.ClientID) (domaintypes.Client, error)
	CreateClient(ctx context.Context, in domaintypes.NewClient, avatar *domaintypes.Attachment) (domaintypes.Client, error)
	UpdateClient(ctx context.Context, id domaintypes.ClientID, patch domaintypes.ClientPatch) (domaintypes.Client, error)
	DeleteClient(ctx context.Context, id domaintypes.ClientID) error
}

// ProductAPI covers the product endpoints of the REST API.
type ProductAPI interface {
	ListProducts(ctx context.Context, company domaintypes.CompanyID, category domaintypes.CategoryID) ([]domaintypes.Product, error)
	GetProduct(ctx context.Context, id domaintypes.ProductID) (domaintypes.Product, error)
	CreateProduct(ctx context.Context, in domaintypes.NewProduct, image *domaintypes.Attachment) (domaintypes.Product, error)
	UpdateProduct(ctx context.Context, id domaintypes.ProductID, patch domaintypes.ProductPatch, image *domaintypes.Attachment) (domaintypes.Product, error)
	DeleteProduct(ctx context.Context, id domaintypes.ProductID) error
}

// CategoryAPI covers the category endpoints of the REST API.
type CategoryAPI interface {
	ListCategories(ctx context.Context, company domaintypes.CompanyID, kind domaintypes.CategoryKind) ([]domaintypes.Category, error)
	GetCategory(ctx context.Context, id domaintypes.CategoryID) (domaintypes.Category, error)
	CreateCategory(ctx context.Context, in domaintypes.NewCategory, image *domaintypes.Attachment) (domaintypes.Category, error)
	UpdateCategory(ctx context.Context, id domaintypes.CategoryID, patch domaintypes.CategoryPatch, image *domaintypes.Attachment) (domaintypes.Category, error)
	DeleteCategory(ctx context.Context, id domaintypes.CategoryID) error
}

// MessageAPI covers the internal messaging endpoints of the REST API.
type MessageAPI interface {
	SendMessage(ctx context.Context, in domaintypes.NewMessage) (domaintypes.Message, error)
	Conversation(ctx context.Context, user, other domaintypes.UserID) ([]domaintypes.Message, error)
	MarkMessageRead(ctx context.Context, id domaintypes.MessageID) (domaintypes.Message, error)
	DeleteMessage(ctx context.Context, id domaintypes.MessageID) error
}

// TicketAPI covers the support ticket endpoints of the REST API.
type TicketAPI interface {
	ListTickets(ctx context.Context) ([]domaintypes.SupportTicket, error)
	GetTicket(ctx context.Context, id domaintypes.TicketID) (domaintypes.SupportTicket, error)
	CreateTicket(ctx context.Context, in domaintypes.NewTicket) (domaintypes.SupportTicket, error)
	UpdateTicket(ctx context.Context, id domaintypes.TicketID, patch domaintypes.TicketPatch) (domaintypes.SupportTicket, error)
	DeleteTicket(ctx context.Context, id domaintypes.TicketID) error
}

// ChatAPI covers the assistant endpoint of the REST API.
type ChatAPI interface {
	Chat(ctx context.Context, req domaintypes.ChatRequest) (domaintypes.ChatReply, error)
}

// APIClient is the full REST surface used by the CLI.
type APIClient interface {
	CompanyAPI
	UserAPI
	ClientAPI
	ProductAPI
	CategoryAPI
	MessageAPI
	TicketAPI
	ChatAPI
}
