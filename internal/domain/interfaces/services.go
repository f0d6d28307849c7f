package interfaces

import (
	"context"

	domaintypes "dante/internal/domain/types"
)

// AuthService registers companies and logs companies or users in.
type AuthService interface {
	RegisterCompany(ctx context.Context, reg domaintypes.CompanyRegistration) (domaintypes.Company, error)
	LoginCompany(ctx context.Context, email, password string) (domaintypes.Company, error)
	LoginUser(ctx context.Context, email, password string) (domaintypes.User, error)
}

// SessionCoordinator resets every store together.
type SessionCoordinator interface {
	LogoutAll()
}

// ClientService mirrors the company's clients locally.
type ClientService interface {
	LogoutParticipant
	FetchAll(ctx context.Context) ([]domaintypes.Client, error)
	Add(ctx context.Context, in domaintypes.NewClient, avatar *domaintypes.Attachment) (domaintypes.Client, error)
	Update(ctx context.Context, id domaintypes.ClientID, patch domaintypes.ClientPatch) (domaintypes.Client, error)
	Remove(ctx context.Context, id domaintypes.ClientID) error
	Clients() []domaintypes.Client
}

// ProductService mirrors the company's inventory locally.
type ProductService interface {
	LogoutParticipant
	FetchAll(ctx context.Context) ([]domaintypes.Product, error)
	FetchByCategory(ctx context.Context, category domaintypes.CategoryID) ([]domaintypes.Product, error)
	Add(ctx context.Context, in domaintypes.NewProduct, image *domaintypes.Attachment) (domaintypes.Product, error)
	Update(ctx context.Context, id domaintypes.ProductID, patch domaintypes.ProductPatch, image *domaintypes.Attachment) (domaintypes.Product, error)
	Remove(ctx context.Context, id domaintypes.ProductID) error
	Products() []domaintypes.Product
}

// CategoryService mirrors the company's categories locally.
type CategoryService interface {
	LogoutParticipant
	FetchAll(ctx context.Context, kind domaintypes.CategoryKind) ([]domaintypes.Category, error)
	Add(ctx context.Context, in domaintypes.NewCategory, image *domaintypes.Attachment) (domaintypes.Category, error)
	Update(ctx context.Context, id domaintypes.CategoryID, patch domaintypes.CategoryPatch, image *domaintypes.Attachment) (domaintypes.Category, error)
	Remove(ctx context.Context, id domaintypes.CategoryID) error
	Categories() []domaintypes.Category
}

// MessageService mirrors one conversation locally.
type MessageService interface {
	LogoutParticipant
	Conversation(ctx context.Context, other domaintypes.UserID) ([]domaintypes.Message, error)
	Send(ctx context.Context, to domaintypes.UserID, content string) (domaintypes.Message, error)
	MarkRead(ctx context.Context, id domaintypes.MessageID) (domaintypes.Message, error)
	Remove(ctx context.Context, id domaintypes.MessageID) error
	Messages() []domaintypes.Message
}

// UserService mirrors the company's users locally.
type UserService interface {
	LogoutParticipant
	FetchAll(ctx context.Context) ([]domaintypes.User, error)
	Add(ctx context.Context, in domaintypes.NewUser, avatar *domaintypes.Attachment) (domaintypes.User, error)
	Update(ctx context.Context, id domaintypes.UserID, patch domaintypes.UserPatch, avatar *domaintypes.Attachment) (domaintypes.User, error)
	Remove(ctx context.Context, id domaintypes.UserID) error
	Users() []domaintypes.User
}

// TicketService mirrors the support tickets locally.
type TicketService interface {
	LogoutParticipant
	FetchAll(ctx context.Context) ([]domaintypes.SupportTicket, error)
	Add(ctx context.Context, subject, description string) (domaintypes.SupportTicket, error)
	Update(ctx context.Context, id domaintypes.TicketID, patch domaintypes.TicketPatch) (domaintypes.SupportTicket, error)
	Remove(ctx context.Context, id domaintypes.TicketID) error
	Tickets() []domaintypes.SupportTicket
}
