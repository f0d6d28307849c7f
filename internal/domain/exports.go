package domain

import (
	interfaces "dante/internal/domain/interfaces"
	types "dante/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CompanyID           = types.CompanyID
	UserID              = types.UserID
	ClientID            = types.ClientID
	ProductID           = types.ProductID
	CategoryID          = types.CategoryID
	MessageID           = types.MessageID
	TicketID            = types.TicketID
	Keyed               = types.Keyed
	Attachment          = types.Attachment
	Company             = types.Company
	CompanyRegistration = types.CompanyRegistration
	CompanyLogin        = types.CompanyLogin
	Credentials         = types.Credentials
	Role                = types.Role
	User                = types.User
	NewUser             = types.NewUser
	UserPatch           = types.UserPatch
	UserLogin           = types.UserLogin
	UserSummary         = types.UserSummary
	PasswordChange      = types.PasswordChange
	Client              = types.Client
	NewClient           = types.NewClient
	ClientPatch         = types.ClientPatch
	Product             = types.Product
	NewProduct          = types.NewProduct
	ProductPatch        = types.ProductPatch
	CategoryKind        = types.CategoryKind
	Category            = types.Category
	NewCategory         = types.NewCategory
	CategoryPatch       = types.CategoryPatch
	Message             = types.Message
	NewMessage          = types.NewMessage
	TicketStatus        = types.TicketStatus
	SupportTicket       = types.SupportTicket
	NewTicket           = types.NewTicket
	TicketPatch         = types.TicketPatch
	ChatRequest         = types.ChatRequest
	ChatReply           = types.ChatReply
	ChatExchange        = types.ChatExchange
	CompanySession      = types.CompanySession
	UserSession         = types.UserSession
	TokenSession        = types.TokenSession
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KV                 = interfaces.KV
	LogoutParticipant  = interfaces.LogoutParticipant
	CompanyStore       = interfaces.CompanyStore
	UserStore          = interfaces.UserStore
	SessionStore       = interfaces.SessionStore
	CompanyAPI         = interfaces.CompanyAPI
	UserAPI            = interfaces.UserAPI
	ClientAPI          = interfaces.ClientAPI
	ProductAPI         = interfaces.ProductAPI
	CategoryAPI        = interfaces.CategoryAPI
	MessageAPI         = interfaces.MessageAPI
	TicketAPI          = interfaces.TicketAPI
	ChatAPI            = interfaces.ChatAPI
	APIClient          = interfaces.APIClient
	AuthService        = interfaces.AuthService
	SessionCoordinator = interfaces.SessionCoordinator
	ClientService      = interfaces.ClientService
	ProductService     = interfaces.ProductService
	CategoryService    = interfaces.CategoryService
	MessageService     = interfaces.MessageService
	UserService        = interfaces.UserService
	TicketService      = interfaces.TicketService
)

// Re-exported constants.
const (
	RoleUser         = types.RoleUser
	RoleSupport      = types.RoleSupport
	RoleOperator     = types.RoleOperator
	RoleOwner        = types.RoleOwner
	RoleDeveloper    = types.RoleDeveloper
	DefaultUserRole  = types.DefaultUserRole
	BirthDateLayout  = types.BirthDateLayout
	AnyCategoryKind  = types.AnyCategoryKind
	ClientGroup      = types.ClientGroup
	InventoryGroup   = types.InventoryGroup
	TicketOpen       = types.TicketOpen
	TicketInProgress = types.TicketInProgress
	TicketClosed     = types.TicketClosed
)
