package types

// CompanyID identifies a registered company (tenant).
type CompanyID string

// String returns the string form of the identifier.
func (id CompanyID) String() string { return string(id) }

// UserID identifies a user account inside a company.
type UserID string

// String returns the string form of the identifier.
func (id UserID) String() string { return string(id) }

// ClientID identifies a customer record.
type ClientID string

// String returns the string form of the identifier.
func (id ClientID) String() string { return string(id) }

// ProductID identifies an inventory item.
type ProductID string

// String returns the string form of the identifier.
func (id ProductID) String() string { return string(id) }

// CategoryID identifies a client group or inventory group.
type CategoryID string

// String returns the string form of the identifier.
func (id CategoryID) String() string { return string(id) }

// MessageID identifies an internal message.
type MessageID string

// String returns the string form of the identifier.
func (id MessageID) String() string { return string(id) }

// TicketID identifies a support ticket.
type TicketID string

// String returns the string form of the identifier.
func (id TicketID) String() string { return string(id) }

// Keyed is implemented by every record kept in a domain cache.
type Keyed interface {
	Key() string
}

// Attachment is a file sent along a create or update call (avatars, images).
type Attachment struct {
	Filename string
	Data     []byte
}
