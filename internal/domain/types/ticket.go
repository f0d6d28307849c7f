package types

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "Abierto"
	TicketInProgress TicketStatus = "En Progreso"
	TicketClosed     TicketStatus = "Cerrado"
)

// SupportTicket is a request for help filed by a user.
type SupportTicket struct {
	ID          TicketID     `json:"id"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
	UserID      UserID       `json:"user_id"`
	User        *UserSummary `json:"user,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Key implements Keyed.
func (t SupportTicket) Key() string { return string(t.ID) }

// NewTicket is the payload for opening a ticket.
type NewTicket struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	UserID      UserID `json:"user_id"`
}

// TicketPatch carries a partial ticket update.
type TicketPatch struct {
	Subject     *string       `json:"subject,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *TicketStatus `json:"status,omitempty"`
}
