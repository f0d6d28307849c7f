package types

import "time"

// Message is an internal message between two users.
type Message struct {
	ID         MessageID    `json:"id"`
	SenderID   UserID       `json:"sender_id"`
	ReceiverID UserID       `json:"receiver_id"`
	Content    string       `json:"content"`
	IsRead     bool         `json:"is_read"`
	CreatedAt  time.Time    `json:"created_at"`
	Sender     *UserSummary `json:"sender,omitempty"`
	Receiver   *UserSummary `json:"receiver,omitempty"`
}

// Key implements Keyed.
func (m Message) Key() string { return string(m.ID) }

// NewMessage is the payload for sending a message.
type NewMessage struct {
	SenderID   UserID `json:"sender_id"`
	ReceiverID UserID `json:"receiver_id"`
	Content    string `json:"content"`
}

// UserSummary is the public subset of a user embedded in messages and tickets.
type UserSummary struct {
	ID        UserID `json:"id_user"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
