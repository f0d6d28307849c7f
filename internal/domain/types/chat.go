package types

import "time"

// ChatRequest is a question sent to the assistant.
type ChatRequest struct {
	UserID    UserID    `json:"user_id"`
	CompanyID CompanyID `json:"company_id"`
	Message   string    `json:"message"`
}

// ChatReply is the assistant's answer.
type ChatReply struct {
	Reply string `json:"reply"`
}

// ChatExchange is one stored question/answer pair.
type ChatExchange struct {
	UserID    UserID    `json:"user_id"`
	CompanyID CompanyID `json:"company_id"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}
