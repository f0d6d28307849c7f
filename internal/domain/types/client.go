package types

import "time"

// Client is a customer of a company, optionally grouped by category.
type Client struct {
	ID             ClientID   `json:"id"`
	CompanyID      CompanyID  `json:"company_id"`
	CategoryID     CategoryID `json:"category_id,omitempty"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	DocumentType   string     `json:"document_type,omitempty"`
	DocumentNumber string     `json:"document_number,omitempty"`
	Avatar         string     `json:"avatar,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Key implements Keyed.
func (c Client) Key() string { return string(c.ID) }

// NewClient is the payload for creating a client.
type NewClient struct {
	CompanyID      CompanyID  `json:"company_id" form:"company_id"`
	CategoryID     CategoryID `json:"category_id,omitempty" form:"category_id"`
	Name           string     `json:"name" form:"name"`
	Email          string     `json:"email" form:"email"`
	Phone          string     `json:"phone,omitempty" form:"phone"`
	Address        string     `json:"address,omitempty" form:"address"`
	DocumentType   string     `json:"document_type,omitempty" form:"document_type"`
	DocumentNumber string     `json:"document_number,omitempty" form:"document_number"`
}

// ClientPatch carries a partial client update; nil fields are left unchanged.
type ClientPatch struct {
	CategoryID     *CategoryID `json:"category_id,omitempty"`
	Name           *string     `json:"name,omitempty"`
	Email          *string     `json:"email,omitempty"`
	Phone          *string     `json:"phone,omitempty"`
	Address        *string     `json:"address,omitempty"`
	DocumentType   *string     `json:"document_type,omitempty"`
	DocumentNumber *string     `json:"document_number,omitempty"`
	IsActive       *bool       `json:"is_active,omitempty"`
}
