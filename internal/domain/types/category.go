package types

import "time"

// CategoryKind tells which collection a category groups ("typeon" on the wire).
type CategoryKind int

const (
	// AnyCategoryKind matches every kind when filtering.
	AnyCategoryKind CategoryKind = 0
	// ClientGroup categories group clients.
	ClientGroup CategoryKind = 1
	// InventoryGroup categories group products.
	InventoryGroup CategoryKind = 2
)

// Category groups clients or products of a company.
type Category struct {
	ID          CategoryID   `json:"id_category"`
	Kind        CategoryKind `json:"typeon"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Image       string       `json:"image,omitempty"`
	CompanyID   CompanyID    `json:"company_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Key implements Keyed.
func (c Category) Key() string { return string(c.ID) }

// NewCategory is the payload for creating a category.
type NewCategory struct {
	Kind        CategoryKind `json:"typeon" form:"typeon"`
	Name        string       `json:"name" form:"name"`
	Description string       `json:"description,omitempty" form:"description"`
	CompanyID   CompanyID    `json:"company_id" form:"company_id"`
}

// CategoryPatch carries a partial category update.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
