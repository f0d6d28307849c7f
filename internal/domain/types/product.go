package types

import "time"

// Product is an inventory item.
type Product struct {
	ID          ProductID  `json:"id_product"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	Image       string     `json:"image,omitempty"`
	IsActive    bool       `json:"is_active"`
	CategoryID  CategoryID `json:"category_id"`
	CompanyID   CompanyID  `json:"company_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Key implements Keyed.
func (p Product) Key() string { return string(p.ID) }

// NewProduct is the payload for creating a product.
type NewProduct struct {
	Name        string     `json:"name" form:"name"`
	Description string     `json:"description,omitempty" form:"description"`
	Price       float64    `json:"price" form:"price"`
	Stock       int        `json:"stock" form:"stock"`
	CategoryID  CategoryID `json:"category_id" form:"category_id"`
	CompanyID   CompanyID  `json:"company_id" form:"company_id"`
}

// ProductPatch carries a partial product update; nil fields are left unchanged.
type ProductPatch struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Price       *float64    `json:"price,omitempty"`
	Stock       *int        `json:"stock,omitempty"`
	IsActive    *bool       `json:"is_active,omitempty"`
	CategoryID  *CategoryID `json:"category_id,omitempty"`
}
