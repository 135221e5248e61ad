package dto

import "github.com/google/uuid"

// CreateProductRequest represents the request to create a product or a
// variant. ParentID marks the product as a variant of the parent.
type CreateProductRequest struct {
	SKU      string     `json:"sku" binding:"required,min=1,max=100"`
	Name     string     `json:"name" binding:"required,min=1,max=255"`
	GroupID  *uuid.UUID `json:"group_id"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// ProductResponse represents a product in responses
type ProductResponse struct {
	ID       uuid.UUID  `json:"id"`
	SKU      string     `json:"sku"`
	Name     string     `json:"name"`
	GroupID  *uuid.UUID `json:"group_id,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// CreateProductGroupRequest represents the request to create a product group
type CreateProductGroupRequest struct {
	Slug string `json:"slug" binding:"required,min=1,max=100"`
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ProductGroupResponse represents a product group in responses
type ProductGroupResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}
