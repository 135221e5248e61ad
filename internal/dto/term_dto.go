package dto

import "github.com/google/uuid"

// CreateTermRequest represents the request to create a vocabulary term
type CreateTermRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// TermResponse represents a vocabulary term in responses
type TermResponse struct {
	ID        uuid.UUID `json:"id"`
	FieldSlug string    `json:"field_slug"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
}
