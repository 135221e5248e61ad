package dto

import (
	"github.com/google/uuid"
)

// CreateFieldDefinitionRequest represents the request to create a field definition
type CreateFieldDefinitionRequest struct {
	Slug             string      `json:"slug" binding:"required,min=1,max=100"`
	Label            string      `json:"label" binding:"required,min=1,max=255"`
	Type             string      `json:"type" binding:"required,min=1,max=50"`
	Unit             string      `json:"unit" binding:"omitempty,max=20"`
	HideInFrontend   bool        `json:"hide_in_frontend"`
	ShowLinks        bool        `json:"show_links"`
	SchemaProperty   string      `json:"schema_property" binding:"omitempty,max=100"`
	VariationEnabled bool        `json:"variation_enabled"`
	DisplayOrder     int         `json:"display_order"`
	GroupIDs         []uuid.UUID `json:"group_ids"`
}

// UpdateFieldDefinitionRequest represents the request to update a field definition.
// Nil fields are left unchanged; GroupIDs, when present, replaces the
// group restriction entirely.
type UpdateFieldDefinitionRequest struct {
	Label            *string      `json:"label" binding:"omitempty,min=1,max=255"`
	Unit             *string      `json:"unit" binding:"omitempty,max=20"`
	HideInFrontend   *bool        `json:"hide_in_frontend"`
	ShowLinks        *bool        `json:"show_links"`
	SchemaProperty   *string      `json:"schema_property" binding:"omitempty,max=100"`
	VariationEnabled *bool        `json:"variation_enabled"`
	DisplayOrder     *int         `json:"display_order"`
	GroupIDs         *[]uuid.UUID `json:"group_ids"`
}

// FieldDefinitionResponse represents a field definition in responses
type FieldDefinitionResponse struct {
	ID               uuid.UUID              `json:"id"`
	Slug             string                 `json:"slug"`
	Label            string                 `json:"label"`
	Type             string                 `json:"type"`
	Unit             string                 `json:"unit,omitempty"`
	HideInFrontend   bool                   `json:"hide_in_frontend"`
	ShowLinks        bool                   `json:"show_links"`
	SchemaProperty   string                 `json:"schema_property,omitempty"`
	VariationEnabled bool                   `json:"variation_enabled"`
	DisplayOrder     int                    `json:"display_order"`
	Groups           []ProductGroupResponse `json:"groups,omitempty"`
}
