package fieldtype

import (
	"context"

	"github.com/google/uuid"

	"product-spec-api/internal/domain"
)

// Datatype drives sorting, comparison and formatting of a field type.
type Datatype string

// Datatype constants
const (
	DatatypeText   Datatype = "text"
	DatatypeNumber Datatype = "number"
)

// Storage selects how values of a field type are persisted.
type Storage string

// Storage constants
const (
	// StorageFlat keeps one value per product as a key-value record.
	StorageFlat Storage = "flat"
	// StorageRelational expresses the value as membership in a shared
	// vocabulary of terms. Relational values are attached at the
	// product level; variation overrides never apply to them.
	StorageRelational Storage = "relational"
)

// Capability is a named optional behavior a field type may declare.
type Capability string

// Capability constants
const (
	CapabilityUnit           Capability = "unit"
	CapabilityVariations     Capability = "variations"
	CapabilityMultipleValues Capability = "multiple_values"
	CapabilityLink           Capability = "link"
)

// Built-in field type slugs
const (
	TypeText         = "text"
	TypeNumber       = "number"
	TypeInteger      = "integer"
	TypeMinMax       = "minmax"
	TypeSelect       = "select"
	TypeMultiSelect  = "multiselect"
	TypeAutocomplete = "autocomplete"
)

// SaveFunc is an override hook replacing the default save routine for a
// field type. It returns the save result the dispatcher reports.
type SaveFunc func(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error)

// FormatFunc is an override hook replacing the default formatting
// routine for a field type.
type FormatFunc func(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (string, error)

// FieldType is an immutable capability descriptor for one field type.
type FieldType struct {
	Slug         string
	Label        string
	Description  string
	Datatype     Datatype
	Storage      Storage
	Capabilities []Capability

	// Optional override slots. A nil slot means the built-in routine
	// in the service layer applies.
	SaveOverride   SaveFunc
	FormatOverride FormatFunc
}

// HasCapability reports whether the type declares the capability.
func (t FieldType) HasCapability(cap Capability) bool {
	for _, c := range t.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}

// IsRelational reports whether values live in the term vocabulary.
func (t FieldType) IsRelational() bool {
	return t.Storage == StorageRelational
}

// builtinTypes returns a fresh copy of the built-in type table.
func builtinTypes() map[string]FieldType {
	return map[string]FieldType{
		TypeText: {
			Slug:         TypeText,
			Label:        "Text",
			Description:  "Free text value",
			Datatype:     DatatypeText,
			Storage:      StorageFlat,
			Capabilities: []Capability{CapabilityVariations},
		},
		TypeNumber: {
			Slug:         TypeNumber,
			Label:        "Number",
			Description:  "Decimal number with optional measurement unit",
			Datatype:     DatatypeNumber,
			Storage:      StorageFlat,
			Capabilities: []Capability{CapabilityUnit, CapabilityVariations},
		},
		TypeInteger: {
			Slug:         TypeInteger,
			Label:        "Integer",
			Description:  "Whole number with optional measurement unit",
			Datatype:     DatatypeNumber,
			Storage:      StorageFlat,
			Capabilities: []Capability{CapabilityUnit, CapabilityVariations},
		},
		TypeMinMax: {
			Slug:         TypeMinMax,
			Label:        "Range",
			Description:  "Minimum and maximum decimal pair",
			Datatype:     DatatypeNumber,
			Storage:      StorageFlat,
			Capabilities: []Capability{CapabilityUnit, CapabilityVariations},
		},
		TypeSelect: {
			Slug:         TypeSelect,
			Label:        "Select",
			Description:  "Single choice from a shared vocabulary",
			Datatype:     DatatypeText,
			Storage:      StorageRelational,
			Capabilities: []Capability{CapabilityLink},
		},
		TypeMultiSelect: {
			Slug:         TypeMultiSelect,
			Label:        "Multi select",
			Description:  "Multiple choices from a shared vocabulary",
			Datatype:     DatatypeText,
			Storage:      StorageRelational,
			Capabilities: []Capability{CapabilityMultipleValues, CapabilityLink},
		},
		TypeAutocomplete: {
			Slug:         TypeAutocomplete,
			Label:        "Autocomplete",
			Description:  "Free-entry vocabulary values, created on demand",
			Datatype:     DatatypeText,
			Storage:      StorageRelational,
			Capabilities: []Capability{CapabilityMultipleValues, CapabilityLink},
		},
	}
}
