package hooks

import (
	"context"

	"github.com/google/uuid"

	"product-spec-api/internal/domain"
)

// FieldListFunc may inject, reorder or remove field definitions visible
// for a product group. group is nil when listing global fields.
type FieldListFunc func(ctx context.Context, fields []*domain.FieldDefinition, group *uuid.UUID) []*domain.FieldDefinition

// ExternalValueFunc answers reads for slugs unknown to the registry.
// ok=false means no external provider claims the slug.
type ExternalValueFunc func(ctx context.Context, productID uuid.UUID, slug string) (value any, ok bool)

// FormatWrapFunc wraps every formatted value, including unknown slugs
// (formatted="" and raw=nil in that case). field is nil for unknown
// slugs; the returned string replaces the formatted value entirely.
type FormatWrapFunc func(ctx context.Context, formatted string, raw any, field *domain.FieldDefinition, productID uuid.UUID, links bool) string

// ExternalSaveFunc handles writes for slugs unknown to the registry.
// Its boolean result becomes the save result.
type ExternalSaveFunc func(ctx context.Context, productID uuid.UUID, slug string, raw any) bool

// InvalidationListener is notified after every successful save for a
// product, so caching layers in front of the formatter can drop
// derived output.
type InvalidationListener func(ctx context.Context, productID uuid.UUID)

// Hooks is the extension-point registry. All slots are resolved at
// composition time; consuming code treats nil slots as "no extension
// registered" through the accessor methods below.
type Hooks struct {
	FieldList     FieldListFunc
	ExternalValue ExternalValueFunc
	FormatWrap    FormatWrapFunc
	ExternalSave  ExternalSaveFunc

	invalidation []InvalidationListener
}

// New creates an empty hook registry.
func New() *Hooks {
	return &Hooks{}
}

// OnInvalidation registers a cache-invalidation listener.
func (h *Hooks) OnInvalidation(listener InvalidationListener) {
	if listener != nil {
		h.invalidation = append(h.invalidation, listener)
	}
}

// NotifyInvalidation signals all invalidation listeners for a product.
func (h *Hooks) NotifyInvalidation(ctx context.Context, productID uuid.UUID) {
	if h == nil {
		return
	}
	for _, listener := range h.invalidation {
		listener(ctx, productID)
	}
}

// ApplyFieldList runs the field-list extension, or returns the input
// unchanged when none is registered.
func (h *Hooks) ApplyFieldList(ctx context.Context, fields []*domain.FieldDefinition, group *uuid.UUID) []*domain.FieldDefinition {
	if h == nil || h.FieldList == nil {
		return fields
	}
	return h.FieldList(ctx, fields, group)
}

// ResolveExternal asks the external-value extension for a slug unknown
// to the registry. ok=false when no extension is registered or the
// extension declines.
func (h *Hooks) ResolveExternal(ctx context.Context, productID uuid.UUID, slug string) (any, bool) {
	if h == nil || h.ExternalValue == nil {
		return nil, false
	}
	return h.ExternalValue(ctx, productID, slug)
}

// WrapFormatted runs the format extension over a formatted value.
func (h *Hooks) WrapFormatted(ctx context.Context, formatted string, raw any, field *domain.FieldDefinition, productID uuid.UUID, links bool) string {
	if h == nil || h.FormatWrap == nil {
		return formatted
	}
	return h.FormatWrap(ctx, formatted, raw, field, productID, links)
}

// SaveExternal asks the external-save extension to persist a slug
// unknown to the registry. claimed=false when no extension is
// registered; saved carries the extension's result otherwise.
func (h *Hooks) SaveExternal(ctx context.Context, productID uuid.UUID, slug string, raw any) (saved bool, claimed bool) {
	if h == nil || h.ExternalSave == nil {
		return false, false
	}
	return h.ExternalSave(ctx, productID, slug, raw), true
}
