package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/hooks"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/value"
)

// ValueResolver reads the raw specification value of one product field.
type ValueResolver interface {
	// Resolve returns the raw value for a (product, field slug) pair,
	// or nil when the product carries no value. Variants without their
	// own value fall back to the parent product's value.
	Resolve(ctx context.Context, productID uuid.UUID, slug string) (any, error)
}

// valueResolverImpl implements ValueResolver
type valueResolverImpl struct {
	registry    *fieldtype.Registry
	fieldRepo   repository.FieldDefinitionRepository
	valueRepo   repository.SpecValueRepository
	termRepo    repository.TermRepository
	productRepo repository.ProductRepository
	hooks       *hooks.Hooks
	logger      *zap.Logger
}

// NewValueResolver creates a new instance of ValueResolver
func NewValueResolver(
	registry *fieldtype.Registry,
	fieldRepo repository.FieldDefinitionRepository,
	valueRepo repository.SpecValueRepository,
	termRepo repository.TermRepository,
	productRepo repository.ProductRepository,
	h *hooks.Hooks,
	logger *zap.Logger,
) ValueResolver {
	return &valueResolverImpl{
		registry:    registry,
		fieldRepo:   fieldRepo,
		valueRepo:   valueRepo,
		termRepo:    termRepo,
		productRepo: productRepo,
		hooks:       h,
		logger:      logger,
	}
}

// maxFallbackDepth bounds the parent-chain walk. Product creation
// rejects variants of variants, so any deeper chain is corrupt data.
const maxFallbackDepth = 4

// Resolve implements the read path. Unknown slugs are offered to the
// external-value extension and resolve to nil when nothing claims
// them; they are never an error.
func (s *valueResolverImpl) Resolve(ctx context.Context, productID uuid.UUID, slug string) (any, error) {
	return s.resolve(ctx, productID, slug, 0)
}

func (s *valueResolverImpl) resolve(ctx context.Context, productID uuid.UUID, slug string, depth int) (any, error) {
	field, err := s.fieldRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if field == nil {
		if v, ok := s.hooks.ResolveExternal(ctx, productID, slug); ok {
			return v, nil
		}
		return nil, nil
	}

	ft, ok := s.registry.Get(field.Type)
	if !ok {
		// The definition references a type no longer in the registry
		// (a removed contribution). There is no storage to consult.
		s.logger.Warn("field definition references unknown type",
			zap.String("field_slug", field.Slug),
			zap.String("field_type", field.Type),
		)
		return nil, nil
	}

	if ft.IsRelational() {
		// Relational assignments live at the parent product; the
		// variation override never applies to them.
		ownerID, err := relationalOwnerID(ctx, s.productRepo, productID)
		if err != nil {
			return nil, err
		}
		return s.resolveRelational(ctx, ownerID, field.Slug, ft)
	}

	raw, err := s.resolveFlat(ctx, productID, field.Slug, ft)
	if err != nil {
		return nil, err
	}
	if !value.IsEmpty(raw) {
		return raw, nil
	}

	// Variation fallback: a variant without its own value reads the
	// parent product's value.
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if product == nil || !product.IsVariant() {
		return nil, nil
	}
	if depth >= maxFallbackDepth {
		s.logger.Warn("parent chain exceeds fallback depth, stopping",
			zap.String("product_id", productID.String()),
			zap.String("field_slug", slug),
		)
		return nil, nil
	}
	return s.resolve(ctx, *product.ParentID, slug, depth+1)
}

// relationalOwnerID maps a product to the product owning its relational
// assignments. Variants never carry their own; the parent does.
func relationalOwnerID(ctx context.Context, products repository.ProductRepository, productID uuid.UUID) (uuid.UUID, error) {
	product, err := products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return productID, nil
		}
		return uuid.Nil, err
	}
	if product == nil || !product.IsVariant() {
		return productID, nil
	}
	return *product.ParentID, nil
}

// resolveRelational reads the product's term assignment. Single-value
// types yield one term ID, multi-value types the ordered ID list.
func (s *valueResolverImpl) resolveRelational(ctx context.Context, productID uuid.UUID, slug string, ft fieldtype.FieldType) (any, error) {
	terms, err := s.termRepo.FindAssigned(ctx, productID, slug)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, nil
	}

	if ft.HasCapability(fieldtype.CapabilityMultipleValues) {
		ids := make([]uuid.UUID, 0, len(terms))
		for _, t := range terms {
			ids = append(ids, t.ID)
		}
		return ids, nil
	}
	return terms[0].ID, nil
}

// resolveFlat reads and decodes the flat key-value record.
func (s *valueResolverImpl) resolveFlat(ctx context.Context, productID uuid.UUID, slug string, ft fieldtype.FieldType) (any, error) {
	record, err := s.valueRepo.Get(ctx, productID, slug)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return decodeFlatValue(record.Value, ft), nil
}
