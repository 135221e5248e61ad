package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"product-spec-api/internal/dto"
	"product-spec-api/internal/response"
)

// SpecService is the read/write facade over one product's
// specification values, combining the resolver, formatter and save
// dispatcher for the HTTP layer.
type SpecService interface {
	// GetProductSpecs returns all visible field values of a product.
	// includeHidden additionally returns fields flagged as hidden,
	// for admin views.
	GetProductSpecs(ctx context.Context, productID uuid.UUID, includeHidden bool) ([]*dto.SpecValueResponse, error)
	// GetFieldValue returns one field's raw and formatted value.
	GetFieldValue(ctx context.Context, productID uuid.UUID, slug string) (*dto.SpecValueResponse, error)
	// SaveFieldValue dispatches one write.
	SaveFieldValue(ctx context.Context, productID uuid.UUID, slug string, raw any) (*dto.SaveSpecValueResponse, error)
	// BatchSaveValues dispatches several writes for one product.
	BatchSaveValues(ctx context.Context, productID uuid.UUID, values map[string]any) (*dto.BatchSaveSpecValuesResponse, error)
}

// specServiceImpl is the implementation of SpecService
type specServiceImpl struct {
	fieldService FieldService
	resolver     ValueResolver
	formatter    ValueFormatter
	saver        ValueSaver
	logger       *zap.Logger
}

// NewSpecService creates a new instance of SpecService
func NewSpecService(
	fieldService FieldService,
	resolver ValueResolver,
	formatter ValueFormatter,
	saver ValueSaver,
	logger *zap.Logger,
) SpecService {
	return &specServiceImpl{
		fieldService: fieldService,
		resolver:     resolver,
		formatter:    formatter,
		saver:        saver,
		logger:       logger,
	}
}

// GetProductSpecs resolves and formats every visible field of a
// product. The storefront view (includeHidden false) omits hidden
// fields and fields that format to an empty string; admin views get
// everything so empty fields stay editable.
func (s *specServiceImpl) GetProductSpecs(ctx context.Context, productID uuid.UUID, includeHidden bool) ([]*dto.SpecValueResponse, error) {
	fields, err := s.fieldService.VisibleFields(ctx, productID)
	if err != nil {
		return nil, err
	}

	values := make([]*dto.SpecValueResponse, 0, len(fields))
	for _, field := range fields {
		if field.HideInFrontend && !includeHidden {
			continue
		}

		raw, err := s.resolver.Resolve(ctx, productID, field.Slug)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve field value", err.Error())
		}
		formatted, err := s.formatter.FormatField(ctx, productID, field)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to format field value", err.Error())
		}
		if formatted == "" && !includeHidden {
			continue
		}

		values = append(values, &dto.SpecValueResponse{
			FieldSlug:      field.Slug,
			Label:          field.Label,
			Raw:            raw,
			Formatted:      formatted,
			SchemaProperty: field.SchemaProperty,
		})
	}
	return values, nil
}

// GetFieldValue resolves and formats one field, known or external
func (s *specServiceImpl) GetFieldValue(ctx context.Context, productID uuid.UUID, slug string) (*dto.SpecValueResponse, error) {
	raw, err := s.resolver.Resolve(ctx, productID, slug)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve field value", err.Error())
	}
	formatted, err := s.formatter.Format(ctx, productID, slug)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to format field value", err.Error())
	}
	return &dto.SpecValueResponse{
		FieldSlug: slug,
		Raw:       raw,
		Formatted: formatted,
	}, nil
}

// SaveFieldValue dispatches one write and reports the outcome
func (s *specServiceImpl) SaveFieldValue(ctx context.Context, productID uuid.UUID, slug string, raw any) (*dto.SaveSpecValueResponse, error) {
	saved, err := s.saver.Save(ctx, productID, slug, raw)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save field value", err.Error())
	}
	return &dto.SaveSpecValueResponse{FieldSlug: slug, Saved: saved}, nil
}

// BatchSaveValues dispatches several writes. A failed dispatch aborts
// the batch; unhandled slugs report saved=false and do not.
func (s *specServiceImpl) BatchSaveValues(ctx context.Context, productID uuid.UUID, values map[string]any) (*dto.BatchSaveSpecValuesResponse, error) {
	results := make([]dto.SaveSpecValueResponse, 0, len(values))
	for slug, raw := range values {
		saved, err := s.saver.Save(ctx, productID, slug, raw)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save field value", err.Error())
		}
		results = append(results, dto.SaveSpecValueResponse{FieldSlug: slug, Saved: saved})
	}
	return &dto.BatchSaveSpecValuesResponse{Results: results}, nil
}
