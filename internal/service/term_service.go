package service

import (
	"context"
	"fmt"

	"product-spec-api/internal/domain"
	"product-spec-api/internal/dto"
	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/response"
)

// TermService defines the interface for vocabulary term business logic
type TermService interface {
	// ListTerms returns a relational field's vocabulary.
	ListTerms(ctx context.Context, fieldSlug string) ([]*dto.TermResponse, error)
	// CreateTerm adds a term to a relational field's vocabulary.
	// Creation is idempotent by name.
	CreateTerm(ctx context.Context, fieldSlug string, req *dto.CreateTermRequest) (*dto.TermResponse, error)
}

// termServiceImpl is the implementation of TermService
type termServiceImpl struct {
	registry  *fieldtype.Registry
	fieldRepo repository.FieldDefinitionRepository
	termRepo  repository.TermRepository
}

// NewTermService creates a new instance of TermService
func NewTermService(
	registry *fieldtype.Registry,
	fieldRepo repository.FieldDefinitionRepository,
	termRepo repository.TermRepository,
) TermService {
	return &termServiceImpl{
		registry:  registry,
		fieldRepo: fieldRepo,
		termRepo:  termRepo,
	}
}

// ListTerms retrieves a field's vocabulary ordered by name
func (s *termServiceImpl) ListTerms(ctx context.Context, fieldSlug string) ([]*dto.TermResponse, error) {
	if err := s.requireRelationalField(ctx, fieldSlug); err != nil {
		return nil, err
	}

	terms, err := s.termRepo.FindByField(ctx, fieldSlug)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch terms", err.Error())
	}

	responses := make([]*dto.TermResponse, len(terms))
	for i, term := range terms {
		responses[i] = toTermResponse(term)
	}
	return responses, nil
}

// CreateTerm adds a term to a field's vocabulary, returning the
// existing term when the name is already present
func (s *termServiceImpl) CreateTerm(ctx context.Context, fieldSlug string, req *dto.CreateTermRequest) (*dto.TermResponse, error) {
	if err := s.requireRelationalField(ctx, fieldSlug); err != nil {
		return nil, err
	}

	term, err := s.termRepo.FirstOrCreate(ctx, fieldSlug, req.Name)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create term", err.Error())
	}
	return toTermResponse(term), nil
}

// requireRelationalField checks the field exists and uses relational
// storage; only those fields carry a vocabulary.
func (s *termServiceImpl) requireRelationalField(ctx context.Context, fieldSlug string) error {
	field, err := s.fieldRepo.FindBySlug(ctx, fieldSlug)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch field", err.Error())
	}
	if field == nil {
		return response.NewNotFoundError(fmt.Sprintf("Field '%s' not found", fieldSlug), "")
	}

	ft, ok := s.registry.Get(field.Type)
	if !ok || !ft.IsRelational() {
		return response.NewValidationError(fmt.Sprintf("Field '%s' does not carry a vocabulary", fieldSlug), "")
	}
	return nil
}

// toTermResponse converts a domain model to a response DTO
func toTermResponse(term *domain.SpecTerm) *dto.TermResponse {
	return &dto.TermResponse{
		ID:        term.ID,
		FieldSlug: term.FieldSlug,
		Slug:      term.Slug,
		Name:      term.Name,
	}
}
