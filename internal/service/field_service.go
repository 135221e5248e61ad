package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"product-spec-api/internal/domain"
	"product-spec-api/internal/dto"
	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/hooks"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/response"
	"product-spec-api/internal/units"
)

// FieldService defines the interface for field definition business logic
type FieldService interface {
	CreateField(ctx context.Context, req *dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error)
	GetField(ctx context.Context, slug string) (*dto.FieldDefinitionResponse, error)
	ListFields(ctx context.Context) ([]*dto.FieldDefinitionResponse, error)
	UpdateField(ctx context.Context, slug string, req *dto.UpdateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error)
	DeleteField(ctx context.Context, slug string) error
	// VisibleFields returns the definitions visible for one product,
	// honoring group restrictions and the field-list extension.
	VisibleFields(ctx context.Context, productID uuid.UUID) ([]*domain.FieldDefinition, error)
}

// fieldServiceImpl is the implementation of FieldService
type fieldServiceImpl struct {
	registry    *fieldtype.Registry
	units       *units.Registry
	fieldRepo   repository.FieldDefinitionRepository
	groupRepo   repository.GroupRepository
	productRepo repository.ProductRepository
	hooks       *hooks.Hooks
}

// NewFieldService creates a new instance of FieldService
func NewFieldService(
	registry *fieldtype.Registry,
	unitRegistry *units.Registry,
	fieldRepo repository.FieldDefinitionRepository,
	groupRepo repository.GroupRepository,
	productRepo repository.ProductRepository,
	h *hooks.Hooks,
) FieldService {
	return &fieldServiceImpl{
		registry:    registry,
		units:       unitRegistry,
		fieldRepo:   fieldRepo,
		groupRepo:   groupRepo,
		productRepo: productRepo,
		hooks:       h,
	}
}

// CreateField creates a field definition after validating its type,
// unit and group references
func (s *fieldServiceImpl) CreateField(ctx context.Context, req *dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	slug := repository.Slugify(req.Slug)
	if slug == "" {
		return nil, response.NewValidationError("Slug must contain at least one alphanumeric character", "")
	}

	existing, err := s.fieldRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for existing field", err.Error())
	}
	if existing != nil {
		return nil, response.NewAlreadyExistsError(fmt.Sprintf("Field '%s' already exists", slug), "")
	}

	field := &domain.FieldDefinition{
		Slug:             slug,
		Label:            req.Label,
		Type:             req.Type,
		Unit:             req.Unit,
		HideInFrontend:   req.HideInFrontend,
		ShowLinks:        req.ShowLinks,
		SchemaProperty:   req.SchemaProperty,
		VariationEnabled: req.VariationEnabled,
		DisplayOrder:     req.DisplayOrder,
	}
	if err := s.validateField(ctx, field, req.GroupIDs); err != nil {
		return nil, err
	}

	if err := s.fieldRepo.Create(ctx, field); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create field", err.Error())
	}
	return toFieldDefinitionResponse(field), nil
}

// GetField retrieves one field definition by slug
func (s *fieldServiceImpl) GetField(ctx context.Context, slug string) (*dto.FieldDefinitionResponse, error) {
	field, err := s.fieldRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field", err.Error())
	}
	if field == nil {
		return nil, response.NewNotFoundError(fmt.Sprintf("Field '%s' not found", slug), "")
	}
	return toFieldDefinitionResponse(field), nil
}

// ListFields retrieves all field definitions in display order
func (s *fieldServiceImpl) ListFields(ctx context.Context) ([]*dto.FieldDefinitionResponse, error) {
	fields, err := s.fieldRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch fields", err.Error())
	}

	responses := make([]*dto.FieldDefinitionResponse, len(fields))
	for i, field := range fields {
		responses[i] = toFieldDefinitionResponse(field)
	}
	return responses, nil
}

// UpdateField updates a field definition. The slug and type are
// immutable; values already stored under them must stay addressable.
func (s *fieldServiceImpl) UpdateField(ctx context.Context, slug string, req *dto.UpdateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	field, err := s.fieldRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field", err.Error())
	}
	if field == nil {
		return nil, response.NewNotFoundError(fmt.Sprintf("Field '%s' not found", slug), "")
	}

	if req.Label != nil {
		field.Label = *req.Label
	}
	if req.Unit != nil {
		field.Unit = *req.Unit
	}
	if req.HideInFrontend != nil {
		field.HideInFrontend = *req.HideInFrontend
	}
	if req.ShowLinks != nil {
		field.ShowLinks = *req.ShowLinks
	}
	if req.SchemaProperty != nil {
		field.SchemaProperty = *req.SchemaProperty
	}
	if req.VariationEnabled != nil {
		field.VariationEnabled = *req.VariationEnabled
	}
	if req.DisplayOrder != nil {
		field.DisplayOrder = *req.DisplayOrder
	}

	groupIDs := groupIDsOf(field.Groups)
	if req.GroupIDs != nil {
		groupIDs = *req.GroupIDs
	}
	if err := s.validateField(ctx, field, groupIDs); err != nil {
		return nil, err
	}

	if err := s.fieldRepo.Update(ctx, field); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update field", err.Error())
	}
	return toFieldDefinitionResponse(field), nil
}

// DeleteField deletes a field definition. Stored values under the slug
// become orphans and are pruned by the maintenance job.
func (s *fieldServiceImpl) DeleteField(ctx context.Context, slug string) error {
	field, err := s.fieldRepo.FindBySlug(ctx, slug)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch field", err.Error())
	}
	if field == nil {
		return response.NewNotFoundError(fmt.Sprintf("Field '%s' not found", slug), "")
	}
	if err := s.fieldRepo.Delete(ctx, field.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete field", err.Error())
	}
	return nil
}

// VisibleFields resolves the product's group and returns the field
// definitions visible for it, after the field-list extension ran.
func (s *fieldServiceImpl) VisibleFields(ctx context.Context, productID uuid.UUID) ([]*domain.FieldDefinition, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Product not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch product", err.Error())
	}

	// Variants inherit the parent's group assignment.
	groupID := product.GroupID
	if groupID == nil && product.IsVariant() {
		parent, err := s.productRepo.FindByID(ctx, *product.ParentID)
		if err == nil {
			groupID = parent.GroupID
		}
	}

	fields, err := s.fieldRepo.FindVisibleForGroup(ctx, groupID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch fields", err.Error())
	}
	return s.hooks.ApplyFieldList(ctx, fields, groupID), nil
}

// validateField checks type, capability-gated attributes and group
// references, and loads the group associations onto the field.
func (s *fieldServiceImpl) validateField(ctx context.Context, field *domain.FieldDefinition, groupIDs []uuid.UUID) error {
	ft, ok := s.registry.Get(field.Type)
	if !ok {
		return response.NewValidationError(fmt.Sprintf("Unknown field type: %s", field.Type), "")
	}

	if field.Unit != "" {
		if !ft.HasCapability(fieldtype.CapabilityUnit) {
			return response.NewValidationError(fmt.Sprintf("Field type '%s' does not support units", ft.Slug), "")
		}
		if !s.units.Has(field.Unit) {
			return response.NewValidationError(fmt.Sprintf("Unknown unit: %s", field.Unit), "")
		}
	}
	if field.VariationEnabled && !ft.HasCapability(fieldtype.CapabilityVariations) {
		return response.NewValidationError(fmt.Sprintf("Field type '%s' does not support variation values", ft.Slug), "")
	}
	if field.ShowLinks && !ft.HasCapability(fieldtype.CapabilityLink) {
		return response.NewValidationError(fmt.Sprintf("Field type '%s' does not support term links", ft.Slug), "")
	}

	if len(groupIDs) == 0 {
		field.Groups = nil
		return nil
	}
	groups, err := s.groupRepo.FindByIDs(ctx, groupIDs)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch groups", err.Error())
	}
	if len(groups) != len(groupIDs) {
		return response.NewValidationError("One or more group IDs do not exist", "")
	}
	field.Groups = make([]domain.ProductGroup, len(groups))
	for i, g := range groups {
		field.Groups[i] = *g
	}
	return nil
}

// toFieldDefinitionResponse converts a domain model to a response DTO
func toFieldDefinitionResponse(field *domain.FieldDefinition) *dto.FieldDefinitionResponse {
	resp := &dto.FieldDefinitionResponse{
		ID:               field.ID,
		Slug:             field.Slug,
		Label:            field.Label,
		Type:             field.Type,
		Unit:             field.Unit,
		HideInFrontend:   field.HideInFrontend,
		ShowLinks:        field.ShowLinks,
		SchemaProperty:   field.SchemaProperty,
		VariationEnabled: field.VariationEnabled,
		DisplayOrder:     field.DisplayOrder,
	}
	for _, g := range field.Groups {
		resp.Groups = append(resp.Groups, dto.ProductGroupResponse{
			ID:   g.ID,
			Slug: g.Slug,
			Name: g.Name,
		})
	}
	return resp
}

func groupIDsOf(groups []domain.ProductGroup) []uuid.UUID {
	ids := make([]uuid.UUID, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}
