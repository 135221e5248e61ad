package service

import (
	"context"

	"github.com/google/uuid"

	"product-spec-api/internal/domain"
)

// MockFieldDefinitionRepository is a mock implementation of repository.FieldDefinitionRepository
type MockFieldDefinitionRepository struct {
	CreateFunc              func(ctx context.Context, field *domain.FieldDefinition) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error)
	FindBySlugFunc          func(ctx context.Context, slug string) (*domain.FieldDefinition, error)
	FindAllFunc             func(ctx context.Context) ([]*domain.FieldDefinition, error)
	FindVisibleForGroupFunc func(ctx context.Context, groupID *uuid.UUID) ([]*domain.FieldDefinition, error)
	UpdateFunc              func(ctx context.Context, field *domain.FieldDefinition) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	AllSlugsFunc            func(ctx context.Context) ([]string, error)
	CountFunc               func(ctx context.Context) (int64, error)
}

func (m *MockFieldDefinitionRepository) Create(ctx context.Context, field *domain.FieldDefinition) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, field)
	}
	return nil
}

func (m *MockFieldDefinitionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFieldDefinitionRepository) FindBySlug(ctx context.Context, slug string) (*domain.FieldDefinition, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockFieldDefinitionRepository) FindAll(ctx context.Context) ([]*domain.FieldDefinition, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockFieldDefinitionRepository) FindVisibleForGroup(ctx context.Context, groupID *uuid.UUID) ([]*domain.FieldDefinition, error) {
	if m.FindVisibleForGroupFunc != nil {
		return m.FindVisibleForGroupFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *MockFieldDefinitionRepository) Update(ctx context.Context, field *domain.FieldDefinition) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, field)
	}
	return nil
}

func (m *MockFieldDefinitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockFieldDefinitionRepository) AllSlugs(ctx context.Context) ([]string, error) {
	if m.AllSlugsFunc != nil {
		return m.AllSlugsFunc(ctx)
	}
	return nil, nil
}

func (m *MockFieldDefinitionRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockSpecValueRepository is a mock implementation of repository.SpecValueRepository
type MockSpecValueRepository struct {
	GetFunc           func(ctx context.Context, productID uuid.UUID, fieldSlug string) (*domain.SpecValue, error)
	UpsertFunc        func(ctx context.Context, specValue *domain.SpecValue) error
	DeleteFunc        func(ctx context.Context, productID uuid.UUID, fieldSlug string) error
	DeleteOrphansFunc func(ctx context.Context, knownSlugs []string) (int64, error)
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *MockSpecValueRepository) Get(ctx context.Context, productID uuid.UUID, fieldSlug string) (*domain.SpecValue, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, productID, fieldSlug)
	}
	return nil, nil
}

func (m *MockSpecValueRepository) Upsert(ctx context.Context, specValue *domain.SpecValue) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, specValue)
	}
	return nil
}

func (m *MockSpecValueRepository) Delete(ctx context.Context, productID uuid.UUID, fieldSlug string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, productID, fieldSlug)
	}
	return nil
}

func (m *MockSpecValueRepository) DeleteOrphans(ctx context.Context, knownSlugs []string) (int64, error) {
	if m.DeleteOrphansFunc != nil {
		return m.DeleteOrphansFunc(ctx, knownSlugs)
	}
	return 0, nil
}

func (m *MockSpecValueRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTermRepository is a mock implementation of repository.TermRepository
type MockTermRepository struct {
	CreateFunc             func(ctx context.Context, term *domain.SpecTerm) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.SpecTerm, error)
	FindByIDsFunc          func(ctx context.Context, ids []uuid.UUID) ([]*domain.SpecTerm, error)
	FindByFieldFunc        func(ctx context.Context, fieldSlug string) ([]*domain.SpecTerm, error)
	FindBySlugOrNameFunc   func(ctx context.Context, fieldSlug, value string) (*domain.SpecTerm, error)
	FirstOrCreateFunc      func(ctx context.Context, fieldSlug, name string) (*domain.SpecTerm, error)
	FindAssignedFunc       func(ctx context.Context, productID uuid.UUID, fieldSlug string) ([]*domain.SpecTerm, error)
	ReplaceAssignmentsFunc func(ctx context.Context, productID uuid.UUID, fieldSlug string, termIDs []uuid.UUID) error
	CountTermsFunc         func(ctx context.Context) (int64, error)
}

func (m *MockTermRepository) Create(ctx context.Context, term *domain.SpecTerm) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, term)
	}
	return nil
}

func (m *MockTermRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.SpecTerm, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTermRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.SpecTerm, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockTermRepository) FindByField(ctx context.Context, fieldSlug string) ([]*domain.SpecTerm, error) {
	if m.FindByFieldFunc != nil {
		return m.FindByFieldFunc(ctx, fieldSlug)
	}
	return nil, nil
}

func (m *MockTermRepository) FindBySlugOrName(ctx context.Context, fieldSlug, value string) (*domain.SpecTerm, error) {
	if m.FindBySlugOrNameFunc != nil {
		return m.FindBySlugOrNameFunc(ctx, fieldSlug, value)
	}
	return nil, nil
}

func (m *MockTermRepository) FirstOrCreate(ctx context.Context, fieldSlug, name string) (*domain.SpecTerm, error) {
	if m.FirstOrCreateFunc != nil {
		return m.FirstOrCreateFunc(ctx, fieldSlug, name)
	}
	return nil, nil
}

func (m *MockTermRepository) FindAssigned(ctx context.Context, productID uuid.UUID, fieldSlug string) ([]*domain.SpecTerm, error) {
	if m.FindAssignedFunc != nil {
		return m.FindAssignedFunc(ctx, productID, fieldSlug)
	}
	return nil, nil
}

func (m *MockTermRepository) ReplaceAssignments(ctx context.Context, productID uuid.UUID, fieldSlug string, termIDs []uuid.UUID) error {
	if m.ReplaceAssignmentsFunc != nil {
		return m.ReplaceAssignmentsFunc(ctx, productID, fieldSlug, termIDs)
	}
	return nil
}

func (m *MockTermRepository) CountTerms(ctx context.Context) (int64, error) {
	if m.CountTermsFunc != nil {
		return m.CountTermsFunc(ctx)
	}
	return 0, nil
}

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	CreateFunc       func(ctx context.Context, product *domain.Product) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindBySKUFunc    func(ctx context.Context, sku string) (*domain.Product, error)
	FindVariantsFunc func(ctx context.Context, parentID uuid.UUID) ([]*domain.Product, error)
	UpdateFunc       func(ctx context.Context, product *domain.Product) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	CountFunc        func(ctx context.Context) (int64, error)
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	if m.FindBySKUFunc != nil {
		return m.FindBySKUFunc(ctx, sku)
	}
	return nil, nil
}

func (m *MockProductRepository) FindVariants(ctx context.Context, parentID uuid.UUID) ([]*domain.Product, error) {
	if m.FindVariantsFunc != nil {
		return m.FindVariantsFunc(ctx, parentID)
	}
	return nil, nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockGroupRepository is a mock implementation of repository.GroupRepository
type MockGroupRepository struct {
	CreateFunc     func(ctx context.Context, group *domain.ProductGroup) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.ProductGroup, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*domain.ProductGroup, error)
	FindByIDsFunc  func(ctx context.Context, ids []uuid.UUID) ([]*domain.ProductGroup, error)
	FindAllFunc    func(ctx context.Context) ([]*domain.ProductGroup, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.ProductGroup) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, group)
	}
	return nil
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProductGroup, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockGroupRepository) FindBySlug(ctx context.Context, slug string) (*domain.ProductGroup, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockGroupRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.ProductGroup, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockGroupRepository) FindAll(ctx context.Context) ([]*domain.ProductGroup, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockLegacyMetaRepository is a mock implementation of repository.LegacyMetaRepository
type MockLegacyMetaRepository struct {
	FindByKeyFunc           func(ctx context.Context, metaKey string) ([]*domain.LegacyMeta, error)
	FindByProductAndKeyFunc func(ctx context.Context, productID uuid.UUID, metaKey string) (*domain.LegacyMeta, error)
}

func (m *MockLegacyMetaRepository) FindByKey(ctx context.Context, metaKey string) ([]*domain.LegacyMeta, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, metaKey)
	}
	return nil, nil
}

func (m *MockLegacyMetaRepository) FindByProductAndKey(ctx context.Context, productID uuid.UUID, metaKey string) (*domain.LegacyMeta, error) {
	if m.FindByProductAndKeyFunc != nil {
		return m.FindByProductAndKeyFunc(ctx, productID, metaKey)
	}
	return nil, nil
}

// MockValueResolver is a mock implementation of ValueResolver
type MockValueResolver struct {
	ResolveFunc func(ctx context.Context, productID uuid.UUID, slug string) (any, error)
}

func (m *MockValueResolver) Resolve(ctx context.Context, productID uuid.UUID, slug string) (any, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, productID, slug)
	}
	return nil, nil
}

// MockValueSaver is a mock implementation of ValueSaver
type MockValueSaver struct {
	SaveFunc func(ctx context.Context, productID uuid.UUID, slug string, raw any) (bool, error)
}

func (m *MockValueSaver) Save(ctx context.Context, productID uuid.UUID, slug string, raw any) (bool, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, productID, slug, raw)
	}
	return false, nil
}
