package handler

import (
	"context"

	"github.com/google/uuid"

	"product-spec-api/internal/domain"
	"product-spec-api/internal/dto"
)

// MockSpecService is a mock implementation of service.SpecService
type MockSpecService struct {
	GetProductSpecsFunc func(ctx context.Context, productID uuid.UUID, includeHidden bool) ([]*dto.SpecValueResponse, error)
	GetFieldValueFunc   func(ctx context.Context, productID uuid.UUID, slug string) (*dto.SpecValueResponse, error)
	SaveFieldValueFunc  func(ctx context.Context, productID uuid.UUID, slug string, raw any) (*dto.SaveSpecValueResponse, error)
	BatchSaveValuesFunc func(ctx context.Context, productID uuid.UUID, values map[string]any) (*dto.BatchSaveSpecValuesResponse, error)
}

func (m *MockSpecService) GetProductSpecs(ctx context.Context, productID uuid.UUID, includeHidden bool) ([]*dto.SpecValueResponse, error) {
	if m.GetProductSpecsFunc != nil {
		return m.GetProductSpecsFunc(ctx, productID, includeHidden)
	}
	return nil, nil
}

func (m *MockSpecService) GetFieldValue(ctx context.Context, productID uuid.UUID, slug string) (*dto.SpecValueResponse, error) {
	if m.GetFieldValueFunc != nil {
		return m.GetFieldValueFunc(ctx, productID, slug)
	}
	return nil, nil
}

func (m *MockSpecService) SaveFieldValue(ctx context.Context, productID uuid.UUID, slug string, raw any) (*dto.SaveSpecValueResponse, error) {
	if m.SaveFieldValueFunc != nil {
		return m.SaveFieldValueFunc(ctx, productID, slug, raw)
	}
	return nil, nil
}

func (m *MockSpecService) BatchSaveValues(ctx context.Context, productID uuid.UUID, values map[string]any) (*dto.BatchSaveSpecValuesResponse, error) {
	if m.BatchSaveValuesFunc != nil {
		return m.BatchSaveValuesFunc(ctx, productID, values)
	}
	return nil, nil
}

// MockFieldService is a mock implementation of service.FieldService
type MockFieldService struct {
	CreateFieldFunc   func(ctx context.Context, req *dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error)
	GetFieldFunc      func(ctx context.Context, slug string) (*dto.FieldDefinitionResponse, error)
	ListFieldsFunc    func(ctx context.Context) ([]*dto.FieldDefinitionResponse, error)
	UpdateFieldFunc   func(ctx context.Context, slug string, req *dto.UpdateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error)
	DeleteFieldFunc   func(ctx context.Context, slug string) error
	VisibleFieldsFunc func(ctx context.Context, productID uuid.UUID) ([]*domain.FieldDefinition, error)
}

func (m *MockFieldService) CreateField(ctx context.Context, req *dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	if m.CreateFieldFunc != nil {
		return m.CreateFieldFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockFieldService) GetField(ctx context.Context, slug string) (*dto.FieldDefinitionResponse, error) {
	if m.GetFieldFunc != nil {
		return m.GetFieldFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockFieldService) ListFields(ctx context.Context) ([]*dto.FieldDefinitionResponse, error) {
	if m.ListFieldsFunc != nil {
		return m.ListFieldsFunc(ctx)
	}
	return nil, nil
}

func (m *MockFieldService) UpdateField(ctx context.Context, slug string, req *dto.UpdateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	if m.UpdateFieldFunc != nil {
		return m.UpdateFieldFunc(ctx, slug, req)
	}
	return nil, nil
}

func (m *MockFieldService) DeleteField(ctx context.Context, slug string) error {
	if m.DeleteFieldFunc != nil {
		return m.DeleteFieldFunc(ctx, slug)
	}
	return nil
}

func (m *MockFieldService) VisibleFields(ctx context.Context, productID uuid.UUID) ([]*domain.FieldDefinition, error) {
	if m.VisibleFieldsFunc != nil {
		return m.VisibleFieldsFunc(ctx, productID)
	}
	return nil, nil
}

// MockTermService is a mock implementation of service.TermService
type MockTermService struct {
	ListTermsFunc  func(ctx context.Context, fieldSlug string) ([]*dto.TermResponse, error)
	CreateTermFunc func(ctx context.Context, fieldSlug string, req *dto.CreateTermRequest) (*dto.TermResponse, error)
}

func (m *MockTermService) ListTerms(ctx context.Context, fieldSlug string) ([]*dto.TermResponse, error) {
	if m.ListTermsFunc != nil {
		return m.ListTermsFunc(ctx, fieldSlug)
	}
	return nil, nil
}

func (m *MockTermService) CreateTerm(ctx context.Context, fieldSlug string, req *dto.CreateTermRequest) (*dto.TermResponse, error) {
	if m.CreateTermFunc != nil {
		return m.CreateTermFunc(ctx, fieldSlug, req)
	}
	return nil, nil
}

// MockMigrationService is a mock implementation of service.MigrationService
type MockMigrationService struct {
	RunFunc func(ctx context.Context, req *dto.RunMigrationRequest) (*dto.RunMigrationResponse, error)
}

func (m *MockMigrationService) Run(ctx context.Context, req *dto.RunMigrationRequest) (*dto.RunMigrationResponse, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, req)
	}
	return nil, nil
}
