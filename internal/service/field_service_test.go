package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-spec-api/internal/domain"
	"product-spec-api/internal/dto"
	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/hooks"
	"product-spec-api/internal/response"
	"product-spec-api/internal/units"
)

func newTestFieldService(
	fieldRepo *MockFieldDefinitionRepository,
	groupRepo *MockGroupRepository,
	productRepo *MockProductRepository,
	h *hooks.Hooks,
) FieldService {
	if h == nil {
		h = hooks.New()
	}
	return NewFieldService(
		fieldtype.NewRegistry(),
		units.NewRegistry("EUR", "€"),
		fieldRepo,
		groupRepo,
		productRepo,
		h,
	)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateField_Success(t *testing.T) {
	var created *domain.FieldDefinition
	fieldRepo := &MockFieldDefinitionRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.FieldDefinition, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, field *domain.FieldDefinition) error {
			created = field
			return nil
		},
	}

	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, &MockProductRepository{}, nil)

	resp, err := svc.CreateField(context.Background(), &dto.CreateFieldDefinitionRequest{
		Slug:  "Net Weight",
		Label: "Net weight",
		Type:  fieldtype.TypeNumber,
		Unit:  "kg",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "net-weight", created.Slug, "slug input is normalized")
	assert.Equal(t, "net-weight", resp.Slug)
	assert.Equal(t, "kg", resp.Unit)
}

func TestCreateField_DuplicateSlug(t *testing.T) {
	fieldRepo := &MockFieldDefinitionRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.FieldDefinition, error) {
			return fieldDef("weight", fieldtype.TypeNumber), nil
		},
	}

	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, &MockProductRepository{}, nil)

	_, err := svc.CreateField(context.Background(), &dto.CreateFieldDefinitionRequest{
		Slug:  "weight",
		Label: "Weight",
		Type:  fieldtype.TypeNumber,
	})
	assertAppErrorCode(t, err, response.ErrCodeAlreadyExists)
}

func TestCreateField_ValidationErrors(t *testing.T) {
	fieldRepo := &MockFieldDefinitionRepository{}
	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, &MockProductRepository{}, nil)

	tests := []struct {
		name string
		req  dto.CreateFieldDefinitionRequest
	}{
		{
			name: "unknown type",
			req:  dto.CreateFieldDefinitionRequest{Slug: "x", Label: "X", Type: "hologram"},
		},
		{
			name: "unit on unitless type",
			req:  dto.CreateFieldDefinitionRequest{Slug: "x", Label: "X", Type: fieldtype.TypeText, Unit: "kg"},
		},
		{
			name: "unknown unit",
			req:  dto.CreateFieldDefinitionRequest{Slug: "x", Label: "X", Type: fieldtype.TypeNumber, Unit: "parsec"},
		},
		{
			name: "variations on relational type",
			req:  dto.CreateFieldDefinitionRequest{Slug: "x", Label: "X", Type: fieldtype.TypeSelect, VariationEnabled: true},
		},
		{
			name: "links on flat type",
			req:  dto.CreateFieldDefinitionRequest{Slug: "x", Label: "X", Type: fieldtype.TypeNumber, ShowLinks: true},
		},
		{
			name: "slug with no alphanumerics",
			req:  dto.CreateFieldDefinitionRequest{Slug: "!!!", Label: "X", Type: fieldtype.TypeText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateField(context.Background(), &tt.req)
			assertAppErrorCode(t, err, response.ErrCodeValidation)
		})
	}
}

func TestCreateField_UnknownGroup(t *testing.T) {
	fieldRepo := &MockFieldDefinitionRepository{}
	groupRepo := &MockGroupRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uuid.UUID) ([]*domain.ProductGroup, error) {
			return nil, nil
		},
	}

	svc := newTestFieldService(fieldRepo, groupRepo, &MockProductRepository{}, nil)

	_, err := svc.CreateField(context.Background(), &dto.CreateFieldDefinitionRequest{
		Slug:     "x",
		Label:    "X",
		Type:     fieldtype.TypeText,
		GroupIDs: []uuid.UUID{uuid.New()},
	})
	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestUpdateField_MergesPointerFields(t *testing.T) {
	existing := fieldDef("weight", fieldtype.TypeNumber)
	existing.Label = "Weight"
	existing.Unit = "kg"

	var updated *domain.FieldDefinition
	fieldRepo := &MockFieldDefinitionRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.FieldDefinition, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, field *domain.FieldDefinition) error {
			updated = field
			return nil
		},
	}

	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, &MockProductRepository{}, nil)

	newLabel := "Net weight"
	resp, err := svc.UpdateField(context.Background(), "weight", &dto.UpdateFieldDefinitionRequest{
		Label: &newLabel,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Net weight", resp.Label)
	assert.Equal(t, "kg", resp.Unit, "unset request fields keep their stored value")
}

func TestUpdateField_NotFound(t *testing.T) {
	fieldRepo := &MockFieldDefinitionRepository{}
	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, &MockProductRepository{}, nil)

	_, err := svc.UpdateField(context.Background(), "missing", &dto.UpdateFieldDefinitionRequest{})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestDeleteField(t *testing.T) {
	field := fieldDef("weight", fieldtype.TypeNumber)
	deletedID := uuid.Nil
	fieldRepo := &MockFieldDefinitionRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.FieldDefinition, error) {
			return field, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deletedID = id
			return nil
		},
	}

	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, &MockProductRepository{}, nil)

	err := svc.DeleteField(context.Background(), "weight")
	require.NoError(t, err)
	assert.Equal(t, field.ID, deletedID)
}

func TestVisibleFields_VariantInheritsParentGroup(t *testing.T) {
	parentID := uuid.New()
	variantID := uuid.New()
	groupID := uuid.New()

	productRepo := &MockProductRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			if id == variantID {
				return &domain.Product{BaseModel: domain.BaseModel{ID: variantID}, ParentID: &parentID}, nil
			}
			return &domain.Product{BaseModel: domain.BaseModel{ID: parentID}, GroupID: &groupID}, nil
		},
	}
	var queriedGroup *uuid.UUID
	fieldRepo := &MockFieldDefinitionRepository{
		FindVisibleForGroupFunc: func(ctx context.Context, gid *uuid.UUID) ([]*domain.FieldDefinition, error) {
			queriedGroup = gid
			return []*domain.FieldDefinition{fieldDef("weight", fieldtype.TypeNumber)}, nil
		},
	}

	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, productRepo, nil)

	fields, err := svc.VisibleFields(context.Background(), variantID)
	require.NoError(t, err)
	require.NotNil(t, queriedGroup)
	assert.Equal(t, groupID, *queriedGroup)
	assert.Len(t, fields, 1)
}

func TestVisibleFields_FieldListExtension(t *testing.T) {
	productRepo := &MockProductRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			return &domain.Product{BaseModel: domain.BaseModel{ID: id}}, nil
		},
	}
	fieldRepo := &MockFieldDefinitionRepository{
		FindVisibleForGroupFunc: func(ctx context.Context, gid *uuid.UUID) ([]*domain.FieldDefinition, error) {
			return []*domain.FieldDefinition{
				fieldDef("weight", fieldtype.TypeNumber),
				fieldDef("color", fieldtype.TypeSelect),
			}, nil
		},
	}
	h := hooks.New()
	h.FieldList = func(ctx context.Context, fields []*domain.FieldDefinition, group *uuid.UUID) []*domain.FieldDefinition {
		// Extensions may filter the list.
		return fields[:1]
	}

	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, productRepo, h)

	fields, err := svc.VisibleFields(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "weight", fields[0].Slug)
}

func TestListFields_RepositoryError(t *testing.T) {
	fieldRepo := &MockFieldDefinitionRepository{
		FindAllFunc: func(ctx context.Context) ([]*domain.FieldDefinition, error) {
			return nil, errors.New("db down")
		},
	}

	svc := newTestFieldService(fieldRepo, &MockGroupRepository{}, &MockProductRepository{}, nil)

	_, err := svc.ListFields(context.Background())
	assertAppErrorCode(t, err, response.ErrCodeInternal)
}
