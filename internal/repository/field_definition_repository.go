package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"product-spec-api/internal/domain"
)

// FieldDefinitionRepository defines the interface for field definition data access
type FieldDefinitionRepository interface {
	Create(ctx context.Context, field *domain.FieldDefinition) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error)
	FindBySlug(ctx context.Context, slug string) (*domain.FieldDefinition, error)
	FindAll(ctx context.Context) ([]*domain.FieldDefinition, error)
	FindVisibleForGroup(ctx context.Context, groupID *uuid.UUID) ([]*domain.FieldDefinition, error)
	Update(ctx context.Context, field *domain.FieldDefinition) error
	Delete(ctx context.Context, id uuid.UUID) error
	AllSlugs(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// fieldDefinitionRepositoryImpl is the GORM implementation of FieldDefinitionRepository
type fieldDefinitionRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldDefinitionRepository creates a new instance of FieldDefinitionRepository
func NewFieldDefinitionRepository(db *gorm.DB) FieldDefinitionRepository {
	return &fieldDefinitionRepositoryImpl{db: db}
}

// Create creates a new field definition with its group associations
func (r *fieldDefinitionRepositoryImpl) Create(ctx context.Context, field *domain.FieldDefinition) error {
	return r.db.WithContext(ctx).Create(field).Error
}

// FindByID finds a field definition by ID
func (r *fieldDefinitionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	var field domain.FieldDefinition
	if err := r.db.WithContext(ctx).
		Preload("Groups").
		Where("id = ?", id).
		First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// FindBySlug finds a field definition by slug, returning nil when absent
func (r *fieldDefinitionRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.FieldDefinition, error) {
	var field domain.FieldDefinition
	if err := r.db.WithContext(ctx).
		Preload("Groups").
		Where("slug = ?", slug).
		First(&field).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &field, nil
}

// FindAll returns all field definitions ordered by display order
func (r *fieldDefinitionRepositoryImpl) FindAll(ctx context.Context) ([]*domain.FieldDefinition, error) {
	var fields []*domain.FieldDefinition
	if err := r.db.WithContext(ctx).
		Preload("Groups").
		Order("display_order ASC, slug ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// FindVisibleForGroup returns the field definitions visible for a
// product group: global fields (no group association) plus fields
// restricted to the given group. A nil groupID returns global fields
// only.
func (r *fieldDefinitionRepositoryImpl) FindVisibleForGroup(ctx context.Context, groupID *uuid.UUID) ([]*domain.FieldDefinition, error) {
	fields, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.FieldDefinition, 0, len(fields))
	for _, field := range fields {
		if len(field.Groups) == 0 {
			visible = append(visible, field)
			continue
		}
		if groupID == nil {
			continue
		}
		for _, g := range field.Groups {
			if g.ID == *groupID {
				visible = append(visible, field)
				break
			}
		}
	}
	return visible, nil
}

// Update updates a field definition and replaces its group associations
func (r *fieldDefinitionRepositoryImpl) Update(ctx context.Context, field *domain.FieldDefinition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(field).Error; err != nil {
			return err
		}
		return tx.Model(field).Association("Groups").Replace(field.Groups)
	})
}

// Delete removes a field definition
func (r *fieldDefinitionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.FieldDefinition{}, id).Error
}

// AllSlugs returns the slugs of all field definitions
func (r *fieldDefinitionRepositoryImpl) AllSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	if err := r.db.WithContext(ctx).
		Model(&domain.FieldDefinition{}).
		Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

// Count returns the number of field definitions
func (r *fieldDefinitionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.FieldDefinition{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
