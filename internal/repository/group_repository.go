package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"product-spec-api/internal/domain"
)

// GroupRepository defines the interface for product group data access
type GroupRepository interface {
	Create(ctx context.Context, group *domain.ProductGroup) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ProductGroup, error)
	FindBySlug(ctx context.Context, slug string) (*domain.ProductGroup, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.ProductGroup, error)
	FindAll(ctx context.Context) ([]*domain.ProductGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// groupRepositoryImpl is the GORM implementation of GroupRepository
type groupRepositoryImpl struct {
	db *gorm.DB
}

// NewGroupRepository creates a new instance of GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepositoryImpl{db: db}
}

// Create creates a new product group
func (r *groupRepositoryImpl) Create(ctx context.Context, group *domain.ProductGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// FindByID finds a product group by ID
func (r *groupRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProductGroup, error) {
	var group domain.ProductGroup
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindBySlug finds a product group by slug, returning nil when absent
func (r *groupRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.ProductGroup, error) {
	var group domain.ProductGroup
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// FindByIDs finds multiple product groups in a single query
func (r *groupRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.ProductGroup, error) {
	if len(ids) == 0 {
		return []*domain.ProductGroup{}, nil
	}

	var groups []*domain.ProductGroup
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// FindAll returns all product groups ordered by slug
func (r *groupRepositoryImpl) FindAll(ctx context.Context) ([]*domain.ProductGroup, error) {
	var groups []*domain.ProductGroup
	if err := r.db.WithContext(ctx).
		Order("slug ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Delete removes a product group
func (r *groupRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ProductGroup{}, id).Error
}
