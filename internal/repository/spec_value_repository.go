package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"product-spec-api/internal/domain"
)

// SpecValueRepository defines the interface for flat spec value data access
type SpecValueRepository interface {
	Get(ctx context.Context, productID uuid.UUID, fieldSlug string) (*domain.SpecValue, error)
	Upsert(ctx context.Context, specValue *domain.SpecValue) error
	Delete(ctx context.Context, productID uuid.UUID, fieldSlug string) error
	DeleteOrphans(ctx context.Context, knownSlugs []string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// specValueRepositoryImpl is the GORM implementation of SpecValueRepository
type specValueRepositoryImpl struct {
	db *gorm.DB
}

// NewSpecValueRepository creates a new instance of SpecValueRepository
func NewSpecValueRepository(db *gorm.DB) SpecValueRepository {
	return &specValueRepositoryImpl{db: db}
}

// Get returns the stored value for a (product, field) pair, or nil
// when no record exists
func (r *specValueRepositoryImpl) Get(ctx context.Context, productID uuid.UUID, fieldSlug string) (*domain.SpecValue, error) {
	var specValue domain.SpecValue
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND field_slug = ?", productID, fieldSlug).
		First(&specValue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specValue, nil
}

// Upsert creates or overwrites the value for a (product, field) pair
func (r *specValueRepositoryImpl) Upsert(ctx context.Context, specValue *domain.SpecValue) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "field_slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(specValue).Error
}

// Delete removes the value for a (product, field) pair. Deleting an
// absent record is not an error; delete-on-empty must be idempotent.
func (r *specValueRepositoryImpl) Delete(ctx context.Context, productID uuid.UUID, fieldSlug string) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND field_slug = ?", productID, fieldSlug).
		Delete(&domain.SpecValue{}).Error
}

// DeleteOrphans removes values whose field definition no longer exists
func (r *specValueRepositoryImpl) DeleteOrphans(ctx context.Context, knownSlugs []string) (int64, error) {
	query := r.db.WithContext(ctx)
	if len(knownSlugs) > 0 {
		query = query.Where("field_slug NOT IN ?", knownSlugs)
	} else {
		// No definitions left: every stored value is an orphan.
		query = query.Where("field_slug IS NOT NULL")
	}
	result := query.Delete(&domain.SpecValue{})
	return result.RowsAffected, result.Error
}

// Count returns the number of stored values
func (r *specValueRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.SpecValue{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
