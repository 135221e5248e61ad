package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"product-spec-api/internal/domain"
)

// LegacyMetaRepository defines the interface for imported legacy metadata
type LegacyMetaRepository interface {
	FindByKey(ctx context.Context, metaKey string) ([]*domain.LegacyMeta, error)
	FindByProductAndKey(ctx context.Context, productID uuid.UUID, metaKey string) (*domain.LegacyMeta, error)
}

// legacyMetaRepositoryImpl is the GORM implementation of LegacyMetaRepository
type legacyMetaRepositoryImpl struct {
	db *gorm.DB
}

// NewLegacyMetaRepository creates a new instance of LegacyMetaRepository
func NewLegacyMetaRepository(db *gorm.DB) LegacyMetaRepository {
	return &legacyMetaRepositoryImpl{db: db}
}

// FindByKey returns all legacy rows carrying the given meta key
func (r *legacyMetaRepositoryImpl) FindByKey(ctx context.Context, metaKey string) ([]*domain.LegacyMeta, error) {
	var rows []*domain.LegacyMeta
	if err := r.db.WithContext(ctx).
		Where("meta_key = ?", metaKey).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByProductAndKey returns one product's legacy row for a key, or nil
func (r *legacyMetaRepositoryImpl) FindByProductAndKey(ctx context.Context, productID uuid.UUID, metaKey string) (*domain.LegacyMeta, error) {
	var row domain.LegacyMeta
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND meta_key = ?", productID, metaKey).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
