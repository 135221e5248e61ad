package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"product-spec-api/internal/domain"
)

// TermRepository defines the interface for vocabulary term data access
type TermRepository interface {
	Create(ctx context.Context, term *domain.SpecTerm) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.SpecTerm, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.SpecTerm, error)
	FindByField(ctx context.Context, fieldSlug string) ([]*domain.SpecTerm, error)
	FindBySlugOrName(ctx context.Context, fieldSlug, value string) (*domain.SpecTerm, error)
	FirstOrCreate(ctx context.Context, fieldSlug, name string) (*domain.SpecTerm, error)
	FindAssigned(ctx context.Context, productID uuid.UUID, fieldSlug string) ([]*domain.SpecTerm, error)
	ReplaceAssignments(ctx context.Context, productID uuid.UUID, fieldSlug string, termIDs []uuid.UUID) error
	CountTerms(ctx context.Context) (int64, error)
}

// termRepositoryImpl is the GORM implementation of TermRepository
type termRepositoryImpl struct {
	db *gorm.DB
}

// NewTermRepository creates a new instance of TermRepository
func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepositoryImpl{db: db}
}

// Create creates a new vocabulary term
func (r *termRepositoryImpl) Create(ctx context.Context, term *domain.SpecTerm) error {
	if term.Slug == "" {
		term.Slug = Slugify(term.Name)
	}
	return r.db.WithContext(ctx).Create(term).Error
}

// FindByID finds a term by ID, returning nil when absent
func (r *termRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.SpecTerm, error) {
	var term domain.SpecTerm
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&term).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &term, nil
}

// FindByIDs finds multiple terms in a single query
func (r *termRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.SpecTerm, error) {
	if len(ids) == 0 {
		return []*domain.SpecTerm{}, nil
	}

	var terms []*domain.SpecTerm
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&terms).Error; err != nil {
		return nil, err
	}
	return terms, nil
}

// FindByField returns all terms of a field's vocabulary ordered by name
func (r *termRepositoryImpl) FindByField(ctx context.Context, fieldSlug string) ([]*domain.SpecTerm, error) {
	var terms []*domain.SpecTerm
	if err := r.db.WithContext(ctx).
		Where("field_slug = ?", fieldSlug).
		Order("name ASC").
		Find(&terms).Error; err != nil {
		return nil, err
	}
	return terms, nil
}

// FindBySlugOrName finds a term within a field's vocabulary by slug or
// display name, returning nil when absent
func (r *termRepositoryImpl) FindBySlugOrName(ctx context.Context, fieldSlug, value string) (*domain.SpecTerm, error) {
	var term domain.SpecTerm
	if err := r.db.WithContext(ctx).
		Where("field_slug = ? AND (slug = ? OR name = ?)", fieldSlug, Slugify(value), value).
		First(&term).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &term, nil
}

// FirstOrCreate finds a term by name within a field's vocabulary,
// creating it when absent. Creation is idempotent by slug: the unique
// index on (field_slug, slug) resolves the race between two requests
// creating the same term, and the loser re-reads the winner's row.
func (r *termRepositoryImpl) FirstOrCreate(ctx context.Context, fieldSlug, name string) (*domain.SpecTerm, error) {
	existing, err := r.FindBySlugOrName(ctx, fieldSlug, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	term := &domain.SpecTerm{
		FieldSlug: fieldSlug,
		Slug:      Slugify(name),
		Name:      name,
	}
	if err := r.db.WithContext(ctx).Create(term).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindBySlugOrName(ctx, fieldSlug, name)
		}
		return nil, err
	}
	return term, nil
}

// FindAssigned returns the terms assigned to a product for a field, in
// assignment order
func (r *termRepositoryImpl) FindAssigned(ctx context.Context, productID uuid.UUID, fieldSlug string) ([]*domain.SpecTerm, error) {
	var assignments []domain.ProductSpecTerm
	if err := r.db.WithContext(ctx).
		Preload("Term").
		Where("product_id = ? AND field_slug = ?", productID, fieldSlug).
		Order("position ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	terms := make([]*domain.SpecTerm, 0, len(assignments))
	for _, a := range assignments {
		if a.Term != nil {
			terms = append(terms, a.Term)
		}
	}
	return terms, nil
}

// ReplaceAssignments replaces a product's term assignment for a field
// with the given set. The replace is always full, never a merge; an
// empty set clears the assignment.
func (r *termRepositoryImpl) ReplaceAssignments(ctx context.Context, productID uuid.UUID, fieldSlug string, termIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("product_id = ? AND field_slug = ?", productID, fieldSlug).
			Delete(&domain.ProductSpecTerm{}).Error; err != nil {
			return err
		}

		if len(termIDs) == 0 {
			return nil
		}

		assignments := make([]domain.ProductSpecTerm, 0, len(termIDs))
		for i, termID := range termIDs {
			assignments = append(assignments, domain.ProductSpecTerm{
				ProductID: productID,
				TermID:    termID,
				FieldSlug: fieldSlug,
				Position:  i,
			})
		}
		return tx.Create(&assignments).Error
	})
}

// CountTerms returns the number of vocabulary terms
func (r *termRepositoryImpl) CountTerms(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.SpecTerm{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
