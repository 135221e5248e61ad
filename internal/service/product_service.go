package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"product-spec-api/internal/domain"
	"product-spec-api/internal/dto"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/response"
)

// ProductService defines the interface for catalog business logic
type ProductService interface {
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	GetVariants(ctx context.Context, parentID uuid.UUID) ([]*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CreateGroup(ctx context.Context, req *dto.CreateProductGroupRequest) (*dto.ProductGroupResponse, error)
	ListGroups(ctx context.Context) ([]*dto.ProductGroupResponse, error)
}

// productServiceImpl is the implementation of ProductService
type productServiceImpl struct {
	productRepo repository.ProductRepository
	groupRepo   repository.GroupRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository, groupRepo repository.GroupRepository) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
		groupRepo:   groupRepo,
	}
}

// CreateProduct creates a product or a variant of an existing product
func (s *productServiceImpl) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := s.productRepo.FindBySKU(ctx, req.SKU)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for existing product", err.Error())
	}
	if existing != nil {
		return nil, response.NewAlreadyExistsError(fmt.Sprintf("Product with SKU '%s' already exists", req.SKU), "")
	}

	if req.ParentID != nil {
		parent, err := s.productRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewValidationError("Parent product does not exist", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch parent product", err.Error())
		}
		// Variants of variants are not a thing; one level only.
		if parent.IsVariant() {
			return nil, response.NewValidationError("Parent product is itself a variant", "")
		}
	}
	if req.GroupID != nil {
		if _, err := s.groupRepo.FindByID(ctx, *req.GroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewValidationError("Product group does not exist", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch product group", err.Error())
		}
	}

	product := &domain.Product{
		SKU:      req.SKU,
		Name:     req.Name,
		GroupID:  req.GroupID,
		ParentID: req.ParentID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create product", err.Error())
	}
	return toProductResponse(product), nil
}

// GetProduct retrieves one product by ID
func (s *productServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Product not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch product", err.Error())
	}
	return toProductResponse(product), nil
}

// GetVariants retrieves all variants of a parent product
func (s *productServiceImpl) GetVariants(ctx context.Context, parentID uuid.UUID) ([]*dto.ProductResponse, error) {
	variants, err := s.productRepo.FindVariants(ctx, parentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch variants", err.Error())
	}

	responses := make([]*dto.ProductResponse, len(variants))
	for i, v := range variants {
		responses[i] = toProductResponse(v)
	}
	return responses, nil
}

// DeleteProduct removes a product
func (s *productServiceImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Product not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch product", err.Error())
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete product", err.Error())
	}
	return nil
}

// CreateGroup creates a product group
func (s *productServiceImpl) CreateGroup(ctx context.Context, req *dto.CreateProductGroupRequest) (*dto.ProductGroupResponse, error) {
	slug := repository.Slugify(req.Slug)
	if slug == "" {
		return nil, response.NewValidationError("Slug must contain at least one alphanumeric character", "")
	}

	existing, err := s.groupRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for existing group", err.Error())
	}
	if existing != nil {
		return nil, response.NewAlreadyExistsError(fmt.Sprintf("Group '%s' already exists", slug), "")
	}

	group := &domain.ProductGroup{Slug: slug, Name: req.Name}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create group", err.Error())
	}
	return toProductGroupResponse(group), nil
}

// ListGroups retrieves all product groups
func (s *productServiceImpl) ListGroups(ctx context.Context) ([]*dto.ProductGroupResponse, error) {
	groups, err := s.groupRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch groups", err.Error())
	}

	responses := make([]*dto.ProductGroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = toProductGroupResponse(g)
	}
	return responses, nil
}

// toProductResponse converts a domain model to a response DTO
func toProductResponse(product *domain.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       product.ID,
		SKU:      product.SKU,
		Name:     product.Name,
		GroupID:  product.GroupID,
		ParentID: product.ParentID,
	}
}

// toProductGroupResponse converts a domain model to a response DTO
func toProductGroupResponse(group *domain.ProductGroup) *dto.ProductGroupResponse {
	return &dto.ProductGroupResponse{
		ID:   group.ID,
		Slug: group.Slug,
		Name: group.Name,
	}
}
