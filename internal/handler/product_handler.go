package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-spec-api/internal/dto"
	"product-spec-api/internal/response"
	"product-spec-api/internal/service"
)

// ProductHandler serves catalog product and group endpoints
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct creates a product or variant.
// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, product)
}

// GetProduct returns one product.
// GET /products/:productId
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, product)
}

// GetVariants returns all variants of a product.
// GET /products/:productId/variants
func (h *ProductHandler) GetVariants(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	variants, err := h.productService.GetVariants(c.Request.Context(), productID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, variants)
}

// DeleteProduct deletes a product.
// DELETE /products/:productId
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// CreateGroup creates a product group.
// POST /groups
func (h *ProductHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateProductGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	group, err := h.productService.CreateGroup(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, group)
}

// ListGroups returns all product groups.
// GET /groups
func (h *ProductHandler) ListGroups(c *gin.Context) {
	groups, err := h.productService.ListGroups(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, groups)
}
