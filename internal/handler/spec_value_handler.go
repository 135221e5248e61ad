package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"product-spec-api/internal/dto"
	"product-spec-api/internal/response"
	"product-spec-api/internal/service"
)

// SpecValueHandler serves product specification value endpoints
type SpecValueHandler struct {
	specService service.SpecService
}

// NewSpecValueHandler creates a new SpecValueHandler
func NewSpecValueHandler(specService service.SpecService) *SpecValueHandler {
	return &SpecValueHandler{specService: specService}
}

// GetProductSpecs returns all visible field values of a product.
// GET /products/:productId/fields?include_hidden=true
func (h *SpecValueHandler) GetProductSpecs(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	includeHidden := c.Query("include_hidden") == "true"

	values, err := h.specService.GetProductSpecs(c.Request.Context(), productID, includeHidden)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, values)
}

// GetFieldValue returns one field's raw and formatted value.
// GET /products/:productId/fields/:slug
func (h *SpecValueHandler) GetFieldValue(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	value, err := h.specService.GetFieldValue(c.Request.Context(), productID, c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, value)
}

// SaveFieldValue dispatches one value write.
// PUT /products/:productId/fields/:slug
func (h *SpecValueHandler) SaveFieldValue(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req dto.SaveSpecValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.specService.SaveFieldValue(c.Request.Context(), productID, c.Param("slug"), req.Value)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// BatchSaveValues dispatches several value writes for one product.
// PUT /products/:productId/fields
func (h *SpecValueHandler) BatchSaveValues(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req dto.BatchSaveSpecValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.specService.BatchSaveValues(c.Request.Context(), productID, req.Values)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// parseProductID reads the productId path parameter, writing the
// validation error itself
func parseProductID(c *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid product ID")
		return uuid.Nil, false
	}
	return productID, true
}
