package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-spec-api/internal/dto"
	"product-spec-api/internal/response"
	"product-spec-api/internal/service"
)

// FieldDefinitionHandler serves field definition CRUD endpoints
type FieldDefinitionHandler struct {
	fieldService service.FieldService
}

// NewFieldDefinitionHandler creates a new FieldDefinitionHandler
func NewFieldDefinitionHandler(fieldService service.FieldService) *FieldDefinitionHandler {
	return &FieldDefinitionHandler{fieldService: fieldService}
}

// CreateField creates a field definition.
// POST /fields
func (h *FieldDefinitionHandler) CreateField(c *gin.Context) {
	var req dto.CreateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	field, err := h.fieldService.CreateField(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, field)
}

// GetField returns one field definition.
// GET /fields/:slug
func (h *FieldDefinitionHandler) GetField(c *gin.Context) {
	field, err := h.fieldService.GetField(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, field)
}

// ListFields returns all field definitions in display order.
// GET /fields
func (h *FieldDefinitionHandler) ListFields(c *gin.Context) {
	fields, err := h.fieldService.ListFields(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, fields)
}

// UpdateField updates a field definition.
// PATCH /fields/:slug
func (h *FieldDefinitionHandler) UpdateField(c *gin.Context) {
	var req dto.UpdateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	field, err := h.fieldService.UpdateField(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, field)
}

// DeleteField deletes a field definition.
// DELETE /fields/:slug
func (h *FieldDefinitionHandler) DeleteField(c *gin.Context) {
	if err := h.fieldService.DeleteField(c.Request.Context(), c.Param("slug")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}
