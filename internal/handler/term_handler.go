package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-spec-api/internal/dto"
	"product-spec-api/internal/response"
	"product-spec-api/internal/service"
)

// TermHandler serves vocabulary term endpoints
type TermHandler struct {
	termService service.TermService
}

// NewTermHandler creates a new TermHandler
func NewTermHandler(termService service.TermService) *TermHandler {
	return &TermHandler{termService: termService}
}

// ListTerms returns a relational field's vocabulary.
// GET /fields/:slug/terms
func (h *TermHandler) ListTerms(c *gin.Context) {
	terms, err := h.termService.ListTerms(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, terms)
}

// CreateTerm adds a term to a field's vocabulary.
// POST /fields/:slug/terms
func (h *TermHandler) CreateTerm(c *gin.Context) {
	var req dto.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	term, err := h.termService.CreateTerm(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, term)
}
