package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-spec-api/internal/dto"
	"product-spec-api/internal/response"
	"product-spec-api/internal/service"
)

// MigrationHandler serves the legacy migration endpoint
type MigrationHandler struct {
	migrationService service.MigrationService
}

// NewMigrationHandler creates a new MigrationHandler
func NewMigrationHandler(migrationService service.MigrationService) *MigrationHandler {
	return &MigrationHandler{migrationService: migrationService}
}

// RunMigration runs the legacy import for the submitted mappings.
// POST /migration/run
func (h *MigrationHandler) RunMigration(c *gin.Context) {
	var req dto.RunMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.migrationService.Run(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}
