package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"product-spec-api/internal/dto"
	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/response"
	"product-spec-api/internal/units"
)

// RegistryHandler serves the field type and unit registries
type RegistryHandler struct {
	registry *fieldtype.Registry
	units    *units.Registry
}

// NewRegistryHandler creates a new RegistryHandler
func NewRegistryHandler(registry *fieldtype.Registry, unitRegistry *units.Registry) *RegistryHandler {
	return &RegistryHandler{registry: registry, units: unitRegistry}
}

// ListTypes returns all registered field types.
// GET /types
func (h *RegistryHandler) ListTypes(c *gin.Context) {
	table := h.registry.GetAll()

	types := make([]dto.FieldTypeResponse, 0, len(table))
	for _, ft := range table {
		caps := make([]string, len(ft.Capabilities))
		for i, cap := range ft.Capabilities {
			caps[i] = string(cap)
		}
		types = append(types, dto.FieldTypeResponse{
			Slug:         ft.Slug,
			Label:        ft.Label,
			Description:  ft.Description,
			Datatype:     string(ft.Datatype),
			Storage:      string(ft.Storage),
			Capabilities: caps,
		})
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Slug < types[j].Slug })

	response.SendSuccess(c, http.StatusOK, types)
}

// ListUnits returns the ordered unit table.
// GET /units
func (h *RegistryHandler) ListUnits(c *gin.Context) {
	table := h.units.GetUnits()

	unitList := make([]dto.UnitResponse, len(table))
	for i, u := range table {
		unitList[i] = dto.UnitResponse{Code: u.Code, Label: u.Label}
	}
	response.SendSuccess(c, http.StatusOK, unitList)
}
