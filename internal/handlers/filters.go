package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/models"
	"github.com/liamwears/drcinema/internal/services"
)

// FilterHandler reads and edits the active movie filters
type FilterHandler struct {
	catalog   *services.CatalogService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(catalog *services.CatalogService, v *validator.Validate, logger *zap.Logger) *FilterHandler {
	return &FilterHandler{catalog: catalog, validator: v, logger: logger}
}

// Get handles GET /api/filters
func (h *FilterHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Filters())
}

// Set handles PUT /api/filters. Only the supplied fields change.
func (h *FilterHandler) Set(w http.ResponseWriter, r *http.Request) {
	var patch models.FilterPatch
	if err := decodeAndValidate(r, h.validator, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filters, err := h.catalog.SetFilters(patch)
	if err != nil {
		h.logger.Error("failed to set filters", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to set filters")
		return
	}
	writeJSON(w, http.StatusOK, filters)
}

// Clear handles DELETE /api/filters
func (h *FilterHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.ClearFilters(); err != nil {
		h.logger.Error("failed to clear filters", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to clear filters")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
