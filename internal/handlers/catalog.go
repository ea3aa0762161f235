package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/services"
)

// CatalogHandler serves the read views over movies and cinemas
type CatalogHandler struct {
	catalog *services.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// NowShowing handles GET /api/movies
func (h *CatalogHandler) NowShowing(w http.ResponseWriter, r *http.Request) {
	sections, err := h.catalog.NowShowing(r.Context())
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

// Movie handles GET /api/movies/{id}
func (h *CatalogHandler) Movie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}
	cinemaID, err := optionalIntQuery(r, "cinemaId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cinema ID")
		return
	}

	detail, err := h.catalog.MovieDetail(r.Context(), id, cinemaID)
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Upcoming handles GET /api/upcoming
func (h *CatalogHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Upcoming(r.Context())
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Cinemas handles GET /api/cinemas
func (h *CatalogHandler) Cinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.catalog.Cinemas(r.Context())
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, cinemas)
}

// Cinema handles GET /api/cinemas/{id}
func (h *CatalogHandler) Cinema(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cinema ID")
		return
	}

	detail, err := h.catalog.CinemaDetail(r.Context(), id)
	if errors.Is(err, services.ErrCinemaNotFound) {
		writeError(w, http.StatusNotFound, "Cinema not found")
		return
	}
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Refresh handles POST /api/refresh, the manual retry after a failed load
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Refresh(r.Context()); err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
