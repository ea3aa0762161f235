package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/library"
	"github.com/liamwears/drcinema/internal/models"
	"github.com/liamwears/drcinema/internal/services"
)

// FavouriteHandler handles the user's favourites
type FavouriteHandler struct {
	favourites *services.FavouritesService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewFavouriteHandler creates a new favourite handler
func NewFavouriteHandler(favourites *services.FavouritesService, v *validator.Validate, logger *zap.Logger) *FavouriteHandler {
	return &FavouriteHandler{favourites: favourites, validator: v, logger: logger}
}

// List handles GET /api/favourites
func (h *FavouriteHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.favourites.List())
}

// Add handles POST /api/favourites
func (h *FavouriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input models.AddFavouriteInput
	if err := decodeAndValidate(r, h.validator, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fav, err := h.favourites.Add(r.Context(), input.MovieID)
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

// Remove handles DELETE /api/favourites/{id}
func (h *FavouriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	if err := h.favourites.Remove(id); err != nil {
		if errors.Is(err, library.ErrFavouriteNotFound) {
			writeError(w, http.StatusNotFound, "Favourite not found")
			return
		}
		h.logger.Error("failed to remove favourite", zap.Int("movie_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to remove favourite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles POST /api/favourites/reorder
func (h *FavouriteHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var input models.ReorderFavouritesInput
	if err := decodeAndValidate(r, h.validator, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	favs, err := h.favourites.Reorder(input.FromIndex, input.ToIndex)
	if err != nil {
		if errors.Is(err, library.ErrIndexOutOfRange) {
			writeError(w, http.StatusBadRequest, "Index out of range")
			return
		}
		h.logger.Error("failed to reorder favourites", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to reorder favourites")
		return
	}
	writeJSON(w, http.StatusOK, favs)
}
