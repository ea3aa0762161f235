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

// ReviewHandler handles the user's movie reviews
type ReviewHandler struct {
	reviews   *services.ReviewsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *services.ReviewsService, v *validator.Validate, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, validator: v, logger: logger}
}

// List handles GET /api/reviews[?movieId=]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	movieID, err := optionalIntQuery(r, "movieId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	reviews := h.reviews.List(movieID)
	if movieID == nil {
		writeJSON(w, http.StatusOK, reviews)
		return
	}

	var average *float64
	if avg, ok := h.reviews.Average(*movieID); ok {
		average = &avg
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reviews":       reviews,
		"averageRating": average,
	})
}

// Create handles POST /api/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.CreateReviewInput
	if err := decodeAndValidate(r, h.validator, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviews.Add(input)
	if err != nil {
		h.logger.Error("failed to add review", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to add review")
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// Update handles PATCH /api/reviews/{id}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input models.UpdateReviewInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// the path wins over any id in the body
	input.ID = r.PathValue("id")
	if err := validateInput(h.validator, input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviews.Update(input)
	if err != nil {
		h.writeReviewError(w, input.ID, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// Delete handles DELETE /api/reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.reviews.Remove(id); err != nil {
		h.writeReviewError(w, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) writeReviewError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, library.ErrReviewNotFound) {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}
	h.logger.Error("failed to change review", zap.String("review_id", id), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Failed to change review")
}
