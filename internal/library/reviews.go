package library

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/liamwears/drcinema/internal/models"
)

// ErrReviewNotFound is returned when a review id is unknown
var ErrReviewNotFound = errors.New("review not found")

// NewReview creates a review with a fresh id and creation time
func NewReview(input models.CreateReviewInput, now time.Time) models.Review {
	return models.Review{
		ID:        uuid.NewString(),
		MovieID:   input.MovieID,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: now.UTC(),
	}
}

// AddReview appends review to the collection
func AddReview(reviews []models.Review, review models.Review) []models.Review {
	out := make([]models.Review, len(reviews), len(reviews)+1)
	copy(out, reviews)
	return append(out, review)
}

// RemoveReview drops the review with the given id
func RemoveReview(reviews []models.Review, id string) []models.Review {
	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// UpdateReview changes only the fields set in input
func UpdateReview(reviews []models.Review, input models.UpdateReviewInput) ([]models.Review, error) {
	out := make([]models.Review, len(reviews))
	copy(out, reviews)
	for i := range out {
		if out[i].ID != input.ID {
			continue
		}
		if input.Rating != nil {
			out[i].Rating = *input.Rating
		}
		if input.Text != nil {
			out[i].Text = *input.Text
		}
		return out, nil
	}
	return nil, ErrReviewNotFound
}

// FindReview returns the review with the given id
func FindReview(reviews []models.Review, id string) (models.Review, bool) {
	for _, r := range reviews {
		if r.ID == id {
			return r, true
		}
	}
	return models.Review{}, false
}

// ReviewsFor returns the reviews of one movie in insertion order
func ReviewsFor(reviews []models.Review, movieID int) []models.Review {
	out := []models.Review{}
	for _, r := range reviews {
		if r.MovieID == movieID {
			out = append(out, r)
		}
	}
	return out
}

// AverageRating returns the mean rating of a movie's reviews rounded to one
// decimal, and false when it has none
func AverageRating(reviews []models.Review, movieID int) (float64, bool) {
	var sum, n int
	for _, r := range reviews {
		if r.MovieID == movieID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return math.Round(float64(sum)/float64(n)*10) / 10, true
}
