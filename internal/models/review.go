package models

import "time"

// Review is a user's rating of a movie
type Review struct {
	ID        string    `json:"id"`
	MovieID   int       `json:"movieId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateReviewInput represents the input for creating a review
type CreateReviewInput struct {
	MovieID int    `json:"movieId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Text    string `json:"text" validate:"max=2000"`
}

// UpdateReviewInput represents the input for updating a review
type UpdateReviewInput struct {
	ID     string  `json:"id" validate:"required"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Text   *string `json:"text,omitempty" validate:"omitempty,max=2000"`
}
