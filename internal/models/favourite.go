package models

import "time"

// FavouriteMovie is a movie the user has saved, in user-defined order
type FavouriteMovie struct {
	Movie
	AddedAt time.Time `json:"addedAt"`
	Order   int       `json:"order"`
}

// ReorderFavouritesInput represents the input for moving a favourite
type ReorderFavouritesInput struct {
	FromIndex int `json:"fromIndex" validate:"min=0"`
	ToIndex   int `json:"toIndex" validate:"min=0"`
}

// AddFavouriteInput represents the input for saving a favourite by movie ID
type AddFavouriteInput struct {
	MovieID int `json:"movieId" validate:"required"`
}
