package store

import (
	"time"

	"github.com/liamwears/drcinema/internal/models"
)

// Action describes a state transition
type Action interface {
	Type() string
}

type MoviesRequested struct{}
type MoviesLoaded struct{ Movies []models.Movie }
type MoviesFailed struct{ Err string }

type UpcomingRequested struct{}
type UpcomingLoaded struct{ Movies []models.Movie }
type UpcomingFailed struct{ Err string }

// MovieLoaded records a single movie fetched by id. It refreshes the
// now-showing entry when there is one but never adds to that list.
type MovieLoaded struct{ Movie models.Movie }

type CinemasRequested struct{}
type CinemasLoaded struct{ Cinemas []models.Cinema }
type CinemasFailed struct{ Err string }

type FiltersSet struct{ Patch models.FilterPatch }
type FiltersCleared struct{}

type FavouritesRequested struct{}
type FavouritesSet struct{ Favourites []models.FavouriteMovie }
type FavouritesFailed struct{ Err string }
type FavouriteAdded struct {
	Movie models.Movie
	At    time.Time
}
type FavouriteRemoved struct{ MovieID int }
type FavouritesReordered struct{ From, To int }

type ReviewsRequested struct{}
type ReviewsSet struct{ Reviews []models.Review }
type ReviewsFailed struct{ Err string }
type ReviewAdded struct{ Review models.Review }
type ReviewRemoved struct{ ID string }
type ReviewUpdated struct{ Input models.UpdateReviewInput }

func (MoviesRequested) Type() string     { return "movies/fetch/pending" }
func (MoviesLoaded) Type() string        { return "movies/fetch/fulfilled" }
func (MoviesFailed) Type() string        { return "movies/fetch/rejected" }
func (UpcomingRequested) Type() string   { return "movies/upcoming/pending" }
func (UpcomingLoaded) Type() string      { return "movies/upcoming/fulfilled" }
func (UpcomingFailed) Type() string      { return "movies/upcoming/rejected" }
func (MovieLoaded) Type() string         { return "movies/fetchOne/fulfilled" }
func (CinemasRequested) Type() string    { return "cinemas/fetch/pending" }
func (CinemasLoaded) Type() string       { return "cinemas/fetch/fulfilled" }
func (CinemasFailed) Type() string       { return "cinemas/fetch/rejected" }
func (FiltersSet) Type() string          { return "movies/setFilters" }
func (FiltersCleared) Type() string      { return "movies/clearFilters" }
func (FavouritesRequested) Type() string { return "favourites/load/pending" }
func (FavouritesSet) Type() string       { return "favourites/set" }
func (FavouritesFailed) Type() string    { return "favourites/load/rejected" }
func (FavouriteAdded) Type() string      { return "favourites/add" }
func (FavouriteRemoved) Type() string    { return "favourites/remove" }
func (FavouritesReordered) Type() string { return "favourites/reorder" }
func (ReviewsRequested) Type() string    { return "reviews/load/pending" }
func (ReviewsSet) Type() string          { return "reviews/set" }
func (ReviewsFailed) Type() string       { return "reviews/load/rejected" }
func (ReviewAdded) Type() string         { return "reviews/add" }
func (ReviewRemoved) Type() string       { return "reviews/remove" }
func (ReviewUpdated) Type() string       { return "reviews/update" }

// MutatesFavourites reports whether a is a user edit of the favourites
func MutatesFavourites(a Action) bool {
	switch a.(type) {
	case FavouriteAdded, FavouriteRemoved, FavouritesReordered:
		return true
	}
	return false
}

// MutatesReviews reports whether a is a user edit of the reviews
func MutatesReviews(a Action) bool {
	switch a.(type) {
	case ReviewAdded, ReviewRemoved, ReviewUpdated:
		return true
	}
	return false
}
