// Package library holds the user's curated collections: favourite movies in a
// user-defined order and reviews. Operations never modify their input slice.
package library

import (
	"errors"
	"time"

	"github.com/liamwears/drcinema/internal/models"
)

var (
	// ErrIndexOutOfRange is returned when a reorder names a missing position
	ErrIndexOutOfRange = errors.New("favourite index out of range")
	// ErrFavouriteNotFound is returned when removing a movie that is not saved
	ErrFavouriteNotFound = errors.New("favourite not found")
)

// ContainsFavourite reports whether movieID is already saved
func ContainsFavourite(favs []models.FavouriteMovie, movieID int) bool {
	return IndexOfFavourite(favs, movieID) >= 0
}

// IndexOfFavourite returns the position of movieID, or -1
func IndexOfFavourite(favs []models.FavouriteMovie, movieID int) int {
	for i, f := range favs {
		if f.ID == movieID {
			return i
		}
	}
	return -1
}

// AddFavourite appends movie with the next order value. Adding a movie that
// is already saved returns the collection unchanged.
func AddFavourite(favs []models.FavouriteMovie, movie models.Movie, now time.Time) []models.FavouriteMovie {
	if ContainsFavourite(favs, movie.ID) {
		return favs
	}
	out := make([]models.FavouriteMovie, len(favs), len(favs)+1)
	copy(out, favs)
	return append(out, models.FavouriteMovie{
		Movie:   movie,
		AddedAt: now.UTC(),
		Order:   len(favs),
	})
}

// RemoveFavourite drops movieID and renumbers the remaining entries from 0
func RemoveFavourite(favs []models.FavouriteMovie, movieID int) []models.FavouriteMovie {
	out := make([]models.FavouriteMovie, 0, len(favs))
	for _, f := range favs {
		if f.ID != movieID {
			out = append(out, f)
		}
	}
	return renumber(out)
}

// ReorderFavourites moves the entry at from to position to, with splice
// semantics: to indexes the collection after the entry has been removed and
// is clamped to its end.
func ReorderFavourites(favs []models.FavouriteMovie, from, to int) ([]models.FavouriteMovie, error) {
	if from < 0 || from >= len(favs) || to < 0 {
		return nil, ErrIndexOutOfRange
	}

	moved := favs[from]
	rest := make([]models.FavouriteMovie, 0, len(favs))
	rest = append(rest, favs[:from]...)
	rest = append(rest, favs[from+1:]...)

	if to > len(rest) {
		to = len(rest)
	}

	out := make([]models.FavouriteMovie, 0, len(favs))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	return renumber(out), nil
}

// renumber sets dense order values in place; callers pass a fresh slice
func renumber(favs []models.FavouriteMovie) []models.FavouriteMovie {
	for i := range favs {
		favs[i].Order = i
	}
	return favs
}
