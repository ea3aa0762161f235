// Package store is the process-wide state container. State changes only by
// dispatching an action: the reducer derives the next immutable snapshot and
// subscribers are told about the transition.
package store

import "github.com/liamwears/drcinema/internal/models"

// State is an immutable snapshot. Slices in a snapshot are never modified
// after it is published and must be treated as read-only.
type State struct {
	Movies     MoviesState
	Cinemas    CinemasState
	Favourites FavouritesState
	Reviews    ReviewsState
}

type MoviesState struct {
	Movies          []models.Movie
	Upcoming        []models.Movie
	Loading         bool
	UpcomingLoading bool
	Error           string
	Filters         models.FilterState

	// ByID holds movies fetched one at a time. They never join Movies, which
	// only a full list load replaces.
	ByID map[int]models.Movie
}

type CinemasState struct {
	Cinemas []models.Cinema
	Loading bool
	Error   string
}

type FavouritesState struct {
	Favourites []models.FavouriteMovie
	Loading    bool
	Error      string
}

type ReviewsState struct {
	Reviews []models.Review
	Loading bool
	Error   string
}

// FindMovie looks a movie up in the now-showing collection, then upcoming,
// then the movies fetched by id
func (s State) FindMovie(id int) (models.Movie, bool) {
	for _, m := range s.Movies.Movies {
		if m.ID == id {
			return m, true
		}
	}
	for _, m := range s.Movies.Upcoming {
		if m.ID == id {
			return m, true
		}
	}
	if m, ok := s.Movies.ByID[id]; ok {
		return m, true
	}
	return models.Movie{}, false
}

// FindCinema looks a cinema up by id
func (s State) FindCinema(id int) (models.Cinema, bool) {
	for _, c := range s.Cinemas.Cinemas {
		if c.ID == id {
			return c, true
		}
	}
	return models.Cinema{}, false
}
