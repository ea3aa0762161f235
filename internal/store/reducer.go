package store

import (
	"fmt"

	"github.com/liamwears/drcinema/internal/library"
	"github.com/liamwears/drcinema/internal/models"
)

// Reduce returns the state that follows s under a. It never modifies s. An
// error leaves the state unchanged.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case MoviesRequested:
		s.Movies.Loading = true
		s.Movies.Error = ""
	case MoviesLoaded:
		s.Movies.Loading = false
		s.Movies.Movies = a.Movies
	case MoviesFailed:
		s.Movies.Loading = false
		s.Movies.Error = a.Err

	case UpcomingRequested:
		s.Movies.UpcomingLoading = true
	case UpcomingLoaded:
		s.Movies.UpcomingLoading = false
		s.Movies.Upcoming = a.Movies
	case UpcomingFailed:
		s.Movies.UpcomingLoading = false
		s.Movies.Error = a.Err

	case MovieLoaded:
		s.Movies.ByID = withMovie(s.Movies.ByID, a.Movie)
		s.Movies.Movies = replaceMovie(s.Movies.Movies, a.Movie)

	case CinemasRequested:
		s.Cinemas.Loading = true
		s.Cinemas.Error = ""
	case CinemasLoaded:
		s.Cinemas.Loading = false
		s.Cinemas.Cinemas = a.Cinemas
	case CinemasFailed:
		s.Cinemas.Loading = false
		s.Cinemas.Error = a.Err

	case FiltersSet:
		s.Movies.Filters = a.Patch.Apply(s.Movies.Filters)
	case FiltersCleared:
		s.Movies.Filters = models.FilterState{}

	case FavouritesRequested:
		s.Favourites.Loading = true
	case FavouritesSet:
		s.Favourites.Loading = false
		s.Favourites.Favourites = a.Favourites
	case FavouritesFailed:
		s.Favourites.Loading = false
		s.Favourites.Error = a.Err
	case FavouriteAdded:
		s.Favourites.Favourites = library.AddFavourite(s.Favourites.Favourites, a.Movie, a.At)
	case FavouriteRemoved:
		if !library.ContainsFavourite(s.Favourites.Favourites, a.MovieID) {
			return s, library.ErrFavouriteNotFound
		}
		s.Favourites.Favourites = library.RemoveFavourite(s.Favourites.Favourites, a.MovieID)
	case FavouritesReordered:
		favs, err := library.ReorderFavourites(s.Favourites.Favourites, a.From, a.To)
		if err != nil {
			return s, err
		}
		s.Favourites.Favourites = favs

	case ReviewsRequested:
		s.Reviews.Loading = true
	case ReviewsSet:
		s.Reviews.Loading = false
		s.Reviews.Reviews = a.Reviews
	case ReviewsFailed:
		s.Reviews.Loading = false
		s.Reviews.Error = a.Err
	case ReviewAdded:
		s.Reviews.Reviews = library.AddReview(s.Reviews.Reviews, a.Review)
	case ReviewRemoved:
		if _, ok := library.FindReview(s.Reviews.Reviews, a.ID); !ok {
			return s, library.ErrReviewNotFound
		}
		s.Reviews.Reviews = library.RemoveReview(s.Reviews.Reviews, a.ID)
	case ReviewUpdated:
		reviews, err := library.UpdateReview(s.Reviews.Reviews, a.Input)
		if err != nil {
			return s, err
		}
		s.Reviews.Reviews = reviews

	default:
		return s, fmt.Errorf("unknown action %T", a)
	}
	return s, nil
}

func withMovie(byID map[int]models.Movie, movie models.Movie) map[int]models.Movie {
	out := make(map[int]models.Movie, len(byID)+1)
	for id, m := range byID {
		out[id] = m
	}
	out[movie.ID] = movie
	return out
}

// replaceMovie swaps in the fresh copy of a movie already listed. A movie
// not in the list is left out.
func replaceMovie(movies []models.Movie, movie models.Movie) []models.Movie {
	for i := range movies {
		if movies[i].ID == movie.ID {
			out := make([]models.Movie, len(movies))
			copy(out, movies)
			out[i] = movie
			return out
		}
	}
	return movies
}
