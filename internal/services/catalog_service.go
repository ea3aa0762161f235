package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/liamwears/drcinema/internal/catalog"
	"github.com/liamwears/drcinema/internal/library"
	"github.com/liamwears/drcinema/internal/models"
	"github.com/liamwears/drcinema/internal/store"
)

// ErrCinemaNotFound is returned for a cinema id absent from the loaded list
var ErrCinemaNotFound = errors.New("cinema not found")

// CatalogService loads the remote catalogue into the store and builds the
// read views over it. Concurrent identical loads share one upstream call.
type CatalogService struct {
	source MovieSource
	store  *store.Store
	group  singleflight.Group
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(source MovieSource, st *store.Store, logger *zap.Logger) *CatalogService {
	return &CatalogService{source: source, store: st, logger: logger}
}

// share runs fn once per key among concurrent callers. The shared call is
// detached from the first caller's cancellation; the HTTP client timeout
// bounds it instead.
func (s *CatalogService) share(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	detached := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return fn(detached)
	})
	return v, err
}

// LoadMovies replaces the now-showing collection
func (s *CatalogService) LoadMovies(ctx context.Context) error {
	_, err := s.share(ctx, "movies", func(ctx context.Context) (any, error) {
		_ = s.store.Dispatch(store.MoviesRequested{})
		movies, err := s.source.Movies(ctx)
		if err != nil {
			_ = s.store.Dispatch(store.MoviesFailed{Err: err.Error()})
			return nil, fmt.Errorf("failed to load movies: %w", err)
		}
		s.logger.Debug("movies loaded", zap.Int("count", len(movies)))
		return nil, s.store.Dispatch(store.MoviesLoaded{Movies: movies})
	})
	return err
}

// LoadUpcoming replaces the upcoming collection
func (s *CatalogService) LoadUpcoming(ctx context.Context) error {
	_, err := s.share(ctx, "upcoming", func(ctx context.Context) (any, error) {
		_ = s.store.Dispatch(store.UpcomingRequested{})
		movies, err := s.source.Upcoming(ctx)
		if err != nil {
			_ = s.store.Dispatch(store.UpcomingFailed{Err: err.Error()})
			return nil, fmt.Errorf("failed to load upcoming movies: %w", err)
		}
		s.logger.Debug("upcoming movies loaded", zap.Int("count", len(movies)))
		return nil, s.store.Dispatch(store.UpcomingLoaded{Movies: movies})
	})
	return err
}

// LoadCinemas replaces the cinema list
func (s *CatalogService) LoadCinemas(ctx context.Context) error {
	_, err := s.share(ctx, "cinemas", func(ctx context.Context) (any, error) {
		_ = s.store.Dispatch(store.CinemasRequested{})
		cinemas, err := s.source.Cinemas(ctx)
		if err != nil {
			_ = s.store.Dispatch(store.CinemasFailed{Err: err.Error()})
			return nil, fmt.Errorf("failed to load cinemas: %w", err)
		}
		s.logger.Debug("cinemas loaded", zap.Int("count", len(cinemas)))
		return nil, s.store.Dispatch(store.CinemasLoaded{Cinemas: cinemas})
	})
	return err
}

// LoadMovie fetches one movie by id. It is kept apart from the now-showing
// list, so a detail view never stands in for a full list load.
func (s *CatalogService) LoadMovie(ctx context.Context, id int) (models.Movie, error) {
	v, err := s.share(ctx, "movie:"+strconv.Itoa(id), func(ctx context.Context) (any, error) {
		movie, err := s.source.Movie(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load movie %d: %w", id, err)
		}
		if err := s.store.Dispatch(store.MovieLoaded{Movie: *movie}); err != nil {
			return nil, err
		}
		return *movie, nil
	})
	if err != nil {
		return models.Movie{}, err
	}
	return v.(models.Movie), nil
}

// FindMovie returns a loaded movie, fetching it when it is not in the store
func (s *CatalogService) FindMovie(ctx context.Context, id int) (models.Movie, error) {
	if movie, ok := s.store.Snapshot().FindMovie(id); ok {
		return movie, nil
	}
	return s.LoadMovie(ctx, id)
}

// EnsureMovies loads the now-showing collection only when it is empty
func (s *CatalogService) EnsureMovies(ctx context.Context) error {
	if len(s.store.Snapshot().Movies.Movies) > 0 {
		return nil
	}
	return s.LoadMovies(ctx)
}

func (s *CatalogService) ensureUpcoming(ctx context.Context) error {
	if len(s.store.Snapshot().Movies.Upcoming) > 0 {
		return nil
	}
	return s.LoadUpcoming(ctx)
}

func (s *CatalogService) ensureCinemas(ctx context.Context) error {
	if len(s.store.Snapshot().Cinemas.Cinemas) > 0 {
		return nil
	}
	return s.LoadCinemas(ctx)
}

// Refresh reloads every remote collection. Each load is attempted even when
// an earlier one fails.
func (s *CatalogService) Refresh(ctx context.Context) error {
	return errors.Join(
		s.LoadMovies(ctx),
		s.LoadUpcoming(ctx),
		s.LoadCinemas(ctx),
	)
}

// Filters returns the active filter state
func (s *CatalogService) Filters() models.FilterState {
	return s.store.Snapshot().Movies.Filters
}

// SetFilters merges patch into the active filters
func (s *CatalogService) SetFilters(patch models.FilterPatch) (models.FilterState, error) {
	if err := s.store.Dispatch(store.FiltersSet{Patch: patch}); err != nil {
		return models.FilterState{}, err
	}
	return s.Filters(), nil
}

// ClearFilters resets every filter field
func (s *CatalogService) ClearFilters() error {
	return s.store.Dispatch(store.FiltersCleared{})
}

// NowShowing groups the movies by cinema and applies the active filters.
// Sections left empty by filtering are dropped.
func (s *CatalogService) NowShowing(ctx context.Context) ([]catalog.CardSection, error) {
	if err := s.EnsureMovies(ctx); err != nil {
		return nil, err
	}
	snap := s.store.Snapshot()
	sections := catalog.GroupByCinema(snap.Movies.Movies)
	return catalog.NewCardSections(catalog.FilterSections(sections, snap.Movies.Filters)), nil
}

// Upcoming lists upcoming movies by release date
func (s *CatalogService) Upcoming(ctx context.Context) ([]catalog.UpcomingItem, error) {
	if err := s.ensureUpcoming(ctx); err != nil {
		return nil, err
	}
	return catalog.NewUpcomingItems(s.store.Snapshot().Movies.Upcoming), nil
}

// Cinemas lists cinemas by name
func (s *CatalogService) Cinemas(ctx context.Context) ([]catalog.CinemaView, error) {
	if err := s.ensureCinemas(ctx); err != nil {
		return nil, err
	}
	return catalog.NewCinemaViews(s.store.Snapshot().Cinemas.Cinemas), nil
}

// CinemaDetail is a cinema with the movies screening there
type CinemaDetail struct {
	Cinema catalog.CinemaView  `json:"cinema"`
	Movies []catalog.MovieCard `json:"movies"`
}

// CinemaDetail returns a cinema and its movies, with showtimes limited to
// that cinema
func (s *CatalogService) CinemaDetail(ctx context.Context, id int) (*CinemaDetail, error) {
	if err := s.ensureCinemas(ctx); err != nil {
		return nil, err
	}
	if err := s.EnsureMovies(ctx); err != nil {
		return nil, err
	}

	snap := s.store.Snapshot()
	cinema, ok := snap.FindCinema(id)
	if !ok {
		return nil, ErrCinemaNotFound
	}

	movies := catalog.MoviesAtCinema(snap.Movies.Movies, id)
	cards := make([]catalog.MovieCard, 0, len(movies))
	for i := range movies {
		cards = append(cards, catalog.NewMovieCard(&movies[i], &id))
	}
	return &CinemaDetail{Cinema: catalog.NewCinemaView(cinema), Movies: cards}, nil
}

// MovieDetail is everything shown on a movie's page
type MovieDetail struct {
	catalog.MovieCard
	Plot          string          `json:"plot"`
	Directors     string          `json:"directors"`
	Actors        string          `json:"actors"`
	Duration      int             `json:"durationMinutes"`
	TrailerKey    string          `json:"trailerKey,omitempty"`
	IsFavourite   bool            `json:"isFavourite"`
	Reviews       []models.Review `json:"reviews"`
	AverageRating *float64        `json:"averageRating"`
	ShareMessage  string          `json:"shareMessage"`
}

// MovieDetail returns a movie's page. Showtimes are limited to cinemaID when
// it is given.
func (s *CatalogService) MovieDetail(ctx context.Context, id int, cinemaID *int) (*MovieDetail, error) {
	movie, err := s.FindMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	snap := s.store.Snapshot()
	card := catalog.NewMovieCard(&movie, cinemaID)
	plot := catalog.Plot(&movie)

	detail := &MovieDetail{
		MovieCard:    card,
		Plot:         plot,
		Directors:    catalog.Directors(&movie),
		Actors:       catalog.Actors(&movie),
		Duration:     movie.DurationMinutes,
		TrailerKey:   catalog.TrailerKey(movie.Trailers),
		IsFavourite:  library.ContainsFavourite(snap.Favourites.Favourites, id),
		Reviews:      library.ReviewsFor(snap.Reviews.Reviews, id),
		ShareMessage: catalog.ShareMessage(card.Title, plot, card.ImdbRating),
	}
	if avg, ok := library.AverageRating(snap.Reviews.Reviews, id); ok {
		detail.AverageRating = &avg
	}
	return detail, nil
}
