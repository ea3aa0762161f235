package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/database"
	"github.com/liamwears/drcinema/internal/library"
	"github.com/liamwears/drcinema/internal/models"
	"github.com/liamwears/drcinema/internal/store"
)

// FavouritesService manages the user's ordered favourites. Every change is
// written through to the key-value store as the whole collection.
type FavouritesService struct {
	store   *store.Store
	kv      database.KVStore
	catalog *CatalogService
	logger  *zap.Logger
	now     func() time.Time
	writer  *collectionWriter[models.FavouriteMovie]
}

// NewFavouritesService creates a new FavouritesService and subscribes its
// write-through to st
func NewFavouritesService(st *store.Store, kv database.KVStore, catalog *CatalogService, logger *zap.Logger) *FavouritesService {
	s := &FavouritesService{
		store:   st,
		kv:      kv,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
		writer:  newCollectionWriter[models.FavouriteMovie](kv, FavouritesKey, logger),
	}
	st.Subscribe(s.persist)
	return s
}

// Load replaces the in-memory favourites with the stored collection
func (s *FavouritesService) Load(ctx context.Context) {
	_ = s.store.Dispatch(store.FavouritesRequested{})
	favs := readCollection[models.FavouriteMovie](ctx, s.kv, FavouritesKey, s.logger)
	_ = s.store.Dispatch(store.FavouritesSet{Favourites: favs})
	s.logger.Info("favourites loaded", zap.Int("count", len(favs)))
}

// List returns the favourites in user order
func (s *FavouritesService) List() []models.FavouriteMovie {
	favs := s.store.Snapshot().Favourites.Favourites
	if favs == nil {
		return []models.FavouriteMovie{}
	}
	return favs
}

// Add saves a movie as a favourite. Adding a movie already saved returns the
// existing entry unchanged.
func (s *FavouritesService) Add(ctx context.Context, movieID int) (models.FavouriteMovie, error) {
	movie, err := s.catalog.FindMovie(ctx, movieID)
	if err != nil {
		return models.FavouriteMovie{}, err
	}
	next, err := s.store.Apply(store.FavouriteAdded{Movie: movie, At: s.now()})
	if err != nil {
		return models.FavouriteMovie{}, err
	}

	favs := next.Favourites.Favourites
	idx := library.IndexOfFavourite(favs, movieID)
	if idx < 0 {
		return models.FavouriteMovie{}, library.ErrFavouriteNotFound
	}
	return favs[idx], nil
}

// Remove deletes a favourite and renumbers the rest
func (s *FavouritesService) Remove(movieID int) error {
	return s.store.Dispatch(store.FavouriteRemoved{MovieID: movieID})
}

// Reorder moves the favourite at from to position to
func (s *FavouritesService) Reorder(from, to int) ([]models.FavouriteMovie, error) {
	if err := s.store.Dispatch(store.FavouritesReordered{From: from, To: to}); err != nil {
		return nil, err
	}
	return s.List(), nil
}

func (s *FavouritesService) persist(_, next store.State, action store.Action) {
	if !store.MutatesFavourites(action) {
		return
	}
	s.writer.Enqueue(next.Favourites.Favourites)
}

// Flush waits for pending writes to reach the key-value store
func (s *FavouritesService) Flush() {
	s.writer.Flush()
}

// Close flushes pending writes and stops the background writer
func (s *FavouritesService) Close() {
	s.writer.Close()
}
