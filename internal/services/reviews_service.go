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

// ReviewsService manages the user's movie reviews, written through to the
// key-value store like favourites
type ReviewsService struct {
	store  *store.Store
	kv     database.KVStore
	logger *zap.Logger
	now    func() time.Time
	writer *collectionWriter[models.Review]
}

// NewReviewsService creates a new ReviewsService and subscribes its
// write-through to st
func NewReviewsService(st *store.Store, kv database.KVStore, logger *zap.Logger) *ReviewsService {
	s := &ReviewsService{
		store:  st,
		kv:     kv,
		logger: logger,
		now:    time.Now,
		writer: newCollectionWriter[models.Review](kv, ReviewsKey, logger),
	}
	st.Subscribe(s.persist)
	return s
}

// Load replaces the in-memory reviews with the stored collection
func (s *ReviewsService) Load(ctx context.Context) {
	_ = s.store.Dispatch(store.ReviewsRequested{})
	reviews := readCollection[models.Review](ctx, s.kv, ReviewsKey, s.logger)
	_ = s.store.Dispatch(store.ReviewsSet{Reviews: reviews})
	s.logger.Info("reviews loaded", zap.Int("count", len(reviews)))
}

// List returns all reviews, or one movie's reviews when movieID is given
func (s *ReviewsService) List(movieID *int) []models.Review {
	reviews := s.store.Snapshot().Reviews.Reviews
	if movieID != nil {
		return library.ReviewsFor(reviews, *movieID)
	}
	if reviews == nil {
		return []models.Review{}
	}
	return reviews
}

// Add records a new review
func (s *ReviewsService) Add(input models.CreateReviewInput) (models.Review, error) {
	review := library.NewReview(input, s.now())
	if err := s.store.Dispatch(store.ReviewAdded{Review: review}); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// Update changes the supplied fields of a review
func (s *ReviewsService) Update(input models.UpdateReviewInput) (models.Review, error) {
	if err := s.store.Dispatch(store.ReviewUpdated{Input: input}); err != nil {
		return models.Review{}, err
	}
	review, _ := library.FindReview(s.store.Snapshot().Reviews.Reviews, input.ID)
	return review, nil
}

// Remove deletes a review
func (s *ReviewsService) Remove(id string) error {
	return s.store.Dispatch(store.ReviewRemoved{ID: id})
}

// Average returns a movie's mean rating, and false when it has no reviews
func (s *ReviewsService) Average(movieID int) (float64, bool) {
	return library.AverageRating(s.store.Snapshot().Reviews.Reviews, movieID)
}

func (s *ReviewsService) persist(_, next store.State, action store.Action) {
	if !store.MutatesReviews(action) {
		return
	}
	s.writer.Enqueue(next.Reviews.Reviews)
}

// Flush waits for pending writes to reach the key-value store
func (s *ReviewsService) Flush() {
	s.writer.Flush()
}

// Close flushes pending writes and stops the background writer
func (s *ReviewsService) Close() {
	s.writer.Close()
}
