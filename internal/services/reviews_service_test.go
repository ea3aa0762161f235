package services

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/database"
	"github.com/liamwears/drcinema/internal/library"
	"github.com/liamwears/drcinema/internal/models"
	"github.com/liamwears/drcinema/internal/store"
)

func newReviews(t *testing.T, kv database.KVStore) *ReviewsService {
	t.Helper()
	svc := NewReviewsService(store.New(), kv, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	t.Cleanup(svc.Close)
	return svc
}

func TestReviewsService_Lifecycle(t *testing.T) {
	kv := database.NewMemoryKV()
	svc := newReviews(t, kv)

	first, err := svc.Add(models.CreateReviewInput{MovieID: 1, Rating: 4, Text: "Góð"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, fixedNow, first.CreatedAt)

	_, err = svc.Add(models.CreateReviewInput{MovieID: 1, Rating: 3})
	require.NoError(t, err)
	_, err = svc.Add(models.CreateReviewInput{MovieID: 2, Rating: 1})
	require.NoError(t, err)

	avg, ok := svc.Average(1)
	require.True(t, ok)
	assert.Equal(t, 3.5, avg)

	movieID := 1
	assert.Len(t, svc.List(&movieID), 2)
	assert.Len(t, svc.List(nil), 3)

	text := "Frábær"
	updated, err := svc.Update(models.UpdateReviewInput{ID: first.ID, Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "Frábær", updated.Text)
	assert.Equal(t, 4, updated.Rating)

	require.NoError(t, svc.Remove(first.ID))
	assert.ErrorIs(t, svc.Remove(first.ID), library.ErrReviewNotFound)

	svc.Flush()
	raw, ok, err := kv.Get(context.Background(), ReviewsKey)
	require.NoError(t, err)
	require.True(t, ok)
	var stored []models.Review
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Len(t, stored, 2)
}

func TestReviewsService_UpdateUnknown(t *testing.T) {
	svc := newReviews(t, database.NewMemoryKV())

	rating := 5
	_, err := svc.Update(models.UpdateReviewInput{ID: "nope", Rating: &rating})
	assert.ErrorIs(t, err, library.ErrReviewNotFound)
}

func TestReviewsService_LoadFromStorage(t *testing.T) {
	kv := database.NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), ReviewsKey,
		`[{"id":"r1","movieId":3,"rating":5,"text":"","createdAt":"2025-01-01T00:00:00Z"}]`))

	svc := newReviews(t, kv)
	svc.Load(context.Background())

	reviews := svc.List(nil)
	require.Len(t, reviews, 1)
	assert.Equal(t, "r1", reviews[0].ID)
}

func TestReviewsService_EmptyStorage(t *testing.T) {
	svc := newReviews(t, database.NewMemoryKV())
	svc.Load(context.Background())

	assert.NotNil(t, svc.List(nil))
	assert.Empty(t, svc.List(nil))
	_, ok := svc.Average(1)
	assert.False(t, ok)
}
