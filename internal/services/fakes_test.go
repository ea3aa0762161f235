package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/liamwears/drcinema/internal/models"
)

// fakeSource is an in-memory MovieSource that counts its calls
type fakeSource struct {
	mu       sync.Mutex
	movies   []models.Movie
	upcoming []models.Movie
	cinemas  []models.Cinema
	err      error

	// block, when set, holds Movies until it is closed
	block   chan struct{}
	started chan struct{}

	movieCalls   atomic.Int32
	singleCalls  atomic.Int32
	cinemaCalls  atomic.Int32
	upcomingCall atomic.Int32
}

func (f *fakeSource) Movies(ctx context.Context) ([]models.Movie, error) {
	f.movieCalls.Add(1)
	if f.block != nil {
		if f.started != nil {
			close(f.started)
		}
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.movies, f.err
}

func (f *fakeSource) Upcoming(ctx context.Context) ([]models.Movie, error) {
	f.upcomingCall.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upcoming, f.err
}

func (f *fakeSource) Cinemas(ctx context.Context) ([]models.Cinema, error) {
	f.cinemaCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cinemas, f.err
}

func (f *fakeSource) Movie(ctx context.Context, id int) (*models.Movie, error) {
	f.singleCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range append(f.movies, f.upcoming...) {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, &APIError{StatusCode: 404, Body: "not found"}
}

var errStorage = errors.New("disk full")

// failingKV fails every read and write
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errStorage }
func (failingKV) Set(context.Context, string, string) error         { return errStorage }

func showingAt(id int, title string, cinemaID int, cinemaName string, times ...string) models.Movie {
	schedule := make([]models.Schedule, 0, len(times))
	for _, t := range times {
		schedule = append(schedule, models.Schedule{Time: t, PurchaseURL: "https://tix.is/" + t})
	}
	return models.Movie{
		ID:    id,
		Title: title,
		Showtimes: []models.Showtime{{
			Cinema:   models.CinemaRef{ID: cinemaID, Name: cinemaName},
			Schedule: schedule,
		}},
	}
}
