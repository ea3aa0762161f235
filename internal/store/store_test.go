package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamwears/drcinema/internal/library"
	"github.com/liamwears/drcinema/internal/models"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func TestReduce_MoviesLifecycle(t *testing.T) {
	s, err := Reduce(State{Movies: MoviesState{Error: "old"}}, MoviesRequested{})
	require.NoError(t, err)
	assert.True(t, s.Movies.Loading)
	assert.Empty(t, s.Movies.Error)

	s, err = Reduce(s, MoviesLoaded{Movies: []models.Movie{{ID: 1}}})
	require.NoError(t, err)
	assert.False(t, s.Movies.Loading)
	assert.Len(t, s.Movies.Movies, 1)

	s, err = Reduce(s, MoviesFailed{Err: "request failed: 500"})
	require.NoError(t, err)
	assert.Equal(t, "request failed: 500", s.Movies.Error)
	assert.Len(t, s.Movies.Movies, 1, "a failed refresh keeps the previous collection")
}

func TestReduce_MovieLoadedRefreshesListedMovie(t *testing.T) {
	s := State{Movies: MoviesState{Movies: []models.Movie{{ID: 1, Title: "a"}}}}

	next, err := Reduce(s, MovieLoaded{Movie: models.Movie{ID: 1, Title: "b"}})
	require.NoError(t, err)
	assert.Equal(t, "b", next.Movies.Movies[0].Title)
	assert.Equal(t, "a", s.Movies.Movies[0].Title, "previous snapshot is untouched")
}

func TestReduce_MovieLoadedStaysOutOfNowShowing(t *testing.T) {
	s, err := Reduce(State{}, MovieLoaded{Movie: models.Movie{ID: 2, Title: "Snerting"}})
	require.NoError(t, err)
	assert.Empty(t, s.Movies.Movies)

	m, ok := s.FindMovie(2)
	require.True(t, ok)
	assert.Equal(t, "Snerting", m.Title)

	next, err := Reduce(s, MovieLoaded{Movie: models.Movie{ID: 3}})
	require.NoError(t, err)
	assert.Len(t, next.Movies.ByID, 2)
	assert.Len(t, s.Movies.ByID, 1, "previous snapshot is untouched")
}

func TestReduce_Filters(t *testing.T) {
	title := "lamb"
	s, err := Reduce(State{}, FiltersSet{Patch: models.FilterPatch{Title: &title}})
	require.NoError(t, err)
	assert.Equal(t, "lamb", s.Movies.Filters.Title)

	s, err = Reduce(s, FiltersCleared{})
	require.NoError(t, err)
	assert.False(t, s.Movies.Filters.IsActive())
}

func TestReduce_Favourites(t *testing.T) {
	s := State{}
	var err error
	for _, id := range []int{1, 2, 3} {
		s, err = Reduce(s, FavouriteAdded{Movie: models.Movie{ID: id}, At: now})
		require.NoError(t, err)
	}

	s, err = Reduce(s, FavouritesReordered{From: 0, To: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Favourites.Favourites[0].ID)
	assert.Equal(t, 1, s.Favourites.Favourites[2].ID)

	_, err = Reduce(s, FavouritesReordered{From: 5, To: 0})
	assert.ErrorIs(t, err, library.ErrIndexOutOfRange)

	_, err = Reduce(s, FavouriteRemoved{MovieID: 99})
	assert.ErrorIs(t, err, library.ErrFavouriteNotFound)

	s, err = Reduce(s, FavouriteRemoved{MovieID: 3})
	require.NoError(t, err)
	assert.Len(t, s.Favourites.Favourites, 2)
}

func TestReduce_Reviews(t *testing.T) {
	s, err := Reduce(State{}, ReviewAdded{Review: models.Review{ID: "a", MovieID: 1, Rating: 3}})
	require.NoError(t, err)

	rating := 4
	s, err = Reduce(s, ReviewUpdated{Input: models.UpdateReviewInput{ID: "a", Rating: &rating}})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Reviews.Reviews[0].Rating)

	_, err = Reduce(s, ReviewRemoved{ID: "zzz"})
	assert.ErrorIs(t, err, library.ErrReviewNotFound)

	s, err = Reduce(s, ReviewRemoved{ID: "a"})
	require.NoError(t, err)
	assert.Empty(t, s.Reviews.Reviews)
}

func TestStore_DispatchNotifiesInOrder(t *testing.T) {
	st := New()

	var seen []string
	st.Subscribe(func(prev, next State, action Action) {
		seen = append(seen, action.Type())
	})

	require.NoError(t, st.Dispatch(MoviesRequested{}))
	require.NoError(t, st.Dispatch(MoviesLoaded{Movies: []models.Movie{{ID: 1}}}))

	assert.Equal(t, []string{"movies/fetch/pending", "movies/fetch/fulfilled"}, seen)
	assert.Len(t, st.Snapshot().Movies.Movies, 1)
}

func TestStore_ApplyReturnsItsOwnTransition(t *testing.T) {
	st := New()

	added, err := st.Apply(FavouriteAdded{Movie: models.Movie{ID: 1, Title: "Lamb"}, At: now})
	require.NoError(t, err)
	require.NoError(t, st.Dispatch(FavouriteRemoved{MovieID: 1}))

	assert.Empty(t, st.Snapshot().Favourites.Favourites)
	require.Len(t, added.Favourites.Favourites, 1)
	assert.Equal(t, "Lamb", added.Favourites.Favourites[0].Title)

	unchanged, err := st.Apply(FavouriteRemoved{MovieID: 1})
	assert.ErrorIs(t, err, library.ErrFavouriteNotFound)
	assert.Empty(t, unchanged.Favourites.Favourites)
}

func TestStore_ReducerErrorDoesNotNotify(t *testing.T) {
	st := New()
	called := false
	st.Subscribe(func(prev, next State, action Action) { called = true })

	err := st.Dispatch(FavouriteRemoved{MovieID: 1})
	assert.ErrorIs(t, err, library.ErrFavouriteNotFound)
	assert.False(t, called)
}

func TestStore_Unsubscribe(t *testing.T) {
	st := New()
	count := 0
	unsubscribe := st.Subscribe(func(prev, next State, action Action) { count++ })

	require.NoError(t, st.Dispatch(FiltersCleared{}))
	unsubscribe()
	require.NoError(t, st.Dispatch(FiltersCleared{}))

	assert.Equal(t, 1, count)
}

func TestStore_ListenerSeesPrevAndNext(t *testing.T) {
	st := New()
	st.Subscribe(func(prev, next State, action Action) {
		assert.Empty(t, prev.Favourites.Favourites)
		assert.Len(t, next.Favourites.Favourites, 1)
	})

	require.NoError(t, st.Dispatch(FavouriteAdded{Movie: models.Movie{ID: 1}, At: now}))
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	st := New()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = st.Dispatch(FavouriteAdded{Movie: models.Movie{ID: id}, At: now})
			_ = st.Snapshot()
		}(i)
	}
	wg.Wait()

	favs := st.Snapshot().Favourites.Favourites
	require.Len(t, favs, 50)
	for i, f := range favs {
		assert.Equal(t, i, f.Order)
	}
}

func TestState_Find(t *testing.T) {
	s := State{
		Movies:  MoviesState{Movies: []models.Movie{{ID: 1}}, Upcoming: []models.Movie{{ID: 2}}},
		Cinemas: CinemasState{Cinemas: []models.Cinema{{ID: 7, Name: "Bíó Paradís"}}},
	}

	_, ok := s.FindMovie(2)
	assert.True(t, ok)
	_, ok = s.FindMovie(3)
	assert.False(t, ok)

	c, ok := s.FindCinema(7)
	assert.True(t, ok)
	assert.Equal(t, "Bíó Paradís", c.Name)
}

func TestMutates(t *testing.T) {
	assert.True(t, MutatesFavourites(FavouriteAdded{}))
	assert.False(t, MutatesFavourites(FavouritesSet{}))
	assert.True(t, MutatesReviews(ReviewUpdated{}))
	assert.False(t, MutatesReviews(ReviewsSet{}))
}
