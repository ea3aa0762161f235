package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamwears/drcinema/internal/models"
)

func showtime(cinemaID int, name string, times ...string) models.Showtime {
	st := models.Showtime{Cinema: models.CinemaRef{ID: cinemaID, Name: name}}
	for _, tm := range times {
		st.Schedule = append(st.Schedule, models.Schedule{Time: tm, PurchaseURL: "https://tickets/" + tm})
	}
	return st
}

func movieIDs(movies []models.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func TestGroupByCinema(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Showtimes: []models.Showtime{
			showtime(20, "Sambíóin", "18:00"),
			showtime(10, "Bíóhöllin", "20:00"),
		}},
		{ID: 2},
		{ID: 3, Showtimes: []models.Showtime{
			showtime(30, "Álfabíó", "17:00"),
			showtime(20, "Sambíóin", "21:00"),
		}},
	}

	sections := GroupByCinema(movies)
	require.Len(t, sections, 3)

	assert.Equal(t, "Álfabíó", sections[0].Title)
	assert.Equal(t, 30, sections[0].CinemaID)
	assert.Equal(t, []int{3}, movieIDs(sections[0].Data))

	assert.Equal(t, "Bíóhöllin", sections[1].Title)
	assert.Equal(t, []int{1}, movieIDs(sections[1].Data))

	assert.Equal(t, "Sambíóin", sections[2].Title)
	assert.Equal(t, []int{1, 3}, movieIDs(sections[2].Data), "input order is kept within a section")
}

func TestGroupByCinema_DuplicateShowtimesAtSameCinema(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Showtimes: []models.Showtime{
			showtime(10, "Laugarásbíó", "18:00"),
			showtime(10, "Laugarásbíó", "22:00"),
		}},
	}

	sections := GroupByCinema(movies)
	require.Len(t, sections, 1)
	assert.Equal(t, []int{1}, movieIDs(sections[0].Data))
}

func TestGroupByCinema_NoShowtimes(t *testing.T) {
	assert.Empty(t, GroupByCinema([]models.Movie{{ID: 1}, {ID: 2}}))
	assert.Empty(t, GroupByCinema(nil))
}

func TestGroupByCinema_CaseInsensitiveAndStableTies(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Showtimes: []models.Showtime{
			showtime(2, "bíó paradís"),
			showtime(5, "Akureyri"),
			showtime(1, "Bíó Paradís"),
		}},
	}

	sections := GroupByCinema(movies)
	require.Len(t, sections, 3)
	assert.Equal(t, 5, sections[0].CinemaID)
	// equal under case-insensitive collation, first encountered first
	assert.Equal(t, 2, sections[1].CinemaID)
	assert.Equal(t, 1, sections[2].CinemaID)
}

func TestSortCinemas(t *testing.T) {
	cinemas := []models.Cinema{
		{ID: 1, Name: "Sambíóin Egilshöll"},
		{ID: 2, Name: "Álfabakki"},
		{ID: 3, Name: "Bíó Paradís"},
		{ID: 4, Name: "Akureyri"},
	}

	sorted := SortCinemas(cinemas)

	names := make([]string, len(sorted))
	for i, c := range sorted {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Akureyri", "Álfabakki", "Bíó Paradís", "Sambíóin Egilshöll"}, names)
	assert.Equal(t, "Sambíóin Egilshöll", cinemas[0].Name, "input is not reordered")
}

func TestMoviesAtCinema(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Showtimes: []models.Showtime{showtime(10, "A"), showtime(10, "A")}},
		{ID: 2, Showtimes: []models.Showtime{showtime(11, "B")}},
		{ID: 3, Showtimes: []models.Showtime{showtime(11, "B"), showtime(10, "A")}},
	}

	assert.Equal(t, []int{1, 3}, movieIDs(MoviesAtCinema(movies, 10)))
	assert.Empty(t, MoviesAtCinema(movies, 99))
}

func TestSortUpcoming(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Year: "2026"},
		{ID: 2, Omdb: []models.OmdbData{{Released: "2025-12-01"}}},
		{ID: 3},
		{ID: 4, Year: "2025-11-30"},
	}

	assert.Equal(t, []int{3, 4, 2, 1}, movieIDs(SortUpcoming(movies)))
}
