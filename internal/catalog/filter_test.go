package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamwears/drcinema/internal/models"
)

func ptr[T any](v T) *T { return &v }

func sampleMovie() models.Movie {
	return models.Movie{
		ID:        1,
		Title:     "Dýrið",
		Omdb:      []models.OmdbData{{Title: "Lamb"}},
		Actors:    []models.Person{{Name: "Noomi Rapace"}, {Name: "Hilmir Snær Guðnason"}},
		Directors: []models.Person{{Name: "Valdimar Jóhannsson"}},
		Certificate: models.Certificate{
			Number: "16",
		},
		Ratings: models.Ratings{IMDB: "7.5", RottenCritics: "86"},
		Showtimes: []models.Showtime{
			showtime(10, "Bíó Paradís", "18:00", "22:30 (ótextuð)"),
			showtime(20, "Sambíóin", "14:00", "Sýning kl. 16:15"),
		},
	}
}

func TestMatches_NoFilters(t *testing.T) {
	m := sampleMovie()
	assert.True(t, Matches(&m, models.FilterState{}, nil))
}

func TestMatches_Title(t *testing.T) {
	m := sampleMovie()

	assert.True(t, Matches(&m, models.FilterState{Title: "LAM"}, nil), "override title is searched")
	assert.False(t, Matches(&m, models.FilterState{Title: "dýrið"}, nil), "primary title is shadowed by the override")
}

func TestMatches_ImdbThreshold(t *testing.T) {
	m := sampleMovie()

	assert.True(t, Matches(&m, models.FilterState{ImdbRating: ptr(7.0)}, nil))
	assert.True(t, Matches(&m, models.FilterState{ImdbRating: ptr(7.5)}, nil))
	assert.False(t, Matches(&m, models.FilterState{ImdbRating: ptr(8.0)}, nil))
}

func TestMatches_MissingRatingCountsAsZero(t *testing.T) {
	m := sampleMovie()
	m.Ratings = models.Ratings{}

	assert.True(t, Matches(&m, models.FilterState{ImdbRating: ptr(0.0)}, nil))
	assert.False(t, Matches(&m, models.FilterState{ImdbRating: ptr(0.1)}, nil))
	assert.False(t, Matches(&m, models.FilterState{RottenRating: ptr(1.0)}, nil))
}

func TestMatches_RottenThreshold(t *testing.T) {
	m := sampleMovie()

	assert.True(t, Matches(&m, models.FilterState{RottenRating: ptr(80.0)}, nil))
	assert.False(t, Matches(&m, models.FilterState{RottenRating: ptr(90.0)}, nil))
}

func TestMatches_People(t *testing.T) {
	m := sampleMovie()

	assert.True(t, Matches(&m, models.FilterState{Actors: "noomi"}, nil))
	assert.True(t, Matches(&m, models.FilterState{Actors: "rapace hilmir"}, nil), "names are space-joined")
	assert.False(t, Matches(&m, models.FilterState{Actors: "björk"}, nil))
	assert.True(t, Matches(&m, models.FilterState{Directors: "JÓHANNSSON"}, nil))
	assert.False(t, Matches(&m, models.FilterState{Directors: "kormákur"}, nil))
}

func TestMatches_PGRatingExact(t *testing.T) {
	m := sampleMovie()

	assert.True(t, Matches(&m, models.FilterState{PGRating: "16"}, nil))
	assert.False(t, Matches(&m, models.FilterState{PGRating: "1"}, nil))
}

func TestMatches_ShowtimeWindow(t *testing.T) {
	m := sampleMovie()

	assert.True(t, Matches(&m, models.FilterState{ShowtimeFrom: "22:00"}, nil))
	assert.True(t, Matches(&m, models.FilterState{ShowtimeTo: "14:00"}, nil), "bounds are inclusive")
	assert.True(t, Matches(&m, models.FilterState{ShowtimeFrom: "16:00", ShowtimeTo: "16:30"}, nil), "time is extracted from surrounding text")
	assert.False(t, Matches(&m, models.FilterState{ShowtimeFrom: "23:00"}, nil))
}

func TestMatches_ShowtimeWindowScopedToCinema(t *testing.T) {
	m := sampleMovie()
	window := models.FilterState{ShowtimeFrom: "13:00", ShowtimeTo: "15:00"}

	assert.True(t, Matches(&m, window, ptr(20)))
	assert.False(t, Matches(&m, window, ptr(10)))
	assert.False(t, Matches(&m, window, ptr(99)))
}

func TestMatches_UnparsableScheduleTimeSkipped(t *testing.T) {
	m := models.Movie{Showtimes: []models.Showtime{showtime(1, "A", "TBA", "9:30")}}

	assert.False(t, Matches(&m, models.FilterState{ShowtimeFrom: "00:00"}, nil))
}

func TestMatches_NoShowtimesFailsWindow(t *testing.T) {
	m := sampleMovie()
	m.Showtimes = nil

	assert.False(t, Matches(&m, models.FilterState{Title: "lamb", ShowtimeTo: "23:59"}, nil))
	assert.True(t, Matches(&m, models.FilterState{Title: "lamb"}, nil))
}

func TestMatches_AllActiveFieldsMustHold(t *testing.T) {
	m := sampleMovie()

	assert.True(t, Matches(&m, models.FilterState{Title: "lamb", ImdbRating: ptr(7.0), PGRating: "16"}, nil))
	assert.False(t, Matches(&m, models.FilterState{Title: "lamb", ImdbRating: ptr(7.0), PGRating: "12"}, nil))
}

func TestFilterSections(t *testing.T) {
	movies := []models.Movie{
		sampleMovie(),
		{ID: 2, Title: "Other", Showtimes: []models.Showtime{showtime(30, "Álfabíó", "20:00")}},
	}
	sections := GroupByCinema(movies)
	require.Len(t, sections, 3)

	assert.Equal(t, sections, FilterSections(sections, models.FilterState{}))

	filtered := FilterSections(sections, models.FilterState{ShowtimeFrom: "21:00"})
	require.Len(t, filtered, 1)
	assert.Equal(t, 10, filtered[0].CinemaID)
	assert.Equal(t, []int{1}, movieIDs(filtered[0].Data))
}

func TestClockTime(t *testing.T) {
	clock, ok := ClockTime("20:00 (Ísl tal)")
	assert.True(t, ok)
	assert.Equal(t, "20:00", clock)

	_, ok = ClockTime("kl. 8")
	assert.False(t, ok)
}

func TestParseRating(t *testing.T) {
	assert.Equal(t, 7.5, parseRating("7.5"))
	assert.Equal(t, 7.5, parseRating("7.5/10"))
	assert.Equal(t, 0.0, parseRating(""))
	assert.Equal(t, 0.0, parseRating("N/A"))
}
