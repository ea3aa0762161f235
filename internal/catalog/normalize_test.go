package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liamwears/drcinema/internal/models"
)

func TestNormalize_PrimaryOnly(t *testing.T) {
	m := &models.Movie{
		Title:  "Dýrið",
		Poster: "https://img/primary.jpg",
		Year:   "2021",
		Genres: []models.Genre{{NameEN: "Drama"}, {NameEN: "Horror"}},
		Ratings: models.Ratings{
			IMDB:          "7.1",
			RottenCritics: "86",
		},
	}

	view := Normalize(m)

	assert.Equal(t, MovieView{
		Title:        "Dýrið",
		Poster:       "https://img/primary.jpg",
		Year:         "2021",
		GenreLabel:   "Drama, Horror",
		ImdbRating:   "7.1",
		RottenRating: "86",
	}, view)
}

func TestNormalize_OverrideWinsPerField(t *testing.T) {
	m := &models.Movie{
		Title:  "Dýrið",
		Poster: "https://img/primary.jpg",
		Year:   "2021",
		Omdb: []models.OmdbData{{
			Title:  "Lamb",
			Poster: "N/A",
			Year:   "2022",
			Genre:  "Drama, Fantasy",
		}},
	}

	view := Normalize(m)

	assert.Equal(t, "Lamb", view.Title)
	assert.Equal(t, "https://img/primary.jpg", view.Poster, "sentinel poster must not replace the primary one")
	assert.Equal(t, "2022", view.Year)
	assert.Equal(t, "Drama, Fantasy", view.GenreLabel, "override genre is used when the primary has none")
}

func TestNormalize_OverridePoster(t *testing.T) {
	m := &models.Movie{
		Poster: "https://img/primary.jpg",
		Omdb:   []models.OmdbData{{Poster: "https://img/omdb.jpg"}},
	}

	assert.Equal(t, "https://img/omdb.jpg", Normalize(m).Poster)
}

func TestNormalize_SentinelPosterAlwaysFallsBack(t *testing.T) {
	posters := []string{"", "https://img/a.jpg", "https://img/b.jpg"}
	for _, primary := range posters {
		m := &models.Movie{Poster: primary, Omdb: []models.OmdbData{{Poster: "N/A"}}}
		assert.Equal(t, primary, Normalize(m).Poster)
	}
}

func TestNormalize_PrimaryGenresWinOverOverride(t *testing.T) {
	m := &models.Movie{
		Genres: []models.Genre{{NameEN: "Comedy"}},
		Omdb:   []models.OmdbData{{Genre: "Drama"}},
	}

	assert.Equal(t, "Comedy", Normalize(m).GenreLabel)
}

func TestNormalize_RottenZeroIsAbsent(t *testing.T) {
	m := &models.Movie{Ratings: models.Ratings{IMDB: "6.0", RottenCritics: "0"}}

	view := Normalize(m)
	assert.Equal(t, "6.0", view.ImdbRating)
	assert.Empty(t, view.RottenRating)
}

func TestNormalize_EmptyMovie(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, MovieView{}, Normalize(&models.Movie{}))
	})
}

func TestPlotAndReleaseLabel(t *testing.T) {
	m := &models.Movie{Plot: "primary plot", Year: "2025"}
	assert.Equal(t, "primary plot", Plot(m))
	assert.Equal(t, "2025", ReleaseLabel(m))

	m.Omdb = []models.OmdbData{{Plot: "override plot", Released: "2025-11-20"}}
	assert.Equal(t, "override plot", Plot(m))
	assert.Equal(t, "2025-11-20", ReleaseLabel(m))

	assert.Equal(t, "TBA", ReleaseLabel(&models.Movie{}))
}

func TestCredits(t *testing.T) {
	m := models.Movie{
		Directors: []models.Person{{Name: "Valdimar Jóhannsson"}},
		Actors:    []models.Person{{Name: "Noomi Rapace"}, {Name: "Hilmir Snær Guðnason"}},
	}
	assert.Equal(t, "Valdimar Jóhannsson", Directors(&m))
	assert.Equal(t, "Noomi Rapace, Hilmir Snær Guðnason", Actors(&m))

	m.Omdb = []models.OmdbData{{Director: "V. Jóhannsson"}}
	assert.Equal(t, "V. Jóhannsson", Directors(&m))
	assert.Equal(t, "Noomi Rapace, Hilmir Snær Guðnason", Actors(&m))
}
