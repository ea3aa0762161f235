package catalog

import (
	"strings"

	"github.com/liamwears/drcinema/internal/models"
)

// posterSentinel is the value the metadata source uses for "no poster"
const posterSentinel = "N/A"

// MovieView is the canonical display form of a movie record
type MovieView struct {
	Title        string `json:"title"`
	Poster       string `json:"poster"`
	Year         string `json:"year"`
	GenreLabel   string `json:"genres"`
	ImdbRating   string `json:"imdbRating,omitempty"`
	RottenRating string `json:"rottenRating,omitempty"`
}

// Normalize resolves the title, poster, year, genre and rating fields of a
// movie. The override block wins per field, so a movie may show an override
// title alongside the primary poster.
func Normalize(m *models.Movie) MovieView {
	o := m.Override()

	view := MovieView{
		Title:      m.Title,
		Poster:     m.Poster,
		Year:       string(m.Year),
		GenreLabel: genreLabel(m, o),
		ImdbRating: string(m.Ratings.IMDB),
	}

	if rotten := string(m.Ratings.RottenCritics); rotten != "0" {
		view.RottenRating = rotten
	}

	if o != nil {
		if o.Title != "" {
			view.Title = o.Title
		}
		if o.Poster != "" && o.Poster != posterSentinel {
			view.Poster = o.Poster
		}
		if o.Year != "" {
			view.Year = o.Year
		}
	}

	return view
}

// Title returns only the normalized title
func Title(m *models.Movie) string {
	if o := m.Override(); o != nil && o.Title != "" {
		return o.Title
	}
	return m.Title
}

// Plot prefers the override plot over the primary one
func Plot(m *models.Movie) string {
	if o := m.Override(); o != nil && o.Plot != "" {
		return o.Plot
	}
	return m.Plot
}

// ReleaseLabel is the release date shown for upcoming movies: the override
// release date, else the year, else "TBA".
func ReleaseLabel(m *models.Movie) string {
	if key := releaseKey(m); key != "" {
		return key
	}
	return "TBA"
}

func releaseKey(m *models.Movie) string {
	if o := m.Override(); o != nil && o.Released != "" {
		return o.Released
	}
	return string(m.Year)
}

func genreLabel(m *models.Movie, o *models.OmdbData) string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.NameEN)
	}
	if label := strings.Join(names, ", "); label != "" {
		return label
	}
	if o != nil {
		return o.Genre
	}
	return ""
}

// Directors is the director credit line: the override text when present,
// else the primary names joined with ", "
func Directors(m *models.Movie) string {
	if o := m.Override(); o != nil && o.Director != "" {
		return o.Director
	}
	return creditLine(m.Directors)
}

// Actors is the cast line, resolved like Directors
func Actors(m *models.Movie) string {
	if o := m.Override(); o != nil && o.Actors != "" {
		return o.Actors
	}
	return creditLine(m.Actors)
}

func creditLine(people []models.Person) string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
