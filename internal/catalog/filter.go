package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/liamwears/drcinema/internal/models"
)

var (
	clockPattern  = regexp.MustCompile(`(\d{2}:\d{2})`)
	leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Matches reports whether a movie satisfies every active field of filters.
// When cinemaID is non-nil the showtime window only considers showtimes at
// that cinema.
func Matches(m *models.Movie, filters models.FilterState, cinemaID *int) bool {
	if filters.Title != "" {
		if !containsFold(Title(m), filters.Title) {
			return false
		}
	}

	if filters.ImdbRating != nil {
		if parseRating(string(m.Ratings.IMDB)) < *filters.ImdbRating {
			return false
		}
	}

	if filters.RottenRating != nil {
		if parseRating(string(m.Ratings.RottenCritics)) < *filters.RottenRating {
			return false
		}
	}

	if filters.Actors != "" {
		if !strings.Contains(joinNames(m.Actors), strings.ToLower(filters.Actors)) {
			return false
		}
	}

	if filters.Directors != "" {
		if !strings.Contains(joinNames(m.Directors), strings.ToLower(filters.Directors)) {
			return false
		}
	}

	if filters.PGRating != "" && m.Certificate.Number != filters.PGRating {
		return false
	}

	if filters.HasShowtimeWindow() && !hasShowtimeWithin(m, filters, cinemaID) {
		return false
	}

	return true
}

// FilterSections applies filters to every section, scoped to the section's
// cinema, and drops sections left empty. Inactive filters return the input.
func FilterSections(sections []Section, filters models.FilterState) []Section {
	if !filters.IsActive() {
		return sections
	}

	out := make([]Section, 0, len(sections))
	for _, section := range sections {
		cinemaID := section.CinemaID
		var kept []models.Movie
		for i := range section.Data {
			if Matches(&section.Data[i], filters, &cinemaID) {
				kept = append(kept, section.Data[i])
			}
		}
		if len(kept) == 0 {
			continue
		}
		section.Data = kept
		out = append(out, section)
	}
	return out
}

// ClockTime extracts the first HH:MM substring of a schedule time, if any
func ClockTime(s string) (string, bool) {
	match := clockPattern.FindStringSubmatch(s)
	if match == nil {
		return "", false
	}
	return match[1], true
}

func hasShowtimeWithin(m *models.Movie, filters models.FilterState, cinemaID *int) bool {
	for _, st := range m.ShowtimesAt(cinemaID) {
		for _, s := range st.Schedule {
			clock, ok := ClockTime(s.Time)
			if !ok {
				continue
			}
			// zero-padded 24h times order correctly as strings
			if filters.ShowtimeFrom != "" && clock < filters.ShowtimeFrom {
				continue
			}
			if filters.ShowtimeTo != "" && clock > filters.ShowtimeTo {
				continue
			}
			return true
		}
	}
	return false
}

// parseRating reads the leading number of a rating string. Absent or
// unparsable ratings count as zero.
func parseRating(s string) float64 {
	prefix := leadingNumber.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return v
}

func joinNames(people []models.Person) string {
	names := make([]string, len(people))
	for i, p := range people {
		names[i] = strings.ToLower(p.Name)
	}
	return strings.Join(names, " ")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
