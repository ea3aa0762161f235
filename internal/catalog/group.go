package catalog

import (
	"github.com/liamwears/drcinema/internal/models"
)

// Section is the movies screening at one cinema
type Section struct {
	Title    string         `json:"title"`
	CinemaID int            `json:"cinemaId"`
	Data     []models.Movie `json:"data"`
}

// GroupByCinema partitions movies into one section per cinema that appears in
// any showtime. A movie is listed at most once per cinema and movies without
// showtimes appear in no section. Sections are ordered by cinema name under
// Icelandic collation; equal names keep first-encountered order.
func GroupByCinema(movies []models.Movie) []Section {
	var sections []Section
	index := make(map[int]int)
	seen := make(map[[2]int]struct{})

	for _, movie := range movies {
		for _, st := range movie.Showtimes {
			cinemaID := st.Cinema.ID

			pos, ok := index[cinemaID]
			if !ok {
				pos = len(sections)
				index[cinemaID] = pos
				sections = append(sections, Section{
					Title:    st.Cinema.Name,
					CinemaID: cinemaID,
					Data:     []models.Movie{},
				})
			}

			pair := [2]int{movie.ID, cinemaID}
			if _, dup := seen[pair]; dup {
				continue
			}
			seen[pair] = struct{}{}
			sections[pos].Data = append(sections[pos].Data, movie)
		}
	}

	SortSections(sections)
	return sections
}

// SortSections orders sections in place by title under Icelandic collation
func SortSections(sections []Section) {
	sortByName(len(sections),
		func(i int) string { return sections[i].Title },
		func(i, j int) { sections[i], sections[j] = sections[j], sections[i] },
	)
}

// SortCinemas returns the cinemas ordered by name under Icelandic collation
func SortCinemas(cinemas []models.Cinema) []models.Cinema {
	sorted := make([]models.Cinema, len(cinemas))
	copy(sorted, cinemas)
	sortByName(len(sorted),
		func(i int) string { return sorted[i].Name },
		func(i, j int) { sorted[i], sorted[j] = sorted[j], sorted[i] },
	)
	return sorted
}

// MoviesAtCinema returns the movies with at least one showtime at cinemaID,
// in input order
func MoviesAtCinema(movies []models.Movie, cinemaID int) []models.Movie {
	out := []models.Movie{}
	for _, movie := range movies {
		for _, st := range movie.Showtimes {
			if st.Cinema.ID == cinemaID {
				out = append(out, movie)
				break
			}
		}
	}
	return out
}
