package catalog

import (
	"sort"

	"github.com/liamwears/drcinema/internal/models"
)

// SortUpcoming returns upcoming movies ordered by release label ascending.
// Labels are compared as plain strings; movies with no release information
// sort first.
func SortUpcoming(movies []models.Movie) []models.Movie {
	sorted := make([]models.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return releaseKey(&sorted[i]) < releaseKey(&sorted[j])
	})
	return sorted
}
