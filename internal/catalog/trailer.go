package catalog

import (
	"regexp"

	"github.com/liamwears/drcinema/internal/models"
)

const youtubeSite = "YouTube"

var youtubeURLPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&]+)`)

// TrailerKey returns the YouTube video id of a movie's first trailer, or ""
// when none can be resolved. Only the first trailer entry is consulted, and a
// results list without a YouTube entry never yields a key from another site.
func TrailerKey(trailers []models.Trailer) string {
	if len(trailers) == 0 {
		return ""
	}
	t := trailers[0]

	for _, r := range t.Results {
		if r.Site == youtubeSite {
			return r.Key
		}
	}

	if t.URL != "" {
		if match := youtubeURLPattern.FindStringSubmatch(t.URL); match != nil {
			return match[1]
		}
	}

	return ""
}
