package catalog

import "github.com/liamwears/drcinema/internal/models"

// MovieCard is a list entry for a movie, optionally scoped to one cinema
type MovieCard struct {
	ID int `json:"id"`
	MovieView
	Certificate models.Certificate `json:"certificate"`
	Showtimes   []models.Showtime  `json:"showtimes"`
}

// CardSection is a Section rendered as cards
type CardSection struct {
	Title    string      `json:"title"`
	CinemaID int         `json:"cinemaId"`
	Data     []MovieCard `json:"data"`
}

// UpcomingItem is a list entry on the upcoming releases screen
type UpcomingItem struct {
	ID int `json:"id"`
	MovieView
	ReleaseDate string `json:"releaseDate"`
	TrailerKey  string `json:"trailerKey,omitempty"`
	HasTrailer  bool   `json:"hasTrailer"`
}

// NewMovieCard builds a card; showtimes are limited to cinemaID when given
func NewMovieCard(m *models.Movie, cinemaID *int) MovieCard {
	showtimes := m.ShowtimesAt(cinemaID)
	if showtimes == nil {
		showtimes = []models.Showtime{}
	}
	return MovieCard{
		ID:          m.ID,
		MovieView:   Normalize(m),
		Certificate: m.Certificate,
		Showtimes:   showtimes,
	}
}

// NewCardSections renders sections as cards scoped to each section's cinema
func NewCardSections(sections []Section) []CardSection {
	out := make([]CardSection, 0, len(sections))
	for _, section := range sections {
		cinemaID := section.CinemaID
		cards := make([]MovieCard, 0, len(section.Data))
		for i := range section.Data {
			cards = append(cards, NewMovieCard(&section.Data[i], &cinemaID))
		}
		out = append(out, CardSection{Title: section.Title, CinemaID: cinemaID, Data: cards})
	}
	return out
}

// NewUpcomingItems sorts upcoming movies by release and renders them
func NewUpcomingItems(movies []models.Movie) []UpcomingItem {
	sorted := SortUpcoming(movies)
	items := make([]UpcomingItem, 0, len(sorted))
	for i := range sorted {
		m := &sorted[i]
		key := TrailerKey(m.Trailers)
		items = append(items, UpcomingItem{
			ID:          m.ID,
			MovieView:   Normalize(m),
			ReleaseDate: ReleaseLabel(m),
			TrailerKey:  key,
			HasTrailer:  key != "",
		})
	}
	return items
}

// CinemaView is a cinema together with its outbound links
type CinemaView struct {
	models.Cinema
	PhoneLink   string `json:"phoneLink,omitempty"`
	WebsiteLink string `json:"websiteLink,omitempty"`
}

// NewCinemaView attaches the dialer and browser links to c
func NewCinemaView(c models.Cinema) CinemaView {
	return CinemaView{
		Cinema:      c,
		PhoneLink:   PhoneLink(c.Phone),
		WebsiteLink: WebsiteLink(c.Website),
	}
}

// NewCinemaViews orders cinemas by name and attaches their links
func NewCinemaViews(cinemas []models.Cinema) []CinemaView {
	sorted := SortCinemas(cinemas)
	out := make([]CinemaView, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, NewCinemaView(c))
	}
	return out
}
