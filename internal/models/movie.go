package models

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// FlexString is a string field the upstream API sometimes sends as a number
type FlexString string

// UnmarshalJSON accepts a JSON string, number or null
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// Person is an actor or director credit
type Person struct {
	Name string `json:"name"`
}

// Genre is a genre label in Icelandic and English
type Genre struct {
	ID     int    `json:"ID"`
	Name   string `json:"Name"`
	NameEN string `json:"NameEN"`
}

// Certificate is the age rating attached to a movie
type Certificate struct {
	IS     string `json:"is"`
	Color  string `json:"color"`
	Number string `json:"number"`
}

// Ratings holds the primary record's rating strings
type Ratings struct {
	IMDB           FlexString `json:"imdb"`
	RottenAudience FlexString `json:"rotten_audience"`
	RottenCritics  FlexString `json:"rotten_critics"`
}

// ExternalIDs links a movie to other catalogues
type ExternalIDs struct {
	IMDB   FlexString `json:"imdb"`
	Rotten FlexString `json:"rotten"`
	TMDB   FlexString `json:"tmdb"`
}

// OmdbRating is one rating source inside the override block
type OmdbRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// OmdbData is the external-metadata override block. Its first element, when
// present, takes precedence over the primary record field by field.
type OmdbData struct {
	Title        string       `json:"Title"`
	Year         string       `json:"Year"`
	Rated        string       `json:"Rated"`
	Released     string       `json:"Released"`
	Runtime      string       `json:"Runtime"`
	Genre        string       `json:"Genre"`
	Director     string       `json:"Director"`
	Writer       string       `json:"Writer"`
	Actors       string       `json:"Actors"`
	Plot         string       `json:"Plot"`
	Language     string       `json:"Language"`
	Country      string       `json:"Country"`
	Awards       string       `json:"Awards"`
	Poster       string       `json:"Poster"`
	Ratings      []OmdbRating `json:"Ratings,omitempty"`
	Metascore    string       `json:"Metascore"`
	ImdbRating   string       `json:"imdbRating"`
	ImdbVotes    string       `json:"imdbVotes"`
	ImdbID       string       `json:"imdbID"`
	Type         string       `json:"Type"`
	TomatoMeter  string       `json:"tomatoMeter"`
	TomatoRating string       `json:"tomatoRating"`
	TomatoURL    string       `json:"tomatoURL"`
}

// Schedule is a single screening time with its ticket purchase link
type Schedule struct {
	Time        string `json:"time"`
	PurchaseURL string `json:"purchase_url"`
	Info        string `json:"info,omitempty"`
}

// CinemaRef identifies the cinema a showtime belongs to
type CinemaRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Showtime groups a movie's schedule at one cinema
type Showtime struct {
	Cinema     CinemaRef  `json:"cinema"`
	CinemaName string     `json:"cinema_name,omitempty"`
	Schedule   []Schedule `json:"schedule"`
}

// TrailerResult is one video entry of a trailer payload
type TrailerResult struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Trailer carries either a results list or a raw url
type Trailer struct {
	URL     string          `json:"url,omitempty"`
	Results []TrailerResult `json:"results,omitempty"`
}

// Movie is a movie record as returned by the movies API
type Movie struct {
	MongoID           string      `json:"_id"`
	ID                int         `json:"id"`
	Title             string      `json:"title"`
	Actors            []Person    `json:"actors_abridged"`
	AlternativeTitles string      `json:"alternativeTitles,omitempty"`
	Certificate       Certificate `json:"certificate"`
	CertificateIS     string      `json:"certificateIS"`
	CertificateImg    string      `json:"certificateImg,omitempty"`
	Directors         []Person    `json:"directors_abridged"`
	DurationMinutes   int         `json:"durationMinutes"`
	Genres            []Genre     `json:"genres"`
	IDs               ExternalIDs `json:"ids"`
	Omdb              []OmdbData  `json:"omdb"`
	Plot              string      `json:"plot"`
	Poster            string      `json:"poster"`
	Ratings           Ratings     `json:"ratings"`
	Showtimes         []Showtime  `json:"showtimes"`
	Trailers          []Trailer   `json:"trailers"`
	Year              FlexString  `json:"year"`
}

// Override returns the external-metadata block in effect, or nil
func (m *Movie) Override() *OmdbData {
	if len(m.Omdb) == 0 {
		return nil
	}
	return &m.Omdb[0]
}

// ShowtimesAt returns the showtimes at cinemaID, or all showtimes when
// cinemaID is nil
func (m *Movie) ShowtimesAt(cinemaID *int) []Showtime {
	if cinemaID == nil {
		return m.Showtimes
	}
	var out []Showtime
	for _, st := range m.Showtimes {
		if st.Cinema.ID == *cinemaID {
			out = append(out, st)
		}
	}
	return out
}

// Cinema is a theater as returned by the theaters API
type Cinema struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
}
