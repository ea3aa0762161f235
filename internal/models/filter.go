package models

// FilterState is the user-supplied movie filter. Every field is optional; an
// empty string or nil threshold imposes no constraint.
type FilterState struct {
	Title        string   `json:"title"`
	ImdbRating   *float64 `json:"imdbRating" validate:"omitempty,min=0,max=10"`
	RottenRating *float64 `json:"rottenRating" validate:"omitempty,min=0,max=100"`
	ShowtimeFrom string   `json:"showtimeFrom" validate:"omitempty,hhmm"`
	ShowtimeTo   string   `json:"showtimeTo" validate:"omitempty,hhmm"`
	Actors       string   `json:"actors"`
	Directors    string   `json:"directors"`
	PGRating     string   `json:"pgRating"`
}

// IsActive reports whether any field constrains the result
func (f FilterState) IsActive() bool {
	return f.Title != "" ||
		f.ImdbRating != nil ||
		f.RottenRating != nil ||
		f.ShowtimeFrom != "" ||
		f.ShowtimeTo != "" ||
		f.Actors != "" ||
		f.Directors != "" ||
		f.PGRating != ""
}

// HasShowtimeWindow reports whether either showtime bound is set
func (f FilterState) HasShowtimeWindow() bool {
	return f.ShowtimeFrom != "" || f.ShowtimeTo != ""
}

// FilterPatch is a partial filter update; nil fields are left unchanged
type FilterPatch struct {
	Title        *string  `json:"title,omitempty"`
	ImdbRating   *float64 `json:"imdbRating,omitempty" validate:"omitempty,min=0,max=10"`
	RottenRating *float64 `json:"rottenRating,omitempty" validate:"omitempty,min=0,max=100"`
	ShowtimeFrom *string  `json:"showtimeFrom,omitempty" validate:"omitempty,hhmm"`
	ShowtimeTo   *string  `json:"showtimeTo,omitempty" validate:"omitempty,hhmm"`
	Actors       *string  `json:"actors,omitempty"`
	Directors    *string  `json:"directors,omitempty"`
	PGRating     *string  `json:"pgRating,omitempty"`

	// ClearImdbRating and ClearRottenRating reset a threshold to unset,
	// since a JSON null cannot be told apart from an absent field
	ClearImdbRating   bool `json:"clearImdbRating,omitempty"`
	ClearRottenRating bool `json:"clearRottenRating,omitempty"`
}

// Apply merges the patch into f and returns the result
func (p FilterPatch) Apply(f FilterState) FilterState {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.ImdbRating != nil {
		v := *p.ImdbRating
		f.ImdbRating = &v
	}
	if p.ClearImdbRating {
		f.ImdbRating = nil
	}
	if p.RottenRating != nil {
		v := *p.RottenRating
		f.RottenRating = &v
	}
	if p.ClearRottenRating {
		f.RottenRating = nil
	}
	if p.ShowtimeFrom != nil {
		f.ShowtimeFrom = *p.ShowtimeFrom
	}
	if p.ShowtimeTo != nil {
		f.ShowtimeTo = *p.ShowtimeTo
	}
	if p.Actors != nil {
		f.Actors = *p.Actors
	}
	if p.Directors != nil {
		f.Directors = *p.Directors
	}
	if p.PGRating != nil {
		f.PGRating = *p.PGRating
	}
	return f
}
