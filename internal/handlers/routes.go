package handlers

import "net/http"

// API groups the handlers served under /api/
type API struct {
	Catalog    *CatalogHandler
	Filters    *FilterHandler
	Favourites *FavouriteHandler
	Reviews    *ReviewHandler
}

// Routes registers every API route on a new mux
func (a API) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/movies", a.Catalog.NowShowing)
	mux.HandleFunc("GET /api/movies/{id}", a.Catalog.Movie)
	mux.HandleFunc("GET /api/upcoming", a.Catalog.Upcoming)
	mux.HandleFunc("GET /api/cinemas", a.Catalog.Cinemas)
	mux.HandleFunc("GET /api/cinemas/{id}", a.Catalog.Cinema)
	mux.HandleFunc("POST /api/refresh", a.Catalog.Refresh)

	mux.HandleFunc("GET /api/filters", a.Filters.Get)
	mux.HandleFunc("PUT /api/filters", a.Filters.Set)
	mux.HandleFunc("DELETE /api/filters", a.Filters.Clear)

	mux.HandleFunc("GET /api/favourites", a.Favourites.List)
	mux.HandleFunc("POST /api/favourites", a.Favourites.Add)
	mux.HandleFunc("DELETE /api/favourites/{id}", a.Favourites.Remove)
	mux.HandleFunc("POST /api/favourites/reorder", a.Favourites.Reorder)

	mux.HandleFunc("GET /api/reviews", a.Reviews.List)
	mux.HandleFunc("POST /api/reviews", a.Reviews.Create)
	mux.HandleFunc("PATCH /api/reviews/{id}", a.Reviews.Update)
	mux.HandleFunc("DELETE /api/reviews/{id}", a.Reviews.Delete)

	return mux
}
