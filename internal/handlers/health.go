package handlers

import (
	"context"
	"net/http"
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// HealthHandler reports the state of the storage connections and the movies
// API circuit breaker
type HealthHandler struct {
	checks  map[string]HealthCheck
	breaker func() string
}

// NewHealthHandler creates a health handler. breaker may be nil.
func NewHealthHandler(checks map[string]HealthCheck, breaker func() string) *HealthHandler {
	return &HealthHandler{checks: checks, breaker: breaker}
}

// ServeHTTP handles GET /health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok"}
	status := http.StatusOK

	for name, check := range h.checks {
		if err := check(r.Context()); err != nil {
			body[name] = "down"
			body["status"] = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		body[name] = "up"
	}
	if h.breaker != nil {
		body["upstream"] = h.breaker()
	}

	writeJSON(w, status, body)
}
