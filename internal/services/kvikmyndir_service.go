package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/metrics"
	"github.com/liamwears/drcinema/internal/models"
)

// MovieSource is the remote catalogue of movies and cinemas
type MovieSource interface {
	Movies(ctx context.Context) ([]models.Movie, error)
	Upcoming(ctx context.Context) ([]models.Movie, error)
	Cinemas(ctx context.Context) ([]models.Cinema, error)
	Movie(ctx context.Context, id int) (*models.Movie, error)
}

// APIError is a non-2xx response from the movies API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Request failed: %d %s", e.StatusCode, e.Body)
}

// KvikmyndirService handles interactions with the kvikmyndir.is API
type KvikmyndirService struct {
	client  *http.Client
	token   string
	baseURL string
	logger  *zap.Logger
}

// KvikmyndirConfig holds movies API configuration
type KvikmyndirConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// NewKvikmyndirService creates a new movies API client
func NewKvikmyndirService(cfg KvikmyndirConfig, logger *zap.Logger) *KvikmyndirService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &KvikmyndirService{
		client: &http.Client{
			Timeout: timeout,
		},
		token:   cfg.Token,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// doRequest performs a GET against the movies API and returns the body
func (s *KvikmyndirService) doRequest(ctx context.Context, endpoint, label string) ([]byte, error) {
	url := fmt.Sprintf("%s%s", s.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-access-token", s.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	metrics.UpstreamDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(label, "error").Inc()
		s.logger.Error("movies API request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequests.WithLabelValues(label, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error("movies API error",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// Movies retrieves the movies now showing
func (s *KvikmyndirService) Movies(ctx context.Context) ([]models.Movie, error) {
	body, err := s.doRequest(ctx, "/movies", "movies")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Movie](body, "movies")
}

// Upcoming retrieves movies not yet released
func (s *KvikmyndirService) Upcoming(ctx context.Context) ([]models.Movie, error) {
	body, err := s.doRequest(ctx, "/upcoming", "upcoming")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Movie](body, "upcoming")
}

// Cinemas retrieves the theaters
func (s *KvikmyndirService) Cinemas(ctx context.Context) ([]models.Cinema, error) {
	body, err := s.doRequest(ctx, "/theaters", "theaters")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Cinema](body, "theaters")
}

// Movie retrieves a single movie by ID
func (s *KvikmyndirService) Movie(ctx context.Context, id int) (*models.Movie, error) {
	body, err := s.doRequest(ctx, fmt.Sprintf("/movies/%d", id), "movie")
	if err != nil {
		return nil, err
	}

	var movie models.Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, fmt.Errorf("failed to unmarshal movie: %w", err)
	}
	return &movie, nil
}

// decodeList accepts either a bare JSON array or an object holding the array
// under key
func decodeList[T any](body []byte, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	raw, ok := wrapped[key]
	if !ok {
		return nil, fmt.Errorf("failed to unmarshal %s: missing %q field", key, key)
	}
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return items, nil
}
