package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/metrics"
	"github.com/liamwears/drcinema/internal/models"
)

// CircuitBreakerClient wraps a MovieSource so that calls fail fast while the
// movies API keeps failing. Nothing is retried.
type CircuitBreakerClient struct {
	source MovieSource
	cb     *gobreaker.CircuitBreaker[any]
	name   string
	logger *zap.Logger
}

// NewCircuitBreakerClient opens after 5 consecutive failures and probes again
// after 30 seconds. Client errors (4xx) do not count as failures.
func NewCircuitBreakerClient(source MovieSource, logger *zap.Logger) *CircuitBreakerClient {
	name := "kvikmyndir-api"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &CircuitBreakerClient{source: source, cb: cb, name: name, logger: logger}
}

func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode < 500
}

func (c *CircuitBreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := c.cb.Execute(fn)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
		c.logger.Warn("circuit breaker rejected request", zap.Error(err))
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	}
	return result, err
}

// castResult type-checks a breaker result
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// State reports the breaker state, for the health endpoint
func (c *CircuitBreakerClient) State() string {
	return c.cb.State().String()
}

func (c *CircuitBreakerClient) Movies(ctx context.Context) ([]models.Movie, error) {
	return castResult[[]models.Movie](c.execute(func() (any, error) {
		return c.source.Movies(ctx)
	}))
}

func (c *CircuitBreakerClient) Upcoming(ctx context.Context) ([]models.Movie, error) {
	return castResult[[]models.Movie](c.execute(func() (any, error) {
		return c.source.Upcoming(ctx)
	}))
}

func (c *CircuitBreakerClient) Cinemas(ctx context.Context) ([]models.Cinema, error) {
	return castResult[[]models.Cinema](c.execute(func() (any, error) {
		return c.source.Cinemas(ctx)
	}))
}

func (c *CircuitBreakerClient) Movie(ctx context.Context, id int) (*models.Movie, error) {
	return castResult[*models.Movie](c.execute(func() (any, error) {
		return c.source.Movie(ctx, id)
	}))
}
