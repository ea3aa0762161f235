package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/metrics"
)

// RateLimiter is a sliding-window limiter keyed by client IP, backed by a
// Redis sorted set per client
type RateLimiter struct {
	redis       redis.Cmdable
	maxRequests int
	window      time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client redis.Cmdable, maxRequests int, window time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		redis:       client,
		maxRequests: maxRequests,
		window:      window,
		logger:      logger,
		now:         time.Now,
	}
}

// Limit returns a middleware that rate limits requests
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identifier := clientIP(r)

		allowed, err := rl.checkRateLimit(r.Context(), identifier)
		if err != nil {
			// fail open
			rl.logger.Warn("rate limit check failed", zap.String("client", identifier), zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			metrics.RateLimitHits.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintf(w, `{"error":"Too many requests. Please try again later."}`)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the first forwarded address, else the peer address
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// checkRateLimit records the request and reports whether it is within the
// limit
func (rl *RateLimiter) checkRateLimit(ctx context.Context, identifier string) (bool, error) {
	key := fmt.Sprintf("ratelimit:ip:%s", identifier)
	now := rl.now()
	windowStart := now.Add(-rl.window).UnixNano()

	pipe := rl.redis.Pipeline()

	// Remove old entries outside the window
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	countCmd := pipe.ZCard(ctx, key)

	// Members must be unique or requests in the same instant collapse
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})

	pipe.Expire(ctx, key, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return countCmd.Val() < int64(rl.maxRequests), nil
}
