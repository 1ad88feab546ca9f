package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const defaultPrefix = "poemclub_limiter"

// Options configures a per-client request limiter.
// Rate uses the "<limit>-<period>" form, e.g. "10-M".
type Options struct {
	Rate     string
	RedisURL string
	Prefix   string
	// TrustForwardHeader keys clients by X-Forwarded-For / X-Real-IP. Only
	// enable it behind a proxy that overwrites those headers.
	TrustForwardHeader bool
	Logger             *slog.Logger
}

// Limiter throttles handlers per client IP. It is backed by redis when a URL
// is configured, so replicas share counters, and by process memory otherwise.
type Limiter struct {
	middleware *stdlib.Middleware
	client     *redis.Client
	logger     *slog.Logger
}

func New(ctx context.Context, opts Options) (*Limiter, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rate, err := limiter.NewRateFromFormatted(strings.TrimSpace(opts.Rate))
	if err != nil {
		return nil, fmt.Errorf("parse rate limit %q: %w", opts.Rate, err)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	l := &Limiter{logger: logger}
	var store limiter.Store
	if url := strings.TrimSpace(opts.RedisURL); url != "" {
		redisOpts, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		l.client = redis.NewClient(redisOpts)
		if err := l.client.Ping(ctx).Err(); err != nil {
			_ = l.client.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		store, err = sredis.NewStoreWithOptions(l.client, limiter.StoreOptions{
			Prefix:   prefix,
			MaxRetry: 3,
		})
		if err != nil {
			_ = l.client.Close()
			return nil, fmt.Errorf("create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          prefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	instance := limiter.New(store, rate, limiter.WithTrustForwardHeader(opts.TrustForwardHeader))
	l.middleware = stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(l.limitReached),
		stdlib.WithErrorHandler(l.storeFailed),
	)
	return l, nil
}

// Wrap applies the limit to a single handler.
func (l *Limiter) Wrap(next http.Handler) http.Handler {
	if l == nil || l.middleware == nil {
		return next
	}
	return l.middleware.Handler(next)
}

func (l *Limiter) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}

func (l *Limiter) limitReached(w http.ResponseWriter, r *http.Request) {
	l.logger.Warn("rate limit reached",
		"event", "rate_limit_reached",
		"module", "platform/ratelimit",
		"layer", "platform",
		"path", r.URL.Path,
	)
	writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests, slow down")
}

func (l *Limiter) storeFailed(w http.ResponseWriter, r *http.Request, err error) {
	l.logger.Error("rate limit store failed",
		"event", "rate_limit_store_failed",
		"module", "platform/ratelimit",
		"layer", "platform",
		"path", r.URL.Path,
		"error", err.Error(),
	)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"code": code, "message": message})
}
