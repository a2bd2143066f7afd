package portal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/agrovia/portal/internal/metrics"
)

type BreakerConfig struct {
	Name string
	// Failures is the number of consecutive live failures that opens the circuit.
	Failures uint32
	// Timeout is how long the circuit stays open before a trial request.
	Timeout time.Duration
}

// FallbackSource serves from primary and switches to fallback when primary fails or
// its circuit is open. Invalid requests are returned as errors and never fall back.
type FallbackSource struct {
	primary  Source
	fallback Source
	cb       *gobreaker.CircuitBreaker[any]
	log      *slog.Logger
}

var _ Source = (*FallbackSource)(nil)

func NewFallbackSource(primary, fallback Source, cfg BreakerConfig, logger *slog.Logger) *FallbackSource {
	if cfg.Failures == 0 {
		cfg.Failures = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidLimit) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(stateValue(to)))
		},
	})

	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
		cb:       cb,
		log:      logger,
	}
}

func stateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// State reports the breaker state ("closed", "half-open", "open").
func (s *FallbackSource) State() string {
	return s.cb.State().String()
}

func (s *FallbackSource) Videos(ctx context.Context, category string, limit int) (Page[Video], error) {
	return withFallback(ctx, s, "videos",
		func() (Page[Video], error) { return s.primary.Videos(ctx, category, limit) },
		func() (Page[Video], error) { return s.fallback.Videos(ctx, category, limit) },
	)
}

func (s *FallbackSource) Posts(ctx context.Context, category string, limit int) (Page[Post], error) {
	return withFallback(ctx, s, "posts",
		func() (Page[Post], error) { return s.primary.Posts(ctx, category, limit) },
		func() (Page[Post], error) { return s.fallback.Posts(ctx, category, limit) },
	)
}

func (s *FallbackSource) Categories(ctx context.Context, siteOnly bool) (Page[Category], error) {
	return withFallback(ctx, s, "categories",
		func() (Page[Category], error) { return s.primary.Categories(ctx, siteOnly) },
		func() (Page[Category], error) { return s.fallback.Categories(ctx, siteOnly) },
	)
}

func (s *FallbackSource) Video(ctx context.Context, id int) (Entry[Video], error) {
	return withFallback(ctx, s, "video",
		func() (Entry[Video], error) { return s.primary.Video(ctx, id) },
		func() (Entry[Video], error) { return s.fallback.Video(ctx, id) },
	)
}

func (s *FallbackSource) Post(ctx context.Context, id int) (Entry[Post], error) {
	return withFallback(ctx, s, "post",
		func() (Entry[Post], error) { return s.primary.Post(ctx, id) },
		func() (Entry[Post], error) { return s.fallback.Post(ctx, id) },
	)
}

func withFallback[T any](ctx context.Context, s *FallbackSource, kind string,
	primary, fallback func() (T, error)) (T, error) {
	res, err := s.cb.Execute(func() (any, error) {
		return primary()
	})
	if err == nil {
		return res.(T), nil
	}

	if errors.Is(err, ErrInvalidLimit) || ctx.Err() != nil {
		var zero T
		return zero, err
	}

	s.log.Warn("live content unavailable, serving fallback",
		"kind", kind,
		"error", err,
		"breaker", s.cb.State().String(),
	)

	return fallback()
}
