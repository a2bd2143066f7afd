package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/agrovia/portal/internal/metrics"
)

// QueryHook records query metrics and, when enabled, logs every SQL statement.
type QueryHook struct {
	logger     *slog.Logger
	logQueries bool
}

func NewQueryHook(logger *slog.Logger, logQueries bool) *QueryHook {
	return &QueryHook{
		logger:     logger,
		logQueries: logQueries,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, event *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	operation := OperationFrom(ctx)
	duration := time.Since(event.StartTime)

	metrics.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if event.Err != nil {
		metrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}

	if !h.logQueries {
		return nil
	}

	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.Error("failed to format query", "error", err)
		return nil
	}

	h.logger.Info("SQL query executed",
		"operation", operation,
		"query", string(query),
		"duration", duration,
		"error", event.Err,
	)

	return nil
}
