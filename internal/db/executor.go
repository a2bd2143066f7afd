package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/go-pg/pg/v10"
	"golang.org/x/sync/semaphore"

	"github.com/agrovia/portal/internal/metrics"
)

// Params are bound to ?name placeholders of a query.
type Params map[string]interface{}

// Querier runs a parameterized query and scans the rows into model.
type Querier interface {
	Run(ctx context.Context, model interface{}, query string, params Params) error
}

type dialFunc func(ctx context.Context, opts *pg.Options) (*pg.DB, error)

// Executor owns the process-wide connection pool. The pool is created on first use,
// exactly once, and reused until Release.
type Executor struct {
	opts  *pg.Options
	log   *slog.Logger
	hooks []pg.QueryHook
	dial  dialFunc

	// guard serializes pool creation and release; waiters give up when their context ends.
	guard *semaphore.Weighted
	db    *pg.DB
}

var _ Querier = (*Executor)(nil)

func NewExecutor(opts *pg.Options, logger *slog.Logger, hooks ...pg.QueryHook) *Executor {
	return &Executor{
		opts:  opts,
		log:   logger,
		hooks: hooks,
		dial:  dialPostgres,
		guard: semaphore.NewWeighted(1),
	}
}

func dialPostgres(ctx context.Context, opts *pg.Options) (*pg.DB, error) {
	db := pg.Connect(opts)
	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Acquire returns the shared pool, creating it if needed. A failed attempt leaves the
// executor empty so the next call dials again. Callers waiting behind a dial return
// the context error once ctx is done.
func (e *Executor) Acquire(ctx context.Context) (*pg.DB, error) {
	if err := e.guard.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("wait for database pool: %w", err)
	}
	defer e.guard.Release(1)

	if e.db != nil {
		return e.db, nil
	}

	db, err := e.dial(ctx, e.opts)
	if err != nil {
		metrics.DBConnects.WithLabelValues("error").Inc()
		e.log.Error("database connect failed", "addr", e.opts.Addr, "error", err)
		return nil, &ConnectionError{Addr: e.opts.Addr, Err: err}
	}

	for _, hook := range e.hooks {
		db.AddQueryHook(hook)
	}

	metrics.DBConnects.WithLabelValues("ok").Inc()
	e.log.Info("database pool created",
		"addr", e.opts.Addr,
		"database", e.opts.Database,
		"poolSize", e.opts.PoolSize,
	)

	e.db = db
	return db, nil
}

func (e *Executor) Run(ctx context.Context, model interface{}, query string, params Params) error {
	db, err := e.Acquire(ctx)
	if err != nil {
		return err
	}

	conn := db
	for name, value := range params {
		conn = conn.WithParam(name, value)
	}

	if _, err := conn.QueryContext(ctx, model, query); err != nil {
		if isConnectionFailure(err) {
			return &ConnectionError{Addr: e.opts.Addr, Err: err}
		}
		return &QueryError{Operation: OperationFrom(ctx), Err: err}
	}

	return nil
}

func (e *Executor) Ping(ctx context.Context) error {
	db, err := e.Acquire(ctx)
	if err != nil {
		return err
	}

	if err := db.Ping(ctx); err != nil {
		return &ConnectionError{Addr: e.opts.Addr, Err: err}
	}
	return nil
}

// Release closes the pool. It is a no-op when no pool is open.
func (e *Executor) Release() error {
	if err := e.guard.Acquire(context.Background(), 1); err != nil {
		return err
	}
	defer e.guard.Release(1)

	if e.db == nil {
		return nil
	}

	err := e.db.Close()
	e.db = nil
	if err != nil {
		return fmt.Errorf("close database pool: %w", err)
	}

	e.log.Info("database pool closed", "addr", e.opts.Addr)
	return nil
}

func isConnectionFailure(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
