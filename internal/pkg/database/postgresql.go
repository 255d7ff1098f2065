package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrClosed = errors.New("database handle is closed")

// ConfigurationError means the handle cannot be created from its credentials.
// The process should not continue.
type ConfigurationError struct {
	Missing []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("data store credentials missing: %v", e.Missing)
	}
	return fmt.Sprintf("invalid data store configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Connector hands out the querier used for table fetches
type Connector interface {
	Querier(ctx context.Context) (Querier, error)
}

// Handle is the process-wide connection to the hosted data store.
// The pool is built once, on first use.
type Handle struct {
	url string
	key string

	once sync.Once
	pool *pgxpool.Pool
	err  error
}

// NewHandle stores the endpoint URL and access key without connecting
func NewHandle(url, key string) *Handle {
	return &Handle{url: url, key: key}
}

// Validate reports missing credentials as a *ConfigurationError
func (h *Handle) Validate() error {
	var missing []string
	if h.url == "" {
		missing = append(missing, "SUPABASE_DB_URL")
	}
	if h.key == "" {
		missing = append(missing, "SUPABASE_DB_KEY")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// Querier returns the shared pool, creating it on the first call
func (h *Handle) Querier(ctx context.Context) (Querier, error) {
	h.once.Do(func() {
		h.pool, h.err = h.open(ctx)
	})
	if h.err != nil {
		return nil, h.err
	}
	return h.pool, nil
}

// Close releases the pool if one was created. A handle closed before first
// use never opens one.
func (h *Handle) Close() {
	h.once.Do(func() {
		h.err = ErrClosed
	})
	if h.pool != nil {
		h.pool.Close()
	}
}

func (h *Handle) open(ctx context.Context) (*pgxpool.Pool, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	config, err := pgxpool.ParseConfig(h.url)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	config.ConnConfig.Password = h.key

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 0

	// Pool creation does not dial; connections open on first query.
	pool, err := pgxpool.NewWithConfig(context.WithoutCancel(ctx), config)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	return pool, nil
}
