package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventease/platform-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// SQLSTATE codes this service distinguishes. The unique-violation code is the
// arbiter for concurrent registrations against the same email.
const (
	codeUniqueViolation  = "23505"
	codeNotNullViolation = "23502"
)

// Config captures the minimal settings required to establish a Postgres pool.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Connect builds a pgx connection pool and verifies connectivity with a ping.
// A default timeout is applied when none is provided. The pool is the single
// shared storage handle; callers must Close it on shutdown.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

// mapConstraintError translates constraint violations into domain errors.
// Everything else passes through wrapped by the caller.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domain.ErrEmailTaken
		case codeNotNullViolation:
			return domain.ErrInvalidInput
		}
	}
	return err
}

// noRows reports whether err is the driver's empty-result sentinel.
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// nullable maps the empty string to SQL NULL, used for absent password hashes
// on sync-created placeholder rows.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
