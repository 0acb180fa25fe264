// Package postgres stores wallet registrations and transaction claims in
// PostgreSQL.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgreSQL error codes
const (
	pgErrUniqueViolation = "23505"
)

type client struct {
	pool *pgxpool.Pool
}

func (c *client) Close() error {
	c.pool.Close()
	return nil
}

// Migrate applies every embedded migration in file name order. Migrations
// are idempotent.
func (c *client) Migrate(ctx context.Context) error {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		sql, err := fs.ReadFile(migrations, "migrations/"+entry.Name())
		if err != nil {
			return err
		}

		if _, err := c.pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}

		logger.Debug(ctx, "migration applied", "file", entry.Name())
	}

	return nil
}

// NewClient connects to dsn and verifies the connection.
func NewClient(ctx context.Context, dsn string) (*client, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &client{
		pool: pool,
	}, nil
}

// uniqueViolation returns the violated constraint, or "" when err is not a
// unique violation.
func uniqueViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return pgErr.ConstraintName
	}

	return ""
}
