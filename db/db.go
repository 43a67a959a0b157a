// Package db provides database connectivity and migration functionality.
// It establishes the pgx connection pool, runs schema migrations with golang-migrate,
// and classifies PostgreSQL constraint violations so stores can turn them into
// application errors.
package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	// `golang-migrate` applies the versioned SQL files in ./migrations.
	"github.com/golang-migrate/migrate/v4"
	// Registers the "postgres://" database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// Registers the "file://" migration source.
	_ "github.com/golang-migrate/migrate/v4/source/file"
	// `pgxpool` is part of the `jackc/pgx` suite, providing a connection pool for PostgreSQL.
	"github.com/jackc/pgx/v5/pgxpool"
	// lib/pq is the database/sql driver migrate's postgres driver runs on.
	_ "github.com/lib/pq"

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/config"
)

// NewDBPool establishes the application's PostgreSQL connection pool.
// The pool is pinged before it is returned, so a nil error means the database is reachable.
func NewDBPool(cfg *config.PoolConfig) (*pgxpool.Pool, error) {
	// `pgxpool.ParseConfig` parses the DSN string into a `pgxpool.Config` struct.
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, apperror.NewDatabaseError("error parsing database DSN", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Use a context with a timeout so an unreachable database cannot block startup forever.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError("error creating pgxpool", err)
	}

	// Verify the connection by pinging
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close() // Clean up on connection failure
		return nil, apperror.NewDatabaseError("error connecting to the database with pgxpool", err)
	}

	return pool, nil
}

// Direction selects which way RunMigrations moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies (or rolls back) the migrations found in migrationsPath.
//
// The migrations directory contains golang-migrate files named
// {version}_{description}.{up|down}.sql (e.g. 000001_create_users.up.sql).
func RunMigrations(cfg *config.PoolConfig, migrationsPath string, direction Direction) error {
	m, err := migrate.New("file://"+migrationsPath, cfg.DSN())
	if err != nil {
		return apperror.NewMigrationError("failed to create migrator", err)
	}
	// m.Close() returns two errors, one for the source and one for the database.
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("Warning: error closing migrator: source=%v database=%v", srcErr, dbErr)
		}
	}()

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return apperror.NewMigrationError(fmt.Sprintf("unknown migration direction %q", direction), nil)
	}

	// `migrate.ErrNoChange` only means the schema is already where we want it.
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError(fmt.Sprintf("failed to run migrations %s", direction), err)
	}
	return nil
}
