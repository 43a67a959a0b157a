package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the stores care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// UniqueViolation reports whether err is a unique constraint violation and,
// if so, the name of the violated constraint.
func UniqueViolation(err error) (constraint string, ok bool) {
	return violation(err, pgUniqueViolation)
}

// ForeignKeyViolation reports whether err is a foreign key violation and,
// if so, the name of the violated constraint.
func ForeignKeyViolation(err error) (constraint string, ok bool) {
	return violation(err, pgForeignKeyViolation)
}

func violation(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}
