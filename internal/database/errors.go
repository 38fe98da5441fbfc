package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"pizza-store/internal/domain"
)

// MapConstraint converts Postgres constraint violations into the
// domain error taxonomy, so a rejected mutation stays a recoverable
// condition the menu can report instead of a session-ending failure.
// Covers schemas without ON UPDATE CASCADE on the name references.
func MapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return fmt.Errorf("duplicate value violates %s: %w", pgErr.ConstraintName, domain.ErrConflict)
	case "23503": // foreign_key_violation
		return fmt.Errorf("row is referenced through %s: %w", pgErr.ConstraintName, domain.ErrConflict)
	case "23514": // check_violation
		return fmt.Errorf("value rejected by %s: %w", pgErr.ConstraintName, domain.ErrValidation)
	}
	return err
}
