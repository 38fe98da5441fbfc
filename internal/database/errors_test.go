package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"pizza-store/internal/domain"
)

func TestMapConstraintUniqueViolation(t *testing.T) {
	raw := &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}
	err := MapConstraint(fmt.Errorf("failed to insert user: %w", raw))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestMapConstraintForeignKeyViolation(t *testing.T) {
	// A rename against a schema without ON UPDATE CASCADE fails with
	// 23503; that must stay a reportable conflict, not a fatal error.
	raw := &pgconn.PgError{Code: "23503", ConstraintName: "orders_login_fkey"}
	err := MapConstraint(raw)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestMapConstraintCheckViolation(t *testing.T) {
	raw := &pgconn.PgError{Code: "23514", ConstraintName: "order_items_quantity_check"}
	err := MapConstraint(raw)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMapConstraintPassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("connection reset")
	if got := MapConstraint(plain); got != plain {
		t.Errorf("plain error changed: %v", got)
	}
	other := &pgconn.PgError{Code: "57P01"} // admin_shutdown stays fatal
	if got := MapConstraint(other); !errors.Is(got, other) {
		t.Errorf("non-constraint pg error changed: %v", got)
	}
}
