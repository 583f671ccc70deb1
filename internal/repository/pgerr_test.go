package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) {
		t.Fatalf("expected wrapped 23505 to be a unique violation")
	}
	if IsForeignKeyViolation(unique) {
		t.Fatalf("23505 is not a foreign key violation")
	}
	if !IsForeignKeyViolation(fk) {
		t.Fatalf("expected 23503 to be a foreign key violation")
	}
	if IsUniqueViolation(errors.New("boom")) || IsForeignKeyViolation(nil) {
		t.Fatalf("plain errors must not classify")
	}
}
