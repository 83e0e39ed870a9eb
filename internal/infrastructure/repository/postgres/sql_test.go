package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get row: %w", sql.ErrNoRows)) {
		t.Fatalf("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("connection refused")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !isForeignKeyViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("expected true for code 23503")
	}
	if isForeignKeyViolation(&pq.Error{Code: "23505"}) {
		t.Fatalf("expected false for unique violation")
	}
	if isForeignKeyViolation(fmt.Errorf("not a pq error")) {
		t.Fatalf("expected false for non-pq error")
	}
}
