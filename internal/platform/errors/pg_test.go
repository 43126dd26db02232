package errors

import (
	"context"
	stderrs "errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code}
}

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},    // unique violation
		{"23503", ErrorCodeInvalidArgument}, // fk violation -> invalid input
		{"23502", ErrorCodeValidation},      // not null
		{"23514", ErrorCodeValidation},      // check
		{"22001", ErrorCodeInvalidArgument}, // string truncation
		{"22P02", ErrorCodeInvalidArgument}, // invalid text representation
		{"40001", ErrorCodeDB},              // serialization failure (retryable) mapped to DB
		{"40P01", ErrorCodeDB},              // deadlock
		{"55P03", ErrorCodeDB},              // lock not available
		{"57P03", ErrorCodeUnavailable},     // cannot connect now
		{"57P01", ErrorCodeUnavailable},     // admin shutdown
		{"53300", ErrorCodeUnavailable},     // too many connections
		{"XXXXX", ErrorCodeDB},              // default branch
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	// Non-pg error path
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestFromPostgresVariants(t *testing.T) {
	// nil passthrough
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}
	if FromPostgresf(nil, "x %d", 1) != nil {
		t.Fatalf("FromPostgresf(nil) should be nil")
	}

	// unique violation becomes DuplicateKey and keeps the cause
	dup := FromPostgres(pg("23505"), "insert records batch")
	if !IsCode(dup, ErrorCodeDuplicateKey) {
		t.Fatalf("FromPostgres(23505) code = %v", CodeOf(dup))
	}
	if !IsDuplicateKey(dup) {
		t.Fatalf("IsDuplicateKey should see through the wrap")
	}

	// connectivity failures that never reached the server map to Unavailable
	down := FromPostgres(stderrs.New("dial tcp 127.0.0.1:5432: connection refused"), "daily counts")
	if !IsCode(down, ErrorCodeUnavailable) {
		t.Fatalf("connection refused should map to Unavailable, got %v", CodeOf(down))
	}
	timedOut := FromPostgres(context.DeadlineExceeded, "count records")
	if !IsCode(timedOut, ErrorCodeUnavailable) {
		t.Fatalf("deadline exceeded should map to Unavailable, got %v", CodeOf(timedOut))
	}

	// anything else is a generic DB error
	other := FromPostgres(stderrs.New("weird driver state"), "x")
	if !IsCode(other, ErrorCodeDB) {
		t.Fatalf("unclassified error should map to DB, got %v", CodeOf(other))
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(FromPostgres(pg("40001"), "tx")) {
		t.Fatalf("serialization failure should be retryable")
	}
	if !Retryable(FromPostgres(pg("40P01"), "tx")) {
		t.Fatalf("deadlock should be retryable")
	}
	if Retryable(FromPostgres(pg("23505"), "tx")) {
		t.Fatalf("duplicate key is not retryable")
	}
}
