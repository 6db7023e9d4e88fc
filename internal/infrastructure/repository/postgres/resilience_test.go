package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		retry bool
		fail  bool
	}{
		{"nil", nil, false, false},
		{"canceled", context.Canceled, false, false},
		{"bad conn", fmt.Errorf("upsert chord C: %w", driver.ErrBadConn), true, true},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true, true},
		{"serialization", &pgconn.PgError{Code: "40001"}, true, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false, true},
		{"plain", errors.New("syntax"), false, true},
	}
	for _, tc := range cases {
		got := ClassifyError(tc.err)
		if got.Retry != tc.retry || got.CountsAsFailure != tc.fail {
			t.Fatalf("%s: unexpected verdict %+v", tc.name, got)
		}
	}
}
