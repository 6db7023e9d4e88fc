package postgres

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kirillkom/fretboard-chords/internal/infrastructure/resilience"
)

// ClassifyError decides whether a failed catalog sync may be retried.
func ClassifyError(err error) resilience.Verdict {
	switch {
	case err == nil:
		return resilience.Verdict{}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resilience.Verdict{Retry: false, CountsAsFailure: false}
	case resilience.IsCircuitOpen(err):
		return resilience.Verdict{Retry: false, CountsAsFailure: false}
	case errors.Is(err, driver.ErrBadConn), pgconn.SafeToRetry(err), pgconn.Timeout(err):
		return resilience.Verdict{Retry: true, CountsAsFailure: true}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 is connection exceptions, 40 is transaction rollback
		// (serialization failures and deadlocks), 57P is operator intervention.
		switch {
		case len(pgErr.Code) >= 2 && (pgErr.Code[:2] == "08" || pgErr.Code[:2] == "40"):
			return resilience.Verdict{Retry: true, CountsAsFailure: true}
		case len(pgErr.Code) >= 3 && pgErr.Code[:3] == "57P":
			return resilience.Verdict{Retry: true, CountsAsFailure: true}
		}
	}
	return resilience.Verdict{Retry: false, CountsAsFailure: true}
}
