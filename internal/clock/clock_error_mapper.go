package clock

import (
	"errors"
	"strings"

	clockerrors "go-timeclock/internal/clock/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapCreateError recognizes a violation of the one-open-entry-per-user
// index. Two concurrent clock-ins can both pass the existence check; the
// loser's insert fails here and surfaces as the same ShiftAlreadyOpen the
// check would have produced.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_open_entry_per_user" {
			return clockerrors.ErrShiftAlreadyOpen
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_open_entry_per_user") {
		return clockerrors.ErrShiftAlreadyOpen
	}
	// sqlite phrasing
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "time_entries.user_id") {
		return clockerrors.ErrShiftAlreadyOpen
	}

	return err
}
