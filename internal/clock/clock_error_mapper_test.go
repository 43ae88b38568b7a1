package clock

import (
	"errors"
	"testing"

	clockerrors "go-timeclock/internal/clock/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapCreateError(t *testing.T) {
	assert.NoError(t, mapCreateError(nil))

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_open_entry_per_user"}
	assert.ErrorIs(t, mapCreateError(pgErr), clockerrors.ErrShiftAlreadyOpen)

	sqliteErr := errors.New("UNIQUE constraint failed: time_entries.user_id")
	assert.ErrorIs(t, mapCreateError(sqliteErr), clockerrors.ErrShiftAlreadyOpen)

	otherConstraint := &pgconn.PgError{Code: "23505", ConstraintName: "uq_schedule_user_day"}
	assert.NotErrorIs(t, mapCreateError(otherConstraint), clockerrors.ErrShiftAlreadyOpen)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapCreateError(plain))
}
