package clockerrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrShiftAlreadyOpen = apperror.New(
		apperror.CodeShiftAlreadyOpen,
		"You already have an active shift. Clock out first.",
		http.StatusConflict,
	)
	ErrNoOpenShift = apperror.New(
		apperror.CodeNoOpenShift,
		"No active shift found. Clock in first.",
		http.StatusConflict,
	)
)
