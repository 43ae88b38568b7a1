package timesheeterrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Time entry not found",
		http.StatusNotFound,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Timestamps must be RFC 3339",
		http.StatusBadRequest,
	)
)
