package usererrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrInvalidCredential = apperror.New(
		apperror.CodeInvalidCredential,
		"Invalid PIN",
		http.StatusUnauthorized,
	)
	ErrUserDisabled = apperror.New(
		apperror.CodeUserDisabled,
		"User is disabled",
		http.StatusForbidden,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
