package autherrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidAdminPIN = apperror.New(
		apperror.CodeInvalidCredential,
		"Invalid admin PIN",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid session token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session expired",
		http.StatusUnauthorized,
	)
	ErrNotAdmin = apperror.New(
		apperror.CodeForbidden,
		"Admin privileges are required",
		http.StatusForbidden,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not issue session token",
		http.StatusInternalServerError,
	)
)
