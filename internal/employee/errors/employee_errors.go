package employeeerrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Name is required",
		http.StatusBadRequest,
	)
	ErrInvalidPIN = apperror.New(
		apperror.CodeInvalidInput,
		"PIN must be 4-8 digits",
		http.StatusBadRequest,
	)
	ErrInvalidHourlyPay = apperror.New(
		apperror.CodeInvalidInput,
		"Hourly pay must be zero or positive",
		http.StatusBadRequest,
	)
	ErrCannotDisableAdmin = apperror.New(
		apperror.CodeForbidden,
		"Cannot disable admin user",
		http.StatusForbidden,
	)
	ErrCannotChangeAdminPIN = apperror.New(
		apperror.CodeForbidden,
		"Cannot change admin PIN here",
		http.StatusForbidden,
	)
)
