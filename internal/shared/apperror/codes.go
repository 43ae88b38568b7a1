package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInvalidCredential = "INVALID_CREDENTIAL"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeUserDisabled      = "USER_DISABLED"
	CodeNotFound          = "NOT_FOUND"
	CodeShiftAlreadyOpen  = "SHIFT_ALREADY_OPEN"
	CodeNoOpenShift       = "NO_OPEN_SHIFT"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
