package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeInvalidState = "INVALID_STATE"

	// Server / upstream errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
	CodeTransport     = "TRANSPORT_ERROR"
)
