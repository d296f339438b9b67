package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── ASTS backend ──────────────────────────────────────────────────
	ErrBackendRejected    ErrCode = "BACKEND_REJECTED"
	ErrBackendUnavailable ErrCode = "BACKEND_UNAVAILABLE"
	ErrGenerationFailed   ErrCode = "GENERATION_FAILED"

	// ─── Optional infrastructure ───────────────────────────────────────
	ErrFeatureDisabled ErrCode = "FEATURE_DISABLED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	case ErrNotFound:
		return "Resource not found."

	case ErrBackendRejected:
		return "The scheduling backend rejected the request."
	case ErrBackendUnavailable:
		return "The scheduling backend could not be reached."
	case ErrGenerationFailed:
		return "Timetable generation did not complete."

	case ErrFeatureDisabled:
		return "This feature is not enabled on this server."

	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	case ErrInternal:
		return "Internal server error."
	default:
		return "An unexpected error occurred."
	}
}
