package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrUnknownEntity  ErrCode = "UNKNOWN_ENTITY"
	ErrBodyTooLarge   ErrCode = "BODY_TOO_LARGE"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"
	ErrInvalidReference ErrCode = "INVALID_REFERENCE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "The submitted data is invalid."
	case ErrInvalidID:
		return "The id is not a valid record id."
	case ErrInvalidPayload:
		return "The request body could not be read."
	case ErrUnknownEntity:
		return "No such entity type."
	case ErrBodyTooLarge:
		return "The request body is too large."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Record not found."
	case ErrConflict:
		return "A record with the same unique fields already exists."
	case ErrDependencyExists:
		return "The record is still referenced by other records and cannot be deleted."
	case ErrInvalidReference:
		return "The record refers to a related record that does not exist."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."

	default:
		return "An unknown error occurred."
	}
}
