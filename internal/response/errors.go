package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidFilter  ErrCode = "INVALID_FILTER"

	// ─── Registration ──────────────────────────────────────────────────
	ErrUnknownCourse       ErrCode = "UNKNOWN_COURSE"
	ErrAlreadyRegistered   ErrCode = "ALREADY_REGISTERED"
	ErrAlreadyInCart       ErrCode = "ALREADY_IN_CART"
	ErrCreditLimitExceeded ErrCode = "CREDIT_LIMIT_EXCEEDED"

	// ─── Notifications ─────────────────────────────────────────────────
	ErrNotificationNotFound ErrCode = "NOTIFICATION_NOT_FOUND"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Matric number and password are required."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrTokenExpired:
		return "The authentication token has expired."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "The submitted data is invalid."
	case ErrInvalidID:
		return "The id format is invalid."
	case ErrInvalidPayload:
		return "The request body is malformed."
	case ErrInvalidFilter:
		return "Unknown notification filter. Use all, unread or a category."

	// ─── Registration ──────────────────────────────────────────────────
	case ErrUnknownCourse:
		return "No course with that code is offered this semester."
	case ErrAlreadyRegistered:
		return "You are already registered for this course."
	case ErrAlreadyInCart:
		return "This course is already in your registration cart."
	case ErrCreditLimitExceeded:
		return "Adding this course would exceed the 24 credit unit limit."

	// ─── Notifications ─────────────────────────────────────────────────
	case ErrNotificationNotFound:
		return "Notification not found."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "The requested resource was not found."

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
