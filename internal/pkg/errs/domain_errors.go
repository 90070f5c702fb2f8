package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Validation errors
	ErrValidation = errors.New("validation error")

	// Unlock errors
	ErrRedemptionNotFound = errors.New("no unlock record matches token")

	// Rate limiting
	ErrRateLimited = errors.New("rate limit exceeded")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrEmailDeliveryFailed     = errors.New("email delivery failed")
)
