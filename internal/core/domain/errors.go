package domain

import "errors"

// Sentinel errors shared across services and repositories. Handlers never
// inspect storage errors directly; repositories translate them to one of
// these and the central HTTP error handler maps them to status codes.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")

	ErrProfileNotFound = errors.New("profile not found")

	// ErrProductNotFound covers both a missing product and a product owned
	// by a different user. The two cases are indistinguishable to callers.
	ErrProductNotFound = errors.New("product not found")

	ErrUsageLogNotFound = errors.New("usage log not found")

	ErrDietLogNotFound = errors.New("diet log not found")
	// ErrDietLogExists signals a second diet log for the same user and day.
	ErrDietLogExists = errors.New("diet log already exists for this day")

	ErrWellBeingLogNotFound = errors.New("well-being log not found")

	// ErrValidation marks business-rule validation failures raised past the
	// schema layer (bad meal slot, bad mood, missing stress rating).
	ErrValidation = errors.New("validation failed")

	// ErrStorageTimeout wraps a storage call that exceeded its deadline.
	ErrStorageTimeout = errors.New("storage operation timed out")
)
