package errs

import "errors"

// Domain-specific sentinel errors for the booking usecase layers
var (
	// Auth errors
	ErrAuthenticationRequired = errors.New("authentication required")

	// Upstream service errors
	ErrAvailabilityService = errors.New("availability service failed")
	ErrConfirmationService = errors.New("confirmation service failed")
	ErrReservationService  = errors.New("reservation service failed")

	// Session errors
	ErrSessionNotFound  = errors.New("booking session not found")
	ErrActionInProgress = errors.New("another action is in progress")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Reservation pass-through errors
	ErrReservationNotFound = errors.New("reservation not found")
)
