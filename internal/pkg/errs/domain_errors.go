package errs

import "errors"

// Sentinel errors shared by the usecase layers.
var (
	// Scheduling errors
	ErrInvalidBlackoutWindow = errors.New("blackout end time must be after start time")
	ErrBlackoutNotFound      = errors.New("blocked time slot not found")
	ErrInvalidTimeSlot       = errors.New("invalid delivery time slot")

	// Order errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrUnknownPackage     = errors.New("unknown package type")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrZipcodeNotServed   = errors.New("zipcode outside delivery area")
	ErrZipcodeNotFound    = errors.New("delivery zipcode not found")

	// Payment errors
	ErrUpstreamPayment = errors.New("payment provider request failed")

	// Reservation errors
	ErrCapacityIntegrity = errors.New("paid order left without a capacity block")

	// Admin auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation / operation markers
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
