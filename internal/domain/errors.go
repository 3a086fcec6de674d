package domain

import "errors"

// Sentinel errors returned by the domain and mapped to HTTP responses at
// the handler layer.
var (
	// ErrInvalidRequest indicates a request failed domain validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrFlightNotFound indicates the referenced flight document does not exist.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrBookingNotFound indicates the referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidPrice indicates a flight's price cannot be coerced to a
	// finite number, so it cannot be booked.
	ErrInvalidPrice = errors.New("flight price is not available")
)
