package domain

import "context"

// FlightStore is the persistence boundary for the flight catalog. The
// backing implementation is a document store; records come back in the
// heterogeneous shapes captured by the union types on FlightRecord.
type FlightStore interface {
	// ListFlights returns every flight document in the catalog.
	ListFlights(ctx context.Context) ([]FlightRecord, error)

	// GetFlight returns one flight by ID, or ErrFlightNotFound.
	GetFlight(ctx context.Context, id string) (FlightRecord, error)

	// PutFlight inserts or replaces a flight document.
	PutFlight(ctx context.Context, flight FlightRecord) error

	// DeleteFlight removes one flight, or returns ErrFlightNotFound.
	DeleteFlight(ctx context.Context, id string) error

	// DeleteFlights removes a batch of flights in one transaction and
	// returns how many documents were actually removed.
	DeleteFlights(ctx context.Context, ids []string) (int, error)
}

// BookingStore is the persistence boundary for booking history.
type BookingStore interface {
	// ListBookings returns bookings for the given customer email, or all
	// bookings when email is empty.
	ListBookings(ctx context.Context, email string) ([]Booking, error)

	// PutBooking inserts or replaces a booking document.
	PutBooking(ctx context.Context, booking Booking) error
}

// Store combines both persistence boundaries; concrete stores implement
// the whole surface.
type Store interface {
	FlightStore
	BookingStore
}
