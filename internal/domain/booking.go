package domain

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking statuses.
const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents one entry in a customer's booking history. Flight
// details are denormalized onto the booking so history stays renderable
// after the flight document is edited or deleted from the catalog.
type Booking struct {
	// ID is the booking document identifier
	ID string `json:"id"`

	// FlightID references the booked flight document
	FlightID string `json:"flightId"`

	// CustomerEmail identifies whose history this booking belongs to
	CustomerEmail string `json:"customerEmail"`

	// CustomerName is the passenger's display name
	CustomerName string `json:"customerName"`

	// Airline and FlightNumber are copied from the flight at booking time
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`

	// FromCity and ToCity are copied from the flight at booking time
	FromCity string `json:"fromCity"`
	ToCity   string `json:"toCity"`

	// DepartureTime is the travel timestamp in any accepted shape
	DepartureTime TemporalValue `json:"departureTime"`

	// Amount is the fare charged, in the catalog's currency
	Amount float64 `json:"amount"`

	// Status is the booking lifecycle state
	Status BookingStatus `json:"status"`

	// BookedAt is when the booking was placed
	BookedAt TemporalValue `json:"bookedAt"`
}

// Route returns the formatted "City (CODE) -> City (CODE)" route string.
func (b Booking) Route() string {
	return FormatAirportForDisplay(b.FromCity) + " -> " + FormatAirportForDisplay(b.ToCity)
}
