// Package domain contains the core business entities and rules for the
// flight booking system. These entities tolerate the heterogeneous field
// shapes of the backing document store and form the foundation upon which
// all other components are built.
package domain

// FlightRecord represents a single flight document from the catalog
// collection. Timestamp, duration, and price fields carry their tolerant
// union types because the store holds documents written by several
// generations of the admin console.
type FlightRecord struct {
	// ID is the document identifier (opaque string)
	ID string `json:"id"`

	// Airline is the operating airline's display name
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "AI-101")
	FlightNumber string `json:"flightNumber"`

	// FromCity is the origin as an IATA code or a "City (CODE)" string
	FromCity string `json:"fromCity"`

	// ToCity is the destination as an IATA code or a "City (CODE)" string
	ToCity string `json:"toCity"`

	// DepartureTime is the scheduled departure in any accepted shape
	DepartureTime TemporalValue `json:"departureTime"`

	// ArrivalTime is the scheduled arrival in any accepted shape
	ArrivalTime TemporalValue `json:"arrivalTime"`

	// Price is the fare as a number or numeric string
	Price PriceValue `json:"price"`

	// Duration is the flight duration as minutes or a "2h 30m" string
	Duration DurationValue `json:"duration"`

	// Precomputed display fields. When present they take precedence over
	// re-deriving the display string from the raw field.
	DisplayDepartureDate string `json:"displayDepartureDate,omitempty"`
	DisplayDepartureTime string `json:"displayDepartureTime,omitempty"`
	DisplayArrivalDate   string `json:"displayArrivalDate,omitempty"`
	DisplayArrivalTime   string `json:"displayArrivalTime,omitempty"`
}

// DepartureDateDisplay returns the departure date for rendering,
// preferring the precomputed field when present.
func (f FlightRecord) DepartureDateDisplay() string {
	if f.DisplayDepartureDate != "" {
		return f.DisplayDepartureDate
	}
	return f.DepartureTime.FormatDate()
}

// DepartureClockDisplay returns the departure clock time for rendering,
// preferring the precomputed field when present.
func (f FlightRecord) DepartureClockDisplay() string {
	if f.DisplayDepartureTime != "" {
		return f.DisplayDepartureTime
	}
	return f.DepartureTime.FormatClock()
}

// ArrivalDateDisplay returns the arrival date for rendering, preferring
// the precomputed field when present.
func (f FlightRecord) ArrivalDateDisplay() string {
	if f.DisplayArrivalDate != "" {
		return f.DisplayArrivalDate
	}
	return f.ArrivalTime.FormatDate()
}

// ArrivalClockDisplay returns the arrival clock time for rendering,
// preferring the precomputed field when present.
func (f FlightRecord) ArrivalClockDisplay() string {
	if f.DisplayArrivalTime != "" {
		return f.DisplayArrivalTime
	}
	return f.ArrivalTime.FormatClock()
}

// Route returns the formatted "City (CODE) -> City (CODE)" route string.
func (f FlightRecord) Route() string {
	return FormatAirportForDisplay(f.FromCity) + " -> " + FormatAirportForDisplay(f.ToCity)
}
