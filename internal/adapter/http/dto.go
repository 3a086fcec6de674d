package http

import (
	"github.com/flight-booking/flight-booking-system/internal/domain"
	"github.com/flight-booking/flight-booking-system/internal/usecase"
)

// FlightListResponseDTO is the response for catalog list requests.
type FlightListResponseDTO struct {
	Metadata ListMetadataDTO `json:"metadata"`
	Flights  []FlightCardDTO `json:"flights"`
}

// ListMetadataDTO contains metadata about the list execution.
type ListMetadataDTO struct {
	TotalResults int   `json:"total_results"`
	ElapsedMs    int64 `json:"elapsed_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

// FlightCardDTO is the rendered flight card: every display string is
// derived through the normalizers, so a malformed document renders with
// fallback tokens instead of failing the list.
type FlightCardDTO struct {
	ID            string   `json:"id"`
	Airline       string   `json:"airline"`
	FlightNumber  string   `json:"flight_number"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	DepartureDate string   `json:"departure_date"`
	DepartureTime string   `json:"departure_time"`
	ArrivalDate   string   `json:"arrival_date"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      string   `json:"duration"`
	Price         *float64 `json:"price"`
}

// BookingHistoryItemDTO is one rendered entry of a customer's history.
type BookingHistoryItemDTO struct {
	ID            string  `json:"id"`
	FlightID      string  `json:"flight_id"`
	Flight        string  `json:"flight"`
	Route         string  `json:"route"`
	TravelDate    string  `json:"travel_date"`
	DepartureTime string  `json:"departure_time"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	BookedOn      string  `json:"booked_on"`
}

// BookingHistoryResponseDTO is the response for history requests.
type BookingHistoryResponseDTO struct {
	Total    int                     `json:"total"`
	Bookings []BookingHistoryItemDTO `json:"bookings"`
}

// BatchDeleteResponseDTO reports the outcome of an admin batch delete.
type BatchDeleteResponseDTO struct {
	Requested int `json:"requested"`
	Deleted   int `json:"deleted"`
}

// ToFlightListResponseDTO converts a catalog pass result to its response.
func ToFlightListResponseDTO(result *usecase.FlightListResult) *FlightListResponseDTO {
	dto := &FlightListResponseDTO{
		Metadata: ListMetadataDTO{
			TotalResults: result.Total,
			ElapsedMs:    result.ElapsedMs,
			CacheHit:     result.CacheHit,
		},
		Flights: make([]FlightCardDTO, len(result.Flights)),
	}
	for i, f := range result.Flights {
		dto.Flights[i] = ToFlightCardDTO(f)
	}
	return dto
}

// ToFlightCardDTO renders one flight card. The price is null when it
// cannot be coerced; the card never shows a fabricated fare.
func ToFlightCardDTO(f domain.FlightRecord) FlightCardDTO {
	dto := FlightCardDTO{
		ID:            f.ID,
		Airline:       f.Airline,
		FlightNumber:  f.FlightNumber,
		From:          domain.FormatAirportForDisplay(f.FromCity),
		To:            domain.FormatAirportForDisplay(f.ToCity),
		DepartureDate: f.DepartureDateDisplay(),
		DepartureTime: f.DepartureClockDisplay(),
		ArrivalDate:   f.ArrivalDateDisplay(),
		ArrivalTime:   f.ArrivalClockDisplay(),
		Duration:      f.Duration.Display(),
	}
	if amount, ok := f.Price.Amount(); ok {
		dto.Price = &amount
	}
	return dto
}

// ToBookingHistoryResponseDTO converts a booking list to its response.
func ToBookingHistoryResponseDTO(bookings []domain.Booking) *BookingHistoryResponseDTO {
	dto := &BookingHistoryResponseDTO{
		Total:    len(bookings),
		Bookings: make([]BookingHistoryItemDTO, len(bookings)),
	}
	for i, b := range bookings {
		dto.Bookings[i] = ToBookingHistoryItemDTO(b)
	}
	return dto
}

// ToBookingHistoryItemDTO renders one history entry.
func ToBookingHistoryItemDTO(b domain.Booking) BookingHistoryItemDTO {
	return BookingHistoryItemDTO{
		ID:            b.ID,
		FlightID:      b.FlightID,
		Flight:        b.Airline + " " + b.FlightNumber,
		Route:         b.Route(),
		TravelDate:    b.DepartureTime.FormatDate(),
		DepartureTime: b.DepartureTime.FormatClock(),
		Amount:        b.Amount,
		Status:        string(b.Status),
		BookedOn:      b.BookedAt.FormatDate(),
	}
}
