package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-system/internal/domain"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/timeutil"
)

// BookRequest carries what the storefront sends when booking a flight.
type BookRequest struct {
	FlightID      string
	CustomerEmail string
	CustomerName  string
}

// BookingUseCase exposes booking creation and history.
type BookingUseCase interface {
	// Book places a booking against a catalog flight.
	Book(ctx context.Context, req BookRequest) (domain.Booking, error)

	// History returns a customer's bookings, most recent first.
	History(ctx context.Context, email string) ([]domain.Booking, error)
}

// bookingUseCase implements BookingUseCase over the document store.
type bookingUseCase struct {
	store domain.Store
	clock timeutil.Clock
	log   *logger.Logger
}

// NewBookingUseCase creates a BookingUseCase. A nil clock uses system time.
func NewBookingUseCase(store domain.Store, clock timeutil.Clock, log *logger.Logger) BookingUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &bookingUseCase{
		store: store,
		clock: clock,
		log:   log.WithComponent("bookings"),
	}
}

// Book denormalizes the flight onto the booking and charges its coerced
// fare. A flight whose price cannot be coerced is rejected: fabricating an
// amount would mislead the purchaser.
func (uc *bookingUseCase) Book(ctx context.Context, req BookRequest) (domain.Booking, error) {
	flight, err := uc.store.GetFlight(ctx, req.FlightID)
	if err != nil {
		return domain.Booking{}, err
	}

	amount, ok := flight.Price.Amount()
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: flight %s", domain.ErrInvalidPrice, flight.ID)
	}

	booking := domain.Booking{
		ID:            uuid.NewString(),
		FlightID:      flight.ID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		Airline:       flight.Airline,
		FlightNumber:  flight.FlightNumber,
		FromCity:      flight.FromCity,
		ToCity:        flight.ToCity,
		DepartureTime: flight.DepartureTime,
		Amount:        amount,
		Status:        domain.BookingConfirmed,
		BookedAt:      domain.Instant(uc.clock.Now()),
	}

	if err := uc.store.PutBooking(ctx, booking); err != nil {
		return domain.Booking{}, fmt.Errorf("store booking: %w", err)
	}

	uc.log.Info().
		Str("booking_id", booking.ID).
		Str("flight_id", booking.FlightID).
		Msg("Booking confirmed")
	return booking, nil
}

// History orders bookings newest first by the booked-at instant. Bookings
// whose timestamp cannot be normalized sink to the end rather than
// breaking the listing.
func (uc *bookingUseCase) History(ctx context.Context, email string) ([]domain.Booking, error) {
	bookings, err := uc.store.ListBookings(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		im, iok := bookings[i].BookedAt.EpochMillis()
		jm, jok := bookings[j].BookedAt.EpochMillis()
		if !iok || !jok {
			return iok
		}
		return im > jm
	})

	return bookings, nil
}
