package sqlite

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-booking/flight-booking-system/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_FlightCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	flight := domain.FlightRecord{
		ID:            "f1",
		Airline:       "IndiGo",
		FlightNumber:  "6E-2001",
		FromCity:      "DEL",
		ToCity:        "BOM",
		Price:         domain.PriceAmount(4500),
		DepartureTime: domain.RawTimestamp("2025-12-15T06:00:00"),
		Duration:      domain.DurationText("2h 10m"),
	}
	require.NoError(t, s.PutFlight(ctx, flight))

	got, err := s.GetFlight(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "IndiGo", got.Airline)

	amount, ok := got.Price.Amount()
	require.True(t, ok)
	assert.Equal(t, float64(4500), amount)
	assert.Equal(t, "2h 10m", got.Duration.Display())
	assert.Equal(t, "Dec 15, 2025", got.DepartureTime.FormatDate())

	// Upsert replaces in place.
	flight.Airline = "Vistara"
	require.NoError(t, s.PutFlight(ctx, flight))

	flights, err := s.ListFlights(ctx)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "Vistara", flights[0].Airline)

	require.NoError(t, s.DeleteFlight(ctx, "f1"))
	_, err = s.GetFlight(ctx, "f1")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestStore_GetFlight_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetFlight(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestStore_DeleteFlight_NotFound(t *testing.T) {
	s := openTestStore(t)

	err := s.DeleteFlight(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestStore_PutFlight_RequiresID(t *testing.T) {
	s := openTestStore(t)

	err := s.PutFlight(context.Background(), domain.FlightRecord{Airline: "IndiGo"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

// Documents with heterogeneous field shapes must survive a storage round
// trip without being normalized away.
func TestStore_HeterogeneousDocuments(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	docs := []string{
		`{"id":"f1","airline":"IndiGo","price":4500,"duration":130,"departureTime":{"seconds":1765800000}}`,
		`{"id":"f2","airline":"Vistara","price":"5200","duration":"2h 30m","departureTime":"2025-12-15T14:30:00"}`,
		`{"id":"f3","airline":"SpiceJet","price":"on request","duration":"abc","departureTime":"soon"}`,
	}
	for _, doc := range docs {
		var flight domain.FlightRecord
		require.NoError(t, json.Unmarshal([]byte(doc), &flight))
		require.NoError(t, s.PutFlight(ctx, flight))
	}

	flights, err := s.ListFlights(ctx)
	require.NoError(t, err)
	require.Len(t, flights, 3)

	f1, err := s.GetFlight(ctx, "f1")
	require.NoError(t, err)
	millis, ok := f1.DepartureTime.EpochMillis()
	require.True(t, ok)
	assert.Equal(t, int64(1765800000000), millis)

	f2, err := s.GetFlight(ctx, "f2")
	require.NoError(t, err)
	amount, ok := f2.Price.Amount()
	require.True(t, ok)
	assert.Equal(t, float64(5200), amount)
	assert.Equal(t, 150, f2.Duration.Minutes())

	f3, err := s.GetFlight(ctx, "f3")
	require.NoError(t, err)
	_, ok = f3.Price.Amount()
	assert.False(t, ok)
	assert.Equal(t, "---", f3.Duration.Display())
	assert.Equal(t, "Invalid date", f3.DepartureTime.FormatDate())
}

func TestStore_DeleteFlights(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"f1", "f2", "f3"} {
		require.NoError(t, s.PutFlight(ctx, domain.FlightRecord{ID: id, Airline: "IndiGo"}))
	}

	deleted, err := s.DeleteFlights(ctx, []string{"f1", "f3", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	flights, err := s.ListFlights(ctx)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "f2", flights[0].ID)

	deleted, err = s.DeleteFlights(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestStore_Bookings(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	bookings := []domain.Booking{
		{ID: "b1", CustomerEmail: "rahul@example.com", FlightID: "f1", Amount: 4500, Status: domain.BookingConfirmed},
		{ID: "b2", CustomerEmail: "priya@example.com", FlightID: "f2", Amount: 5200, Status: domain.BookingConfirmed},
		{ID: "b3", CustomerEmail: "Rahul@Example.com", FlightID: "f3", Amount: 3900, Status: domain.BookingConfirmed},
	}
	for _, b := range bookings {
		require.NoError(t, s.PutBooking(ctx, b))
	}

	all, err := s.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Email matching is case-insensitive.
	mine, err := s.ListBookings(ctx, "rahul@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "b1", mine[0].ID)
	assert.Equal(t, "b3", mine[1].ID)
}
