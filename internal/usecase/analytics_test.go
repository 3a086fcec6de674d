package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-booking/flight-booking-system/internal/domain"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/cache"
	"github.com/flight-booking/flight-booking-system/test/mock"
)

func routedFlight(id, airline, from, to string, price domain.PriceValue) domain.FlightRecord {
	return domain.FlightRecord{
		ID:       id,
		Airline:  airline,
		FromCity: from,
		ToCity:   to,
		Price:    price,
	}
}

func TestCatalog_Analytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockStore(ctrl)
	store.EXPECT().ListFlights(gomock.Any()).Return([]domain.FlightRecord{
		routedFlight("f1", "IndiGo", "DEL", "BOM", domain.PriceAmount(3000)),
		routedFlight("f2", "IndiGo", "Delhi (DEL)", "Mumbai (BOM)", domain.PriceAmount(5000)),
		routedFlight("f3", "Vistara", "BLR", "DEL", domain.PriceText("7000")),
		routedFlight("f4", "Vistara", "BLR", "DEL", domain.PriceText("on request")),
	}, nil)
	store.EXPECT().ListBookings(gomock.Any(), "").Return([]domain.Booking{
		{ID: "b1"}, {ID: "b2"},
	}, nil)

	uc := NewCatalogUseCase(store, cache.NewNoop(), nil, nil)

	report, err := uc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalFlights)
	assert.Equal(t, 2, report.TotalBookings)

	// Only coercible fares count toward the statistics.
	assert.Equal(t, 3, report.Prices.Samples)
	assert.Equal(t, float64(3000), report.Prices.Min)
	assert.Equal(t, float64(5000), report.Prices.Avg)
	assert.Equal(t, float64(7000), report.Prices.Max)

	assert.Equal(t, map[string]int{"IndiGo": 2, "Vistara": 2}, report.FlightsPerAirline)

	// Route counting normalizes display labels to codes, so "Delhi (DEL)"
	// and "DEL" are the same origin.
	require.Len(t, report.TopRoutes, 2)
	assert.Equal(t, domain.RouteCount{From: "BLR", To: "DEL", Count: 2}, report.TopRoutes[0])
	assert.Equal(t, domain.RouteCount{From: "DEL", To: "BOM", Count: 2}, report.TopRoutes[1])
}

func TestCatalog_Analytics_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockStore(ctrl)
	store.EXPECT().ListFlights(gomock.Any()).Return(nil, nil)
	store.EXPECT().ListBookings(gomock.Any(), "").Return(nil, nil)

	uc := NewCatalogUseCase(store, cache.NewNoop(), nil, nil)

	report, err := uc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.TotalFlights)
	assert.Zero(t, report.Prices.Samples)
	assert.Empty(t, report.TopRoutes)
}
