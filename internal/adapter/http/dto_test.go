package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-booking/flight-booking-system/internal/domain"
)

// A document full of malformed fields still renders a complete card: every
// display slot gets its fallback token and the price goes null.
func TestToFlightCardDTO_Fallbacks(t *testing.T) {
	card := ToFlightCardDTO(domain.FlightRecord{
		ID:            "f1",
		Airline:       "SpiceJet",
		FlightNumber:  "SG-8701",
		FromCity:      "",
		ToCity:        "XYZ",
		DepartureTime: domain.RawTimestamp("soon"),
		ArrivalTime:   domain.AbsentTime(),
		Price:         domain.PriceText("on request"),
		Duration:      domain.DurationText("some hours"),
	})

	assert.Equal(t, "Unknown (???)", card.From)
	assert.Equal(t, "XYZ (XYZ)", card.To)
	assert.Equal(t, "Invalid date", card.DepartureDate)
	assert.Equal(t, "Invalid time", card.DepartureTime)
	assert.Equal(t, "N/A", card.ArrivalDate)
	assert.Equal(t, "N/A", card.ArrivalTime)
	assert.Equal(t, "some hours", card.Duration)
	assert.Nil(t, card.Price)
}

// Pre-rendered display fields on the document win over normalization.
func TestToFlightCardDTO_PrecomputedDisplayWins(t *testing.T) {
	card := ToFlightCardDTO(domain.FlightRecord{
		ID:                   "f1",
		Airline:              "IndiGo",
		FromCity:             "DEL",
		ToCity:               "BOM",
		DepartureTime:        domain.RawTimestamp("2025-12-15T06:00:00"),
		DisplayDepartureDate: "15 Dec",
		DisplayDepartureTime: "06:00",
		Price:                domain.PriceAmount(4500),
		Duration:             domain.DurationMinutes(130),
	})

	assert.Equal(t, "15 Dec", card.DepartureDate)
	assert.Equal(t, "06:00", card.DepartureTime)
	require.NotNil(t, card.Price)
	assert.Equal(t, float64(4500), *card.Price)
}
