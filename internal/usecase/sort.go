package usecase

import (
	"sort"

	"github.com/flight-booking/flight-booking-system/internal/domain"
)

// SortFlights orders flights according to the sort specification. The
// sort is not guaranteed stable for equal keys; ties may reorder between
// passes, which the storefront accepts.
//
// Comparison keys per criterion:
//   - price: the coerced fare; a pair touching an uncoercible price
//     compares equal
//   - duration: canonical integer minutes
//   - departureTime: epoch milliseconds, preferring the epoch-seconds
//     document shape over string parsing; a pair touching an unparseable
//     timestamp compares equal
//
// The comparator never panics: incomparable pairs degrade to a tie rather
// than aborting the whole sort. Does NOT mutate the input slice.
func SortFlights(flights []domain.FlightRecord, spec domain.SortSpec) []domain.FlightRecord {
	result := make([]domain.FlightRecord, len(flights))
	copy(result, flights)

	if len(result) < 2 {
		return result
	}

	mult := spec.Direction.Multiplier()
	sort.Slice(result, func(i, j int) bool {
		return compareFlights(result[i], result[j], spec.Criterion)*mult < 0
	})

	return result
}

// compareFlights returns a three-way ascending comparison for the given
// criterion, with an explicit incomparable-means-equal branch.
func compareFlights(a, b domain.FlightRecord, criterion domain.SortCriterion) int {
	switch criterion {
	case domain.SortByDuration:
		return compareInt(int64(a.Duration.Minutes()), int64(b.Duration.Minutes()))

	case domain.SortByDeparture:
		am, aok := a.DepartureTime.EpochMillis()
		bm, bok := b.DepartureTime.EpochMillis()
		if !aok || !bok {
			return 0
		}
		return compareInt(am, bm)

	default: // domain.SortByPrice
		aAmount, aok := a.Price.Amount()
		bAmount, bok := b.Price.Amount()
		if !aok || !bok {
			return 0
		}
		switch {
		case aAmount < bAmount:
			return -1
		case aAmount > bAmount:
			return 1
		default:
			return 0
		}
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
