// Package usecase provides the business logic for the flight booking
// system: the filter/sort pipeline over the catalog, booking history, and
// admin analytics.
package usecase

import (
	"strings"

	"github.com/flight-booking/flight-booking-system/internal/domain"
)

// FilterFlights applies the filter configuration to a list of flights.
// It returns a new slice containing only flights that match all three
// predicates, in their original order (stable subsequence).
//
// Behavior:
//   - Airline predicate passes when the allow-set is empty or the record's
//     airline is a member (case-insensitive)
//   - Price predicate is fail-closed: an uncoercible price excludes the
//     record regardless of the configured bounds
//   - Departure-hour predicate is fail-open: an unparseable departure time
//     includes the record regardless of the configured bounds
//   - Does NOT mutate the original flights slice
//   - Performance is O(n) where n = number of flights
func FilterFlights(flights []domain.FlightRecord, cfg domain.FilterConfig) []domain.FlightRecord {
	airlineSet := cfg.AirlineSet()

	result := make([]domain.FlightRecord, 0, len(flights))
	for _, f := range flights {
		if passesAllFilters(f, cfg, airlineSet) {
			result = append(result, f)
		}
	}
	return result
}

// passesAllFilters checks if a flight passes all three AND-combined
// predicates.
func passesAllFilters(f domain.FlightRecord, cfg domain.FilterConfig, airlineSet map[string]struct{}) bool {
	if !matchesAirlines(f, airlineSet) {
		return false
	}
	if !matchesPrice(f, cfg.PriceRange) {
		return false
	}
	return matchesDepartureHour(f, cfg.DepartureHours)
}

// matchesAirlines passes when no allow-set is configured or the record's
// airline is a member.
func matchesAirlines(f domain.FlightRecord, airlineSet map[string]struct{}) bool {
	if airlineSet == nil {
		return true
	}
	_, ok := airlineSet[strings.ToUpper(f.Airline)]
	return ok
}

// matchesPrice passes when the coerced fare falls inside the inclusive
// bounds. Uncoercible prices fail the predicate (fail-closed).
func matchesPrice(f domain.FlightRecord, r domain.PriceRange) bool {
	amount, ok := f.Price.Amount()
	if !ok {
		return false
	}
	return r.Contains(amount)
}

// matchesDepartureHour passes when the local departure hour falls inside
// the inclusive bounds. Unparseable departure times pass the predicate
// (fail-open).
func matchesDepartureHour(f domain.FlightRecord, r domain.HourRange) bool {
	t, ok := f.DepartureTime.Normalize()
	if !ok {
		return true
	}
	return r.Contains(t.Hour())
}
