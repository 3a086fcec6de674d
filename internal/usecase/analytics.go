package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/flight-booking/flight-booking-system/internal/domain"
)

// topRouteLimit caps how many routes the analytics report lists.
const topRouteLimit = 5

// Analytics computes the admin summary over a single catalog snapshot.
// Fare statistics cover only coercible prices; the same policy as the
// price filter, so a record invisible to purchasers never skews averages.
func (uc *catalogUseCase) Analytics(ctx context.Context) (*domain.AnalyticsReport, error) {
	flights, err := uc.store.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics snapshot: %w", err)
	}

	bookings, err := uc.store.ListBookings(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("analytics bookings: %w", err)
	}

	report := &domain.AnalyticsReport{
		TotalFlights:      len(flights),
		TotalBookings:     len(bookings),
		Prices:            priceStats(flights),
		FlightsPerAirline: make(map[string]int),
	}

	type route struct{ from, to string }
	routeCounts := make(map[route]int)

	for _, f := range flights {
		report.FlightsPerAirline[f.Airline]++
		routeCounts[route{
			from: domain.ExtractCode(f.FromCity),
			to:   domain.ExtractCode(f.ToCity),
		}]++
	}

	routes := make([]domain.RouteCount, 0, len(routeCounts))
	for r, n := range routeCounts {
		routes = append(routes, domain.RouteCount{From: r.from, To: r.to, Count: n})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Count != routes[j].Count {
			return routes[i].Count > routes[j].Count
		}
		if routes[i].From != routes[j].From {
			return routes[i].From < routes[j].From
		}
		return routes[i].To < routes[j].To
	})
	if len(routes) > topRouteLimit {
		routes = routes[:topRouteLimit]
	}
	report.TopRoutes = routes

	return report, nil
}

// priceStats scans the coercible fares for min/avg/max.
func priceStats(flights []domain.FlightRecord) domain.PriceStats {
	var stats domain.PriceStats
	var sum float64

	for _, f := range flights {
		amount, ok := f.Price.Amount()
		if !ok {
			continue
		}
		if stats.Samples == 0 || amount < stats.Min {
			stats.Min = amount
		}
		if amount > stats.Max {
			stats.Max = amount
		}
		sum += amount
		stats.Samples++
	}

	if stats.Samples > 0 {
		stats.Avg = sum / float64(stats.Samples)
	}
	return stats
}
