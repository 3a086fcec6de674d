package domain

import (
	"math"
	"strings"
)

// Departure-hour filter bounds. Hours are local hour-of-day; the maximum
// is 24 so the default range passes every record.
const (
	MinDepartureHour = 0
	MaxDepartureHour = 24
)

// PriceRange is an inclusive fare bound in the catalog's currency.
type PriceRange struct {
	// Min is the lowest acceptable fare (inclusive)
	Min float64 `json:"min"`

	// Max is the highest acceptable fare (inclusive)
	Max float64 `json:"max"`
}

// Contains reports whether amount falls inside the range.
func (r PriceRange) Contains(amount float64) bool {
	return amount >= r.Min && amount <= r.Max
}

// HourRange is an inclusive local hour-of-day window.
type HourRange struct {
	// Min is the earliest acceptable departure hour (inclusive, 0-24)
	Min int `json:"min"`

	// Max is the latest acceptable departure hour (inclusive, 0-24)
	Max int `json:"max"`
}

// Contains reports whether hour falls inside the window.
func (r HourRange) Contains(hour int) bool {
	return hour >= r.Min && hour <= r.Max
}

// FilterConfig defines the filter pass over the flight catalog. The three
// predicates are AND-combined.
type FilterConfig struct {
	// Airlines is the allow-set of airline names. Empty means no airline
	// restriction (OR-inclusion, not exclusion).
	Airlines []string `json:"airlines"`

	// PriceRange bounds the coerced fare. A record whose price cannot be
	// coerced is excluded regardless of the bounds (fail-closed): price is
	// load-bearing for a purchase decision, so a fabricated value would
	// mislead.
	PriceRange PriceRange `json:"priceRange"`

	// DepartureHours bounds the local departure hour. A record whose
	// departure time cannot be normalized is included regardless of the
	// bounds (fail-open): one bad timestamp must not blank the list.
	DepartureHours HourRange `json:"departureHours"`
}

// DefaultFilterConfig returns a configuration that passes every record
// with a coercible price.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		PriceRange:     PriceRange{Min: 0, Max: math.MaxFloat64},
		DepartureHours: HourRange{Min: MinDepartureHour, Max: MaxDepartureHour},
	}
}

// AirlineSet builds a case-insensitive lookup set from the allow-list.
func (c FilterConfig) AirlineSet() map[string]struct{} {
	if len(c.Airlines) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.Airlines))
	for _, a := range c.Airlines {
		set[strings.ToUpper(a)] = struct{}{}
	}
	return set
}
