package domain

// SortCriterion defines the available sort keys for flight results.
type SortCriterion string

// Available sort criteria.
const (
	// SortByPrice sorts by the coerced fare
	SortByPrice SortCriterion = "price"

	// SortByDuration sorts by canonical duration minutes
	SortByDuration SortCriterion = "duration"

	// SortByDeparture sorts by departure epoch milliseconds
	SortByDeparture SortCriterion = "departureTime"
)

// IsValid checks if the criterion is a valid value.
func (s SortCriterion) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// SortDirection defines the ordering direction.
type SortDirection string

// Available sort directions.
const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// IsValid checks if the direction is a valid value.
func (d SortDirection) IsValid() bool {
	return d == SortAscending || d == SortDescending
}

// Multiplier returns the factor applied to a raw ascending comparison:
// +1 for ascending, -1 for descending.
func (d SortDirection) Multiplier() int {
	if d == SortDescending {
		return -1
	}
	return 1
}

// SortSpec pairs a criterion with a direction.
type SortSpec struct {
	Criterion SortCriterion `json:"criterion"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortSpec orders by price ascending, the storefront default.
func DefaultSortSpec() SortSpec {
	return SortSpec{Criterion: SortByPrice, Direction: SortAscending}
}

// ParseSortCriterion converts a string to a SortCriterion, defaulting to
// price when empty or invalid.
func ParseSortCriterion(s string) SortCriterion {
	c := SortCriterion(s)
	if c.IsValid() {
		return c
	}
	return SortByPrice
}

// ParseSortDirection converts a string to a SortDirection, defaulting to
// ascending when empty or invalid.
func ParseSortDirection(s string) SortDirection {
	d := SortDirection(s)
	if d.IsValid() {
		return d
	}
	return SortAscending
}
