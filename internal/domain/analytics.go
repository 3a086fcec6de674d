package domain

// AnalyticsReport is the admin console's summary of the catalog and
// booking activity.
type AnalyticsReport struct {
	// TotalFlights is the number of flight documents in the catalog
	TotalFlights int `json:"totalFlights"`

	// TotalBookings is the number of booking documents
	TotalBookings int `json:"totalBookings"`

	// Prices summarizes the coercible fares; uncoercible prices are
	// skipped, never fabricated
	Prices PriceStats `json:"prices"`

	// FlightsPerAirline counts catalog entries by airline name
	FlightsPerAirline map[string]int `json:"flightsPerAirline"`

	// TopRoutes lists the most frequent routes, busiest first
	TopRoutes []RouteCount `json:"topRoutes"`
}

// PriceStats holds fare statistics over the coercible prices.
type PriceStats struct {
	// Samples is how many fares were coercible
	Samples int `json:"samples"`

	// Min, Avg, and Max are zero when Samples is zero
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

// RouteCount pairs a formatted route with its catalog frequency.
type RouteCount struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}
