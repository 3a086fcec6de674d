// Package http provides the HTTP handler layer for the flight booking API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-system/internal/domain"
)

// emailPattern is a deliberately loose sanity check, not RFC validation.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// UpsertFlightRequest is the request body for admin flight create/update.
// Timestamp, price, and duration fields bind through the domain union
// types, so any store-accepted shape is also accepted over the API.
type UpsertFlightRequest struct {
	// Airline is the operating airline's display name
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "AI-101")
	FlightNumber string `json:"flightNumber"`

	// FromCity is the origin as an IATA code, city name, or "City (CODE)"
	FromCity string `json:"fromCity"`

	// ToCity is the destination in the same accepted forms
	ToCity string `json:"toCity"`

	// DepartureTime and ArrivalTime accept ISO strings or {"seconds": N}
	DepartureTime domain.TemporalValue `json:"departureTime"`
	ArrivalTime   domain.TemporalValue `json:"arrivalTime"`

	// Price accepts a number or numeric string but must coerce
	Price domain.PriceValue `json:"price"`

	// Duration accepts minutes or a "2h 30m" string
	Duration domain.DurationValue `json:"duration"`
}

// Validate checks the admin flight payload. Admin entry is stricter than
// catalog reads: the price must coerce and both endpoints must resolve to
// valid IATA codes, so the admin cannot create records the purchase flow
// would reject.
func (r *UpsertFlightRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Airline) == "" {
		errs.Add("airline", "airline is required")
	}
	if strings.TrimSpace(r.FlightNumber) == "" {
		errs.Add("flightNumber", "flightNumber is required")
	}

	r.validateCity(errs, "fromCity", r.FromCity)
	r.validateCity(errs, "toCity", r.ToCity)

	if _, ok := r.Price.Amount(); !ok {
		errs.Add("price", "price must be a finite number or numeric string")
	}

	if r.DepartureTime.IsAbsent() {
		errs.Add("departureTime", "departureTime is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *UpsertFlightRequest) validateCity(errs *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, field+" is required")
		return
	}
	if !domain.IsValidCode(domain.ExtractCode(value)) {
		errs.Add(field, field+" must resolve to a 3-letter IATA airport code")
	}
}

// ToFlightRecord converts the validated request to a domain record.
func (r *UpsertFlightRequest) ToFlightRecord() domain.FlightRecord {
	return domain.FlightRecord{
		Airline:       strings.TrimSpace(r.Airline),
		FlightNumber:  strings.TrimSpace(r.FlightNumber),
		FromCity:      domain.ExtractCode(r.FromCity),
		ToCity:        domain.ExtractCode(r.ToCity),
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Price:         r.Price,
		Duration:      r.Duration,
	}
}

// CreateBookingRequest is the request body for booking a flight.
type CreateBookingRequest struct {
	FlightID      string `json:"flightId"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
}

// Validate checks the booking payload.
func (r *CreateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.FlightID) == "" {
		errs.Add("flightId", "flightId is required")
	}
	if r.CustomerEmail == "" {
		errs.Add("customerEmail", "customerEmail is required")
	} else if !emailPattern.MatchString(r.CustomerEmail) {
		errs.Add("customerEmail", "customerEmail must be a valid email address")
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		errs.Add("customerName", "customerName is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// BatchDeleteRequest is the request body for admin batch deletion.
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// Validate checks the batch delete payload.
func (r *BatchDeleteRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.IDs) == 0 {
		errs.Add("ids", "ids must contain at least one flight id")
	}
	for i, id := range r.IDs {
		if strings.TrimSpace(id) == "" {
			errs.Add(fmt.Sprintf("ids[%d]", i), "id must not be empty")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// parseFilterConfig builds the filter configuration from list query
// parameters. Omitted parameters keep the pass-everything defaults.
func parseFilterConfig(c echo.Context) (domain.FilterConfig, error) {
	errs := &ValidationErrors{}
	cfg := domain.DefaultFilterConfig()

	if raw := c.QueryParam("airlines"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(a); trimmed != "" {
				cfg.Airlines = append(cfg.Airlines, trimmed)
			}
		}
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || n < 0 {
			errs.Add("min_price", "min_price must be a non-negative number")
		} else {
			cfg.PriceRange.Min = n
		}
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || n < 0 {
			errs.Add("max_price", "max_price must be a non-negative number")
		} else {
			cfg.PriceRange.Max = n
		}
	}
	if cfg.PriceRange.Min > cfg.PriceRange.Max {
		errs.Add("min_price", "min_price must be less than or equal to max_price")
	}

	if raw := c.QueryParam("min_hour"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < domain.MinDepartureHour || n > domain.MaxDepartureHour {
			errs.Add("min_hour", "min_hour must be between 0 and 24")
		} else {
			cfg.DepartureHours.Min = n
		}
	}
	if raw := c.QueryParam("max_hour"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < domain.MinDepartureHour || n > domain.MaxDepartureHour {
			errs.Add("max_hour", "max_hour must be between 0 and 24")
		} else {
			cfg.DepartureHours.Max = n
		}
	}
	if cfg.DepartureHours.Min > cfg.DepartureHours.Max {
		errs.Add("min_hour", "min_hour must be less than or equal to max_hour")
	}

	if errs.HasErrors() {
		return domain.FilterConfig{}, errs
	}
	return cfg, nil
}

// parseSortSpec builds the sort specification from list query parameters.
// Unknown values fall back to the defaults rather than erroring; sorting
// is cosmetic and should never block a listing.
func parseSortSpec(c echo.Context) domain.SortSpec {
	return domain.SortSpec{
		Criterion: domain.ParseSortCriterion(c.QueryParam("sort_by")),
		Direction: domain.ParseSortDirection(c.QueryParam("sort_dir")),
	}
}
