// Package http provides the HTTP handler layer for the flight booking API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-system/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-system/internal/domain"
	"github.com/flight-booking/flight-booking-system/internal/usecase"
)

// Handler handles HTTP requests for catalog, booking, and admin endpoints.
type Handler struct {
	catalog  usecase.CatalogUseCase
	bookings usecase.BookingUseCase
}

// NewHandler creates a Handler with the given use cases.
func NewHandler(catalog usecase.CatalogUseCase, bookings usecase.BookingUseCase) *Handler {
	return &Handler{
		catalog:  catalog,
		bookings: bookings,
	}
}

// ListFlights handles GET /api/v1/flights
//
// @Summary List flights
// @Description List catalog flights, filtered and sorted
// @Tags flights
// @Produce json
// @Param airlines query string false "Comma-separated airline allow-list"
// @Param min_price query number false "Minimum fare (inclusive)"
// @Param max_price query number false "Maximum fare (inclusive)"
// @Param min_hour query integer false "Earliest departure hour (0-24)"
// @Param max_hour query integer false "Latest departure hour (0-24)"
// @Param sort_by query string false "Sort criterion: price, duration, departureTime"
// @Param sort_dir query string false "Sort direction: asc, desc"
// @Success 200 {object} FlightListResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights [get]
func (h *Handler) ListFlights(c echo.Context) error {
	cfg, err := parseFilterConfig(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.catalog.ListFlights(c.Request().Context(), cfg, parseSortSpec(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToFlightListResponseDTO(result))
}

// CreateFlight handles POST /api/v1/admin/flights
//
// @Summary Create a flight
// @Tags admin
// @Accept json
// @Produce json
// @Param request body UpsertFlightRequest true "Flight document"
// @Success 201 {object} FlightCardDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/admin/flights [post]
func (h *Handler) CreateFlight(c echo.Context) error {
	var req UpsertFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	flight, err := h.catalog.CreateFlight(c.Request().Context(), req.ToFlightRecord())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToFlightCardDTO(flight))
}

// UpdateFlight handles PUT /api/v1/admin/flights/:id
//
// @Summary Replace a flight
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Param request body UpsertFlightRequest true "Flight document"
// @Success 200 {object} FlightCardDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown flight"
// @Router /api/v1/admin/flights/{id} [put]
func (h *Handler) UpdateFlight(c echo.Context) error {
	var req UpsertFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	flight, err := h.catalog.UpdateFlight(c.Request().Context(), c.Param("id"), req.ToFlightRecord())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToFlightCardDTO(flight))
}

// DeleteFlight handles DELETE /api/v1/admin/flights/:id
//
// @Summary Delete a flight
// @Tags admin
// @Param id path string true "Flight ID"
// @Success 204 "Deleted"
// @Failure 404 {object} response.ErrorDetail "Unknown flight"
// @Router /api/v1/admin/flights/{id} [delete]
func (h *Handler) DeleteFlight(c echo.Context) error {
	if err := h.catalog.DeleteFlight(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// BatchDeleteFlights handles POST /api/v1/admin/flights/batch-delete
//
// @Summary Delete a batch of flights
// @Tags admin
// @Accept json
// @Produce json
// @Param request body BatchDeleteRequest true "Flight IDs"
// @Success 200 {object} BatchDeleteResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/admin/flights/batch-delete [post]
func (h *Handler) BatchDeleteFlights(c echo.Context) error {
	var req BatchDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	deleted, err := h.catalog.DeleteFlights(c.Request().Context(), req.IDs)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &BatchDeleteResponseDTO{
		Requested: len(req.IDs),
		Deleted:   deleted,
	})
}

// Analytics handles GET /api/v1/admin/analytics
//
// @Summary Catalog and booking analytics
// @Tags admin
// @Produce json
// @Success 200 {object} domain.AnalyticsReport
// @Router /api/v1/admin/analytics [get]
func (h *Handler) Analytics(c echo.Context) error {
	report, err := h.catalog.Analytics(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, report)
}

// ListBookings handles GET /api/v1/bookings
//
// @Summary Booking history
// @Tags bookings
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {object} BookingHistoryResponseDTO
// @Failure 400 {object} response.ErrorDetail "Missing email"
// @Router /api/v1/bookings [get]
func (h *Handler) ListBookings(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.ValidationErrorWithMessage(c, "email query parameter is required")
	}

	bookings, err := h.bookings.History(c.Request().Context(), email)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToBookingHistoryResponseDTO(bookings))
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Book a flight
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Booking request"
// @Success 201 {object} BookingHistoryItemDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown flight"
// @Failure 422 {object} response.ErrorDetail "Price unavailable"
// @Router /api/v1/bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	booking, err := h.bookings.Book(c.Request().Context(), usecase.BookRequest{
		FlightID:      req.FlightID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToBookingHistoryItemDTO(booking))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound):
		return response.NotFound(c, response.MsgFlightNotFound)
	case errors.Is(err, domain.ErrInvalidPrice):
		return response.PriceUnavailable(c)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	default:
		return response.InternalServerError(c)
	}
}
