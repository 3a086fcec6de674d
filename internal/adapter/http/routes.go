// Package http provides the HTTP handler layer for the flight booking API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight booking API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no version prefix, for load balancers)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Storefront endpoints
	api.GET("/flights", h.ListFlights)
	api.GET("/bookings", h.ListBookings)
	api.POST("/bookings", h.CreateBooking)

	// Admin console endpoints
	admin := api.Group("/admin")
	admin.GET("/analytics", h.Analytics)
	admin.POST("/flights", h.CreateFlight)
	admin.PUT("/flights/:id", h.UpdateFlight)
	admin.DELETE("/flights/:id", h.DeleteFlight)
	admin.POST("/flights/batch-delete", h.BatchDeleteFlights)
}
