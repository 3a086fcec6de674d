// Package integration provides helpers and integration tests for the
// flight booking system. These tests run the full stack: HTTP handlers,
// use cases, and a real document store backed by an in-memory database.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flight-booking/flight-booking-system/internal/adapter/http"
	"github.com/flight-booking/flight-booking-system/internal/adapter/store/sqlite"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/cache"
	"github.com/flight-booking/flight-booking-system/internal/usecase"
)

// TestServer wraps an Echo instance over a fresh document store and
// provides helper methods for integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Store *sqlite.Store
}

// NewTestServer wires handlers, use cases, and an in-memory document
// store. Result caching stays enabled so list requests exercise the
// read-through path.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	store, err := sqlite.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	catalog := usecase.NewCatalogUseCase(store, cache.NewNoop(), nil, nil)
	bookings := usecase.NewBookingUseCase(store, nil, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	httpAdapter.RegisterRoutes(e, httpAdapter.NewHandler(catalog, bookings))

	return &TestServer{
		Echo:  e,
		Store: store,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// ListFlights makes a catalog list request with the given query string.
func (ts *TestServer) ListFlights(query string) Response {
	path := "/api/v1/flights"
	if query != "" {
		path += "?" + query
	}
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// CreateFlight makes an admin flight-create request.
func (ts *TestServer) CreateFlight(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/admin/flights", Body: body})
}

// Book makes a booking request.
func (ts *TestServer) Book(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/bookings", Body: body})
}

// History makes a booking history request for the given email.
func (ts *TestServer) History(email string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/bookings?email=" + email})
}

// ParseInto decodes the response body into out, failing the test on
// malformed JSON.
func (r *Response) ParseInto(t *testing.T, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, out), "body: %s", r.Body)
}

// SeedFlight is a flight payload accepted by the admin create endpoint.
// Field types are loose on purpose so tests can send every historical
// document shape.
type SeedFlight struct {
	Airline       string      `json:"airline"`
	FlightNumber  string      `json:"flightNumber"`
	FromCity      string      `json:"fromCity"`
	ToCity        string      `json:"toCity"`
	DepartureTime interface{} `json:"departureTime"`
	ArrivalTime   interface{} `json:"arrivalTime,omitempty"`
	Price         interface{} `json:"price"`
	Duration      interface{} `json:"duration,omitempty"`
}

// Seed creates the flight through the admin API and returns its assigned ID.
func (ts *TestServer) Seed(t *testing.T, f SeedFlight) string {
	t.Helper()

	resp := ts.CreateFlight(f)
	require.Equal(t, http.StatusCreated, resp.Code, "seed flight: %s", resp.Body)

	var card httpAdapter.FlightCardDTO
	resp.ParseInto(t, &card)
	require.NotEmpty(t, card.ID)
	return card.ID
}

// DefaultSeedFlights returns a small catalog covering every document
// shape: epoch-seconds and ISO timestamps, numeric and string prices,
// minute-count and pre-formatted durations.
func DefaultSeedFlights() []SeedFlight {
	return []SeedFlight{
		{
			Airline:       "IndiGo",
			FlightNumber:  "6E-2001",
			FromCity:      "DEL",
			ToCity:        "BOM",
			DepartureTime: "2025-12-15T06:00:00",
			ArrivalTime:   "2025-12-15T08:10:00",
			Price:         4500,
			Duration:      130,
		},
		{
			Airline:       "Vistara",
			FlightNumber:  "UK-995",
			FromCity:      "Delhi (DEL)",
			ToCity:        "Mumbai",
			// 2025-12-15T01:30:00Z; the local hour stays inside 13..16 for
			// every UTC offset, keeping hour-window tests timezone-proof.
			DepartureTime: map[string]interface{}{"seconds": 1765762200},
			Price:         "5200",
			Duration:      "2h 15m",
		},
		{
			Airline:       "Air India",
			FlightNumber:  "AI-101",
			FromCity:      "BLR",
			ToCity:        "DEL",
			DepartureTime: "2025-12-15T21:45:00",
			Price:         "3900",
			Duration:      "2h 45m",
		},
	}
}
