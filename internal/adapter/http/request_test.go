package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-booking/flight-booking-system/internal/domain"
)

func queryContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseFilterConfig_Defaults(t *testing.T) {
	cfg, err := parseFilterConfig(queryContext(""))
	require.NoError(t, err)

	assert.Empty(t, cfg.Airlines)
	assert.Equal(t, domain.DefaultFilterConfig(), cfg)
}

func TestParseFilterConfig(t *testing.T) {
	cfg, err := parseFilterConfig(queryContext("airlines=IndiGo,%20Vistara,&min_price=1000&max_price=8000&min_hour=6&max_hour=12"))
	require.NoError(t, err)

	assert.Equal(t, []string{"IndiGo", "Vistara"}, cfg.Airlines)
	assert.Equal(t, domain.PriceRange{Min: 1000, Max: 8000}, cfg.PriceRange)
	assert.Equal(t, domain.HourRange{Min: 6, Max: 12}, cfg.DepartureHours)
}

func TestParseFilterConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "negative min price", query: "min_price=-1", field: "min_price"},
		{name: "non-numeric max price", query: "max_price=cheap", field: "max_price"},
		{name: "hour above 24", query: "max_hour=25", field: "max_hour"},
		{name: "non-numeric hour", query: "min_hour=morning", field: "min_hour"},
		{name: "inverted price window", query: "min_price=500&max_price=100", field: "min_price"},
		{name: "inverted hour window", query: "min_hour=18&max_hour=6", field: "min_hour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFilterConfig(queryContext(tt.query))
			require.Error(t, err)

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

// Sort parameters are cosmetic: unknown values fall back to defaults
// instead of failing the request.
func TestParseSortSpec(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.SortSpec
	}{
		{
			name:  "empty",
			query: "",
			want:  domain.DefaultSortSpec(),
		},
		{
			name:  "duration descending",
			query: "sort_by=duration&sort_dir=desc",
			want:  domain.SortSpec{Criterion: domain.SortByDuration, Direction: domain.SortDescending},
		},
		{
			name:  "departure time",
			query: "sort_by=departureTime",
			want:  domain.SortSpec{Criterion: domain.SortByDeparture, Direction: domain.SortAscending},
		},
		{
			name:  "unknown values fall back",
			query: "sort_by=color&sort_dir=sideways",
			want:  domain.DefaultSortSpec(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSortSpec(queryContext(tt.query)))
		})
	}
}

func TestUpsertFlightRequest_Validate(t *testing.T) {
	valid := func() UpsertFlightRequest {
		return UpsertFlightRequest{
			Airline:       "IndiGo",
			FlightNumber:  "6E-2001",
			FromCity:      "DEL",
			ToCity:        "Mumbai (BOM)",
			DepartureTime: domain.RawTimestamp("2025-12-15T06:00:00"),
			Price:         domain.PriceAmount(4500),
			Duration:      domain.DurationMinutes(130),
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*UpsertFlightRequest)
		field  string
	}{
		{name: "missing airline", mutate: func(r *UpsertFlightRequest) { r.Airline = "  " }, field: "airline"},
		{name: "missing flight number", mutate: func(r *UpsertFlightRequest) { r.FlightNumber = "" }, field: "flightNumber"},
		{name: "missing from city", mutate: func(r *UpsertFlightRequest) { r.FromCity = "" }, field: "fromCity"},
		{name: "unresolvable to city", mutate: func(r *UpsertFlightRequest) { r.ToCity = "somewhere nice" }, field: "toCity"},
		{name: "uncoercible price", mutate: func(r *UpsertFlightRequest) { r.Price = domain.PriceText("TBD") }, field: "price"},
		{name: "missing departure", mutate: func(r *UpsertFlightRequest) { r.DepartureTime = domain.AbsentTime() }, field: "departureTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestUpsertFlightRequest_ToFlightRecord(t *testing.T) {
	req := UpsertFlightRequest{
		Airline:      " IndiGo ",
		FlightNumber: "6E-2001",
		FromCity:     "Delhi (DEL)",
		ToCity:       "Mumbai",
		Price:        domain.PriceAmount(4500),
	}

	record := req.ToFlightRecord()

	assert.Equal(t, "IndiGo", record.Airline)
	assert.Equal(t, "DEL", record.FromCity)
	assert.Equal(t, "BOM", record.ToCity)
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateBookingRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     CreateBookingRequest{FlightID: "f1", CustomerEmail: "rahul@example.com", CustomerName: "Rahul Sharma"},
			wantErr: false,
		},
		{
			name:    "missing flight id",
			req:     CreateBookingRequest{CustomerEmail: "rahul@example.com", CustomerName: "Rahul Sharma"},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     CreateBookingRequest{FlightID: "f1", CustomerEmail: "not-an-email", CustomerName: "Rahul Sharma"},
			wantErr: true,
		},
		{
			name:    "missing name",
			req:     CreateBookingRequest{FlightID: "f1", CustomerEmail: "rahul@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBatchDeleteRequest_Validate(t *testing.T) {
	assert.NoError(t, (&BatchDeleteRequest{IDs: []string{"f1"}}).Validate())
	assert.Error(t, (&BatchDeleteRequest{}).Validate())
	assert.Error(t, (&BatchDeleteRequest{IDs: []string{"f1", " "}}).Validate())
}
