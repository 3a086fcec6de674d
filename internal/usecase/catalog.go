package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-system/internal/domain"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/cache"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/logger"
)

// DefaultCacheTTL is how long a filtered/sorted catalog page stays cached.
const DefaultCacheTTL = 30 * time.Second

// FlightListResult is the outcome of one catalog pass.
type FlightListResult struct {
	// Flights is the filtered, sorted catalog page
	Flights []domain.FlightRecord

	// Total is len(Flights), kept for response metadata
	Total int

	// CacheHit indicates the page came from the result cache
	CacheHit bool

	// ElapsedMs is how long the pass took
	ElapsedMs int64
}

// CatalogUseCase exposes the flight catalog to the storefront and the
// admin console.
type CatalogUseCase interface {
	// ListFlights runs the filter/sort pipeline over the catalog snapshot.
	ListFlights(ctx context.Context, cfg domain.FilterConfig, spec domain.SortSpec) (*FlightListResult, error)

	// GetFlight returns one flight by ID.
	GetFlight(ctx context.Context, id string) (domain.FlightRecord, error)

	// CreateFlight stores a new flight document, assigning an ID when absent.
	CreateFlight(ctx context.Context, flight domain.FlightRecord) (domain.FlightRecord, error)

	// UpdateFlight replaces an existing flight document.
	UpdateFlight(ctx context.Context, id string, flight domain.FlightRecord) (domain.FlightRecord, error)

	// DeleteFlight removes one flight document.
	DeleteFlight(ctx context.Context, id string) error

	// DeleteFlights removes a batch of flight documents, returning the
	// number actually removed.
	DeleteFlights(ctx context.Context, ids []string) (int, error)

	// Analytics computes the admin console's summary report.
	Analytics(ctx context.Context) (*domain.AnalyticsReport, error)
}

// Config contains configuration options for the catalog use case.
type Config struct {
	CacheTTL time.Duration
}

// catalogUseCase implements CatalogUseCase over a document store with a
// read-through result cache.
type catalogUseCase struct {
	store domain.Store
	cache cache.Cache
	ttl   time.Duration
	log   *logger.Logger

	// generation invalidates cached pages: every admin write bumps it, and
	// the counter is folded into each cache key.
	generation atomic.Int64
}

// NewCatalogUseCase creates a CatalogUseCase. A nil config uses defaults;
// pass cache.NewNoop() to disable result caching.
func NewCatalogUseCase(store domain.Store, c cache.Cache, log *logger.Logger, config *Config) CatalogUseCase {
	ttl := DefaultCacheTTL
	if config != nil && config.CacheTTL > 0 {
		ttl = config.CacheTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &catalogUseCase{
		store: store,
		cache: c,
		ttl:   ttl,
		log:   log.WithComponent("catalog"),
	}
}

// ListFlights implements the read path: cache lookup, then store snapshot,
// filter, sort, cache fill.
func (uc *catalogUseCase) ListFlights(ctx context.Context, cfg domain.FilterConfig, spec domain.SortSpec) (*FlightListResult, error) {
	start := time.Now()
	key := uc.cacheKey(cfg, spec)

	if cached, err := uc.cache.Get(ctx, key); err == nil {
		var flights []domain.FlightRecord
		if err := json.Unmarshal([]byte(cached), &flights); err == nil {
			return &FlightListResult{
				Flights:   flights,
				Total:     len(flights),
				CacheHit:  true,
				ElapsedMs: time.Since(start).Milliseconds(),
			}, nil
		}
		uc.log.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	}

	snapshot, err := uc.store.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	flights := SortFlights(FilterFlights(snapshot, cfg), spec)

	if payload, err := json.Marshal(flights); err == nil {
		if err := uc.cache.Set(ctx, key, string(payload), uc.ttl); err != nil {
			uc.log.Warn().Err(err).Msg("Failed to cache flight list")
		}
	}

	return &FlightListResult{
		Flights:   flights,
		Total:     len(flights),
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

// cacheKey fingerprints the filter configuration and sort spec, folding in
// the write generation so admin edits are visible immediately.
func (uc *catalogUseCase) cacheKey(cfg domain.FilterConfig, spec domain.SortSpec) string {
	airlines := make([]string, len(cfg.Airlines))
	copy(airlines, cfg.Airlines)
	sort.Strings(airlines)

	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%g|%g|%d|%d|%s|%s",
		strings.Join(airlines, ","),
		cfg.PriceRange.Min, cfg.PriceRange.Max,
		cfg.DepartureHours.Min, cfg.DepartureHours.Max,
		spec.Criterion, spec.Direction,
	)
	return fmt.Sprintf("flights:list:%d:%x", uc.generation.Load(), h.Sum64())
}

func (uc *catalogUseCase) GetFlight(ctx context.Context, id string) (domain.FlightRecord, error) {
	return uc.store.GetFlight(ctx, id)
}

func (uc *catalogUseCase) CreateFlight(ctx context.Context, flight domain.FlightRecord) (domain.FlightRecord, error) {
	if flight.ID == "" {
		flight.ID = uuid.NewString()
	}
	if err := uc.store.PutFlight(ctx, flight); err != nil {
		return domain.FlightRecord{}, fmt.Errorf("create flight: %w", err)
	}
	uc.generation.Add(1)
	uc.log.Info().Str("flight_id", flight.ID).Msg("Flight created")
	return flight, nil
}

func (uc *catalogUseCase) UpdateFlight(ctx context.Context, id string, flight domain.FlightRecord) (domain.FlightRecord, error) {
	if _, err := uc.store.GetFlight(ctx, id); err != nil {
		return domain.FlightRecord{}, err
	}
	flight.ID = id
	if err := uc.store.PutFlight(ctx, flight); err != nil {
		return domain.FlightRecord{}, fmt.Errorf("update flight: %w", err)
	}
	uc.generation.Add(1)
	uc.log.Info().Str("flight_id", id).Msg("Flight updated")
	return flight, nil
}

func (uc *catalogUseCase) DeleteFlight(ctx context.Context, id string) error {
	if err := uc.store.DeleteFlight(ctx, id); err != nil {
		return err
	}
	uc.generation.Add(1)
	uc.log.Info().Str("flight_id", id).Msg("Flight deleted")
	return nil
}

func (uc *catalogUseCase) DeleteFlights(ctx context.Context, ids []string) (int, error) {
	deleted, err := uc.store.DeleteFlights(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("batch delete flights: %w", err)
	}
	uc.generation.Add(1)
	uc.log.Info().Int("requested", len(ids)).Int("deleted", deleted).Msg("Flights batch-deleted")
	return deleted, nil
}
