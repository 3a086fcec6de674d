// Package sqlite persists flight and booking documents in a single
// Firestore-style table: one row per document, with the raw JSON payload
// kept intact so heterogeneous field shapes survive storage round-trips.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/flight-booking/flight-booking-system/internal/domain"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/logger"
)

// Collection names within the documents table.
const (
	collectionFlights  = "flights"
	collectionBookings = "bookings"
)

// Store implements domain.Store over SQLite.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// Open opens (creating if necessary) the document database at path and
// initializes the schema. Use ":memory:" for tests.
func Open(path string, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}

	// Each pooled connection to an in-memory database sees a different
	// database, so pin the pool to one connection.
	if strings.Contains(path, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, log: log.WithComponent("sqlite-store")}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initSchema creates the documents table and its indexes.
func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (collection, id)
		)
	`)
	if err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}

	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection)`)
	if err != nil {
		return fmt.Errorf("create documents index: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListFlights returns every flight document. Documents that fail to decode
// are skipped with a warning; the tolerant union types make that rare, but
// one corrupt row must not blank the catalog.
func (s *Store) ListFlights(ctx context.Context) ([]domain.FlightRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM documents WHERE collection = ? ORDER BY id`, collectionFlights)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	var flights []domain.FlightRecord
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}

		var flight domain.FlightRecord
		if err := json.Unmarshal([]byte(data), &flight); err != nil {
			s.log.Warn().Str("id", id).Err(err).Msg("Skipping undecodable flight document")
			continue
		}
		if flight.ID == "" {
			flight.ID = id
		}
		flights = append(flights, flight)
	}
	return flights, rows.Err()
}

// GetFlight returns one flight document by ID.
func (s *Store) GetFlight(ctx context.Context, id string) (domain.FlightRecord, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`, collectionFlights, id).
		Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.FlightRecord{}, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, id)
	}
	if err != nil {
		return domain.FlightRecord{}, fmt.Errorf("query flight %s: %w", id, err)
	}

	var flight domain.FlightRecord
	if err := json.Unmarshal([]byte(data), &flight); err != nil {
		return domain.FlightRecord{}, fmt.Errorf("decode flight %s: %w", id, err)
	}
	if flight.ID == "" {
		flight.ID = id
	}
	return flight, nil
}

// PutFlight inserts or replaces a flight document.
func (s *Store) PutFlight(ctx context.Context, flight domain.FlightRecord) error {
	return s.putDocument(ctx, collectionFlights, flight.ID, flight)
}

// DeleteFlight removes one flight document.
func (s *Store) DeleteFlight(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, collectionFlights, id)
	if err != nil {
		return fmt.Errorf("delete flight %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete flight %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrFlightNotFound, id)
	}
	return nil
}

// DeleteFlights removes a batch of flight documents in one transaction.
// Missing IDs are not an error; the count says how many rows went away.
func (s *Store) DeleteFlights(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin batch delete: %w", err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids)+1)
	args = append(args, collectionFlights)
	for _, id := range ids {
		args = append(args, id)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("batch delete flights: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("batch delete flights: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit batch delete: %w", err)
	}
	return int(affected), nil
}

// ListBookings returns bookings for the given customer email, or all
// bookings when email is empty. The document store has no field indexes,
// so the email match happens after decoding.
func (s *Store) ListBookings(ctx context.Context, email string) ([]domain.Booking, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM documents WHERE collection = ? ORDER BY id`, collectionBookings)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		var booking domain.Booking
		if err := json.Unmarshal([]byte(data), &booking); err != nil {
			s.log.Warn().Str("id", id).Err(err).Msg("Skipping undecodable booking document")
			continue
		}
		if booking.ID == "" {
			booking.ID = id
		}
		if email != "" && !strings.EqualFold(booking.CustomerEmail, email) {
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// PutBooking inserts or replaces a booking document.
func (s *Store) PutBooking(ctx context.Context, booking domain.Booking) error {
	return s.putDocument(ctx, collectionBookings, booking.ID, booking)
}

// putDocument upserts one JSON document.
func (s *Store) putDocument(ctx context.Context, collection, id string, doc any) error {
	if id == "" {
		return fmt.Errorf("%w: document id is required", domain.ErrInvalidRequest)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		collection, id, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert %s document %s: %w", collection, id, err)
	}
	return nil
}
