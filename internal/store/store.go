// Package store implements the SQLite-backed vehicle maintenance store.
// A Store owns one database handle for the lifetime of the application
// session; callers hold a *Store and Close it when done.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

// DefaultFileName is the database file name inside the data directory.
const DefaultFileName = "truckcare.db"

// Store is the vehicle maintenance store. All operations are synchronous and
// run against a single SQLite connection pool; SQLite's own locking covers
// the single-process access model.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database file at path and initializes
// the schema. The parent directory is created if it does not exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// init creates the schema. Idempotent; existing data is kept.
func (s *Store) init() error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// normalizeDate validates d as an ISO date (YYYY-MM-DD) and returns the
// canonical form. Returns ErrValidation for anything else.
func normalizeDate(d string) (string, error) {
	d = strings.TrimSpace(d)
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return "", fmt.Errorf("date %q is not YYYY-MM-DD: %w", d, types.ErrValidation)
	}
	return t.Format("2006-01-02"), nil
}

// mapConstraint translates SQLite constraint failures into the store's error
// kinds: UNIQUE violations become ErrConstraint, other constraint failures
// (CHECK, NOT NULL) become ErrValidation. Non-constraint errors pass through.
func mapConstraint(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%s: %w", se.Error(), types.ErrConstraint)
	case sqlite3.SQLITE_CONSTRAINT:
		// Generic constraint code: the driver does not always report the
		// extended code, so fall back to the message.
		if strings.Contains(se.Error(), "UNIQUE") {
			return fmt.Errorf("%s: %w", se.Error(), types.ErrConstraint)
		}
		return fmt.Errorf("%s: %w", se.Error(), types.ErrValidation)
	case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return fmt.Errorf("%s: %w", se.Error(), types.ErrValidation)
	default:
		return err
	}
}

// vehicleTable returns the table name holding vehicles of the given kind.
func vehicleTable(kind types.VehicleKind) (string, error) {
	switch kind {
	case types.KindTractor:
		return "tractors", nil
	case types.KindTrailer:
		return "trailers", nil
	default:
		return "", fmt.Errorf("unknown vehicle kind %q: %w", kind, types.ErrValidation)
	}
}

// vehicleExists reports whether a vehicle of the given kind and id exists,
// querying through q so callers can check inside a transaction.
func vehicleExists(q queryer, kind types.VehicleKind, id int64) (bool, error) {
	table, err := vehicleTable(kind)
	if err != nil {
		return false, err
	}
	var one int
	err = q.QueryRow("SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check %s %d: %w", kind, id, err)
	}
	return true, nil
}

// queryer is the subset of *sql.DB and *sql.Tx used by row lookups.
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}
