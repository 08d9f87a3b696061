package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

// CreateTrailer inserts a trailer and returns its generated id. Trailers
// carry no odometer, only a plate and a note.
func (s *Store) CreateTrailer(plate, note string) (int64, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return 0, fmt.Errorf("plate must not be empty: %w", types.ErrValidation)
	}

	res, err := s.db.Exec("INSERT INTO trailers (plate, note) VALUES (?, ?)", plate, note)
	if err != nil {
		return 0, fmt.Errorf("create trailer: %w", mapConstraint(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("trailer id: %w", err)
	}
	return id, nil
}

// GetTrailer retrieves a trailer by id. Returns ErrNotFound if absent.
func (s *Store) GetTrailer(id int64) (*types.Trailer, error) {
	row := s.db.QueryRow(
		"SELECT id, plate, note, created_at FROM trailers WHERE id = ?", id,
	)
	t, err := scanTrailer(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trailer %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trailer %d: %w", id, err)
	}
	return t, nil
}

// ListTrailers returns all trailers ordered by plate.
func (s *Store) ListTrailers() ([]types.Trailer, error) {
	rows, err := s.db.Query(
		"SELECT id, plate, note, created_at FROM trailers ORDER BY plate",
	)
	if err != nil {
		return nil, fmt.Errorf("list trailers: %w", err)
	}
	defer rows.Close()

	var out []types.Trailer
	for rows.Next() {
		t, err := scanTrailer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trailer: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trailers: %w", err)
	}
	return out, nil
}

// UpdateTrailer replaces the plate and note of an existing trailer.
// Returns ErrNotFound if the id is absent.
func (s *Store) UpdateTrailer(id int64, plate, note string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return fmt.Errorf("plate must not be empty: %w", types.ErrValidation)
	}

	res, err := s.db.Exec(
		"UPDATE trailers SET plate = ?, note = ? WHERE id = ?", plate, note, id,
	)
	if err != nil {
		return fmt.Errorf("update trailer %d: %w", id, mapConstraint(err))
	}
	return requireRow(res, "trailer", id)
}

// DeleteTrailer removes a trailer together with all its tire events and
// maintenance records in one transaction. Returns ErrNotFound if absent.
func (s *Store) DeleteTrailer(id int64) error {
	return s.deleteVehicle(types.KindTrailer, id)
}

func scanTrailer(sc scanner) (*types.Trailer, error) {
	var t types.Trailer
	if err := sc.Scan(&t.ID, &t.Plate, &t.Note, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
