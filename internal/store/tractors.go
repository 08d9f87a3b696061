package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

// validateTractor checks the plate and mileage rules shared by create and
// update. Returns the trimmed plate.
func validateTractor(plate string, mileage int64) (string, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return "", fmt.Errorf("plate must not be empty: %w", types.ErrValidation)
	}
	if mileage < 0 {
		return "", fmt.Errorf("mileage %d is negative: %w", mileage, types.ErrValidation)
	}
	return plate, nil
}

// CreateTractor inserts a tractor and returns its generated id.
// Returns ErrValidation for an empty plate or negative mileage,
// ErrConstraint for a duplicate plate.
func (s *Store) CreateTractor(plate string, mileage int64, note string) (int64, error) {
	plate, err := validateTractor(plate, mileage)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO tractors (plate, mileage, note) VALUES (?, ?, ?)",
		plate, mileage, note,
	)
	if err != nil {
		return 0, fmt.Errorf("create tractor: %w", mapConstraint(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("tractor id: %w", err)
	}
	return id, nil
}

// GetTractor retrieves a tractor by id. Returns ErrNotFound if absent.
func (s *Store) GetTractor(id int64) (*types.Tractor, error) {
	row := s.db.QueryRow(
		"SELECT id, plate, mileage, note, created_at FROM tractors WHERE id = ?", id,
	)
	t, err := scanTractor(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tractor %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tractor %d: %w", id, err)
	}
	return t, nil
}

// ListTractors returns all tractors ordered by plate.
func (s *Store) ListTractors() ([]types.Tractor, error) {
	rows, err := s.db.Query(
		"SELECT id, plate, mileage, note, created_at FROM tractors ORDER BY plate",
	)
	if err != nil {
		return nil, fmt.Errorf("list tractors: %w", err)
	}
	defer rows.Close()

	var out []types.Tractor
	for rows.Next() {
		t, err := scanTractor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tractor: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tractors: %w", err)
	}
	return out, nil
}

// UpdateTractor replaces the plate, mileage and note of an existing tractor.
// Returns ErrNotFound if the id is absent.
func (s *Store) UpdateTractor(id int64, plate string, mileage int64, note string) error {
	plate, err := validateTractor(plate, mileage)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE tractors SET plate = ?, mileage = ?, note = ? WHERE id = ?",
		plate, mileage, note, id,
	)
	if err != nil {
		return fmt.Errorf("update tractor %d: %w", id, mapConstraint(err))
	}
	return requireRow(res, "tractor", id)
}

// DeleteTractor removes a tractor together with all its tire events and
// maintenance records in one transaction. Returns ErrNotFound if absent.
func (s *Store) DeleteTractor(id int64) error {
	return s.deleteVehicle(types.KindTractor, id)
}

// deleteVehicle performs the cascading delete shared by both vehicle kinds.
func (s *Store) deleteVehicle(kind types.VehicleKind, id int64) error {
	table, err := vehicleTable(kind)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete %s %d: %w", kind, id, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM tire_events WHERE vehicle_kind = ? AND vehicle_id = ?", kind, id,
	); err != nil {
		return fmt.Errorf("delete tire events of %s %d: %w", kind, id, err)
	}
	if _, err := tx.Exec(
		"DELETE FROM maintenance_records WHERE vehicle_kind = ? AND vehicle_id = ?", kind, id,
	); err != nil {
		return fmt.Errorf("delete maintenance records of %s %d: %w", kind, id, err)
	}

	res, err := tx.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", kind, id, err)
	}
	if err := requireRow(res, string(kind), id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete %s %d: %w", kind, id, err)
	}
	return nil
}

// requireRow converts a zero-row write into ErrNotFound.
func requireRow(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d rows affected: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, types.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTractor(sc scanner) (*types.Tractor, error) {
	var t types.Tractor
	if err := sc.Scan(&t.ID, &t.Plate, &t.Mileage, &t.Note, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
