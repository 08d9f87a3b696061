package store

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

const tireColumns = "id, vehicle_kind, vehicle_id, position, change_date, mileage, brand, model, note, created_at"

// validateTire checks the position, mileage and date rules shared by add and
// update. Returns the normalized change date.
func validateTire(kind types.VehicleKind, position, changeDate string, mileage int64) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown vehicle kind %q: %w", kind, types.ErrValidation)
	}
	if !types.ValidPosition(kind, position) {
		return "", fmt.Errorf("position %q is not valid for a %s: %w", position, kind, types.ErrValidation)
	}
	if mileage < 0 {
		return "", fmt.Errorf("mileage %d is negative: %w", mileage, types.ErrValidation)
	}
	return normalizeDate(changeDate)
}

// AddTireEvent records a tire change for the given vehicle. The position must
// belong to the vehicle kind's set and the vehicle must exist; validation
// happens before any write. Returns the generated event id.
func (s *Store) AddTireEvent(kind types.VehicleKind, vehicleID int64, position, changeDate string, mileage int64, brand, model, note string) (int64, error) {
	date, err := validateTire(kind, position, changeDate, mileage)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin add tire event: %w", err)
	}
	defer tx.Rollback()

	ok, err := vehicleExists(tx, kind, vehicleID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%s %d: %w", kind, vehicleID, types.ErrNotFound)
	}

	res, err := tx.Exec(
		`INSERT INTO tire_events (vehicle_kind, vehicle_id, position, change_date, mileage, brand, model, note)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		kind, vehicleID, position, date, mileage, brand, model, note,
	)
	if err != nil {
		return 0, fmt.Errorf("add tire event: %w", mapConstraint(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("tire event id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tire event: %w", err)
	}
	return id, nil
}

// UpdateTireEvent replaces the recorded fields of an existing tire event.
// The vehicle reference is immutable; only position, date, mileage, brand,
// model and note change. Returns ErrNotFound if the id is absent.
func (s *Store) UpdateTireEvent(id int64, position, changeDate string, mileage int64, brand, model, note string) error {
	var kind types.VehicleKind
	err := s.db.QueryRow("SELECT vehicle_kind FROM tire_events WHERE id = ?", id).Scan(&kind)
	if err == sql.ErrNoRows {
		return fmt.Errorf("tire event %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get tire event %d: %w", id, err)
	}

	date, err := validateTire(kind, position, changeDate, mileage)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE tire_events
         SET position = ?, change_date = ?, mileage = ?, brand = ?, model = ?, note = ?
         WHERE id = ?`,
		position, date, mileage, brand, model, note, id,
	)
	if err != nil {
		return fmt.Errorf("update tire event %d: %w", id, mapConstraint(err))
	}
	return requireRow(res, "tire event", id)
}

// DeleteTireEvent removes a single tire event. Returns ErrNotFound if absent.
func (s *Store) DeleteTireEvent(id int64) error {
	res, err := s.db.Exec("DELETE FROM tire_events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete tire event %d: %w", id, err)
	}
	return requireRow(res, "tire event", id)
}

// ListTireEvents returns the tire change history of a vehicle, newest first
// (change date descending, then id descending). An empty position returns
// the full history across all positions; a non-empty position filters to it.
func (s *Store) ListTireEvents(kind types.VehicleKind, vehicleID int64, position string) ([]types.TireEvent, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown vehicle kind %q: %w", kind, types.ErrValidation)
	}

	query := "SELECT " + tireColumns + " FROM tire_events WHERE vehicle_kind = ? AND vehicle_id = ?"
	args := []any{kind, vehicleID}
	if position != "" {
		if !types.ValidPosition(kind, position) {
			return nil, fmt.Errorf("position %q is not valid for a %s: %w", position, kind, types.ErrValidation)
		}
		query += " AND position = ?"
		args = append(args, position)
	}
	query += " ORDER BY change_date DESC, id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tire events: %w", err)
	}
	defer rows.Close()

	var out []types.TireEvent
	for rows.Next() {
		e, err := scanTireEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tire event: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tire events: %w", err)
	}
	return out, nil
}

// CurrentTires returns, for each position of the vehicle with at least one
// recorded change, the event with the greatest (change_date, id); ties on
// the date fall to the highest id, the insertion-order proxy. Positions with
// no events are absent from the map.
func (s *Store) CurrentTires(kind types.VehicleKind, vehicleID int64) (map[string]types.TireEvent, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown vehicle kind %q: %w", kind, types.ErrValidation)
	}

	rows, err := s.db.Query(
		`SELECT `+tireColumns+`
         FROM tire_events t
         WHERE t.vehicle_kind = ? AND t.vehicle_id = ?
           AND t.id = (
             SELECT t2.id
             FROM tire_events t2
             WHERE t2.vehicle_kind = t.vehicle_kind
               AND t2.vehicle_id = t.vehicle_id
               AND t2.position = t.position
             ORDER BY t2.change_date DESC, t2.id DESC
             LIMIT 1
           )`,
		kind, vehicleID,
	)
	if err != nil {
		return nil, fmt.Errorf("current tires: %w", err)
	}
	defer rows.Close()

	current := make(map[string]types.TireEvent)
	for rows.Next() {
		e, err := scanTireEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tire event: %w", err)
		}
		current[e.Position] = *e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("current tires: %w", err)
	}
	return current, nil
}

func scanTireEvent(sc scanner) (*types.TireEvent, error) {
	var e types.TireEvent
	err := sc.Scan(
		&e.ID, &e.VehicleKind, &e.VehicleID, &e.Position, &e.ChangeDate,
		&e.Mileage, &e.Brand, &e.Model, &e.Note, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
