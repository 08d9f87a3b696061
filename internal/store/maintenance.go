package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

const maintenanceColumns = "id, vehicle_kind, vehicle_id, record_type, service_date, mileage, note, created_at"

// validateMaintenance checks the record type, mileage and date rules shared
// by add and update. The record type only has to be non-empty; restricting it
// to a configured set is the caller's policy. Returns the trimmed type and
// normalized date.
func validateMaintenance(recordType, serviceDate string, mileage int64) (string, string, error) {
	recordType = strings.TrimSpace(recordType)
	if recordType == "" {
		return "", "", fmt.Errorf("record type must not be empty: %w", types.ErrValidation)
	}
	if mileage < 0 {
		return "", "", fmt.Errorf("mileage %d is negative: %w", mileage, types.ErrValidation)
	}
	date, err := normalizeDate(serviceDate)
	if err != nil {
		return "", "", err
	}
	return recordType, date, nil
}

// AddMaintenanceRecord records a service event for the given vehicle.
// Returns ErrNotFound if the vehicle is absent. Returns the generated id.
func (s *Store) AddMaintenanceRecord(kind types.VehicleKind, vehicleID int64, recordType, serviceDate string, mileage int64, note string) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("unknown vehicle kind %q: %w", kind, types.ErrValidation)
	}
	recordType, date, err := validateMaintenance(recordType, serviceDate, mileage)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin add maintenance record: %w", err)
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
		`INSERT INTO maintenance_records (vehicle_kind, vehicle_id, record_type, service_date, mileage, note)
         VALUES (?, ?, ?, ?, ?, ?)`,
		kind, vehicleID, recordType, date, mileage, note,
	)
	if err != nil {
		return 0, fmt.Errorf("add maintenance record: %w", mapConstraint(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("maintenance record id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit maintenance record: %w", err)
	}
	return id, nil
}

// UpdateMaintenanceRecord replaces the recorded fields of an existing record.
// The vehicle reference is immutable. Returns ErrNotFound if the id is absent.
func (s *Store) UpdateMaintenanceRecord(id int64, recordType, serviceDate string, mileage int64, note string) error {
	recordType, date, err := validateMaintenance(recordType, serviceDate, mileage)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE maintenance_records
         SET record_type = ?, service_date = ?, mileage = ?, note = ?
         WHERE id = ?`,
		recordType, date, mileage, note, id,
	)
	if err != nil {
		return fmt.Errorf("update maintenance record %d: %w", id, mapConstraint(err))
	}
	return requireRow(res, "maintenance record", id)
}

// DeleteMaintenanceRecord removes a single record. Returns ErrNotFound if absent.
func (s *Store) DeleteMaintenanceRecord(id int64) error {
	res, err := s.db.Exec("DELETE FROM maintenance_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete maintenance record %d: %w", id, err)
	}
	return requireRow(res, "maintenance record", id)
}

// GetMaintenanceRecord retrieves a record by id. Returns ErrNotFound if absent.
func (s *Store) GetMaintenanceRecord(id int64) (*types.MaintenanceRecord, error) {
	row := s.db.QueryRow(
		"SELECT "+maintenanceColumns+" FROM maintenance_records WHERE id = ?", id,
	)
	r, err := scanMaintenanceRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("maintenance record %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get maintenance record %d: %w", id, err)
	}
	return r, nil
}

// ListMaintenanceRecords returns the service history of a vehicle, newest
// first (service date descending, then id descending).
func (s *Store) ListMaintenanceRecords(kind types.VehicleKind, vehicleID int64) ([]types.MaintenanceRecord, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown vehicle kind %q: %w", kind, types.ErrValidation)
	}

	rows, err := s.db.Query(
		"SELECT "+maintenanceColumns+` FROM maintenance_records
         WHERE vehicle_kind = ? AND vehicle_id = ?
         ORDER BY service_date DESC, id DESC`,
		kind, vehicleID,
	)
	if err != nil {
		return nil, fmt.Errorf("list maintenance records: %w", err)
	}
	defer rows.Close()

	var out []types.MaintenanceRecord
	for rows.Next() {
		r, err := scanMaintenanceRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance record: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list maintenance records: %w", err)
	}
	return out, nil
}

func scanMaintenanceRecord(sc scanner) (*types.MaintenanceRecord, error) {
	var r types.MaintenanceRecord
	err := sc.Scan(
		&r.ID, &r.VehicleKind, &r.VehicleID, &r.RecordType, &r.ServiceDate,
		&r.Mileage, &r.Note, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
