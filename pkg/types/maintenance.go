package types

// DefaultMaintenanceTypes is the advisory record type set offered when the
// configuration does not define its own. The store itself only requires a
// non-empty type.
var DefaultMaintenanceTypes = []string{"oil_change", "service", "other"}

// MaintenanceRecord records one service event (oil change, inspection, ...)
// for a vehicle. ServiceDate is an ISO date (YYYY-MM-DD).
type MaintenanceRecord struct {
	ID          int64       `json:"id"`
	VehicleKind VehicleKind `json:"vehicle_kind"`
	VehicleID   int64       `json:"vehicle_id"`
	RecordType  string      `json:"record_type"`
	ServiceDate string      `json:"service_date"`
	Mileage     int64       `json:"mileage"`
	Note        string      `json:"note"`
	CreatedAt   string      `json:"created_at"`
}
