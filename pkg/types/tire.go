package types

// TireEvent records one tire change at one wheel position of a vehicle.
// ChangeDate is an ISO date (YYYY-MM-DD). The current tire at a position is
// the event with the greatest (ChangeDate, ID) pair.
type TireEvent struct {
	ID          int64       `json:"id"`
	VehicleKind VehicleKind `json:"vehicle_kind"`
	VehicleID   int64       `json:"vehicle_id"`
	Position    string      `json:"position"`
	ChangeDate  string      `json:"change_date"`
	Mileage     int64       `json:"mileage"`
	Brand       string      `json:"brand"`
	Model       string      `json:"model"`
	Note        string      `json:"note"`
	CreatedAt   string      `json:"created_at"`
}
