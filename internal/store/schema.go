package store

// Schema DDL. Integer autoincrement ids are load-bearing: the current-tire
// query breaks ties on the highest id, so ids must grow in insertion order.
// Tire and maintenance rows reference a vehicle polymorphically through
// (vehicle_kind, vehicle_id); SQL foreign keys cannot span the two vehicle
// tables, so vehicle deletion cascades with explicit paired deletes.
const (
	createTractors = `CREATE TABLE IF NOT EXISTS tractors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    plate TEXT NOT NULL UNIQUE,
    mileage INTEGER NOT NULL CHECK (mileage >= 0),
    note TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

	createTrailers = `CREATE TABLE IF NOT EXISTS trailers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    plate TEXT NOT NULL UNIQUE,
    note TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

	createTireEvents = `CREATE TABLE IF NOT EXISTS tire_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    vehicle_kind TEXT NOT NULL CHECK (vehicle_kind IN ('tractor', 'trailer')),
    vehicle_id INTEGER NOT NULL,
    position TEXT NOT NULL CHECK (position IN (
        'F1', 'F2', 'F3', 'F4', 'F5', 'F6', 'F7', 'F8',
        'R1', 'R2', 'R3', 'R4', 'R5', 'R6',
        'R7', 'R8', 'R9', 'R10', 'R11', 'R12'
    )),
    change_date TEXT NOT NULL,
    mileage INTEGER NOT NULL CHECK (mileage >= 0),
    brand TEXT NOT NULL DEFAULT '',
    model TEXT NOT NULL DEFAULT '',
    note TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

	createTireEventsIndex = `CREATE INDEX IF NOT EXISTS idx_tire_events_vehicle_pos_date
    ON tire_events (vehicle_kind, vehicle_id, position, change_date);`

	createMaintenanceRecords = `CREATE TABLE IF NOT EXISTS maintenance_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    vehicle_kind TEXT NOT NULL CHECK (vehicle_kind IN ('tractor', 'trailer')),
    vehicle_id INTEGER NOT NULL,
    record_type TEXT NOT NULL,
    service_date TEXT NOT NULL,
    mileage INTEGER NOT NULL CHECK (mileage >= 0),
    note TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

	createMaintenanceIndex = `CREATE INDEX IF NOT EXISTS idx_maintenance_vehicle_date
    ON maintenance_records (vehicle_kind, vehicle_id, service_date);`
)

// schemaStatements lists the DDL in creation order.
var schemaStatements = []string{
	createTractors,
	createTrailers,
	createTireEvents,
	createTireEventsIndex,
	createMaintenanceRecords,
	createMaintenanceIndex,
}
