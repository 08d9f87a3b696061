// Package export serializes the full store contents to CSV files for
// spreadsheet use. Files are UTF-8 with a leading byte-order mark so that
// spreadsheet applications detect the encoding.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mesh-intelligence/truckcare/internal/store"
	"github.com/mesh-intelligence/truckcare/pkg/types"
)

// Export file names inside the output directory.
const (
	TractorsFile    = "tractors.csv"
	TrailersFile    = "trailers.csv"
	TireEventsFile  = "tire_events.csv"
	MaintenanceFile = "maintenance_records.csv"
)

// utf8BOM precedes the CSV content of every exported file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV writes the four export files to outDir, creating it if needed, and
// returns the written paths in order: tractors, trailers, tire events,
// maintenance records. Rows iterate tractors then trailers, each vehicle's
// events newest first.
func CSV(s *store.Store, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	tractors, err := s.ListTractors()
	if err != nil {
		return nil, err
	}
	trailers, err := s.ListTrailers()
	if err != nil {
		return nil, err
	}

	var written []string
	for _, f := range []struct {
		name  string
		write func(w *csv.Writer) error
	}{
		{TractorsFile, func(w *csv.Writer) error { return writeTractors(w, tractors) }},
		{TrailersFile, func(w *csv.Writer) error { return writeTrailers(w, trailers) }},
		{TireEventsFile, func(w *csv.Writer) error { return writeTireEvents(w, s, tractors, trailers) }},
		{MaintenanceFile, func(w *csv.Writer) error { return writeMaintenance(w, s, tractors, trailers) }},
	} {
		path := filepath.Join(outDir, f.name)
		if err := writeCSVFile(path, f.write); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

// writeCSVFile creates path, writes the BOM, and hands a csv.Writer to fill.
func writeCSVFile(path string, fill func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM to %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := fill(w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func writeTractors(w *csv.Writer, tractors []types.Tractor) error {
	if err := w.Write([]string{"id", "plate", "mileage", "note", "created_at"}); err != nil {
		return err
	}
	for _, v := range tractors {
		row := []string{itoa(v.ID), v.Plate, itoa(v.Mileage), v.Note, v.CreatedAt}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeTrailers(w *csv.Writer, trailers []types.Trailer) error {
	if err := w.Write([]string{"id", "plate", "note", "created_at"}); err != nil {
		return err
	}
	for _, v := range trailers {
		row := []string{itoa(v.ID), v.Plate, v.Note, v.CreatedAt}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeTireEvents(w *csv.Writer, s *store.Store, tractors []types.Tractor, trailers []types.Trailer) error {
	header := []string{
		"id", "vehicle_kind", "vehicle_id", "vehicle_plate",
		"position", "change_date", "mileage", "brand", "model", "note", "created_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	writeFor := func(kind types.VehicleKind, vehicleID int64, plate string) error {
		events, err := s.ListTireEvents(kind, vehicleID, "")
		if err != nil {
			return err
		}
		for _, e := range events {
			row := []string{
				itoa(e.ID), string(e.VehicleKind), itoa(e.VehicleID), plate,
				e.Position, e.ChangeDate, itoa(e.Mileage), e.Brand, e.Model, e.Note, e.CreatedAt,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	for _, v := range tractors {
		if err := writeFor(types.KindTractor, v.ID, v.Plate); err != nil {
			return err
		}
	}
	for _, v := range trailers {
		if err := writeFor(types.KindTrailer, v.ID, v.Plate); err != nil {
			return err
		}
	}
	return nil
}

func writeMaintenance(w *csv.Writer, s *store.Store, tractors []types.Tractor, trailers []types.Trailer) error {
	header := []string{
		"id", "vehicle_kind", "vehicle_id", "vehicle_plate",
		"record_type", "service_date", "mileage", "note", "created_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	writeFor := func(kind types.VehicleKind, vehicleID int64, plate string) error {
		records, err := s.ListMaintenanceRecords(kind, vehicleID)
		if err != nil {
			return err
		}
		for _, r := range records {
			row := []string{
				itoa(r.ID), string(r.VehicleKind), itoa(r.VehicleID), plate,
				r.RecordType, r.ServiceDate, itoa(r.Mileage), r.Note, r.CreatedAt,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	for _, v := range tractors {
		if err := writeFor(types.KindTractor, v.ID, v.Plate); err != nil {
			return err
		}
	}
	for _, v := range trailers {
		if err := writeFor(types.KindTrailer, v.ID, v.Plate); err != nil {
			return err
		}
	}
	return nil
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
