// Maintenance commands: record service events and list history.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

var (
	maintKind    string
	maintVehicle int64
	maintType    string
	maintDate    string
	maintMileage int64
	maintNote    string
)

var maintCmd = &cobra.Command{
	Use:   "maint",
	Short: "Manage maintenance records",
}

var maintAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a service event",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(maintKind)
		if err != nil {
			return err
		}

		// The configured type list is advisory; the store only requires a
		// non-empty type. An empty configured list accepts anything.
		if len(maintenanceTypes) > 0 && !containsType(maintenanceTypes, maintType) {
			return fmt.Errorf("type %q is not configured (valid: %s): %w",
				maintType, strings.Join(maintenanceTypes, ", "), types.ErrValidation)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddMaintenanceRecord(kind, maintVehicle, maintType, maintDate, maintMileage, maintNote)
		if err != nil {
			return err
		}

		log.WithField("id", id).Info("maintenance record created")
		fmt.Println(id)
		return nil
	},
}

var maintListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a vehicle's service history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(maintKind)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.ListMaintenanceRecords(kind, maintVehicle)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(records)
		}
		printMaintenanceTable(records)
		return nil
	},
}

var maintDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a single maintenance record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteMaintenanceRecord(id); err != nil {
			return err
		}
		log.WithField("id", id).Info("maintenance record deleted")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{maintAddCmd, maintListCmd} {
		c.Flags().StringVar(&maintKind, "kind", "", "vehicle kind: tractor or trailer (required)")
		c.Flags().Int64Var(&maintVehicle, "vehicle", 0, "vehicle id (required)")
	}
	maintAddCmd.Flags().StringVar(&maintType, "type", "", "record type, e.g. oil_change (required)")
	maintAddCmd.Flags().StringVar(&maintDate, "date", "", "service date, YYYY-MM-DD (required)")
	maintAddCmd.Flags().Int64Var(&maintMileage, "mileage", 0, "odometer reading at the service")
	maintAddCmd.Flags().StringVar(&maintNote, "note", "", "free-form note")

	maintCmd.AddCommand(maintAddCmd)
	maintCmd.AddCommand(maintListCmd)
	maintCmd.AddCommand(maintDeleteCmd)
}

func containsType(list []string, t string) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

// printMaintenanceTable prints records in a human-readable table format.
func printMaintenanceTable(records []types.MaintenanceRecord) {
	if len(records) == 0 {
		fmt.Println("No maintenance records found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tDATE\tMILEAGE\tNOTE")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", r.ID, r.RecordType, r.ServiceDate, r.Mileage, r.Note)
	}
	w.Flush()
	fmt.Fprint(os.Stdout, sb.String())
}
