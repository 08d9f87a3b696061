// Tire commands: record changes, list history, show current tires.
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
	tireKind     string
	tireVehicle  int64
	tirePosition string
	tireDate     string
	tireMileage  int64
	tireBrand    string
	tireModel    string
	tireNote     string
)

var tireCmd = &cobra.Command{
	Use:   "tire",
	Short: "Manage tire change records",
}

var tireAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a tire change",
	Long: `Record a tire change at one wheel position.

Tractor positions are F1..F8, trailer positions R1..R12.

Example:
  truckcare tire add --kind tractor --vehicle 1 --position F1 --date 2024-01-01 --mileage 120000 --brand Michelin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(tireKind)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddTireEvent(kind, tireVehicle, tirePosition, tireDate, tireMileage, tireBrand, tireModel, tireNote)
		if err != nil {
			return err
		}

		log.WithField("id", id).Info("tire event recorded")
		fmt.Println(id)
		return nil
	},
}

var tireListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a vehicle's tire change history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(tireKind)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.ListTireEvents(kind, tireVehicle, tirePosition)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(events)
		}
		printTireTable(events)
		return nil
	},
}

var tireCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current tire at each position with a recorded change",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(tireKind)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		current, err := st.CurrentTires(kind, tireVehicle)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(current)
		}

		// Canonical position order for display.
		events := make([]types.TireEvent, 0, len(current))
		for _, pos := range types.PositionsFor(kind) {
			if e, ok := current[pos]; ok {
				events = append(events, e)
			}
		}
		printTireTable(events)
		return nil
	},
}

var tireDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a single tire change record",
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

		if err := st.DeleteTireEvent(id); err != nil {
			return err
		}
		log.WithField("id", id).Info("tire event deleted")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{tireAddCmd, tireListCmd, tireCurrentCmd} {
		c.Flags().StringVar(&tireKind, "kind", "", "vehicle kind: tractor or trailer (required)")
		c.Flags().Int64Var(&tireVehicle, "vehicle", 0, "vehicle id (required)")
	}
	tireAddCmd.Flags().StringVar(&tirePosition, "position", "", "wheel position, e.g. F1 or R3 (required)")
	tireAddCmd.Flags().StringVar(&tireDate, "date", "", "change date, YYYY-MM-DD (required)")
	tireAddCmd.Flags().Int64Var(&tireMileage, "mileage", 0, "odometer reading at the change")
	tireAddCmd.Flags().StringVar(&tireBrand, "brand", "", "tire brand")
	tireAddCmd.Flags().StringVar(&tireModel, "model", "", "tire model")
	tireAddCmd.Flags().StringVar(&tireNote, "note", "", "free-form note")
	tireListCmd.Flags().StringVar(&tirePosition, "position", "", "filter to one wheel position")

	tireCmd.AddCommand(tireAddCmd)
	tireCmd.AddCommand(tireListCmd)
	tireCmd.AddCommand(tireCurrentCmd)
	tireCmd.AddCommand(tireDeleteCmd)
}

// printTireTable prints tire events in a human-readable table format.
func printTireTable(events []types.TireEvent) {
	if len(events) == 0 {
		fmt.Println("No tire events found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOSITION\tDATE\tMILEAGE\tBRAND\tMODEL\tNOTE")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			e.ID, e.Position, e.ChangeDate, e.Mileage, e.Brand, e.Model, e.Note)
	}
	w.Flush()
	fmt.Fprint(os.Stdout, sb.String())
}
