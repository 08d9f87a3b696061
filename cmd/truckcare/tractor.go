// Tractor commands: create, list, get, update, delete.
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
	tractorPlate   string
	tractorMileage int64
	tractorNote    string
)

var tractorCmd = &cobra.Command{
	Use:   "tractor",
	Short: "Manage tractors",
}

var tractorAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a tractor",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.CreateTractor(tractorPlate, tractorMileage, tractorNote)
		if err != nil {
			return err
		}

		log.WithField("id", id).Info("tractor created")
		fmt.Println(id)
		return nil
	},
}

var tractorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tractors",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		tractors, err := st.ListTractors()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(tractors)
		}
		printTractorTable(tractors)
		return nil
	},
}

var tractorGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one tractor",
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

		t, err := st.GetTractor(id)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(t)
		}
		printTractorTable([]types.Tractor{*t})
		return nil
	},
}

var tractorUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a tractor's plate, mileage or note",
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

		if err := st.UpdateTractor(id, tractorPlate, tractorMileage, tractorNote); err != nil {
			return err
		}
		log.WithField("id", id).Info("tractor updated")
		return nil
	},
}

var tractorDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tractor and all its tire and maintenance records",
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

		if err := st.DeleteTractor(id); err != nil {
			return err
		}
		log.WithField("id", id).Info("tractor deleted")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{tractorAddCmd, tractorUpdateCmd} {
		c.Flags().StringVar(&tractorPlate, "plate", "", "license plate (required)")
		c.Flags().Int64Var(&tractorMileage, "mileage", 0, "odometer reading in km")
		c.Flags().StringVar(&tractorNote, "note", "", "free-form note")
	}

	tractorCmd.AddCommand(tractorAddCmd)
	tractorCmd.AddCommand(tractorListCmd)
	tractorCmd.AddCommand(tractorGetCmd)
	tractorCmd.AddCommand(tractorUpdateCmd)
	tractorCmd.AddCommand(tractorDeleteCmd)
}

// printTractorTable prints tractors in a human-readable table format.
func printTractorTable(tractors []types.Tractor) {
	if len(tractors) == 0 {
		fmt.Println("No tractors found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLATE\tMILEAGE\tNOTE\tCREATED")
	for _, t := range tractors {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", t.ID, t.Plate, t.Mileage, t.Note, t.CreatedAt)
	}
	w.Flush()
	fmt.Fprint(os.Stdout, sb.String())
}
