// Trailer commands: create, list, get, update, delete.
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
	trailerPlate string
	trailerNote  string
)

var trailerCmd = &cobra.Command{
	Use:   "trailer",
	Short: "Manage trailers",
}

var trailerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a trailer",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.CreateTrailer(trailerPlate, trailerNote)
		if err != nil {
			return err
		}

		log.WithField("id", id).Info("trailer created")
		fmt.Println(id)
		return nil
	},
}

var trailerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trailers",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		trailers, err := st.ListTrailers()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(trailers)
		}
		printTrailerTable(trailers)
		return nil
	},
}

var trailerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one trailer",
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

		t, err := st.GetTrailer(id)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(t)
		}
		printTrailerTable([]types.Trailer{*t})
		return nil
	},
}

var trailerUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a trailer's plate or note",
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

		if err := st.UpdateTrailer(id, trailerPlate, trailerNote); err != nil {
			return err
		}
		log.WithField("id", id).Info("trailer updated")
		return nil
	},
}

var trailerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a trailer and all its tire and maintenance records",
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

		if err := st.DeleteTrailer(id); err != nil {
			return err
		}
		log.WithField("id", id).Info("trailer deleted")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{trailerAddCmd, trailerUpdateCmd} {
		c.Flags().StringVar(&trailerPlate, "plate", "", "license plate (required)")
		c.Flags().StringVar(&trailerNote, "note", "", "free-form note")
	}

	trailerCmd.AddCommand(trailerAddCmd)
	trailerCmd.AddCommand(trailerListCmd)
	trailerCmd.AddCommand(trailerGetCmd)
	trailerCmd.AddCommand(trailerUpdateCmd)
	trailerCmd.AddCommand(trailerDeleteCmd)
}

// printTrailerTable prints trailers in a human-readable table format.
func printTrailerTable(trailers []types.Trailer) {
	if len(trailers) == 0 {
		fmt.Println("No trailers found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLATE\tNOTE\tCREATED")
	for _, t := range trailers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Plate, t.Note, t.CreatedAt)
	}
	w.Flush()
	fmt.Fprint(os.Stdout, sb.String())
}
