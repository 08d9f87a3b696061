// Export command: serialize the full store to CSV files.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/truckcare/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all records to BOM-prefixed CSV files",
	Long: `Export writes tractors.csv, trailers.csv, tire_events.csv and
maintenance_records.csv to the output directory. Files are UTF-8 with a
leading byte-order mark for spreadsheet compatibility.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		written, err := export.CSV(st, exportOut)
		if err != nil {
			return err
		}

		log.WithField("files", len(written)).Info("export finished")
		for _, path := range written {
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "truckcare-export", "output directory for the CSV files")
}
