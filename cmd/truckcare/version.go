package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the truckcare release version.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("truckcare v" + Version)
	},
}
