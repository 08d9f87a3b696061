// Package main provides the truckcare CLI, the record-entry surface over the
// vehicle maintenance store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

// Exit codes: 0 success, 1 user error (validation, constraint, unknown id),
// 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "truckcare:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor classifies an error into an exit code. Validation, constraint
// and not-found errors are the user's to fix; everything else is a system
// failure.
func exitCodeFor(err error) int {
	if errors.Is(err, types.ErrValidation) ||
		errors.Is(err, types.ErrConstraint) ||
		errors.Is(err, types.ErrNotFound) {
		return exitUserError
	}
	return exitSysError
}
