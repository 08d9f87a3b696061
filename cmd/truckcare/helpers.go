// Shared helpers for truckcare CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/mesh-intelligence/truckcare/internal/store"
	"github.com/mesh-intelligence/truckcare/pkg/types"
)

// openStore resolves the data directory and opens the database inside it.
// The caller must defer st.Close().
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	st, err := store.Open(filepath.Join(dataDir, store.DefaultFileName))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	log.WithField("db", st.Path()).Debug("store opened")
	return st, nil
}

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q is not a number: %w", arg, types.ErrValidation)
	}
	return id, nil
}

// parseKind validates a --kind flag value.
func parseKind(v string) (types.VehicleKind, error) {
	kind := types.VehicleKind(v)
	if !kind.Valid() {
		return "", fmt.Errorf("kind %q must be %q or %q: %w",
			v, types.KindTractor, types.KindTrailer, types.ErrValidation)
	}
	return kind, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
