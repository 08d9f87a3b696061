package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/truckcare", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "truckcare"), got)
	})
}

func TestDefaultDataDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-data/truckcare", got)
	})

	t.Run("falls back to ~/.local/share when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "truckcare"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env wins when flag empty", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})

	t.Run("relative flag becomes absolute", func(t *testing.T) {
		got, err := ResolveConfigDir("rel-config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestResolveDataDir(t *testing.T) {
	t.Run("flag wins over config value", func(t *testing.T) {
		got, err := ResolveDataDir("/tmp/flag-data", "/tmp/config-data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-data", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("", "/tmp/config-data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config-data", got)
	})

	t.Run("env wins when flag and config empty", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-data", got)
	})
}
