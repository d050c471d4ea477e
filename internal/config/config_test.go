package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "nope.toml"), nil)

	cfg, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Version)
	require.Equal(t, DefaultConfig().Styles, cfg.Styles)
	require.Equal(t, DefaultDebounce, cfg.Debounce())
}

func TestFirstLoadWritesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceAt(path, nil)

	_, err := svc.Load()
	require.NoError(t, err)

	// The defaults were persisted, so a second load reads the file
	require.FileExists(t, path)
	loaded, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), loaded)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceAt(path, nil)

	cfg := DefaultConfig()
	cfg.RosterPath = "/tmp/roster.toml"
	cfg.DebounceMs = 350
	cfg.Styles.TeamColor = "33"
	cfg.Styles.Border = "none"
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/roster.toml", loaded.RosterPath)
	require.Equal(t, 350*time.Millisecond, loaded.Debounce())
	require.Equal(t, "33", loaded.Styles.TeamColor)
	require.Equal(t, "none", loaded.Styles.Border)
}

func TestPartialFileKeepsDefaultsForOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("roster_path = \"/x/roster.toml\"\n"), 0644))

	svc := NewConfigServiceAt(path, nil)
	cfg, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, "/x/roster.toml", cfg.RosterPath)
	require.Equal(t, DefaultConfig().Styles.TeamColor, cfg.Styles.TeamColor)
}

func TestMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	svc := NewConfigServiceAt(path, nil)
	_, err := svc.Load()
	require.Error(t, err)
}

func TestDebounceFallsBackOnNonPositive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DebounceMs = 0
	require.Equal(t, DefaultDebounce, cfg.Debounce())
	cfg.DebounceMs = -5
	require.Equal(t, DefaultDebounce, cfg.Debounce())
}
