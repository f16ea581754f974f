package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "notekeeper.db", cfg.DatabasePath)
	assert.Equal(t, "images", cfg.ImageDir)
}

func TestLoadConfig_JSONOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"/data/nk.db"}`), 0o660))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/nk.db", cfg.DatabasePath)
	assert.Equal(t, "images", cfg.ImageDir, "keys absent from JSON keep defaults")
}

func TestLoadConfig_EnvOverridesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"/data/nk.db","image_dir":"/data/img"}`), 0o660))

	t.Setenv(EnvDatabasePath, "/env/nk.db")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/nk.db", cfg.DatabasePath)
	assert.Equal(t, "/data/img", cfg.ImageDir)
}

func TestLoadConfig_BadJSONFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{oops`), 0o660))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_MissingJSONFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
