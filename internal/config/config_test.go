package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "lorenz96", cfg.Model)
	assert.Equal(t, "heun", cfg.Scheme)
	assert.Greater(t, cfg.Dt, 0.0)
	assert.GreaterOrEqual(t, cfg.Dim, 4)
	assert.Greater(t, cfg.Steps, 1)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "meanrev"
	cfg.Scheme = "rk4"
	cfg.Dim = 1
	cfg.Seed = 1234
	cfg.Noise.Sigma = 0.25
	cfg.Params.Rate = 0.5

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: meanrev\ndim: 1\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "meanrev", cfg.Model)
	assert.Equal(t, 1, cfg.Dim)
	assert.Equal(t, DefaultScheme, cfg.Scheme)
	assert.Equal(t, DefaultDt, cfg.Dt)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz96", "standard")
	require.NotNil(t, cfg)
	assert.Equal(t, 8.0, cfg.Params.F)
	assert.Equal(t, 40, cfg.Dim)

	assert.Nil(t, GetPreset("lorenz96", "nonexistent"))
	assert.Nil(t, GetPreset("nonexistent", "standard"))
}

func TestListPresets(t *testing.T) {
	assert.NotEmpty(t, ListPresets("lorenz96"))
	assert.NotEmpty(t, ListPresets("meanrev"))
	assert.Nil(t, ListPresets("nonexistent"))
}
