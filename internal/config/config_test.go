package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":8087", cfg.Server.Addr)
	assert.Equal(t, Default(), cfg.Balance)
}

func TestLoad_DifficultyPresetThenExplicitOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
difficulty: hard
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, Hard(), cfg.Balance)
}

func TestLoad_ExplicitBalanceWinsOverPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
difficulty: casual
balance:
  base_rent: 1234
  win_goal: 777
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.Balance.BaseRent)
	assert.Equal(t, 777, cfg.Balance.WinGoal)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte("::: not yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestPreset(t *testing.T) {
	assert.Equal(t, Default(), Preset("default"))
	assert.Equal(t, Default(), Preset("unknown"))
	assert.Equal(t, Casual(), Preset("casual"))
	assert.Equal(t, Hard(), Preset("hard"))

	// Presets tune, never zero out.
	assert.Positive(t, Casual().BaseRent)
	assert.Greater(t, Hard().BaseRent, Default().BaseRent)
	assert.Less(t, Hard().EasyNetDays, Default().EasyNetDays)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("NOMADSIM_ADDR", ":7070")
	t.Setenv("NOMADSIM_DATA_DIR", "/tmp/nomad-data")
	t.Setenv("NOMADSIM_DIFFICULTY", "casual")

	cfg, err := FromEnv(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "/tmp/nomad-data", cfg.Server.DataDir)
	assert.Equal(t, Casual(), cfg.Balance)
}
