package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestEmptyDefaults(t *testing.T) {
	cfg := Empty()

	assert.Zero(t, cfg.GetSeed())
	assert.Equal(t, 5, cfg.GetAccidentChancePerMille())
	assert.Equal(t, 2, cfg.GetBusChancePercent())
	assert.Equal(t, 15.0, cfg.GetBusCooldown())
	assert.Equal(t, 8.0, cfg.GetMissionMax())
	assert.Equal(t, 5.0, cfg.GetLightCycle())
	assert.Equal(t, 4.0, cfg.GetSpawnIntervalMin())
	assert.Equal(t, 7.0, cfg.GetSpawnIntervalMax())
	assert.Equal(t, 3, cfg.GetStartingLives())
	assert.Equal(t, 60, cfg.GetTicksPerSecond())
	assert.Equal(t, time.Second/60, cfg.GetTickInterval())
	assert.Equal(t, ":8088", cfg.GetSpectatorAddr())
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsFileMatchesAccessors(t *testing.T) {
	file := MustLoadDefault()
	empty := Empty()

	assert.Equal(t, empty.GetAccidentChancePerMille(), file.GetAccidentChancePerMille())
	assert.Equal(t, empty.GetBusChancePercent(), file.GetBusChancePercent())
	assert.Equal(t, empty.GetBusCooldown(), file.GetBusCooldown())
	assert.Equal(t, empty.GetMissionMax(), file.GetMissionMax())
	assert.Equal(t, empty.GetLightCycle(), file.GetLightCycle())
	assert.Equal(t, empty.GetSpawnIntervalMin(), file.GetSpawnIntervalMin())
	assert.Equal(t, empty.GetSpawnIntervalMax(), file.GetSpawnIntervalMax())
	assert.Equal(t, empty.GetStartingLives(), file.GetStartingLives())
	assert.Equal(t, empty.GetTicksPerSecond(), file.GetTicksPerSecond())
	assert.Equal(t, empty.GetSpectatorAddr(), file.GetSpectatorAddr())
}

func TestLoadPartial(t *testing.T) {
	path := writeConfig(t, "tuning.json", `{"mission_max_seconds": 3.5, "starting_lives": 1, "seed": 42}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.GetMissionMax())
	assert.Equal(t, 1, cfg.GetStartingLives())
	assert.Equal(t, uint64(42), cfg.GetSeed())
	assert.Equal(t, 15.0, cfg.GetBusCooldown(), "omitted field keeps default")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong extension", "tuning.yaml", `{}`, ".json extension"},
		{"bad json", "tuning.json", `{`, "failed to parse"},
		{"chance out of range", "tuning.json", `{"accident_chance_per_mille": 1001}`, "accident_chance_per_mille"},
		{"bus chance negative", "tuning.json", `{"bus_chance_percent": -1}`, "bus_chance_percent"},
		{"zero cycle", "tuning.json", `{"light_cycle_seconds": 0}`, "light_cycle_seconds"},
		{"inverted spawn window", "tuning.json", `{"spawn_interval_min_seconds": 9}`, "exceeds"},
		{"no lives", "tuning.json", `{"starting_lives": 0}`, "starting_lives"},
		{"tick rate", "tuning.json", `{"ticks_per_second": 0}`, "ticks_per_second"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingAndTooLarge(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to stat")

	big := `{"spectator_addr": "` + strings.Repeat("x", maxFileSize) + `"}`
	_, err = Load(writeConfig(t, "big.json", big))
	assert.ErrorContains(t, err, "too large")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Empty(), cfg)
}

func TestValidatePointers(t *testing.T) {
	cfg := &Tuning{
		Seed:                   ptrUint64(7),
		AccidentChancePerMille: ptrInt(1000),
		BusCooldownSeconds:     ptrFloat64(1),
		SpectatorAddr:          ptrString("127.0.0.1:0"),
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:0", cfg.GetSpectatorAddr())

	cfg.BusCooldownSeconds = ptrFloat64(-1)
	assert.ErrorContains(t, cfg.Validate(), "bus_cooldown_seconds")
}
