package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultConfigPath is the path to the canonical tuning defaults file.
const DefaultConfigPath = "config/tuning.defaults.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Tuning holds the simulation knobs. Fields left out of the JSON keep their
// defaults through the Get* accessors, so partial files are safe.
type Tuning struct {
	// Seed for the default random source. Zero means seed from the clock.
	Seed *uint64 `json:"seed,omitempty"`

	// Random rolls
	AccidentChancePerMille *int `json:"accident_chance_per_mille,omitempty"`
	BusChancePercent       *int `json:"bus_chance_percent,omitempty"`

	// Timers, in seconds
	BusCooldownSeconds      *float64 `json:"bus_cooldown_seconds,omitempty"`
	MissionMaxSeconds       *float64 `json:"mission_max_seconds,omitempty"`
	LightCycleSeconds       *float64 `json:"light_cycle_seconds,omitempty"`
	SpawnIntervalMinSeconds *float64 `json:"spawn_interval_min_seconds,omitempty"`
	SpawnIntervalMaxSeconds *float64 `json:"spawn_interval_max_seconds,omitempty"`

	StartingLives *int `json:"starting_lives,omitempty"`

	// Headless server
	TicksPerSecond *int    `json:"ticks_per_second,omitempty"`
	SpectatorAddr  *string `json:"spectator_addr,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }
func ptrUint64(v uint64) *uint64    { return &v }

// Empty returns a Tuning with every field unset.
func Empty() *Tuning {
	return &Tuning{}
}

// Load reads a Tuning from a JSON file. The path must have a .json extension
// and the file must be under 1MB.
func Load(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns an empty Tuning when path is blank.
func LoadOrDefault(path string) (*Tuning, error) {
	if path == "" {
		return Empty(), nil
	}
	return Load(path)
}

// MustLoadDefault loads DefaultConfigPath from the working directory or one
// of its parents. Panics if the file cannot be loaded, intended for tests.
func MustLoadDefault() *Tuning {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from pkg/config/
	}
	for _, path := range candidates {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that set values are in range.
func (c *Tuning) Validate() error {
	if c.AccidentChancePerMille != nil {
		if v := *c.AccidentChancePerMille; v < 0 || v > 1000 {
			return fmt.Errorf("accident_chance_per_mille must be between 0 and 1000, got %d", v)
		}
	}
	if c.BusChancePercent != nil {
		if v := *c.BusChancePercent; v < 0 || v > 100 {
			return fmt.Errorf("bus_chance_percent must be between 0 and 100, got %d", v)
		}
	}
	positive := map[string]*float64{
		"bus_cooldown_seconds":       c.BusCooldownSeconds,
		"mission_max_seconds":        c.MissionMaxSeconds,
		"light_cycle_seconds":        c.LightCycleSeconds,
		"spawn_interval_min_seconds": c.SpawnIntervalMinSeconds,
		"spawn_interval_max_seconds": c.SpawnIntervalMaxSeconds,
	}
	for name, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %f", name, *v)
		}
	}
	if c.GetSpawnIntervalMin() > c.GetSpawnIntervalMax() {
		return fmt.Errorf("spawn_interval_min_seconds (%f) exceeds spawn_interval_max_seconds (%f)",
			c.GetSpawnIntervalMin(), c.GetSpawnIntervalMax())
	}
	if c.StartingLives != nil && *c.StartingLives < 1 {
		return fmt.Errorf("starting_lives must be at least 1, got %d", *c.StartingLives)
	}
	if c.TicksPerSecond != nil {
		if v := *c.TicksPerSecond; v < 1 || v > 240 {
			return fmt.Errorf("ticks_per_second must be between 1 and 240, got %d", v)
		}
	}
	return nil
}

func (c *Tuning) GetSeed() uint64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

func (c *Tuning) GetAccidentChancePerMille() int {
	if c.AccidentChancePerMille == nil {
		return 5
	}
	return *c.AccidentChancePerMille
}

func (c *Tuning) GetBusChancePercent() int {
	if c.BusChancePercent == nil {
		return 2
	}
	return *c.BusChancePercent
}

func (c *Tuning) GetBusCooldown() float64 {
	if c.BusCooldownSeconds == nil {
		return 15
	}
	return *c.BusCooldownSeconds
}

func (c *Tuning) GetMissionMax() float64 {
	if c.MissionMaxSeconds == nil {
		return 8
	}
	return *c.MissionMaxSeconds
}

func (c *Tuning) GetLightCycle() float64 {
	if c.LightCycleSeconds == nil {
		return 5
	}
	return *c.LightCycleSeconds
}

// GetSpawnIntervalMin returns the shortest gap between car spawns on one
// roadway.
func (c *Tuning) GetSpawnIntervalMin() float64 {
	if c.SpawnIntervalMinSeconds == nil {
		return 4
	}
	return *c.SpawnIntervalMinSeconds
}

func (c *Tuning) GetSpawnIntervalMax() float64 {
	if c.SpawnIntervalMaxSeconds == nil {
		return 7
	}
	return *c.SpawnIntervalMaxSeconds
}

func (c *Tuning) GetStartingLives() int {
	if c.StartingLives == nil {
		return 3
	}
	return *c.StartingLives
}

func (c *Tuning) GetTicksPerSecond() int {
	if c.TicksPerSecond == nil {
		return 60
	}
	return *c.TicksPerSecond
}

// GetTickInterval is the wall-clock period of one headless frame.
func (c *Tuning) GetTickInterval() time.Duration {
	return time.Second / time.Duration(c.GetTicksPerSecond())
}

func (c *Tuning) GetSpectatorAddr() string {
	if c.SpectatorAddr == nil || *c.SpectatorAddr == "" {
		return ":8088"
	}
	return *c.SpectatorAddr
}
