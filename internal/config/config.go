// Package config loads the cell's tunable parameters from YAML, adapted
// in the loadConfig/config pattern common to these lift controllers.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

// LiftGeometry is the physical row range a lift may occupy.
type LiftGeometry struct {
	RowMin int `yaml:"rowMin"`
	RowMax int `yaml:"rowMax"`
}

// Config holds every tunable left to external configuration: per-lift row
// range, motion durations, watchdog window, and tick period.
type Config struct {
	Lift1 LiftGeometry `yaml:"lift1"`
	Lift2 LiftGeometry `yaml:"lift2"`

	ForkMoveDuration   time.Duration `yaml:"forkMoveDuration"`
	EngineMoveDuration time.Duration `yaml:"engineMoveDuration"`
	WatchdogWindow     time.Duration `yaml:"watchdogWindow"`
	TickPeriod         time.Duration `yaml:"tickPeriod"`
}

// Default returns sensible defaults for bench use: 1s
// fork, 2s engine, 5s watchdog, 100ms tick, row range 1..20 for both lifts.
func Default() Config {
	return Config{
		Lift1:              LiftGeometry{RowMin: 1, RowMax: 20},
		Lift2:              LiftGeometry{RowMin: 1, RowMax: 20},
		ForkMoveDuration:   1 * time.Second,
		EngineMoveDuration: 2 * time.Second,
		WatchdogWindow:     5 * time.Second,
		TickPeriod:         100 * time.Millisecond,
	}
}

// Load reads and decodes a YAML config file at path, filling in defaults
// for any zero-valued field left unset.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %q: %w", path, err)
	}
	defer file.Close()

	var loaded Config
	if err := yaml.NewDecoder(file).Decode(&loaded); err != nil {
		return Config{}, fmt.Errorf("decode config %q: %w", path, err)
	}

	mergeDefaults(&loaded, cfg)
	return loaded, nil
}

func mergeDefaults(dst *Config, defaults Config) {
	if dst.Lift1.RowMax == 0 {
		dst.Lift1 = defaults.Lift1
	}
	if dst.Lift2.RowMax == 0 {
		dst.Lift2 = defaults.Lift2
	}
	if dst.ForkMoveDuration == 0 {
		dst.ForkMoveDuration = defaults.ForkMoveDuration
	}
	if dst.EngineMoveDuration == 0 {
		dst.EngineMoveDuration = defaults.EngineMoveDuration
	}
	if dst.WatchdogWindow == 0 {
		dst.WatchdogWindow = defaults.WatchdogWindow
	}
	if dst.TickPeriod == 0 {
		dst.TickPeriod = defaults.TickPeriod
	}
}
