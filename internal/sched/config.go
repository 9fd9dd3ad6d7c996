package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml: the scenario (quantum + process set) plus
// presentation knobs for the CLI driver.
type Config struct {
	TickMS    int          `yaml:"tick_ms"` // driver interval, 200 (by default)
	Quantum   int          `yaml:"quantum"` // 2 (by default)
	CSVLog    string       `yaml:"csv_log"` // optional CSV event-log path
	Processes []ProcessDef `yaml:"processes"`
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		TickMS:  200,
		Quantum: 2,
		Processes: []ProcessDef{
			{ID: "P1", Burst: 5, Arrival: 0},
			{ID: "P2", Burst: 3, Arrival: 1},
			{ID: "P3", Burst: 4, Arrival: 2},
		},
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only.
// Presentation knobs get sanity clamps here; the scenario itself (quantum,
// process definitions) is validated strictly when handed to the scheduler.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.TickMS <= 0 {
		cfg.TickMS = 200
	}

	return cfg
}
