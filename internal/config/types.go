// types.go
package config

import (
	"github.com/xtding233/embers-balance/internal/report"
	"github.com/xtding233/embers-balance/internal/sim"
)

// RawConfig is the file schema. Pointer fields distinguish "absent" from a
// zero value so the file only overrides what it names. JSON files decode
// through the same tags.
type RawConfig struct {
	Runs              *int             `yaml:"runs"`
	MaxDays           *int             `yaml:"max_days"`
	CropChoices       []string         `yaml:"crop_choices"`
	EncounterRate     *float64         `yaml:"encounter_rate"`
	HazardRate        *float64         `yaml:"hazard_rate"`
	StartingResources map[string]int   `yaml:"starting_resources"`
	Seed              *uint64          `yaml:"seed,omitempty"`
	Workers           *int             `yaml:"workers,omitempty"`
	Thresholds        *ThresholdConfig `yaml:"thresholds,omitempty"`
}

type ThresholdConfig struct {
	MaxBankruptcyRate *float64 `yaml:"max_bankruptcy_rate"`
	MinSurvivalRate   *float64 `yaml:"min_survival_rate"`
	MaxAvgMarriageDay *float64 `yaml:"max_avg_marriage_day"`
}

// knownKeys lists every top-level key RawConfig understands.
var knownKeys = []string{
	"runs", "max_days", "crop_choices", "encounter_rate", "hazard_rate",
	"starting_resources", "seed", "workers", "thresholds",
}

// Settings is a resolved configuration ready for a batch.
type Settings struct {
	Sim        sim.Config
	Thresholds report.Thresholds
	Seed       *uint64 // nil => random per batch
	Workers    int

	// Source is the file the settings came from; empty for built-in defaults.
	Source string
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Sim:        sim.DefaultConfig(),
		Thresholds: report.DefaultThresholds(),
	}
}
