package sim

import (
	"maps"
	"slices"
)

// Resource names every configuration must carry.
const (
	Food  = "food"
	Fuel  = "fuel"
	Coins = "coins"
)

var RequiredResources = []string{Food, Fuel, Coins}

// Config holds the parameters of one batch. Treat it as read-only once a
// batch starts; RunOnce copies StartingResources before mutating anything.
type Config struct {
	Runs    int // runs per batch
	MaxDays int // hard horizon per run

	// CropChoices is carried through untouched; harvest income does not
	// depend on it yet.
	CropChoices []string

	EncounterRate float64 // per-day Bernoulli trigger
	HazardRate    float64 // per-day Bernoulli trigger

	StartingResources map[string]int
}

// DefaultConfig returns the built-in configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Runs:          1000,
		MaxDays:       500,
		CropChoices:   []string{"Ironwheat", "Steamroot", "Cogbean"},
		EncounterRate: 0.3,
		HazardRate:    0.2,
		StartingResources: map[string]int{
			Food:  10,
			Fuel:  5,
			Coins: 50,
		},
	}
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := c
	out.CropChoices = slices.Clone(c.CropChoices)
	out.StartingResources = maps.Clone(c.StartingResources)
	return out
}
