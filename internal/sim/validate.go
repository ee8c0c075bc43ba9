package sim

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidProb = errors.New("invalid probability p; must be 0..1")

func validateProb(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return ErrInvalidProb
	}
	if p < 0 || p > 1 {
		return ErrInvalidProb
	}
	return nil
}

// Validate checks the constraints RunOnce relies on for termination and
// meaningful draws. It does not reject negative starting quantities.
func (c Config) Validate() error {
	var errs []error
	if c.Runs <= 0 {
		errs = append(errs, errors.New("runs must be >= 1"))
	}
	if c.MaxDays <= 0 {
		errs = append(errs, errors.New("max_days must be >= 1"))
	}
	if err := validateProb(c.EncounterRate); err != nil {
		errs = append(errs, fmt.Errorf("encounter_rate: %w", err))
	}
	if err := validateProb(c.HazardRate); err != nil {
		errs = append(errs, fmt.Errorf("hazard_rate: %w", err))
	}
	for _, name := range RequiredResources {
		if _, ok := c.StartingResources[name]; !ok {
			errs = append(errs, fmt.Errorf("starting_resources.%s is required", name))
		}
	}
	return errors.Join(errs...)
}
