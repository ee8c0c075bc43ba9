package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ValidateRaw checks the parts of a RawConfig that sim.Config.Validate does
// not cover: runtime knobs, thresholds and naming.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Workers != nil && *cfg.Workers < 0 {
		errs = append(errs, "workers must be >= 0")
	}
	for i, crop := range cfg.CropChoices {
		if strings.TrimSpace(crop) == "" {
			errs = append(errs, fmt.Sprintf("crop_choices[%d] must not be empty", i))
		}
	}
	for name := range cfg.StartingResources {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "starting_resources keys must not be empty")
			break
		}
	}

	if t := cfg.Thresholds; t != nil {
		if t.MaxBankruptcyRate != nil && !unitInterval(*t.MaxBankruptcyRate) {
			errs = append(errs, "thresholds.max_bankruptcy_rate must be in [0,1]")
		}
		if t.MinSurvivalRate != nil && !unitInterval(*t.MinSurvivalRate) {
			errs = append(errs, "thresholds.min_survival_rate must be in [0,1]")
		}
		if t.MaxAvgMarriageDay != nil && (math.IsNaN(*t.MaxAvgMarriageDay) || *t.MaxAvgMarriageDay < 0) {
			errs = append(errs, "thresholds.max_avg_marriage_day must be >= 0")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func unitInterval(v float64) bool {
	return v >= 0 && v <= 1
}

// validate runs both the raw checks and the resolved simulation checks.
func validate(raw RawConfig, s Settings) error {
	err := errors.Join(ValidateRaw(raw), s.Sim.Validate())
	if err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
