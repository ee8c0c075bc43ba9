// resolve.go
package config

import "slices"

// Resolve overlays raw onto the built-in defaults. Scalars replace defaults
// when present, crop_choices replaces the whole list, and
// starting_resources overrides per resource.
func Resolve(raw RawConfig) Settings {
	out := Default()
	c := &out.Sim

	if raw.Runs != nil {
		c.Runs = *raw.Runs
	}
	if raw.MaxDays != nil {
		c.MaxDays = *raw.MaxDays
	}
	if raw.CropChoices != nil {
		c.CropChoices = slices.Clone(raw.CropChoices)
	}
	if raw.EncounterRate != nil {
		c.EncounterRate = *raw.EncounterRate
	}
	if raw.HazardRate != nil {
		c.HazardRate = *raw.HazardRate
	}
	for name, qty := range raw.StartingResources {
		c.StartingResources[name] = qty
	}

	if raw.Seed != nil {
		seed := *raw.Seed
		out.Seed = &seed
	}
	if raw.Workers != nil {
		out.Workers = *raw.Workers
	}

	if t := raw.Thresholds; t != nil {
		if t.MaxBankruptcyRate != nil {
			out.Thresholds.MaxBankruptcyRate = *t.MaxBankruptcyRate
		}
		if t.MinSurvivalRate != nil {
			out.Thresholds.MinSurvivalRate = *t.MinSurvivalRate
		}
		if t.MaxAvgMarriageDay != nil {
			out.Thresholds.MaxAvgMarriageDay = *t.MaxAvgMarriageDay
		}
	}
	return out
}
