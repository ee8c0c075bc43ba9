package sim

// Day-loop tuning. These stand in for real game systems and are not
// configuration.
const (
	encounterLossProb = 0.3
	encounterLossMin  = 1
	encounterLossMax  = 10

	hazardFoodProb = 0.5

	harvestEvery     = 10
	harvestIncomeMin = 5
	harvestIncomeMax = 15

	entropyDriftMin = 0.1
	entropyDriftMax = 0.5

	deathAfterDay = 200
	deathProb     = 0.01

	marriageAfterDay = 50
	marriageMinCoins = 100
	marriageProb     = 0.05
)

// RunOnce simulates one life from day 1 until death, bankruptcy or
// cfg.MaxDays, drawing every random value from rng.
//
// Per day, in order: encounter, hazard, harvest income, order drift,
// wild drift, death roll (after day 200), marriage roll, bankruptcy check.
// A hazard that drives food negative ends the run on the spot.
func RunOnce(cfg Config, rng RandomSource) Outcome {
	s := newRunState(cfg)
	for d := 1; d <= cfg.MaxDays; d++ {
		if step(s, d, cfg, rng) {
			break
		}
	}
	return s.snapshot()
}

// step advances s through day d and reports whether the run is over.
func step(s *RunState, d int, cfg Config, rng RandomSource) bool {
	s.Day = d

	if chance(cfg.EncounterRate, rng) {
		encounter(s, rng)
	}
	if chance(cfg.HazardRate, rng) {
		if hazard(s, rng) {
			return true
		}
	}

	// Flat harvest; crop choice does not matter yet.
	if d%harvestEvery == 0 {
		s.Resources[Coins] += intBetween(harvestIncomeMin, harvestIncomeMax, rng)
	}

	s.EntropyOrder += floatBetween(entropyDriftMin, entropyDriftMax, rng)
	s.EntropyWild += floatBetween(entropyDriftMin, entropyDriftMax, rng)

	if d > deathAfterDay && chance(deathProb, rng) {
		s.die()
		return true
	}

	if _, married := s.MarriageDay(); !married && d > marriageAfterDay && s.Resources[Coins] > marriageMinCoins {
		if chance(marriageProb, rng) {
			s.marry(d)
		}
	}

	if s.Resources[Coins] < 0 {
		s.goBankrupt()
		return true
	}
	return false
}

// encounter sometimes costs the player a handful of coins.
func encounter(s *RunState, rng RandomSource) {
	if chance(encounterLossProb, rng) {
		s.Resources[Coins] -= intBetween(encounterLossMin, encounterLossMax, rng)
	}
}

// hazard sometimes eats a ration; running out of food bankrupts the run.
func hazard(s *RunState, rng RandomSource) bool {
	if chance(hazardFoodProb, rng) {
		s.Resources[Food]--
	}
	if s.Resources[Food] < 0 {
		s.goBankrupt()
		return true
	}
	return false
}
