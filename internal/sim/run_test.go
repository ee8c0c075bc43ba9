package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns f from Float64 and the maximum from IntN.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(n int) int   { return n - 1 }

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Runs = 1
	cfg.EncounterRate = 0
	cfg.HazardRate = 0
	return cfg
}

func TestRunOnce_SingleQuietDay(t *testing.T) {
	cfg := quietConfig()
	cfg.MaxDays = 1

	out := RunOnce(cfg, NewSeededRNG(7))
	assert.Equal(t, 1, out.Day)
	assert.False(t, out.Dead)
	assert.False(t, out.Bankrupt)
	assert.Nil(t, out.MarriageDay)
	assert.Equal(t, 50, out.FinalCoins)
	assert.GreaterOrEqual(t, out.EntropyOrder, 0.1)
	assert.Less(t, out.EntropyOrder, 0.5)
	assert.GreaterOrEqual(t, out.EntropyWild, 0.1)
	assert.Less(t, out.EntropyWild, 0.5)
}

func TestRunOnce_NegativeStartingCoinsBankruptOnDayOne(t *testing.T) {
	cfg := quietConfig()
	cfg.MaxDays = 30
	cfg.StartingResources[Coins] = -1

	out := RunOnce(cfg, NewSeededRNG(1))
	assert.Equal(t, 1, out.Day)
	assert.True(t, out.Bankrupt)
	assert.False(t, out.Dead)
	assert.Equal(t, -1, out.FinalCoins)
}

func TestRunOnce_DeathBeatsBankruptcySameDay(t *testing.T) {
	// Float64 = 0 fires every roll, IntN at max: encounters cost 10 coins a
	// day and harvests pay 15. Starting at 1705 coins the balance is 5 after
	// day 200 and -5 on day 201, the first day death can roll.
	cfg := quietConfig()
	cfg.EncounterRate = 1
	cfg.MaxDays = 500
	cfg.StartingResources[Coins] = 1705

	out := RunOnce(cfg, fixedSource{f: 0})
	assert.Equal(t, 201, out.Day)
	assert.True(t, out.Dead)
	assert.False(t, out.Bankrupt)
	assert.Equal(t, -5, out.FinalCoins)
	require.NotNil(t, out.MarriageDay)
	assert.Equal(t, 51, *out.MarriageDay)
}

func TestRunOnce_BankruptBeforeDeathWindow(t *testing.T) {
	cfg := quietConfig()
	cfg.EncounterRate = 1
	cfg.StartingResources[Coins] = 1704

	out := RunOnce(cfg, fixedSource{f: 0})
	assert.Equal(t, 199, out.Day)
	assert.True(t, out.Bankrupt)
	assert.False(t, out.Dead)
}

func TestRunOnce_HazardStarvationEndsRun(t *testing.T) {
	cfg := quietConfig()
	cfg.HazardRate = 1
	cfg.StartingResources[Food] = 2

	// every hazard eats a ration: food 1, 0, -1
	out := RunOnce(cfg, fixedSource{f: 0})
	assert.Equal(t, 3, out.Day)
	assert.True(t, out.Bankrupt)
	assert.False(t, out.Dead)
	assert.Equal(t, -1, out.Resources[Food])
	// the fatal day never drifts
	assert.InDelta(t, 0.2, out.EntropyOrder, 1e-9)
	assert.InDelta(t, 0.2, out.EntropyWild, 1e-9)
}

func TestRunOnce_HarvestEveryTenthDay(t *testing.T) {
	cfg := quietConfig()
	cfg.MaxDays = 30

	out := RunOnce(cfg, fixedSource{f: 0.5})
	assert.Equal(t, 30, out.Day)
	assert.Equal(t, 50+3*15, out.FinalCoins)
	assert.Nil(t, out.MarriageDay)
}

func TestRunOnce_DoesNotMutateConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDays = 100
	before := cfg.Clone()

	_ = RunOnce(cfg, NewSeededRNG(3))
	assert.Equal(t, before, cfg)
}

func TestRunOnce_Invariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingResources[Coins] = 400 // long enough lives to reach marriage and death
	for seed := uint64(0); seed < 300; seed++ {
		out := RunOnce(cfg, NewSeededRNG(seed))

		require.GreaterOrEqual(t, out.Day, 1)
		require.LessOrEqual(t, out.Day, cfg.MaxDays)
		require.False(t, out.Dead && out.Bankrupt, "seed %d: dead and bankrupt", seed)

		floor := 0.1 * float64(out.Day-1)
		require.GreaterOrEqual(t, out.EntropyOrder, floor-1e-9, "seed %d", seed)
		require.GreaterOrEqual(t, out.EntropyWild, floor-1e-9, "seed %d", seed)
		require.Less(t, out.EntropyOrder, 0.5*float64(out.Day)+1e-9, "seed %d", seed)

		if out.MarriageDay != nil {
			require.Greater(t, *out.MarriageDay, 50)
			require.LessOrEqual(t, *out.MarriageDay, out.Day)
		}
		if out.Dead {
			require.Greater(t, out.Day, 200)
		}
		if !out.Dead && !out.Bankrupt {
			require.Equal(t, cfg.MaxDays, out.Day)
		}
	}
}

func TestRunState_TerminalFlagsSetOnce(t *testing.T) {
	s := newRunState(DefaultConfig())
	s.die()
	s.goBankrupt()
	assert.True(t, s.Dead())
	assert.False(t, s.Bankrupt())

	s.marry(60)
	s.marry(70)
	d, ok := s.MarriageDay()
	assert.True(t, ok)
	assert.Equal(t, 60, d)
}

func TestChanceBounds(t *testing.T) {
	rng := fixedSource{f: 0.999}
	assert.False(t, chance(0, rng))
	assert.True(t, chance(1, rng))
	assert.False(t, chance(0.5, rng))
	assert.True(t, chance(0.5, fixedSource{f: 0}))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Runs = 0
	cfg.HazardRate = 1.5
	delete(cfg.StartingResources, Fuel)
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProb)
	assert.Contains(t, err.Error(), "runs must be >= 1")
	assert.Contains(t, err.Error(), "starting_resources.fuel")
}
