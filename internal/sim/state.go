package sim

import "maps"

// RunState is the mutable state of one in-progress run.
// Terminal flags and the marriage day are only set through methods so a
// set value is never overwritten.
type RunState struct {
	Day          int
	EntropyOrder float64
	EntropyWild  float64
	Resources    map[string]int

	dead        bool
	bankrupt    bool
	marriageDay int // 0 = unmarried; days start at 1
}

func newRunState(cfg Config) *RunState {
	res := maps.Clone(cfg.StartingResources)
	if res == nil {
		res = make(map[string]int)
	}
	return &RunState{Day: 1, Resources: res}
}

func (s *RunState) Dead() bool     { return s.dead }
func (s *RunState) Bankrupt() bool { return s.bankrupt }

// Terminated reports whether the run has hit death or bankruptcy.
func (s *RunState) Terminated() bool { return s.dead || s.bankrupt }

// MarriageDay returns the day of the first marriage, if any.
func (s *RunState) MarriageDay() (int, bool) {
	return s.marriageDay, s.marriageDay > 0
}

func (s *RunState) die() {
	if !s.Terminated() {
		s.dead = true
	}
}

func (s *RunState) goBankrupt() {
	if !s.Terminated() {
		s.bankrupt = true
	}
}

func (s *RunState) marry(day int) {
	if s.marriageDay == 0 {
		s.marriageDay = day
	}
}

// Outcome is the immutable snapshot of a finished run.
type Outcome struct {
	Day          int
	Dead         bool
	Bankrupt     bool
	MarriageDay  *int
	EntropyOrder float64
	EntropyWild  float64
	FinalCoins   int
	Resources    map[string]int // final quantities of every resource
}

// Married reports whether a marriage happened during the run.
func (o Outcome) Married() bool { return o.MarriageDay != nil }

func (s *RunState) snapshot() Outcome {
	out := Outcome{
		Day:          s.Day,
		Dead:         s.dead,
		Bankrupt:     s.bankrupt,
		EntropyOrder: s.EntropyOrder,
		EntropyWild:  s.EntropyWild,
		FinalCoins:   s.Resources[Coins],
		Resources:    maps.Clone(s.Resources),
	}
	if d, ok := s.MarriageDay(); ok {
		out.MarriageDay = &d
	}
	return out
}
