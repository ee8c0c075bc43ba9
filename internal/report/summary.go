// Package report turns batch outcomes into summary statistics, outlier
// warnings and the per-run CSV table.
package report

import (
	"fmt"

	"github.com/xtding233/embers-balance/internal/sim"
)

// Summary is the batch-level view of a set of outcomes.
type Summary struct {
	Total int

	AvgDays        float64
	Days           Percentiles // distribution of days survived
	SurvivalRate   float64
	BankruptcyRate float64

	Married        int
	AvgMarriageDay float64 // 0 when nobody married

	AvgEntropyOrder float64
	AvgEntropyWild  float64
}

// Summarize aggregates outcomes. ok is false for an empty input, in which
// case no summary exists and nothing should be printed.
func Summarize(outcomes []sim.Outcome) (s Summary, ok bool) {
	total := len(outcomes)
	if total == 0 {
		return Summary{}, false
	}

	days := make([]int, total)
	var daySum, alive, bankrupt, married, marriageSum int
	var order, wild float64
	for i, o := range outcomes {
		days[i] = o.Day
		daySum += o.Day
		if !o.Dead {
			alive++
		}
		if o.Bankrupt {
			bankrupt++
		}
		if o.Married() {
			married++
			marriageSum += *o.MarriageDay
		}
		order += o.EntropyOrder
		wild += o.EntropyWild
	}

	n := float64(total)
	s = Summary{
		Total:           total,
		AvgDays:         float64(daySum) / n,
		Days:            dayPercentiles(days),
		SurvivalRate:    float64(alive) / n,
		BankruptcyRate:  float64(bankrupt) / n,
		Married:         married,
		AvgMarriageDay:  float64(marriageSum) / float64(max(1, married)),
		AvgEntropyOrder: order / n,
		AvgEntropyWild:  wild / n,
	}
	return s, true
}

// Thresholds is the outlier policy applied to a Summary.
type Thresholds struct {
	MaxBankruptcyRate float64
	MinSurvivalRate   float64
	MaxAvgMarriageDay float64
}

// DefaultThresholds returns the stock outlier policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxBankruptcyRate: 0.30,
		MinSurvivalRate:   0.50,
		MaxAvgMarriageDay: 200,
	}
}

// WarningKind identifies which threshold a Warning crossed.
type WarningKind string

const (
	WarnBankruptcy WarningKind = "bankruptcy_rate"
	WarnSurvival   WarningKind = "survival_rate"
	WarnMarriage   WarningKind = "marriage_day"
)

// Warning flags one outlier statistic.
type Warning struct {
	Kind      WarningKind
	Value     float64
	Threshold float64
	Message   string
}

func (w Warning) String() string { return w.Message }

// Check evaluates every threshold independently; any subset may fire.
func (t Thresholds) Check(s Summary) []Warning {
	var out []Warning
	if s.BankruptcyRate > t.MaxBankruptcyRate {
		out = append(out, Warning{
			Kind: WarnBankruptcy, Value: s.BankruptcyRate, Threshold: t.MaxBankruptcyRate,
			Message: fmt.Sprintf("bankruptcy rate too high: %.1f%% > %.0f%%", 100*s.BankruptcyRate, 100*t.MaxBankruptcyRate),
		})
	}
	if s.SurvivalRate < t.MinSurvivalRate {
		out = append(out, Warning{
			Kind: WarnSurvival, Value: s.SurvivalRate, Threshold: t.MinSurvivalRate,
			Message: fmt.Sprintf("survival rate too low: %.1f%% < %.0f%%", 100*s.SurvivalRate, 100*t.MinSurvivalRate),
		})
	}
	if s.AvgMarriageDay > t.MaxAvgMarriageDay {
		out = append(out, Warning{
			Kind: WarnMarriage, Value: s.AvgMarriageDay, Threshold: t.MaxAvgMarriageDay,
			Message: fmt.Sprintf("average marriage day too high: %.1f > %.0f", s.AvgMarriageDay, t.MaxAvgMarriageDay),
		})
	}
	return out
}
