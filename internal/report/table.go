package report

import (
	"strconv"

	"github.com/xtding233/embers-balance/internal/sim"
)

// Header is the fixed first row of the per-run table.
var Header = []string{
	"Run", "Days", "Dead", "Marriage_Day", "Bankrupt",
	"Final_Order", "Final_Wild", "Final_Coins",
}

// Row renders outcome o as run number run (1-based).
func Row(run int, o sim.Outcome) []string {
	marriage := ""
	if o.MarriageDay != nil {
		marriage = strconv.Itoa(*o.MarriageDay)
	}
	return []string{
		strconv.Itoa(run),
		strconv.Itoa(o.Day),
		strconv.FormatBool(o.Dead),
		marriage,
		strconv.FormatBool(o.Bankrupt),
		strconv.FormatFloat(o.EntropyOrder, 'f', 2, 64),
		strconv.FormatFloat(o.EntropyWild, 'f', 2, 64),
		strconv.Itoa(o.FinalCoins),
	}
}

// Rows renders every outcome in order, without the header.
func Rows(outcomes []sim.Outcome) [][]string {
	rows := make([][]string, len(outcomes))
	for i, o := range outcomes {
		rows[i] = Row(i+1, o)
	}
	return rows
}
