package report

import (
	"fmt"
	"io"
)

// PrintSummary writes the human-readable summary followed by one line per
// warning.
func PrintSummary(w io.Writer, s Summary, warnings []Warning) error {
	lines := []string{
		"",
		"=== SIMULATION SUMMARY ===",
		fmt.Sprintf("Total Runs: %d", s.Total),
		fmt.Sprintf("Average Days: %.1f", s.AvgDays),
		fmt.Sprintf("Survival Rate: %.1f%%", 100*s.SurvivalRate),
		fmt.Sprintf("Average Days to First Marriage: %.1f", s.AvgMarriageDay),
		fmt.Sprintf("Bankruptcy Rate: %.1f%%", 100*s.BankruptcyRate),
		fmt.Sprintf("Average Order Entropy: %.1f", s.AvgEntropyOrder),
		fmt.Sprintf("Average Wild Entropy: %.1f", s.AvgEntropyWild),
		fmt.Sprintf("Days P50/P90/P99: %.0f/%.0f/%.0f", s.Days.P50, s.Days.P90, s.Days.P99),
	}
	for _, warn := range warnings {
		lines = append(lines, "WARNING: "+warn.Message)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
