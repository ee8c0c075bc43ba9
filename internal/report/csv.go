package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xtding233/embers-balance/internal/sim"
)

// WriteCSV writes the header and one row per outcome to path, creating
// parent directories. The file is staged next to path and renamed into
// place, so a failed write leaves any previous report untouched.
// It returns the number of bytes written.
func WriteCSV(path string, outcomes []sim.Outcome) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create report dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create report %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("write report %s: %w", path, err)
	}
	if err := w.WriteAll(Rows(outcomes)); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("write report %s: %w", path, err)
	}
	info, err := tmp.Stat()
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("stat report %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close report %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("move report into %s: %w", path, err)
	}
	return info.Size(), nil
}
