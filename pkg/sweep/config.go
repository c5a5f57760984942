package sweep

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultTimeCommand is the measurement wrapper used when none is configured.
const DefaultTimeCommand = "/usr/bin/time"

// SweepConfig fully determines one sweep. Immutable once parsed.
type SweepConfig struct {
	// BinaryPath points at the benchmark binary to measure.
	BinaryPath string
	// Bench is the benchmark token; a leading "T" selects the
	// allocation-sensitive kind family.
	Bench string
	// MaxCores bounds the core-count ladder.
	MaxCores int
	// TimeCommand is the GNU time compatible wrapper that reports peak
	// resident memory on its error stream.
	TimeCommand string
	// OutputDir is the directory the result file is written to.
	OutputDir string
}

// OutputPath returns the deterministic result file path for this sweep,
// derived from the whitespace-stripped bench token.
func (c SweepConfig) OutputPath() string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("memory.%s.csv", strings.TrimSpace(c.Bench)))
}
