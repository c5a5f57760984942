package sweep

import (
	"fmt"
	"strings"
)

// coreCandidates is the fixed ladder of core counts evaluated per kind,
// in increasing order.
var coreCandidates = []int{1, 2, 4, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112}

const (
	// Baseline kinds are sampled often; their spread matters for calibration.
	baselineSampleCount = 100
	// Parallel kinds are sampled per core count, so fewer repetitions.
	defaultSampleCount = 5
)

// Trial is one concrete (kind, core-count) measurement unit with its derived
// benchmark filter. A Trial is never mutated once constructed.
type Trial struct {
	Kind   Kind
	Bench  string
	Cores  int
	Filter string
}

// Samples returns the repetition count for this trial's sample set.
func (t Trial) Samples() int {
	if t.Kind == KindSerial || t.Kind == KindCalibrate {
		return baselineSampleCount
	}
	return defaultSampleCount
}

// singleCoreOnly reports whether the kind is measured at one core only.
func singleCoreOnly(kind Kind) bool {
	return kind == KindWarmup || kind == KindSerial || kind == KindCalibrate
}

// BuildFilter derives the benchmark filter expression from kind, bench token
// and core count. It is the single place filter construction happens, for
// every kind.
func BuildFilter(kind Kind, bench string, cores int) string {
	if kind == KindCalibrate {
		return string(kind)
	}

	var base string
	if strings.HasPrefix(bench, allocSensitivePrefix) {
		base = fmt.Sprintf("uts.*%s.*%s", kind, bench)
	} else {
		base = fmt.Sprintf("%s.*%s", bench, kind)
	}

	if kind == KindSerial {
		return base
	}

	return fmt.Sprintf("%s.*/%d/", base, cores)
}

// Plan expands the kind universe for the configured bench token into the
// ordered trial list. Core counts are drawn from the candidate ladder and the
// inner loop breaks at the first candidate above MaxCores; single-core-only
// kinds emit exactly one trial.
func Plan(config SweepConfig) []Trial {
	var trials []Trial

	for _, kind := range Kinds(config.Bench) {
		for _, cores := range coreCandidates {
			if cores > config.MaxCores {
				break
			}

			trials = append(trials, Trial{
				Kind:   kind,
				Bench:  config.Bench,
				Cores:  cores,
				Filter: BuildFilter(kind, config.Bench, cores),
			})

			if singleCoreOnly(kind) {
				break
			}
		}
	}

	return trials
}
