package sweep

import "strings"

// Kind identifies one measurement target of the sweep. For scheduler-pattern
// kinds the label doubles as the benchmark-filter base, since the harness
// names its cases after scheduler and topology variants.
type Kind string

const (
	// KindWarmup is a first, discarded run absorbing cold-start costs before
	// real measurement begins. Its filter matches no benchmark case.
	KindWarmup Kind = "NOTESTNAMEDTHIS"
	// KindCalibrate is the core-count-independent baseline measurement.
	KindCalibrate Kind = "calibrate"
	// KindSerial is the serial rendition of the benchmarked workload.
	KindSerial Kind = "serial"
	// KindOMP is the OpenMP framework baseline.
	KindOMP Kind = "omp"
	// KindTBB is the Threading Building Blocks framework baseline.
	KindTBB Kind = "tbb"
	// KindTaskflow is the Taskflow framework baseline.
	KindTaskflow Kind = "taskflow"
)

// allocSensitivePrefix marks benchmark tokens whose workloads additionally
// vary the allocation strategy.
const allocSensitivePrefix = "T"

// schedulerKinds returns the scheduler-pattern family for the given bench
// token: {lazy,busy} x {fan,seq}, additionally crossed with
// {alloc,coalloc} for allocation-sensitive tokens.
func schedulerKinds(bench string) []Kind {
	if !strings.HasPrefix(bench, allocSensitivePrefix) {
		return []Kind{
			"libfork.*lazy.*fan",
			"libfork.*busy.*fan",
			"libfork.*lazy.*seq",
			"libfork.*busy.*seq",
		}
	}

	return []Kind{
		"libfork.*_alloc_.*lazy.*fan",
		"libfork.*_alloc_.*busy.*fan",
		"libfork.*_alloc_.*lazy.*seq",
		"libfork.*_alloc_.*busy.*seq",
		"libfork.*_coalloc_.*lazy.*fan",
		"libfork.*_coalloc_.*busy.*fan",
		"libfork.*_coalloc_.*lazy.*seq",
		"libfork.*_coalloc_.*busy.*seq",
	}
}

// Kinds returns the full ordered kind universe for the given bench token:
// the warm-up sentinel, the baselines, the scheduler-pattern family and the
// external-framework baselines.
func Kinds(bench string) []Kind {
	kinds := []Kind{KindWarmup, KindCalibrate, KindSerial}
	kinds = append(kinds, schedulerKinds(bench)...)
	return append(kinds, KindOMP, KindTBB, KindTaskflow)
}
