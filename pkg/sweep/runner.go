package sweep

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/francescodonato/libfork/pkg/executor"
)

// memoryPattern matches the line the measurement wrapper emits on its error
// stream after the wrapped process exits; the capture is the peak resident
// memory in kilobytes.
var memoryPattern = regexp.MustCompile(`MEMORY=([1-9][0-9]*)`)

// Runner collects sample sets for trials by repeatedly launching the
// benchmark binary under the measurement wrapper. Samples run strictly one
// at a time; concurrent runs would contend for the same physical memory and
// invalidate the peak readings.
type Runner struct {
	executor    executor.Executor
	binaryPath  string
	timeCommand string
}

// NewRunner returns a Runner measuring config's binary through exec.
func NewRunner(exec executor.Executor, config SweepConfig) *Runner {
	timeCommand := config.TimeCommand
	if timeCommand == "" {
		timeCommand = DefaultTimeCommand
	}

	return &Runner{
		executor:    exec,
		binaryPath:  config.BinaryPath,
		timeCommand: timeCommand,
	}
}

// CollectSamples runs the trial's full repetition count and returns the
// gathered peak-memory readings. Any subprocess failure or missing MEMORY
// line aborts with an error; a partial sample set is never returned.
func (r *Runner) CollectSamples(trial Trial) ([]int, error) {
	samples := make([]int, 0, trial.Samples())

	for i := 0; i < trial.Samples(); i++ {
		sample, err := r.runSample(trial)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d of kind %q with %d cores failed", i, trial.Kind, trial.Cores)
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

// runSample launches one measurement subprocess, blocks until it exits and
// extracts the reported peak memory from its error stream.
func (r *Runner) runSample(trial Trial) (int, error) {
	args := []string{
		"-f", "MEMORY=%M",
		"--",
		r.binaryPath,
		"--benchmark_filter=" + trial.Filter,
		"--benchmark_time_unit=ms",
	}
	commandLine := strings.Join(append([]string{r.timeCommand}, args...), " ")

	handle, err := r.executor.Execute(r.timeCommand, args...)
	if err != nil {
		return 0, err
	}
	defer handle.EraseOutput()
	defer handle.Clean()

	handle.Wait(0)

	_, err = executor.CheckIfProcessFailedToExecute(commandLine, r.executor.Name(), handle)
	if err != nil {
		return 0, err
	}

	stderrFile, err := handle.StderrFile()
	if err != nil {
		return 0, err
	}

	return extractPeakMemory(stderrFile)
}

// extractPeakMemory scans the measurement wrapper's output for the first
// MEMORY=<n> line. A missing line is a contract violation by the wrapper and
// is reported as an error, never tolerated.
func extractPeakMemory(output io.Reader) (int, error) {
	scanner := bufio.NewScanner(output)
	for scanner.Scan() {
		match := memoryPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		value, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, errors.Wrapf(err, "could not parse peak memory value %q", match[1])
		}
		return value, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "reading measurement output failed")
	}

	return 0, errors.New("no MEMORY=<n> line found in measurement output")
}
