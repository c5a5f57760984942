package sweep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"

	"github.com/francescodonato/libfork/pkg/executor"
	"github.com/francescodonato/libfork/pkg/executor/mocks"
)

// writeWrapperOutput stores the given wrapper stderr content in a temp file
// and returns the open handle.
func writeWrapperOutput(t *testing.T, content string) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stderr")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { file.Close() })

	return file
}

// newTerminatedHandle returns a TaskHandle mock for a process that exited
// with the given code and produced the given stderr file.
func newTerminatedHandle(exitCode int, stderrFile *os.File) *mocks.TaskHandle {
	handle := new(mocks.TaskHandle)
	handle.On("Wait", mock.Anything).Return(true)
	handle.On("Status").Return(executor.TERMINATED)
	handle.On("ExitCode").Return(exitCode, nil)
	handle.On("StderrFile").Return(func() *os.File {
		stderrFile.Seek(0, 0)
		return stderrFile
	}, nil)
	handle.On("StdoutFile").Return(stderrFile, nil)
	handle.On("Clean").Return(nil)
	handle.On("EraseOutput").Return(nil)
	return handle
}

func TestRunner(t *testing.T) {
	Convey("While collecting samples for a trial", t, func() {
		config := SweepConfig{
			BinaryPath:  "/opt/bench/benchmarks",
			Bench:       "fib",
			MaxCores:    1,
			TimeCommand: "/usr/bin/time",
		}
		trial := Trial{
			Kind:   "libfork.*lazy.*fan",
			Bench:  "fib",
			Cores:  1,
			Filter: BuildFilter("libfork.*lazy.*fan", "fib", 1),
		}

		mockExecutor := new(mocks.Executor)
		mockExecutor.On("Name").Return("Mock Executor")
		runner := NewRunner(mockExecutor, config)

		Convey("When the wrapper reports a peak memory line", func() {
			stderrFile := writeWrapperOutput(t, "some wrapper noise\nMEMORY=5661\n")
			handle := newTerminatedHandle(0, stderrFile)
			mockExecutor.On("Execute",
				"/usr/bin/time", "-f", "MEMORY=%M", "--",
				"/opt/bench/benchmarks",
				"--benchmark_filter=fib.*libfork.*lazy.*fan.*/1/",
				"--benchmark_time_unit=ms").Return(handle, nil)

			samples, err := runner.CollectSamples(trial)

			Convey("The full sample set is collected", func() {
				So(err, ShouldBeNil)
				So(samples, ShouldResemble, []int{5661, 5661, 5661, 5661, 5661})
				mockExecutor.AssertNumberOfCalls(t, "Execute", trial.Samples())
			})
		})

		Convey("When the wrapper output contains no memory line", func() {
			stderrFile := writeWrapperOutput(t, "benchmark output without the expected line\n")
			handle := newTerminatedHandle(0, stderrFile)
			mockExecutor.On("Execute", mock.Anything, mock.Anything, mock.Anything,
				mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(handle, nil)

			samples, err := runner.CollectSamples(trial)

			Convey("The collection aborts without a partial sample set", func() {
				So(samples, ShouldBeNil)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "no MEMORY")
				mockExecutor.AssertNumberOfCalls(t, "Execute", 1)
			})
		})

		Convey("When the subprocess exits with a non-zero status", func() {
			stderrFile := writeWrapperOutput(t, "MEMORY=5661\n")
			handle := newTerminatedHandle(3, stderrFile)
			mockExecutor.On("Execute", mock.Anything, mock.Anything, mock.Anything,
				mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(handle, nil)

			samples, err := runner.CollectSamples(trial)

			Convey("The collection aborts immediately", func() {
				So(samples, ShouldBeNil)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "exit code 3")
				mockExecutor.AssertNumberOfCalls(t, "Execute", 1)
			})
		})
	})
}

func TestExtractPeakMemory(t *testing.T) {
	Convey("While extracting the peak memory value", t, func() {
		Convey("The first matching line wins", func() {
			value, err := extractPeakMemory(strings.NewReader("MEMORY=123\nMEMORY=456\n"))
			So(err, ShouldBeNil)
			So(value, ShouldEqual, 123)
		})

		Convey("Surrounding text on the line is ignored", func() {
			value, err := extractPeakMemory(strings.NewReader("elapsed 0:01.02 MEMORY=789 end\n"))
			So(err, ShouldBeNil)
			So(value, ShouldEqual, 789)
		})

		Convey("A zero reading does not match the positive-integer pattern", func() {
			_, err := extractPeakMemory(strings.NewReader("MEMORY=0\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("Empty output is an error", func() {
			_, err := extractPeakMemory(strings.NewReader(""))
			So(err, ShouldNotBeNil)
		})
	})
}
