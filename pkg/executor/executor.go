package executor

// Executor is responsible for creating execution environment for given workload.
// It returns a TaskHandle when the workload started gracefully.
// Workload is executed asynchronously.
type Executor interface {
	// Execute launches the given command with the given argument list on the
	// underlying platform. Arguments are passed through verbatim; no shell is
	// involved, so no quoting or escaping is ever needed.
	Execute(command string, args ...string) (TaskHandle, error)
	// Name returns user-friendly name of executor.
	Name() string
}
