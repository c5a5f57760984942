package executor

import (
	"os"
	"path"

	"github.com/pkg/errors"
)

// createExecutorOutputFiles creates a fresh directory holding "stdout" and
// "stderr" files for one task. Each task gets its own directory so erasing
// one task's output cannot touch another's.
func createExecutorOutputFiles(command, prefix string) (stdout, stderr *os.File, err error) {
	if len(command) == 0 {
		return nil, nil, errors.New("empty command string")
	}

	_, commandName := path.Split(command)

	outputDir, err := os.MkdirTemp("", prefix+"_"+commandName+"_")
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not create output directory for %q", commandName)
	}

	stdoutFileName := path.Join(outputDir, "stdout")
	stdout, err = os.Create(stdoutFileName)
	if err != nil {
		os.RemoveAll(outputDir)
		return nil, nil, errors.Wrapf(err, "could not create %q", stdoutFileName)
	}

	stderrFileName := path.Join(outputDir, "stderr")
	stderr, err = os.Create(stderrFileName)
	if err != nil {
		stdout.Close()
		os.RemoveAll(outputDir)
		return nil, nil, errors.Wrapf(err, "could not create %q", stderrFileName)
	}

	return stdout, stderr, nil
}

// removeExecutorOutputFiles closes and removes output files of a task that
// failed before a TaskHandle could own them.
func removeExecutorOutputFiles(stdout, stderr *os.File) {
	outputDir := path.Dir(stdout.Name())
	stdout.Close()
	stderr.Close()
	os.RemoveAll(outputDir)
}
