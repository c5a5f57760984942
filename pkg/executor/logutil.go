package executor

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/francescodonato/libfork/pkg/utils/fs"
)

// logOutput is a helper function for logging the last lines of the standard
// output and standard error files of a task that ended prematurely.
// Rationale behind the per-line logging is the fact that logrus does not
// support multi-line logs.
func logOutput(handle TaskHandle) {
	var stdoutFileName string
	var stderrFileName string

	stdoutFile, err := handle.StdoutFile()
	if err != nil {
		logrus.Errorf("could not read stdout filename: %v", err)
		stdoutFileName = fmt.Sprintf("%v", err)
	} else {
		stdoutFileName = stdoutFile.Name()
	}

	stderrFile, err := handle.StderrFile()
	if err != nil {
		logrus.Errorf("could not read stderr filename: %v", err)
		stderrFileName = fmt.Sprintf("%v", err)
	} else {
		stderrFileName = stderrFile.Name()
	}

	lineCount := 3
	stdoutTail, err := fs.ReadTail(stdoutFileName, lineCount)
	if err != nil {
		stdoutTail = fmt.Sprintf("%v", err)
	}
	stderrTail, err := fs.ReadTail(stderrFileName, lineCount)
	if err != nil {
		stderrTail = fmt.Sprintf("%v", err)
	}

	logrus.Errorf("Stdout stored in %q", stdoutFileName)
	logrus.Errorf("Stderr stored in %q", stderrFileName)
	logrus.Errorf("Last %d lines of stdout", lineCount)
	errorLogLines(strings.NewReader(stdoutTail))
	logrus.Errorf("Last %d lines of stderr", lineCount)
	errorLogLines(strings.NewReader(stderrTail))
}

// errorLogLines takes a reader and prints each line from it as a separate
// error-level log line.
func errorLogLines(r *strings.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		logrus.Errorf("  %s", scanner.Text())
	}
	err := scanner.Err()
	if err != nil {
		logrus.Errorf("printing from reader failed: %q", err.Error())
	}
}
