package executor

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// killTimeout is the amount of time we give a killed process group to
// actually go away before reporting failure.
const killTimeout = 5 * time.Second

// Local executor is responsible for providing the execution environment
// on local machine via exec.Command.
// It runs commands as the current user.
type Local struct {
}

// NewLocal returns a Local instance.
func NewLocal() Local {
	return Local{}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local Executor"
}

// Execute runs the command with the given arguments.
// Returned TaskHandle is able to stop & monitor the provisioned process.
func (l Local) Execute(command string, args ...string) (TaskHandle, error) {
	commandLine := strings.Join(append([]string{command}, args...), " ")
	log.Debug("Starting ", commandLine)

	stdoutFile, stderrFile, err := createExecutorOutputFiles(command, "local")
	if err != nil {
		return nil, errors.Wrapf(err, "createExecutorOutputFiles for command %q failed", commandLine)
	}

	cmd := exec.Command(command, args...)
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	// It is important to set additional Process Group ID for parent process and his children
	// to have ability to kill all the children processes.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	err = cmd.Start()
	if err != nil {
		removeExecutorOutputFiles(stdoutFile, stderrFile)
		return nil, errors.Wrapf(err, "command %q start failed", commandLine)
	}

	log.Debug("Started with pid ", cmd.Process.Pid)

	// waitEndChannel signals the process termination to every Wait caller.
	waitEndChannel := make(chan struct{})

	taskHandle := &localTaskHandle{
		cmdHandler:     cmd,
		command:        commandLine,
		stdoutFile:     stdoutFile,
		stderrFile:     stderrFile,
		waitEndChannel: waitEndChannel,
	}

	// Wait for the process in a goroutine, so that the handle's Wait
	// does not race on cmd.Wait.
	go func() {
		cmd.Wait()

		var exitCode int
		// If process exited on his own, show the exitStatus.
		if (cmd.ProcessState.Sys().(syscall.WaitStatus)).Exited() {
			exitCode = (cmd.ProcessState.Sys().(syscall.WaitStatus)).ExitStatus()
		} else {
			// Show what signal caused the termination.
			exitCode = -int((cmd.ProcessState.Sys().(syscall.WaitStatus)).Signal())
		}
		taskHandle.exitCode = exitCode

		// Flush the output files before anyone reads them.
		stdoutFile.Sync()
		stderrFile.Sync()

		log.Debug(
			"Ended ", commandLine,
			" with output in file: ", stdoutFile.Name(),
			" with err output in file: ", stderrFile.Name(),
			" with status code: ", exitCode)

		close(waitEndChannel)
	}()

	return taskHandle, nil
}

// localTaskHandle implements TaskHandle interface.
type localTaskHandle struct {
	cmdHandler *exec.Cmd
	command    string
	stdoutFile *os.File
	stderrFile *os.File

	// This channel is closed immediately when process terminates.
	waitEndChannel chan struct{}

	// Valid only after waitEndChannel is closed.
	exitCode int
}

// isTerminated checks if the process has already ended.
func (taskHandle *localTaskHandle) isTerminated() bool {
	select {
	case <-taskHandle.waitEndChannel:
		return true
	default:
		return false
	}
}

// Stop terminates the local task. It kills the whole process group, so that
// children of the wrapped command do not outlive it.
func (taskHandle *localTaskHandle) Stop() error {
	if taskHandle.isTerminated() {
		return nil
	}

	// We signal the entire process group.
	processPid := -taskHandle.cmdHandler.Process.Pid
	err := syscall.Kill(processPid, syscall.SIGKILL)
	if err != nil {
		return errors.Wrapf(err, "kill of process group %d failed", processPid)
	}

	// Checking if kill was successful.
	isTerminated := taskHandle.Wait(killTimeout)
	if !isTerminated {
		return errors.Errorf("cannot terminate process group %d", processPid)
	}

	return nil
}

// Status returns a state of the task.
func (taskHandle *localTaskHandle) Status() TaskState {
	if !taskHandle.isTerminated() {
		return RUNNING
	}

	return TERMINATED
}

// ExitCode returns a exitCode. If task is not terminated it returns error.
func (taskHandle *localTaskHandle) ExitCode() (int, error) {
	if !taskHandle.isTerminated() {
		return 0, errors.Errorf("task %q is not terminated", taskHandle.command)
	}

	return taskHandle.exitCode, nil
}

// StdoutFile returns a file handle for the task's stdout file.
func (taskHandle *localTaskHandle) StdoutFile() (*os.File, error) {
	if _, err := taskHandle.stdoutFile.Seek(0, 0); err != nil {
		return nil, errors.Wrap(err, "stdout file seek failed")
	}
	return taskHandle.stdoutFile, nil
}

// StderrFile returns a file handle for the task's stderr file.
func (taskHandle *localTaskHandle) StderrFile() (*os.File, error) {
	if _, err := taskHandle.stderrFile.Seek(0, 0); err != nil {
		return nil, errors.Wrap(err, "stderr file seek failed")
	}
	return taskHandle.stderrFile, nil
}

// Wait waits for the command to finish with the given timeout time.
// It returns true if task is terminated.
func (taskHandle *localTaskHandle) Wait(timeout time.Duration) bool {
	if taskHandle.isTerminated() {
		return true
	}

	if timeout == 0 {
		<-taskHandle.waitEndChannel
		return true
	}

	select {
	case <-taskHandle.waitEndChannel:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Clean closes the task's stdout & stderr files.
func (taskHandle *localTaskHandle) Clean() error {
	err := taskHandle.stdoutFile.Close()
	if err != nil {
		return errors.Wrapf(err, "close of file %q failed", taskHandle.stdoutFile.Name())
	}

	err = taskHandle.stderrFile.Close()
	if err != nil {
		return errors.Wrapf(err, "close of file %q failed", taskHandle.stderrFile.Name())
	}

	return nil
}

// EraseOutput removes task's stdout & stderr files together with their directory.
func (taskHandle *localTaskHandle) EraseOutput() error {
	outputDir := filepath.Dir(taskHandle.stdoutFile.Name())
	if err := os.RemoveAll(outputDir); err != nil {
		return errors.Wrapf(err, "removal of output directory %q failed", outputDir)
	}
	return nil
}
