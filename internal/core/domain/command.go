package domain

import (
	"errors"
	"fmt"
	"strings"
)

// CommandLine is one process invocation as an argv vector. It is always
// passed to the OS as-is, never through a shell.
type CommandLine []string

// String renders the command for logging.
func (c CommandLine) String() string {
	return strings.Join(c, " ")
}

// Pipeline is an ordered, non-empty chain of commands. Every element except
// the last is a relay stage whose stdout (with stderr merged in) feeds the
// next stage's stdin; the last element is the sink and inherits the caller's
// stdout and stderr. A single-element pipeline behaves exactly like a direct
// invocation.
type Pipeline []CommandLine

// StageExitError reports a pipeline stage that exited non-zero. Its code
// becomes the whole invocation's exit status.
type StageExitError struct {
	// Command is the failing stage's command line.
	Command CommandLine
	// Code is the stage's exit status.
	Code int
}

// Error implements the error interface.
func (e *StageExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command.String(), e.Code)
}

// Unwrap allows errors.Is matching against ErrStageFailed.
func (e *StageExitError) Unwrap() error {
	return ErrStageFailed
}

// ExitStatus maps an error to a process exit code: the stage's own code for
// stage failures, 1 for anything else, 0 for nil.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var stageErr *StageExitError
	if errors.As(err, &stageErr) {
		return stageErr.Code
	}
	return 1
}
