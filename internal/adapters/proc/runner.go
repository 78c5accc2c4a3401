// Package proc implements the process pipeline executor over os/exec.
package proc

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.PipelineRunner. Stages are launched left to right
// as real OS processes: every stage except the last writes stdout into a
// pipe with stderr merged into the same pipe, so diagnostic interleaving
// matches what a terminal would show; the last stage inherits the runner's
// own stdout and stderr. Stages are then awaited in reverse launch order and
// the first non-zero exit found in that sweep becomes the pipeline's
// outcome. The sweep only stops at a non-zero exit, so a failing relay stage
// behind a clean sink is still reported.
type Runner struct {
	logger ports.Logger

	// Stdio of the whole pipeline. Overridable for tests; nil fields
	// default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a new Runner with the given logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the pipeline and returns nil only when every stage exits
// zero. A stage exiting non-zero is returned as *domain.StageExitError; a
// stage that cannot be spawned fails the pipeline immediately without
// awaiting the stages already launched.
func (r *Runner) Run(ctx context.Context, pipeline domain.Pipeline) error {
	if len(pipeline) == 0 {
		return domain.ErrEmptyPipeline
	}
	for _, cl := range pipeline {
		if len(cl) == 0 {
			return domain.ErrEmptyCommand
		}
	}

	r.logger.Info("running: " + describe(pipeline))

	procs := make([]*exec.Cmd, 0, len(pipeline))
	var prevRead *os.File

	for i, cl := range pipeline {
		//nolint:gosec // assembled command, not raw user input
		cmd := exec.CommandContext(ctx, cl[0], cl[1:]...)

		if prevRead != nil {
			cmd.Stdin = prevRead
		} else {
			cmd.Stdin = r.stdin()
		}

		var pipeRead, pipeWrite *os.File
		if i == len(pipeline)-1 {
			cmd.Stdout = r.stdout()
			cmd.Stderr = r.stderr()
		} else {
			var err error
			pipeRead, pipeWrite, err = os.Pipe()
			if err != nil {
				closeFile(prevRead)
				return zerr.Wrap(err, "failed to create pipe")
			}
			// Merge stderr into the relay stream.
			cmd.Stdout = pipeWrite
			cmd.Stderr = pipeWrite
		}

		if err := cmd.Start(); err != nil {
			closeFile(prevRead)
			closeFile(pipeRead)
			closeFile(pipeWrite)
			return zerr.With(
				zerr.Wrap(errors.Join(domain.ErrStageLaunchFailed, err), "failed to launch pipeline stage"),
				"command", cl.String(),
			)
		}

		// The child owns duplicated descriptors now. Close the parent's
		// copies so downstream stages see EOF when their producer exits.
		closeFile(prevRead)
		closeFile(pipeWrite)
		prevRead = pipeRead

		procs = append(procs, cmd)
	}

	for i := len(procs) - 1; i >= 0; i-- {
		err := procs[i].Wait()
		if err == nil {
			continue
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				// Terminated by signal.
				code = 1
			}
			return &domain.StageExitError{
				Command: pipeline[i],
				Code:    code,
			}
		}
		return zerr.With(zerr.Wrap(err, "failed to await pipeline stage"), "command", pipeline[i].String())
	}

	return nil
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

func describe(pipeline domain.Pipeline) string {
	out := ""
	for i, cl := range pipeline {
		if i > 0 {
			out += " | "
		}
		out += cl.String()
	}
	return out
}

func closeFile(f *os.File) {
	if f != nil {
		_ = f.Close()
	}
}
