package proc_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rgreenblatt/cmake-cli/internal/adapters/proc"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRunner(t *testing.T) (*proc.Runner, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := proc.NewRunner(log)
	var stdout bytes.Buffer
	runner.Stdout = &stdout
	runner.Stderr = &stdout
	runner.Stdin = bytes.NewReader(nil)
	return runner, &stdout
}

func TestRunner_SingleStage(t *testing.T) {
	runner, stdout := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"sh", "-c", "echo hello"},
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "hello")
}

func TestRunner_SingleStageExitCode(t *testing.T) {
	runner, _ := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"sh", "-c", "exit 42"},
	})
	require.Error(t, err)

	var stageErr *domain.StageExitError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, 42, stageErr.Code)
	assert.Equal(t, 42, domain.ExitStatus(err))
}

func TestRunner_RelaysStdoutToNextStdin(t *testing.T) {
	runner, stdout := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"printf", "a\nb\n"},
		{"wc", "-l"},
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "2")
}

func TestRunner_MergesRelayStderrIntoRelayStream(t *testing.T) {
	runner, stdout := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"sh", "-c", "echo out; echo err 1>&2"},
		{"cat"},
	})
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "out")
	assert.Contains(t, output, "err")
}

func TestRunner_MiddleStageFailurePropagates(t *testing.T) {
	runner, _ := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"sh", "-c", "echo start"},
		{"sh", "-c", "cat >/dev/null; exit 2"},
		{"cat"},
	})
	require.Error(t, err)
	assert.Equal(t, 2, domain.ExitStatus(err))
}

func TestRunner_RelayFailureBehindCleanSinkIsReported(t *testing.T) {
	runner, _ := newTestRunner(t)

	// The sink exits zero; the reverse sweep must continue past it and
	// still surface the relay stage's failure.
	err := runner.Run(context.Background(), domain.Pipeline{
		{"sh", "-c", "exit 7"},
		{"cat"},
	})
	require.Error(t, err)
	assert.Equal(t, 7, domain.ExitStatus(err))
}

func TestRunner_SinkFailureWins(t *testing.T) {
	runner, _ := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"sh", "-c", "echo data"},
		{"sh", "-c", "cat >/dev/null; exit 3"},
	})
	require.Error(t, err)

	var stageErr *domain.StageExitError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, 3, stageErr.Code)
}

func TestRunner_LaunchFailureIsFatal(t *testing.T) {
	runner, _ := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"nonexistent-command-xyz123"},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrStageLaunchFailed)

	// Launch failures are not stage exits; they map to exit status 1.
	assert.Equal(t, 1, domain.ExitStatus(err))
}

func TestRunner_LaunchFailureMidPipeline(t *testing.T) {
	runner, _ := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"echo", "hi"},
		{"nonexistent-command-xyz123"},
	})
	require.ErrorIs(t, err, domain.ErrStageLaunchFailed)
}

func TestRunner_RejectsEmptyPipelines(t *testing.T) {
	runner, _ := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{})
	require.ErrorIs(t, err, domain.ErrEmptyPipeline)

	err = runner.Run(context.Background(), domain.Pipeline{{"echo"}, {}})
	require.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestRunner_ErrorChainExposesSentinel(t *testing.T) {
	runner, _ := newTestRunner(t)

	err := runner.Run(context.Background(), domain.Pipeline{
		{"sh", "-c", "exit 5"},
	})
	require.True(t, errors.Is(err, domain.ErrStageFailed))
}
