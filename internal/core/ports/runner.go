package ports

import (
	"context"

	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
)

// PipelineRunner executes a chain of commands connected by OS pipes.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type PipelineRunner interface {
	// Run launches every stage of the pipeline, relays stdout between
	// stages, and waits for all of them. A non-zero stage exit is returned
	// as a *domain.StageExitError carrying that stage's code; a stage that
	// cannot be launched at all fails the whole pipeline immediately.
	Run(ctx context.Context, pipeline domain.Pipeline) error
}
