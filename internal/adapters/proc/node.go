package proc

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/logger"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline runner Graft node.
const NodeID graft.ID = "adapter.proc"

func init() {
	graft.Register(graft.Node[ports.PipelineRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PipelineRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
