package syspath

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/logger"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
)

// NodeID is the unique identifier for the tool probe Graft node.
const NodeID graft.ID = "adapter.syspath"

func init() {
	graft.Register(graft.Node[ports.ToolProbe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolProbe, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(log), nil
		},
	})
}
