package assemble

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rgreenblatt/cmake-cli/internal/adapters/syspath"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
)

// NodeID is the unique identifier for the assembler Graft node.
const NodeID graft.ID = "engine.assemble"

func init() {
	graft.Register(graft.Node[*Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{syspath.NodeID},
		Run: func(ctx context.Context) (*Assembler, error) {
			probe, err := graft.Dep[ports.ToolProbe](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssembler(probe), nil
		},
	})
}
