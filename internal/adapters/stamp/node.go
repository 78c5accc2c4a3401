package stamp

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
)

// NodeID is the unique identifier for the stamp store Graft node.
const NodeID graft.ID = "adapter.stamp"

func init() {
	graft.Register(graft.Node[ports.StampStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StampStore, error) {
			return NewStore(), nil
		},
	})
}
