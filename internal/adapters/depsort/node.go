package depsort

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/core/ports"
)

// NodeID is the unique identifier for the dependency sorter Graft node.
const NodeID graft.ID = "adapter.depsort"

func init() {
	graft.Register(graft.Node[ports.DependencySorter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DependencySorter, error) {
			return New(), nil
		},
	})
}
