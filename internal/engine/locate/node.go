package locate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/pkgdb" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/core/ports"
)

// NodeID is the unique identifier for the locate engine Graft node.
const NodeID graft.ID = "engine.locate"

func init() {
	graft.Register(graft.Node[*Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pkgdb.NodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			db, err := graft.Dep[ports.PackageDB](ctx)
			if err != nil {
				return nil, err
			}
			return New(db), nil
		},
	})
}
