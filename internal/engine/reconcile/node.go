package reconcile

import (
	"context"
	"runtime"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/pkgdb" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
)

// NodeID is the unique identifier for the reconcile engine Graft node.
const NodeID graft.ID = "engine.reconcile"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pkgdb.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			db, err := graft.Dep[ports.PackageDB](ctx)
			if err != nil {
				return nil, err
			}
			return New(db, domain.DefaultIgnoreConfig(runtime.GOOS)), nil
		},
	})
}
