package pkgdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/core/ports"
)

// NodeID is the unique identifier for the package database Graft node.
const NodeID graft.ID = "adapter.pkgdb"

func init() {
	graft.Register(graft.Node[ports.PackageDB]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PackageDB, error) {
			return New(), nil
		},
	})
}
