package pkgcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
)

// NodeID is the unique identifier for the archive cache Graft node.
const NodeID graft.ID = "adapter.pkgcache"

func init() {
	graft.Register(graft.Node[ports.ArchiveCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.ArchiveCache, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.PkgsDir())
		},
	})
}
