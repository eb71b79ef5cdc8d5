package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
)

// NodeID is the unique identifier for the host integration Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.Host]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.Host, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg), nil
		},
	})
}
