package channel

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the channel resolver Graft node.
	ResolverNodeID graft.ID = "adapter.channel.resolver"
	// ClientNodeID is the unique identifier for the index client Graft node.
	ClientNodeID graft.ID = "adapter.channel.client"
)

func init() {
	graft.Register(graft.Node[ports.ChannelResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.ChannelResolver, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cfg), nil
		},
	})

	graft.Register(graft.Node[ports.IndexClient]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.IndexClient, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(filepath.Join(cfg.PkgsDir(), "cache"))
		},
	})
}
