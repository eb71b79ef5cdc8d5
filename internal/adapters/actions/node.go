package actions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/logger"    //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/den/internal/adapters/pkgcache"  //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/den/internal/adapters/telemetry" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/den/internal/core/ports"
)

// NodeID is the unique identifier for the plan executor Graft node.
const NodeID graft.ID = "adapter.actions"

func init() {
	graft.Register(graft.Node[ports.PlanExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pkgcache.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.PlanExecutor, error) {
			cache, err := graft.Dep[ports.ArchiveCache](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, tel, log), nil
		},
	})
}
