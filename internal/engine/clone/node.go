package clone

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/actions" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/channel" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/depsort" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/pkgdb"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/den/internal/engine/install"
	"go.trai.ch/den/internal/engine/reconcile"
)

// NodeID is the unique identifier for the cloner engine Graft node.
const NodeID graft.ID = "engine.clone"

func init() {
	graft.Register(graft.Node[*Cloner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			reconcile.NodeID,
			pkgdb.NodeID,
			channel.ResolverNodeID,
			channel.ClientNodeID,
			depsort.NodeID,
			install.PlannerNodeID,
			actions.NodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Cloner, error) {
			rec, err := graft.Dep[*reconcile.Engine](ctx)
			if err != nil {
				return nil, err
			}
			db, err := graft.Dep[ports.PackageDB](ctx)
			if err != nil {
				return nil, err
			}
			channels, err := graft.Dep[ports.ChannelResolver](ctx)
			if err != nil {
				return nil, err
			}
			index, err := graft.Dep[ports.IndexClient](ctx)
			if err != nil {
				return nil, err
			}
			sorter, err := graft.Dep[ports.DependencySorter](ctx)
			if err != nil {
				return nil, err
			}
			planner, err := graft.Dep[ports.LinkPlanner](ctx)
			if err != nil {
				return nil, err
			}
			exec, err := graft.Dep[ports.PlanExecutor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(rec, db, channels, index, sorter, planner, exec, log, cfg.Platform), nil
		},
	})
}
