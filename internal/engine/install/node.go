package install

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/actions"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/channel"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/pkgcache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/adapters/pkgdb"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/den/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the installer engine Graft node.
	NodeID graft.ID = "engine.install"
	// PlannerNodeID is the unique identifier for the link planner Graft node.
	PlannerNodeID graft.ID = "engine.install.planner"
)

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pkgdb.NodeID,
			pkgcache.NodeID,
			channel.ResolverNodeID,
			channel.ClientNodeID,
			fs.HasherNodeID,
			actions.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			db, err := graft.Dep[ports.PackageDB](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.ArchiveCache](ctx)
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
			hasher, err := graft.Dep[ports.Hasher](ctx)
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
			return New(db, cache, channels, index, hasher, exec, log), nil
		},
	})

	graft.Register(graft.Node[ports.LinkPlanner]{
		ID:        PlannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pkgdb.NodeID, pkgcache.NodeID},
		Run: func(ctx context.Context) (ports.LinkPlanner, error) {
			db, err := graft.Dep[ports.PackageDB](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.ArchiveCache](ctx)
			if err != nil {
				return nil, err
			}
			return NewPlanner(db, cache), nil
		},
	})
}
