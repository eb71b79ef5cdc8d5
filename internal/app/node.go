package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/den/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/den/internal/adapters/host"      //nolint:depguard // Wired in app layer
	"go.trai.ch/den/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/den/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/den/internal/engine/clone"
	"go.trai.ch/den/internal/engine/install"
	"go.trai.ch/den/internal/engine/locate"
	"go.trai.ch/den/internal/engine/reconcile"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			install.NodeID,
			clone.NodeID,
			reconcile.NodeID,
			locate.NodeID,
			host.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.ConfigNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	installer, err := graft.Dep[*install.Installer](ctx)
	if err != nil {
		return nil, err
	}

	cloner, err := graft.Dep[*clone.Cloner](ctx)
	if err != nil {
		return nil, err
	}

	recon, err := graft.Dep[*reconcile.Engine](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[*locate.Locator](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[ports.Host](ctx)
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

	return New(installer, cloner, recon, locator, h, tel, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	mainApp, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       mainApp,
		Logger:    log,
		Telemetry: tel,
		Config:    cfg,
	}, nil
}
