// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/den/internal/adapters/actions"
	_ "go.trai.ch/den/internal/adapters/channel"
	_ "go.trai.ch/den/internal/adapters/config"
	_ "go.trai.ch/den/internal/adapters/depsort"
	_ "go.trai.ch/den/internal/adapters/fs"
	_ "go.trai.ch/den/internal/adapters/host"
	_ "go.trai.ch/den/internal/adapters/logger"
	_ "go.trai.ch/den/internal/adapters/pkgcache"
	_ "go.trai.ch/den/internal/adapters/pkgdb"
	_ "go.trai.ch/den/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/den/internal/app"
	_ "go.trai.ch/den/internal/engine/clone"
	_ "go.trai.ch/den/internal/engine/install"
	_ "go.trai.ch/den/internal/engine/locate"
	_ "go.trai.ch/den/internal/engine/reconcile"
)
