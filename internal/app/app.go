// Package app implements the application layer for den.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/den/internal/engine/clone"
	"go.trai.ch/den/internal/engine/install"
	"go.trai.ch/den/internal/engine/locate"
	"go.trai.ch/den/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	installer *install.Installer
	cloner    *clone.Cloner
	recon     *reconcile.Engine
	locator   *locate.Locator
	host      ports.Host
	telemetry ports.Telemetry
	log       ports.Logger
}

// New creates a new App instance.
func New(
	installer *install.Installer,
	cloner *clone.Cloner,
	recon *reconcile.Engine,
	locator *locate.Locator,
	host ports.Host,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		installer: installer,
		cloner:    cloner,
		recon:     recon,
		locator:   locator,
		host:      host,
		telemetry: telemetry,
		log:       log,
	}
}

// Install links the packages named by explicit specification lines into
// prefix and returns the executed plan. A successful install registers
// the prefix with the host.
func (a *App) Install(ctx context.Context, specs []string, prefix string) (*domain.Plan, error) {
	ctx, vtx := a.telemetry.Record(ctx, fmt.Sprintf("install into %s", prefix))
	plan, err := a.installer.Install(ctx, specs, prefix, nil)
	vtx.Complete(err)
	if err != nil {
		return plan, err
	}

	a.registerPrefix(prefix)
	return plan, nil
}

// InstallFile reads an explicit specification file and installs its lines
// into prefix.
func (a *App) InstallFile(ctx context.Context, path, prefix string) (*domain.Plan, error) {
	specs, err := install.ReadSpecFile(path)
	if err != nil {
		return nil, err
	}
	return a.Install(ctx, specs, prefix)
}

// Clone reproduces the src prefix in dst and returns the executed linking
// plan together with the untracked files that were copied. The destination
// must not exist yet.
func (a *App) Clone(ctx context.Context, src, dst string) (*domain.Plan, domain.FileSet, error) {
	if _, err := os.Stat(dst); err == nil {
		return nil, nil, zerr.With(domain.ErrPrefixExists, "prefix", dst)
	}

	ctx, vtx := a.telemetry.Record(ctx, fmt.Sprintf("clone %s into %s", src, dst))
	plan, untracked, err := a.cloner.Clone(ctx, src, dst, nil)
	vtx.Complete(err)
	if err != nil {
		return plan, untracked, err
	}

	a.registerPrefix(dst)
	return plan, untracked, nil
}

// Untracked returns the files under prefix that no linked distribution
// claims.
func (a *App) Untracked(prefix string, excludeSelfBuilt bool) (domain.FileSet, error) {
	return a.recon.Untracked(prefix, excludeSelfBuilt)
}

// Which returns the environment prefix enclosing path and the linked
// distributions whose file lists claim it.
func (a *App) Which(path string) (string, []domain.Dist, error) {
	return a.locator.WhichPackage(path)
}

// Envs lists the environment prefixes known to this machine.
func (a *App) Envs() ([]string, error) {
	return a.host.ListPrefixes()
}

// ActivationEnv returns the process environment for running programs
// inside prefix.
func (a *App) ActivationEnv(prefix string) []string {
	return a.host.ActivationEnv(prefix)
}

// registerPrefix runs the host bookkeeping that follows a successful
// install or clone. The environment itself is already in place, so
// failures here are logged rather than returned.
func (a *App) registerPrefix(prefix string) {
	if err := a.host.RegisterEnv(prefix); err != nil {
		a.log.Warn(fmt.Sprintf("failed to register environment %s: %v", prefix, err))
	}
	if err := a.host.TouchNonAdmin(prefix); err != nil {
		a.log.Warn(fmt.Sprintf("failed to write nonadmin marker for %s: %v", prefix, err))
	}
}
