package app

import (
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
)

// Components bundles what the CLI layer needs from the wired application:
// the operation facade plus the logger, telemetry session, and resolved
// configuration it reports through.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Config    domain.Config
}
