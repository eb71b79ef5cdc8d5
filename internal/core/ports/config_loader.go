package ports

import "go.trai.ch/den/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns it merged over
	// the defaults. An empty path loads the user-level configuration;
	// a missing file yields the defaults.
	Load(path string) (domain.Config, error)
}
