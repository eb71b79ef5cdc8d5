package ports

// Host integrates environments with the machine they live on: the user's
// environment registry, activation variables, and platform markers.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Host interface {
	// RegisterEnv appends prefix to the user's environment registry.
	// Callers treat failures as non-fatal.
	RegisterEnv(prefix string) error

	// TouchNonAdmin propagates the root install's non-admin marker into
	// prefix. A no-op on platforms without the marker convention.
	TouchNonAdmin(prefix string) error

	// ListPrefixes returns the known environment prefixes: the
	// subdirectories of the configured environment directories, then the
	// root prefix.
	ListPrefixes() ([]string, error)

	// ActivationEnv returns the process environment for running inside
	// prefix, as "KEY=VALUE" strings: the environment's binary directory
	// prepended to PATH, every other variable passed through.
	ActivationEnv(prefix string) []string
}
