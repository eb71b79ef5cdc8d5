// Package host integrates environments with the machine they live on.
package host

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// userConfigDirName is the per-user state directory under the home
	// directory.
	userConfigDirName = ".conda"

	// EnvRegistryFileName is the registry of known environments inside
	// the user state directory, one prefix per line.
	EnvRegistryFileName = "environments.txt"
)

// Host implements ports.Host for the local machine.
type Host struct {
	cfg  domain.Config
	goos string
}

// New creates a new Host for the current platform.
func New(cfg domain.Config) *Host {
	return newHostWithOS(cfg, runtime.GOOS)
}

// newHostWithOS creates a Host for a specific platform (used for testing).
func newHostWithOS(cfg domain.Config, goos string) *Host {
	return &Host{cfg: cfg, goos: goos}
}

// RegisterEnv appends prefix to the user's environment registry.
func (h *Host) RegisterEnv(prefix string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return zerr.Wrap(err, "failed to resolve home directory")
	}
	dir := filepath.Join(home, userConfigDirName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create user state directory")
	}

	f, err := os.OpenFile(filepath.Join(dir, EnvRegistryFileName),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm) //nolint:gosec // Path is under the user's home directory
	if err != nil {
		return zerr.Wrap(err, "failed to open environment registry")
	}
	if _, err := fmt.Fprintln(f, prefix); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to append to environment registry")
	}
	return f.Close()
}

// TouchNonAdmin propagates the root install's non-admin marker into
// prefix. Only windows installs carry the marker.
func (h *Host) TouchNonAdmin(prefix string) error {
	if h.goos != "windows" {
		return nil
	}
	if _, err := os.Stat(filepath.Join(h.cfg.RootPrefix, domain.NonAdminFileName)); err != nil {
		// The root install ran elevated; derived environments do too.
		return nil
	}

	if err := os.MkdirAll(prefix, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create prefix")
	}
	if err := os.WriteFile(filepath.Join(prefix, domain.NonAdminFileName), nil, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write non-admin marker")
	}
	return nil
}

// ListPrefixes returns the known environment prefixes: the visible
// subdirectories of every configured environments directory, then the
// root prefix.
func (h *Host) ListPrefixes() ([]string, error) {
	var prefixes []string
	for _, envsDir := range h.cfg.EnvsDirs {
		entries, err := os.ReadDir(envsDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			prefix := filepath.Join(envsDir, entry.Name())
			if info, err := os.Stat(prefix); err != nil || !info.IsDir() {
				continue
			}
			prefixes = append(prefixes, prefix)
		}
	}
	return append(prefixes, h.cfg.RootPrefix), nil
}

// ActivationEnv returns the process environment for running inside
// prefix: the environment's binary directory prepended to PATH, every
// other variable passed through.
func (h *Host) ActivationEnv(prefix string) []string {
	binDir := filepath.Join(prefix, "bin")
	if h.goos == "windows" {
		binDir = filepath.Join(prefix, "Scripts")
	}

	env := []string{"PATH=" + binDir + string(os.PathListSeparator) + os.Getenv("PATH")}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "PATH=") {
			continue
		}
		env = append(env, kv)
	}
	slices.Sort(env)
	return env
}

var _ ports.Host = (*Host)(nil)
