// Package config provides the configuration loader for den.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// RCFileName is the condarc file consulted under the home directory when no
// explicit path is given.
const RCFileName = ".condarc"

// EnvConfigPath is the environment variable naming an alternate condarc file.
const EnvConfigPath = "CONDARC"

// FileLoader implements ports.ConfigLoader using a condarc YAML file merged
// over the built-in defaults.
type FileLoader struct {
	log ports.Logger
}

// NewLoader creates a new FileLoader.
func NewLoader(log ports.Logger) *FileLoader {
	return &FileLoader{log: log}
}

// Load reads the condarc file at path. An empty path selects $CONDARC, then
// the file under the home directory. A missing file yields the defaults.
func (l *FileLoader) Load(path string) (domain.Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to resolve home directory")
	}
	cfg := domain.DefaultConfig(home, runtime.GOOS, runtime.GOARCH)

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = filepath.Join(home, RCFileName)
		explicit = false
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				l.log.Warn(fmt.Sprintf("config file %s not found, using defaults", path))
			}
			return cfg, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file domain.Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	merge(&cfg, file, home)
	return cfg, nil
}

// merge lays the file's non-empty fields over the defaults and normalizes
// paths and URLs.
func merge(cfg *domain.Config, file domain.Config, home string) {
	if file.RootPrefix != "" {
		cfg.RootPrefix = expandUser(file.RootPrefix, home)
		cfg.PkgsDirs = []string{filepath.Join(cfg.RootPrefix, domain.PkgsDirName)}
		cfg.EnvsDirs = []string{filepath.Join(cfg.RootPrefix, domain.EnvsDirName)}
	}
	if len(file.Channels) > 0 {
		cfg.Channels = file.Channels
	}
	if file.ChannelAlias != "" {
		cfg.ChannelAlias = strings.TrimSuffix(file.ChannelAlias, "/") + "/"
	}
	if len(file.DefaultChannels) > 0 {
		cfg.DefaultChannels = file.DefaultChannels
	}
	if len(file.PkgsDirs) > 0 {
		cfg.PkgsDirs = expandAll(file.PkgsDirs, home)
	}
	if len(file.EnvsDirs) > 0 {
		cfg.EnvsDirs = expandAll(file.EnvsDirs, home)
	}
	if file.Platform != "" {
		cfg.Platform = file.Platform
	}
}

func expandAll(paths []string, home string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = expandUser(p, home)
	}
	return out
}

func expandUser(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

var _ ports.ConfigLoader = (*FileLoader)(nil)
