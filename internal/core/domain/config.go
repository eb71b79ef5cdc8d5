package domain

import "path/filepath"

// DefaultChannelName is the configuration alias for the default channels.
// Distributions from these channels carry no label prefix.
const DefaultChannelName = "defaults"

// Config holds the resolved runtime configuration. Values mirror the
// condarc file; zero fields are filled from DefaultConfig.
type Config struct {
	// RootPrefix is the root environment. Named environments and the
	// archive cache live underneath it unless overridden.
	RootPrefix string `yaml:"root_prefix"`

	// Channels are the channels consulted when an index has to be built
	// without explicit URLs, in priority order. Entries are channel names
	// resolved against ChannelAlias, full URLs, or DefaultChannelName.
	Channels []string `yaml:"channels"`

	// ChannelAlias is the base URL that bare channel names resolve
	// against. Always ends in a slash.
	ChannelAlias string `yaml:"channel_alias"`

	// DefaultChannels are the URLs that make up the default channel.
	DefaultChannels []string `yaml:"default_channels"`

	// PkgsDirs are the archive cache directories. The first entry is
	// where new archives land.
	PkgsDirs []string `yaml:"pkgs_dirs"`

	// EnvsDirs are the directories holding named environments. The first
	// entry is where new environments are created.
	EnvsDirs []string `yaml:"envs_dirs"`

	// Platform is the platform subdirectory of channel URLs, such as
	// "linux-64".
	Platform string `yaml:"platform"`
}

// DefaultConfig returns the configuration used when no condarc overrides
// it, anchored at a root prefix under the user's home directory.
func DefaultConfig(home, goos, goarch string) Config {
	root := filepath.Join(home, ".conda")
	return Config{
		RootPrefix:   root,
		Channels:     []string{DefaultChannelName},
		ChannelAlias: "https://conda.anaconda.org/",
		DefaultChannels: []string{
			"https://repo.anaconda.com/pkgs/main",
			"https://repo.anaconda.com/pkgs/r",
		},
		PkgsDirs: []string{filepath.Join(root, PkgsDirName)},
		EnvsDirs: []string{filepath.Join(root, EnvsDirName)},
		Platform: PlatformSubdir(goos, goarch),
	}
}

// PkgsDir returns the primary archive cache directory.
func (c Config) PkgsDir() string {
	if len(c.PkgsDirs) == 0 {
		return filepath.Join(c.RootPrefix, PkgsDirName)
	}
	return c.PkgsDirs[0]
}

// EnvsDir returns the primary named-environments directory.
func (c Config) EnvsDir() string {
	if len(c.EnvsDirs) == 0 {
		return filepath.Join(c.RootPrefix, EnvsDirName)
	}
	return c.EnvsDirs[0]
}

// PlatformSubdir maps a GOOS/GOARCH pair to the channel platform
// subdirectory naming scheme.
func PlatformSubdir(goos, goarch string) string {
	switch goos + "/" + goarch {
	case "linux/amd64":
		return "linux-64"
	case "linux/386":
		return "linux-32"
	case "linux/arm64":
		return "linux-aarch64"
	case "linux/ppc64le":
		return "linux-ppc64le"
	case "darwin/amd64":
		return "osx-64"
	case "darwin/arm64":
		return "osx-arm64"
	case "windows/amd64":
		return "win-64"
	case "windows/386":
		return "win-32"
	default:
		return goos + "-" + goarch
	}
}

var platformSubdirs = setOf(
	"linux-64", "linux-32", "linux-aarch64", "linux-ppc64le",
	"osx-64", "osx-arm64", "win-64", "win-32", "noarch",
)

// IsPlatformSubdir reports whether name is a known platform subdirectory.
func IsPlatformSubdir(name string) bool {
	_, ok := platformSubdirs[name]
	return ok
}
