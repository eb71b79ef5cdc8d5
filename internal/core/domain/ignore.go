package domain

import "strings"

// IgnoreConfig lists the prefix contents that the reconciliation walk and
// the untracked-file report leave out. It is a plain value computed per
// platform; callers pass it in rather than reading process globals.
type IgnoreConfig struct {
	// RootEntries are top-level names that are never walked: manager
	// bookkeeping directories and installer droppings.
	RootEntries map[string]struct{}

	// BinEntries are names ignored when they appear directly under bin/.
	// These are the manager's own launcher scripts.
	BinEntries map[string]struct{}

	// NoiseSuffixes are path suffixes dropped from the untracked report,
	// such as editor backup files.
	NoiseSuffixes []string
}

// DefaultIgnoreConfig returns the ignore sets for the given GOOS.
func DefaultIgnoreConfig(goos string) IgnoreConfig {
	cfg := IgnoreConfig{
		RootEntries: setOf(
			PkgsDirName, EnvsDirName, MetaDirName,
			"conda-bld", ".conda_lock", "users", "LICENSE.txt", "info",
			"conda-recipes", ".index", ".unionfs", NonAdminFileName,
		),
		BinEntries:    setOf("conda", "activate", "deactivate"),
		NoiseSuffixes: []string{"~"},
	}
	if goos == "darwin" {
		cfg.RootEntries["python.app"] = struct{}{}
		cfg.RootEntries["Launcher.app"] = struct{}{}
		cfg.NoiseSuffixes = append(cfg.NoiseSuffixes, ".DS_Store")
	}
	return cfg
}

// IgnoresRoot reports whether a top-level entry is excluded from the walk.
func (c IgnoreConfig) IgnoresRoot(name string) bool {
	_, ok := c.RootEntries[name]
	return ok
}

// IgnoresBin reports whether a direct child of bin/ is excluded.
func (c IgnoreConfig) IgnoresBin(name string) bool {
	_, ok := c.BinEntries[name]
	return ok
}

// IsNoise reports whether a path carries one of the noise suffixes.
func (c IgnoreConfig) IsNoise(path string) bool {
	for _, suffix := range c.NoiseSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func setOf(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
