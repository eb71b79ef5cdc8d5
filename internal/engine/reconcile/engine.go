// Package reconcile compares the package database view of an environment
// with the files actually present in its prefix.
package reconcile

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine answers the three reconciliation questions about a prefix: which
// files are tracked, which exist on disk, and which are untracked.
type Engine struct {
	db     ports.PackageDB
	ignore domain.IgnoreConfig
}

// New creates a reconciliation engine over the given package database.
func New(db ports.PackageDB, ignore domain.IgnoreConfig) *Engine {
	return &Engine{
		db:     db,
		ignore: ignore,
	}
}

// Installed returns the union of prefix-relative files owned by the linked
// distributions. With excludeSelfBuilt set, files of locally built packages
// are left out. An environment without linked packages yields an empty set.
func (e *Engine) Installed(prefix string, excludeSelfBuilt bool) (domain.FileSet, error) {
	dists, err := e.db.Linked(prefix)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list linked distributions")
	}

	res := make(domain.FileSet)
	for _, dist := range dists {
		meta, err := e.db.Meta(prefix, dist)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read metadata record"), "dist", dist.String())
		}
		if meta == nil {
			continue
		}
		if excludeSelfBuilt && meta.SelfBuilt() {
			continue
		}
		for _, f := range meta.Files {
			res.Add(filepath.ToSlash(f))
		}
	}
	return res, nil
}

// Walk returns the set of prefix-relative files present on disk, honoring
// the engine's ignore configuration.
func (e *Engine) Walk(prefix string) (domain.FileSet, error) {
	return Walk(prefix, e.ignore)
}

// Untracked returns the on-disk files that no linked distribution owns,
// with noise filtered out: paths carrying a noise suffix, and compiled
// Python files whose source is tracked.
func (e *Engine) Untracked(prefix string, excludeSelfBuilt bool) (domain.FileSet, error) {
	installed, err := e.Installed(prefix, excludeSelfBuilt)
	if err != nil {
		return nil, err
	}
	disk, err := Walk(prefix, e.ignore)
	if err != nil {
		return nil, err
	}

	res := make(domain.FileSet)
	for path := range disk.Diff(installed) {
		if e.ignore.IsNoise(path) {
			continue
		}
		// foo.pyc is noise when foo.py is tracked.
		if strings.HasSuffix(path, ".pyc") && installed.Has(path[:len(path)-1]) {
			continue
		}
		res.Add(path)
	}
	return res, nil
}

// Walk collects every file under prefix except the ignored top-level
// entries and the ignored names directly under bin/. Symbolic links are
// recorded as single entries and never traversed, so a link to a directory
// contributes one path. Unreadable subtrees are skipped, but an unreadable
// prefix is an error.
func Walk(prefix string, ignore domain.IgnoreConfig) (domain.FileSet, error) {
	root, err := filepath.Abs(prefix)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve prefix")
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read prefix"), "prefix", prefix)
	}

	res := make(domain.FileSet)
	binDir := filepath.Join(root, "bin")
	for _, entry := range entries {
		name := entry.Name()
		if ignore.IgnoresRoot(name) {
			continue
		}
		if !entry.IsDir() {
			res.Add(name)
			continue
		}
		walkErr := filepath.WalkDir(filepath.Join(root, name), func(path string, d iofs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if filepath.Dir(path) == binDir && ignore.IgnoresBin(d.Name()) {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			res.Add(filepath.ToSlash(rel))
			return nil
		})
		if walkErr != nil {
			return nil, zerr.Wrap(walkErr, "failed to walk prefix")
		}
	}
	return res, nil
}
