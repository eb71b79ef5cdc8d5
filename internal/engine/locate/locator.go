// Package locate resolves filesystem paths to the environment and the
// distributions that own them.
package locate

import (
	"os"
	"path/filepath"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator answers ownership queries against the package database.
type Locator struct {
	db ports.PackageDB
}

// New creates a Locator over the given package database.
func New(db ports.PackageDB) *Locator {
	return &Locator{db: db}
}

// WhichPrefix returns the closest enclosing environment of path: the first
// ancestor, starting at the path itself, that holds a metadata directory.
func WhichPrefix(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve path")
	}

	for p := abs; ; {
		info, statErr := os.Stat(domain.MetaDir(p))
		if statErr == nil && info.IsDir() {
			return p, nil
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", zerr.With(domain.ErrNoEnvironment, "path", path)
		}
		p = parent
	}
}

// WhichPackage returns the enclosing environment of path and every linked
// distribution whose file list claims it. Files owned by several records
// report each owner.
func (l *Locator) WhichPackage(path string) (string, []domain.Dist, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to resolve path")
	}

	prefix, err := WhichPrefix(abs)
	if err != nil {
		return "", nil, err
	}

	dists, err := l.db.Linked(prefix)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to list linked distributions")
	}

	var owners []domain.Dist
	for _, dist := range dists {
		meta, err := l.db.Meta(prefix, dist)
		if err != nil {
			return "", nil, zerr.With(zerr.Wrap(err, "failed to read metadata record"), "dist", dist.String())
		}
		if meta == nil {
			continue
		}
		for _, f := range meta.Files {
			if filepath.Join(prefix, filepath.FromSlash(f)) == abs {
				owners = append(owners, dist)
				break
			}
		}
	}
	return prefix, owners, nil
}
