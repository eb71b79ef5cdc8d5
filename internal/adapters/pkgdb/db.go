// Package pkgdb reads the per-environment package metadata records.
package pkgdb

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

// DB implements ports.PackageDB over the metadata directory inside each
// environment prefix. It holds no state; every call reads the filesystem.
type DB struct{}

// New creates a package database reader.
func New() *DB {
	return &DB{}
}

// Linked lists the distributions recorded in the prefix's metadata
// directory, in lexical order. A prefix without one is an empty
// environment, not an error.
func (d *DB) Linked(prefix string) ([]domain.Dist, error) {
	entries, err := os.ReadDir(domain.MetaDir(prefix))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read metadata directory"), "prefix", prefix)
	}

	var dists []domain.Dist
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), ".json")
		if !ok {
			continue
		}
		dists = append(dists, domain.Dist(name))
	}
	return dists, nil
}

// Meta reads the metadata record of one linked distribution. A missing
// record yields nil without an error, so callers can distinguish "not
// linked" from a corrupt record.
func (d *DB) Meta(prefix string, dist domain.Dist) (*domain.PackageRecord, error) {
	//nolint:gosec // Path is derived from the metadata layout
	data, err := os.ReadFile(domain.MetaPath(prefix, dist))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read metadata record"), "dist", dist.String())
	}

	var rec domain.PackageRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal metadata record"), "dist", dist.String())
	}
	return &rec, nil
}

var _ ports.PackageDB = (*DB)(nil)
