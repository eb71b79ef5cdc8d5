// Package pkgcache manages the shared archive cache under the pkgs
// directory: downloaded archives, their extracted copies, and the ledger
// that records which URL and channel label each archive slot belongs to.
package pkgcache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

// ledgerEntry records the provenance of one archive slot.
type ledgerEntry struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// Cache implements ports.ArchiveCache over one pkgs directory. Archives
// from different channels share a filename slot, so the ledger keyed by
// base filename decides ownership.
type Cache struct {
	dir string

	mu     sync.RWMutex
	ledger map[string]ledgerEntry
}

// New creates the cache rooted at dir, creating the directory and loading
// the ledger if one exists.
func New(dir string) (*Cache, error) {
	c := &Cache{
		dir:    filepath.Clean(dir),
		ledger: make(map[string]ledgerEntry),
	}
	if err := os.MkdirAll(c.dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create cache directory")
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) ledgerPath() string {
	return filepath.Join(c.dir, domain.URLLedgerFileName)
}

func (c *Cache) load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(c.ledgerPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read cache ledger")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &c.ledger); err != nil {
		return zerr.Wrap(err, "failed to unmarshal cache ledger")
	}
	return nil
}

// save writes the ledger atomically so a crashed run never leaves a
// half-written ledger behind.
func (c *Cache) save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.ledger, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache ledger")
	}

	tmp, err := os.CreateTemp(c.dir, "urls-*.json")
	if err != nil {
		return zerr.Wrap(err, "failed to create ledger temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write ledger temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close ledger temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set ledger permissions")
	}
	if err := os.Rename(tmpName, c.ledgerPath()); err != nil {
		return zerr.Wrap(err, "failed to replace cache ledger")
	}
	return nil
}

// ArchivePath returns the slot an archive for dist occupies. Slots are
// keyed by the unlabeled filename.
func (c *Cache) ArchivePath(dist domain.Dist) string {
	return filepath.Join(c.dir, dist.Filename())
}

// ExtractedPath returns the directory an extracted copy of dist occupies.
func (c *Cache) ExtractedPath(dist domain.Dist) string {
	return filepath.Join(c.dir, dist.Base())
}

// Fetched reports whether dist's archive is present and owned by its
// channel label. A slot recorded under another label does not count, even
// when the bytes are present.
func (c *Cache) Fetched(dist domain.Dist) (string, bool) {
	path := c.ArchivePath(dist)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return "", false
	}
	if !c.owns(dist) {
		return "", false
	}
	return path, true
}

// Extracted reports whether dist has an extracted copy owned by its
// channel label. Presence of the file manifest marks a complete extraction.
func (c *Cache) Extracted(dist domain.Dist) (string, bool) {
	path := c.ExtractedPath(dist)
	if _, err := os.Stat(filepath.Join(path, domain.InfoDirName, domain.InfoFilesName)); err != nil {
		return "", false
	}
	if !c.owns(dist) {
		return "", false
	}
	return path, true
}

// owns reports whether dist's channel label matches the slot's ledger
// entry. A slot without an entry belongs to the default channel.
func (c *Cache) owns(dist domain.Dist) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.ledger[dist.Filename()]
	if !ok {
		return dist.LabelPrefix() == ""
	}
	return entry.Label == dist.LabelPrefix()
}

// Conflict returns the distribution occupying dist's archive slot under a
// different channel label, if the slot is taken.
func (c *Cache) Conflict(dist domain.Dist) (domain.Dist, bool) {
	if _, err := os.Stat(c.ArchivePath(dist)); err != nil {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	label := ""
	if entry, ok := c.ledger[dist.Filename()]; ok {
		label = entry.Label
	}
	if label == dist.LabelPrefix() {
		return "", false
	}
	return domain.Dist(label + dist.Base()), true
}

// ChannelPrefix returns the label prefix under which the given URL was
// fetched, if the ledger has seen the URL.
func (c *Cache) ChannelPrefix(url string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entry := range c.ledger {
		if entry.URL == url {
			return entry.Label, true
		}
	}
	return "", false
}

// RecordURL notes that dist's slot now holds the archive fetched from url.
func (c *Cache) RecordURL(url string, dist domain.Dist) error {
	c.mu.Lock()
	c.ledger[dist.Filename()] = ledgerEntry{URL: url, Label: dist.LabelPrefix()}
	c.mu.Unlock()

	return c.save()
}

// RemoveArchive deletes the cached archive and forgets its ledger entry.
func (c *Cache) RemoveArchive(dist domain.Dist) error {
	if err := os.Remove(c.ArchivePath(dist)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove cached archive"), "dist", dist.String())
	}

	c.mu.Lock()
	_, had := c.ledger[dist.Filename()]
	delete(c.ledger, dist.Filename())
	c.mu.Unlock()

	if !had {
		return nil
	}
	return c.save()
}

// RemoveExtracted deletes the extracted copy of dist.
func (c *Cache) RemoveExtracted(dist domain.Dist) error {
	if err := os.RemoveAll(c.ExtractedPath(dist)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove extracted copy"), "dist", dist.String())
	}
	return nil
}

var _ ports.ArchiveCache = (*Cache)(nil)
