// Package clone copies one environment prefix into another.
package clone

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/den/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// Cloner reproduces a source prefix in a destination prefix: untracked
// files are copied with embedded prefix paths rewritten, and linked
// packages are reinstalled through the planner.
type Cloner struct {
	rec      *reconcile.Engine
	db       ports.PackageDB
	channels ports.ChannelResolver
	index    ports.IndexClient
	sorter   ports.DependencySorter
	planner  ports.LinkPlanner
	exec     ports.PlanExecutor
	log      ports.Logger
	platform string
}

// New creates a Cloner. The platform subdirectory selects which collection
// indexes are fetched when the caller supplies no index cache.
func New(
	rec *reconcile.Engine,
	db ports.PackageDB,
	channels ports.ChannelResolver,
	index ports.IndexClient,
	sorter ports.DependencySorter,
	planner ports.LinkPlanner,
	exec ports.PlanExecutor,
	log ports.Logger,
	platform string,
) *Cloner {
	return &Cloner{
		rec:      rec,
		db:       db,
		channels: channels,
		index:    index,
		sorter:   sorter,
		planner:  planner,
		exec:     exec,
		log:      log,
		platform: platform,
	}
}

// Clone populates dst with the contents of src: untracked files first, then
// the linked packages in dependency order. It returns the executed linking
// plan and the untracked file set that was copied.
//
// A non-nil index cache is used as the complete resolution context; a nil
// cache makes the cloner fetch the configured collection indexes itself.
func (c *Cloner) Clone(ctx context.Context, src, dst string, idxCache domain.IndexCache) (*domain.Plan, domain.FileSet, error) {
	src, err := filepath.Abs(src)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to resolve source prefix")
	}
	dst, err = filepath.Abs(dst)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to resolve destination prefix")
	}

	untracked, err := c.rec.Untracked(src, false)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to compute untracked files")
	}
	linked, err := c.db.Linked(src)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to list linked distributions")
	}
	dists := discardManager(linked)

	c.log.Info(fmt.Sprintf("cloning %d packages and %d files from %s", len(dists), len(untracked), src))

	for _, f := range untracked.Sorted() {
		if err := c.copyUntracked(src, dst, f); err != nil {
			return nil, nil, err
		}
	}

	index, err := c.resolutionIndex(ctx, idxCache)
	if err != nil {
		return nil, nil, err
	}

	plan, err := c.planner.EnsureLinked(c.sorter.Sort(index, dists), dst)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to plan package linking")
	}
	if err := c.exec.Execute(ctx, plan, index); err != nil {
		return plan, untracked, zerr.Wrap(err, "plan execution failed")
	}
	return plan, untracked, nil
}

// copyUntracked transfers one untracked file. Symbolic links are recreated
// with their original target string, text files have embedded source prefix
// paths rewritten, and binary files are copied byte for byte. A file that
// cannot be read is skipped.
func (c *Cloner) copyUntracked(src, dst, rel string) error {
	srcPath := filepath.Join(src, filepath.FromSlash(rel))
	dstPath := filepath.Join(dst, filepath.FromSlash(rel))

	// Anything occupying the parent position as a non-directory has to go.
	dstDir := filepath.Dir(dstPath)
	if info, err := os.Lstat(dstDir); err == nil && !info.IsDir() {
		if err := os.Remove(dstDir); err != nil {
			return zerr.Wrap(err, "failed to clear destination parent")
		}
	}
	if err := os.MkdirAll(dstDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create destination directory")
	}

	info, err := os.Lstat(srcPath)
	if err != nil {
		return nil
	}
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(srcPath)
		if err != nil {
			return zerr.Wrap(err, "failed to read symlink target")
		}
		if err := os.Symlink(target, dstPath); err != nil {
			return zerr.Wrap(err, "failed to recreate symlink")
		}
		return nil
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return nil
	}
	// Shebangs and generated configuration embed the absolute prefix.
	if utf8.Valid(data) {
		data = []byte(strings.ReplaceAll(string(data), src, dst))
	}

	if err := os.WriteFile(dstPath, data, info.Mode().Perm()); err != nil {
		return zerr.Wrap(err, "failed to write cloned file")
	}
	if err := os.Chmod(dstPath, info.Mode().Perm()); err != nil {
		return zerr.Wrap(err, "failed to copy file mode")
	}
	if err := os.Chtimes(dstPath, info.ModTime(), info.ModTime()); err != nil {
		return zerr.Wrap(err, "failed to copy file times")
	}
	return nil
}

// resolutionIndex merges the caller's index cache, or fetches the configured
// collections when none was given. A collection that cannot be fetched is
// logged and skipped so one unreachable channel does not block a clone.
func (c *Cloner) resolutionIndex(ctx context.Context, idxCache domain.IndexCache) (domain.Index, error) {
	index := make(domain.Index)
	if idxCache != nil {
		for _, collectionIndex := range idxCache {
			index.Merge(collectionIndex)
		}
		return index, nil
	}

	for _, collection := range c.channels.Collections(c.platform) {
		collectionIndex, err := c.index.FetchIndex(ctx, collection, c.labelPrefix(collection))
		if err != nil {
			c.log.Warn(fmt.Sprintf("skipping channel index %s: %v", collection, err))
			continue
		}
		index.Merge(collectionIndex)
	}
	return index, nil
}

func (c *Cloner) labelPrefix(collection string) string {
	if label := c.channels.Label(collection); label != "" {
		return label + domain.ChannelSep
	}
	return ""
}

// discardManager drops the package manager's own distribution. The
// destination environment keeps its own copy rather than a cloned one.
func discardManager(dists []domain.Dist) []domain.Dist {
	kept := make([]domain.Dist, 0, len(dists))
	for _, dist := range dists {
		if dist.Name() == domain.ManagerPackageName {
			continue
		}
		kept = append(kept, dist)
	}
	return kept
}
