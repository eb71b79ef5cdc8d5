// Package install plans and runs explicit package installations.
package install

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer turns explicit specification lines into one executed plan.
type Installer struct {
	db       ports.PackageDB
	cache    ports.ArchiveCache
	channels ports.ChannelResolver
	index    ports.IndexClient
	hasher   ports.Hasher
	exec     ports.PlanExecutor
	log      ports.Logger
}

// New creates an Installer.
func New(
	db ports.PackageDB,
	cache ports.ArchiveCache,
	channels ports.ChannelResolver,
	index ports.IndexClient,
	hasher ports.Hasher,
	exec ports.PlanExecutor,
	log ports.Logger,
) *Installer {
	return &Installer{
		db:       db,
		cache:    cache,
		channels: channels,
		index:    index,
		hasher:   hasher,
		exec:     exec,
		log:      log,
	}
}

// Install parses explicit specification lines, accumulates one plan for the
// target prefix, and submits it to the executor once every line has been
// validated. Any fatal condition aborts before execution, so a malformed
// batch schedules nothing.
//
// The index cache memoizes fetched collection indexes across calls; passing
// nil uses a fresh one.
func (in *Installer) Install(ctx context.Context, specs []string, prefix string, idxCache domain.IndexCache) (*domain.Plan, error) {
	if idxCache == nil {
		idxCache = make(domain.IndexCache)
	}

	linked, err := in.db.Linked(prefix)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list linked distributions")
	}
	linkedByName := make(map[string]domain.Dist, len(linked))
	for _, dist := range linked {
		linkedByName[dist.Name()] = dist
	}

	plan := domain.NewPlan(prefix)
	index := make(domain.Index)

	for _, line := range specs {
		if line == domain.ExplicitMarker {
			continue
		}

		spec, err := domain.ParseExplicitSpec(line)
		if err != nil {
			return nil, err
		}

		url := spec.Location
		if !domain.IsURL(url) {
			if _, statErr := os.Stat(url); statErr != nil {
				return nil, zerr.With(domain.ErrLocalArchiveMissing, "path", url)
			}
			url = domain.FileURL(url)
		}
		collection, filename := domain.SplitURL(url)

		// A file URL may point at an archive already in the cache; if so
		// the ledger knows its channel label. Everything else derives the
		// label from the URL structure.
		labelPrefix, known := "", false
		if strings.HasPrefix(url, domain.FileURLPrefix) {
			labelPrefix, known = in.cache.ChannelPrefix(url)
		}
		if !known {
			if label := in.channels.Label(url); label != "" {
				labelPrefix = label + domain.ChannelSep
			}
		}

		dist, err := domain.DistFromFilename(labelPrefix, filename)
		if err != nil {
			return nil, err
		}

		// A cached archive is only trusted when no checksum was given or
		// the checksum agrees; a stale copy is scheduled away and fetched
		// fresh.
		fetched := false
		if archivePath, ok := in.cache.Fetched(dist); ok {
			fetched = true
			if spec.MD5 != "" {
				sum, hashErr := in.hasher.FileMD5(archivePath)
				if hashErr != nil {
					return nil, zerr.With(zerr.Wrap(hashErr, "failed to hash cached archive"), "dist", dist.String())
				}
				if sum != spec.MD5 {
					plan.Add(domain.OpRemoveFetched, dist)
					fetched = false
				}
			}
		}

		if !fetched {
			collectionIndex, err := in.collectionIndex(ctx, idxCache, collection+"/", labelPrefix)
			if err != nil {
				return nil, err
			}

			rec, ok := collectionIndex[dist.Key()]
			if !ok {
				return nil, zerr.With(domain.ErrPackageNotInIndex, "dist", dist.String())
			}
			if spec.MD5 != "" {
				switch {
				case rec.MD5 == "":
					in.log.Warn(fmt.Sprintf("cannot lookup checksum of %s", dist))
				case rec.MD5 != spec.MD5:
					return nil, zerr.With(zerr.With(domain.ErrChecksumMismatch,
						"dist", dist.String()), "expected", spec.MD5)
				}
			}
			if conflict, ok := in.cache.Conflict(dist); ok {
				plan.Add(domain.OpRemoveFetched, conflict)
			}
			plan.Add(domain.OpFetch, dist)
			index.Merge(collectionIndex)
		}

		plan.Add(domain.OpRemoveExtracted, dist)
		plan.Add(domain.OpExtract, dist)
		if current, ok := linkedByName[dist.Name()]; ok {
			plan.Add(domain.OpUnlink, current)
		}
		plan.Add(domain.OpLink, dist)
	}

	if err := in.exec.Execute(ctx, plan, index); err != nil {
		return plan, zerr.Wrap(err, "plan execution failed")
	}
	return plan, nil
}

// collectionIndex fetches a collection's index at most once per run.
func (in *Installer) collectionIndex(ctx context.Context, idxCache domain.IndexCache, collectionURL, labelPrefix string) (domain.Index, error) {
	if index, ok := idxCache[collectionURL]; ok {
		return index, nil
	}
	index, err := in.index.FetchIndex(ctx, collectionURL, labelPrefix)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to fetch channel index"), "url", collectionURL)
	}
	idxCache[collectionURL] = index
	return index, nil
}
