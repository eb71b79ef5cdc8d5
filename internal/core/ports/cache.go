package ports

import "go.trai.ch/den/internal/core/domain"

// ArchiveCache defines the interface for the shared archive cache: fetched
// archives, their extracted copies, and the ledger recording which URL and
// channel label each archive slot was fetched under.
//
// Distributions from different channels share one filename slot, so slot
// ownership is part of every lookup.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ArchiveCache interface {
	// Fetched reports whether dist has a validly cached archive owned by
	// its channel, and returns the archive path if so.
	Fetched(dist domain.Dist) (string, bool)

	// Extracted reports whether dist has an extracted copy owned by its
	// channel, and returns the directory path if so.
	Extracted(dist domain.Dist) (string, bool)

	// ArchivePath returns the cache path an archive for dist would occupy,
	// whether or not it exists.
	ArchivePath(dist domain.Dist) string

	// ExtractedPath returns the directory an extracted copy of dist would
	// occupy, whether or not it exists.
	ExtractedPath(dist domain.Dist) string

	// Conflict returns the distribution currently occupying dist's archive
	// slot under a different channel label, if any.
	Conflict(dist domain.Dist) (domain.Dist, bool)

	// ChannelPrefix returns the formatted label prefix ("" or "label::")
	// under which the given URL was fetched, if the ledger knows the URL.
	ChannelPrefix(url string) (string, bool)

	// RecordURL notes in the ledger that dist's slot now holds the archive
	// fetched from url.
	RecordURL(url string, dist domain.Dist) error

	// RemoveArchive deletes the cached archive and its ledger entry.
	RemoveArchive(dist domain.Dist) error

	// RemoveExtracted deletes the extracted copy.
	RemoveExtracted(dist domain.Dist) error
}
