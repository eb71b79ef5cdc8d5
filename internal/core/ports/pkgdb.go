package ports

import "go.trai.ch/den/internal/core/domain"

// PackageDB defines the interface for querying the per-environment package
// metadata records.
//
//go:generate go run go.uber.org/mock/mockgen -source=pkgdb.go -destination=mocks/mock_pkgdb.go -package=mocks
type PackageDB interface {
	// Linked returns the distributions linked into prefix, in lexical
	// order. An environment without metadata yields an empty slice.
	Linked(prefix string) ([]domain.Dist, error)

	// Meta returns the metadata record of a linked distribution.
	// Returns nil, nil if the distribution is not linked.
	Meta(prefix string, dist domain.Dist) (*domain.PackageRecord, error)
}
