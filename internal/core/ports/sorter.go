package ports

import "go.trai.ch/den/internal/core/domain"

// DependencySorter defines the interface for ordering distributions so that
// dependencies precede their dependents.
//
//go:generate mockgen -source=sorter.go -destination=mocks/mock_sorter.go -package=mocks
type DependencySorter interface {
	// Sort returns the distributions reordered dependency-first, using the
	// index to look up dependency names. Distributions absent from the
	// index sort as leaves. The result is deterministic for a given input
	// order.
	Sort(index domain.Index, dists []domain.Dist) []domain.Dist
}
