package ports

import "go.trai.ch/den/internal/core/domain"

// LinkPlanner defines the interface for planning the minimal work that
// brings a set of distributions into a linked state.
//
//go:generate mockgen -source=planner.go -destination=mocks/mock_planner.go -package=mocks
type LinkPlanner interface {
	// EnsureLinked plans a link step for every distribution not already
	// linked into prefix, adding extract and fetch steps only where the
	// cache misses. Already linked distributions get no steps.
	EnsureLinked(dists []domain.Dist, prefix string) (*domain.Plan, error)
}
