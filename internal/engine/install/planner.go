package install

import (
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

// Planner builds the minimal plan that brings a set of distributions into a
// linked state, reusing whatever the archive cache already holds.
type Planner struct {
	db    ports.PackageDB
	cache ports.ArchiveCache
}

// NewPlanner creates a Planner.
func NewPlanner(db ports.PackageDB, cache ports.ArchiveCache) *Planner {
	return &Planner{db: db, cache: cache}
}

// EnsureLinked plans the steps still missing for each distribution. Already
// linked distributions are skipped entirely; extracted ones only need
// linking; fetched ones skip the download.
func (p *Planner) EnsureLinked(dists []domain.Dist, prefix string) (*domain.Plan, error) {
	linked, err := p.db.Linked(prefix)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list linked distributions")
	}
	isLinked := make(map[domain.Dist]struct{}, len(linked))
	for _, dist := range linked {
		isLinked[dist] = struct{}{}
	}

	plan := domain.NewPlan(prefix)
	for _, dist := range dists {
		if _, ok := isLinked[dist]; ok {
			continue
		}
		plan.Add(domain.OpLink, dist)
		if _, ok := p.cache.Extracted(dist); ok {
			continue
		}
		plan.Add(domain.OpExtract, dist)
		if _, ok := p.cache.Fetched(dist); ok {
			continue
		}
		plan.Add(domain.OpFetch, dist)
	}
	return plan, nil
}
