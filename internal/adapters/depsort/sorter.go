// Package depsort orders distributions so dependencies link first.
package depsort

import (
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
)

// Sorter implements ports.DependencySorter with a depth-first walk over the
// dependency names the index declares.
type Sorter struct{}

// New creates a Sorter.
func New() *Sorter {
	return &Sorter{}
}

const (
	unvisited = iota
	visiting
	done
)

// Sort returns the distributions reordered dependency-first. Dependencies
// outside the given set are ignored, distributions missing from the index
// sort as leaves, and dependency cycles are broken at the edge that closes
// them. The walk follows input order, so the result is deterministic.
func (s *Sorter) Sort(index domain.Index, dists []domain.Dist) []domain.Dist {
	byName := make(map[string]domain.Dist, len(dists))
	for _, dist := range dists {
		byName[dist.Name()] = dist
	}

	state := make(map[domain.Dist]int, len(dists))
	order := make([]domain.Dist, 0, len(dists))

	var visit func(dist domain.Dist)
	visit = func(dist domain.Dist) {
		state[dist] = visiting
		if rec, ok := index[dist.Key()]; ok {
			for _, dep := range rec.Depends {
				fields := strings.Fields(dep)
				if len(fields) == 0 {
					continue
				}
				next, ok := byName[fields[0]]
				if !ok {
					continue
				}
				if state[next] == unvisited {
					visit(next)
				}
			}
		}
		state[dist] = done
		order = append(order, dist)
	}

	for _, dist := range dists {
		if state[dist] == unvisited {
			visit(dist)
		}
	}
	return order
}

var _ ports.DependencySorter = (*Sorter)(nil)
