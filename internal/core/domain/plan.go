package domain

import "strings"

// OpKind names one kind of plan step.
type OpKind string

const (
	// OpRemoveFetched discards a cached archive.
	OpRemoveFetched OpKind = "RM_FETCHED"
	// OpFetch downloads an archive into the cache.
	OpFetch OpKind = "FETCH"
	// OpRemoveExtracted discards an extracted archive copy.
	OpRemoveExtracted OpKind = "RM_EXTRACTED"
	// OpExtract unpacks a cached archive next to it.
	OpExtract OpKind = "EXTRACT"
	// OpUnlink removes a distribution from an environment.
	OpUnlink OpKind = "UNLINK"
	// OpLink materializes an extracted distribution into an environment.
	OpLink OpKind = "LINK"
)

// OpOrder is the fixed execution order of plan phases. Cache hygiene runs
// first, environment mutations last, and unlinks always precede links.
var OpOrder = []OpKind{
	OpRemoveFetched,
	OpFetch,
	OpRemoveExtracted,
	OpExtract,
	OpUnlink,
	OpLink,
}

// Plan is an ordered set of steps against one target prefix. Steps are
// grouped by kind; within a kind they keep insertion order, and kinds
// execute in OpOrder regardless of insertion order.
type Plan struct {
	Prefix string

	steps map[OpKind][]Dist
}

// NewPlan creates an empty plan for the given target prefix.
func NewPlan(prefix string) *Plan {
	return &Plan{
		Prefix: prefix,
		steps:  make(map[OpKind][]Dist),
	}
}

// Add appends a step of the given kind.
func (p *Plan) Add(kind OpKind, dist Dist) {
	p.steps[kind] = append(p.steps[kind], dist)
}

// Steps returns the distributions scheduled for a kind, in insertion order.
func (p *Plan) Steps(kind OpKind) []Dist {
	return p.steps[kind]
}

// Empty reports whether the plan schedules no steps at all.
func (p *Plan) Empty() bool {
	return p.Size() == 0
}

// Size returns the total number of scheduled steps.
func (p *Plan) Size() int {
	n := 0
	for _, dists := range p.steps {
		n += len(dists)
	}
	return n
}

// String renders the plan in execution order, one step per line.
func (p *Plan) String() string {
	var b strings.Builder
	for _, kind := range OpOrder {
		for _, dist := range p.steps[kind] {
			b.WriteString(string(kind))
			b.WriteString(" ")
			b.WriteString(dist.String())
			b.WriteString("\n")
		}
	}
	return b.String()
}
