// Package actions executes distribution plans against the archive cache
// and environment prefixes.
package actions

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

// fetchTimeout bounds a single archive download.
const fetchTimeout = 10 * time.Minute

// Executor implements ports.PlanExecutor. Steps run in domain.OpOrder;
// within the fetch phase downloads run in parallel, every other phase is
// sequential.
type Executor struct {
	cache  ports.ArchiveCache
	tel    ports.Telemetry
	log    ports.Logger
	client *http.Client
	limit  int
}

// New creates a new Executor.
func New(cache ports.ArchiveCache, tel ports.Telemetry, log ports.Logger) *Executor {
	return newExecutorWithClient(cache, tel, log, &http.Client{Timeout: fetchTimeout})
}

// newExecutorWithClient creates an Executor with a custom http client
// (used for testing).
func newExecutorWithClient(cache ports.ArchiveCache, tel ports.Telemetry, log ports.Logger, client *http.Client) *Executor {
	return &Executor{
		cache:  cache,
		tel:    tel,
		log:    log,
		client: client,
		limit:  runtime.NumCPU(),
	}
}

// Execute runs the plan phase by phase. It stops at the first failing
// step and leaves later phases unexecuted.
func (e *Executor) Execute(ctx context.Context, plan *domain.Plan, index domain.Index) error {
	for _, kind := range domain.OpOrder {
		steps := plan.Steps(kind)
		if len(steps) == 0 {
			continue
		}
		if err := e.runPhase(ctx, kind, steps, plan.Prefix, index); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) runPhase(ctx context.Context, kind domain.OpKind, steps []domain.Dist, prefix string, index domain.Index) error {
	if kind == domain.OpFetch {
		return e.fetchPhase(ctx, steps, index)
	}
	for _, dist := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.step(ctx, kind, dist, prefix, index); err != nil {
			return stepError(err, kind, dist)
		}
	}
	return nil
}

// stepError annotates a failed step with its kind and distribution.
func stepError(err error, kind domain.OpKind, dist domain.Dist) error {
	return zerr.With(zerr.With(zerr.Wrap(err, "plan step failed"),
		"step", string(kind)), "dist", dist.String())
}

// step runs one non-fetch plan step under its own telemetry vertex.
func (e *Executor) step(ctx context.Context, kind domain.OpKind, dist domain.Dist, prefix string, index domain.Index) error {
	_, vtx := e.tel.Record(ctx, fmt.Sprintf("%s %s", kind, dist))
	err := e.dispatch(kind, dist, prefix, index)
	vtx.Complete(err)
	return err
}

func (e *Executor) dispatch(kind domain.OpKind, dist domain.Dist, prefix string, index domain.Index) error {
	switch kind {
	case domain.OpRemoveFetched:
		return e.cache.RemoveArchive(dist)
	case domain.OpRemoveExtracted:
		return e.cache.RemoveExtracted(dist)
	case domain.OpExtract:
		return e.extract(dist)
	case domain.OpUnlink:
		return e.unlink(prefix, dist)
	case domain.OpLink:
		return e.link(prefix, dist, index)
	default:
		return zerr.With(zerr.New("unexpected plan step"), "kind", string(kind))
	}
}

var _ ports.PlanExecutor = (*Executor)(nil)
