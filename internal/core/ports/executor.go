// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/den/internal/core/domain"
)

// PlanExecutor defines the interface for executing action plans.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type PlanExecutor interface {
	// Execute runs the plan phase by phase in domain.OpOrder. The index
	// supplies fetch URLs and metadata for distributions that are not in
	// the cache yet.
	//
	// Execution stops at the first failing step.
	Execute(ctx context.Context, plan *domain.Plan, index domain.Index) error
}
