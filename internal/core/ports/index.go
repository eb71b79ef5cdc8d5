package ports

import (
	"context"

	"go.trai.ch/den/internal/core/domain"
)

// IndexClient defines the interface for fetching channel indexes.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type IndexClient interface {
	// FetchIndex retrieves the index of one collection URL. Entries are
	// keyed by labeled filename using the given label prefix, and carry
	// their resolved fetch URL. A collection that exists but has no index
	// yields an empty index, not an error.
	FetchIndex(ctx context.Context, collectionURL, labelPrefix string) (domain.Index, error)
}
