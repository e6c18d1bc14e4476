package port

import (
	"context"
	"time"

	"content-indexer/domain"
)

// SearchEngine is the engine-side collaborator surface. Upserts and deletes
// are enqueued; Refresh waits until everything enqueued so far is visible.
type SearchEngine interface {
	IndexDocuments(ctx context.Context, docs []domain.SearchDocument) error
	DeleteDocuments(ctx context.Context, ids []string) error
	DocumentExists(ctx context.Context, id string) (bool, error)
	CountDocuments(ctx context.Context) (int64, error)
	CurrentSchema(ctx context.Context) (domain.IndexSchema, error)
	RegisterSchema(ctx context.Context, schema domain.IndexSchema) error
	Refresh(ctx context.Context) error
	EnsureIndex(ctx context.Context) error
	Search(ctx context.Context, query string, limit, offset int64) ([]domain.SearchDocument, int64, time.Duration, error)
	SearchInSection(ctx context.Context, query, section string, limit, offset int64) ([]domain.SearchDocument, int64, time.Duration, error)
}
