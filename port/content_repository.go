package port

import (
	"context"

	"content-indexer/domain"
)

// ContentRepository is the CMS-side collaborator surface: page-wise content
// retrieval for full builds, by-id loads for event handling, and the
// indexing status audit write-back.
type ContentRepository interface {
	// GetContentPage returns up to limit entities with id > lastID, ordered
	// by id, plus the cursor for the next page.
	GetContentPage(ctx context.Context, lastID int64, limit int) ([]*domain.Content, int64, error)
	GetContentByID(ctx context.Context, id int64) (*domain.Content, error)
	SaveIndexingStatus(ctx context.Context, contentID int64, outcome domain.IndexOutcome) error
}

// SettingsRepository loads the CMS search settings entity.
type SettingsRepository interface {
	LoadSearchSettings(ctx context.Context) (*domain.SearchSettings, error)
}

// RepositoryError represents an error from the repository layer.
type RepositoryError struct {
	Op  string
	Err string
}

func (e *RepositoryError) Error() string {
	return e.Op + ": " + e.Err
}
