package usecase

import (
	"context"
	"log/slog"

	"content-indexer/port"
)

// InvalidCount is returned when the underlying count query fails. A
// documented sentinel, not an error.
const InvalidCount int64 = -1

// CountDocumentsUsecase reports the number of documents in the index.
type CountDocumentsUsecase struct {
	searchEngine port.SearchEngine
	logger       *slog.Logger
}

func NewCountDocumentsUsecase(searchEngine port.SearchEngine, logger *slog.Logger) *CountDocumentsUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CountDocumentsUsecase{
		searchEngine: searchEngine,
		logger:       logger,
	}
}

func (u *CountDocumentsUsecase) Execute(ctx context.Context) int64 {
	count, err := u.searchEngine.CountDocuments(ctx)
	if err != nil {
		u.logger.Warn("document count query failed", "err", err)
		return InvalidCount
	}
	return count
}
