package usecase

import (
	"context"
	"log/slog"

	"content-indexer/domain"
	"content-indexer/port"
)

// ContentSource retrieves one page of build candidates. It mirrors
// ContentRepository.GetContentPage so a caller can substitute a custom
// retrieval for the full-build enumeration.
type ContentSource func(ctx context.Context, lastID int64, limit int) ([]*domain.Content, int64, error)

// BuildResult summarizes one full build run.
type BuildResult struct {
	IndexedCount int
	RemovedCount int
	SkippedCount int
	Pages        int
}

// BuildIndexUsecase performs a full re-sync of the content set into the
// index: page by page, excluded entities are bulk-deleted and includable
// ones bulk-upserted, with a single refresh at the end of the run. It does
// not diff against existing index state.
type BuildIndexUsecase struct {
	contentRepo  port.ContentRepository
	searchEngine port.SearchEngine
	indexer      *IndexContentUsecase
	settings     *domain.SearchSettings
	logger       *slog.Logger
}

func NewBuildIndexUsecase(
	contentRepo port.ContentRepository,
	searchEngine port.SearchEngine,
	indexer *IndexContentUsecase,
	settings *domain.SearchSettings,
	logger *slog.Logger,
) *BuildIndexUsecase {
	if settings == nil {
		settings = domain.DefaultSearchSettings()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildIndexUsecase{
		contentRepo:  contentRepo,
		searchEngine: searchEngine,
		indexer:      indexer,
		settings:     settings,
		logger:       logger,
	}
}

// Execute runs the full build using the repository as content source.
func (u *BuildIndexUsecase) Execute(ctx context.Context) (*BuildResult, error) {
	return u.ExecuteWithSource(ctx, u.contentRepo.GetContentPage)
}

// ExecuteWithSource runs the full build over a custom content source.
func (u *BuildIndexUsecase) ExecuteWithSource(ctx context.Context, source ContentSource) (*BuildResult, error) {
	result := &BuildResult{}
	batchSize := u.settings.BatchSize()

	var lastID int64
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		contents, nextID, err := source(ctx, lastID, batchSize)
		if err != nil {
			return result, err
		}
		if len(contents) == 0 {
			break
		}
		result.Pages++

		excludedIDs := make([]string, 0, len(contents))
		docs := make([]domain.SearchDocument, 0, len(contents))

		for _, content := range contents {
			if u.indexer.IsExcludedFromIndex(content) {
				excludedIDs = append(excludedIDs, content.DocumentID())
				continue
			}

			doc, err := u.indexer.CreateDocument(ctx, content)
			if err != nil {
				u.logger.Error("skipping content, document creation failed",
					"content_id", content.ID(),
					"err", err,
				)
				result.SkippedCount++
				continue
			}
			if doc == nil {
				u.logger.Warn("skipping content without resolvable URL",
					"content_id", content.ID(),
				)
				result.SkippedCount++
				continue
			}
			docs = append(docs, *doc)
		}

		if len(excludedIDs) > 0 {
			if err := u.searchEngine.DeleteDocuments(ctx, excludedIDs); err != nil {
				return result, err
			}
			result.RemovedCount += len(excludedIDs)
		}

		if len(docs) > 0 {
			if err := u.searchEngine.IndexDocuments(ctx, docs); err != nil {
				return result, err
			}
			result.IndexedCount += len(docs)
		}

		lastID = nextID
	}

	// One refresh for the whole run, never per page.
	if err := u.searchEngine.Refresh(ctx); err != nil {
		return result, err
	}

	u.logger.Info("index build complete",
		"indexed", result.IndexedCount,
		"removed", result.RemovedCount,
		"skipped", result.SkippedCount,
		"pages", result.Pages,
	)
	return result, nil
}
