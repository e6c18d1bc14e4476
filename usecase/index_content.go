package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"content-indexer/domain"
	"content-indexer/port"
)

// placeholderURL is what the CMS URL provider returns for content that has
// no routable address yet.
const placeholderURL = "#"

// IndexContentUsecase synchronizes single content entities into the search
// index. Index and Remove never return an error: every failure is logged
// and converted into an error outcome, so CMS event handlers can always
// persist a status and never have to unwind.
type IndexContentUsecase struct {
	urlResolver  port.URLResolver
	searchEngine port.SearchEngine
	builder      domain.DocumentBuilder
	settings     *domain.SearchSettings
	logger       *slog.Logger
}

func NewIndexContentUsecase(
	urlResolver port.URLResolver,
	searchEngine port.SearchEngine,
	builder domain.DocumentBuilder,
	settings *domain.SearchSettings,
	logger *slog.Logger,
) *IndexContentUsecase {
	if settings == nil {
		settings = domain.DefaultSearchSettings()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IndexContentUsecase{
		urlResolver:  urlResolver,
		searchEngine: searchEngine,
		builder:      builder,
		settings:     settings,
		logger:       logger,
	}
}

// Index upserts the document derived from content, or removes it when the
// entity is excluded from indexing.
func (u *IndexContentUsecase) Index(ctx context.Context, content *domain.Content) domain.IndexOutcome {
	if u.IsExcludedFromIndex(content) {
		return u.Remove(ctx, content)
	}

	doc, err := u.CreateDocument(ctx, content)
	if err != nil {
		u.logger.Error("failed to create search document",
			"content_id", content.ID(),
			"name", content.Name(),
			"err", err,
		)
		return domain.ErrorOutcome(content.DocumentID(),
			fmt.Sprintf("unable to create search document for %q (id %d): %v", content.Name(), content.ID(), err))
	}
	if doc == nil {
		u.logger.Warn("content has no resolvable URL, not indexable",
			"content_id", content.ID(),
			"name", content.Name(),
		)
		return domain.ErrorOutcome(content.DocumentID(),
			fmt.Sprintf("unable to create search document for %q (id %d): no resolvable URL", content.Name(), content.ID()))
	}

	if err := u.searchEngine.IndexDocuments(ctx, []domain.SearchDocument{*doc}); err != nil {
		u.logger.Error("failed to index document",
			"content_id", content.ID(),
			"doc_id", doc.ID,
			"err", err,
		)
		return domain.ErrorOutcome(doc.ID,
			fmt.Sprintf("failed to index %q (id %d): %v", content.Name(), content.ID(), err))
	}

	return domain.SuccessOutcome(doc.ID,
		fmt.Sprintf("indexed %q (id %d) at %s", content.Name(), content.ID(), doc.URL))
}

// Remove deletes the entity's document from the index if it is present.
func (u *IndexContentUsecase) Remove(ctx context.Context, content *domain.Content) domain.IndexOutcome {
	return u.RemoveByID(ctx, content.ID())
}

// RemoveByID removes by raw content id, for entities that no longer load
// from the CMS (hard deletes).
func (u *IndexContentUsecase) RemoveByID(ctx context.Context, contentID int64) domain.IndexOutcome {
	docID := strconv.FormatInt(contentID, 10)

	exists, err := u.searchEngine.DocumentExists(ctx, docID)
	if err != nil {
		u.logger.Error("failed to check document existence",
			"doc_id", docID,
			"err", err,
		)
		return domain.ErrorOutcome(docID,
			fmt.Sprintf("failed to look up document %s: %v", docID, err))
	}

	if !exists {
		return domain.SuccessOutcome(docID,
			fmt.Sprintf("document %s not present in index", docID))
	}

	if err := u.searchEngine.DeleteDocuments(ctx, []string{docID}); err != nil {
		u.logger.Error("failed to delete document",
			"doc_id", docID,
			"err", err,
		)
		return domain.ErrorOutcome(docID,
			fmt.Sprintf("failed to remove document %s: %v", docID, err))
	}

	return domain.SuccessOutcome(docID,
		fmt.Sprintf("removed document %s from index", docID))
}

// IsExcludedFromIndex reports whether content carries the exclusion
// property (name from settings) with value true. Missing property means
// never excluded.
func (u *IndexContentUsecase) IsExcludedFromIndex(content *domain.Content) bool {
	excluded, exists := content.BoolProperty(u.settings.ExclusionProperty())
	return exists && excluded
}

// ShouldIndex exposes the builder's eligibility predicate for callers that
// gate Index externally. It is not consulted by Index or the build run.
func (u *IndexContentUsecase) ShouldIndex(content *domain.Content) bool {
	return u.builder.ShouldIndex(content)
}

// CreateDocument runs the document-creation pipeline: URL resolution, then
// the per-type field population. A nil document with nil error means the
// entity is not indexable (no URL); a builder panic is converted into an
// error so nothing unwinds past the usecase.
func (u *IndexContentUsecase) CreateDocument(ctx context.Context, content *domain.Content) (doc *domain.SearchDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("document builder panicked: %v", r)
		}
	}()

	url, err := u.urlResolver.ResolveURL(ctx, content.ID())
	if err != nil {
		return nil, err
	}
	if url == "" || url == placeholderURL {
		return nil, nil
	}

	d := domain.NewSearchDocument(content, url)
	if err := u.builder.PopulateFields(content, &d); err != nil {
		return nil, err
	}

	return &d, nil
}
