package usecase

import (
	"context"

	"content-indexer/domain"
	"content-indexer/port"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchContentUsecase exposes the typed query helpers. Each method pairs a
// parameter type with the result envelope; all query construction is
// delegated to the engine.
type SearchContentUsecase struct {
	searchEngine port.SearchEngine
}

func NewSearchContentUsecase(searchEngine port.SearchEngine) *SearchContentUsecase {
	return &SearchContentUsecase{searchEngine: searchEngine}
}

func (u *SearchContentUsecase) Search(ctx context.Context, params domain.ContentQuery) (*domain.SearchResult[domain.ContentQuery], error) {
	params.Limit = clampLimit(params.Limit)

	hits, total, took, err := u.searchEngine.Search(ctx, params.Query, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	return &domain.SearchResult[domain.ContentQuery]{
		Params:         params,
		Hits:           hits,
		EstimatedTotal: total,
		ProcessingTime: took,
	}, nil
}

func (u *SearchContentUsecase) SearchInSection(ctx context.Context, params domain.SectionQuery) (*domain.SearchResult[domain.SectionQuery], error) {
	if err := domain.ValidateSection(params.Section); err != nil {
		return nil, err
	}
	params.Limit = clampLimit(params.Limit)

	hits, total, took, err := u.searchEngine.SearchInSection(ctx, params.Query, params.Section, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	return &domain.SearchResult[domain.SectionQuery]{
		Params:         params,
		Hits:           hits,
		EstimatedTotal: total,
		ProcessingTime: took,
	}, nil
}

func clampLimit(limit int64) int64 {
	if limit <= 0 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}
