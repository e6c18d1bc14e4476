package usecase

import (
	"context"
	"log/slog"

	"content-indexer/domain"
	"content-indexer/port"
)

// EnsureMappingUsecase registers the document type's mapping with the
// index. Idempotent: when the current mapping already covers the schema
// derived from the field annotations, nothing is registered.
type EnsureMappingUsecase struct {
	searchEngine port.SearchEngine
	builder      domain.DocumentBuilder
	logger       *slog.Logger
}

func NewEnsureMappingUsecase(searchEngine port.SearchEngine, builder domain.DocumentBuilder, logger *slog.Logger) *EnsureMappingUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnsureMappingUsecase{
		searchEngine: searchEngine,
		builder:      builder,
		logger:       logger,
	}
}

// Execute reports whether a registration happened.
func (u *EnsureMappingUsecase) Execute(ctx context.Context) (bool, error) {
	desired := u.builder.Schema()
	if desired.IsEmpty() {
		return false, nil
	}

	current, err := u.searchEngine.CurrentSchema(ctx)
	if err != nil {
		return false, err
	}

	if current.Contains(desired) {
		u.logger.Info("index mapping already registered")
		return false, nil
	}

	if err := u.searchEngine.RegisterSchema(ctx, desired); err != nil {
		return false, err
	}

	u.logger.Info("index mapping registered",
		"searchable", desired.Searchable,
		"filterable", desired.Filterable,
		"sortable", desired.Sortable,
	)
	return true, nil
}
