package gateway

import (
	"context"
	"time"

	"content-indexer/domain"
	"content-indexer/driver"
)

// SearchDriver is the engine driver surface consumed by the gateway.
type SearchDriver interface {
	IndexDocuments(ctx context.Context, docs []driver.SearchDocumentRecord) error
	DeleteDocuments(ctx context.Context, ids []string) error
	DocumentExists(ctx context.Context, id string) (bool, error)
	CountDocuments(ctx context.Context) (int64, error)
	GetSchema(ctx context.Context) (searchable, filterable, sortable []string, err error)
	UpdateSchema(ctx context.Context, searchable, filterable, sortable []string) error
	Refresh(ctx context.Context) error
	EnsureIndex(ctx context.Context, indexName string) error
	Search(ctx context.Context, query string, limit, offset int64) ([]driver.SearchDocumentRecord, int64, time.Duration, error)
	SearchInSection(ctx context.Context, query, section string, limit, offset int64) ([]driver.SearchDocumentRecord, int64, time.Duration, error)
}

// SearchEngineGateway adapts the engine driver to the domain-facing
// SearchEngine port, converting documents and wrapping errors.
type SearchEngineGateway struct {
	driver    SearchDriver
	indexName string
}

func NewSearchEngineGateway(driver SearchDriver, indexName string) *SearchEngineGateway {
	return &SearchEngineGateway{
		driver:    driver,
		indexName: indexName,
	}
}

func (g *SearchEngineGateway) IndexDocuments(ctx context.Context, docs []domain.SearchDocument) error {
	if len(docs) == 0 {
		return nil
	}

	records := make([]driver.SearchDocumentRecord, len(docs))
	for i, doc := range docs {
		records[i] = driver.SearchDocumentRecord{
			ID:     doc.ID,
			URL:    doc.URL,
			Fields: doc.Fields,
		}
	}

	if err := g.driver.IndexDocuments(ctx, records); err != nil {
		return &domain.SearchEngineError{
			Op:  "IndexDocuments",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *SearchEngineGateway) DeleteDocuments(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if err := g.driver.DeleteDocuments(ctx, ids); err != nil {
		return &domain.SearchEngineError{
			Op:  "DeleteDocuments",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *SearchEngineGateway) DocumentExists(ctx context.Context, id string) (bool, error) {
	exists, err := g.driver.DocumentExists(ctx, id)
	if err != nil {
		return false, &domain.SearchEngineError{
			Op:  "DocumentExists",
			Err: err.Error(),
		}
	}
	return exists, nil
}

func (g *SearchEngineGateway) CountDocuments(ctx context.Context) (int64, error) {
	count, err := g.driver.CountDocuments(ctx)
	if err != nil {
		return 0, &domain.SearchEngineError{
			Op:  "CountDocuments",
			Err: err.Error(),
		}
	}
	return count, nil
}

func (g *SearchEngineGateway) CurrentSchema(ctx context.Context) (domain.IndexSchema, error) {
	searchable, filterable, sortable, err := g.driver.GetSchema(ctx)
	if err != nil {
		return domain.IndexSchema{}, &domain.SearchEngineError{
			Op:  "CurrentSchema",
			Err: err.Error(),
		}
	}
	return domain.IndexSchema{
		Searchable: searchable,
		Filterable: filterable,
		Sortable:   sortable,
	}, nil
}

func (g *SearchEngineGateway) RegisterSchema(ctx context.Context, schema domain.IndexSchema) error {
	if err := g.driver.UpdateSchema(ctx, schema.Searchable, schema.Filterable, schema.Sortable); err != nil {
		return &domain.SearchEngineError{
			Op:  "RegisterSchema",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *SearchEngineGateway) Refresh(ctx context.Context) error {
	if err := g.driver.Refresh(ctx); err != nil {
		return &domain.SearchEngineError{
			Op:  "Refresh",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *SearchEngineGateway) EnsureIndex(ctx context.Context) error {
	if err := g.driver.EnsureIndex(ctx, g.indexName); err != nil {
		return &domain.SearchEngineError{
			Op:  "EnsureIndex",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *SearchEngineGateway) Search(ctx context.Context, query string, limit, offset int64) ([]domain.SearchDocument, int64, time.Duration, error) {
	records, total, took, err := g.driver.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, 0, &domain.SearchEngineError{
			Op:  "Search",
			Err: err.Error(),
		}
	}
	return g.convertDocs(records), total, took, nil
}

func (g *SearchEngineGateway) SearchInSection(ctx context.Context, query, section string, limit, offset int64) ([]domain.SearchDocument, int64, time.Duration, error) {
	records, total, took, err := g.driver.SearchInSection(ctx, query, section, limit, offset)
	if err != nil {
		return nil, 0, 0, &domain.SearchEngineError{
			Op:  "SearchInSection",
			Err: err.Error(),
		}
	}
	return g.convertDocs(records), total, took, nil
}

func (g *SearchEngineGateway) convertDocs(records []driver.SearchDocumentRecord) []domain.SearchDocument {
	docs := make([]domain.SearchDocument, len(records))
	for i, r := range records {
		docs[i] = domain.SearchDocument{
			ID:     r.ID,
			URL:    r.URL,
			Fields: r.Fields,
		}
	}
	return docs
}
