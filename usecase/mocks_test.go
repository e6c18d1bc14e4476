package usecase

import (
	"context"
	"testing"
	"time"

	"content-indexer/domain"
)

// Shared mock implementations for the usecase tests.

type mockURLResolver struct {
	urls map[int64]string
	err  error
}

func (m *mockURLResolver) ResolveURL(ctx context.Context, contentID int64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.urls[contentID], nil
}

type mockSearchEngine struct {
	indexCalls  [][]domain.SearchDocument
	deleteCalls [][]string
	existing    map[string]bool
	schema      domain.IndexSchema

	refreshCount  int
	registerCount int

	indexErr    error
	deleteErr   error
	existsErr   error
	countErr    error
	schemaErr   error
	registerErr error
	searchErr   error

	count      int64
	searchHits []domain.SearchDocument
}

func (m *mockSearchEngine) IndexDocuments(ctx context.Context, docs []domain.SearchDocument) error {
	if m.indexErr != nil {
		return m.indexErr
	}
	m.indexCalls = append(m.indexCalls, docs)
	return nil
}

func (m *mockSearchEngine) DeleteDocuments(ctx context.Context, ids []string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleteCalls = append(m.deleteCalls, ids)
	return nil
}

func (m *mockSearchEngine) DocumentExists(ctx context.Context, id string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existing[id], nil
}

func (m *mockSearchEngine) CountDocuments(ctx context.Context) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockSearchEngine) CurrentSchema(ctx context.Context) (domain.IndexSchema, error) {
	if m.schemaErr != nil {
		return domain.IndexSchema{}, m.schemaErr
	}
	return m.schema, nil
}

func (m *mockSearchEngine) RegisterSchema(ctx context.Context, schema domain.IndexSchema) error {
	if m.registerErr != nil {
		return m.registerErr
	}
	m.registerCount++
	m.schema = schema
	return nil
}

func (m *mockSearchEngine) Refresh(ctx context.Context) error {
	m.refreshCount++
	return nil
}

func (m *mockSearchEngine) EnsureIndex(ctx context.Context) error {
	return nil
}

func (m *mockSearchEngine) Search(ctx context.Context, query string, limit, offset int64) ([]domain.SearchDocument, int64, time.Duration, error) {
	if m.searchErr != nil {
		return nil, 0, 0, m.searchErr
	}
	return m.searchHits, int64(len(m.searchHits)), time.Millisecond, nil
}

func (m *mockSearchEngine) SearchInSection(ctx context.Context, query, section string, limit, offset int64) ([]domain.SearchDocument, int64, time.Duration, error) {
	if m.searchErr != nil {
		return nil, 0, 0, m.searchErr
	}
	return m.searchHits, int64(len(m.searchHits)), time.Millisecond, nil
}

type mockBuilder struct {
	populateErr error
	panics      bool
	eligible    bool
	schema      domain.IndexSchema
}

func (m *mockBuilder) PopulateFields(content *domain.Content, doc *domain.SearchDocument) error {
	if m.panics {
		panic("builder exploded")
	}
	if m.populateErr != nil {
		return m.populateErr
	}
	doc.SetField("title", content.Name())
	return nil
}

func (m *mockBuilder) ShouldIndex(content *domain.Content) bool {
	return m.eligible
}

func (m *mockBuilder) Schema() domain.IndexSchema {
	return m.schema
}

type mockContentRepo struct {
	pages        [][]*domain.Content
	pageCursor   int
	pageErr      error
	statusSaves  []domain.IndexOutcome
	statusErr    error
	byID         map[int64]*domain.Content
	getContentID error
}

func (m *mockContentRepo) GetContentPage(ctx context.Context, lastID int64, limit int) ([]*domain.Content, int64, error) {
	if m.pageErr != nil {
		return nil, 0, m.pageErr
	}
	if m.pageCursor >= len(m.pages) {
		return nil, lastID, nil
	}
	page := m.pages[m.pageCursor]
	m.pageCursor++
	var next int64 = lastID
	if len(page) > 0 {
		next = page[len(page)-1].ID()
	}
	return page, next, nil
}

func (m *mockContentRepo) GetContentByID(ctx context.Context, id int64) (*domain.Content, error) {
	if m.getContentID != nil {
		return nil, m.getContentID
	}
	c, ok := m.byID[id]
	if !ok {
		return nil, &mockNotFoundError{}
	}
	return c, nil
}

func (m *mockContentRepo) SaveIndexingStatus(ctx context.Context, contentID int64, outcome domain.IndexOutcome) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.statusSaves = append(m.statusSaves, outcome)
	return nil
}

type mockNotFoundError struct{}

func (e *mockNotFoundError) Error() string { return "not found" }

func newTestContent(t *testing.T, id int64, name string, props map[string]any) *domain.Content {
	t.Helper()
	content, err := domain.NewContent(id, name, "page", props, true, time.Now())
	if err != nil {
		t.Fatalf("NewContent: %v", err)
	}
	return content
}
