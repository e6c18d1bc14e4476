package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"content-indexer/domain"
	"content-indexer/driver"
	"content-indexer/port"
)

type mockContentDriver struct {
	records     []*driver.ContentRecord
	err         error
	statusCalls []string
}

func (m *mockContentDriver) GetContentPage(ctx context.Context, lastID int64, limit int) ([]*driver.ContentRecord, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var next int64 = lastID
	if len(m.records) > 0 {
		next = m.records[len(m.records)-1].ID
	}
	return m.records, next, nil
}

func (m *mockContentDriver) GetContentByID(ctx context.Context, id int64) (*driver.ContentRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockContentDriver) SaveIndexingStatus(ctx context.Context, contentID int64, status, message string) error {
	if m.err != nil {
		return m.err
	}
	m.statusCalls = append(m.statusCalls, status)
	return nil
}

func TestContentRepositoryGateway_GetContentPage(t *testing.T) {
	d := &mockContentDriver{records: []*driver.ContentRecord{
		{ID: 1, Name: "Home", ContentType: "page", Published: true, UpdatedAt: time.Now()},
		{ID: 2, Name: "About", ContentType: "page", Published: true, UpdatedAt: time.Now()},
	}}
	g := NewContentRepositoryGateway(d)

	contents, next, err := g.GetContentPage(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("GetContentPage: %v", err)
	}
	if len(contents) != 2 {
		t.Fatalf("len(contents) = %d, want 2", len(contents))
	}
	if contents[0].ID() != 1 || contents[0].Name() != "Home" {
		t.Errorf("unexpected first content: id=%d name=%q", contents[0].ID(), contents[0].Name())
	}
	if next != 2 {
		t.Errorf("next cursor = %d, want 2", next)
	}
}

func TestContentRepositoryGateway_InvalidRecordFailsConversion(t *testing.T) {
	d := &mockContentDriver{records: []*driver.ContentRecord{
		{ID: 1, Name: "", ContentType: "page"},
	}}
	g := NewContentRepositoryGateway(d)

	_, _, err := g.GetContentPage(context.Background(), 0, 10)
	var repoErr *port.RepositoryError
	if !errors.As(err, &repoErr) {
		t.Fatalf("err = %T, want *port.RepositoryError", err)
	}
}

func TestContentRepositoryGateway_WrapsDriverErrors(t *testing.T) {
	d := &mockContentDriver{err: errors.New("connection refused")}
	g := NewContentRepositoryGateway(d)

	_, err := g.GetContentByID(context.Background(), 1)
	var repoErr *port.RepositoryError
	if !errors.As(err, &repoErr) {
		t.Fatalf("err = %T, want *port.RepositoryError", err)
	}
	if repoErr.Op != "GetContentByID" {
		t.Errorf("Op = %q, want GetContentByID", repoErr.Op)
	}
}

func TestContentRepositoryGateway_SaveIndexingStatus(t *testing.T) {
	d := &mockContentDriver{}
	g := NewContentRepositoryGateway(d)

	outcome := domain.SuccessOutcome("1", "indexed")
	if err := g.SaveIndexingStatus(context.Background(), 1, outcome); err != nil {
		t.Fatalf("SaveIndexingStatus: %v", err)
	}
	if len(d.statusCalls) != 1 || d.statusCalls[0] != "success" {
		t.Errorf("status calls = %v, want [success]", d.statusCalls)
	}
}

func TestSettingsGateway_LoadSearchSettings(t *testing.T) {
	g := NewSettingsGateway(settingsDriverFunc(func(ctx context.Context) (map[string]string, error) {
		return map[string]string{domain.SettingBatchSize: "25"}, nil
	}), nil)

	settings, err := g.LoadSearchSettings(context.Background())
	if err != nil {
		t.Fatalf("LoadSearchSettings: %v", err)
	}
	if settings.BatchSize() != 25 {
		t.Errorf("BatchSize = %d, want 25", settings.BatchSize())
	}
}

func TestSettingsGateway_BaseOverridesApplyWithoutRows(t *testing.T) {
	g := NewSettingsGateway(settingsDriverFunc(func(ctx context.Context) (map[string]string, error) {
		return map[string]string{}, nil
	}), map[string]string{domain.SettingBatchSize: "250"})

	settings, err := g.LoadSearchSettings(context.Background())
	if err != nil {
		t.Fatalf("LoadSearchSettings: %v", err)
	}
	if settings.BatchSize() != 250 {
		t.Errorf("BatchSize = %d, want base override 250", settings.BatchSize())
	}
}

func TestSettingsGateway_RowsWinOverBaseOverrides(t *testing.T) {
	g := NewSettingsGateway(settingsDriverFunc(func(ctx context.Context) (map[string]string, error) {
		return map[string]string{domain.SettingBatchSize: "25"}, nil
	}), map[string]string{domain.SettingBatchSize: "250"})

	settings, err := g.LoadSearchSettings(context.Background())
	if err != nil {
		t.Fatalf("LoadSearchSettings: %v", err)
	}
	if settings.BatchSize() != 25 {
		t.Errorf("BatchSize = %d, want stored setting 25 to win", settings.BatchSize())
	}
}

func TestSettingsGateway_InvalidSettingsAreAnError(t *testing.T) {
	g := NewSettingsGateway(settingsDriverFunc(func(ctx context.Context) (map[string]string, error) {
		return map[string]string{domain.SettingBatchSize: "zero"}, nil
	}), nil)

	_, err := g.LoadSearchSettings(context.Background())
	var repoErr *port.RepositoryError
	if !errors.As(err, &repoErr) {
		t.Fatalf("err = %T, want *port.RepositoryError", err)
	}
}

type settingsDriverFunc func(ctx context.Context) (map[string]string, error)

func (f settingsDriverFunc) GetSettings(ctx context.Context) (map[string]string, error) {
	return f(ctx)
}

func TestURLResolverGateway_WrapsErrors(t *testing.T) {
	g := NewURLResolverGateway(urlDriverFunc(func(ctx context.Context, contentID int64) (string, error) {
		return "", errors.New("timeout")
	}))

	_, err := g.ResolveURL(context.Background(), 7)
	var urlErr *domain.URLResolutionError
	if !errors.As(err, &urlErr) {
		t.Fatalf("err = %T, want *domain.URLResolutionError", err)
	}
}

type urlDriverFunc func(ctx context.Context, contentID int64) (string, error)

func (f urlDriverFunc) ResolveURL(ctx context.Context, contentID int64) (string, error) {
	return f(ctx, contentID)
}
