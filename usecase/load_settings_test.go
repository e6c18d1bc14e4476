package usecase

import (
	"context"
	"errors"
	"testing"

	"content-indexer/domain"
)

type mockSettingsRepo struct {
	settings *domain.SearchSettings
	err      error
}

func (m *mockSettingsRepo) LoadSearchSettings(ctx context.Context) (*domain.SearchSettings, error) {
	return m.settings, m.err
}

func TestLoadSettingsUsecase_Execute(t *testing.T) {
	custom, err := domain.NewSearchSettings(map[string]string{
		domain.SettingBatchSize: "50",
		domain.SettingIndexName: "pages",
	})
	if err != nil {
		t.Fatalf("NewSearchSettings: %v", err)
	}

	u := NewLoadSettingsUsecase(&mockSettingsRepo{settings: custom}, nil)
	settings := u.Execute(context.Background())

	if settings.BatchSize() != 50 {
		t.Errorf("BatchSize = %d, want 50", settings.BatchSize())
	}
	if settings.IndexName() != "pages" {
		t.Errorf("IndexName = %q, want %q", settings.IndexName(), "pages")
	}
}

func TestLoadSettingsUsecase_FallsBackToDefaults(t *testing.T) {
	u := NewLoadSettingsUsecase(&mockSettingsRepo{err: errors.New("db down")}, nil)
	settings := u.Execute(context.Background())

	if settings == nil {
		t.Fatal("settings must never be nil")
	}
	if settings.BatchSize() != 500 {
		t.Errorf("BatchSize = %d, want default 500", settings.BatchSize())
	}
	if settings.ExclusionProperty() != "excludeFromSearch" {
		t.Errorf("ExclusionProperty = %q, want default", settings.ExclusionProperty())
	}
	if settings.IndexName() != "contents" {
		t.Errorf("IndexName = %q, want default", settings.IndexName())
	}
}
