package usecase

import (
	"context"
	"errors"
	"testing"

	"content-indexer/domain"
)

func newBuildUsecase(repo *mockContentRepo, engine *mockSearchEngine, resolver *mockURLResolver, builder *mockBuilder) *BuildIndexUsecase {
	settings, _ := domain.NewSearchSettings(map[string]string{domain.SettingBatchSize: "3"})
	indexer := NewIndexContentUsecase(resolver, engine, builder, settings, nil)
	return NewBuildIndexUsecase(repo, engine, indexer, settings, nil)
}

func TestBuildIndexUsecase_Execute(t *testing.T) {
	contents := []*domain.Content{
		newTestContent(t, 1, "Home", nil),
		newTestContent(t, 2, "About", nil),
		newTestContent(t, 3, "Hidden", map[string]any{"excludeFromSearch": true}),
		newTestContent(t, 4, "Contact", nil),
		newTestContent(t, 5, "Unrouted", nil),
	}
	repo := &mockContentRepo{pages: [][]*domain.Content{contents[:3], contents[3:]}}
	resolver := &mockURLResolver{urls: map[int64]string{
		1: "/",
		2: "/about",
		3: "/hidden",
		4: "/contact",
		// 5 has no URL and must be skipped.
	}}
	engine := &mockSearchEngine{}

	u := newBuildUsecase(repo, engine, resolver, &mockBuilder{})
	result, err := u.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.IndexedCount != 3 {
		t.Errorf("IndexedCount = %d, want 3", result.IndexedCount)
	}
	if result.RemovedCount != 1 {
		t.Errorf("RemovedCount = %d, want 1", result.RemovedCount)
	}
	if result.SkippedCount != 1 {
		t.Errorf("SkippedCount = %d, want 1", result.SkippedCount)
	}
	if result.Pages != 2 {
		t.Errorf("Pages = %d, want 2", result.Pages)
	}

	if engine.refreshCount != 1 {
		t.Errorf("refresh count = %d, want exactly 1 for the whole run", engine.refreshCount)
	}
	if len(engine.deleteCalls) != 1 {
		t.Fatalf("delete calls = %d, want 1", len(engine.deleteCalls))
	}
	if len(engine.deleteCalls[0]) != 1 || engine.deleteCalls[0][0] != "3" {
		t.Errorf("deleted ids = %v, want [3]", engine.deleteCalls[0])
	}
	for _, call := range engine.indexCalls {
		if len(call) == 0 {
			t.Error("bulk index was called with an empty batch")
		}
	}
}

func TestBuildIndexUsecase_EmptyContentSet(t *testing.T) {
	repo := &mockContentRepo{}
	engine := &mockSearchEngine{}

	u := newBuildUsecase(repo, engine, &mockURLResolver{}, &mockBuilder{})
	result, err := u.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.IndexedCount != 0 || result.RemovedCount != 0 || result.Pages != 0 {
		t.Errorf("unexpected result for empty set: %+v", result)
	}
	if len(engine.indexCalls) != 0 {
		t.Error("bulk index called for empty content set")
	}
	if len(engine.deleteCalls) != 0 {
		t.Error("bulk delete called for empty content set")
	}
	if engine.refreshCount != 1 {
		t.Errorf("refresh count = %d, want 1", engine.refreshCount)
	}
}

func TestBuildIndexUsecase_PageFailureStopsRun(t *testing.T) {
	repo := &mockContentRepo{pageErr: errors.New("db down")}
	engine := &mockSearchEngine{}

	u := newBuildUsecase(repo, engine, &mockURLResolver{}, &mockBuilder{})
	_, err := u.Execute(context.Background())
	if err == nil {
		t.Fatal("expected error from failing content source")
	}
	if engine.refreshCount != 0 {
		t.Error("refresh must not run after an aborted build")
	}
}

func TestBuildIndexUsecase_CreationFailureSkipsEntity(t *testing.T) {
	repo := &mockContentRepo{pages: [][]*domain.Content{{
		newTestContent(t, 1, "Home", nil),
		newTestContent(t, 2, "Broken", nil),
	}}}
	resolver := &mockURLResolver{urls: map[int64]string{1: "/", 2: "/broken"}}
	engine := &mockSearchEngine{}
	builder := &mockBuilder{panics: true}

	u := newBuildUsecase(repo, engine, resolver, builder)
	result, err := u.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.SkippedCount != 2 {
		t.Errorf("SkippedCount = %d, want 2", result.SkippedCount)
	}
	if len(engine.indexCalls) != 0 {
		t.Error("nothing should be indexed when every document fails to build")
	}
}

func TestBuildIndexUsecase_CancelledContext(t *testing.T) {
	repo := &mockContentRepo{pages: [][]*domain.Content{{newTestContent(t, 1, "Home", nil)}}}
	engine := &mockSearchEngine{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	u := newBuildUsecase(repo, engine, &mockURLResolver{}, &mockBuilder{})
	_, err := u.Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
