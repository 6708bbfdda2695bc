package file

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"okcrisis-api/core/domain"
	"okcrisis-api/infrastructure/storage"
)

func newTestArchive(t *testing.T, limits storage.Limits) *Archive {
	t.Helper()
	archive, err := NewArchive(t.TempDir(), limits)
	if err != nil {
		t.Fatalf("NewArchive failed: %v", err)
	}
	return archive
}

func TestNewArchive_RejectsEmptyDir(t *testing.T) {
	if _, err := NewArchive("", storage.Limits{MaxArticles: 1, MaxComics: 1}); err == nil {
		t.Error("expected error for empty data directory")
	}
}

func TestNewArchive_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := NewArchive(dir, storage.Limits{MaxArticles: 1, MaxComics: 1}); err != nil {
		t.Fatalf("NewArchive failed for nested dir: %v", err)
	}
}

func TestAppendArticle_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	limits := storage.Limits{MaxArticles: 10, MaxComics: 10}
	ctx := context.Background()

	first, err := NewArchive(dir, limits)
	if err != nil {
		t.Fatalf("NewArchive failed: %v", err)
	}
	if err := first.AppendArticle(ctx, domain.Article{ID: "a", Title: "persisted"}); err != nil {
		t.Fatalf("AppendArticle failed: %v", err)
	}

	second, err := NewArchive(dir, limits)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	articles, err := second.LoadArticles(ctx)
	if err != nil {
		t.Fatalf("LoadArticles failed: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "persisted" {
		t.Errorf("unexpected reloaded articles: %+v", articles)
	}
}

func TestAppendArticle_RetentionBound(t *testing.T) {
	archive := newTestArchive(t, storage.Limits{MaxArticles: 3, MaxComics: 10})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := archive.AppendArticle(ctx, domain.Article{ID: fmt.Sprintf("a%d", i)}); err != nil {
			t.Fatalf("AppendArticle failed: %v", err)
		}
	}

	articles, _ := archive.LoadArticles(ctx)
	if len(articles) != 3 {
		t.Fatalf("expected 3 retained articles, got %d", len(articles))
	}
	if articles[0].ID != "a4" {
		t.Errorf("expected newest first, got %q", articles[0].ID)
	}
}

func TestAppendComic_RetentionBound(t *testing.T) {
	archive := newTestArchive(t, storage.Limits{MaxArticles: 10, MaxComics: 2})
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := archive.AppendComic(ctx, domain.Comic{ID: fmt.Sprintf("c%d", i)}); err != nil {
			t.Fatalf("AppendComic failed: %v", err)
		}
	}

	comics, _ := archive.LoadComics(ctx)
	if len(comics) != 2 {
		t.Fatalf("expected 2 retained comics, got %d", len(comics))
	}
	if comics[0].ID != "c3" {
		t.Errorf("expected newest first, got %q", comics[0].ID)
	}
}

func TestDeleteArticle(t *testing.T) {
	archive := newTestArchive(t, storage.Limits{MaxArticles: 10, MaxComics: 10})
	ctx := context.Background()

	archive.AppendArticle(ctx, domain.Article{ID: "keep"})
	archive.AppendArticle(ctx, domain.Article{ID: "remove"})

	deleted, err := archive.DeleteArticle(ctx, "remove")
	if err != nil {
		t.Fatalf("DeleteArticle failed: %v", err)
	}
	if !deleted {
		t.Error("expected deleted=true")
	}

	articles, _ := archive.LoadArticles(ctx)
	if len(articles) != 1 || articles[0].ID != "keep" {
		t.Errorf("unexpected remaining articles: %+v", articles)
	}

	deleted, _ = archive.DeleteArticle(ctx, "missing")
	if deleted {
		t.Error("expected deleted=false for unknown ID")
	}
}

func TestLoadArticles_EmptyArchive(t *testing.T) {
	archive := newTestArchive(t, storage.Limits{MaxArticles: 10, MaxComics: 10})

	articles, err := archive.LoadArticles(context.Background())
	if err != nil {
		t.Fatalf("LoadArticles failed: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("expected empty list, got %d", len(articles))
	}
}
