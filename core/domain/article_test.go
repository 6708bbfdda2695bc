package domain

import (
	"testing"
)

func TestNewArticle(t *testing.T) {
	article, err := NewArticle("Local Man Forms Committee", "Skip McGee, Senior Correspondent", "A committee was formed today. It met.", "deadpan")
	if err != nil {
		t.Fatalf("NewArticle failed: %v", err)
	}

	if article.ID == "" {
		t.Error("expected a generated ID")
	}
	if article.Type != ArticleTypeStandard {
		t.Errorf("expected type %q, got %q", ArticleTypeStandard, article.Type)
	}
	if article.WordCount != 7 {
		t.Errorf("expected word count 7, got %d", article.WordCount)
	}
	if article.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestNewArticle_EmptyTitle(t *testing.T) {
	if _, err := NewArticle("", "byline", "content", "deadpan"); err == nil {
		t.Error("expected error for empty title")
	}
}

func TestNewArticle_UniqueIDs(t *testing.T) {
	a, err := NewArticle("Title One", "", "", "")
	if err != nil {
		t.Fatalf("NewArticle failed: %v", err)
	}
	b, err := NewArticle("Title One", "", "", "")
	if err != nil {
		t.Fatalf("NewArticle failed: %v", err)
	}
	if a.ID == b.ID {
		t.Error("expected distinct IDs for separate articles")
	}
}

func TestArticle_AttachImage(t *testing.T) {
	article, err := NewArticle("Title", "", "content", "deadpan")
	if err != nil {
		t.Fatalf("NewArticle failed: %v", err)
	}

	article.AttachImage("/data/images/title_1234.jpg", "#e74c3c")

	if article.ImagePath != "/data/images/title_1234.jpg" {
		t.Errorf("unexpected image path %q", article.ImagePath)
	}
	if article.AccentColor != "#e74c3c" {
		t.Errorf("unexpected accent color %q", article.AccentColor)
	}
}

func TestNewArticle_WordCountIgnoresWhitespace(t *testing.T) {
	article, err := NewArticle("Title", "", "  one   two\n\nthree  ", "deadpan")
	if err != nil {
		t.Fatalf("NewArticle failed: %v", err)
	}
	if article.WordCount != 3 {
		t.Errorf("expected word count 3, got %d", article.WordCount)
	}
}
