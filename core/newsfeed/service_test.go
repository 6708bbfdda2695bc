package newsfeed

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"okcrisis-api/core/domain"
	"okcrisis-api/core/interfaces"
)

func newTestService(cfg Config, client *mockHTTPClient) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://example.com/api/news"
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 5
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Minute
	}
	return NewService(cfg, interfaces.Dependencies{
		HTTPClient: client,
		Logger:     mockLogger{},
	})
}

func apiBody(titles ...string) string {
	var results []string
	for _, title := range titles {
		results = append(results, fmt.Sprintf(
			`{"title":%q,"description":"A sufficiently long description of the story.","content":"Full content.","source_id":"wire","pubDate":"2025-01-01","link":"https://example.com/s"}`,
			title))
	}
	return `{"status":"success","results":[` + strings.Join(results, ",") + `]}`
}

func TestFetchStories_DeduplicatesByNormalizedTitle(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			var body string
			switch {
			case strings.Contains(url, "category=world"):
				body = apiBody("Breaking News Story")
			case strings.Contains(url, "category=politics"):
				// Same title with different case and padding
				body = apiBody("  BREAKING NEWS STORY  ", "A Different Story")
			default:
				body = `{"status":"success","results":[]}`
			}
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	svc := newTestService(Config{
		APIKey:     "key",
		Categories: []string{"world", "politics"},
		MaxStories: 30,
	}, client)

	stories, errs := svc.FetchStories(context.Background())

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(stories) != 2 {
		t.Fatalf("expected 2 unique stories, got %d", len(stories))
	}
	// First occurrence wins, keeping the world-category version
	if stories[0].Category != "world" {
		t.Errorf("expected first occurrence from world, got %q", stories[0].Category)
	}
}

func TestFetchStories_TruncatesToMaxStories(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: apiBody(
				"First story title here", "Second story title here", "Third story title here",
			)}, nil
		},
	}
	svc := newTestService(Config{
		APIKey:     "key",
		Categories: []string{"world"},
		MaxStories: 2,
	}, client)

	stories, _ := svc.FetchStories(context.Background())

	if len(stories) != 2 {
		t.Errorf("expected truncation to 2 stories, got %d", len(stories))
	}
}

func TestFetchStories_CategoryFailureIsolated(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			if strings.Contains(url, "category=world") {
				return &mockResponse{statusCode: 500, body: "{}"}, nil
			}
			return &mockResponse{statusCode: 200, body: apiBody("Politics story title")}, nil
		},
	}
	svc := newTestService(Config{
		APIKey:     "key",
		Categories: []string{"world", "politics"},
		MaxStories: 30,
	}, client)

	stories, errs := svc.FetchStories(context.Background())

	if len(stories) != 1 {
		t.Errorf("expected politics story despite world failure, got %d stories", len(stories))
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 recorded error, got %d", len(errs))
	}
}

func TestFetchStories_NonSuccessStatusIsError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{"status":"error","results":[]}`}, nil
		},
	}
	svc := newTestService(Config{
		APIKey:     "key",
		Categories: []string{"world"},
		MaxStories: 30,
	}, client)

	stories, errs := svc.FetchStories(context.Background())

	if len(stories) != 0 {
		t.Errorf("expected no stories for error status, got %d", len(stories))
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 error, got %d", len(errs))
	}
}

func TestFetchStories_RSSFallbackWhenAPIUnconfigured(t *testing.T) {
	rss := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Example Feed</title>
<item><title>RSS story title here</title><description>A story description from the feed.</description><link>https://example.com/rss1</link></item>
</channel></rss>`

	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			if url == "https://example.com/feed.xml" {
				return &mockResponse{statusCode: 200, body: rss}, nil
			}
			t.Errorf("unexpected request to %s", url)
			return &mockResponse{statusCode: 404}, nil
		},
	}
	svc := newTestService(Config{
		Categories:  []string{"world"},
		MaxStories:  30,
		RSSFallback: map[string]string{"world": "https://example.com/feed.xml"},
	}, client)

	stories, errs := svc.FetchStories(context.Background())

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(stories) != 1 {
		t.Fatalf("expected 1 RSS story, got %d", len(stories))
	}
	if stories[0].Source != "Example Feed" {
		t.Errorf("expected feed title as source, got %q", stories[0].Source)
	}
}

func TestFetchStories_CachesCategoryResults(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: apiBody("Cached story title")}, nil
		},
	}
	svc := newTestService(Config{
		APIKey:     "key",
		Categories: []string{"world"},
		MaxStories: 30,
	}, client)

	svc.FetchStories(context.Background())
	svc.FetchStories(context.Background())

	if calls != 1 {
		t.Errorf("expected 1 upstream call with caching, got %d", calls)
	}
}

func TestValidate(t *testing.T) {
	svc := newTestService(Config{APIKey: "key"}, &mockHTTPClient{})

	tests := []struct {
		name  string
		story domain.RawStory
		want  bool
	}{
		{
			name:  "valid story",
			story: domain.RawStory{Title: "A long enough title", Description: "A description comfortably past twenty characters."},
			want:  true,
		},
		{
			name:  "title too short",
			story: domain.RawStory{Title: "Short", Description: "A description comfortably past twenty characters."},
			want:  false,
		},
		{
			name:  "description too short",
			story: domain.RawStory{Title: "A long enough title", Description: "Too short"},
			want:  false,
		},
		{
			name:  "missing title",
			story: domain.RawStory{Description: "A description comfortably past twenty characters."},
			want:  false,
		},
		{
			name:  "whitespace only title",
			story: domain.RawStory{Title: "             ", Description: "A description comfortably past twenty characters."},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Validate(tt.story); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDedupeByTitle_FirstOccurrenceWins(t *testing.T) {
	stories := []domain.RawStory{
		{Title: "Same Title", Source: "first"},
		{Title: "same title", Source: "second"},
		{Title: "Other Title", Source: "third"},
	}

	unique := dedupeByTitle(stories)

	if len(unique) != 2 {
		t.Fatalf("expected 2 unique stories, got %d", len(unique))
	}
	if unique[0].Source != "first" {
		t.Errorf("expected first occurrence kept, got %q", unique[0].Source)
	}
}
