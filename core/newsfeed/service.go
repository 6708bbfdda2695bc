// ABOUTME: Feed service fetches raw news stories from the external feed API
// ABOUTME: Per-category isolation, title deduplication and a basic quality gate

package newsfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
	gocache "github.com/patrickmn/go-cache"

	"okcrisis-api/core/domain"
	coreerrors "okcrisis-api/core/errors"
	"okcrisis-api/core/interfaces"
	htmlutil "okcrisis-api/pkg/utils/html"
)

// paidPlanSentinel is what the feed API returns instead of the story
// body on free plans.
const paidPlanSentinel = "ONLY AVAILABLE IN PAID PLANS"

// Config holds the feed client settings.
type Config struct {
	// APIKey authenticates against the feed API; empty disables the
	// JSON API (RSS fallbacks may still serve categories)
	APIKey string

	// BaseURL is the feed API endpoint
	BaseURL string

	// Categories are queried independently each fetch
	Categories []string

	// PageSize is the per-category story count requested
	PageSize int

	// MaxStories caps the combined result across categories
	MaxStories int

	// CacheTTL is how long a category's successful response is reused
	CacheTTL time.Duration

	// RSSFallback maps a category to an RSS feed URL tried when the
	// JSON API fails or is unconfigured
	RSSFallback map[string]string
}

// Service fetches, deduplicates and validates raw news stories.
type Service struct {
	deps   interfaces.Dependencies
	cfg    Config
	cache  *gocache.Cache
	parser *gofeed.Parser
}

// NewService creates a feed service. A missing API key without any RSS
// fallback leaves the service effectively disabled; that is logged once
// here and every fetch returns zero stories.
func NewService(cfg Config, deps interfaces.Dependencies) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 5
	}

	if cfg.APIKey == "" && len(cfg.RSSFallback) == 0 && deps.Logger != nil {
		deps.Logger.Warn("Feed API key not configured and no RSS fallbacks set, fetch disabled", nil)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &Service{
		deps:   deps,
		cfg:    cfg,
		cache:  gocache.New(ttl, 2*ttl),
		parser: gofeed.NewParser(),
	}
}

// FetchStories queries every configured category, deduplicates the
// combined result by normalized title (first occurrence wins) and
// truncates to the global maximum.
//
// One category's failure never blocks the others; failures come back in
// the error slice so the caller can report them without treating the
// whole fetch as failed.
func (s *Service) FetchStories(ctx context.Context) ([]domain.RawStory, []error) {
	var stories []domain.RawStory
	var errs []error

	for _, category := range s.cfg.Categories {
		fetched, err := s.fetchCategory(ctx, category)
		if err != nil {
			s.logError("Failed to fetch category", category, err)
			errs = append(errs, coreerrors.WrapError(err, fmt.Sprintf("category %s", category)))
			continue
		}

		s.logInfo("Fetched category stories", map[string]interface{}{
			"category": category,
			"count":    len(fetched),
		})
		stories = append(stories, fetched...)
	}

	stories = dedupeByTitle(stories)
	if s.cfg.MaxStories > 0 && len(stories) > s.cfg.MaxStories {
		stories = stories[:s.cfg.MaxStories]
	}

	s.logInfo("Total unique stories fetched", map[string]interface{}{
		"count": len(stories),
	})
	return stories, errs
}

// Validate applies the basic quality gate: a story needs a title of at
// least 10 characters and a description of at least 20.
func (s *Service) Validate(story domain.RawStory) bool {
	if strings.TrimSpace(story.Title) == "" || strings.TrimSpace(story.Description) == "" {
		s.logWarn("Story missing required field", story.Title)
		return false
	}

	if len(story.Title) < 10 || len(story.Description) < 20 {
		s.logWarn("Story too short", story.Title)
		return false
	}

	return true
}

// fetchCategory gets one category's stories, preferring the JSON API
// with an RSS fallback. Successful results are cached for the TTL.
func (s *Service) fetchCategory(ctx context.Context, category string) ([]domain.RawStory, error) {
	if cached, ok := s.cache.Get(cacheKey(category)); ok {
		return cached.([]domain.RawStory), nil
	}

	var stories []domain.RawStory
	var err error

	if s.cfg.APIKey != "" {
		stories, err = s.fetchFromAPI(ctx, category)
	} else {
		err = &coreerrors.NotConfiguredError{Component: "feed API", Missing: "API key"}
	}

	if err != nil {
		if rssURL, ok := s.cfg.RSSFallback[category]; ok {
			s.logInfo("Falling back to RSS feed", map[string]interface{}{
				"category": category,
				"url":      rssURL,
			})
			stories, err = s.fetchFromRSS(ctx, category, rssURL)
		}
	}

	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey(category), stories, gocache.DefaultExpiration)
	return stories, nil
}

// apiStory mirrors the feed API's story object.
type apiStory struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	SourceID    string   `json:"source_id"`
	PubDate     string   `json:"pubDate"`
	Link        string   `json:"link"`
	ImageURL    string   `json:"image_url"`
	Keywords    []string `json:"keywords"`
}

// apiResponse mirrors the feed API's envelope.
type apiResponse struct {
	Status  string     `json:"status"`
	Results []apiStory `json:"results"`
}

// fetchFromAPI issues one JSON API request for a category.
func (s *Service) fetchFromAPI(ctx context.Context, category string) ([]domain.RawStory, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	endpoint, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed API URL: %w", err)
	}

	query := endpoint.Query()
	query.Set("apikey", s.cfg.APIKey)
	query.Set("language", "en")
	query.Set("category", category)
	query.Set("size", strconv.Itoa(s.cfg.PageSize))
	endpoint.RawQuery = query.Encode()

	resp, err := s.deps.HTTPClient.Get(ctx, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "newsfeed",
			StatusCode: resp.StatusCode(),
			Message:    "non-200 response",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &coreerrors.ParseError{What: "feed response", Message: err.Error()}
	}

	if parsed.Status != "success" {
		return nil, &coreerrors.ExternalAPIError{
			API:        "newsfeed",
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("status %q", parsed.Status),
		}
	}

	now := time.Now()
	stories := make([]domain.RawStory, 0, len(parsed.Results))
	for _, raw := range parsed.Results {
		story := domain.RawStory{
			Title:       raw.Title,
			Description: raw.Description,
			Content:     raw.Content,
			Source:      raw.SourceID,
			Category:    category,
			PublishedAt: raw.PubDate,
			Link:        raw.Link,
			ImageURL:    raw.ImageURL,
			Keywords:    raw.Keywords,
			FetchedAt:   now,
		}
		stories = append(stories, s.recoverContent(ctx, story))
	}

	return stories, nil
}

// fetchFromRSS fetches and parses an RSS/Atom feed for a category.
func (s *Service) fetchFromRSS(ctx context.Context, category, feedURL string) ([]domain.RawStory, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "rss",
			StatusCode: resp.StatusCode(),
			Message:    "non-200 response",
		}
	}

	feed, err := s.parser.Parse(resp.Body())
	if err != nil {
		return nil, &coreerrors.ParseError{What: "rss feed", Message: err.Error()}
	}

	now := time.Now()
	limit := s.cfg.PageSize
	stories := make([]domain.RawStory, 0, limit)
	for _, item := range feed.Items {
		if len(stories) == limit {
			break
		}

		story := domain.RawStory{
			Title:       item.Title,
			Description: htmlutil.StripHTML(item.Description),
			Content:     htmlutil.StripHTML(item.Content),
			Source:      feed.Title,
			Category:    category,
			PublishedAt: item.Published,
			Link:        item.Link,
			FetchedAt:   now,
		}
		if item.Image != nil {
			story.ImageURL = item.Image.URL
		}
		stories = append(stories, story)
	}

	return stories, nil
}

// recoverContent re-extracts the full story text from the article page
// when the feed returned only the paid-plan placeholder. Best effort:
// on any failure the description stands in for the content.
func (s *Service) recoverContent(ctx context.Context, story domain.RawStory) domain.RawStory {
	truncated := story.Content == "" ||
		strings.Contains(strings.ToUpper(story.Content), paidPlanSentinel)
	if !truncated {
		return story
	}

	story.Content = story.Description
	if story.Link == "" {
		return story
	}

	resp, err := s.deps.HTTPClient.Get(ctx, story.Link, nil)
	if err != nil {
		return story
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return story
	}

	pageURL, err := url.Parse(story.Link)
	if err != nil {
		return story
	}

	extracted, err := readability.FromReader(resp.Body(), pageURL)
	if err != nil {
		s.logWarn("Failed to extract story text", story.Title)
		return story
	}

	if text := strings.TrimSpace(extracted.TextContent); text != "" {
		story.Content = text
	}
	return story
}

// dedupeByTitle drops stories whose normalized title was already seen,
// preserving first-seen order.
func dedupeByTitle(stories []domain.RawStory) []domain.RawStory {
	seen := make(map[string]struct{}, len(stories))
	unique := make([]domain.RawStory, 0, len(stories))

	for _, story := range stories {
		title := story.NormalizedTitle()
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		unique = append(unique, story)
	}

	return unique
}

func cacheKey(category string) string {
	return "feed:" + category
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg, title string) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, map[string]interface{}{"title": title})
	}
}

func (s *Service) logError(msg, category string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, map[string]interface{}{
			"category": category,
			"error":    err.Error(),
		})
	}
}
