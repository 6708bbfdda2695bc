// ABOUTME: Satire service rewrites real stories into deadpan satirical articles
// ABOUTME: Headline extraction, fabricated bylines and editorial generation

package satire

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"okcrisis-api/core/domain"
	"okcrisis-api/core/interfaces"
	"okcrisis-api/pkg/ratelimit"
)

// editorialTitle is the fixed title for the daily editorial.
const editorialTitle = "Today's Editorial: A Moment of Reflection"

// editorialByline attributes every editorial the same way.
const editorialByline = "The Editorial Board"

// Config holds the transformer settings.
type Config struct {
	// Styles is the pool of satire styles drawn from when the caller
	// does not specify one
	Styles []string

	// Offline gates demo mode: templated articles with no backend calls
	Offline bool
}

// Service turns selected stories into generated articles.
type Service struct {
	deps    interfaces.Dependencies
	cfg     Config
	limiter *ratelimit.Limiter

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a transformer with its own call budget on the
// shared rate-limiting policy.
func NewService(cfg Config, deps interfaces.Dependencies, limiter *ratelimit.Limiter) *Service {
	if len(cfg.Styles) == 0 {
		cfg.Styles = []string{"deadpan"}
	}

	return &Service{
		deps:    deps,
		cfg:     cfg,
		limiter: limiter,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateArticle rewrites a story in the given style, optionally
// steered by an angle. Returns nil when generation fails; the caller
// skips the story without aborting its batch.
func (s *Service) GenerateArticle(ctx context.Context, story domain.RawStory, style, angle string) *domain.Article {
	if style == "" {
		style = s.pickStyle()
	}

	if s.cfg.Offline {
		return s.offlineArticle(story, style)
	}

	if s.deps.TextGen == nil || !s.deps.TextGen.Enabled() {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil
	}

	content, err := s.deps.TextGen.Complete(ctx, interfaces.CompletionRequest{
		Prompt:      articlePrompt(story, style, angle),
		MaxTokens:   2000,
		Temperature: 0.8,
	})
	if err != nil {
		s.logError("Error generating article content", story.Title, err)
		return nil
	}

	article := s.formatArticle(content, story, style)
	s.logInfo("Generated article", map[string]interface{}{
		"style": style,
		"title": article.Title,
	})
	return article
}

// GenerateEditorial summarizes the cycle's top stories into one op-ed.
// Returns nil on failure.
func (s *Service) GenerateEditorial(ctx context.Context, topStories []domain.RawStory) *domain.Article {
	if len(topStories) == 0 {
		return nil
	}

	if s.cfg.Offline {
		return s.offlineEditorial(topStories)
	}

	if s.deps.TextGen == nil || !s.deps.TextGen.Enabled() {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil
	}

	content, err := s.deps.TextGen.Complete(ctx, interfaces.CompletionRequest{
		Prompt:      editorialPrompt(topStories),
		MaxTokens:   2000,
		Temperature: 0.8,
	})
	if err != nil {
		s.logError("Error generating editorial", editorialTitle, err)
		return nil
	}

	editorial, err := domain.NewArticle(editorialTitle, editorialByline, content, "deadpan")
	if err != nil {
		return nil
	}
	editorial.Type = domain.ArticleTypeEditorial
	return editorial
}

// formatArticle splits the raw completion into headline and body and
// attaches the synthesized metadata.
func (s *Service) formatArticle(content string, story domain.RawStory, style string) *domain.Article {
	headline, body := splitHeadline(content)
	if headline == "" {
		// Fallback: synthesize from the original
		headline = "Breaking: " + story.Title
		body = strings.TrimSpace(content)
	}

	article, err := domain.NewArticle(headline, s.fabricateByline(), body, style)
	if err != nil {
		return nil
	}

	article.Category = story.Category
	article.OriginalTitle = story.Title
	article.OriginalSource = story.Source
	article.OriginalLink = story.Link
	article.PublishedAt = story.PublishedAt
	return article
}

// splitHeadline takes the first sufficiently long non-heading line as
// the headline and everything after as the body.
func splitHeadline(content string) (string, string) {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || len(line) <= 10 {
			continue
		}
		return line, strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
	}

	return "", ""
}

// pickStyle draws a random style from the configured pool.
func (s *Service) pickStyle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Styles[s.rng.Intn(len(s.cfg.Styles))]
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logError(msg, title string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
	}
}
