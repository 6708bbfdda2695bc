package cycle

import (
	"context"

	"okcrisis-api/core/domain"
)

// mockFetcher is a mock implementation of the StoryFetcher interface
type mockFetcher struct {
	fetchFunc    func(ctx context.Context) ([]domain.RawStory, []error)
	validateFunc func(story domain.RawStory) bool
}

func (m *mockFetcher) FetchStories(ctx context.Context) ([]domain.RawStory, []error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil, nil
}

func (m *mockFetcher) Validate(story domain.RawStory) bool {
	if m.validateFunc != nil {
		return m.validateFunc(story)
	}
	return true
}

// mockScorer is a mock implementation of the StoryScorer interface
type mockScorer struct {
	evaluateFunc func(ctx context.Context, stories []domain.RawStory) []domain.ScoredCandidate
	anglesFunc   func(ctx context.Context, story domain.RawStory) []string
}

func (m *mockScorer) EvaluateStories(ctx context.Context, stories []domain.RawStory) []domain.ScoredCandidate {
	if m.evaluateFunc != nil {
		return m.evaluateFunc(ctx, stories)
	}
	return nil
}

func (m *mockScorer) SuggestAngles(ctx context.Context, story domain.RawStory) []string {
	if m.anglesFunc != nil {
		return m.anglesFunc(ctx, story)
	}
	return nil
}

// mockWriter is a mock implementation of the ArticleWriter interface
type mockWriter struct {
	articleFunc   func(ctx context.Context, story domain.RawStory, style, angle string) *domain.Article
	editorialFunc func(ctx context.Context, topStories []domain.RawStory) *domain.Article
}

func (m *mockWriter) GenerateArticle(ctx context.Context, story domain.RawStory, style, angle string) *domain.Article {
	if m.articleFunc != nil {
		return m.articleFunc(ctx, story, style, angle)
	}
	return nil
}

func (m *mockWriter) GenerateEditorial(ctx context.Context, topStories []domain.RawStory) *domain.Article {
	if m.editorialFunc != nil {
		return m.editorialFunc(ctx, topStories)
	}
	return nil
}

// mockCartoonist is a mock implementation of the DialogueWriter interface
type mockCartoonist struct {
	dialogueFunc func(ctx context.Context, story domain.RawStory) []domain.Panel
}

func (m *mockCartoonist) GenerateDialogue(ctx context.Context, story domain.RawStory) []domain.Panel {
	if m.dialogueFunc != nil {
		return m.dialogueFunc(ctx, story)
	}
	return nil
}

// mockIllustrator is a mock implementation of the Illustrator interface
type mockIllustrator struct {
	imageFunc       func(ctx context.Context, title, content, category, pageLink string) string
	accentFunc      func(path string) string
	stripFunc       func(comic *domain.Comic) string
	placeholderFunc func(title string) string
}

func (m *mockIllustrator) GenerateArticleImage(ctx context.Context, title, content, category, pageLink string) string {
	if m.imageFunc != nil {
		return m.imageFunc(ctx, title, content, category, pageLink)
	}
	return ""
}

func (m *mockIllustrator) AccentColor(path string) string {
	if m.accentFunc != nil {
		return m.accentFunc(path)
	}
	return "#4a4a4a"
}

func (m *mockIllustrator) RenderComicStrip(comic *domain.Comic) string {
	if m.stripFunc != nil {
		return m.stripFunc(comic)
	}
	return ""
}

func (m *mockIllustrator) RenderComicPlaceholder(title string) string {
	if m.placeholderFunc != nil {
		return m.placeholderFunc(title)
	}
	return ""
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}
