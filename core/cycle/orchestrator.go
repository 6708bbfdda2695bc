// ABOUTME: Publishing cycle orchestrator running the phased fetch-to-publish pipeline
// ABOUTME: Each phase isolates per-item failures so one bad story never aborts a cycle

package cycle

import (
	"context"
	"fmt"

	"okcrisis-api/core/domain"
	"okcrisis-api/core/interfaces"
)

// StoryFetcher aggregates and validates raw stories.
type StoryFetcher interface {
	FetchStories(ctx context.Context) ([]domain.RawStory, []error)
	Validate(story domain.RawStory) bool
}

// StoryScorer ranks stories by satirical potential.
type StoryScorer interface {
	EvaluateStories(ctx context.Context, stories []domain.RawStory) []domain.ScoredCandidate
	SuggestAngles(ctx context.Context, story domain.RawStory) []string
}

// ArticleWriter turns stories into generated articles.
type ArticleWriter interface {
	GenerateArticle(ctx context.Context, story domain.RawStory, style, angle string) *domain.Article
	GenerateEditorial(ctx context.Context, topStories []domain.RawStory) *domain.Article
}

// DialogueWriter produces comic panel transcripts.
type DialogueWriter interface {
	GenerateDialogue(ctx context.Context, story domain.RawStory) []domain.Panel
}

// Illustrator produces article images and comic strips.
type Illustrator interface {
	GenerateArticleImage(ctx context.Context, title, content, category, pageLink string) string
	AccentColor(path string) string
	RenderComicStrip(comic *domain.Comic) string
	RenderComicPlaceholder(title string) string
}

// Config bounds each cycle's output.
type Config struct {
	ArticlesPerCycle int
	ComicsPerCycle   int

	// Offline skips backend scoring and selects stories in fetch order,
	// pairing with the transformer's templated demo content.
	Offline bool
}

// Result summarizes one completed publishing cycle.
type Result struct {
	Mode              string   `json:"mode"`
	StoriesFetched    int      `json:"stories_fetched"`
	StoriesSelected   int      `json:"stories_selected"`
	ArticlesGenerated int      `json:"articles_generated"`
	ComicsGenerated   int      `json:"comics_generated"`
	EditorialWritten  bool     `json:"editorial_written"`
	Errors            []string `json:"errors,omitempty"`
}

// Orchestrator runs the phased publishing cycle.
type Orchestrator struct {
	cfg Config

	fetcher     StoryFetcher
	scorer      StoryScorer
	writer      ArticleWriter
	cartoonist  DialogueWriter
	illustrator Illustrator
	archive     interfaces.Archive
	cleaner     *Cleaner
	logger      interfaces.Logger
}

// NewOrchestrator wires the pipeline stages together. The cleaner is
// optional; without one the cleanup phase is a no-op.
func NewOrchestrator(
	cfg Config,
	fetcher StoryFetcher,
	scorer StoryScorer,
	writer ArticleWriter,
	cartoonist DialogueWriter,
	illustrator Illustrator,
	archive interfaces.Archive,
	cleaner *Cleaner,
	logger interfaces.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		fetcher:     fetcher,
		scorer:      scorer,
		writer:      writer,
		cartoonist:  cartoonist,
		illustrator: illustrator,
		archive:     archive,
		cleaner:     cleaner,
		logger:      logger,
	}
}

// Run executes one full publishing cycle. A cycle that finds nothing to
// publish is a success with zero counts, not an error. The returned
// Result carries every per-item failure encountered along the way.
func (o *Orchestrator) Run(ctx context.Context, mode string) Result {
	result := Result{Mode: mode}

	o.logger.Info("Starting publishing cycle", map[string]interface{}{"mode": mode})

	stories := o.fetchStories(ctx, &result)
	result.StoriesFetched = len(stories)
	if len(stories) == 0 {
		o.logger.Warn("No stories fetched, ending cycle", map[string]interface{}{"mode": mode})
		return result
	}

	selected := o.selectStories(ctx, stories)
	result.StoriesSelected = len(selected)
	if len(selected) == 0 {
		o.logger.Warn("No stories selected for satire, ending cycle", map[string]interface{}{"mode": mode})
		return result
	}

	articles := o.generateArticles(ctx, selected, &result)
	o.generateImages(ctx, articles, &result)
	comics := o.generateComics(ctx, selected, &result)
	editorial := o.generateEditorial(ctx, selected, &result)

	o.publish(ctx, articles, comics, editorial, &result)
	o.cleanup(&result)

	o.logger.Info("Publishing cycle completed", map[string]interface{}{
		"mode":     mode,
		"articles": result.ArticlesGenerated,
		"comics":   result.ComicsGenerated,
		"errors":   len(result.Errors),
	})

	return result
}

// fetchStories runs the aggregation and validation phases.
func (o *Orchestrator) fetchStories(ctx context.Context, result *Result) []domain.RawStory {
	o.logger.Info("Phase: fetching news stories", nil)

	stories, errs := o.fetcher.FetchStories(ctx)
	for _, err := range errs {
		result.Errors = append(result.Errors, fmt.Sprintf("fetch: %v", err))
	}

	valid := make([]domain.RawStory, 0, len(stories))
	for _, story := range stories {
		if o.fetcher.Validate(story) {
			valid = append(valid, story)
		}
	}

	o.logger.Info("Fetched and validated stories", map[string]interface{}{
		"fetched": len(stories),
		"valid":   len(valid),
	})
	return valid
}

// selectStories scores every story and keeps the per-cycle quota.
func (o *Orchestrator) selectStories(ctx context.Context, stories []domain.RawStory) []domain.RawStory {
	o.logger.Info("Phase: evaluating stories for satirical potential", nil)

	if o.cfg.Offline {
		if len(stories) > o.cfg.ArticlesPerCycle {
			stories = stories[:o.cfg.ArticlesPerCycle]
		}
		o.logger.Info("Offline mode, selecting stories in fetch order", map[string]interface{}{
			"count": len(stories),
		})
		return stories
	}

	candidates := o.scorer.EvaluateStories(ctx, stories)
	if len(candidates) > o.cfg.ArticlesPerCycle {
		candidates = candidates[:o.cfg.ArticlesPerCycle]
	}

	selected := make([]domain.RawStory, 0, len(candidates))
	for i, c := range candidates {
		selected = append(selected, c.Story)
		o.logger.Info("Selected story", map[string]interface{}{
			"rank":  i + 1,
			"title": c.Story.Title,
			"score": c.Score,
		})
	}
	return selected
}

// generateArticles writes one satirical article per selected story.
func (o *Orchestrator) generateArticles(ctx context.Context, selected []domain.RawStory, result *Result) []*domain.Article {
	o.logger.Info("Phase: generating satirical articles", nil)

	articles := make([]*domain.Article, 0, len(selected))
	for i, story := range selected {
		article := o.generateOneArticle(ctx, story, i+1, len(selected), result)
		if article != nil {
			articles = append(articles, article)
		}
	}

	o.logger.Info("Generated articles", map[string]interface{}{"count": len(articles)})
	return articles
}

func (o *Orchestrator) generateOneArticle(ctx context.Context, story domain.RawStory, n, total int, result *Result) (article *domain.Article) {
	defer o.recoverPhase("article generation", story.Title, result)

	o.logger.Info("Generating article", map[string]interface{}{"n": n, "total": total, "title": story.Title})

	var angle string
	if angles := o.scorer.SuggestAngles(ctx, story); len(angles) > 0 {
		angle = angles[0]
	}

	article = o.writer.GenerateArticle(ctx, story, "", angle)
	if article == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("article generation failed: %s", story.Title))
	}
	return article
}

// generateImages attaches an illustration and accent color to each article.
func (o *Orchestrator) generateImages(ctx context.Context, articles []*domain.Article, result *Result) {
	o.logger.Info("Phase: generating article images", nil)

	for _, article := range articles {
		o.generateOneImage(ctx, article, result)
	}
}

func (o *Orchestrator) generateOneImage(ctx context.Context, article *domain.Article, result *Result) {
	defer o.recoverPhase("image generation", article.Title, result)

	path := o.illustrator.GenerateArticleImage(ctx, article.Title, article.Content, article.Category, article.OriginalLink)
	if path == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("image generation failed: %s", article.Title))
		return
	}

	article.AttachImage(path, o.illustrator.AccentColor(path))
}

// generateComics draws strips for the top stories up to the comic quota.
func (o *Orchestrator) generateComics(ctx context.Context, selected []domain.RawStory, result *Result) []*domain.Comic {
	o.logger.Info("Phase: generating comic strips", nil)

	quota := o.cfg.ComicsPerCycle
	if quota > len(selected) {
		quota = len(selected)
	}

	comics := make([]*domain.Comic, 0, quota)
	for i := 0; i < quota; i++ {
		if comic := o.generateOneComic(ctx, selected[i], result); comic != nil {
			comics = append(comics, comic)
		}
	}

	o.logger.Info("Generated comics", map[string]interface{}{"count": len(comics)})
	return comics
}

func (o *Orchestrator) generateOneComic(ctx context.Context, story domain.RawStory, result *Result) (comic *domain.Comic) {
	defer o.recoverPhase("comic generation", story.Title, result)

	panels := o.cartoonist.GenerateDialogue(ctx, story)

	title := comicTitle(story.Title)
	if panels == nil {
		// Dialogue failed; a placeholder strip still fills the slot.
		path := o.illustrator.RenderComicPlaceholder(title)
		if path == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("comic generation failed: %s", story.Title))
			return nil
		}
		comic, _ = domain.NewComic(title, story.Title, emptyPanels())
		comic.ImagePath = path
		return comic
	}

	comic, err := domain.NewComic(title, story.Title, panels)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("comic generation failed: %s: %v", story.Title, err))
		return nil
	}

	if path := o.illustrator.RenderComicStrip(comic); path != "" {
		comic.ImagePath = path
		return comic
	}

	if path := o.illustrator.RenderComicPlaceholder(title); path != "" {
		comic.ImagePath = path
		return comic
	}

	result.Errors = append(result.Errors, fmt.Sprintf("comic rendering failed: %s", story.Title))
	return nil
}

// generateEditorial writes the daily editorial from the selected set.
func (o *Orchestrator) generateEditorial(ctx context.Context, selected []domain.RawStory, result *Result) (editorial *domain.Article) {
	defer o.recoverPhase("editorial generation", "", result)

	o.logger.Info("Phase: generating editorial content", nil)

	editorial = o.writer.GenerateEditorial(ctx, selected)
	if editorial == nil {
		result.Errors = append(result.Errors, "editorial generation failed")
	}
	return editorial
}

// publish appends everything generated this cycle to the archive.
func (o *Orchestrator) publish(ctx context.Context, articles []*domain.Article, comics []*domain.Comic, editorial *domain.Article, result *Result) {
	o.logger.Info("Phase: publishing content", nil)

	for _, article := range articles {
		if err := o.archive.AppendArticle(ctx, *article); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("publish article %q: %v", article.Title, err))
			continue
		}
		result.ArticlesGenerated++
		o.logger.Info("Published article", map[string]interface{}{"title": article.Title})
	}

	for _, comic := range comics {
		if err := o.archive.AppendComic(ctx, *comic); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("publish comic %q: %v", comic.Title, err))
			continue
		}
		result.ComicsGenerated++
		o.logger.Info("Published comic", map[string]interface{}{"title": comic.Title})
	}

	if editorial != nil {
		if err := o.archive.AppendArticle(ctx, *editorial); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("publish editorial: %v", err))
		} else {
			result.ArticlesGenerated++
			result.EditorialWritten = true
			o.logger.Info("Published editorial", nil)
		}
	}
}

// cleanup evicts stale rendered files after publishing.
func (o *Orchestrator) cleanup(result *Result) {
	if o.cleaner == nil {
		return
	}

	o.logger.Info("Phase: cleanup and maintenance", nil)
	for _, err := range o.cleaner.Run() {
		result.Errors = append(result.Errors, fmt.Sprintf("cleanup: %v", err))
	}
}

// recoverPhase converts a phase panic into a recorded cycle error.
func (o *Orchestrator) recoverPhase(phase, item string, result *Result) {
	if r := recover(); r != nil {
		o.logger.Error("Recovered from panic", map[string]interface{}{
			"phase": phase,
			"item":  item,
			"panic": fmt.Sprintf("%v", r),
		})
		result.Errors = append(result.Errors, fmt.Sprintf("panic in %s (%s): %v", phase, item, r))
	}
}

// comicTitle derives the display title from the source headline.
func comicTitle(storyTitle string) string {
	if runes := []rune(storyTitle); len(runes) > 30 {
		storyTitle = string(runes[:30])
	}
	return "Comic: " + storyTitle + "..."
}

func emptyPanels() []domain.Panel {
	return make([]domain.Panel, domain.PanelCount)
}
