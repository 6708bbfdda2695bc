// ABOUTME: In-memory archive implementation for tests and single-process deployments
// ABOUTME: Mutex-guarded slices with retention truncation at write time

package memory

import (
	"context"
	"sync"

	"okcrisis-api/core/domain"
	"okcrisis-api/infrastructure/storage"
)

// Archive keeps articles and comics in process memory. Contents are
// lost on restart; useful for tests and demo deployments.
type Archive struct {
	mu       sync.RWMutex
	articles []domain.Article
	comics   []domain.Comic
	limits   storage.Limits
}

// NewArchive creates an empty in-memory archive.
func NewArchive(limits storage.Limits) *Archive {
	return &Archive{limits: limits}
}

// LoadArticles returns a copy of the retained articles, newest first.
func (a *Archive) LoadArticles(ctx context.Context) ([]domain.Article, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Article, len(a.articles))
	copy(out, a.articles)
	return out, nil
}

// AppendArticle prepends an article and evicts beyond the limit.
func (a *Archive) AppendArticle(ctx context.Context, article domain.Article) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.articles = append([]domain.Article{article}, a.articles...)
	a.articles = a.articles[:a.limits.ClampArticles(len(a.articles))]
	return nil
}

// SaveArticles replaces the article list, truncating to the limit.
func (a *Archive) SaveArticles(ctx context.Context, articles []domain.Article) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	replacement := make([]domain.Article, len(articles))
	copy(replacement, articles)
	a.articles = replacement[:a.limits.ClampArticles(len(replacement))]
	return nil
}

// DeleteArticle removes an article by ID.
func (a *Archive) DeleteArticle(ctx context.Context, id string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, art := range a.articles {
		if art.ID == id {
			a.articles = append(a.articles[:i], a.articles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// LoadComics returns a copy of the retained comics, newest first.
func (a *Archive) LoadComics(ctx context.Context) ([]domain.Comic, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Comic, len(a.comics))
	copy(out, a.comics)
	return out, nil
}

// AppendComic prepends a comic and evicts beyond the limit.
func (a *Archive) AppendComic(ctx context.Context, comic domain.Comic) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.comics = append([]domain.Comic{comic}, a.comics...)
	a.comics = a.comics[:a.limits.ClampComics(len(a.comics))]
	return nil
}

// SaveComics replaces the comic list, truncating to the limit.
func (a *Archive) SaveComics(ctx context.Context, comics []domain.Comic) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	replacement := make([]domain.Comic, len(comics))
	copy(replacement, comics)
	a.comics = replacement[:a.limits.ClampComics(len(replacement))]
	return nil
}
