// ABOUTME: Archive interface for persisting generated articles and comics
// ABOUTME: Implementations are bounded, newest-first JSON list stores

package interfaces

import (
	"context"

	"okcrisis-api/core/domain"
)

// Archive defines the persistence contract for generated content.
//
// Every implementation keeps records newest-first and enforces the
// configured retention limits at write time: after any Append or Save,
// a Load returns at most the configured maximum, always the most
// recently appended records. Oldest entries are silently evicted.
//
// The contract is single-writer: the publish phase is the only mutator.
// Concurrent readers must tolerate eventually-consistent reads.
type Archive interface {
	// LoadArticles returns all retained articles, newest first.
	LoadArticles(ctx context.Context) ([]domain.Article, error)

	// AppendArticle prepends an article, evicting beyond the limit.
	AppendArticle(ctx context.Context, article domain.Article) error

	// SaveArticles replaces the whole article list, truncating to the limit.
	SaveArticles(ctx context.Context, articles []domain.Article) error

	// DeleteArticle removes an article by ID. Returns false when not found.
	DeleteArticle(ctx context.Context, id string) (bool, error)

	// LoadComics returns all retained comics, newest first.
	LoadComics(ctx context.Context) ([]domain.Comic, error)

	// AppendComic prepends a comic, evicting beyond the limit.
	AppendComic(ctx context.Context, comic domain.Comic) error

	// SaveComics replaces the whole comic list, truncating to the limit.
	SaveComics(ctx context.Context, comics []domain.Comic) error
}
