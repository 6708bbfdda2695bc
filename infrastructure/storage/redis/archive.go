// ABOUTME: Redis archive implementation using the go-redis client
// ABOUTME: Stores each record list as one JSON value under a fixed key

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"okcrisis-api/core/domain"
	"okcrisis-api/infrastructure/storage"
)

const (
	articlesKey = "okcrisis:articles"
	comicsKey   = "okcrisis:comics"
)

// Config holds Redis connection settings.
type Config struct {
	Address  string
	Password string
	DB       int
}

// Archive persists content in Redis. Each list is one JSON-encoded value
// rewritten whole on every mutation; a real deployment with concurrent
// writers should move to native list operations.
type Archive struct {
	client *redis.Client
	limits storage.Limits
}

// NewArchive creates a Redis archive and verifies connectivity.
func NewArchive(cfg Config, limits storage.Limits) (*Archive, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Archive{client: client, limits: limits}, nil
}

// LoadArticles returns all retained articles, newest first.
func (a *Archive) LoadArticles(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	if err := a.loadList(ctx, articlesKey, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// AppendArticle prepends an article and evicts beyond the limit.
func (a *Archive) AppendArticle(ctx context.Context, article domain.Article) error {
	articles, err := a.LoadArticles(ctx)
	if err != nil {
		return err
	}
	articles = append([]domain.Article{article}, articles...)
	return a.SaveArticles(ctx, articles)
}

// SaveArticles replaces the article list, truncating to the limit.
func (a *Archive) SaveArticles(ctx context.Context, articles []domain.Article) error {
	articles = articles[:a.limits.ClampArticles(len(articles))]
	return a.saveList(ctx, articlesKey, articles)
}

// DeleteArticle removes an article by ID.
func (a *Archive) DeleteArticle(ctx context.Context, id string) (bool, error) {
	articles, err := a.LoadArticles(ctx)
	if err != nil {
		return false, err
	}

	kept := articles[:0]
	found := false
	for _, art := range articles {
		if art.ID == id {
			found = true
			continue
		}
		kept = append(kept, art)
	}

	if !found {
		return false, nil
	}
	return true, a.saveList(ctx, articlesKey, kept)
}

// LoadComics returns all retained comics, newest first.
func (a *Archive) LoadComics(ctx context.Context) ([]domain.Comic, error) {
	var comics []domain.Comic
	if err := a.loadList(ctx, comicsKey, &comics); err != nil {
		return nil, err
	}
	return comics, nil
}

// AppendComic prepends a comic and evicts beyond the limit.
func (a *Archive) AppendComic(ctx context.Context, comic domain.Comic) error {
	comics, err := a.LoadComics(ctx)
	if err != nil {
		return err
	}
	comics = append([]domain.Comic{comic}, comics...)
	return a.SaveComics(ctx, comics)
}

// SaveComics replaces the comic list, truncating to the limit.
func (a *Archive) SaveComics(ctx context.Context, comics []domain.Comic) error {
	comics = comics[:a.limits.ClampComics(len(comics))]
	return a.saveList(ctx, comicsKey, comics)
}

// Close closes the Redis connection.
func (a *Archive) Close() error {
	return a.client.Close()
}

func (a *Archive) loadList(ctx context.Context, key string, dst interface{}) error {
	data, err := a.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func (a *Archive) saveList(ctx context.Context, key string, src interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return a.client.Set(ctx, key, data, 0).Err()
}
