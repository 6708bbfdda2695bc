// ABOUTME: SQLite archive implementation for durable single-node deployments
// ABOUTME: Stores each record list as one JSON value in a key/value table

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"okcrisis-api/core/domain"
	"okcrisis-api/infrastructure/storage"
)

const (
	articlesKey = "articles"
	comicsKey   = "comics"
)

// Archive persists content in a SQLite database that survives restarts.
type Archive struct {
	db     *sql.DB
	limits storage.Limits
}

// NewArchive opens (or creates) the database at path.
func NewArchive(path string, limits storage.Limits) (*Archive, error) {
	if path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	a := &Archive{db: db, limits: limits}
	if err := a.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return a, nil
}

// initSchema creates the archive table if it doesn't exist.
func (a *Archive) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS archive (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := a.db.Exec(query)
	return err
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

// Close closes the database.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) loadList(ctx context.Context, key string, dst interface{}) error {
	var value string
	err := a.db.QueryRowContext(ctx, "SELECT value FROM archive WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	return json.Unmarshal([]byte(value), dst)
}

func (a *Archive) saveList(ctx context.Context, key string, src interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO archive (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := a.db.ExecContext(ctx, query, key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
