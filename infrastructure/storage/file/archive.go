// ABOUTME: Flat-file archive implementation storing JSON lists on local disk
// ABOUTME: Whole-list read/overwrite with retention truncation at write time

package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"okcrisis-api/core/domain"
	"okcrisis-api/infrastructure/storage"
)

// Archive persists articles and comics as two JSON files under a data
// directory. Single-writer: there is no cross-process locking.
type Archive struct {
	articlesPath string
	comicsPath   string
	limits       storage.Limits
}

// NewArchive creates a file archive rooted at dataDir, creating the
// directory and empty list files when missing.
func NewArchive(dataDir string, limits storage.Limits) (*Archive, error) {
	if dataDir == "" {
		return nil, errors.New("data directory cannot be empty")
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &Archive{
		articlesPath: filepath.Join(dataDir, "articles.json"),
		comicsPath:   filepath.Join(dataDir, "comics.json"),
		limits:       limits,
	}

	for _, path := range []string{a.articlesPath, a.comicsPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("failed to initialize %s: %w", path, err)
			}
		}
	}

	return a, nil
}

// LoadArticles returns all retained articles, newest first.
func (a *Archive) LoadArticles(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	if err := readList(a.articlesPath, &articles); err != nil {
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
	return writeList(a.articlesPath, articles)
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
	return true, writeList(a.articlesPath, kept)
}

// LoadComics returns all retained comics, newest first.
func (a *Archive) LoadComics(ctx context.Context) ([]domain.Comic, error) {
	var comics []domain.Comic
	if err := readList(a.comicsPath, &comics); err != nil {
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
	return writeList(a.comicsPath, comics)
}

// readList reads a JSON list file into dst. A missing file is an empty list.
func readList(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeList overwrites a JSON list file.
func writeList(path string, src interface{}) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
