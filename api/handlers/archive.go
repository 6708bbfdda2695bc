// ABOUTME: Archive handlers for the Huma API
// ABOUTME: Read and moderation endpoints over the published article and comic lists

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"okcrisis-api/core/domain"
	coreerrors "okcrisis-api/core/errors"
	"okcrisis-api/core/interfaces"
)

// ArchiveHandler handles archive-related HTTP requests
type ArchiveHandler struct {
	archive interfaces.Archive
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(archive interfaces.Archive) *ArchiveHandler {
	return &ArchiveHandler{archive: archive}
}

// RegisterRoutes registers all archive-related routes
func (h *ArchiveHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/articles",
		Summary:     "List published articles",
		Description: "Returns all retained articles, newest first.",
		Tags:        []string{"Archive"},
	}, h.ListArticles)

	huma.Register(api, huma.Operation{
		OperationID: "deleteArticle",
		Method:      http.MethodDelete,
		Path:        "/articles/{id}",
		Summary:     "Delete a published article",
		Description: "Removes an article from the archive by ID. Used for moderation takedowns.",
		Tags:        []string{"Archive"},
	}, h.DeleteArticle)

	huma.Register(api, huma.Operation{
		OperationID: "listComics",
		Method:      http.MethodGet,
		Path:        "/comics",
		Summary:     "List published comics",
		Description: "Returns all retained comics, newest first.",
		Tags:        []string{"Archive"},
	}, h.ListComics)
}

// ListArticlesOutput defines the output for the ListArticles operation
type ListArticlesOutput struct {
	Body struct {
		Articles []domain.Article `json:"articles"`
		Count    int              `json:"count"`
	}
}

// ListArticles handles the GET /articles endpoint
func (h *ArchiveHandler) ListArticles(ctx context.Context, _ *struct{}) (*ListArticlesOutput, error) {
	articles, err := h.archive.LoadArticles(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	resp := &ListArticlesOutput{}
	resp.Body.Articles = articles
	resp.Body.Count = len(articles)
	return resp, nil
}

// DeleteArticleInput defines the input for the DeleteArticle operation
type DeleteArticleInput struct {
	ID string `path:"id" doc:"Article ID"`
}

// DeleteArticleOutput defines the output for the DeleteArticle operation
type DeleteArticleOutput struct {
	Body struct {
		Deleted bool   `json:"deleted"`
		ID      string `json:"id"`
	}
}

// DeleteArticle handles the DELETE /articles/{id} endpoint
func (h *ArchiveHandler) DeleteArticle(ctx context.Context, input *DeleteArticleInput) (*DeleteArticleOutput, error) {
	deleted, err := h.archive.DeleteArticle(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if !deleted {
		return nil, toHumaError(&coreerrors.NotFoundError{Resource: "article", ID: input.ID})
	}

	resp := &DeleteArticleOutput{}
	resp.Body.Deleted = true
	resp.Body.ID = input.ID
	return resp, nil
}

// ListComicsOutput defines the output for the ListComics operation
type ListComicsOutput struct {
	Body struct {
		Comics []domain.Comic `json:"comics"`
		Count  int            `json:"count"`
	}
}

// ListComics handles the GET /comics endpoint
func (h *ArchiveHandler) ListComics(ctx context.Context, _ *struct{}) (*ListComicsOutput, error) {
	comics, err := h.archive.LoadComics(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	resp := &ListComicsOutput{}
	resp.Body.Comics = comics
	resp.Body.Count = len(comics)
	return resp, nil
}
