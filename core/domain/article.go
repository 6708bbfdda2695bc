// ABOUTME: Article domain model represents a generated satirical article
// ABOUTME: Articles are immutable after creation except for image attachment

package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Article types
const (
	ArticleTypeStandard  = "article"
	ArticleTypeEditorial = "editorial"
)

// Article is a generated satirical article, persisted in the archive until
// evicted by the retention limit.
type Article struct {
	// ID is the unique identifier (UUID) for the article
	ID string `json:"id"`

	// Title is the generated headline
	Title string `json:"title"`

	// Byline is the fabricated author credit ("Name, Title")
	Byline string `json:"byline"`

	// Content is the article body
	Content string `json:"content"`

	// Style is the satire style used during generation
	Style string `json:"style"`

	// Category is the category of the originating story
	Category string `json:"category"`

	// Type is "article" or "editorial"
	Type string `json:"type"`

	// Traceability back to the real story
	OriginalTitle  string `json:"original_title"`
	OriginalSource string `json:"original_source"`
	OriginalLink   string `json:"original_link"`
	PublishedAt    string `json:"published_at,omitempty"`

	// WordCount is derived from Content at creation time
	WordCount int `json:"word_count"`

	// ImagePath is the local path of the attached illustration, if any
	ImagePath string `json:"image_path,omitempty"`

	// AccentColor is the dominant color of the illustration as a hex string
	AccentColor string `json:"accent_color,omitempty"`

	// CreatedAt is when the article was generated
	CreatedAt time.Time `json:"created_at"`
}

// NewArticle creates an Article with a fresh ID and derived word count.
func NewArticle(title, byline, content, style string) (*Article, error) {
	if title == "" {
		return nil, errors.New("article title cannot be empty")
	}

	return &Article{
		ID:        uuid.New().String(),
		Title:     title,
		Byline:    byline,
		Content:   content,
		Style:     style,
		Type:      ArticleTypeStandard,
		WordCount: len(strings.Fields(content)),
		CreatedAt: time.Now(),
	}, nil
}

// AttachImage records the illustration path and its accent color.
// This is the only mutation permitted after creation.
func (a *Article) AttachImage(path, accentColor string) {
	a.ImagePath = path
	a.AccentColor = accentColor
}
