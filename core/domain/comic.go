// ABOUTME: Comic domain model represents a generated 3-panel comic strip
// ABOUTME: A comic that does not parse into exactly 3 panels is a generation failure

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PanelCount is the fixed number of panels in a comic strip.
const PanelCount = 3

// DialogueLine is one (speaker, line) pair inside a panel.
type DialogueLine struct {
	Character string `json:"character"`
	Text      string `json:"text"`
}

// Panel is one frame of a comic strip.
type Panel struct {
	Lines []DialogueLine `json:"lines"`
}

// Comic is a generated comic strip, persisted in the archive until evicted.
type Comic struct {
	// ID is the unique identifier (UUID) for the comic
	ID string `json:"id"`

	// Title is the comic's display title
	Title string `json:"title"`

	// ImagePath is the rendered strip image, empty when rendering failed
	ImagePath string `json:"image_path,omitempty"`

	// Panels is the ordered dialogue transcript, always exactly PanelCount long
	Panels []Panel `json:"panels"`

	// OriginalTitle references the real story the comic was drawn from
	OriginalTitle string `json:"original_title"`

	// CreatedAt is when the comic was generated
	CreatedAt time.Time `json:"created_at"`
}

// NewComic creates a Comic, enforcing the panel-count invariant.
func NewComic(title, originalTitle string, panels []Panel) (*Comic, error) {
	if len(panels) != PanelCount {
		return nil, errors.New("comic must have exactly 3 panels")
	}

	return &Comic{
		ID:            uuid.New().String(),
		Title:         title,
		Panels:        panels,
		OriginalTitle: originalTitle,
		CreatedAt:     time.Now(),
	}, nil
}
