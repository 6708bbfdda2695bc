// ABOUTME: Story domain models represent raw news stories and their evaluation scores
// ABOUTME: RawStory and ScoredCandidate are ephemeral, consumed during a publishing cycle

package domain

import (
	"strings"
	"time"
)

// RawStory is a single news item as fetched from the external feed.
// It is never persisted; it exists only between the fetch and generate phases.
type RawStory struct {
	// Title is the original headline
	Title string

	// Description is the short summary from the feed
	Description string

	// Content is the story body. Some feed plans return a truncated
	// placeholder sentinel instead of the full text.
	Content string

	// Source identifies the publisher (feed source id)
	Source string

	// Category is the feed category the story was fetched under
	Category string

	// PublishedAt is the publish timestamp as reported by the feed
	PublishedAt string

	// Link is the URL of the original article
	Link string

	// ImageURL is the feed-provided illustration, if any
	ImageURL string

	// Keywords are feed-provided topic tags
	Keywords []string

	// FetchedAt records when this process fetched the story
	FetchedAt time.Time
}

// NormalizedTitle returns the title lowered and trimmed, used for deduplication.
func (s RawStory) NormalizedTitle() string {
	return strings.ToLower(strings.TrimSpace(s.Title))
}

// ScoredCandidate pairs a story with its satirical-potential score.
// Exists only during the scoring and selection phase.
type ScoredCandidate struct {
	Story RawStory

	// Score is the suitability score in [0,10]
	Score float64

	// Rationale is the model's one-line reasoning, empty when not parseable
	Rationale string
}
