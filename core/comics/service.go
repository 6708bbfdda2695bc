// ABOUTME: Comics service generates 3-panel comic strip dialogue from stories
// ABOUTME: A result that does not parse into exactly 3 panels is discarded

package comics

import (
	"context"
	"fmt"

	"okcrisis-api/core/domain"
	"okcrisis-api/core/interfaces"
	"okcrisis-api/pkg/ratelimit"
)

// Stock characters available to the dialogue prompt.
var characters = []string{
	"Skip McGee",
	"Dr. Winklestein",
	"Bartholomew Puddington",
	"Mildred Henderson",
}

// contentExcerptLen bounds how much story body goes into the prompt.
const contentExcerptLen = 800

// Service generates comic dialogue via the text backend.
type Service struct {
	deps    interfaces.Dependencies
	limiter *ratelimit.Limiter
}

// NewService creates a comics service with its own call budget on the
// shared rate-limiting policy.
func NewService(deps interfaces.Dependencies, limiter *ratelimit.Limiter) *Service {
	return &Service{
		deps:    deps,
		limiter: limiter,
	}
}

// GenerateDialogue asks the backend for a 3-panel dialogue and parses
// it. Returns nil when the call fails or the response does not contain
// exactly 3 panels.
func (s *Service) GenerateDialogue(ctx context.Context, story domain.RawStory) []domain.Panel {
	if s.deps.TextGen == nil || !s.deps.TextGen.Enabled() {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil
	}

	response, err := s.deps.TextGen.Complete(ctx, interfaces.CompletionRequest{
		Prompt:      dialoguePrompt(story),
		MaxTokens:   800,
		Temperature: 0.9,
	})
	if err != nil {
		s.logError("Error generating comic dialogue", story.Title, err)
		return nil
	}

	panels := ParseDialogue(response)
	if panels == nil {
		s.logWarn("Comic dialogue did not parse into 3 panels", story.Title)
	}
	return panels
}

// dialoguePrompt requests dialogue in the PANEL / [CHARACTER] grammar.
func dialoguePrompt(story domain.RawStory) string {
	content := story.Content
	if runes := []rune(content); len(runes) > contentExcerptLen {
		content = string(runes[:contentExcerptLen])
	}

	return fmt.Sprintf(`Create a 3-panel comic strip dialogue based on this REAL news story, but with sarcastic, cynical commentary.

Title: %s
Content: %s

REQUIREMENTS:
- Create exactly 3 panels with dialogue
- Use these characters: Reporter (%s), Expert (%s), Official (%s), or Citizen (%s)
- Each panel should be: PANEL [number]: [CHARACTER NAME]: [dialogue]
- Make it sarcastic and deadpan
- Reference the real news situation ironically
- Keep dialogue short and punchy

PANEL 1:
[CHARACTER NAME]: [dialogue]

PANEL 2:
[CHARACTER NAME]: [dialogue]

PANEL 3:
[CHARACTER NAME]: [dialogue]

Choose 2-3 different characters and create a mini-story that comments sarcastically on the real news situation.`,
		story.Title, content,
		characters[0], characters[1], characters[2], characters[3])
}

func (s *Service) logWarn(msg, title string) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, map[string]interface{}{"title": title})
	}
}

func (s *Service) logError(msg, title string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
	}
}
