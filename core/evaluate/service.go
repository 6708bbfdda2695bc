// ABOUTME: Evaluation service scores news stories for satirical potential
// ABOUTME: One rubric-prompted backend call per story, clamped score, zero on failure

package evaluate

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"okcrisis-api/core/domain"
	"okcrisis-api/core/interfaces"
	"okcrisis-api/pkg/ratelimit"
)

// scorePattern matches the first numeric token in a backend response.
var scorePattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)`)

// anglePattern matches a numbered list item like "1. something".
var anglePattern = regexp.MustCompile(`^\d+\.\s*`)

// Service evaluates stories against the satire rubric.
type Service struct {
	deps    interfaces.Dependencies
	limiter *ratelimit.Limiter
}

// NewService creates an evaluation service with its own call budget on
// the shared rate-limiting policy.
func NewService(deps interfaces.Dependencies, limiter *ratelimit.Limiter) *Service {
	return &Service{
		deps:    deps,
		limiter: limiter,
	}
}

// ScoreStory evaluates one story, returning a score in [0,10] and a
// one-line rationale. Any failure (backend error, no numeric token)
// yields a zero score; scoring never fails the batch.
func (s *Service) ScoreStory(ctx context.Context, story domain.RawStory) (float64, string) {
	if s.deps.TextGen == nil || !s.deps.TextGen.Enabled() {
		return 0, ""
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return 0, ""
	}

	response, err := s.deps.TextGen.Complete(ctx, interfaces.CompletionRequest{
		Prompt:      evaluationPrompt(story),
		MaxTokens:   500,
		Temperature: 0.3,
	})
	if err != nil {
		s.logError("Error getting story evaluation", story.Title, err)
		return 0, ""
	}

	score, ok := parseScore(response)
	if !ok {
		s.logWarn("Could not extract score from response", story.Title)
		return 0, ""
	}

	return score, parseRationale(response)
}

// EvaluateStories scores every story and returns those with a positive
// score, ordered by score descending. Ties keep their original fetch
// order (stable sort).
func (s *Service) EvaluateStories(ctx context.Context, stories []domain.RawStory) []domain.ScoredCandidate {
	s.logInfo("Evaluating stories for satirical potential", map[string]interface{}{
		"count": len(stories),
	})

	candidates := make([]domain.ScoredCandidate, 0, len(stories))
	for _, story := range stories {
		score, rationale := s.ScoreStory(ctx, story)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, domain.ScoredCandidate{
			Story:     story,
			Score:     score,
			Rationale: rationale,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Select returns the top n candidates from an already-ordered slice.
func Select(candidates []domain.ScoredCandidate, n int) []domain.ScoredCandidate {
	if n <= 0 || n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// SuggestAngles asks the backend for up to four satirical angles for a
// story. Empty on any failure.
func (s *Service) SuggestAngles(ctx context.Context, story domain.RawStory) []string {
	if s.deps.TextGen == nil || !s.deps.TextGen.Enabled() {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil
	}

	response, err := s.deps.TextGen.Complete(ctx, interfaces.CompletionRequest{
		Prompt:      anglesPrompt(story),
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		s.logError("Error getting satire angles", story.Title, err)
		return nil
	}

	var angles []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if !anglePattern.MatchString(line) {
			continue
		}
		angles = append(angles, anglePattern.ReplaceAllString(line, ""))
		if len(angles) == 4 {
			break
		}
	}

	return angles
}

// parseScore extracts the first numeric token and clamps it to [0,10].
func parseScore(response string) (float64, bool) {
	match := scorePattern.FindString(response)
	if match == "" {
		return 0, false
	}

	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return score, true
}

// parseRationale captures the text after "REASONING:" when present.
func parseRationale(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "REASONING:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
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
