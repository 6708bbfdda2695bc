// ABOUTME: Demo/offline mode producing templated articles without backend calls
// ABOUTME: Gated by configuration, never silently substituted for the real pipeline

package satire

import (
	"fmt"
	"strings"

	"okcrisis-api/core/domain"
)

var offlineTemplates = []string{
	"In a completely expected development, %s. Experts confirmed the situation is exactly as absurd as it sounds, and officials have promised a committee will look into forming a committee.\n\n\"We are monitoring the situation closely,\" said a spokesperson who declined to specify which situation, or what monitoring entails.",
	"As predicted by experts, %s. Area residents described themselves as \"not surprised, just disappointed,\" a phrase analysts note has become the region's unofficial motto.\n\nA task force is expected to release findings at a date to be determined by a second task force.",
	"Sources confirm that %s. The announcement was met with the customary blend of applause and quiet despair.\n\n\"This is fine,\" noted one attendee, gesturing broadly at everything.",
}

// offlineArticle produces a templated article when demo mode is active.
func (s *Service) offlineArticle(story domain.RawStory, style string) *domain.Article {
	s.mu.Lock()
	template := offlineTemplates[s.rng.Intn(len(offlineTemplates))]
	s.mu.Unlock()

	body := fmt.Sprintf(template, strings.TrimSuffix(story.Title, "."))

	article, err := domain.NewArticle("Breaking: "+story.Title, s.fabricateByline(), body, style)
	if err != nil {
		return nil
	}

	article.Category = story.Category
	article.OriginalTitle = story.Title
	article.OriginalSource = story.Source
	article.OriginalLink = story.Link
	article.PublishedAt = story.PublishedAt

	s.logInfo("Generated offline demo article", map[string]interface{}{
		"title": article.Title,
	})
	return article
}

// offlineEditorial produces a fixed-shape editorial when demo mode is active.
func (s *Service) offlineEditorial(topStories []domain.RawStory) *domain.Article {
	var lines []string
	lines = append(lines, "The Editorial Board has reviewed today's events and reached its usual conclusion: everything is proceeding exactly as badly as expected.")
	for i, story := range topStories {
		if i == 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("Consider, for instance, that %s. We are assured this is normal.", strings.TrimSuffix(story.Title, ".")))
	}
	lines = append(lines, "We will continue watching so you don't have to.")

	editorial, err := domain.NewArticle(editorialTitle, editorialByline, strings.Join(lines, "\n\n"), "deadpan")
	if err != nil {
		return nil
	}
	editorial.Type = domain.ArticleTypeEditorial
	return editorial
}
