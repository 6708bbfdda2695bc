// ABOUTME: Prompt construction for article and editorial generation
// ABOUTME: Deadpan tone rules with fabricated quotes explicitly permitted

package satire

import (
	"fmt"
	"strings"

	"okcrisis-api/core/domain"
)

// contentExcerptLen bounds how much story body goes into the prompt.
const contentExcerptLen = 1000

// articlePrompt instructs the backend to rewrite a real story as
// deadpan satire, optionally steered by a specific angle.
func articlePrompt(story domain.RawStory, style, angle string) string {
	angleInstruction := ""
	if angle != "" {
		angleInstruction = "\nSPECIFIC ANGLE: " + angle
	}

	return fmt.Sprintf(`You are a journalist for "OK Crisis" - a deadpan satire news outlet. Take this REAL news story and transform it into satirical content while maintaining a completely serious, deadpan tone. The humor comes from the absurdity of the situation, not from jokes.

ORIGINAL STORY:
Title: %s
Description: %s
Content: %s...
Category: %s

STYLE: %s satire - completely serious tone, but the content is satirical
TONE: Absolutely serious, no winking, no "just kidding" - deliver absurd content as if it's completely normal%s

RULES:
- Start with REAL news facts as the foundation
- You CAN exaggerate, add absurd details, and create fake quotes
- The key is delivering everything with a straight face
- Use phrases like "In a completely expected development..." or "As predicted by experts..."
- Treat ridiculous events as if they're perfectly normal
- Include fake quotes from fictional experts who state the obvious
- Add absurd details that enhance the comedy
- The humor comes from the contrast between serious tone and absurd content

ARTICLE STRUCTURE:
1. Serious-sounding headline about the absurd situation
2. Straightforward opening treating ridiculous events as normal
3. Body paragraphs with fake quotes and absurd details
4. Conclusion that treats the absurdity as completely expected

Write the complete article in markdown format. The goal is deadpan satire - completely serious tone delivering absurd content.`,
		story.Title, story.Description, excerpt(story.Content, contentExcerptLen),
		story.Category, style, angleInstruction)
}

// editorialPrompt summarizes the cycle's top stories into an op-ed brief.
func editorialPrompt(topStories []domain.RawStory) string {
	summaries := make([]string, 0, len(topStories))
	for _, story := range topStories {
		summaries = append(summaries, "- "+story.Title)
	}

	return fmt.Sprintf(`Write a deadpan editorial for a satire news website based on today's top stories:

TOP STORIES:
%s

EDITORIAL REQUIREMENTS:
- Write as "The Editorial Board"
- Comment on the absurd state of current events
- Maintain serious, thoughtful tone while being completely satirical
- Reference 2-3 of the stories in ironic ways
- End with a deadpan observation about society
- Length: 200-300 words
- Style: Pretend to be a legitimate editorial while being completely absurd

Write the editorial in markdown format.`,
		strings.Join(summaries, "\n"))
}

// excerpt truncates text to at most n runes.
func excerpt(text string, n int) string {
	runes := []rune(text)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
