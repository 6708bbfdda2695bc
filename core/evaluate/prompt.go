// ABOUTME: Prompt construction for story evaluation and angle suggestions
// ABOUTME: Fixed rubric of five weighted sub-criteria, two points each

package evaluate

import (
	"fmt"

	"okcrisis-api/core/domain"
)

// contentExcerptLen bounds how much story body goes into the prompt.
const contentExcerptLen = 500

// evaluationPrompt embeds the story and the scoring rubric.
func evaluationPrompt(story domain.RawStory) string {
	return fmt.Sprintf(`Evaluate this REAL news story for sarcastic reporting potential on a scale of 0-10.

STORY DETAILS:
Title: %s
Description: %s
Content: %s...
Category: %s

EVALUATION CRITERIA:
- Irony factor (0-2): How much inherent irony or absurdity exists in the real situation?
- Commentary potential (0-2): How much room for cynical observations about human behavior?
- Smug reporting value (0-2): How well does it lend itself to world-weary commentary?
- Social relevance (0-2): Does it touch on relatable societal patterns or hypocrisies?
- Deadpan delivery potential (0-2): How effectively can sarcasm be delivered with a straight face?

SCORING:
0-2: Low sarcastic potential (straightforward, factual news)
3-5: Moderate potential (some ironic elements but mostly serious)
6-8: Good potential (clear opportunities for cynical commentary)
9-10: Excellent potential (perfect for sarcastic, smug reporting)

Please analyze the story and provide:
1. A numeric score from 0-10
2. Brief reasoning for your score (1-2 sentences)

Format your response as:
SCORE: [number]
REASONING: [brief explanation]`,
		story.Title, story.Description, excerpt(story.Content, contentExcerptLen), story.Category)
}

// anglesPrompt asks for 3-4 satirical angle suggestions.
func anglesPrompt(story domain.RawStory) string {
	return fmt.Sprintf(`Suggest 3-4 satirical angles for this news story:

Title: %s
Description: %s

Provide specific, creative angles that could be used for satirical treatment. Focus on:
- Exaggeration of key elements
- Ironic reinterpretations
- Absurdist scenarios
- Social commentary twists

Format as a numbered list of brief angle descriptions.`,
		story.Title, story.Description)
}

// excerpt truncates text to at most n bytes on a rune boundary.
func excerpt(text string, n int) string {
	if len(text) <= n {
		return text
	}
	runes := []rune(text)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
