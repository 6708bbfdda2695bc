// ABOUTME: Text utilities for word wrapping and keyword extraction
// ABOUTME: Used by the image producers and placeholder renderers

package text

import "strings"

// stopWords are filtered out when extracting search terms from titles.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "was": {}, "are": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "must": {},
	"can": {}, "this": {}, "that": {}, "these": {}, "those": {}, "i": {},
	"you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "me": {},
	"him": {}, "her": {}, "us": {}, "them": {}, "my": {}, "your": {}, "his": {},
	"its": {}, "our": {}, "their": {},
}

// Wrap splits text into lines no longer than maxChars characters,
// breaking on word boundaries.
func Wrap(text string, maxChars int) []string {
	words := strings.Fields(text)
	var lines []string
	var current string

	for _, word := range words {
		if len(current)+len(word) <= maxChars {
			current += word + " "
		} else {
			if current != "" {
				lines = append(lines, strings.TrimSpace(current))
			}
			current = word + " "
		}
	}

	if current != "" {
		lines = append(lines, strings.TrimSpace(current))
	}

	return lines
}

// SearchTerms extracts up to three meaningful words from a title,
// prefixed by the category when present. Used for stock photo queries.
func SearchTerms(title, category string) []string {
	var terms []string

	if category != "" {
		terms = append(terms, category)
	}

	count := 0
	for _, word := range strings.Fields(strings.ToLower(title)) {
		word = strings.Trim(word, ".,!?:;'\"()")
		if len(word) <= 2 {
			continue
		}
		if _, skip := stopWords[word]; skip {
			continue
		}
		terms = append(terms, word)
		if count++; count == 3 {
			break
		}
	}

	return terms
}
