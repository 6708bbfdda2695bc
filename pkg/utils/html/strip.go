// ABOUTME: HTML stripping for feed descriptions and story summaries
// ABOUTME: Markup becomes plain text suitable for prompts and validation

package html

import "strings"

// entityReplacer decodes the entities that commonly appear in feed
// descriptions. Anything rarer passes through untouched.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&#8217;", "'",
	"&#8220;", `"`,
	"&#8221;", `"`,
	"&#8230;", "...",
	"&ldquo;", `"`,
	"&rdquo;", `"`,
	"&lsquo;", "'",
	"&rsquo;", "'",
	"&mdash;", "-",
	"&ndash;", "-",
	"&hellip;", "...",
)

// StripHTML removes markup from a feed description and decodes common
// entities, collapsing the result to single-spaced plain text.
func StripHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
			b.WriteByte(' ')
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}

	return collapseSpaces(entityReplacer.Replace(b.String()))
}

// DecodeEntities decodes common HTML entities without touching markup.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
