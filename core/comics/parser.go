// ABOUTME: Parser for the PANEL n: / [CHARACTER]: line dialogue grammar
// ABOUTME: Yields nil unless exactly 3 panel blocks are found

package comics

import (
	"strings"

	"okcrisis-api/core/domain"
)

// ParseDialogue parses backend output in the comic dialogue grammar:
//
//	PANEL 1:
//	[Skip McGee]: So the committee formed a committee.
//
// Lines before the first PANEL header are ignored. The result is
// non-nil only when exactly domain.PanelCount panel blocks are present;
// a 2-panel or 4-panel response is a generation failure.
func ParseDialogue(text string) []domain.Panel {
	var panels []domain.Panel
	current := -1

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if isPanelHeader(line) {
			panels = append(panels, domain.Panel{})
			current++
			continue
		}

		if current < 0 {
			continue
		}

		if speaker, dialogue, ok := parseLine(line); ok {
			panels[current].Lines = append(panels[current].Lines, domain.DialogueLine{
				Character: speaker,
				Text:      dialogue,
			})
		}
	}

	if len(panels) != domain.PanelCount {
		return nil
	}
	return panels
}

// isPanelHeader recognizes lines like "PANEL 2:".
func isPanelHeader(line string) bool {
	return strings.HasPrefix(line, "PANEL ") && strings.Contains(line, ":")
}

// parseLine extracts a "[Name]: text" dialogue line.
func parseLine(line string) (string, string, bool) {
	if !strings.Contains(line, "[") || !strings.Contains(line, "]") {
		return "", "", false
	}

	parts := strings.SplitN(line, "]:", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	speaker := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[0]), "["))
	dialogue := strings.TrimSpace(parts[1])
	if speaker == "" || dialogue == "" {
		return "", "", false
	}

	return speaker, dialogue, true
}
