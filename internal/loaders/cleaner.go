package loaders

import (
	"regexp"
	"strings"
)

var (
	// disallowed matches characters outside the allow-list of word
	// characters and basic punctuation. Extraction from PDF layouts
	// leaves control characters and decorative glyphs behind.
	disallowed = regexp.MustCompile(`[^\w \t\n.,;:!?'"()\-@+/&%|#*]`)

	// horizontalRuns collapses spaces and tabs.
	horizontalRuns = regexp.MustCompile(`[ \t]+`)

	// blankRuns collapses three or more newlines into a paragraph break.
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// Clean normalises extracted text: strips characters outside the
// allow-list, collapses horizontal whitespace runs to single spaces and
// excess blank lines to paragraph breaks. Paragraph structure survives so
// the chunker can split on it.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = disallowed.ReplaceAllString(text, " ")
	text = horizontalRuns.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
