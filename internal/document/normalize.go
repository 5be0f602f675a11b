package document

import (
	"regexp"
	"strings"
)

var (
	horizontalSpace = regexp.MustCompile(`[^\S\n]+`)
	blankLines      = regexp.MustCompile(`\n{2,}`)
	noise           = regexp.MustCompile(`[^\p{L}\p{N}\s.,!?;:()\-/₹'"&%@#]`)
)

// Normalize cleans OCR output before analysis. Runs of spaces collapse to one,
// empty lines are dropped and stray symbols are removed. Line breaks survive so
// key points can still be extracted per line.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = noise.ReplaceAllString(text, "")
	text = horizontalSpace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
