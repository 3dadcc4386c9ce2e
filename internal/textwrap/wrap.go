package textwrap

import "strings"

// Wrap hard-wraps text into lines of at most width runes. Rejoining the
// resulting lines with no separator reproduces the input text.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= width {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(runes)/width)

	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		if start > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(runes[start:end]))
	}

	return sb.String()
}
