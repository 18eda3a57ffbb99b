// Package markdown repairs common formatting defects in model output before
// it is persisted, such as missing spaces after list markers and unclosed
// code fences.
package markdown

import (
	"regexp"
	"strings"
)

var (
	bulletMarker   = regexp.MustCompile(`^(\s*[-*+])(\S)`)
	numberedMarker = regexp.MustCompile(`^(\s*\d+\.)(\S)`)
	listLine       = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s`)
	boldOnlyLine   = regexp.MustCompile(`^\*\*[^*]+\*\*$`)
	excessBlanks   = regexp.MustCompile(`\n{3,}`)
)

// Normalize applies the repair passes in order. Content inside fenced code
// blocks is left untouched.
func Normalize(text string) string {
	if text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+2)
	inFence := false

	for _, line := range lines {
		if isFenceLine(line) {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}

		line = bulletMarker.ReplaceAllString(line, "$1 $2")
		line = numberedMarker.ReplaceAllString(line, "$1 $2")

		// A list needs a blank line before its first item to render.
		if listLine.MatchString(line) && len(out) > 0 {
			prev := out[len(out)-1]
			if prev != "" && !listLine.MatchString(prev) {
				out = append(out, "")
			}
		}

		// A standalone bold line reads as a heading; give it room.
		if boldOnlyLine.MatchString(strings.TrimSpace(line)) {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			out = append(out, line, "")
			continue
		}

		out = append(out, line)
	}

	if inFence {
		out = append(out, "```")
	}

	result := strings.Join(out, "\n")
	result = excessBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimRight(result, "\n")
}

func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}
