package usecase

import "strings"

// thinking tag pairs emitted by reasoning-capable models, checked in order.
var thinkingTags = [][2]string{
	{"<think>", "</think>"},
	{"<thinking>", "</thinking>"},
}

// extractThinking splits reasoning blocks out of a completed response. The
// reasoning text is returned separately and the visible answer has the tags
// removed. Multiple blocks are concatenated; an unterminated opening tag is
// treated as reasoning up to the end of the text.
func extractThinking(text string) (content, thinking string) {
	content = text
	var parts []string

	for _, tags := range thinkingTags {
		openTag, closeTag := tags[0], tags[1]
		for {
			start := strings.Index(content, openTag)
			if start < 0 {
				break
			}
			rest := content[start+len(openTag):]
			end := strings.Index(rest, closeTag)
			if end < 0 {
				parts = append(parts, strings.TrimSpace(rest))
				content = content[:start]
				break
			}
			parts = append(parts, strings.TrimSpace(rest[:end]))
			content = content[:start] + rest[end+len(closeTag):]
		}
	}

	return strings.TrimSpace(content), strings.TrimSpace(strings.Join(parts, "\n\n"))
}
