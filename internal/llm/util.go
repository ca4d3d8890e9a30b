package llm

import "strings"

// CleanJSONBlock strips the markdown fencing models wrap JSON in even when
// told not to. It tolerates a language tag after the opening fence and leaves
// unfenced text untouched.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	body = strings.TrimPrefix(body, "json")
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}

	// Drop a leading language tag like "json" if the first line carries no
	// actual content.
	if idx := strings.Index(body, "\n"); idx >= 0 {
		tag := strings.TrimSpace(body[:idx])
		if tag != "" && len(tag) < 20 && !strings.ContainsAny(tag, " {[\"") {
			body = body[idx+1:]
		}
	}

	return strings.TrimSpace(body)
}
