package llm

import "strings"

// extractJSON tries to extract JSON from a response that might have extra text.
func extractJSON(text string) string {
	// Look for JSON object
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	// Look for JSON array
	start = strings.Index(text, "[")
	end = strings.LastIndex(text, "]")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
