package agent

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// charsPerToken is the approximate number of characters per token for
// English text. Used for threshold estimation only, not exact counting.
const charsPerToken = 4

// DefaultModelFeedbackMaxTokens caps the copy of a tool result that is fed
// back to the model as conversation input. The journal always keeps the
// full output; only the model-facing copy is cut.
const DefaultModelFeedbackMaxTokens = 2500

// EstimateTokens returns an approximate token count for the given text
// using the common ~4 characters per token heuristic. Exact counts would
// require a tokenizer dependency for minimal benefit.
//
// len(text) counts bytes, not Unicode characters, so multi-byte UTF-8
// content overestimates the token count. That errs in the safe direction:
// truncation triggers slightly earlier than strictly necessary.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken // Round up
}

// TruncateForModel cuts tool output down to the model feedback limit.
// maxTokens <= 0 selects DefaultModelFeedbackMaxTokens; providers can
// raise or lower it per model via llm_providers.max_tool_result_tokens.
func TruncateForModel(content string, maxTokens int) string {
	if maxTokens <= 0 {
		maxTokens = DefaultModelFeedbackMaxTokens
	}
	return truncateAtLineBoundary(content, maxTokens*charsPerToken,
		"Tool output exceeded model feedback limit")
}

// truncateAtLineBoundary cuts at the last newline before the limit to
// avoid splitting mid-line, which matters when the content is indented
// JSON, YAML, or log output.
//
// maxChars is a byte limit, consistent with EstimateTokens using len().
// The cut point backs up to a rune start first so multi-byte UTF-8
// characters are never split, then to the last newline when possible.
func truncateAtLineBoundary(content string, maxChars int, marker string) string {
	if maxChars <= 0 || len(content) <= maxChars {
		return content
	}
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	truncated := content[:cut]
	if idx := strings.LastIndex(truncated, "\n"); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + fmt.Sprintf(
		"\n\n[TRUNCATED: %s. Original size: %s, limit: %s]",
		marker, formatSize(len(content)), formatSize(maxChars),
	)
}

// formatSize returns a human-readable size string. Uses bytes for values
// under 1KB to avoid confusing "0KB" output on small content.
func formatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	return fmt.Sprintf("%dKB", bytes/1024)
}
