package agent

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty string", input: "", expected: 0},
		{name: "single char", input: "a", expected: 1},
		{name: "exactly 4 chars", input: "abcd", expected: 1},
		{name: "5 chars rounds up", input: "abcde", expected: 2},
		{name: "typical sentence", input: "Pod payments-api is crash looping.", expected: 9},
		{name: "unicode counts bytes", input: "こんにちは世界", expected: 6}, // 21 bytes in UTF-8
		{name: "long text 1000 chars", input: strings.Repeat("a", 1000), expected: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateTokens(tt.input))
		})
	}
}

func TestTruncateAtLineBoundary(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		maxChars int
		marker   string
		expected string
	}{
		{
			name:     "below limit returns unchanged",
			content:  "short text",
			maxChars: 100,
			marker:   "test",
			expected: "short text",
		},
		{
			name:     "at exact limit returns unchanged",
			content:  "abcde",
			maxChars: 5,
			marker:   "test",
			expected: "abcde",
		},
		{
			name:     "zero limit returns unchanged",
			content:  "some text",
			maxChars: 0,
			marker:   "test",
			expected: "some text",
		},
		{
			name:     "cuts at newline boundary",
			content:  "line1\nline2\nline3\nline4",
			maxChars: 15,
			marker:   "test marker",
			expected: "line1\nline2\n\n[TRUNCATED: test marker. Original size: 23B, limit: 15B]",
		},
		{
			name:     "hard cuts without newlines",
			content:  "abcdefghijklmnopqrstuvwxyz",
			maxChars: 10,
			marker:   "hard cut",
			expected: "abcdefghij\n\n[TRUNCATED: hard cut. Original size: 26B, limit: 10B]",
		},
		{
			name:     "does not split multi-byte UTF-8 rune",
			content:  "ab世界cd", // 2 + 3 + 3 + 2 = 10 bytes
			maxChars: 4,        // lands inside '世'
			marker:   "cjk",
		},
		{
			name:     "backs up past CJK to previous line",
			content:  "line1\nこんにちは\nline3",
			maxChars: 10,
			marker:   "utf8 newline",
			expected: "line1\n\n[TRUNCATED: utf8 newline. Original size: 27B, limit: 10B]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateAtLineBoundary(tt.content, tt.maxChars, tt.marker)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, got)
			}
			assert.True(t, utf8.ValidString(got),
				"truncated output should be valid UTF-8")
			if len(tt.content) > tt.maxChars && tt.maxChars > 0 {
				assert.Contains(t, got, "[TRUNCATED:",
					"oversized content should carry the truncation marker")
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes    int
		expected string
	}{
		{0, "0B"},
		{1023, "1023B"},
		{1024, "1KB"},
		{1025, "1KB"}, // integer division truncates
		{20480, "20KB"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatSize(tt.bytes))
		})
	}
}

func TestTruncateForModel(t *testing.T) {
	t.Run("small content unchanged", func(t *testing.T) {
		assert.Equal(t, "small result", TruncateForModel("small result", 0))
	})

	t.Run("default limit applies when maxTokens is zero", func(t *testing.T) {
		maxChars := DefaultModelFeedbackMaxTokens * charsPerToken // 10000
		large := strings.Repeat("x", maxChars+500)
		want := strings.Repeat("x", maxChars) +
			fmt.Sprintf("\n\n[TRUNCATED: Tool output exceeded model feedback limit. Original size: %dKB, limit: %dKB]",
				len(large)/1024, maxChars/1024)
		assert.Equal(t, want, TruncateForModel(large, 0))
	})

	t.Run("provider override shrinks the limit", func(t *testing.T) {
		large := strings.Repeat("y", 500)
		got := TruncateForModel(large, 25) // 100 chars
		assert.Less(t, len(got), 500)
		assert.Contains(t, got, "[TRUNCATED:")
	})
}
