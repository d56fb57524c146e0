package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
)

const (
	// summarizerMaxTokens caps the metadata completion; titles and tags
	// fit comfortably and a runaway response cannot bloat the pass.
	summarizerMaxTokens = 80

	// titleMaxLen is the display-title limit enforced after the call.
	titleMaxLen = 60

	maxTags = 5
)

// summarizerTemperature keeps titles stable without making them rigid.
var summarizerTemperature = 0.3

// Metadata is the result of a summarization pass.
type Metadata struct {
	Title    string
	Tags     []string
	Severity string
}

// Summarizer produces scannable task metadata with short bounded LLM
// calls: a provisional title before the investigation (pre-pass) and the
// final title, tags and severity after it (post-pass).
type Summarizer struct {
	client   agent.LLMClient
	provider *config.LLMProviderConfig
}

// NewSummarizer creates a summarizer over an existing client.
func NewSummarizer(client agent.LLMClient, provider *config.LLMProviderConfig) *Summarizer {
	return &Summarizer{client: client, provider: provider}
}

const prePassInstructions = `Write a short title for a Kubernetes incident investigation based on the
user's request. Respond with JSON only: {"title": "..."}. The title must be
at most 60 characters, specific, and contain no quotes or trailing period.`

const postPassInstructions = `Produce display metadata for a completed Kubernetes incident investigation.
Respond with JSON only:
{"title": "...", "tags": ["..."], "severity": "critical|high|medium|low|info"}
The title must be at most 60 characters and name the actual root cause. Use
at most 5 short lowercase tags. Pick the severity the findings support.`

// PrePass derives a provisional title from the user prompt alone.
func (s *Summarizer) PrePass(ctx context.Context, prompt string) (string, error) {
	meta, err := s.complete(ctx, prePassInstructions, fmt.Sprintf("Request:\n%s", prompt))
	if err != nil {
		return "", err
	}
	return meta.Title, nil
}

// PostPass derives the final title, tags and severity from the prompt and
// the completed summary.
func (s *Summarizer) PostPass(ctx context.Context, prompt, summary string) (*Metadata, error) {
	return s.complete(ctx, postPassInstructions,
		fmt.Sprintf("Request:\n%s\n\nFindings:\n%s", prompt, summary))
}

// complete runs one bounded completion and parses the metadata out of it.
func (s *Summarizer) complete(ctx context.Context, instructions, input string) (*Metadata, error) {
	stream, err := s.client.Generate(ctx, &agent.GenerateInput{
		Agent: "summarizer",
		Messages: []agent.ConversationMessage{
			{Role: agent.RoleSystem, Content: instructions},
			{Role: agent.RoleUser, Content: input},
		},
		Config:      s.provider,
		MaxTokens:   summarizerMaxTokens,
		Temperature: &summarizerTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("summarizer call failed: %w", err)
	}

	var text strings.Builder
	for chunk := range stream {
		switch c := chunk.(type) {
		case *agent.TextChunk:
			text.WriteString(c.Content)
		case *agent.ErrorChunk:
			return nil, fmt.Errorf("summarizer stream failed: %s", c.Message)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parseMetadata(text.String()), nil
}

// parseMetadata decodes the model's JSON response, tolerating code fences
// and, as a last resort, treating the first line as the title. The pass is
// advisory; an unparseable response must not fail the investigation.
func parseMetadata(raw string) *Metadata {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var decoded struct {
		Title    string   `json:"title"`
		Tags     []string `json:"tags"`
		Severity string   `json:"severity"`
	}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		title, _, _ := strings.Cut(cleaned, "\n")
		return &Metadata{Title: clampTitle(strings.Trim(title, `"`))}
	}

	tags := decoded.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return &Metadata{
		Title:    clampTitle(decoded.Title),
		Tags:     tags,
		Severity: strings.ToLower(strings.TrimSpace(decoded.Severity)),
	}
}

// clampTitle enforces the display length limit on rune boundaries.
func clampTitle(title string) string {
	title = strings.TrimSpace(title)
	runes := []rune(title)
	if len(runes) <= titleMaxLen {
		return title
	}
	return strings.TrimSpace(string(runes[:titleMaxLen-1])) + "…"
}
