package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// ToolLookupPastInvestigations searches completed investigations so agents
// can reuse earlier findings instead of rediscovering them.
const ToolLookupPastInvestigations = "lookup_past_investigations"

const (
	defaultLookupLimit = 5
	maxLookupLimit     = 20
)

// LookupDescriptor returns the past-investigation search tool, backed by
// full-text search over task prompts and summaries.
func LookupDescriptor() Descriptor {
	return Descriptor{
		Name:        ToolLookupPastInvestigations,
		Description: "Search completed investigations by keywords and return their titles, severities and summaries.",
		ParametersSchema: `{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Keywords to search for, e.g. payments crashloop"},
				"limit": {"type": "integer", "minimum": 1, "maximum": 20, "description": "Maximum results, default 5"}
			},
			"required": ["query"],
			"additionalProperties": false
		}`,
		Component: "past_investigations",
		Title: func(args map[string]any) string {
			return fmt.Sprintf("Searching past investigations for %q", shorten(stringArg(args, "query"), 48))
		},
		Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
			if inv.Tasks == nil {
				return "", fmt.Errorf("investigation history is not configured")
			}
			limit := intArg(args, "limit", defaultLookupLimit)
			if limit > maxLookupLimit {
				limit = maxLookupLimit
			}
			hits, err := inv.Tasks.SearchCompleted(ctx, stringArg(args, "query"), limit)
			if err != nil {
				return "", fmt.Errorf("searching past investigations: %w", err)
			}
			if len(hits) == 0 {
				return "No past investigations matched.", nil
			}
			out, err := json.Marshal(hits)
			if err != nil {
				return "", fmt.Errorf("encoding search results: %w", err)
			}
			return string(out), nil
		},
	}
}
