package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/agentkube/investigator/pkg/agent"
)

// defaultMaxTokens is used when the caller does not set GenerateInput.MaxTokens.
// Anthropic requires a positive max_tokens on every request.
const defaultMaxTokens = 8192

// AnthropicClient streams chat completions from the Anthropic Messages API.
type AnthropicClient struct {
	client sdk.Client
	logger *slog.Logger
}

// NewAnthropicClient builds a client for the Anthropic Messages API.
// baseURL is optional; apiKey is required.
func NewAnthropicClient(apiKey, baseURL string, logger *slog.Logger) *AnthropicClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicClient{
		client: sdk.NewClient(opts...),
		logger: logger.With("component", "llm.anthropic"),
	}
}

// Generate implements agent.LLMClient.
func (c *AnthropicClient) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	params, err := c.buildParams(input)
	if err != nil {
		return nil, fmt.Errorf("failed to build anthropic request: %w", err)
	}

	stream := c.client.Messages.NewStreaming(ctx, params)

	out := make(chan agent.Chunk, 32)
	go func() {
		defer close(out)
		defer func() { _ = stream.Close() }()

		// Tool input JSON arrives as deltas keyed by content block index.
		type toolBuffer struct {
			id        string
			name      string
			fragments []string
		}
		toolBlocks := make(map[int]*toolBuffer)

		emit := func(chunk agent.Chunk) bool {
			select {
			case out <- chunk:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for stream.Next() {
			switch ev := stream.Current().AsAny().(type) {
			case sdk.ContentBlockStartEvent:
				if tu, ok := ev.ContentBlock.AsAny().(sdk.ToolUseBlock); ok {
					toolBlocks[int(ev.Index)] = &toolBuffer{id: tu.ID, name: tu.Name}
				}
			case sdk.ContentBlockDeltaEvent:
				switch delta := ev.Delta.AsAny().(type) {
				case sdk.TextDelta:
					if delta.Text == "" {
						continue
					}
					if !emit(&agent.TextChunk{Content: delta.Text}) {
						return
					}
				case sdk.ThinkingDelta:
					if delta.Thinking == "" {
						continue
					}
					if !emit(&agent.ThinkingChunk{Content: delta.Thinking}) {
						return
					}
				case sdk.InputJSONDelta:
					if tb := toolBlocks[int(ev.Index)]; tb != nil && delta.PartialJSON != "" {
						tb.fragments = append(tb.fragments, delta.PartialJSON)
					}
				}
			case sdk.ContentBlockStopEvent:
				if tb := toolBlocks[int(ev.Index)]; tb != nil {
					delete(toolBlocks, int(ev.Index))
					args := strings.Join(tb.fragments, "")
					if strings.TrimSpace(args) == "" {
						args = "{}"
					}
					if !emit(&agent.ToolCallChunk{CallID: tb.id, Name: tb.name, Arguments: args}) {
						return
					}
				}
			case sdk.MessageDeltaEvent:
				if !emit(&agent.UsageChunk{
					InputTokens:  ev.Usage.InputTokens,
					OutputTokens: ev.Usage.OutputTokens,
					TotalTokens:  ev.Usage.InputTokens + ev.Usage.OutputTokens,
				}) {
					return
				}
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			c.logger.Warn("anthropic stream failed",
				"task_id", input.TaskID, "agent", input.Agent, "error", err)
			emit(classifyError(err))
		}
	}()
	return out, nil
}

// Close implements agent.LLMClient. The underlying HTTP client holds no
// long-lived resources.
func (c *AnthropicClient) Close() error { return nil }

func (c *AnthropicClient) buildParams(input *agent.GenerateInput) (sdk.MessageNewParams, error) {
	maxTokens := input.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	params := sdk.MessageNewParams{
		Model:     sdk.Model(input.Config.Model),
		MaxTokens: int64(maxTokens),
	}
	if input.Temperature != nil {
		params.Temperature = sdk.Float(*input.Temperature)
	}

	system, messages, err := encodeAnthropicMessages(input.Messages)
	if err != nil {
		return sdk.MessageNewParams{}, err
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	params.Messages = messages

	if len(input.Tools) > 0 {
		toolParams, err := encodeAnthropicTools(input.Tools)
		if err != nil {
			return sdk.MessageNewParams{}, err
		}
		params.Tools = toolParams
	}
	return params, nil
}

// encodeAnthropicMessages splits out the system prompt and converts the
// remaining conversation to Anthropic message params. Consecutive tool result
// messages are coalesced into a single user message because the API requires
// all results for one assistant turn in the next message.
func encodeAnthropicMessages(msgs []agent.ConversationMessage) (string, []sdk.MessageParam, error) {
	var system strings.Builder
	var out []sdk.MessageParam
	var pendingResults []sdk.ContentBlockParamUnion

	flushResults := func() {
		if len(pendingResults) > 0 {
			out = append(out, sdk.NewUserMessage(pendingResults...))
			pendingResults = nil
		}
	}

	for _, m := range msgs {
		switch m.Role {
		case agent.RoleSystem:
			if system.Len() > 0 {
				system.WriteString("\n\n")
			}
			system.WriteString(m.Content)
		case agent.RoleUser:
			flushResults()
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		case agent.RoleAssistant:
			flushResults()
			var blocks []sdk.ContentBlockParamUnion
			if m.Content != "" {
				blocks = append(blocks, sdk.NewTextBlock(m.Content))
			}
			for _, tc := range m.ToolCalls {
				args := tc.Arguments
				if strings.TrimSpace(args) == "" {
					args = "{}"
				}
				blocks = append(blocks, sdk.NewToolUseBlock(tc.ID, json.RawMessage(args), tc.Name))
			}
			if len(blocks) == 0 {
				continue
			}
			out = append(out, sdk.NewAssistantMessage(blocks...))
		case agent.RoleTool:
			pendingResults = append(pendingResults, sdk.NewToolResultBlock(m.ToolCallID, m.Content, false))
		default:
			return "", nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}
	flushResults()
	return system.String(), out, nil
}

func encodeAnthropicTools(tools []agent.ToolDefinition) ([]sdk.ToolUnionParam, error) {
	out := make([]sdk.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		var schema map[string]any
		if strings.TrimSpace(t.ParametersSchema) != "" {
			if err := json.Unmarshal([]byte(t.ParametersSchema), &schema); err != nil {
				return nil, fmt.Errorf("invalid schema for tool %q: %w", t.Name, err)
			}
		}
		union := sdk.ToolUnionParamOfTool(sdk.ToolInputSchemaParam{ExtraFields: schema}, t.Name)
		if union.OfTool != nil && t.Description != "" {
			union.OfTool.Description = sdk.String(t.Description)
		}
		out = append(out, union)
	}
	return out, nil
}
