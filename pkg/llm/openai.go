package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/agentkube/investigator/pkg/agent"
)

// OpenAIClient streams chat completions from an OpenAI-compatible API.
// It serves both the openai and xai provider types; the latter only differs
// in base URL.
type OpenAIClient struct {
	client openai.Client
	logger *slog.Logger
}

// NewOpenAIClient builds a client for an OpenAI-compatible chat completions
// endpoint. baseURL is optional; apiKey is required.
func NewOpenAIClient(apiKey, baseURL string, logger *slog.Logger) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{
		client: openai.NewClient(opts...),
		logger: logger.With("component", "llm.openai"),
	}
}

// Generate implements agent.LLMClient.
func (c *OpenAIClient) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	params, err := c.buildParams(input)
	if err != nil {
		return nil, fmt.Errorf("failed to build openai request: %w", err)
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)

	out := make(chan agent.Chunk, 32)
	go func() {
		defer close(out)
		defer func() { _ = stream.Close() }()

		emit := func(chunk agent.Chunk) bool {
			select {
			case out <- chunk:
				return true
			case <-ctx.Done():
				return false
			}
		}

		// Text is forwarded live; tool calls arrive fragmented across chunks,
		// so they are read from the accumulator once the stream ends.
		acc := openai.ChatCompletionAccumulator{}
		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)
			if len(chunk.Choices) == 0 {
				continue
			}
			if text := chunk.Choices[0].Delta.Content; text != "" {
				if !emit(&agent.TextChunk{Content: text}) {
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			if ctx.Err() == nil {
				c.logger.Warn("openai stream failed",
					"task_id", input.TaskID, "agent", input.Agent, "error", err)
				emit(classifyError(err))
			}
			return
		}

		if len(acc.Choices) > 0 {
			for _, tc := range acc.Choices[0].Message.ToolCalls {
				args := tc.Function.Arguments
				if strings.TrimSpace(args) == "" {
					args = "{}"
				}
				if !emit(&agent.ToolCallChunk{CallID: tc.ID, Name: tc.Function.Name, Arguments: args}) {
					return
				}
			}
		}
		if acc.Usage.TotalTokens > 0 {
			emit(&agent.UsageChunk{
				InputTokens:  acc.Usage.PromptTokens,
				OutputTokens: acc.Usage.CompletionTokens,
				TotalTokens:  acc.Usage.TotalTokens,
			})
		}
	}()
	return out, nil
}

// Close implements agent.LLMClient.
func (c *OpenAIClient) Close() error { return nil }

func (c *OpenAIClient) buildParams(input *agent.GenerateInput) (openai.ChatCompletionNewParams, error) {
	messages, err := encodeOpenAIMessages(input.Messages)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}
	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(input.Config.Model),
		Messages: messages,
	}
	if input.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(input.MaxTokens))
	}
	if input.Temperature != nil {
		params.Temperature = openai.Float(*input.Temperature)
	}
	if len(input.Tools) > 0 {
		tools, err := encodeOpenAITools(input.Tools)
		if err != nil {
			return openai.ChatCompletionNewParams{}, err
		}
		params.Tools = tools
	}
	return params, nil
}

func encodeOpenAIMessages(msgs []agent.ConversationMessage) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case agent.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case agent.RoleUser:
			out = append(out, openai.UserMessage(m.Content))
		case agent.RoleAssistant:
			if len(m.ToolCalls) == 0 {
				out = append(out, openai.AssistantMessage(m.Content))
				continue
			}
			assistant := openai.ChatCompletionAssistantMessageParam{}
			if m.Content != "" {
				assistant.Content.OfString = openai.String(m.Content)
			}
			for _, tc := range m.ToolCalls {
				args := tc.Arguments
				if strings.TrimSpace(args) == "" {
					args = "{}"
				}
				assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      tc.Name,
							Arguments: args,
						},
					},
				})
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
		case agent.RoleTool:
			out = append(out, openai.ToolMessage(m.Content, m.ToolCallID))
		default:
			return nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}
	return out, nil
}

func encodeOpenAITools(tools []agent.ToolDefinition) ([]openai.ChatCompletionToolUnionParam, error) {
	out := make([]openai.ChatCompletionToolUnionParam, 0, len(tools))
	for _, t := range tools {
		var schema map[string]any
		if strings.TrimSpace(t.ParametersSchema) != "" {
			if err := json.Unmarshal([]byte(t.ParametersSchema), &schema); err != nil {
				return nil, fmt.Errorf("invalid schema for tool %q: %w", t.Name, err)
			}
		}
		def := shared.FunctionDefinitionParam{Name: t.Name}
		if t.Description != "" {
			def.Description = openai.String(t.Description)
		}
		if schema != nil {
			def.Parameters = shared.FunctionParameters(schema)
		}
		out = append(out, openai.ChatCompletionFunctionTool(def))
	}
	return out, nil
}
