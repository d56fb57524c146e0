package agent

import (
	"context"

	"github.com/agentkube/investigator/pkg/config"
)

// LLMClient is the interface for streaming chat completions from a model
// provider. Implementations live in pkg/llm; tests substitute a scripted
// client.
type LLMClient interface {
	// Generate sends a conversation to the LLM and returns a stream of chunks.
	// The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases provider resources.
	Close() error
}

// GenerateInput is one streaming completion request.
type GenerateInput struct {
	TaskID      string
	TraceID     string
	Agent       string // agent name, for logging and scripted-client routing
	Messages    []ConversationMessage
	Config      *config.LLMProviderConfig
	Tools       []ToolDefinition // nil = no tools
	MaxTokens   int              // 0 = provider default
	Temperature *float64         // nil = provider default
}

// ConversationMessage is one turn of the conversation sent to the model.
type ConversationMessage struct {
	Role       string // "system", "user", "assistant", "tool"
	Content    string
	ToolCalls  []ToolCall // For assistant messages
	ToolCallID string     // For tool result messages
	ToolName   string     // For tool result messages
}

// Message role constants for ConversationMessage.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolDefinition describes a tool available to the LLM.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ToolCall represents an LLM's request to call a tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the LLM's text response.
type TextChunk struct{ Content string }

// ThinkingChunk is a chunk of the LLM's internal reasoning.
type ThinkingChunk struct{ Content string }

// ToolCallChunk signals the LLM wants to call a tool.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this LLM call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int64 }

// ErrorChunk signals an error from the LLM provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }
