package agent

import (
	"context"

	"github.com/agentkube/investigator/pkg/events"
)

// ToolGateway abstracts the tool catalog for the runtime loop. The real
// implementation (pkg/tools.Gateway) scopes a shared registry to one agent's
// tool set and binds the per-investigation capabilities.
type ToolGateway interface {
	// ListTools returns the tool definitions this agent may call.
	ListTools(ctx context.Context) ([]ToolDefinition, error)

	// Meta returns approval and rendering metadata for a tool.
	// ok=false means the tool is unknown to this agent.
	Meta(name string) (ToolMeta, bool)

	// Describe renders a one-line human title for a call, for approval
	// cards and the live stream. arguments is the raw JSON from the model.
	Describe(name string, arguments string) string

	// Execute runs a single tool call and returns the result. Tool-level
	// failures (unknown tool, bad arguments, timeout, invoker error) are
	// reported inside the result, not as a Go error.
	Execute(ctx context.Context, call ToolCall) (*ToolResult, error)
}

// ToolMeta is the per-tool metadata the runtime needs before execution.
type ToolMeta struct {
	Gated     bool   // requires operator approval unless session-approved
	Component string // ui_component hint, "" when the output renders as plain text
}

// ToolResult represents the output of a tool execution.
type ToolResult struct {
	CallID    string           // Matches the ToolCall.ID
	Name      string           // Tool name
	Content   string           // Tool output (text), or the error message
	IsError   bool             // Whether the tool failed
	ErrorKind events.ErrorKind // Set when IsError: tool_not_found, tool_timeout or tool_failed
}
