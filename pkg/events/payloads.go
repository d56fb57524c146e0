package events

import (
	"github.com/agentkube/investigator/pkg/models"
)

// TraceStartedPayload is the payload for trace_started frames.
// Always the first frame of an investigation.
type TraceStartedPayload struct {
	TraceID string `json:"trace_id"` // correlation ID for the run
}

// AgentStartedPayload is the payload for agent_started frames.
// Published when the supervisor or a specialist begins its loop.
type AgentStartedPayload struct {
	AgentName string `json:"agent_name"` // e.g. "supervisor", "log_analysis"
}

// AgentCompletedPayload is the payload for agent_completed frames.
type AgentCompletedPayload struct {
	AgentName  string `json:"agent_name"`
	DurationMS int64  `json:"duration_ms"`
	Turns      int    `json:"turns"` // LLM round-trips consumed
}

// TextDeltaPayload is the payload for text_delta frames — one incremental
// chunk of model output. High frequency; persisted so replay reproduces
// the typing effect.
type TextDeltaPayload struct {
	Text string `json:"text"`
	Role string `json:"role"` // "assistant" or "reasoning"
}

// ToolCallRequestedPayload is the payload for tool_call_requested frames.
// Published before any approval wait or execution starts.
type ToolCallRequestedPayload struct {
	CallID           string         `json:"call_id"`
	ToolName         string         `json:"tool_name"`
	Arguments        map[string]any `json:"arguments"`
	Title            string         `json:"title"`             // human-readable description of the call
	ApprovalRequired bool           `json:"approval_required"` // true only when the client must decide
	AgentName        string         `json:"agent_name,omitempty"`
}

// ToolCallApprovedPayload is the payload for tool_call_approved frames.
// Only emitted for gated calls; auto-approved tools skip straight to output.
type ToolCallApprovedPayload struct {
	CallID   string `json:"call_id"`
	UserNote string `json:"user_note,omitempty"`
}

// ToolCallRejectedPayload is the payload for tool_call_rejected frames.
type ToolCallRejectedPayload struct {
	CallID   string `json:"call_id"`
	UserNote string `json:"user_note,omitempty"`
}

// ToolCallOutputPayload is the payload for tool_call_output frames.
// Output carries the full untruncated result: a plain string, or decoded
// JSON when the tool returned a structured object the UI can render
// through the Component hint. Only the copy fed back to the model is
// truncated.
type ToolCallOutputPayload struct {
	CallID     string `json:"call_id"`
	Output     any    `json:"output"`
	Success    bool   `json:"success"`
	DurationMS int64  `json:"duration_ms"`
	Component  string `json:"component,omitempty"` // UI rendering hint
}

// TodoUpdatedPayload is the payload for todo_updated frames. Always the
// full list, never a diff.
type TodoUpdatedPayload struct {
	Todos []models.Todo `json:"todos"`
}

// SubTaskAddedPayload is the payload for subtask_added frames — the
// structured digest of a finished specialist run.
type SubTaskAddedPayload struct {
	SubTaskID string           `json:"subtask_id"`
	Subject   string           `json:"subject"`
	Status    int              `json:"status"` // open issue count, 0 = clean
	Reason    string           `json:"reason,omitempty"`
	Goal      string           `json:"goal,omitempty"`
	Plan      []map[string]any `json:"plan,omitempty"`
	Discovery string           `json:"discovery,omitempty"`
	AgentName string           `json:"agent_name"`
}

// InvestigationCompletedPayload is the payload for investigation_completed
// frames, published right before done on the success path.
type InvestigationCompletedPayload struct {
	Summary     string   `json:"summary"`
	Remediation string   `json:"remediation"`
	Title       string   `json:"title,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Severity    string   `json:"severity,omitempty"`
}

// ErrorPayload is the payload for error frames.
type ErrorPayload struct {
	ErrorKind ErrorKind `json:"error_kind"`
	Message   string    `json:"message"`
	CallID    string    `json:"call_id,omitempty"` // set for tool-scoped errors
}

// DonePayload is the payload for done frames — the stream terminator.
// Intentionally empty; the frame's presence is the signal.
type DonePayload struct{}
