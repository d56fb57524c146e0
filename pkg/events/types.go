// Package events provides the per-task event stream: durable append to
// the task_events journal plus real-time delivery via PostgreSQL
// NOTIFY/LISTEN and in-process fan-out to SSE subscribers.
//
// Every frame a client sees — live or replayed — is one JSON object:
//
//	{"step_index": N, "kind": "...", "timestamp": "...", ...payload}
//
// step_index is a dense per-task ordinal starting at 0. The Emitter
// assigns it, persists the frame, and broadcasts it in a single
// transaction, so the journal and the live stream can never disagree
// about ordering. Replaying rows with step_index > N reproduces exactly
// what a live subscriber connected from the start would have seen after
// frame N.
//
// NOTIFY payloads are capped by PostgreSQL at 8000 bytes. Frames that
// exceed the cap are broadcast as a truncation envelope
// ({task_id, step_index, kind, truncated: true}); the SSE layer resolves
// envelopes back to full frames from the journal before writing them to
// clients.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/agentkube/investigator/ent"
	"github.com/agentkube/investigator/ent/taskevent"
)

// TaskChannel returns the NOTIFY channel name for a task's event stream.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// Roles for text_delta frames.
const (
	RoleAssistant = "assistant"
	RoleReasoning = "reasoning"
)

// ErrorKind classifies error frames and API error bodies. The set is
// closed; clients switch on it.
type ErrorKind string

const (
	ErrorKindInvalidRequest   ErrorKind = "invalid_request"
	ErrorKindToolNotFound     ErrorKind = "tool_not_found"
	ErrorKindToolTimeout      ErrorKind = "tool_timeout"
	ErrorKindToolFailed       ErrorKind = "tool_failed"
	ErrorKindApprovalRejected ErrorKind = "approval_rejected"
	ErrorKindCancelled        ErrorKind = "cancelled"
	ErrorKindLLM              ErrorKind = "llm_error"
	ErrorKindStore            ErrorKind = "store_error"
	ErrorKindMaxTurns         ErrorKind = "max_turns_exceeded"
)

// Frame is the canonical in-memory form of one stream event. On the wire
// the payload fields are flattened into the top-level object alongside
// step_index, kind and timestamp.
type Frame struct {
	StepIndex int
	Kind      taskevent.Kind
	Timestamp time.Time
	Payload   map[string]any
}

// reservedFrameKeys are the top-level keys owned by the frame itself;
// payload fields must not collide with them.
var reservedFrameKeys = []string{"step_index", "kind", "timestamp"}

// MarshalJSON flattens the payload into the top-level object.
func (f Frame) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(f.Payload)+3)
	for k, v := range f.Payload {
		m[k] = v
	}
	m["step_index"] = f.StepIndex
	m["kind"] = f.Kind
	m["timestamp"] = f.Timestamp.UTC().Format(time.RFC3339Nano)
	return json.Marshal(m)
}

// UnmarshalJSON is the inverse of MarshalJSON: frame fields are lifted
// out of the object and the remainder becomes the payload.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	if v, ok := m["step_index"].(float64); ok {
		f.StepIndex = int(v)
	}
	if v, ok := m["kind"].(string); ok {
		f.Kind = taskevent.Kind(v)
	}
	if v, ok := m["timestamp"].(string); ok {
		ts, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return fmt.Errorf("invalid frame timestamp %q: %w", v, err)
		}
		f.Timestamp = ts
	}
	for _, k := range reservedFrameKeys {
		delete(m, k)
	}
	f.Payload = m
	return nil
}

// IsTruncated reports whether the frame is a NOTIFY truncation envelope
// rather than a full frame.
func (f Frame) IsTruncated() bool {
	v, ok := f.Payload["truncated"].(bool)
	return ok && v
}

// FrameFromRow rebuilds the wire frame for a persisted journal row.
func FrameFromRow(ev *ent.TaskEvent) Frame {
	payload := ev.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return Frame{
		StepIndex: ev.StepIndex,
		Kind:      ev.Kind,
		Timestamp: ev.CreatedAt,
		Payload:   payload,
	}
}
