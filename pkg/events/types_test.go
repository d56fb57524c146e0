package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent"
	"github.com/agentkube/investigator/ent/taskevent"
)

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
}

func TestFrame_MarshalFlattensPayload(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	frame := Frame{
		StepIndex: 7,
		Kind:      taskevent.KindTextDelta,
		Timestamp: ts,
		Payload:   map[string]any{"text": "checking pods", "role": "assistant"},
	}

	data, err := json.Marshal(frame)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, float64(7), m["step_index"])
	assert.Equal(t, "text_delta", m["kind"])
	assert.Equal(t, ts.Format(time.RFC3339Nano), m["timestamp"])
	assert.Equal(t, "checking pods", m["text"], "payload fields should sit at the top level")
	assert.Equal(t, "assistant", m["role"])
	assert.NotContains(t, m, "payload", "no nested payload object on the wire")
}

func TestFrame_MarshalRoundTrip(t *testing.T) {
	original := Frame{
		StepIndex: 3,
		Kind:      taskevent.KindToolCallOutput,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		Payload: map[string]any{
			"call_id": "call-1",
			"output":  "NAME READY STATUS",
			"success": true,
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var parsed Frame
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, original.StepIndex, parsed.StepIndex)
	assert.Equal(t, original.Kind, parsed.Kind)
	assert.True(t, original.Timestamp.Equal(parsed.Timestamp))
	assert.Equal(t, "call-1", parsed.Payload["call_id"])
	assert.Equal(t, true, parsed.Payload["success"])
	assert.NotContains(t, parsed.Payload, "step_index", "frame fields must not leak into the payload")
	assert.NotContains(t, parsed.Payload, "kind")
	assert.NotContains(t, parsed.Payload, "timestamp")
}

func TestFrame_MarshalEmptyPayload(t *testing.T) {
	frame := Frame{
		StepIndex: 12,
		Kind:      taskevent.KindDone,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(frame)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Len(t, m, 3, "done frames carry only the frame fields")
}

func TestFrame_IsTruncated(t *testing.T) {
	full := Frame{Payload: map[string]any{"output": "x"}}
	assert.False(t, full.IsTruncated())

	envelope := Frame{Payload: map[string]any{"task_id": "t1", "truncated": true}}
	assert.True(t, envelope.IsTruncated())
}

func TestFrameFromRow(t *testing.T) {
	ts := time.Now().UTC().Truncate(time.Microsecond)
	row := &ent.TaskEvent{
		TaskID:    "task-1",
		StepIndex: 4,
		Kind:      taskevent.KindAgentStarted,
		Payload:   map[string]any{"agent_name": "supervisor"},
		CreatedAt: ts,
	}

	frame := FrameFromRow(row)
	assert.Equal(t, 4, frame.StepIndex)
	assert.Equal(t, taskevent.KindAgentStarted, frame.Kind)
	assert.True(t, ts.Equal(frame.Timestamp))
	assert.Equal(t, "supervisor", frame.Payload["agent_name"])
}

func TestFrameFromRow_NilPayload(t *testing.T) {
	row := &ent.TaskEvent{
		TaskID:    "task-1",
		StepIndex: 9,
		Kind:      taskevent.KindDone,
		CreatedAt: time.Now(),
	}

	frame := FrameFromRow(row)
	require.NotNil(t, frame.Payload)

	// A done row with no payload must still marshal cleanly.
	_, err := json.Marshal(frame)
	assert.NoError(t, err)
}
