package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent/taskevent"
)

func TestPayloadMap(t *testing.T) {
	m, err := payloadMap(ToolCallRequestedPayload{
		CallID:    "call-1",
		ToolName:  "get_resource_yaml",
		Arguments: map[string]any{"kind": "Pod", "name": "api-0"},
		Title:     "Read YAML for Pod api-0",
	})
	require.NoError(t, err)

	assert.Equal(t, "call-1", m["call_id"])
	assert.Equal(t, "get_resource_yaml", m["tool_name"])
	assert.Equal(t, "Read YAML for Pod api-0", m["title"])
	assert.Equal(t, false, m["approval_required"])

	args, ok := m["arguments"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pod", args["kind"])
}

func TestPayloadMap_OmitsEmptyOptionalFields(t *testing.T) {
	m, err := payloadMap(ToolCallOutputPayload{
		CallID:  "call-2",
		Output:  "ok",
		Success: true,
	})
	require.NoError(t, err)

	assert.NotContains(t, m, "component", "empty component hint should be omitted")
	assert.Contains(t, m, "duration_ms", "duration is always present")
}

func TestTruncateIfNeeded_SmallFramePassesThrough(t *testing.T) {
	frame := Frame{
		StepIndex: 1,
		Kind:      taskevent.KindTextDelta,
		Timestamp: time.Now().UTC(),
		Payload:   map[string]any{"text": "short", "role": RoleAssistant},
	}
	frameJSON, err := json.Marshal(frame)
	require.NoError(t, err)

	out, err := truncateIfNeeded("task-1", frame, frameJSON)
	require.NoError(t, err)
	assert.Equal(t, string(frameJSON), out, "frames under the limit are sent verbatim")
}

func TestTruncateIfNeeded_OversizedFrameBecomesEnvelope(t *testing.T) {
	frame := Frame{
		StepIndex: 6,
		Kind:      taskevent.KindToolCallOutput,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		Payload: map[string]any{
			"call_id": "call-3",
			"output":  strings.Repeat("y", 9000),
			"success": true,
		},
	}
	frameJSON, err := json.Marshal(frame)
	require.NoError(t, err)
	require.Greater(t, len(frameJSON), notifyPayloadLimit)

	out, err := truncateIfNeeded("task-1", frame, frameJSON)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), notifyPayloadLimit)

	var envelope Frame
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.IsTruncated())
	assert.Equal(t, 6, envelope.StepIndex)
	assert.Equal(t, taskevent.KindToolCallOutput, envelope.Kind)
	assert.Equal(t, "task-1", envelope.Payload["task_id"])
	assert.NotContains(t, envelope.Payload, "output", "oversized fields are stripped from the envelope")
}
