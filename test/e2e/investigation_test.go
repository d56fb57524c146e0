package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
)

// TestInvestigationHappyPath drives one investigation through the real
// HTTP/SSE stack: auto-approved tool call, final report, task patched.
func TestInvestigationHappyPath(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"Pods in default"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.ToolCallChunk{CallID: "call-1", Name: "list_resources", Arguments: `{"kind":"Pod","namespace":"default"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "## Summary\n2 pods\n\n## Remediation\nnone"})
	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"Pod listing","tags":["pods"],"severity":"info"}`})

	stream := app.Investigate(`{"prompt":"how many pods are in default?"}`)
	frames := stream.Drain()

	assert.Equal(t, []string{
		"trace_started",
		"agent_started",
		"tool_call_requested",
		"tool_call_output",
		"text_delta",
		"agent_completed",
		"investigation_completed",
		"done",
	}, kinds(frames))
	assertDenseFrom(t, frames, 0)

	requested := frames[2]
	assert.Equal(t, "list_resources", requested["tool_name"])
	assert.Equal(t, false, requested["approval_required"])
	assert.Equal(t, "call-1", requested["call_id"])

	output := frames[3]
	assert.Equal(t, "call-1", output["call_id"])
	assert.Equal(t, true, output["success"])
	assert.Equal(t, "payments-0\npayments-1", output["output"])
	assert.Equal(t, "resource_table", output["component"])

	completed := frames[6]
	assert.Equal(t, "2 pods", completed["summary"])
	assert.Equal(t, "none", completed["remediation"])

	task := app.GetTask(stream.TaskID)
	assert.Equal(t, "completed", task["status"])
	assert.Equal(t, "2 pods", task["summary"])
	assert.Equal(t, "none", task["remediation"])
	assert.Equal(t, "Pod listing", task["title"])

	// Session deregistration happens right after done reaches the wire.
	require.Eventually(t, func() bool {
		_, live := app.Sessions.Get(stream.TaskID)
		return !live
	}, frameTimeout, 10*time.Millisecond)
}

// TestReconnectReplay verifies that the replay endpoint reproduces exactly
// what the live subscriber saw, both in full and from an offset.
func TestReconnectReplay(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "Checking the cluster."},
		&agent.ToolCallChunk{CallID: "call-1", Name: "list_resources", Arguments: `{"kind":"Pod"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "## Summary\nAll pods healthy.\n\n## Remediation\nnone"})
	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t2"}`})

	stream := app.Investigate(`{"prompt":"check the cluster"}`)
	live := stream.Drain()
	require.Equal(t, "done", live[len(live)-1]["kind"])

	t.Run("full replay matches live", func(t *testing.T) {
		replayed := app.Reconnect(stream.TaskID, -1).Drain()
		assert.Equal(t, kinds(live), kinds(replayed))
		assert.Equal(t, steps(live), steps(replayed))
		assertDenseFrom(t, replayed, 0)
	})

	t.Run("offset replay resumes after prefix", func(t *testing.T) {
		replayed := app.Reconnect(stream.TaskID, 2).Drain()
		assert.Equal(t, kinds(live[3:]), kinds(replayed))
		assert.Equal(t, steps(live[3:]), steps(replayed))
		assertDenseFrom(t, replayed, 3)
	})
}
