package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
)

// TestGatedToolApproved walks the full approval round trip: the stream
// blocks on a gated run_shell call until the operator approves it over
// the approval endpoint, then the command runs exactly once.
func TestGatedToolApproved(t *testing.T) {
	app := NewTestApp(t)

	const cmd = "kubectl -n default delete pod payments-0"
	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.ToolCallChunk{CallID: "call-1", Name: "run_shell", Arguments: `{"cmd":"` + cmd + `"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "## Summary\nPod deleted.\n\n## Remediation\nnone"})
	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t2"}`})

	stream := app.Investigate(`{"prompt":"delete the stuck pod"}`)

	requested := stream.Await("tool_call_requested")
	assert.Equal(t, "run_shell", requested["tool_name"])
	assert.Equal(t, true, requested["approval_required"])
	callID, _ := requested["call_id"].(string)
	require.NotEmpty(t, callID)

	app.Approve(stream.TaskID, callID, "approve", "go ahead")

	frames := stream.Drain()
	all := kinds(frames)
	assert.Equal(t, []string{
		"trace_started",
		"agent_started",
		"tool_call_requested",
		"tool_call_approved",
		"tool_call_output",
		"text_delta",
		"agent_completed",
		"investigation_completed",
		"done",
	}, all)
	assertDenseFrom(t, frames, 0)

	approved := frames[3]
	assert.Equal(t, callID, approved["call_id"])
	assert.Equal(t, "go ahead", approved["user_note"])

	output := frames[4]
	assert.Equal(t, callID, output["call_id"])
	assert.Equal(t, true, output["success"])

	assert.Equal(t, []string{cmd}, app.Shell.Commands())
	assert.Equal(t, "completed", app.GetTask(stream.TaskID)["status"])
}

// TestGatedToolRejected verifies that a rejection feeds a failed output
// back to the model, which replans and still completes the investigation.
func TestGatedToolRejected(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.ToolCallChunk{CallID: "call-1", Name: "run_shell", Arguments: `{"cmd":"kubectl delete ns prod"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "## Summary\nThe command was not run.\n\n## Remediation\nDelete the namespace manually if intended."})
	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t2"}`})

	stream := app.Investigate(`{"prompt":"clean up prod"}`)

	requested := stream.Await("tool_call_requested")
	callID, _ := requested["call_id"].(string)
	app.Approve(stream.TaskID, callID, "reject", "too risky")

	frames := stream.Drain()
	all := kinds(frames)
	assert.Contains(t, all, "tool_call_rejected")
	assert.NotContains(t, all, "tool_call_approved")

	rejected := frames[3]
	assert.Equal(t, "tool_call_rejected", rejected["kind"])
	assert.Equal(t, callID, rejected["call_id"])
	assert.Equal(t, "too risky", rejected["user_note"])

	output := frames[4]
	assert.Equal(t, "tool_call_output", output["kind"])
	assert.Equal(t, false, output["success"])
	assert.Equal(t, "user rejected execution", output["output"])

	assert.Empty(t, app.Shell.Commands())
	assert.Equal(t, "done", all[len(all)-1])
	assert.Equal(t, "completed", app.GetTask(stream.TaskID)["status"])
}

// TestApprovalForSession verifies the session-wide allow-set: once a tool
// is approved for the session, later calls skip the gate entirely.
func TestApprovalForSession(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.ToolCallChunk{CallID: "call-1", Name: "run_shell", Arguments: `{"cmd":"kubectl get nodes"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.ToolCallChunk{CallID: "call-2", Name: "run_shell", Arguments: `{"cmd":"kubectl top nodes"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "## Summary\nNodes look fine.\n\n## Remediation\nnone"})
	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t2"}`})

	stream := app.Investigate(`{"prompt":"check the nodes"}`)

	first := stream.Await("tool_call_requested")
	assert.Equal(t, true, first["approval_required"])
	callID, _ := first["call_id"].(string)
	app.Approve(stream.TaskID, callID, "approve_for_session", "")

	frames := stream.Drain()

	var requested []map[string]any
	approvals := 0
	for _, f := range frames {
		switch f["kind"] {
		case "tool_call_requested":
			requested = append(requested, f)
		case "tool_call_approved":
			approvals++
		}
	}
	require.Len(t, requested, 2)
	assert.Equal(t, false, requested[1]["approval_required"], "second call must skip the gate")
	assert.Equal(t, 1, approvals, "only the first call goes through the broker")
	assert.Len(t, app.Shell.Commands(), 2)
}
