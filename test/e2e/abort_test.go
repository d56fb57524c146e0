package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
)

// TestAbortMidInvestigation aborts a run stuck in an LLM call and checks
// the stream closes with error(cancelled) + done, the task lands in
// status cancelled, and the partial journal stays replayable.
func TestAbortMidInvestigation(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	app.LLM.AddBlockingTurn(config.AgentSupervisor)

	stream := app.Investigate(`{"prompt":"this will be aborted"}`)
	stream.Await("agent_started")

	status, resp := app.PostJSON("/api/v1/investigate/"+stream.TaskID+"/abort", "")
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, stream.TaskID, resp["task_id"])

	frames := stream.Drain()
	all := kinds(frames)
	require.GreaterOrEqual(t, len(all), 4)
	assert.Equal(t, "error", all[len(all)-2])
	assert.Equal(t, "done", all[len(all)-1])

	errFrame := frames[len(frames)-2]
	assert.Equal(t, "cancelled", errFrame["error_kind"])

	task := app.GetTask(stream.TaskID)
	assert.Equal(t, "cancelled", task["status"])

	// The journal written before the abort replays unchanged.
	replayed := app.Reconnect(stream.TaskID, -1).Drain()
	assert.Equal(t, kinds(frames), kinds(replayed))
	assert.Equal(t, steps(frames), steps(replayed))
	assertDenseFrom(t, replayed, 0)
}

// TestAbortFinishedTaskConflicts checks the abort endpoint distinguishes
// a finished task from an unknown one.
func TestAbortFinishedTaskConflicts(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	app.LLM.AddTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "## Summary\nDone already.\n\n## Remediation\nnone"})
	app.LLM.AddTurn("summarizer", &agent.TextChunk{Content: `{"title":"t2"}`})

	stream := app.Investigate(`{"prompt":"quick check"}`)
	stream.Drain()

	// The live session is deregistered just after done hits the wire.
	require.Eventually(t, func() bool {
		_, live := app.Sessions.Get(stream.TaskID)
		return !live
	}, frameTimeout, 10*time.Millisecond)

	status, _ := app.PostJSON("/api/v1/investigate/"+stream.TaskID+"/abort", "")
	assert.Equal(t, http.StatusConflict, status)

	status, _ = app.PostJSON("/api/v1/investigate/no-such-task/abort", "")
	assert.Equal(t, http.StatusNotFound, status)
}
