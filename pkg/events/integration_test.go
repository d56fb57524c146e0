package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent/taskevent"
	"github.com/agentkube/investigator/pkg/database"
	"github.com/agentkube/investigator/pkg/services"
	testdb "github.com/agentkube/investigator/test/database"
	"github.com/agentkube/investigator/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	emitter      *Emitter
	eventService *services.EventService
	hub          *Hub
	listener     *NotifyListener
	taskID       string // Pre-created Task (satisfies FK on task_events)
	channel      string // task:<taskID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create the Task required by the FK on task_events
	taskID := uuid.New().String()
	_, err := dbClient.Task.Create().
		SetID(taskID).
		SetPrompt("integration test prompt").
		Save(ctx)
	require.NoError(t, err)

	emitter := NewEmitter(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	hub := NewHub()

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, hub)
	require.NoError(t, listener.Start(ctx))
	hub.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &streamingTestEnv{
		dbClient:     dbClient,
		emitter:      emitter,
		eventService: eventService,
		hub:          hub,
		listener:     listener,
		taskID:       taskID,
		channel:      TaskChannel(taskID),
	}
}

// subscribeAndWait subscribes to the env's channel and waits for the
// LISTEN to propagate to the dedicated PG connection.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *Subscriber {
	t.Helper()

	sub, err := env.hub.Subscribe(context.Background(), env.channel)
	require.NoError(t, err)
	t.Cleanup(func() { env.hub.Unsubscribe(sub) })

	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return sub
}

// readFrameTimeout reads one frame from a subscriber with a timeout.
func readFrameTimeout(t *testing.T, sub *Subscriber, timeout time.Duration) Frame {
	t.Helper()
	select {
	case payload, ok := <-sub.Events():
		require.True(t, ok, "subscriber channel closed unexpectedly")
		var frame Frame
		require.NoError(t, json.Unmarshal(payload, &frame))
		return frame
	case <-time.After(timeout):
		t.Fatal("timed out waiting for frame")
		return Frame{}
	}
}

// --- Tests ---

func TestIntegration_EmitterAssignsDenseStepIndexes(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	require.NoError(t, env.emitter.EmitTraceStarted(ctx, env.taskID, TraceStartedPayload{TraceID: "trace-1"}))
	require.NoError(t, env.emitter.EmitAgentStarted(ctx, env.taskID, AgentStartedPayload{AgentName: "supervisor"}))
	require.NoError(t, env.emitter.EmitTextDelta(ctx, env.taskID, TextDeltaPayload{Text: "looking", Role: RoleAssistant}))

	events, err := env.eventService.ReadEventsSince(ctx, env.taskID, -1)
	require.NoError(t, err)
	require.Len(t, events, 3)

	for i, ev := range events {
		assert.Equal(t, i, ev.StepIndex, "step indexes must be dense from 0")
	}
	assert.Equal(t, taskevent.KindTraceStarted, events[0].Kind)
	assert.Equal(t, taskevent.KindAgentStarted, events[1].Kind)
	assert.Equal(t, taskevent.KindTextDelta, events[2].Kind)
	assert.Equal(t, "trace-1", events[0].Payload["trace_id"])

	last, err := env.eventService.LastStepIndex(ctx, env.taskID)
	require.NoError(t, err)
	assert.Equal(t, 2, last)
}

func TestIntegration_DuplicateAppendReportsSuccess(t *testing.T) {
	// Two emitters on the same task model two processes racing on one
	// journal. The loser of a step-index collision must report success,
	// leave exactly one row in the slot, and realign on its next emit.
	env := setupStreamingTest(t)
	ctx := context.Background()

	other := NewEmitter(env.dbClient.DB())

	// env.emitter takes step 0, other primes from the tail and takes step 1.
	require.NoError(t, env.emitter.EmitTextDelta(ctx, env.taskID, TextDeltaPayload{Text: "a", Role: RoleAssistant}))
	require.NoError(t, other.EmitTextDelta(ctx, env.taskID, TextDeltaPayload{Text: "b", Role: RoleAssistant}))

	// env.emitter still believes step 1 is free — this append collides,
	// reports success, and drops the frame.
	require.NoError(t, env.emitter.EmitTextDelta(ctx, env.taskID, TextDeltaPayload{Text: "lost", Role: RoleAssistant}))

	// After realigning it lands on step 2.
	require.NoError(t, env.emitter.EmitTextDelta(ctx, env.taskID, TextDeltaPayload{Text: "c", Role: RoleAssistant}))

	events, err := env.eventService.ReadEventsSince(ctx, env.taskID, -1)
	require.NoError(t, err)
	require.Len(t, events, 3, "the colliding frame must not create a fourth row")

	texts := make([]string, 0, len(events))
	for i, ev := range events {
		assert.Equal(t, i, ev.StepIndex)
		texts = append(texts, ev.Payload["text"].(string))
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts, "the slot keeps the winner's content")
}

func TestIntegration_EmitDeliversToSubscriber(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	sub := env.subscribeAndWait(t)

	require.NoError(t, env.emitter.EmitToolCallRequested(ctx, env.taskID, ToolCallRequestedPayload{
		CallID:    "call-1",
		ToolName:  "get_resource_yaml",
		Arguments: map[string]any{"kind": "Pod", "name": "api-0"},
		Title:     "Read YAML for Pod api-0",
	}))

	frame := readFrameTimeout(t, sub, 5*time.Second)
	assert.Equal(t, 0, frame.StepIndex)
	assert.Equal(t, taskevent.KindToolCallRequested, frame.Kind)
	assert.Equal(t, "call-1", frame.Payload["call_id"])
	assert.Equal(t, "Read YAML for Pod api-0", frame.Payload["title"])
	assert.False(t, frame.IsTruncated())
}

func TestIntegration_ReplayMatchesLiveDelivery(t *testing.T) {
	// A replayed journal row must serialize to the same JSON a live
	// subscriber received for that step.
	env := setupStreamingTest(t)
	ctx := context.Background()

	sub := env.subscribeAndWait(t)

	require.NoError(t, env.emitter.EmitTextDelta(ctx, env.taskID, TextDeltaPayload{Text: "pods look healthy", Role: RoleAssistant}))

	var live []byte
	select {
	case live = <-sub.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for live frame")
	}

	events, err := env.eventService.ReadEventsSince(ctx, env.taskID, -1)
	require.NoError(t, err)
	require.Len(t, events, 1)

	replayed, err := json.Marshal(FrameFromRow(events[0]))
	require.NoError(t, err)
	assert.JSONEq(t, string(live), string(replayed))
}

func TestIntegration_OversizedFrameArrivesAsEnvelope(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	sub := env.subscribeAndWait(t)

	bigOutput := strings.Repeat("log line\n", 2000)
	require.NoError(t, env.emitter.EmitToolCallOutput(ctx, env.taskID, ToolCallOutputPayload{
		CallID:     "call-big",
		Output:     bigOutput,
		Success:    true,
		DurationMS: 42,
	}))

	// Live delivery shrinks to the envelope…
	frame := readFrameTimeout(t, sub, 5*time.Second)
	assert.True(t, frame.IsTruncated())
	assert.Equal(t, 0, frame.StepIndex)
	assert.Equal(t, taskevent.KindToolCallOutput, frame.Kind)
	assert.Equal(t, env.taskID, frame.Payload["task_id"])

	// …while the journal keeps the full frame.
	ev, err := env.eventService.GetEvent(ctx, env.taskID, 0)
	require.NoError(t, err)
	assert.Equal(t, bigOutput, ev.Payload["output"])
}

func TestIntegration_CounterReconcilesAfterRestart(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	require.NoError(t, env.emitter.EmitTraceStarted(ctx, env.taskID, TraceStartedPayload{TraceID: "trace-r"}))
	require.NoError(t, env.emitter.EmitTextDelta(ctx, env.taskID, TextDeltaPayload{Text: "x", Role: RoleAssistant}))

	// A fresh emitter stands in for a restarted daemon: it must pick up
	// at the persisted tail, not restart from 0.
	restarted := NewEmitter(env.dbClient.DB())
	require.NoError(t, restarted.EmitDone(ctx, env.taskID))

	events, err := env.eventService.ReadEventsSince(ctx, env.taskID, -1)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 2, events[2].StepIndex)
	assert.Equal(t, taskevent.KindDone, events[2].Kind)
}

func TestIntegration_ForgetReleasesCounter(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	require.NoError(t, env.emitter.EmitTraceStarted(ctx, env.taskID, TraceStartedPayload{TraceID: "trace-f"}))
	env.emitter.Forget(env.taskID)

	// Re-priming from the journal continues the sequence.
	require.NoError(t, env.emitter.EmitDone(ctx, env.taskID))

	last, err := env.eventService.LastStepIndex(ctx, env.taskID)
	require.NoError(t, err)
	assert.Equal(t, 1, last)
}
