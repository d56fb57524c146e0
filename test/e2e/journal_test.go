package e2e

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent/taskevent"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/services"
	testdb "github.com/agentkube/investigator/test/database"
)

// TestJournalDuplicateStep races two emitters over the same task and
// checks the (task_id, step_index) unique index settles the conflict:
// exactly one commit per slot, the losing write reported as success, and
// the journal stays dense.
func TestJournalDuplicateStep(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client)
	journal := services.NewEventService(client.Client)

	_, err := tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: "race-1", Prompt: "p"})
	require.NoError(t, err)

	// Two independent emitters, as after a daemon restart mid-stream.
	a := events.NewEmitter(client.DB())
	b := events.NewEmitter(client.DB())

	// a owns step 0 and believes step 1 is next.
	require.NoError(t, a.EmitTextDelta(ctx, "race-1", events.TextDeltaPayload{Text: "from a", Role: "assistant"}))

	// b primes from the journal tail and takes step 1.
	require.NoError(t, b.EmitAgentStarted(ctx, "race-1", events.AgentStartedPayload{AgentName: "supervisor"}))

	// a's stale counter collides on step 1; the emit must still report
	// success and drop the frame rather than corrupt the order.
	require.NoError(t, a.EmitTextDelta(ctx, "race-1", events.TextDeltaPayload{Text: "lost", Role: "assistant"}))

	// The collision unprimed a; its next emit realigns with the tail.
	require.NoError(t, a.EmitTextDelta(ctx, "race-1", events.TextDeltaPayload{Text: "from a again", Role: "assistant"}))

	rows, err := journal.ReadEventsSince(ctx, "race-1", -1)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, row := range rows {
		assert.Equal(t, i, row.StepIndex)
	}
	assert.Equal(t, taskevent.KindTextDelta, rows[0].Kind)
	assert.Equal(t, taskevent.KindAgentStarted, rows[1].Kind, "slot 1 belongs to the winning writer")
	assert.Equal(t, taskevent.KindTextDelta, rows[2].Kind)
	assert.Equal(t, "from a again", rows[2].Payload["text"])
}

// TestJournalConcurrentEmitters hammers one task from two emitters in
// parallel; every call must succeed and the journal must come out dense.
func TestJournalConcurrentEmitters(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client)
	journal := services.NewEventService(client.Client)

	_, err := tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: "race-2", Prompt: "p"})
	require.NoError(t, err)

	const perEmitter = 10
	emitters := []*events.Emitter{
		events.NewEmitter(client.DB()),
		events.NewEmitter(client.DB()),
	}

	var wg sync.WaitGroup
	errs := make([]error, len(emitters))
	for i, em := range emitters {
		wg.Add(1)
		go func(i int, em *events.Emitter) {
			defer wg.Done()
			for n := 0; n < perEmitter; n++ {
				if err := em.EmitTextDelta(ctx, "race-2", events.TextDeltaPayload{Text: "x", Role: "assistant"}); err != nil {
					errs[i] = err
					return
				}
			}
		}(i, em)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	rows, err := journal.ReadEventsSince(ctx, "race-2", -1)
	require.NoError(t, err)
	// Collisions drop frames but never leave holes.
	require.NotEmpty(t, rows)
	assert.LessOrEqual(t, len(rows), 2*perEmitter)
	for i, row := range rows {
		assert.Equal(t, i, row.StepIndex)
	}
}
