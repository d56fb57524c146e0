package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent"
	"github.com/agentkube/investigator/ent/taskevent"
	"github.com/agentkube/investigator/pkg/database"
	"github.com/agentkube/investigator/pkg/models"
)

func setupEventService(t *testing.T) (*database.Client, *EventService, string) {
	t.Helper()
	client, taskSvc := setupTaskService(t)

	taskID := uuid.New().String()
	_, err := taskSvc.CreateTask(context.Background(), models.CreateTaskRequest{
		TaskID: taskID,
		Prompt: "investigate",
	})
	require.NoError(t, err)

	return client, NewEventService(client.Client), taskID
}

func appendTestEvent(t *testing.T, client *database.Client, taskID string, step int, kind taskevent.Kind) {
	t.Helper()
	err := client.TaskEvent.Create().
		SetTaskID(taskID).
		SetStepIndex(step).
		SetKind(kind).
		SetPayload(map[string]any{"seq": step}).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestEventService_ReadEventsSince(t *testing.T) {
	client, svc, taskID := setupEventService(t)
	ctx := context.Background()

	kinds := []taskevent.Kind{
		taskevent.KindTraceStarted,
		taskevent.KindAgentStarted,
		taskevent.KindTextDelta,
		taskevent.KindAgentCompleted,
		taskevent.KindDone,
	}
	for i, kind := range kinds {
		appendTestEvent(t, client, taskID, i, kind)
	}

	t.Run("full replay", func(t *testing.T) {
		evs, err := svc.ReadEventsSince(ctx, taskID, -1)
		require.NoError(t, err)
		require.Len(t, evs, len(kinds))
		for i, ev := range evs {
			assert.Equal(t, i, ev.StepIndex)
			assert.Equal(t, kinds[i], ev.Kind)
		}
	})

	t.Run("suffix after reconnect", func(t *testing.T) {
		evs, err := svc.ReadEventsSince(ctx, taskID, 2)
		require.NoError(t, err)
		require.Len(t, evs, 2)
		assert.Equal(t, 3, evs[0].StepIndex)
		assert.Equal(t, 4, evs[1].StepIndex)
	})

	t.Run("past the end", func(t *testing.T) {
		evs, err := svc.ReadEventsSince(ctx, taskID, 99)
		require.NoError(t, err)
		assert.Empty(t, evs)
	})

	t.Run("unknown task yields empty, not error", func(t *testing.T) {
		evs, err := svc.ReadEventsSince(ctx, uuid.New().String(), -1)
		require.NoError(t, err)
		assert.Empty(t, evs)
	})
}

func TestEventService_GetEvent(t *testing.T) {
	client, svc, taskID := setupEventService(t)
	ctx := context.Background()

	appendTestEvent(t, client, taskID, 0, taskevent.KindTraceStarted)

	ev, err := svc.GetEvent(ctx, taskID, 0)
	require.NoError(t, err)
	assert.Equal(t, taskevent.KindTraceStarted, ev.Kind)
	assert.Equal(t, float64(0), ev.Payload["seq"])

	_, err = svc.GetEvent(ctx, taskID, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_LastStepIndex(t *testing.T) {
	client, svc, taskID := setupEventService(t)
	ctx := context.Background()

	last, err := svc.LastStepIndex(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, -1, last)

	for i := 0; i < 4; i++ {
		appendTestEvent(t, client, taskID, i, taskevent.KindTextDelta)
	}

	last, err = svc.LastStepIndex(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, 3, last)
}

func TestEventService_DuplicateStepRejectedByIndex(t *testing.T) {
	client, _, taskID := setupEventService(t)
	ctx := context.Background()

	appendTestEvent(t, client, taskID, 0, taskevent.KindTraceStarted)

	err := client.TaskEvent.Create().
		SetTaskID(taskID).
		SetStepIndex(0).
		SetKind(taskevent.KindTextDelta).
		SetPayload(map[string]any{}).
		Exec(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err), fmt.Sprintf("expected constraint error, got %v", err))
}
