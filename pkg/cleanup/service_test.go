package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/ent/taskevent"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/database"
	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/services"
	testdb "github.com/agentkube/investigator/test/database"
)

func setupTaskService(t *testing.T) (*database.Client, *services.TaskService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewTaskService(client.Client)
}

func createTask(t *testing.T, svc *services.TaskService) string {
	t.Helper()
	taskID := uuid.New().String()
	_, err := svc.CreateTask(context.Background(), models.CreateTaskRequest{
		TaskID: taskID,
		Prompt: "why is pod api-7f9c crashlooping",
	})
	require.NoError(t, err)
	return taskID
}

func retentionConfig(days int) *config.RetentionConfig {
	return &config.RetentionConfig{
		Enabled:           true,
		TaskRetentionDays: days,
		CleanupInterval:   time.Hour,
	}
}

func TestService_PurgesOldTerminalTasks(t *testing.T) {
	client, taskService := setupTaskService(t)
	ctx := context.Background()

	taskID := createTask(t, taskService)
	err := client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusCompleted).
		SetUpdatedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(90), taskService, t.TempDir())
	svc.runAll(ctx)

	_, err = taskService.GetTask(ctx, taskID, false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentAndProcessingTasks(t *testing.T) {
	client, taskService := setupTaskService(t)
	ctx := context.Background()

	recentID := createTask(t, taskService)
	err := client.Task.UpdateOneID(recentID).
		SetStatus(task.StatusCompleted).
		Exec(ctx)
	require.NoError(t, err)

	// Old but still processing: never purged, only orphan recovery may
	// close it out.
	processingID := createTask(t, taskService)
	err = client.Task.UpdateOneID(processingID).
		SetUpdatedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(90), taskService, t.TempDir())
	svc.runAll(ctx)

	_, err = taskService.GetTask(ctx, recentID, false)
	assert.NoError(t, err)
	_, err = taskService.GetTask(ctx, processingID, false)
	assert.NoError(t, err)
}

func TestService_CascadesJournalOnPurge(t *testing.T) {
	client, taskService := setupTaskService(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	taskID := createTask(t, taskService)
	err := client.TaskEvent.Create().
		SetTaskID(taskID).
		SetStepIndex(0).
		SetKind(taskevent.KindTraceStarted).
		SetPayload(map[string]any{"trace_id": uuid.New().String()}).
		Exec(ctx)
	require.NoError(t, err)

	err = client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusCancelled).
		SetUpdatedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(90), taskService, t.TempDir())
	svc.runAll(ctx)

	events, err := eventService.ReadEventsSince(ctx, taskID, -1)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestService_PrunesStaleTodoSnapshots(t *testing.T) {
	_, taskService := setupTaskService(t)
	snapshotDir := t.TempDir()

	staleDir := filepath.Join(snapshotDir, "stale-task")
	require.NoError(t, os.MkdirAll(staleDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staleDir, "todos.json"), []byte(`{"todos":[]}`), 0o644))
	old := time.Now().Add(-120 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(staleDir, old, old))

	freshDir := filepath.Join(snapshotDir, "fresh-task")
	require.NoError(t, os.MkdirAll(freshDir, 0o755))

	svc := NewService(retentionConfig(90), taskService, snapshotDir)
	svc.runAll(context.Background())

	assert.NoDirExists(t, staleDir)
	assert.DirExists(t, freshDir)
}

func TestService_StartDisabled(t *testing.T) {
	_, taskService := setupTaskService(t)

	cfg := retentionConfig(90)
	cfg.Enabled = false
	svc := NewService(cfg, taskService, t.TempDir())

	svc.Start(context.Background())
	assert.Nil(t, svc.cancel)
	svc.Stop()
}

func TestService_StartStop(t *testing.T) {
	_, taskService := setupTaskService(t)

	svc := NewService(retentionConfig(90), taskService, t.TempDir())
	svc.Start(context.Background())
	svc.Stop()
}
