package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/pkg/database"
	"github.com/agentkube/investigator/pkg/models"
	testdb "github.com/agentkube/investigator/test/database"
)

func setupTaskService(t *testing.T) (*database.Client, *TaskService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, NewTaskService(client.Client)
}

func strPtr(s string) *string { return &s }

func statusPtr(s task.Status) *task.Status { return &s }

func TestTaskService_CreateTask(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	t.Run("creates task in processing", func(t *testing.T) {
		taskID := uuid.New().String()
		created, err := svc.CreateTask(ctx, models.CreateTaskRequest{
			TaskID:      taskID,
			Prompt:      "why is pod api-7f9c crashlooping",
			Kubecontext: "prod",
			ResourceContext: map[string]string{
				"deployment.yaml": "apiVersion: apps/v1\nkind: Deployment",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, taskID, created.ID)
		assert.Equal(t, task.StatusProcessing, created.Status)
		assert.Equal(t, "prod", *created.Kubecontext)
		assert.False(t, created.Resolved)
	})

	t.Run("rejects duplicate task_id", func(t *testing.T) {
		taskID := uuid.New().String()
		_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Prompt: "first"})
		require.NoError(t, err)

		_, err = svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Prompt: "second"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects missing prompt", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: uuid.New().String()})
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	t.Run("patches metadata while processing", func(t *testing.T) {
		taskID := uuid.New().String()
		_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Prompt: "p"})
		require.NoError(t, err)

		updated, err := svc.UpdateTask(ctx, taskID, models.UpdateTaskRequest{
			Title: strPtr("CrashLoopBackOff in prod"),
			Tags:  []string{"crashloop", "prod"},
		})
		require.NoError(t, err)
		assert.Equal(t, "CrashLoopBackOff in prod", *updated.Title)
		assert.Equal(t, []string{"crashloop", "prod"}, updated.Tags)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
	})

	t.Run("first terminal patch wins, later patches rejected", func(t *testing.T) {
		taskID := uuid.New().String()
		_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Prompt: "p"})
		require.NoError(t, err)

		completed, err := svc.UpdateTask(ctx, taskID, models.UpdateTaskRequest{
			Status:  statusPtr(task.StatusCompleted),
			Summary: strPtr("root cause found"),
		})
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, completed.Status)
		assert.NotNil(t, completed.CompletedAt)

		_, err = svc.UpdateTask(ctx, taskID, models.UpdateTaskRequest{
			Summary: strPtr("rewriting history"),
		})
		assert.ErrorIs(t, err, ErrTerminalStatus)

		_, err = svc.UpdateTask(ctx, taskID, models.UpdateTaskRequest{
			Status: statusPtr(task.StatusFailed),
		})
		assert.ErrorIs(t, err, ErrTerminalStatus)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := svc.UpdateTask(ctx, uuid.New().String(), models.UpdateTaskRequest{
			Title: strPtr("x"),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_SetResolved(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	taskID := uuid.New().String()
	_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Prompt: "p"})
	require.NoError(t, err)

	// Resolving is allowed even after the task froze.
	_, err = svc.UpdateTask(ctx, taskID, models.UpdateTaskRequest{
		Status: statusPtr(task.StatusCompleted),
	})
	require.NoError(t, err)

	resolved, err := svc.SetResolved(ctx, taskID, true)
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
}

func TestTaskService_AddSubTask(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	taskID := uuid.New().String()
	_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Prompt: "p"})
	require.NoError(t, err)

	st, err := svc.AddSubTask(ctx, models.CreateSubTaskRequest{
		TaskID:  taskID,
		Subject: "log analysis of api-7f9c",
		Status:  2,
		Goal:    "find the crash reason",
		Plan: []map[string]any{
			{"tool_name": "pod_logs", "arguments": map[string]any{"pod": "api-7f9c"}},
		},
		Discovery: "OOMKilled every 40s",
	})
	require.NoError(t, err)
	assert.Equal(t, taskID, st.TaskID)
	assert.Equal(t, 2, st.Status)

	loaded, err := svc.GetTask(ctx, taskID, true)
	require.NoError(t, err)
	require.Len(t, loaded.Edges.Subtasks, 1)
	assert.Equal(t, "log analysis of api-7f9c", loaded.Edges.Subtasks[0].Subject)

	t.Run("missing task", func(t *testing.T) {
		_, err := svc.AddSubTask(ctx, models.CreateSubTaskRequest{
			TaskID:  uuid.New().String(),
			Subject: "s",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	client, svc := setupTaskService(t)
	ctx := context.Background()

	completedID := uuid.New().String()
	_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: completedID, Prompt: "completed one"})
	require.NoError(t, err)
	_, err = svc.UpdateTask(ctx, completedID, models.UpdateTaskRequest{Status: statusPtr(task.StatusCompleted)})
	require.NoError(t, err)

	processingID := uuid.New().String()
	_, err = svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: processingID, Prompt: "processing one"})
	require.NoError(t, err)

	t.Run("filter by status", func(t *testing.T) {
		resp, err := svc.ListTasks(ctx, models.TaskFilters{Status: "completed"})
		require.NoError(t, err)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, completedID, resp.Tasks[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.ListTasks(ctx, models.TaskFilters{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, resp.Tasks, 1)
		assert.Equal(t, 2, resp.TotalCount)
	})

	// Newest first
	err = client.Task.UpdateOneID(completedID).
		SetCreatedAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)
	resp, err := svc.ListTasks(ctx, models.TaskFilters{})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, processingID, resp.Tasks[0].ID)
}

func TestTaskService_SearchTasks(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	matchID := uuid.New().String()
	_, err := svc.CreateTask(ctx, models.CreateTaskRequest{
		TaskID: matchID,
		Prompt: "ingress controller returns 502 for checkout service",
	})
	require.NoError(t, err)
	_, err = svc.UpdateTask(ctx, matchID, models.UpdateTaskRequest{
		Status:  statusPtr(task.StatusCompleted),
		Summary: strPtr("upstream timeout caused by connection pool exhaustion"),
	})
	require.NoError(t, err)

	// Still processing: excluded from search even when the text matches.
	_, err = svc.CreateTask(ctx, models.CreateTaskRequest{
		TaskID: uuid.New().String(),
		Prompt: "ingress controller flapping again",
	})
	require.NoError(t, err)

	hits, err := svc.SearchTasks(ctx, "ingress controller", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, matchID, hits[0].ID)

	hits, err = svc.SearchTasks(ctx, "connection pool", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestTaskService_FindProcessingTasks(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	processingID := uuid.New().String()
	_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: processingID, Prompt: "p"})
	require.NoError(t, err)

	doneID := uuid.New().String()
	_, err = svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: doneID, Prompt: "p"})
	require.NoError(t, err)
	_, err = svc.UpdateTask(ctx, doneID, models.UpdateTaskRequest{Status: statusPtr(task.StatusFailed)})
	require.NoError(t, err)

	ids, err := svc.FindProcessingTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{processingID}, ids)
}

func TestTaskService_PurgeOldTasks(t *testing.T) {
	client, svc := setupTaskService(t)
	ctx := context.Background()

	oldID := uuid.New().String()
	_, err := svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: oldID, Prompt: "p"})
	require.NoError(t, err)
	err = client.Task.UpdateOneID(oldID).
		SetStatus(task.StatusCompleted).
		SetUpdatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	keptID := uuid.New().String()
	_, err = svc.CreateTask(ctx, models.CreateTaskRequest{TaskID: keptID, Prompt: "p"})
	require.NoError(t, err)

	count, err := svc.PurgeOldTasks(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.GetTask(ctx, oldID, false)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetTask(ctx, keptID, false)
	assert.NoError(t, err)

	t.Run("rejects zero retention", func(t *testing.T) {
		_, err := svc.PurgeOldTasks(ctx, 0)
		assert.True(t, IsValidationError(err))
	})
}
