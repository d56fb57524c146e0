package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/ent/taskevent"
	"github.com/agentkube/investigator/pkg/database"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/services"
	"github.com/agentkube/investigator/pkg/session"
	testdb "github.com/agentkube/investigator/test/database"
)

func newDBTestServer(t *testing.T, client *database.Client) *Server {
	t.Helper()
	return NewServer(
		context.Background(),
		&fakeInvestigator{},
		session.NewManager(),
		services.NewTaskService(client.Client),
		services.NewEventService(client.Client),
		events.NewHub(),
		client,
		slog.New(slog.DiscardHandler),
	)
}

func createAPITestTask(t *testing.T, svc *services.TaskService, taskID string) {
	t.Helper()
	_, err := svc.CreateTask(context.Background(), models.CreateTaskRequest{
		TaskID: taskID,
		Prompt: "why is payments crashing",
	})
	require.NoError(t, err)
}

func appendAPITestEvent(t *testing.T, client *database.Client, taskID string, step int, kind taskevent.Kind, payload map[string]any) {
	t.Helper()
	err := client.Client.TaskEvent.Create().
		SetTaskID(taskID).
		SetStepIndex(step).
		SetKind(kind).
		SetPayload(payload).
		SetCreatedAt(time.Now().UTC()).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestGetTaskHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := newDBTestServer(t, client)
	createAPITestTask(t, services.NewTaskService(client.Client), "api-task-1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/investigate/api-task-1", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "api-task-1", got["id"])
	assert.Equal(t, "why is payments crashing", got["prompt"])
	assert.Equal(t, "processing", got["status"])
}

func TestGetTaskHandlerNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := newDBTestServer(t, client)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/investigate/no-such-task", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTasksHandlerFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := newDBTestServer(t, client)
	svc := services.NewTaskService(client.Client)

	createAPITestTask(t, svc, "list-a")
	createAPITestTask(t, svc, "list-b")
	completed := task.StatusCompleted
	_, err := svc.UpdateTask(context.Background(), "list-b", models.UpdateTaskRequest{Status: &completed})
	require.NoError(t, err)

	t.Run("all", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp models.TaskListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("status filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?status=completed", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp models.TaskListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "list-b", resp.Tasks[0].ID)
	})

	t.Run("invalid status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?status=bogus", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestResolveTaskHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := newDBTestServer(t, client)
	svc := services.NewTaskService(client.Client)

	createAPITestTask(t, svc, "resolve-me")
	completed := task.StatusCompleted
	_, err := svc.UpdateTask(context.Background(), "resolve-me", models.UpdateTaskRequest{Status: &completed})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/resolve-me/resolve", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Resolved)

	row, err := svc.GetTask(context.Background(), "resolve-me", false)
	require.NoError(t, err)
	assert.True(t, row.Resolved)
}

func TestEventReplayHandlerTerminalTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := newDBTestServer(t, client)
	svc := services.NewTaskService(client.Client)

	createAPITestTask(t, svc, "replay-1")
	appendAPITestEvent(t, client, "replay-1", 0, taskevent.KindTraceStarted, map[string]any{"trace_id": "t"})
	appendAPITestEvent(t, client, "replay-1", 1, taskevent.KindTextDelta, map[string]any{"text": "hi", "role": "assistant"})
	appendAPITestEvent(t, client, "replay-1", 2, taskevent.KindInvestigationCompleted, map[string]any{"summary": "ok"})
	appendAPITestEvent(t, client, "replay-1", 3, taskevent.KindDone, nil)
	completed := task.StatusCompleted
	_, err := svc.UpdateTask(context.Background(), "replay-1", models.UpdateTaskRequest{Status: &completed})
	require.NoError(t, err)

	t.Run("full replay", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/investigate/replay-1/event", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		got := parseSSE(t, rec.Body.String())
		require.Len(t, got, 4)
		assert.Equal(t, "trace_started", got[0]["kind"])
		assert.Equal(t, "done", got[3]["kind"])
	})

	t.Run("after skips replayed prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/investigate/replay-1/event?after=1", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		got := parseSSE(t, rec.Body.String())
		require.Len(t, got, 2)
		assert.Equal(t, float64(2), got[0]["step_index"])
		assert.Equal(t, "done", got[1]["kind"])
	})

	t.Run("last-event-id fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/investigate/replay-1/event", nil)
		req.Header.Set("Last-Event-ID", "2")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		got := parseSSE(t, rec.Body.String())
		require.Len(t, got, 1)
		assert.Equal(t, "done", got[0]["kind"])
	})

	t.Run("invalid after", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/investigate/replay-1/event?after=x", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown task", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/investigate/ghost/event", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := newDBTestServer(t, client)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}
