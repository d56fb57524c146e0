package todo

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
)

type spyEmitter struct {
	mu       sync.Mutex
	payloads []events.TodoUpdatedPayload
	err      error
}

func (s *spyEmitter) EmitTodoUpdated(ctx context.Context, taskID string, p events.TodoUpdatedPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return s.err
}

func (s *spyEmitter) last(t *testing.T) events.TodoUpdatedPayload {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.payloads)
	return s.payloads[len(s.payloads)-1]
}

func plan(items ...models.Todo) []models.Todo { return items }

func TestBoard_ReplaceAndList(t *testing.T) {
	emitter := &spyEmitter{}
	board := NewBoard("task-1", t.TempDir(), emitter)
	ctx := context.Background()

	err := board.Replace(ctx, plan(
		models.Todo{Content: "check pod status", Status: models.TodoInProgress, Priority: models.TodoPriorityHigh},
		models.Todo{Content: "read recent logs", Status: models.TodoPending},
	))
	require.NoError(t, err)

	todos, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "check pod status", todos[0].Content)
	assert.NotEmpty(t, todos[0].ID, "board assigns missing IDs")
	assert.False(t, todos[0].CreatedAt.IsZero())
	assert.False(t, todos[0].UpdatedAt.IsZero())

	// the full list was broadcast
	assert.Len(t, emitter.last(t).Todos, 2)
}

func TestBoard_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		todos   []models.Todo
		wantErr string
	}{
		{
			name: "two items in progress",
			todos: plan(
				models.Todo{Content: "a", Status: models.TodoInProgress},
				models.Todo{Content: "b", Status: models.TodoInProgress},
			),
			wantErr: "at most one todo may be in_progress",
		},
		{
			name:    "empty content",
			todos:   plan(models.Todo{Content: "   ", Status: models.TodoPending}),
			wantErr: "content must not be empty",
		},
		{
			name:    "unknown status",
			todos:   plan(models.Todo{Content: "a", Status: "later"}),
			wantErr: "invalid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emitter := &spyEmitter{}
			board := NewBoard("task-1", t.TempDir(), emitter)
			ctx := context.Background()

			require.NoError(t, board.Replace(ctx, plan(
				models.Todo{Content: "existing", Status: models.TodoPending},
			)))

			err := board.Replace(ctx, tt.todos)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			// prior list survives the rejected write
			todos, err := board.List(ctx)
			require.NoError(t, err)
			require.Len(t, todos, 1)
			assert.Equal(t, "existing", todos[0].Content)
		})
	}
}

func TestBoard_CreatedAtCarriedAcrossReplace(t *testing.T) {
	board := NewBoard("task-1", t.TempDir(), &spyEmitter{})
	ctx := context.Background()

	require.NoError(t, board.Replace(ctx, plan(
		models.Todo{Content: "step one", Status: models.TodoInProgress},
	)))
	first, err := board.List(ctx)
	require.NoError(t, err)

	require.NoError(t, board.Replace(ctx, plan(
		models.Todo{ID: first[0].ID, Content: "step one", Status: models.TodoCompleted},
		models.Todo{Content: "step two", Status: models.TodoInProgress},
	)))

	second, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, first[0].CreatedAt, second[0].CreatedAt, "existing item keeps its creation time")
	assert.False(t, second[0].UpdatedAt.Before(first[0].UpdatedAt))
	assert.False(t, second[1].CreatedAt.IsZero())
}

func TestBoard_LazyReloadAfterRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	board := NewBoard("task-1", dir, &spyEmitter{})
	require.NoError(t, board.Replace(ctx, plan(
		models.Todo{Content: "persisted across restarts", Status: models.TodoPending},
	)))

	// a fresh board over the same directory stands in for the restarted daemon
	restarted := NewBoard("task-1", dir, &spyEmitter{})
	todos, err := restarted.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "persisted across restarts", todos[0].Content)
}

func TestBoard_FreshTaskIsEmpty(t *testing.T) {
	board := NewBoard("task-1", t.TempDir(), &spyEmitter{})
	todos, err := board.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestBoard_ReplaceWithEmptyListClears(t *testing.T) {
	emitter := &spyEmitter{}
	board := NewBoard("task-1", t.TempDir(), emitter)
	ctx := context.Background()

	require.NoError(t, board.Replace(ctx, plan(
		models.Todo{Content: "done with this", Status: models.TodoCompleted},
	)))
	require.NoError(t, board.Replace(ctx, nil))

	todos, err := board.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
	assert.Empty(t, emitter.last(t).Todos)
}

func TestBoard_CorruptSnapshotSurfacesError(t *testing.T) {
	dir := t.TempDir()
	taskDir := filepath.Join(dir, "task-1")
	require.NoError(t, os.MkdirAll(taskDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(taskDir, snapshotFile), []byte("{not json"), 0o644))

	board := NewBoard("task-1", dir, &spyEmitter{})
	_, err := board.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestBoard_BroadcastFailureStillPersists(t *testing.T) {
	dir := t.TempDir()
	emitter := &spyEmitter{err: assert.AnError}
	board := NewBoard("task-1", dir, emitter)
	ctx := context.Background()

	err := board.Replace(ctx, plan(
		models.Todo{Content: "written despite broadcast failure", Status: models.TodoPending},
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broadcasting failed")

	// the mirror has the new list even though the emit failed
	restarted := NewBoard("task-1", dir, &spyEmitter{})
	todos, err := restarted.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "written despite broadcast failure", todos[0].Content)
}
