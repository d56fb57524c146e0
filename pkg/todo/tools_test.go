package todo

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/tools"
)

func newTodoRegistry(t *testing.T) (*tools.Registry, *tools.Invocation) {
	t.Helper()
	reg := tools.NewRegistry()
	require.NoError(t, reg.RegisterAll(Descriptors()...))
	board := NewBoard("task-1", t.TempDir(), &spyEmitter{})
	return reg, &tools.Invocation{TaskID: "task-1", Todos: board}
}

func TestWriteTodos_RoundTrip(t *testing.T) {
	reg, inv := newTodoRegistry(t)
	ctx := context.Background()

	out, err := reg.Invoke(ctx, inv, ToolWriteTodos, `{
		"todos": [
			{"content": "check pod status", "status": "in_progress", "priority": "high"},
			{"content": "read recent logs", "status": "pending", "assigned_to": "log_analysis"}
		]
	}`)
	require.NoError(t, err)
	assert.Equal(t, "Todo list updated: 2 items (1 pending, 1 in progress, 0 completed, 0 cancelled)", out)

	read, err := reg.Invoke(ctx, inv, ToolReadTodos, `{}`)
	require.NoError(t, err)

	var snap snapshot
	require.NoError(t, json.Unmarshal([]byte(read), &snap))
	require.Len(t, snap.Todos, 2)
	assert.Equal(t, "check pod status", snap.Todos[0].Content)
	assert.Equal(t, "log_analysis", snap.Todos[1].AssignedTo)
}

func TestWriteTodos_SchemaRejectsUnknownStatus(t *testing.T) {
	reg, inv := newTodoRegistry(t)

	_, err := reg.Invoke(context.Background(), inv, ToolWriteTodos, `{
		"todos": [{"content": "x", "status": "someday"}]
	}`)
	require.ErrorIs(t, err, tools.ErrInvalidArguments)
}

func TestWriteTodos_BoardInvariantRejected(t *testing.T) {
	reg, inv := newTodoRegistry(t)

	_, err := reg.Invoke(context.Background(), inv, ToolWriteTodos, `{
		"todos": [
			{"content": "a", "status": "in_progress"},
			{"content": "b", "status": "in_progress"}
		]
	}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one todo may be in_progress")
}

func TestReadTodos_EmptyBoard(t *testing.T) {
	reg, inv := newTodoRegistry(t)

	out, err := reg.Invoke(context.Background(), inv, ToolReadTodos, `{}`)
	require.NoError(t, err)
	assert.Equal(t, "No todos recorded yet.", out)
}

func TestTodoTools_Titles(t *testing.T) {
	reg, _ := newTodoRegistry(t)

	assert.Equal(t, "Updating plan (2 items)",
		reg.Describe(ToolWriteTodos, `{"todos": [{"content": "a", "status": "pending"}, {"content": "b", "status": "pending"}]}`))
	assert.Equal(t, "Reading plan", reg.Describe(ToolReadTodos, `{}`))
}
