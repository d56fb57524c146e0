package todo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/tools"
)

// Names of the planning tools.
const (
	ToolWriteTodos = "write_todos"
	ToolReadTodos  = "read_todos"
)

// Descriptors returns the write_todos/read_todos tool pair. Both operate
// on the board bound to the invocation, so one registration serves every
// investigation.
func Descriptors() []tools.Descriptor {
	return []tools.Descriptor{
		{
			Name:        ToolWriteTodos,
			Description: "Replace the investigation todo list. Always send the complete list; at most one item may be in_progress.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"todos": {
						"type": "array",
						"items": {
							"type": "object",
							"properties": {
								"id": {"type": "string", "description": "Keep the id of an existing item to update it; omit for new items"},
								"content": {"type": "string", "description": "What needs to be done"},
								"status": {"type": "string", "enum": ["pending", "in_progress", "completed", "cancelled"]},
								"priority": {"type": "string", "enum": ["high", "medium", "low"]},
								"assigned_to": {"type": "string", "description": "Specialist agent tag, if delegated"}
							},
							"required": ["content", "status"],
							"additionalProperties": false
						}
					}
				},
				"required": ["todos"],
				"additionalProperties": false
			}`,
			Title: func(args map[string]any) string {
				if items, ok := args["todos"].([]any); ok {
					return fmt.Sprintf("Updating plan (%d items)", len(items))
				}
				return "Updating plan"
			},
			Run: func(ctx context.Context, inv *tools.Invocation, args map[string]any) (string, error) {
				if inv.Todos == nil {
					return "", fmt.Errorf("todo board is not wired for this investigation")
				}
				todos, err := decodeTodos(args["todos"])
				if err != nil {
					return "", err
				}
				if err := inv.Todos.Replace(ctx, todos); err != nil {
					return "", err
				}
				return summarize(todos), nil
			},
		},
		{
			Name:        ToolReadTodos,
			Description: "Read the current investigation todo list.",
			ParametersSchema: `{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`,
			Title: func(map[string]any) string { return "Reading plan" },
			Run: func(ctx context.Context, inv *tools.Invocation, args map[string]any) (string, error) {
				if inv.Todos == nil {
					return "", fmt.Errorf("todo board is not wired for this investigation")
				}
				todos, err := inv.Todos.List(ctx)
				if err != nil {
					return "", err
				}
				if len(todos) == 0 {
					return "No todos recorded yet.", nil
				}
				out, err := json.Marshal(snapshot{Todos: todos})
				if err != nil {
					return "", fmt.Errorf("encoding todo list: %w", err)
				}
				return string(out), nil
			},
		},
	}
}

// decodeTodos converts the schema-validated argument array into models.
func decodeTodos(v any) ([]models.Todo, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("reading todos argument: %w", err)
	}
	var todos []models.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("reading todos argument: %w", err)
	}
	return todos, nil
}

// summarize renders the post-write feedback line for the model.
func summarize(todos []models.Todo) string {
	counts := map[models.TodoStatus]int{}
	for _, t := range todos {
		counts[t.Status]++
	}
	return fmt.Sprintf("Todo list updated: %d items (%d pending, %d in progress, %d completed, %d cancelled)",
		len(todos),
		counts[models.TodoPending],
		counts[models.TodoInProgress],
		counts[models.TodoCompleted],
		counts[models.TodoCancelled])
}
