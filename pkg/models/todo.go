package models

import "time"

// TodoStatus is the lifecycle state of a single todo item.
type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
	TodoCancelled  TodoStatus = "cancelled"
)

// Valid reports whether s is one of the known todo statuses.
func (s TodoStatus) Valid() bool {
	switch s {
	case TodoPending, TodoInProgress, TodoCompleted, TodoCancelled:
		return true
	}
	return false
}

// TodoPriority is an optional urgency marker on a todo item.
type TodoPriority string

const (
	TodoPriorityHigh   TodoPriority = "high"
	TodoPriorityMedium TodoPriority = "medium"
	TodoPriorityLow    TodoPriority = "low"
)

// Todo is one entry on the supervisor's working plan. The board owns the
// full list; items are replaced wholesale, never patched individually.
type Todo struct {
	ID         string       `json:"id"`
	Content    string       `json:"content"`
	Status     TodoStatus   `json:"status"`
	Priority   TodoPriority `json:"priority,omitempty"`
	AssignedTo string       `json:"assigned_to,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
