package models

import (
	"github.com/agentkube/investigator/ent"
	"github.com/agentkube/investigator/ent/task"
)

// CreateTaskRequest contains fields for creating a new investigation task
type CreateTaskRequest struct {
	TaskID          string            `json:"task_id"`
	Prompt          string            `json:"prompt"`
	Kubecontext     string            `json:"kubecontext,omitempty"`
	Model           string            `json:"model,omitempty"`
	ResourceContext map[string]string `json:"resource_context,omitempty"`
	LogContext      map[string]string `json:"log_context,omitempty"`
}

// UpdateTaskRequest is a partial patch applied to a task. Nil fields are
// left untouched. Status transitions into a terminal state are one-way:
// the service rejects any patch against an already-terminal task.
type UpdateTaskRequest struct {
	Title        *string        `json:"title,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Status       *task.Status   `json:"status,omitempty"`
	Severity     *task.Severity `json:"severity,omitempty"`
	Kubecontext  *string        `json:"kubecontext,omitempty"`
	Summary      *string        `json:"summary,omitempty"`
	Remediation  *string        `json:"remediation,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
	Resolved     *bool          `json:"resolved,omitempty"`
}

// TaskFilters contains filtering options for listing tasks
type TaskFilters struct {
	Status   string `json:"status,omitempty"`
	Severity string `json:"severity,omitempty"`
	Resolved *bool  `json:"resolved,omitempty"`
	Search   string `json:"search,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// TaskResponse wraps a Task with optional loaded edges
type TaskResponse struct {
	*ent.Task
	// Edges can be accessed via Task.Edges when loaded
}

// TaskListResponse contains a paginated task list
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// CreateSubTaskRequest contains fields for recording a specialist run
type CreateSubTaskRequest struct {
	TaskID    string           `json:"task_id"`
	Subject   string           `json:"subject"`
	Status    int              `json:"status"`
	Reason    string           `json:"reason,omitempty"`
	Goal      string           `json:"goal,omitempty"`
	Plan      []map[string]any `json:"plan,omitempty"`
	Discovery string           `json:"discovery,omitempty"`
}
