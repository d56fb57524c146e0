package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/agentkube/investigator/ent"
	"github.com/agentkube/investigator/ent/subtask"
	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/pkg/models"
)

// TaskService manages investigation task lifecycle
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask persists a new task in status processing.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	// Validate input
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Task.Create().
		SetID(req.TaskID).
		SetPrompt(req.Prompt).
		SetStatus(task.StatusProcessing)

	if req.Kubecontext != "" {
		builder.SetKubecontext(req.Kubecontext)
	}
	if req.Model != "" {
		builder.SetModel(req.Model)
	}
	if req.ResourceContext != nil {
		builder.SetResourceContext(req.ResourceContext)
	}
	if req.LogContext != nil {
		builder.SetLogContext(req.LogContext)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetTask retrieves a task by ID, optionally with subtasks loaded
func (s *TaskService) GetTask(ctx context.Context, taskID string, withEdges bool) (*ent.Task, error) {
	query := s.client.Task.Query().Where(task.IDEQ(taskID))

	if withEdges {
		query = query.WithSubtasks(func(q *ent.SubTaskQuery) {
			q.Order(ent.Asc(subtask.FieldCreatedAt))
		})
	}

	t, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// ListTasks lists tasks with filtering and pagination
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()

	// Apply filters
	if filters.Status != "" {
		query = query.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if filters.Severity != "" {
		query = query.Where(task.SeverityEQ(task.Severity(filters.Severity)))
	}
	if filters.Resolved != nil {
		query = query.Where(task.ResolvedEQ(*filters.Resolved))
	}
	if filters.Search != "" {
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', prompt) @@ plainto_tsquery($1)", filters.Search),
				sql.ExprP("to_tsvector('english', COALESCE(summary, '')) @@ plainto_tsquery($2)", filters.Search),
			))
		})
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateTask applies a partial patch to an in-flight task. Patching a task
// whose status is already terminal returns ErrTerminalStatus; the patch
// that sets the first terminal status is the one allowed through.
func (s *TaskService) UpdateTask(httpCtx context.Context, taskID string, patch models.UpdateTaskRequest) (*ent.Task, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Task.UpdateOneID(taskID).
		Where(task.StatusEQ(task.StatusProcessing))

	if patch.Title != nil {
		update.SetTitle(*patch.Title)
	}
	if patch.Tags != nil {
		update.SetTags(patch.Tags)
	}
	if patch.Severity != nil {
		update.SetSeverity(*patch.Severity)
	}
	if patch.Kubecontext != nil {
		update.SetKubecontext(*patch.Kubecontext)
	}
	if patch.Summary != nil {
		update.SetSummary(*patch.Summary)
	}
	if patch.Remediation != nil {
		update.SetRemediation(*patch.Remediation)
	}
	if patch.ErrorMessage != nil {
		update.SetErrorMessage(*patch.ErrorMessage)
	}
	if patch.Resolved != nil {
		update.SetResolved(*patch.Resolved)
	}
	if patch.Status != nil {
		update.SetStatus(*patch.Status)
		if *patch.Status != task.StatusProcessing {
			update.SetCompletedAt(time.Now())
		}
	}

	t, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// The predicate hides terminal tasks; distinguish missing from frozen.
			exists, exErr := s.client.Task.Query().Where(task.IDEQ(taskID)).Exist(ctx)
			if exErr == nil && exists {
				return nil, ErrTerminalStatus
			}
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return t, nil
}

// SetResolved flips the operator acknowledgement flag. Unlike UpdateTask
// this is allowed on terminal tasks — resolving happens after completion.
func (s *TaskService) SetResolved(httpCtx context.Context, taskID string, resolved bool) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.client.Task.UpdateOneID(taskID).
		SetResolved(resolved).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set resolved flag: %w", err)
	}

	return t, nil
}

// AddSubTask records a specialist run against a task and returns the new row.
func (s *TaskService) AddSubTask(httpCtx context.Context, req models.CreateSubTaskRequest) (*ent.SubTask, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.Subject == "" {
		return nil, NewValidationError("subject", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.SubTask.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetSubject(req.Subject).
		SetStatus(req.Status)

	if req.Reason != "" {
		builder.SetReason(req.Reason)
	}
	if req.Goal != "" {
		builder.SetGoal(req.Goal)
	}
	if req.Plan != nil {
		builder.SetPlan(req.Plan)
	}
	if req.Discovery != "" {
		builder.SetDiscovery(req.Discovery)
	}

	st, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// FK violation — the owning task is gone
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add subtask: %w", err)
	}

	return st, nil
}

// SearchTasks runs a full-text search over completed investigations.
// Backs the past-investigation lookup tool; relies on the GIN indexes
// created in pkg/database/migrations.go.
func (s *TaskService) SearchTasks(ctx context.Context, query string, limit int) ([]*ent.Task, error) {
	if limit <= 0 {
		limit = 10
	}

	tasks, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusCompleted)).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', prompt) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(summary, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}

	return tasks, nil
}

// PurgeOldTasks deletes terminal tasks whose last update is older than the
// retention window. Events and subtasks go with them via ON DELETE CASCADE.
// Returns the number of tasks deleted.
func (s *TaskService) PurgeOldTasks(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays < 1 {
		return 0, NewValidationError("retention_days", "must be at least 1")
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	count, err := s.client.Task.Delete().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusCancelled, task.StatusFailed),
			task.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old tasks: %w", err)
	}

	return count, nil
}

// FindProcessingTasks returns the IDs of tasks stuck in status processing.
// Called once at startup: any task still processing when the daemon boots
// was orphaned by a crash and needs its stream closed out.
func (s *TaskService) FindProcessingTasks(ctx context.Context) ([]string, error) {
	ids, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusProcessing)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find processing tasks: %w", err)
	}

	return ids, nil
}
