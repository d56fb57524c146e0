// Package orchestrator drives investigations end to end: it allocates the
// task and trace, runs the supervisor agent with the specialists exposed as
// tools, parses the final report, patches the task and closes the event
// stream with done. It also owns the short metadata summarization passes.
package orchestrator

import (
	"context"

	"github.com/agentkube/investigator/ent"
	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
)

// Emitter is the slice of the event emitter the orchestrator needs on top
// of what the agent runtime already uses. Satisfied by *events.Emitter.
type Emitter interface {
	agent.Emitter
	EmitTraceStarted(ctx context.Context, taskID string, payload events.TraceStartedPayload) error
	EmitSubTaskAdded(ctx context.Context, taskID string, payload events.SubTaskAddedPayload) error
	EmitInvestigationCompleted(ctx context.Context, taskID string, payload events.InvestigationCompletedPayload) error
	EmitTodoUpdated(ctx context.Context, taskID string, payload events.TodoUpdatedPayload) error
	EmitDone(ctx context.Context, taskID string) error
	Forget(taskID string)
}

// TaskStore is the task persistence surface the orchestrator uses.
// Satisfied by *services.TaskService.
type TaskStore interface {
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error)
	UpdateTask(ctx context.Context, taskID string, patch models.UpdateTaskRequest) (*ent.Task, error)
	AddSubTask(ctx context.Context, req models.CreateSubTaskRequest) (*ent.SubTask, error)
	SearchTasks(ctx context.Context, query string, limit int) ([]*ent.Task, error)
	FindProcessingTasks(ctx context.Context) ([]string, error)
}

// ClientFactory hands out LLM clients per provider configuration.
// Satisfied by *llm.Factory; tests substitute scripted clients.
type ClientFactory interface {
	ClientFor(provider *config.LLMProviderConfig) (agent.LLMClient, error)
}
