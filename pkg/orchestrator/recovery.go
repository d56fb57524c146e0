package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
)

// RecoverOrphans closes out tasks left in status processing by a previous
// crash of this daemon. Each orphan is marked failed and its event stream
// is terminated with an error frame followed by done, so waiting clients
// and later replays see a properly closed investigation and why it ended.
// Called once at boot, before the HTTP server starts accepting work.
func RecoverOrphans(ctx context.Context, tasks TaskStore, emitter Emitter, logger *slog.Logger) error {
	ids, err := tasks.FindProcessingTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan for orphaned tasks: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	logger.Warn("Recovering orphaned investigations", "count", len(ids))

	failed := task.StatusFailed
	msg := "daemon restarted while the investigation was running"
	for _, id := range ids {
		log := logger.With("task_id", id)
		if _, err := tasks.UpdateTask(ctx, id, models.UpdateTaskRequest{
			Status:       &failed,
			ErrorMessage: &msg,
		}); err != nil {
			log.Error("Failed to mark orphaned task failed", "error", err)
			continue
		}
		if err := emitter.EmitError(ctx, id, events.ErrorPayload{
			ErrorKind: events.ErrorKindStore,
			Message:   msg,
		}); err != nil {
			log.Error("Failed to emit error for orphaned task", "error", err)
		}
		if err := emitter.EmitDone(ctx, id); err != nil {
			log.Error("Failed to close orphaned event stream", "error", err)
		}
		emitter.Forget(id)
		log.Info("Orphaned task closed out")
	}
	return nil
}
