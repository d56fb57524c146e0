// Package cleanup enforces the retention policy: finished investigations
// and their todo snapshots are deleted once they age out.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/services"
)

// Service is the background janitor. Each sweep:
//   - deletes terminal tasks older than the retention window (journal rows
//     cascade with them),
//   - prunes todo snapshot directories whose task is past retention.
//
// Both operations are idempotent; a sweep that overlaps a restart just
// finds less to do.
type Service struct {
	config      *config.RetentionConfig
	taskService *services.TaskService
	snapshotDir string

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the janitor. snapshotDir is the todo board's base
// directory (one subdirectory per task).
func NewService(cfg *config.RetentionConfig, taskService *services.TaskService, snapshotDir string) *Service {
	return &Service{
		config:      cfg,
		taskService: taskService,
		snapshotDir: snapshotDir,
	}
}

// Start launches the background loop. No-op when retention is disabled.
func (s *Service) Start(ctx context.Context) {
	if !s.config.Enabled || s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOldTasks(ctx)
	s.pruneTodoSnapshots()
}

func (s *Service) purgeOldTasks(_ context.Context) {
	// Background context: the sweep finishes even when Stop races it.
	count, err := s.taskService.PurgeOldTasks(context.Background(), s.config.TaskRetentionDays)
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old tasks", "count", count)
	}
}

// pruneTodoSnapshots removes per-task snapshot directories that have not
// been touched inside the retention window. The board rewrites the snapshot
// on every write_todos call, so a stale mtime means a long-finished task.
func (s *Service) pruneTodoSnapshots() {
	entries, err := os.ReadDir(s.snapshotDir)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		slog.Error("Retention: todo snapshot scan failed", "error", err)
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.TaskRetentionDays)
	pruned := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(s.snapshotDir, entry.Name())); err != nil {
			slog.Error("Retention: failed to remove todo snapshot",
				"task_id", entry.Name(), "error", err)
			continue
		}
		pruned++
	}
	if pruned > 0 {
		slog.Info("Retention: pruned todo snapshots", "count", pruned)
	}
}
