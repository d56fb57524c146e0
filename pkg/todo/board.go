// Package todo implements the investigation planning board: an ordered
// todo list scoped to one investigation, replaced wholesale by the agent,
// mirrored to disk and broadcast as todo_updated frames.
package todo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
)

// snapshotFile is the JSON document holding the current list inside the
// per-task snapshot directory.
const snapshotFile = "todos.json"

// Emitter is the slice of the event emitter the board needs.
// Satisfied by *events.Emitter.
type Emitter interface {
	EmitTodoUpdated(ctx context.Context, taskID string, payload events.TodoUpdatedPayload) error
}

// snapshot is the on-disk document format.
type snapshot struct {
	Todos []models.Todo `json:"todos"`
}

// Board holds the todo list for one investigation. Writes replace the
// whole list after validation; the disk mirror lets a restarted daemon
// recover the plan lazily on the next read.
type Board struct {
	taskID  string
	dir     string
	emitter Emitter

	mu     sync.Mutex
	todos  []models.Todo
	loaded bool
}

// NewBoard creates the board for a task. baseDir is the daemon-wide
// snapshot root; each task mirrors into its own subdirectory.
func NewBoard(taskID, baseDir string, emitter Emitter) *Board {
	return &Board{
		taskID:  taskID,
		dir:     filepath.Join(baseDir, taskID),
		emitter: emitter,
	}
}

// Replace validates and swaps the whole list, mirrors it to disk and
// emits the todo_updated snapshot. The previous list survives any
// validation failure untouched.
func (b *Board) Replace(ctx context.Context, todos []models.Todo) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureLoaded(); err != nil {
		return err
	}
	if err := validate(todos); err != nil {
		return err
	}

	next := b.stamp(todos)
	if err := b.writeSnapshot(next); err != nil {
		return err
	}
	b.todos = next

	if b.emitter != nil {
		if err := b.emitter.EmitTodoUpdated(ctx, b.taskID, events.TodoUpdatedPayload{Todos: next}); err != nil {
			return fmt.Errorf("todo list saved but broadcasting failed: %w", err)
		}
	}
	return nil
}

// List returns the current snapshot, reloading the disk mirror if the
// in-memory state was lost to a restart.
func (b *Board) List(ctx context.Context) ([]models.Todo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]models.Todo, len(b.todos))
	copy(out, b.todos)
	return out, nil
}

// ensureLoaded lazily restores the list from the disk mirror. A missing
// snapshot means a fresh investigation with an empty list.
func (b *Board) ensureLoaded() error {
	if b.loaded {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(b.dir, snapshotFile))
	if errors.Is(err, fs.ErrNotExist) {
		b.todos = nil
		b.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read todo snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode todo snapshot: %w", err)
	}
	slog.With("task_id", b.taskID).Debug("Restored todo list from disk", "items", len(snap.Todos))
	b.todos = snap.Todos
	b.loaded = true
	return nil
}

// stamp fills server-side fields: missing IDs, creation times carried
// over from the previous item with the same ID, fresh update times.
func (b *Board) stamp(todos []models.Todo) []models.Todo {
	created := make(map[string]time.Time, len(b.todos))
	for _, t := range b.todos {
		created[t.ID] = t.CreatedAt
	}

	now := time.Now().UTC()
	next := make([]models.Todo, len(todos))
	for i, t := range todos {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if prev, ok := created[t.ID]; ok && !prev.IsZero() {
			t.CreatedAt = prev
		} else {
			t.CreatedAt = now
		}
		t.UpdatedAt = now
		next[i] = t
	}
	return next
}

// writeSnapshot mirrors the list to the per-task directory.
func (b *Board) writeSnapshot(todos []models.Todo) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create todo snapshot directory: %w", err)
	}
	data, err := json.MarshalIndent(snapshot{Todos: todos}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode todo snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.dir, snapshotFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write todo snapshot: %w", err)
	}
	return nil
}

// validate enforces the board invariants before any state changes.
func validate(todos []models.Todo) error {
	inProgress := 0
	for i, t := range todos {
		if strings.TrimSpace(t.Content) == "" {
			return fmt.Errorf("todo %d: content must not be empty", i+1)
		}
		if !t.Status.Valid() {
			return fmt.Errorf("todo %d: invalid status %q (expected pending, in_progress, completed or cancelled)", i+1, t.Status)
		}
		if t.Status == models.TodoInProgress {
			inProgress++
		}
	}
	if inProgress > 1 {
		return fmt.Errorf("at most one todo may be in_progress, got %d", inProgress)
	}
	return nil
}
