package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/agentkube/investigator/ent/taskevent"
)

// notifyPayloadLimit is the largest NOTIFY payload we will send.
// PostgreSQL rejects payloads near 8000 bytes; frames above this are
// broadcast as truncation envelopes instead.
const notifyPayloadLimit = 7900

// errDuplicateStep is returned by persistAndNotify when the (task_id,
// step_index) slot was already taken. Callers treat it as success: the
// frame in that slot was persisted and broadcast by whoever won.
var errDuplicateStep = errors.New("step index already persisted")

// Emitter is the single write path for task event streams. Each call
// assigns the next dense step_index for the task, persists the frame to
// the task_events journal and broadcasts it via NOTIFY — all inside one
// transaction, serialized per task.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Counters are lazily reconciled with the persisted tail,
// so a restarted daemon continues a stream without gaps or reuse.
type Emitter struct {
	db *sql.DB

	mu      sync.Mutex
	streams map[string]*taskStream
}

// taskStream serializes emission for one task. The mutex is held across
// the whole persist+notify transaction: step assignment and commit order
// must agree or subscribers would observe reordered frames.
type taskStream struct {
	mu     sync.Mutex
	next   int
	primed bool
}

// NewEmitter creates a new Emitter.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEmitter(db *sql.DB) *Emitter {
	return &Emitter{
		db:      db,
		streams: make(map[string]*taskStream),
	}
}

// --- Typed public methods ---

// EmitTraceStarted appends and broadcasts a trace_started frame.
func (e *Emitter) EmitTraceStarted(ctx context.Context, taskID string, payload TraceStartedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindTraceStarted, payload)
}

// EmitAgentStarted appends and broadcasts an agent_started frame.
func (e *Emitter) EmitAgentStarted(ctx context.Context, taskID string, payload AgentStartedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindAgentStarted, payload)
}

// EmitAgentCompleted appends and broadcasts an agent_completed frame.
func (e *Emitter) EmitAgentCompleted(ctx context.Context, taskID string, payload AgentCompletedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindAgentCompleted, payload)
}

// EmitTextDelta appends and broadcasts a text_delta frame.
func (e *Emitter) EmitTextDelta(ctx context.Context, taskID string, payload TextDeltaPayload) error {
	return e.emit(ctx, taskID, taskevent.KindTextDelta, payload)
}

// EmitToolCallRequested appends and broadcasts a tool_call_requested frame.
func (e *Emitter) EmitToolCallRequested(ctx context.Context, taskID string, payload ToolCallRequestedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindToolCallRequested, payload)
}

// EmitToolCallApproved appends and broadcasts a tool_call_approved frame.
func (e *Emitter) EmitToolCallApproved(ctx context.Context, taskID string, payload ToolCallApprovedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindToolCallApproved, payload)
}

// EmitToolCallRejected appends and broadcasts a tool_call_rejected frame.
func (e *Emitter) EmitToolCallRejected(ctx context.Context, taskID string, payload ToolCallRejectedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindToolCallRejected, payload)
}

// EmitToolCallOutput appends and broadcasts a tool_call_output frame.
func (e *Emitter) EmitToolCallOutput(ctx context.Context, taskID string, payload ToolCallOutputPayload) error {
	return e.emit(ctx, taskID, taskevent.KindToolCallOutput, payload)
}

// EmitTodoUpdated appends and broadcasts a todo_updated frame.
func (e *Emitter) EmitTodoUpdated(ctx context.Context, taskID string, payload TodoUpdatedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindTodoUpdated, payload)
}

// EmitSubTaskAdded appends and broadcasts a subtask_added frame.
func (e *Emitter) EmitSubTaskAdded(ctx context.Context, taskID string, payload SubTaskAddedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindSubtaskAdded, payload)
}

// EmitInvestigationCompleted appends and broadcasts an investigation_completed frame.
func (e *Emitter) EmitInvestigationCompleted(ctx context.Context, taskID string, payload InvestigationCompletedPayload) error {
	return e.emit(ctx, taskID, taskevent.KindInvestigationCompleted, payload)
}

// EmitError appends and broadcasts an error frame.
func (e *Emitter) EmitError(ctx context.Context, taskID string, payload ErrorPayload) error {
	return e.emit(ctx, taskID, taskevent.KindError, payload)
}

// EmitDone appends and broadcasts the done frame that terminates a stream.
func (e *Emitter) EmitDone(ctx context.Context, taskID string) error {
	return e.emit(ctx, taskID, taskevent.KindDone, DonePayload{})
}

// Forget releases the per-task counter. Called after a stream is closed
// with done; a later emit for the same task re-primes from the journal.
func (e *Emitter) Forget(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.streams, taskID)
}

// --- Internal core methods ---

// emit assigns the next step index for the task and runs the
// persist+notify transaction under the task's stream lock.
func (e *Emitter) emit(ctx context.Context, taskID string, kind taskevent.Kind, payload any) error {
	pm, err := payloadMap(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", kind, err)
	}

	st := e.stream(taskID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.primed {
		last, err := e.lastStepIndex(ctx, taskID)
		if err != nil {
			return err
		}
		st.next = last + 1
		st.primed = true
	}

	frame := Frame{
		StepIndex: st.next,
		Kind:      kind,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		Payload:   pm,
	}

	if err := e.persistAndNotify(ctx, taskID, frame); err != nil {
		if errors.Is(err, errDuplicateStep) {
			// Another writer owns this slot. Its frame was persisted and
			// broadcast; report success and realign with the tail on the
			// next emit.
			st.primed = false
			return nil
		}
		// Counter not advanced — the next frame reuses this index, so a
		// dropped frame never leaves a hole in the journal.
		return err
	}

	st.next++
	return nil
}

// stream returns the serialization state for a task, creating it on
// first use.
func (e *Emitter) stream(taskID string) *taskStream {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.streams[taskID]
	if !ok {
		st = &taskStream{}
		e.streams[taskID] = st
	}
	return st
}

// lastStepIndex reads the journal tail for a task, -1 when empty.
func (e *Emitter) lastStepIndex(ctx context.Context, taskID string) (int, error) {
	var last int
	err := e.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(step_index), -1) FROM task_events WHERE task_id = $1`,
		taskID,
	).Scan(&last)
	if err != nil {
		return -1, fmt.Errorf("failed to read journal tail: %w", err)
	}
	return last, nil
}

// persistAndNotify inserts the frame into the journal and broadcasts it
// via NOTIFY in a single transaction (pg_notify is transactional — held
// until COMMIT). A conflict on (task_id, step_index) rolls back and
// returns errDuplicateStep without notifying: the winning writer's
// commit already carried the broadcast for that slot.
func (e *Emitter) persistAndNotify(ctx context.Context, taskID string, frame Frame) error {
	frameJSON, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}
	payloadJSON, err := json.Marshal(frame.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal frame payload: %w", err)
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to the journal (within transaction)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO task_events (task_id, step_index, kind, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (task_id, step_index) DO NOTHING`,
		taskID, frame.StepIndex, string(frame.Kind), payloadJSON, frame.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errDuplicateStep
	}

	notifyPayload, err := truncateIfNeeded(taskID, frame, frameJSON)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", TaskChannel(taskID), notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// --- Internal helpers ---

// payloadMap converts a typed payload struct to the generic map stored
// in the journal's payload column.
func payloadMap(payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// truncateIfNeeded returns the frame JSON as-is if it fits within the
// NOTIFY limit, otherwise a minimal envelope with the routing fields a
// subscriber needs to fetch the full frame from the journal.
func truncateIfNeeded(taskID string, frame Frame, frameJSON []byte) (string, error) {
	if len(frameJSON) <= notifyPayloadLimit {
		return string(frameJSON), nil
	}

	envelope := map[string]any{
		"task_id":    taskID,
		"step_index": frame.StepIndex,
		"kind":       frame.Kind,
		"timestamp":  frame.Timestamp.UTC().Format(time.RFC3339Nano),
		"truncated":  true,
	}
	envelopeJSON, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncation envelope: %w", err)
	}
	return string(envelopeJSON), nil
}
