package services

import (
	"context"
	"fmt"

	"github.com/agentkube/investigator/ent"
	"github.com/agentkube/investigator/ent/taskevent"
)

// EventService provides read access to the per-task event journal.
// Writes go through events.Emitter, which persists and broadcasts each
// frame in a single transaction; this service backs replay and catchup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ReadEventsSince returns the persisted events for a task with
// step_index > after, ordered ascending. Pass after = -1 for a full replay.
func (s *EventService) ReadEventsSince(ctx context.Context, taskID string, after int) ([]*ent.TaskEvent, error) {
	events, err := s.client.TaskEvent.Query().
		Where(
			taskevent.TaskIDEQ(taskID),
			taskevent.StepIndexGT(after),
		).
		Order(ent.Asc(taskevent.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}

// GetEvent returns a single persisted event by (task_id, step_index).
// Used to recover the full payload of frames that were truncated for
// NOTIFY delivery.
func (s *EventService) GetEvent(ctx context.Context, taskID string, stepIndex int) (*ent.TaskEvent, error) {
	ev, err := s.client.TaskEvent.Query().
		Where(
			taskevent.TaskIDEQ(taskID),
			taskevent.StepIndexEQ(stepIndex),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return ev, nil
}

// LastStepIndex returns the highest persisted step index for a task,
// or -1 when the task has no events yet.
func (s *EventService) LastStepIndex(ctx context.Context, taskID string) (int, error) {
	ev, err := s.client.TaskEvent.Query().
		Where(taskevent.TaskIDEQ(taskID)).
		Order(ent.Desc(taskevent.FieldStepIndex)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return -1, nil
		}
		return -1, fmt.Errorf("failed to query last step index: %w", err)
	}

	return ev.StepIndex, nil
}
