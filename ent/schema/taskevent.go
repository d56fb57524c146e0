package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskEvent holds the schema definition for the TaskEvent entity.
// The append-only per-task event journal: one row per streamed frame,
// ordered by step_index. Replay of these rows reproduces the live stream.
type TaskEvent struct {
	ent.Schema
}

// Fields of the TaskEvent.
func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.Int("step_index").
			NonNegative().
			Immutable().
			Comment("Dense per-task ordinal starting at 0"),

		// The closed set of frame kinds. Adding a value here is a wire
		// format change; the UI switches on it.
		field.Enum("kind").
			Values(
				"trace_started",
				"agent_started",
				"agent_completed",
				"text_delta",
				"tool_call_requested",
				"tool_call_approved",
				"tool_call_rejected",
				"tool_call_output",
				"todo_updated",
				"subtask_added",
				"investigation_completed",
				"error",
				"done",
			).
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Kind-specific fields, flattened into the wire frame"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskEvent.
func (TaskEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("events").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskEvent.
func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate appends for the same slot must collide here; callers
		// treat the conflict as success.
		index.Fields("task_id", "step_index").
			Unique(),
		index.Fields("created_at"),
	}
}
