package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubTask holds the schema definition for the SubTask entity.
// One row per specialist run: the structured digest of what a sub-agent
// investigated and found, rendered as a card in the UI.
type SubTask struct {
	ent.Schema
}

// Fields of the SubTask.
func (SubTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("subtask_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("subject").
			NotEmpty().
			Comment("What the specialist examined (e.g. a deployment name)"),
		field.Int("status").
			NonNegative().
			Default(0).
			Comment("Count of open issues found, 0 means clean"),
		field.String("reason").
			Optional().
			Comment("One-line motivation for the run"),
		field.Text("goal").
			Optional(),
		field.JSON("plan", []map[string]interface{}{}).
			Optional().
			Comment("Ordered tool steps the specialist executed"),
		field.Text("discovery").
			Optional().
			Comment("Markdown findings"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SubTask.
func (SubTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("subtasks").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SubTask.
func (SubTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
	}
}
