package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// One row per investigation; the durable record the UI lists and reopens.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.Text("prompt").
			NotEmpty().
			Comment("Original user request (full-text searchable)"),
		field.String("title").
			Optional().
			Nillable().
			Comment("Short display title generated by the metadata pass"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Enum("status").
			Values("processing", "completed", "cancelled", "failed").
			Default("processing"),
		field.Enum("severity").
			Values("critical", "high", "medium", "low", "info").
			Optional().
			Comment("Assessed during the post-investigation metadata pass"),
		field.String("kubecontext").
			Optional().
			Nillable().
			Comment("Cluster context the investigation started against"),
		field.String("model").
			Optional().
			Nillable().
			Comment("Per-task LLM provider override"),
		field.JSON("resource_context", map[string]string{}).
			Optional().
			Comment("Named YAML blobs attached by the caller"),
		field.JSON("log_context", map[string]string{}).
			Optional().
			Comment("Named log excerpts attached by the caller"),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("Investigation summary (full-text searchable)"),
		field.Text("remediation").
			Optional().
			Nillable().
			Comment("Remediation markdown from the final supervisor message"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("resolved").
			Default(false).
			Comment("Operator acknowledgement flag, not a status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", TaskEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("subtasks", SubTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("resolved"),
		index.Fields("status", "created_at"),
		index.Fields("created_at"),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: GIN indexes for full-text search are created via migration hooks
// in pkg/database/migrations.go
func (Task) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
