// Code generated by ent, DO NOT EDIT.

package taskevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskevent type in the database.
	Label = "task_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the taskevent in the database.
	Table = "task_events"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_events"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for taskevent fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldStepIndex,
	FieldKind,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StepIndexValidator is a validator for the "step_index" field. It is called by the builders before save.
	StepIndexValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindTraceStarted           Kind = "trace_started"
	KindAgentStarted           Kind = "agent_started"
	KindAgentCompleted         Kind = "agent_completed"
	KindTextDelta              Kind = "text_delta"
	KindToolCallRequested      Kind = "tool_call_requested"
	KindToolCallApproved       Kind = "tool_call_approved"
	KindToolCallRejected       Kind = "tool_call_rejected"
	KindToolCallOutput         Kind = "tool_call_output"
	KindTodoUpdated            Kind = "todo_updated"
	KindSubtaskAdded           Kind = "subtask_added"
	KindInvestigationCompleted Kind = "investigation_completed"
	KindError                  Kind = "error"
	KindDone                   Kind = "done"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindTraceStarted, KindAgentStarted, KindAgentCompleted, KindTextDelta, KindToolCallRequested, KindToolCallApproved, KindToolCallRejected, KindToolCallOutput, KindTodoUpdated, KindSubtaskAdded, KindInvestigationCompleted, KindError, KindDone:
		return nil
	default:
		return fmt.Errorf("taskevent: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the TaskEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
