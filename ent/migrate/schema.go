// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SubTasksColumns holds the columns for the "sub_tasks" table.
	SubTasksColumns = []*schema.Column{
		{Name: "subtask_id", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "status", Type: field.TypeInt, Default: 0},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "goal", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "discovery", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// SubTasksTable holds the schema information for the "sub_tasks" table.
	SubTasksTable = &schema.Table{
		Name:       "sub_tasks",
		Columns:    SubTasksColumns,
		PrimaryKey: []*schema.Column{SubTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sub_tasks_tasks_subtasks",
				Columns:    []*schema.Column{SubTasksColumns[8]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subtask_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubTasksColumns[8], SubTasksColumns[7]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processing", "completed", "cancelled", "failed"}, Default: "processing"},
		{Name: "severity", Type: field.TypeEnum, Nullable: true, Enums: []string{"critical", "high", "medium", "low", "info"}},
		{Name: "kubecontext", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "resource_context", Type: field.TypeJSON, Nullable: true},
		{Name: "log_context", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "remediation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_resolved",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[13]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[14]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[14]},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"trace_started", "agent_started", "agent_completed", "text_delta", "tool_call_requested", "tool_call_approved", "tool_call_rejected", "tool_call_output", "todo_updated", "subtask_added", "investigation_completed", "error", "done"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_events_tasks_events",
				Columns:    []*schema.Column{TaskEventsColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_task_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{TaskEventsColumns[5], TaskEventsColumns[1]},
			},
			{
				Name:    "taskevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SubTasksTable,
		TasksTable,
		TaskEventsTable,
	}
)

func init() {
	SubTasksTable.ForeignKeys[0].RefTable = TasksTable
	TaskEventsTable.ForeignKeys[0].RefTable = TasksTable
}
