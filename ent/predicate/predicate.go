// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SubTask is the predicate function for subtask builders.
type SubTask func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskEvent is the predicate function for taskevent builders.
type TaskEvent func(*sql.Selector)
