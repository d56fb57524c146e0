// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentkube/investigator/ent/predicate"
	"github.com/agentkube/investigator/ent/subtask"
	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/ent/taskevent"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TaskUpdate) SetPrompt(v string) *TaskUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrompt(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TaskUpdate) ClearTitle() *TaskUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TaskUpdate) SetTags(v []string) *TaskUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TaskUpdate) AppendTags(v []string) *TaskUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TaskUpdate) ClearTags() *TaskUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *TaskUpdate) SetSeverity(v task.Severity) *TaskUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSeverity(v *task.Severity) *TaskUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *TaskUpdate) ClearSeverity() *TaskUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetKubecontext sets the "kubecontext" field.
func (_u *TaskUpdate) SetKubecontext(v string) *TaskUpdate {
	_u.mutation.SetKubecontext(v)
	return _u
}

// SetNillableKubecontext sets the "kubecontext" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableKubecontext(v *string) *TaskUpdate {
	if v != nil {
		_u.SetKubecontext(*v)
	}
	return _u
}

// ClearKubecontext clears the value of the "kubecontext" field.
func (_u *TaskUpdate) ClearKubecontext() *TaskUpdate {
	_u.mutation.ClearKubecontext()
	return _u
}

// SetModel sets the "model" field.
func (_u *TaskUpdate) SetModel(v string) *TaskUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableModel(v *string) *TaskUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TaskUpdate) ClearModel() *TaskUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetResourceContext sets the "resource_context" field.
func (_u *TaskUpdate) SetResourceContext(v map[string]string) *TaskUpdate {
	_u.mutation.SetResourceContext(v)
	return _u
}

// ClearResourceContext clears the value of the "resource_context" field.
func (_u *TaskUpdate) ClearResourceContext() *TaskUpdate {
	_u.mutation.ClearResourceContext()
	return _u
}

// SetLogContext sets the "log_context" field.
func (_u *TaskUpdate) SetLogContext(v map[string]string) *TaskUpdate {
	_u.mutation.SetLogContext(v)
	return _u
}

// ClearLogContext clears the value of the "log_context" field.
func (_u *TaskUpdate) ClearLogContext() *TaskUpdate {
	_u.mutation.ClearLogContext()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TaskUpdate) SetSummary(v string) *TaskUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSummary(v *string) *TaskUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TaskUpdate) ClearSummary() *TaskUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *TaskUpdate) SetRemediation(v string) *TaskUpdate {
	_u.mutation.SetRemediation(v)
	return _u
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRemediation(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRemediation(*v)
	}
	return _u
}

// ClearRemediation clears the value of the "remediation" field.
func (_u *TaskUpdate) ClearRemediation() *TaskUpdate {
	_u.mutation.ClearRemediation()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *TaskUpdate) SetResolved(v bool) *TaskUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableResolved(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdate) AddEventIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_u *TaskUpdate) AddEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddSubtaskIDs adds the "subtasks" edge to the SubTask entity by IDs.
func (_u *TaskUpdate) AddSubtaskIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddSubtaskIDs(ids...)
	return _u
}

// AddSubtasks adds the "subtasks" edges to the SubTask entity.
func (_u *TaskUpdate) AddSubtasks(v ...*SubTask) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubtaskIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (_u *TaskUpdate) ClearEvents() *TaskUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdate) RemoveEventIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (_u *TaskUpdate) RemoveEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearSubtasks clears all "subtasks" edges to the SubTask entity.
func (_u *TaskUpdate) ClearSubtasks() *TaskUpdate {
	_u.mutation.ClearSubtasks()
	return _u
}

// RemoveSubtaskIDs removes the "subtasks" edge to SubTask entities by IDs.
func (_u *TaskUpdate) RemoveSubtaskIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveSubtaskIDs(ids...)
	return _u
}

// RemoveSubtasks removes "subtasks" edges to SubTask entities.
func (_u *TaskUpdate) RemoveSubtasks(v ...*SubTask) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubtaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Prompt(); ok {
		if err := task.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Task.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := task.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Task.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(task.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(task.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(task.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(task.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(task.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.Kubecontext(); ok {
		_spec.SetField(task.FieldKubecontext, field.TypeString, value)
	}
	if _u.mutation.KubecontextCleared() {
		_spec.ClearField(task.FieldKubecontext, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(task.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(task.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ResourceContext(); ok {
		_spec.SetField(task.FieldResourceContext, field.TypeJSON, value)
	}
	if _u.mutation.ResourceContextCleared() {
		_spec.ClearField(task.FieldResourceContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.LogContext(); ok {
		_spec.SetField(task.FieldLogContext, field.TypeJSON, value)
	}
	if _u.mutation.LogContextCleared() {
		_spec.ClearField(task.FieldLogContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(task.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(task.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(task.FieldRemediation, field.TypeString, value)
	}
	if _u.mutation.RemediationCleared() {
		_spec.ClearField(task.FieldRemediation, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(task.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubtasksIDs(); len(nodes) > 0 && !_u.mutation.SubtasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetPrompt sets the "prompt" field.
func (_u *TaskUpdateOne) SetPrompt(v string) *TaskUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrompt(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TaskUpdateOne) ClearTitle() *TaskUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TaskUpdateOne) SetTags(v []string) *TaskUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TaskUpdateOne) AppendTags(v []string) *TaskUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TaskUpdateOne) ClearTags() *TaskUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *TaskUpdateOne) SetSeverity(v task.Severity) *TaskUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSeverity(v *task.Severity) *TaskUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *TaskUpdateOne) ClearSeverity() *TaskUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetKubecontext sets the "kubecontext" field.
func (_u *TaskUpdateOne) SetKubecontext(v string) *TaskUpdateOne {
	_u.mutation.SetKubecontext(v)
	return _u
}

// SetNillableKubecontext sets the "kubecontext" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableKubecontext(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetKubecontext(*v)
	}
	return _u
}

// ClearKubecontext clears the value of the "kubecontext" field.
func (_u *TaskUpdateOne) ClearKubecontext() *TaskUpdateOne {
	_u.mutation.ClearKubecontext()
	return _u
}

// SetModel sets the "model" field.
func (_u *TaskUpdateOne) SetModel(v string) *TaskUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableModel(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TaskUpdateOne) ClearModel() *TaskUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetResourceContext sets the "resource_context" field.
func (_u *TaskUpdateOne) SetResourceContext(v map[string]string) *TaskUpdateOne {
	_u.mutation.SetResourceContext(v)
	return _u
}

// ClearResourceContext clears the value of the "resource_context" field.
func (_u *TaskUpdateOne) ClearResourceContext() *TaskUpdateOne {
	_u.mutation.ClearResourceContext()
	return _u
}

// SetLogContext sets the "log_context" field.
func (_u *TaskUpdateOne) SetLogContext(v map[string]string) *TaskUpdateOne {
	_u.mutation.SetLogContext(v)
	return _u
}

// ClearLogContext clears the value of the "log_context" field.
func (_u *TaskUpdateOne) ClearLogContext() *TaskUpdateOne {
	_u.mutation.ClearLogContext()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TaskUpdateOne) SetSummary(v string) *TaskUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSummary(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TaskUpdateOne) ClearSummary() *TaskUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *TaskUpdateOne) SetRemediation(v string) *TaskUpdateOne {
	_u.mutation.SetRemediation(v)
	return _u
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRemediation(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRemediation(*v)
	}
	return _u
}

// ClearRemediation clears the value of the "remediation" field.
func (_u *TaskUpdateOne) ClearRemediation() *TaskUpdateOne {
	_u.mutation.ClearRemediation()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *TaskUpdateOne) SetResolved(v bool) *TaskUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableResolved(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdateOne) AddEventIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) AddEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddSubtaskIDs adds the "subtasks" edge to the SubTask entity by IDs.
func (_u *TaskUpdateOne) AddSubtaskIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddSubtaskIDs(ids...)
	return _u
}

// AddSubtasks adds the "subtasks" edges to the SubTask entity.
func (_u *TaskUpdateOne) AddSubtasks(v ...*SubTask) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubtaskIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) ClearEvents() *TaskUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdateOne) RemoveEventIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (_u *TaskUpdateOne) RemoveEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearSubtasks clears all "subtasks" edges to the SubTask entity.
func (_u *TaskUpdateOne) ClearSubtasks() *TaskUpdateOne {
	_u.mutation.ClearSubtasks()
	return _u
}

// RemoveSubtaskIDs removes the "subtasks" edge to SubTask entities by IDs.
func (_u *TaskUpdateOne) RemoveSubtaskIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveSubtaskIDs(ids...)
	return _u
}

// RemoveSubtasks removes "subtasks" edges to SubTask entities.
func (_u *TaskUpdateOne) RemoveSubtasks(v ...*SubTask) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubtaskIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Prompt(); ok {
		if err := task.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Task.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := task.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Task.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(task.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(task.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(task.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(task.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(task.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.Kubecontext(); ok {
		_spec.SetField(task.FieldKubecontext, field.TypeString, value)
	}
	if _u.mutation.KubecontextCleared() {
		_spec.ClearField(task.FieldKubecontext, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(task.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(task.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ResourceContext(); ok {
		_spec.SetField(task.FieldResourceContext, field.TypeJSON, value)
	}
	if _u.mutation.ResourceContextCleared() {
		_spec.ClearField(task.FieldResourceContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.LogContext(); ok {
		_spec.SetField(task.FieldLogContext, field.TypeJSON, value)
	}
	if _u.mutation.LogContextCleared() {
		_spec.ClearField(task.FieldLogContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(task.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(task.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(task.FieldRemediation, field.TypeString, value)
	}
	if _u.mutation.RemediationCleared() {
		_spec.ClearField(task.FieldRemediation, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(task.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubtasksIDs(); len(nodes) > 0 && !_u.mutation.SubtasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
