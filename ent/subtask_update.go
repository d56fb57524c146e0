// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentkube/investigator/ent/predicate"
	"github.com/agentkube/investigator/ent/subtask"
)

// SubTaskUpdate is the builder for updating SubTask entities.
type SubTaskUpdate struct {
	config
	hooks    []Hook
	mutation *SubTaskMutation
}

// Where appends a list predicates to the SubTaskUpdate builder.
func (_u *SubTaskUpdate) Where(ps ...predicate.SubTask) *SubTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SubTaskUpdate) SetSubject(v string) *SubTaskUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableSubject(v *string) *SubTaskUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubTaskUpdate) SetStatus(v int) *SubTaskUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableStatus(v *int) *SubTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *SubTaskUpdate) AddStatus(v int) *SubTaskUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *SubTaskUpdate) SetReason(v string) *SubTaskUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableReason(v *string) *SubTaskUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *SubTaskUpdate) ClearReason() *SubTaskUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *SubTaskUpdate) SetGoal(v string) *SubTaskUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableGoal(v *string) *SubTaskUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// ClearGoal clears the value of the "goal" field.
func (_u *SubTaskUpdate) ClearGoal() *SubTaskUpdate {
	_u.mutation.ClearGoal()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *SubTaskUpdate) SetPlan(v []map[string]interface{}) *SubTaskUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *SubTaskUpdate) AppendPlan(v []map[string]interface{}) *SubTaskUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *SubTaskUpdate) ClearPlan() *SubTaskUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetDiscovery sets the "discovery" field.
func (_u *SubTaskUpdate) SetDiscovery(v string) *SubTaskUpdate {
	_u.mutation.SetDiscovery(v)
	return _u
}

// SetNillableDiscovery sets the "discovery" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableDiscovery(v *string) *SubTaskUpdate {
	if v != nil {
		_u.SetDiscovery(*v)
	}
	return _u
}

// ClearDiscovery clears the value of the "discovery" field.
func (_u *SubTaskUpdate) ClearDiscovery() *SubTaskUpdate {
	_u.mutation.ClearDiscovery()
	return _u
}

// Mutation returns the SubTaskMutation object of the builder.
func (_u *SubTaskUpdate) Mutation() *SubTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubTaskUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := subtask.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "SubTask.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubTask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubTask.task"`)
	}
	return nil
}

func (_u *SubTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(subtask.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(subtask.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(subtask.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(subtask.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(subtask.FieldGoal, field.TypeString, value)
	}
	if _u.mutation.GoalCleared() {
		_spec.ClearField(subtask.FieldGoal, field.TypeString)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(subtask.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(subtask.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Discovery(); ok {
		_spec.SetField(subtask.FieldDiscovery, field.TypeString, value)
	}
	if _u.mutation.DiscoveryCleared() {
		_spec.ClearField(subtask.FieldDiscovery, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubTaskUpdateOne is the builder for updating a single SubTask entity.
type SubTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubTaskMutation
}

// SetSubject sets the "subject" field.
func (_u *SubTaskUpdateOne) SetSubject(v string) *SubTaskUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableSubject(v *string) *SubTaskUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubTaskUpdateOne) SetStatus(v int) *SubTaskUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableStatus(v *int) *SubTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *SubTaskUpdateOne) AddStatus(v int) *SubTaskUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *SubTaskUpdateOne) SetReason(v string) *SubTaskUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableReason(v *string) *SubTaskUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *SubTaskUpdateOne) ClearReason() *SubTaskUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *SubTaskUpdateOne) SetGoal(v string) *SubTaskUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableGoal(v *string) *SubTaskUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// ClearGoal clears the value of the "goal" field.
func (_u *SubTaskUpdateOne) ClearGoal() *SubTaskUpdateOne {
	_u.mutation.ClearGoal()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *SubTaskUpdateOne) SetPlan(v []map[string]interface{}) *SubTaskUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *SubTaskUpdateOne) AppendPlan(v []map[string]interface{}) *SubTaskUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *SubTaskUpdateOne) ClearPlan() *SubTaskUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetDiscovery sets the "discovery" field.
func (_u *SubTaskUpdateOne) SetDiscovery(v string) *SubTaskUpdateOne {
	_u.mutation.SetDiscovery(v)
	return _u
}

// SetNillableDiscovery sets the "discovery" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableDiscovery(v *string) *SubTaskUpdateOne {
	if v != nil {
		_u.SetDiscovery(*v)
	}
	return _u
}

// ClearDiscovery clears the value of the "discovery" field.
func (_u *SubTaskUpdateOne) ClearDiscovery() *SubTaskUpdateOne {
	_u.mutation.ClearDiscovery()
	return _u
}

// Mutation returns the SubTaskMutation object of the builder.
func (_u *SubTaskUpdateOne) Mutation() *SubTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubTaskUpdate builder.
func (_u *SubTaskUpdateOne) Where(ps ...predicate.SubTask) *SubTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubTaskUpdateOne) Select(field string, fields ...string) *SubTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubTask entity.
func (_u *SubTaskUpdateOne) Save(ctx context.Context) (*SubTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubTaskUpdateOne) SaveX(ctx context.Context) *SubTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := subtask.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "SubTask.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubTask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubTask.task"`)
	}
	return nil
}

func (_u *SubTaskUpdateOne) sqlSave(ctx context.Context) (_node *SubTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtask.FieldID)
		for _, f := range fields {
			if !subtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtask.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(subtask.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(subtask.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(subtask.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(subtask.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(subtask.FieldGoal, field.TypeString, value)
	}
	if _u.mutation.GoalCleared() {
		_spec.ClearField(subtask.FieldGoal, field.TypeString)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(subtask.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(subtask.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Discovery(); ok {
		_spec.SetField(subtask.FieldDiscovery, field.TypeString, value)
	}
	if _u.mutation.DiscoveryCleared() {
		_spec.ClearField(subtask.FieldDiscovery, field.TypeString)
	}
	_node = &SubTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
