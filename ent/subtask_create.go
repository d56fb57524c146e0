// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentkube/investigator/ent/subtask"
	"github.com/agentkube/investigator/ent/task"
)

// SubTaskCreate is the builder for creating a SubTask entity.
type SubTaskCreate struct {
	config
	mutation *SubTaskMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *SubTaskCreate) SetTaskID(v string) *SubTaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *SubTaskCreate) SetSubject(v string) *SubTaskCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubTaskCreate) SetStatus(v int) *SubTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableStatus(v *int) *SubTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *SubTaskCreate) SetReason(v string) *SubTaskCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableReason(v *string) *SubTaskCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetGoal sets the "goal" field.
func (_c *SubTaskCreate) SetGoal(v string) *SubTaskCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableGoal(v *string) *SubTaskCreate {
	if v != nil {
		_c.SetGoal(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *SubTaskCreate) SetPlan(v []map[string]interface{}) *SubTaskCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetDiscovery sets the "discovery" field.
func (_c *SubTaskCreate) SetDiscovery(v string) *SubTaskCreate {
	_c.mutation.SetDiscovery(v)
	return _c
}

// SetNillableDiscovery sets the "discovery" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableDiscovery(v *string) *SubTaskCreate {
	if v != nil {
		_c.SetDiscovery(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubTaskCreate) SetCreatedAt(v time.Time) *SubTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableCreatedAt(v *time.Time) *SubTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubTaskCreate) SetID(v string) *SubTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SubTaskCreate) SetTask(v *Task) *SubTaskCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the SubTaskMutation object of the builder.
func (_c *SubTaskCreate) Mutation() *SubTaskMutation {
	return _c.mutation
}

// Save creates the SubTask in the database.
func (_c *SubTaskCreate) Save(ctx context.Context) (*SubTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubTaskCreate) SaveX(ctx context.Context) *SubTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := subtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubTaskCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SubTask.task_id"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "SubTask.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := subtask.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "SubTask.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubTask.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "SubTask.task"`)}
	}
	return nil
}

func (_c *SubTaskCreate) sqlSave(ctx context.Context) (*SubTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SubTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubTaskCreate) createSpec() (*SubTask, *sqlgraph.CreateSpec) {
	var (
		_node = &SubTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtask.Table, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(subtask.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(subtask.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(subtask.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(subtask.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Discovery(); ok {
		_spec.SetField(subtask.FieldDiscovery, field.TypeString, value)
		_node.Discovery = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubTaskCreateBulk is the builder for creating many SubTask entities in bulk.
type SubTaskCreateBulk struct {
	config
	err      error
	builders []*SubTaskCreate
}

// Save creates the SubTask entities in the database.
func (_c *SubTaskCreateBulk) Save(ctx context.Context) ([]*SubTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubTaskCreateBulk) SaveX(ctx context.Context) []*SubTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
