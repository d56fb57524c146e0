// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentkube/investigator/ent/predicate"
	"github.com/agentkube/investigator/ent/subtask"
	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/ent/taskevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSubTask   = "SubTask"
	TypeTask      = "Task"
	TypeTaskEvent = "TaskEvent"
)

// SubTaskMutation represents an operation that mutates the SubTask nodes in the graph.
type SubTaskMutation struct {
	config
	op            Op
	typ           string
	id            *string
	subject       *string
	status        *int
	addstatus     *int
	reason        *string
	goal          *string
	plan          *[]map[string]interface{}
	appendplan    []map[string]interface{}
	discovery     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*SubTask, error)
	predicates    []predicate.SubTask
}

var _ ent.Mutation = (*SubTaskMutation)(nil)

// subtaskOption allows management of the mutation configuration using functional options.
type subtaskOption func(*SubTaskMutation)

// newSubTaskMutation creates new mutation for the SubTask entity.
func newSubTaskMutation(c config, op Op, opts ...subtaskOption) *SubTaskMutation {
	m := &SubTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeSubTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubTaskID sets the ID field of the mutation.
func withSubTaskID(id string) subtaskOption {
	return func(m *SubTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *SubTask
		)
		m.oldValue = func(ctx context.Context) (*SubTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubTask sets the old SubTask of the mutation.
func withSubTask(node *SubTask) subtaskOption {
	return func(m *SubTaskMutation) {
		m.oldValue = func(context.Context) (*SubTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubTask entities.
func (m *SubTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SubTaskMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SubTaskMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SubTaskMutation) ResetTaskID() {
	m.task = nil
}

// SetSubject sets the "subject" field.
func (m *SubTaskMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *SubTaskMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *SubTaskMutation) ResetSubject() {
	m.subject = nil
}

// SetStatus sets the "status" field.
func (m *SubTaskMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *SubTaskMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *SubTaskMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *SubTaskMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *SubTaskMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetReason sets the "reason" field.
func (m *SubTaskMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *SubTaskMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *SubTaskMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[subtask.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *SubTaskMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[subtask.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *SubTaskMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, subtask.FieldReason)
}

// SetGoal sets the "goal" field.
func (m *SubTaskMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *SubTaskMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ClearGoal clears the value of the "goal" field.
func (m *SubTaskMutation) ClearGoal() {
	m.goal = nil
	m.clearedFields[subtask.FieldGoal] = struct{}{}
}

// GoalCleared returns if the "goal" field was cleared in this mutation.
func (m *SubTaskMutation) GoalCleared() bool {
	_, ok := m.clearedFields[subtask.FieldGoal]
	return ok
}

// ResetGoal resets all changes to the "goal" field.
func (m *SubTaskMutation) ResetGoal() {
	m.goal = nil
	delete(m.clearedFields, subtask.FieldGoal)
}

// SetPlan sets the "plan" field.
func (m *SubTaskMutation) SetPlan(value []map[string]interface{}) {
	m.plan = &value
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *SubTaskMutation) Plan() (r []map[string]interface{}, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldPlan(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds value to the "plan" field.
func (m *SubTaskMutation) AppendPlan(value []map[string]interface{}) {
	m.appendplan = append(m.appendplan, value...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *SubTaskMutation) AppendedPlan() ([]map[string]interface{}, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ClearPlan clears the value of the "plan" field.
func (m *SubTaskMutation) ClearPlan() {
	m.plan = nil
	m.appendplan = nil
	m.clearedFields[subtask.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *SubTaskMutation) PlanCleared() bool {
	_, ok := m.clearedFields[subtask.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *SubTaskMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
	delete(m.clearedFields, subtask.FieldPlan)
}

// SetDiscovery sets the "discovery" field.
func (m *SubTaskMutation) SetDiscovery(s string) {
	m.discovery = &s
}

// Discovery returns the value of the "discovery" field in the mutation.
func (m *SubTaskMutation) Discovery() (r string, exists bool) {
	v := m.discovery
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscovery returns the old "discovery" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldDiscovery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscovery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscovery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscovery: %w", err)
	}
	return oldValue.Discovery, nil
}

// ClearDiscovery clears the value of the "discovery" field.
func (m *SubTaskMutation) ClearDiscovery() {
	m.discovery = nil
	m.clearedFields[subtask.FieldDiscovery] = struct{}{}
}

// DiscoveryCleared returns if the "discovery" field was cleared in this mutation.
func (m *SubTaskMutation) DiscoveryCleared() bool {
	_, ok := m.clearedFields[subtask.FieldDiscovery]
	return ok
}

// ResetDiscovery resets all changes to the "discovery" field.
func (m *SubTaskMutation) ResetDiscovery() {
	m.discovery = nil
	delete(m.clearedFields, subtask.FieldDiscovery)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SubTaskMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[subtask.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SubTaskMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SubTaskMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SubTaskMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the SubTaskMutation builder.
func (m *SubTaskMutation) Where(ps ...predicate.SubTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubTask).
func (m *SubTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubTaskMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.task != nil {
		fields = append(fields, subtask.FieldTaskID)
	}
	if m.subject != nil {
		fields = append(fields, subtask.FieldSubject)
	}
	if m.status != nil {
		fields = append(fields, subtask.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, subtask.FieldReason)
	}
	if m.goal != nil {
		fields = append(fields, subtask.FieldGoal)
	}
	if m.plan != nil {
		fields = append(fields, subtask.FieldPlan)
	}
	if m.discovery != nil {
		fields = append(fields, subtask.FieldDiscovery)
	}
	if m.created_at != nil {
		fields = append(fields, subtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subtask.FieldTaskID:
		return m.TaskID()
	case subtask.FieldSubject:
		return m.Subject()
	case subtask.FieldStatus:
		return m.Status()
	case subtask.FieldReason:
		return m.Reason()
	case subtask.FieldGoal:
		return m.Goal()
	case subtask.FieldPlan:
		return m.Plan()
	case subtask.FieldDiscovery:
		return m.Discovery()
	case subtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subtask.FieldTaskID:
		return m.OldTaskID(ctx)
	case subtask.FieldSubject:
		return m.OldSubject(ctx)
	case subtask.FieldStatus:
		return m.OldStatus(ctx)
	case subtask.FieldReason:
		return m.OldReason(ctx)
	case subtask.FieldGoal:
		return m.OldGoal(ctx)
	case subtask.FieldPlan:
		return m.OldPlan(ctx)
	case subtask.FieldDiscovery:
		return m.OldDiscovery(ctx)
	case subtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subtask.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case subtask.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case subtask.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subtask.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case subtask.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case subtask.FieldPlan:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case subtask.FieldDiscovery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscovery(v)
		return nil
	case subtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubTaskMutation) AddedFields() []string {
	var fields []string
	if m.addstatus != nil {
		fields = append(fields, subtask.FieldStatus)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subtask.FieldStatus:
		return m.AddedStatus()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subtask.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	}
	return fmt.Errorf("unknown SubTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subtask.FieldReason) {
		fields = append(fields, subtask.FieldReason)
	}
	if m.FieldCleared(subtask.FieldGoal) {
		fields = append(fields, subtask.FieldGoal)
	}
	if m.FieldCleared(subtask.FieldPlan) {
		fields = append(fields, subtask.FieldPlan)
	}
	if m.FieldCleared(subtask.FieldDiscovery) {
		fields = append(fields, subtask.FieldDiscovery)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubTaskMutation) ClearField(name string) error {
	switch name {
	case subtask.FieldReason:
		m.ClearReason()
		return nil
	case subtask.FieldGoal:
		m.ClearGoal()
		return nil
	case subtask.FieldPlan:
		m.ClearPlan()
		return nil
	case subtask.FieldDiscovery:
		m.ClearDiscovery()
		return nil
	}
	return fmt.Errorf("unknown SubTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubTaskMutation) ResetField(name string) error {
	switch name {
	case subtask.FieldTaskID:
		m.ResetTaskID()
		return nil
	case subtask.FieldSubject:
		m.ResetSubject()
		return nil
	case subtask.FieldStatus:
		m.ResetStatus()
		return nil
	case subtask.FieldReason:
		m.ResetReason()
		return nil
	case subtask.FieldGoal:
		m.ResetGoal()
		return nil
	case subtask.FieldPlan:
		m.ResetPlan()
		return nil
	case subtask.FieldDiscovery:
		m.ResetDiscovery()
		return nil
	case subtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, subtask.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subtask.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, subtask.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case subtask.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubTaskMutation) ClearEdge(name string) error {
	switch name {
	case subtask.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown SubTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubTaskMutation) ResetEdge(name string) error {
	switch name {
	case subtask.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown SubTask edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op               Op
	typ              string
	id               *string
	prompt           *string
	title            *string
	tags             *[]string
	appendtags       []string
	status           *task.Status
	severity         *task.Severity
	kubecontext      *string
	model            *string
	resource_context *map[string]string
	log_context      *map[string]string
	summary          *string
	remediation      *string
	error_message    *string
	resolved         *bool
	created_at       *time.Time
	updated_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	events           map[int]struct{}
	removedevents    map[int]struct{}
	clearedevents    bool
	subtasks         map[string]struct{}
	removedsubtasks  map[string]struct{}
	clearedsubtasks  bool
	done             bool
	oldValue         func(context.Context) (*Task, error)
	predicates       []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrompt sets the "prompt" field.
func (m *TaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *TaskMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[task.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *TaskMutation) TitleCleared() bool {
	_, ok := m.clearedFields[task.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, task.FieldTitle)
}

// SetTags sets the "tags" field.
func (m *TaskMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TaskMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TaskMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TaskMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *TaskMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[task.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *TaskMutation) TagsCleared() bool {
	_, ok := m.clearedFields[task.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *TaskMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, task.FieldTags)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetSeverity sets the "severity" field.
func (m *TaskMutation) SetSeverity(t task.Severity) {
	m.severity = &t
}

// Severity returns the value of the "severity" field in the mutation.
func (m *TaskMutation) Severity() (r task.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSeverity(ctx context.Context) (v task.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *TaskMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[task.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *TaskMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[task.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *TaskMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, task.FieldSeverity)
}

// SetKubecontext sets the "kubecontext" field.
func (m *TaskMutation) SetKubecontext(s string) {
	m.kubecontext = &s
}

// Kubecontext returns the value of the "kubecontext" field in the mutation.
func (m *TaskMutation) Kubecontext() (r string, exists bool) {
	v := m.kubecontext
	if v == nil {
		return
	}
	return *v, true
}

// OldKubecontext returns the old "kubecontext" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldKubecontext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKubecontext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKubecontext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKubecontext: %w", err)
	}
	return oldValue.Kubecontext, nil
}

// ClearKubecontext clears the value of the "kubecontext" field.
func (m *TaskMutation) ClearKubecontext() {
	m.kubecontext = nil
	m.clearedFields[task.FieldKubecontext] = struct{}{}
}

// KubecontextCleared returns if the "kubecontext" field was cleared in this mutation.
func (m *TaskMutation) KubecontextCleared() bool {
	_, ok := m.clearedFields[task.FieldKubecontext]
	return ok
}

// ResetKubecontext resets all changes to the "kubecontext" field.
func (m *TaskMutation) ResetKubecontext() {
	m.kubecontext = nil
	delete(m.clearedFields, task.FieldKubecontext)
}

// SetModel sets the "model" field.
func (m *TaskMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TaskMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *TaskMutation) ClearModel() {
	m.model = nil
	m.clearedFields[task.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *TaskMutation) ModelCleared() bool {
	_, ok := m.clearedFields[task.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *TaskMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, task.FieldModel)
}

// SetResourceContext sets the "resource_context" field.
func (m *TaskMutation) SetResourceContext(value map[string]string) {
	m.resource_context = &value
}

// ResourceContext returns the value of the "resource_context" field in the mutation.
func (m *TaskMutation) ResourceContext() (r map[string]string, exists bool) {
	v := m.resource_context
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceContext returns the old "resource_context" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResourceContext(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceContext: %w", err)
	}
	return oldValue.ResourceContext, nil
}

// ClearResourceContext clears the value of the "resource_context" field.
func (m *TaskMutation) ClearResourceContext() {
	m.resource_context = nil
	m.clearedFields[task.FieldResourceContext] = struct{}{}
}

// ResourceContextCleared returns if the "resource_context" field was cleared in this mutation.
func (m *TaskMutation) ResourceContextCleared() bool {
	_, ok := m.clearedFields[task.FieldResourceContext]
	return ok
}

// ResetResourceContext resets all changes to the "resource_context" field.
func (m *TaskMutation) ResetResourceContext() {
	m.resource_context = nil
	delete(m.clearedFields, task.FieldResourceContext)
}

// SetLogContext sets the "log_context" field.
func (m *TaskMutation) SetLogContext(value map[string]string) {
	m.log_context = &value
}

// LogContext returns the value of the "log_context" field in the mutation.
func (m *TaskMutation) LogContext() (r map[string]string, exists bool) {
	v := m.log_context
	if v == nil {
		return
	}
	return *v, true
}

// OldLogContext returns the old "log_context" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLogContext(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogContext: %w", err)
	}
	return oldValue.LogContext, nil
}

// ClearLogContext clears the value of the "log_context" field.
func (m *TaskMutation) ClearLogContext() {
	m.log_context = nil
	m.clearedFields[task.FieldLogContext] = struct{}{}
}

// LogContextCleared returns if the "log_context" field was cleared in this mutation.
func (m *TaskMutation) LogContextCleared() bool {
	_, ok := m.clearedFields[task.FieldLogContext]
	return ok
}

// ResetLogContext resets all changes to the "log_context" field.
func (m *TaskMutation) ResetLogContext() {
	m.log_context = nil
	delete(m.clearedFields, task.FieldLogContext)
}

// SetSummary sets the "summary" field.
func (m *TaskMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TaskMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *TaskMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[task.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *TaskMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[task.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *TaskMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, task.FieldSummary)
}

// SetRemediation sets the "remediation" field.
func (m *TaskMutation) SetRemediation(s string) {
	m.remediation = &s
}

// Remediation returns the value of the "remediation" field in the mutation.
func (m *TaskMutation) Remediation() (r string, exists bool) {
	v := m.remediation
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediation returns the old "remediation" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRemediation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediation: %w", err)
	}
	return oldValue.Remediation, nil
}

// ClearRemediation clears the value of the "remediation" field.
func (m *TaskMutation) ClearRemediation() {
	m.remediation = nil
	m.clearedFields[task.FieldRemediation] = struct{}{}
}

// RemediationCleared returns if the "remediation" field was cleared in this mutation.
func (m *TaskMutation) RemediationCleared() bool {
	_, ok := m.clearedFields[task.FieldRemediation]
	return ok
}

// ResetRemediation resets all changes to the "remediation" field.
func (m *TaskMutation) ResetRemediation() {
	m.remediation = nil
	delete(m.clearedFields, task.FieldRemediation)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetResolved sets the "resolved" field.
func (m *TaskMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *TaskMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *TaskMutation) ResetResolved() {
	m.resolved = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by ids.
func (m *TaskMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the TaskEvent entity.
func (m *TaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the TaskEvent entity was cleared.
func (m *TaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the TaskEvent entity by IDs.
func (m *TaskMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the TaskEvent entity.
func (m *TaskMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddSubtaskIDs adds the "subtasks" edge to the SubTask entity by ids.
func (m *TaskMutation) AddSubtaskIDs(ids ...string) {
	if m.subtasks == nil {
		m.subtasks = make(map[string]struct{})
	}
	for i := range ids {
		m.subtasks[ids[i]] = struct{}{}
	}
}

// ClearSubtasks clears the "subtasks" edge to the SubTask entity.
func (m *TaskMutation) ClearSubtasks() {
	m.clearedsubtasks = true
}

// SubtasksCleared reports if the "subtasks" edge to the SubTask entity was cleared.
func (m *TaskMutation) SubtasksCleared() bool {
	return m.clearedsubtasks
}

// RemoveSubtaskIDs removes the "subtasks" edge to the SubTask entity by IDs.
func (m *TaskMutation) RemoveSubtaskIDs(ids ...string) {
	if m.removedsubtasks == nil {
		m.removedsubtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.subtasks, ids[i])
		m.removedsubtasks[ids[i]] = struct{}{}
	}
}

// RemovedSubtasks returns the removed IDs of the "subtasks" edge to the SubTask entity.
func (m *TaskMutation) RemovedSubtasksIDs() (ids []string) {
	for id := range m.removedsubtasks {
		ids = append(ids, id)
	}
	return
}

// SubtasksIDs returns the "subtasks" edge IDs in the mutation.
func (m *TaskMutation) SubtasksIDs() (ids []string) {
	for id := range m.subtasks {
		ids = append(ids, id)
	}
	return
}

// ResetSubtasks resets all changes to the "subtasks" edge.
func (m *TaskMutation) ResetSubtasks() {
	m.subtasks = nil
	m.clearedsubtasks = false
	m.removedsubtasks = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.prompt != nil {
		fields = append(fields, task.FieldPrompt)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.tags != nil {
		fields = append(fields, task.FieldTags)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.severity != nil {
		fields = append(fields, task.FieldSeverity)
	}
	if m.kubecontext != nil {
		fields = append(fields, task.FieldKubecontext)
	}
	if m.model != nil {
		fields = append(fields, task.FieldModel)
	}
	if m.resource_context != nil {
		fields = append(fields, task.FieldResourceContext)
	}
	if m.log_context != nil {
		fields = append(fields, task.FieldLogContext)
	}
	if m.summary != nil {
		fields = append(fields, task.FieldSummary)
	}
	if m.remediation != nil {
		fields = append(fields, task.FieldRemediation)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.resolved != nil {
		fields = append(fields, task.FieldResolved)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPrompt:
		return m.Prompt()
	case task.FieldTitle:
		return m.Title()
	case task.FieldTags:
		return m.Tags()
	case task.FieldStatus:
		return m.Status()
	case task.FieldSeverity:
		return m.Severity()
	case task.FieldKubecontext:
		return m.Kubecontext()
	case task.FieldModel:
		return m.Model()
	case task.FieldResourceContext:
		return m.ResourceContext()
	case task.FieldLogContext:
		return m.LogContext()
	case task.FieldSummary:
		return m.Summary()
	case task.FieldRemediation:
		return m.Remediation()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldResolved:
		return m.Resolved()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldPrompt:
		return m.OldPrompt(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldTags:
		return m.OldTags(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldSeverity:
		return m.OldSeverity(ctx)
	case task.FieldKubecontext:
		return m.OldKubecontext(ctx)
	case task.FieldModel:
		return m.OldModel(ctx)
	case task.FieldResourceContext:
		return m.OldResourceContext(ctx)
	case task.FieldLogContext:
		return m.OldLogContext(ctx)
	case task.FieldSummary:
		return m.OldSummary(ctx)
	case task.FieldRemediation:
		return m.OldRemediation(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldResolved:
		return m.OldResolved(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldSeverity:
		v, ok := value.(task.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case task.FieldKubecontext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKubecontext(v)
		return nil
	case task.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case task.FieldResourceContext:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceContext(v)
		return nil
	case task.FieldLogContext:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogContext(v)
		return nil
	case task.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case task.FieldRemediation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediation(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldTitle) {
		fields = append(fields, task.FieldTitle)
	}
	if m.FieldCleared(task.FieldTags) {
		fields = append(fields, task.FieldTags)
	}
	if m.FieldCleared(task.FieldSeverity) {
		fields = append(fields, task.FieldSeverity)
	}
	if m.FieldCleared(task.FieldKubecontext) {
		fields = append(fields, task.FieldKubecontext)
	}
	if m.FieldCleared(task.FieldModel) {
		fields = append(fields, task.FieldModel)
	}
	if m.FieldCleared(task.FieldResourceContext) {
		fields = append(fields, task.FieldResourceContext)
	}
	if m.FieldCleared(task.FieldLogContext) {
		fields = append(fields, task.FieldLogContext)
	}
	if m.FieldCleared(task.FieldSummary) {
		fields = append(fields, task.FieldSummary)
	}
	if m.FieldCleared(task.FieldRemediation) {
		fields = append(fields, task.FieldRemediation)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ClearTitle()
		return nil
	case task.FieldTags:
		m.ClearTags()
		return nil
	case task.FieldSeverity:
		m.ClearSeverity()
		return nil
	case task.FieldKubecontext:
		m.ClearKubecontext()
		return nil
	case task.FieldModel:
		m.ClearModel()
		return nil
	case task.FieldResourceContext:
		m.ClearResourceContext()
		return nil
	case task.FieldLogContext:
		m.ClearLogContext()
		return nil
	case task.FieldSummary:
		m.ClearSummary()
		return nil
	case task.FieldRemediation:
		m.ClearRemediation()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldPrompt:
		m.ResetPrompt()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldTags:
		m.ResetTags()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldSeverity:
		m.ResetSeverity()
		return nil
	case task.FieldKubecontext:
		m.ResetKubecontext()
		return nil
	case task.FieldModel:
		m.ResetModel()
		return nil
	case task.FieldResourceContext:
		m.ResetResourceContext()
		return nil
	case task.FieldLogContext:
		m.ResetLogContext()
		return nil
	case task.FieldSummary:
		m.ResetSummary()
		return nil
	case task.FieldRemediation:
		m.ResetRemediation()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldResolved:
		m.ResetResolved()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.events != nil {
		edges = append(edges, task.EdgeEvents)
	}
	if m.subtasks != nil {
		edges = append(edges, task.EdgeSubtasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSubtasks:
		ids := make([]ent.Value, 0, len(m.subtasks))
		for id := range m.subtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevents != nil {
		edges = append(edges, task.EdgeEvents)
	}
	if m.removedsubtasks != nil {
		edges = append(edges, task.EdgeSubtasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSubtasks:
		ids := make([]ent.Value, 0, len(m.removedsubtasks))
		for id := range m.removedsubtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevents {
		edges = append(edges, task.EdgeEvents)
	}
	if m.clearedsubtasks {
		edges = append(edges, task.EdgeSubtasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeEvents:
		return m.clearedevents
	case task.EdgeSubtasks:
		return m.clearedsubtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeEvents:
		m.ResetEvents()
		return nil
	case task.EdgeSubtasks:
		m.ResetSubtasks()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskEventMutation represents an operation that mutates the TaskEvent nodes in the graph.
type TaskEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	step_index    *int
	addstep_index *int
	kind          *taskevent.Kind
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*TaskEvent, error)
	predicates    []predicate.TaskEvent
}

var _ ent.Mutation = (*TaskEventMutation)(nil)

// taskeventOption allows management of the mutation configuration using functional options.
type taskeventOption func(*TaskEventMutation)

// newTaskEventMutation creates new mutation for the TaskEvent entity.
func newTaskEventMutation(c config, op Op, opts ...taskeventOption) *TaskEventMutation {
	m := &TaskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEventID sets the ID field of the mutation.
func withTaskEventID(id int) taskeventOption {
	return func(m *TaskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvent sets the old TaskEvent of the mutation.
func withTaskEvent(node *TaskEvent) taskeventOption {
	return func(m *TaskEventMutation) {
		m.oldValue = func(context.Context) (*TaskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskEventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskEventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskEventMutation) ResetTaskID() {
	m.task = nil
}

// SetStepIndex sets the "step_index" field.
func (m *TaskEventMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *TaskEventMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *TaskEventMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *TaskEventMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *TaskEventMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetKind sets the "kind" field.
func (m *TaskEventMutation) SetKind(t taskevent.Kind) {
	m.kind = &t
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TaskEventMutation) Kind() (r taskevent.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldKind(ctx context.Context) (v taskevent.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TaskEventMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *TaskEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *TaskEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[taskevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *TaskEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, taskevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskEventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskevent.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskEventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskEventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskEventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskEventMutation builder.
func (m *TaskEventMutation) Where(ps ...predicate.TaskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvent).
func (m *TaskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, taskevent.FieldTaskID)
	}
	if m.step_index != nil {
		fields = append(fields, taskevent.FieldStepIndex)
	}
	if m.kind != nil {
		fields = append(fields, taskevent.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, taskevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, taskevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldTaskID:
		return m.TaskID()
	case taskevent.FieldStepIndex:
		return m.StepIndex()
	case taskevent.FieldKind:
		return m.Kind()
	case taskevent.FieldPayload:
		return m.Payload()
	case taskevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskevent.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case taskevent.FieldKind:
		return m.OldKind(ctx)
	case taskevent.FieldPayload:
		return m.OldPayload(ctx)
	case taskevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskevent.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case taskevent.FieldKind:
		v, ok := value.(taskevent.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case taskevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case taskevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEventMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, taskevent.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskevent.FieldPayload) {
		fields = append(fields, taskevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEventMutation) ClearField(name string) error {
	switch name {
	case taskevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEventMutation) ResetField(name string) error {
	switch name {
	case taskevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskevent.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case taskevent.FieldKind:
		m.ResetKind()
		return nil
	case taskevent.FieldPayload:
		m.ResetPayload()
		return nil
	case taskevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskevent.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEventMutation) EdgeCleared(name string) bool {
	switch name {
	case taskevent.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEventMutation) ClearEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEventMutation) ResetEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent edge %s", name)
}
