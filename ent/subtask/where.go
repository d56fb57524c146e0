// Code generated by ent, DO NOT EDIT.

package subtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentkube/investigator/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldTaskID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldSubject, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldStatus, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldReason, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldGoal, v))
}

// Discovery applies equality check predicate on the "discovery" field. It's identical to DiscoveryEQ.
func Discovery(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldDiscovery, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContainsFold(FieldTaskID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContainsFold(FieldSubject, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.SubTask {
	return predicate.SubTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.SubTask {
	return predicate.SubTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.SubTask {
	return predicate.SubTask(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.SubTask {
	return predicate.SubTask(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.SubTask {
	return predicate.SubTask(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.SubTask {
	return predicate.SubTask(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.SubTask {
	return predicate.SubTask(sql.FieldLTE(FieldStatus, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.SubTask {
	return predicate.SubTask(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.SubTask {
	return predicate.SubTask(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContainsFold(FieldReason, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalIsNil applies the IsNil predicate on the "goal" field.
func GoalIsNil() predicate.SubTask {
	return predicate.SubTask(sql.FieldIsNull(FieldGoal))
}

// GoalNotNil applies the NotNil predicate on the "goal" field.
func GoalNotNil() predicate.SubTask {
	return predicate.SubTask(sql.FieldNotNull(FieldGoal))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContainsFold(FieldGoal, v))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.SubTask {
	return predicate.SubTask(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.SubTask {
	return predicate.SubTask(sql.FieldNotNull(FieldPlan))
}

// DiscoveryEQ applies the EQ predicate on the "discovery" field.
func DiscoveryEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldDiscovery, v))
}

// DiscoveryNEQ applies the NEQ predicate on the "discovery" field.
func DiscoveryNEQ(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNEQ(FieldDiscovery, v))
}

// DiscoveryIn applies the In predicate on the "discovery" field.
func DiscoveryIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldIn(FieldDiscovery, vs...))
}

// DiscoveryNotIn applies the NotIn predicate on the "discovery" field.
func DiscoveryNotIn(vs ...string) predicate.SubTask {
	return predicate.SubTask(sql.FieldNotIn(FieldDiscovery, vs...))
}

// DiscoveryGT applies the GT predicate on the "discovery" field.
func DiscoveryGT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGT(FieldDiscovery, v))
}

// DiscoveryGTE applies the GTE predicate on the "discovery" field.
func DiscoveryGTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldGTE(FieldDiscovery, v))
}

// DiscoveryLT applies the LT predicate on the "discovery" field.
func DiscoveryLT(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLT(FieldDiscovery, v))
}

// DiscoveryLTE applies the LTE predicate on the "discovery" field.
func DiscoveryLTE(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldLTE(FieldDiscovery, v))
}

// DiscoveryContains applies the Contains predicate on the "discovery" field.
func DiscoveryContains(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContains(FieldDiscovery, v))
}

// DiscoveryHasPrefix applies the HasPrefix predicate on the "discovery" field.
func DiscoveryHasPrefix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasPrefix(FieldDiscovery, v))
}

// DiscoveryHasSuffix applies the HasSuffix predicate on the "discovery" field.
func DiscoveryHasSuffix(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldHasSuffix(FieldDiscovery, v))
}

// DiscoveryIsNil applies the IsNil predicate on the "discovery" field.
func DiscoveryIsNil() predicate.SubTask {
	return predicate.SubTask(sql.FieldIsNull(FieldDiscovery))
}

// DiscoveryNotNil applies the NotNil predicate on the "discovery" field.
func DiscoveryNotNil() predicate.SubTask {
	return predicate.SubTask(sql.FieldNotNull(FieldDiscovery))
}

// DiscoveryEqualFold applies the EqualFold predicate on the "discovery" field.
func DiscoveryEqualFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldEqualFold(FieldDiscovery, v))
}

// DiscoveryContainsFold applies the ContainsFold predicate on the "discovery" field.
func DiscoveryContainsFold(v string) predicate.SubTask {
	return predicate.SubTask(sql.FieldContainsFold(FieldDiscovery, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubTask {
	return predicate.SubTask(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.SubTask {
	return predicate.SubTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.SubTask {
	return predicate.SubTask(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubTask) predicate.SubTask {
	return predicate.SubTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubTask) predicate.SubTask {
	return predicate.SubTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubTask) predicate.SubTask {
	return predicate.SubTask(sql.NotPredicates(p))
}
