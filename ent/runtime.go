// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentkube/investigator/ent/schema"
	"github.com/agentkube/investigator/ent/subtask"
	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/ent/taskevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	subtaskFields := schema.SubTask{}.Fields()
	_ = subtaskFields
	// subtaskDescSubject is the schema descriptor for subject field.
	subtaskDescSubject := subtaskFields[2].Descriptor()
	// subtask.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	subtask.SubjectValidator = subtaskDescSubject.Validators[0].(func(string) error)
	// subtaskDescStatus is the schema descriptor for status field.
	subtaskDescStatus := subtaskFields[3].Descriptor()
	// subtask.DefaultStatus holds the default value on creation for the status field.
	subtask.DefaultStatus = subtaskDescStatus.Default.(int)
	// subtask.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	subtask.StatusValidator = subtaskDescStatus.Validators[0].(func(int) error)
	// subtaskDescCreatedAt is the schema descriptor for created_at field.
	subtaskDescCreatedAt := subtaskFields[8].Descriptor()
	// subtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtask.DefaultCreatedAt = subtaskDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPrompt is the schema descriptor for prompt field.
	taskDescPrompt := taskFields[1].Descriptor()
	// task.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	task.PromptValidator = taskDescPrompt.Validators[0].(func(string) error)
	// taskDescResolved is the schema descriptor for resolved field.
	taskDescResolved := taskFields[13].Descriptor()
	// task.DefaultResolved holds the default value on creation for the resolved field.
	task.DefaultResolved = taskDescResolved.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[15].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescStepIndex is the schema descriptor for step_index field.
	taskeventDescStepIndex := taskeventFields[1].Descriptor()
	// taskevent.StepIndexValidator is a validator for the "step_index" field. It is called by the builders before save.
	taskevent.StepIndexValidator = taskeventDescStepIndex.Validators[0].(func(int) error)
	// taskeventDescCreatedAt is the schema descriptor for created_at field.
	taskeventDescCreatedAt := taskeventFields[4].Descriptor()
	// taskevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskevent.DefaultCreatedAt = taskeventDescCreatedAt.Default.(func() time.Time)
}
