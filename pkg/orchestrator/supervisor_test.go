package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent"
	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/session"
	"github.com/agentkube/investigator/pkg/todo"
	"github.com/agentkube/investigator/pkg/tools"
)

// --- scripted LLM ---

// scriptedClient replays canned chunk sequences keyed by agent name, one
// script per successive Generate call. A nil script entry blocks until the
// context is cancelled.
type scriptedClient struct {
	mu      sync.Mutex
	scripts map[string][][]agent.Chunk
	calls   map[string]int
}

func newScriptedClient() *scriptedClient {
	return &scriptedClient{
		scripts: make(map[string][][]agent.Chunk),
		calls:   make(map[string]int),
	}
}

func (c *scriptedClient) addTurn(agentName string, chunks ...agent.Chunk) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scripts[agentName] = append(c.scripts[agentName], chunks)
}

// addBlockingTurn schedules a turn that never produces chunks and only
// ends when the run context is cancelled.
func (c *scriptedClient) addBlockingTurn(agentName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scripts[agentName] = append(c.scripts[agentName], nil)
}

func (c *scriptedClient) Generate(ctx context.Context, in *agent.GenerateInput) (<-chan agent.Chunk, error) {
	c.mu.Lock()
	turn := c.calls[in.Agent]
	c.calls[in.Agent]++
	script := c.scripts[in.Agent]
	c.mu.Unlock()

	if turn >= len(script) {
		return nil, fmt.Errorf("no script for %s turn %d", in.Agent, turn+1)
	}

	out := make(chan agent.Chunk, 16)
	go func() {
		defer close(out)
		if script[turn] == nil {
			<-ctx.Done()
			return
		}
		for _, chunk := range script[turn] {
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (c *scriptedClient) Close() error { return nil }

// scriptedFactory hands the same scripted client to every agent.
type scriptedFactory struct{ client *scriptedClient }

func (f *scriptedFactory) ClientFor(*config.LLMProviderConfig) (agent.LLMClient, error) {
	return f.client, nil
}

// --- recorder emitter ---

type recordedEvent struct {
	kind    string
	payload any
}

type recorderEmitter struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorderEmitter) record(kind string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{kind: kind, payload: payload})
	return nil
}

func (r *recorderEmitter) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.kind
	}
	return out
}

func (r *recorderEmitter) find(kind string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range r.events {
		if ev.kind == kind {
			return ev.payload, true
		}
	}
	return nil, false
}

func (r *recorderEmitter) EmitTraceStarted(_ context.Context, _ string, p events.TraceStartedPayload) error {
	return r.record("trace_started", p)
}
func (r *recorderEmitter) EmitAgentStarted(_ context.Context, _ string, p events.AgentStartedPayload) error {
	return r.record("agent_started", p)
}
func (r *recorderEmitter) EmitAgentCompleted(_ context.Context, _ string, p events.AgentCompletedPayload) error {
	return r.record("agent_completed", p)
}
func (r *recorderEmitter) EmitTextDelta(_ context.Context, _ string, p events.TextDeltaPayload) error {
	return r.record("text_delta", p)
}
func (r *recorderEmitter) EmitToolCallRequested(_ context.Context, _ string, p events.ToolCallRequestedPayload) error {
	return r.record("tool_call_requested", p)
}
func (r *recorderEmitter) EmitToolCallApproved(_ context.Context, _ string, p events.ToolCallApprovedPayload) error {
	return r.record("tool_call_approved", p)
}
func (r *recorderEmitter) EmitToolCallRejected(_ context.Context, _ string, p events.ToolCallRejectedPayload) error {
	return r.record("tool_call_rejected", p)
}
func (r *recorderEmitter) EmitToolCallOutput(_ context.Context, _ string, p events.ToolCallOutputPayload) error {
	return r.record("tool_call_output", p)
}
func (r *recorderEmitter) EmitTodoUpdated(_ context.Context, _ string, p events.TodoUpdatedPayload) error {
	return r.record("todo_updated", p)
}
func (r *recorderEmitter) EmitSubTaskAdded(_ context.Context, _ string, p events.SubTaskAddedPayload) error {
	return r.record("subtask_added", p)
}
func (r *recorderEmitter) EmitInvestigationCompleted(_ context.Context, _ string, p events.InvestigationCompletedPayload) error {
	return r.record("investigation_completed", p)
}
func (r *recorderEmitter) EmitError(_ context.Context, _ string, p events.ErrorPayload) error {
	return r.record("error", p)
}
func (r *recorderEmitter) EmitDone(_ context.Context, _ string) error {
	return r.record("done", nil)
}
func (r *recorderEmitter) Forget(string) {}

// --- fake task store ---

type fakeTaskStore struct {
	mu       sync.Mutex
	tasks    map[string]*ent.Task
	subtasks []models.CreateSubTaskRequest
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]*ent.Task)}
}

func (s *fakeTaskStore) CreateTask(_ context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &ent.Task{ID: req.TaskID, Prompt: req.Prompt, Status: task.StatusProcessing}
	s.tasks[req.TaskID] = t
	return t, nil
}

func (s *fakeTaskStore) UpdateTask(_ context.Context, taskID string, patch models.UpdateTaskRequest) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("task %s not found", taskID)
	}
	if patch.Title != nil {
		t.Title = patch.Title
	}
	if patch.Tags != nil {
		t.Tags = patch.Tags
	}
	if patch.Severity != nil {
		t.Severity = *patch.Severity
	}
	if patch.Summary != nil {
		t.Summary = patch.Summary
	}
	if patch.Remediation != nil {
		t.Remediation = patch.Remediation
	}
	if patch.ErrorMessage != nil {
		t.ErrorMessage = patch.ErrorMessage
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	return t, nil
}

func (s *fakeTaskStore) AddSubTask(_ context.Context, req models.CreateSubTaskRequest) (*ent.SubTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subtasks = append(s.subtasks, req)
	return &ent.SubTask{ID: uuid.NewString(), TaskID: req.TaskID, Subject: req.Subject}, nil
}

func (s *fakeTaskStore) SearchTasks(context.Context, string, int) ([]*ent.Task, error) {
	return nil, nil
}

func (s *fakeTaskStore) FindProcessingTasks(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, t := range s.tasks {
		if t.Status == task.StatusProcessing {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *fakeTaskStore) get(taskID string) *ent.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks[taskID]
}

// --- fake cluster ---

type fakeCluster struct{}

func (fakeCluster) ResourceYAML(context.Context, string, string, string, string) (string, error) {
	return "kind: Pod\nstatus: Running", nil
}
func (fakeCluster) ResourceDependencies(context.Context, string, string, string, string) (string, error) {
	return "deployment -> replicaset -> pod", nil
}
func (fakeCluster) ListResources(context.Context, string, string, string, string) (string, error) {
	return "payments-0\npayments-1", nil
}
func (fakeCluster) PodLogs(context.Context, string, string, string, string, int) (string, error) {
	return "OOMKilled: memory limit exceeded", nil
}
func (fakeCluster) SearchLogs(context.Context, string, string, string, time.Duration) (string, error) {
	return "3 matches", nil
}
func (fakeCluster) QueryMetrics(context.Context, string, string, time.Duration) (string, error) {
	return "memory_usage: 98%", nil
}

// --- wiring ---

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	maxTurns := 10
	return &config.Config{
		Defaults: &config.Defaults{LLMProvider: "scripted", MaxTurns: &maxTurns},
		System:   &config.SystemConfig{ListenAddr: "127.0.0.1:0", TodoSnapshotDir: t.TempDir()},
		AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
			config.AgentSupervisor: {
				Description:  "coordinates",
				Instructions: "supervise the investigation",
				Tools: []string{
					"write_todos", "read_todos", "set_kubecontext",
					"lookup_past_investigations", "run_shell",
					config.AgentLogAnalysis,
				},
			},
			config.AgentLogAnalysis: {
				Description:  "digs through logs",
				Instructions: "analyze logs",
				Tools:        []string{"pod_logs", "search_logs", "read_todos"},
			},
		}),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"scripted": {
				Type:                config.LLMProviderTypeAnthropic,
				Model:               "scripted-model",
				MaxToolResultTokens: 2500,
			},
		}),
	}
}

func testRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	reg := tools.NewRegistry()
	require.NoError(t, reg.RegisterAll(tools.ClusterDescriptors()...))
	require.NoError(t, reg.RegisterAll(todo.Descriptors()...))
	require.NoError(t, reg.Register(tools.RunShellDescriptor()))
	require.NoError(t, reg.Register(tools.LookupDescriptor()))
	return reg
}

func newTestSupervisor(t *testing.T, client *scriptedClient) (*Supervisor, *recorderEmitter, *fakeTaskStore) {
	t.Helper()
	emitter := &recorderEmitter{}
	store := newFakeTaskStore()
	sup := NewSupervisor(Deps{
		Config:   testConfig(t),
		Registry: testRegistry(t),
		Tasks:    store,
		Emitter:  emitter,
		LLM:      &scriptedFactory{client: client},
		Sessions: session.NewManager(),
		Cluster:  fakeCluster{},
		Logger:   slog.New(slog.DiscardHandler),
	})
	return sup, emitter, store
}

func investigate(t *testing.T, sup *Supervisor, req *models.InvestigateRequest) *session.Session {
	t.Helper()
	sess, err := sup.Begin(context.Background(), req)
	require.NoError(t, err)
	return sess
}

// --- tests ---

func TestInvestigationWithDelegation(t *testing.T) {
	client := newScriptedClient()
	client.addTurn("summarizer", &agent.TextChunk{Content: `{"title":"Payments crashloop"}`})
	client.addTurn(config.AgentSupervisor,
		&agent.ToolCallChunk{CallID: "call-1", Name: config.AgentLogAnalysis, Arguments: `{"question":"why is payments crashing?"}`})
	client.addTurn(config.AgentLogAnalysis,
		&agent.ToolCallChunk{CallID: "call-2", Name: "pod_logs", Arguments: `{"namespace":"prod","pod":"payments-0"}`})
	client.addTurn(config.AgentLogAnalysis,
		&agent.TextChunk{Content: "Payments pods are OOMKilled."})
	client.addTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "## Summary\nPayments is OOMKilled.\n\n## Remediation\nRaise the memory limit."})
	client.addTurn("summarizer", &agent.TextChunk{Content: `{"title":"Payments OOM","tags":["oom","payments"],"severity":"high"}`})

	sup, emitter, store := newTestSupervisor(t, client)
	req := &models.InvestigateRequest{Prompt: "payments pods are crashing"}
	sess := investigate(t, sup, req)

	sup.Run(context.Background(), sess, req)

	assert.Equal(t, []string{
		"trace_started",
		"agent_started",        // supervisor
		"tool_call_requested",  // log_analysis delegation
		"agent_started",        // specialist
		"tool_call_requested",  // pod_logs
		"tool_call_output",     // pod_logs
		"text_delta",           // specialist final
		"agent_completed",      // specialist
		"subtask_added",
		"tool_call_output",     // delegation result
		"text_delta",           // supervisor final
		"agent_completed",      // supervisor
		"investigation_completed",
		"done",
	}, emitter.kinds())

	row := store.get(sess.TaskID)
	require.NotNil(t, row)
	assert.Equal(t, task.StatusCompleted, row.Status)
	require.NotNil(t, row.Summary)
	assert.Equal(t, "Payments is OOMKilled.", *row.Summary)
	require.NotNil(t, row.Remediation)
	assert.Equal(t, "Raise the memory limit.", *row.Remediation)
	require.NotNil(t, row.Title)
	assert.Equal(t, "Payments OOM", *row.Title)
	assert.Equal(t, task.SeverityHigh, row.Severity)

	payload, ok := emitter.find("subtask_added")
	require.True(t, ok)
	sub := payload.(events.SubTaskAddedPayload)
	assert.Equal(t, config.AgentLogAnalysis, sub.AgentName)
	assert.Equal(t, "why is payments crashing?", sub.Goal)
	assert.Equal(t, "Payments pods are OOMKilled.", sub.Discovery)
	assert.Zero(t, sub.Status)

	// The plan lists every tool call the specialist made.
	require.Len(t, sub.Plan, 1)
	assert.Equal(t, "pod_logs", sub.Plan[0]["tool_name"])
	assert.Equal(t, "call-2", sub.Plan[0]["call_id"])
	assert.Equal(t, map[string]any{"namespace": "prod", "pod": "payments-0"}, sub.Plan[0]["arguments"])
	assert.Contains(t, sub.Plan[0]["output_excerpt"], "OOMKilled")

	require.Len(t, store.subtasks, 1)
	assert.Equal(t, sub.Plan, store.subtasks[0].Plan)

	payload, ok = emitter.find("investigation_completed")
	require.True(t, ok)
	completed := payload.(events.InvestigationCompletedPayload)
	assert.Equal(t, "high", completed.Severity)
	assert.Equal(t, []string{"oom", "payments"}, completed.Tags)

	// Session deregistered after done.
	_, live := sup.deps.Sessions.Get(sess.TaskID)
	assert.False(t, live)
}

func TestInvestigationAborted(t *testing.T) {
	client := newScriptedClient()
	client.addTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	client.addBlockingTurn(config.AgentSupervisor)

	sup, emitter, store := newTestSupervisor(t, client)
	req := &models.InvestigateRequest{Prompt: "hang"}
	sess := investigate(t, sup, req)

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background(), sess, req)
		close(done)
	}()

	// Let the run reach the blocking LLM call, then abort.
	time.Sleep(50 * time.Millisecond)
	sess.Abort.Fire()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not terminate after abort")
	}

	kinds := emitter.kinds()
	require.NotEmpty(t, kinds)
	assert.Equal(t, "done", kinds[len(kinds)-1])
	assert.Equal(t, "error", kinds[len(kinds)-2])

	payload, ok := emitter.find("error")
	require.True(t, ok)
	assert.Equal(t, events.ErrorKindCancelled, payload.(events.ErrorPayload).ErrorKind)
	assert.Equal(t, task.StatusCancelled, store.get(sess.TaskID).Status)
}

func TestInvestigationFailed(t *testing.T) {
	client := newScriptedClient()
	client.addTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	client.addTurn(config.AgentSupervisor,
		&agent.ErrorChunk{Message: "invalid api key", Code: "http_401", Retryable: false})

	sup, emitter, store := newTestSupervisor(t, client)
	req := &models.InvestigateRequest{Prompt: "fail"}
	sess := investigate(t, sup, req)

	sup.Run(context.Background(), sess, req)

	kinds := emitter.kinds()
	assert.Equal(t, "done", kinds[len(kinds)-1])

	payload, ok := emitter.find("error")
	require.True(t, ok)
	assert.Equal(t, events.ErrorKindLLM, payload.(events.ErrorPayload).ErrorKind)

	row := store.get(sess.TaskID)
	assert.Equal(t, task.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "invalid api key")
}

func TestSpecialistFailureDoesNotKillSupervisor(t *testing.T) {
	client := newScriptedClient()
	client.addTurn("summarizer", &agent.TextChunk{Content: `{"title":"t"}`})
	client.addTurn(config.AgentSupervisor,
		&agent.ToolCallChunk{CallID: "call-1", Name: config.AgentLogAnalysis, Arguments: `{"question":"q"}`})
	client.addTurn(config.AgentLogAnalysis,
		&agent.ErrorChunk{Message: "model overloaded", Code: "http_529", Retryable: false})
	client.addTurn(config.AgentSupervisor,
		&agent.TextChunk{Content: "## Summary\nCould not inspect logs.\n\n## Remediation\nNo remediation required."})
	client.addTurn("summarizer", &agent.TextChunk{Content: `{"title":"t2"}`})

	sup, emitter, store := newTestSupervisor(t, client)
	req := &models.InvestigateRequest{Prompt: "logs"}
	sess := investigate(t, sup, req)

	sup.Run(context.Background(), sess, req)

	assert.Equal(t, task.StatusCompleted, store.get(sess.TaskID).Status)

	// The delegation came back as a failed tool output, not a stream error.
	payload, ok := emitter.find("tool_call_output")
	require.True(t, ok)
	out := payload.(events.ToolCallOutputPayload)
	assert.Equal(t, "call-1", out.CallID)
	assert.False(t, out.Success)
	assert.Empty(t, store.subtasks)
}

func TestBeginValidation(t *testing.T) {
	sup, _, _ := newTestSupervisor(t, newScriptedClient())

	_, err := sup.Begin(context.Background(), &models.InvestigateRequest{Prompt: "   "})
	require.Error(t, err)

	_, err = sup.Begin(context.Background(), &models.InvestigateRequest{Prompt: "ok", Model: "no-such-provider"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-provider")
}

func TestRecoverOrphans(t *testing.T) {
	store := newFakeTaskStore()
	_, err := store.CreateTask(context.Background(), models.CreateTaskRequest{TaskID: "orphan-1", Prompt: "p"})
	require.NoError(t, err)
	_, err = store.CreateTask(context.Background(), models.CreateTaskRequest{TaskID: "orphan-2", Prompt: "p"})
	require.NoError(t, err)

	emitter := &recorderEmitter{}
	err = RecoverOrphans(context.Background(), store, emitter, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	assert.Equal(t, task.StatusFailed, store.get("orphan-1").Status)
	assert.Equal(t, task.StatusFailed, store.get("orphan-2").Status)

	// Each orphaned stream ends with an error frame naming the restart,
	// then done.
	assert.Equal(t, []string{"error", "done", "error", "done"}, emitter.kinds())
	payload, ok := emitter.find("error")
	require.True(t, ok)
	errPayload := payload.(events.ErrorPayload)
	assert.Equal(t, events.ErrorKindStore, errPayload.ErrorKind)
	assert.Contains(t, errPayload.Message, "daemon restarted")
}

func TestParseReport(t *testing.T) {
	t.Run("both sections", func(t *testing.T) {
		summary, remediation := parseReport("preamble\n## Summary\nroot cause\n## Remediation\nfix it")
		assert.Equal(t, "root cause", summary)
		assert.Equal(t, "fix it", remediation)
	})

	t.Run("case insensitive", func(t *testing.T) {
		summary, remediation := parseReport("## SUMMARY\na\n## remediation\nb")
		assert.Equal(t, "a", summary)
		assert.Equal(t, "b", remediation)
	})

	t.Run("missing headers falls back to whole text", func(t *testing.T) {
		summary, remediation := parseReport("just some prose")
		assert.Equal(t, "just some prose", summary)
		assert.Empty(t, remediation)
	})

	t.Run("summary only", func(t *testing.T) {
		summary, remediation := parseReport("## Summary\nonly findings")
		assert.Equal(t, "only findings", summary)
		assert.Empty(t, remediation)
	})

	t.Run("line labels", func(t *testing.T) {
		summary, remediation := parseReport("SUMMARY: 2 pods\nREMEDIATION: none")
		assert.Equal(t, "2 pods", summary)
		assert.Equal(t, "none", remediation)
	})

	t.Run("multiline line labels", func(t *testing.T) {
		summary, remediation := parseReport("Summary: pods are OOMKilled\nmemory limit is 128Mi\nRemediation: raise the limit\nto 512Mi")
		assert.Equal(t, "pods are OOMKilled\nmemory limit is 128Mi", summary)
		assert.Equal(t, "raise the limit\nto 512Mi", remediation)
	})

	t.Run("line label remediation only", func(t *testing.T) {
		summary, remediation := parseReport("pods look healthy\nREMEDIATION: nothing to do")
		assert.Equal(t, "pods look healthy", summary)
		assert.Equal(t, "nothing to do", remediation)
	})
}

func TestParseMetadata(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		meta := parseMetadata(`{"title":"DNS outage","tags":["dns"],"severity":"HIGH"}`)
		assert.Equal(t, "DNS outage", meta.Title)
		assert.Equal(t, []string{"dns"}, meta.Tags)
		assert.Equal(t, "high", meta.Severity)
	})

	t.Run("fenced json", func(t *testing.T) {
		meta := parseMetadata("```json\n{\"title\":\"Node pressure\"}\n```")
		assert.Equal(t, "Node pressure", meta.Title)
	})

	t.Run("non-json falls back to first line", func(t *testing.T) {
		meta := parseMetadata("Broken ingress controller\nsome explanation")
		assert.Equal(t, "Broken ingress controller", meta.Title)
	})

	t.Run("long title clamped", func(t *testing.T) {
		long := "A very long title that keeps going well past the sixty character display limit"
		meta := parseMetadata(fmt.Sprintf(`{"title":%q}`, long))
		assert.LessOrEqual(t, len([]rune(meta.Title)), titleMaxLen)
	})
}
