package agent

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/approval"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/events"
)

// scriptedLLM returns one scripted chunk sequence per Generate call and
// records the message history it was handed.
type scriptedLLM struct {
	mu     sync.Mutex
	turns  [][]Chunk
	calls  int
	inputs []*GenerateInput
}

func (s *scriptedLLM) Generate(_ context.Context, input *GenerateInput) (<-chan Chunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = append(s.inputs, input)
	var chunks []Chunk
	if s.calls < len(s.turns) {
		chunks = s.turns[s.calls]
	}
	s.calls++

	ch := make(chan Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

// recorded is one captured emit.
type recorded struct {
	kind    string
	payload any
}

// recorderEmitter captures the event sequence in emission order.
type recorderEmitter struct {
	mu     sync.Mutex
	events []recorded
}

func (r *recorderEmitter) record(kind string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recorded{kind: kind, payload: payload})
	return nil
}

func (r *recorderEmitter) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.kind
	}
	return out
}

func (r *recorderEmitter) find(kind string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.kind == kind {
			return e.payload, true
		}
	}
	return nil, false
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
func (r *recorderEmitter) EmitError(_ context.Context, _ string, p events.ErrorPayload) error {
	return r.record("error", p)
}

// fakeGateway serves a fixed tool set with a scripted executor.
type fakeGateway struct {
	mu       sync.Mutex
	defs     []ToolDefinition
	meta     map[string]ToolMeta
	execute  func(call ToolCall) *ToolResult
	executed []ToolCall
}

func (g *fakeGateway) ListTools(context.Context) ([]ToolDefinition, error) { return g.defs, nil }

func (g *fakeGateway) Meta(name string) (ToolMeta, bool) {
	m, ok := g.meta[name]
	return m, ok
}

func (g *fakeGateway) Describe(name, _ string) string { return "Running " + name }

func (g *fakeGateway) Execute(_ context.Context, call ToolCall) (*ToolResult, error) {
	g.mu.Lock()
	g.executed = append(g.executed, call)
	g.mu.Unlock()
	if g.execute != nil {
		return g.execute(call), nil
	}
	return &ToolResult{CallID: call.ID, Name: call.Name, Content: "ok"}, nil
}

func (g *fakeGateway) executedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.executed)
}

func listPodsGateway() *fakeGateway {
	return &fakeGateway{
		defs: []ToolDefinition{{Name: "list_resources", Description: "list", ParametersSchema: `{"type":"object"}`}},
		meta: map[string]ToolMeta{"list_resources": {}},
	}
}

func shellGateway() *fakeGateway {
	return &fakeGateway{
		defs: []ToolDefinition{{Name: "run_shell", Description: "shell", ParametersSchema: `{"type":"object"}`}},
		meta: map[string]ToolMeta{"run_shell": {Gated: true, Component: "terminal"}},
	}
}

func baseInput(gw ToolGateway, broker ApprovalGate) *RunInput {
	return &RunInput{
		TaskID:       "task-1",
		TraceID:      "trace-1",
		AgentName:    "supervisor",
		Instructions: "investigate",
		Input:        []ConversationMessage{{Role: RoleUser, Content: "why is the pod down"}},
		Gateway:      gw,
		Approvals:    broker,
		Provider:     &config.LLMProviderConfig{Type: config.LLMProviderTypeAnthropic, Model: "m", MaxToolResultTokens: 2500},
		MaxTurns:     10,
	}
}

func TestRuntimeFinalMessageOnly(t *testing.T) {
	llm := &scriptedLLM{turns: [][]Chunk{
		{&TextChunk{Content: "All "}, &TextChunk{Content: "good."}},
	}}
	rec := &recorderEmitter{}
	rt := NewRuntime(llm, rec)

	res, err := rt.Run(context.Background(), baseInput(listPodsGateway(), approval.NewBroker()))
	require.NoError(t, err)

	assert.Equal(t, "All good.", res.FinalText)
	assert.Equal(t, 1, res.Turns)
	assert.False(t, res.Truncated)
	assert.Equal(t, []string{"agent_started", "text_delta", "text_delta", "agent_completed"}, rec.kinds())
}

func TestRuntimeAutoToolCall(t *testing.T) {
	llm := &scriptedLLM{turns: [][]Chunk{
		{&ToolCallChunk{CallID: "call-1", Name: "list_resources", Arguments: `{"kind":"Pod"}`}},
		{&TextChunk{Content: "two pods found"}},
	}}
	rec := &recorderEmitter{}
	gw := listPodsGateway()
	gw.execute = func(call ToolCall) *ToolResult {
		return &ToolResult{CallID: call.ID, Name: call.Name, Content: `["a","b"]`}
	}
	rt := NewRuntime(llm, rec)

	res, err := rt.Run(context.Background(), baseInput(gw, approval.NewBroker()))
	require.NoError(t, err)

	assert.Equal(t, "two pods found", res.FinalText)
	assert.Equal(t, 2, res.Turns)
	assert.Equal(t, []string{
		"agent_started", "tool_call_requested", "tool_call_output", "text_delta", "agent_completed",
	}, rec.kinds())

	// Auto class: no approval events, approval_required=false on the announce.
	reqAny, ok := rec.find("tool_call_requested")
	require.True(t, ok)
	req := reqAny.(events.ToolCallRequestedPayload)
	assert.False(t, req.ApprovalRequired)
	assert.Equal(t, "Pod", req.Arguments["kind"])

	// The tool result was fed back verbatim on the second turn.
	require.Len(t, llm.inputs, 2)
	last := llm.inputs[1].Messages[len(llm.inputs[1].Messages)-1]
	assert.Equal(t, RoleTool, last.Role)
	assert.Equal(t, `["a","b"]`, last.Content)
	assert.Equal(t, "call-1", last.ToolCallID)
}

func TestRuntimeGatedApproved(t *testing.T) {
	llm := &scriptedLLM{turns: [][]Chunk{
		{&ToolCallChunk{CallID: "call-1", Name: "run_shell", Arguments: `{"cmd":"ls"}`}},
		{&TextChunk{Content: "done"}},
	}}
	rec := &recorderEmitter{}
	gw := shellGateway()
	gw.execute = func(call ToolCall) *ToolResult {
		return &ToolResult{CallID: call.ID, Name: call.Name, Content: "file.txt"}
	}
	broker := approval.NewBroker()
	rt := NewRuntime(llm, rec)

	go func() {
		// Wait until the decision slot exists, then approve.
		for broker.PendingCount() == 0 {
			time.Sleep(time.Millisecond)
		}
		_ = broker.Resolve("call-1", approval.Resolution{Approved: true, Note: "go ahead"})
	}()

	res, err := rt.Run(context.Background(), baseInput(gw, broker))
	require.NoError(t, err)
	assert.Equal(t, "done", res.FinalText)
	assert.Equal(t, []string{
		"agent_started", "tool_call_requested", "tool_call_approved", "tool_call_output", "text_delta", "agent_completed",
	}, rec.kinds())
	assert.Equal(t, 1, gw.executedCount())

	reqAny, _ := rec.find("tool_call_requested")
	assert.True(t, reqAny.(events.ToolCallRequestedPayload).ApprovalRequired)
	outAny, _ := rec.find("tool_call_output")
	out := outAny.(events.ToolCallOutputPayload)
	assert.True(t, out.Success)
	assert.Equal(t, "terminal", out.Component)
}

func TestRuntimeGatedRejected(t *testing.T) {
	llm := &scriptedLLM{turns: [][]Chunk{
		{&ToolCallChunk{CallID: "call-1", Name: "run_shell", Arguments: `{"cmd":"rm -rf /"}`}},
		{&TextChunk{Content: "understood, replanning"}},
	}}
	rec := &recorderEmitter{}
	gw := shellGateway()
	broker := approval.NewBroker()
	rt := NewRuntime(llm, rec)

	go func() {
		for broker.PendingCount() == 0 {
			time.Sleep(time.Millisecond)
		}
		_ = broker.Resolve("call-1", approval.Resolution{Approved: false, Note: "too risky"})
	}()

	res, err := rt.Run(context.Background(), baseInput(gw, broker))
	require.NoError(t, err)
	assert.Equal(t, "understood, replanning", res.FinalText)
	assert.Equal(t, []string{
		"agent_started", "tool_call_requested", "tool_call_rejected", "tool_call_output", "text_delta", "agent_completed",
	}, rec.kinds())

	// Tool never ran; the model got the synthetic rejection response.
	assert.Equal(t, 0, gw.executedCount())
	outAny, _ := rec.find("tool_call_output")
	assert.False(t, outAny.(events.ToolCallOutputPayload).Success)
	last := llm.inputs[1].Messages[len(llm.inputs[1].Messages)-1]
	assert.Equal(t, RoleTool, last.Role)
	assert.Contains(t, last.Content, "user rejected execution")
	assert.Contains(t, last.Content, "too risky")
}

func TestRuntimeSessionApprovalSkipsGate(t *testing.T) {
	llm := &scriptedLLM{turns: [][]Chunk{
		{&ToolCallChunk{CallID: "call-1", Name: "run_shell", Arguments: `{"cmd":"ls"}`}},
		{&TextChunk{Content: "done"}},
	}}
	rec := &recorderEmitter{}
	gw := shellGateway()
	broker := approval.NewBroker()
	// Simulate an earlier approve_for_session decision.
	require.NoError(t, broker.Register("earlier", "run_shell"))
	require.NoError(t, broker.Resolve("earlier", approval.Resolution{Approved: true, ForSession: true}))
	_, err := broker.Await(context.Background(), "earlier")
	require.NoError(t, err)

	rt := NewRuntime(llm, rec)
	_, err = rt.Run(context.Background(), baseInput(gw, broker))
	require.NoError(t, err)

	kinds := rec.kinds()
	assert.NotContains(t, kinds, "tool_call_approved")
	assert.NotContains(t, kinds, "tool_call_rejected")
	reqAny, _ := rec.find("tool_call_requested")
	assert.False(t, reqAny.(events.ToolCallRequestedPayload).ApprovalRequired)
	assert.Equal(t, 1, gw.executedCount())
}

func TestRuntimeUnknownTool(t *testing.T) {
	llm := &scriptedLLM{turns: [][]Chunk{
		{&ToolCallChunk{CallID: "call-1", Name: "frobnicate", Arguments: `{}`}},
		{&TextChunk{Content: "ok without it"}},
	}}
	rec := &recorderEmitter{}
	rt := NewRuntime(llm, rec)

	res, err := rt.Run(context.Background(), baseInput(listPodsGateway(), approval.NewBroker()))
	require.NoError(t, err)
	assert.Equal(t, "ok without it", res.FinalText)

	errAny, ok := rec.find("error")
	require.True(t, ok)
	assert.Equal(t, events.ErrorKindToolNotFound, errAny.(events.ErrorPayload).ErrorKind)

	// The failure is fed back as a tool response, not an event bracket.
	kinds := rec.kinds()
	assert.NotContains(t, kinds, "tool_call_requested")
	last := llm.inputs[1].Messages[len(llm.inputs[1].Messages)-1]
	assert.Equal(t, RoleTool, last.Role)
	assert.Contains(t, last.Content, "frobnicate")
}

func TestRuntimeDuplicateCallShortCircuit(t *testing.T) {
	sameCall := []Chunk{&ToolCallChunk{CallID: "", Name: "list_resources", Arguments: `{"kind":"Pod"}`}}
	llm := &scriptedLLM{turns: [][]Chunk{
		sameCall, sameCall, sameCall,
		{&TextChunk{Content: "conclusion from gathered evidence"}},
	}}
	rec := &recorderEmitter{}
	gw := listPodsGateway()
	rt := NewRuntime(llm, rec)

	res, err := rt.Run(context.Background(), baseInput(gw, approval.NewBroker()))
	require.NoError(t, err)

	assert.True(t, res.Truncated)
	assert.Equal(t, "conclusion from gathered evidence", res.FinalText)
	// Third identical call was not executed.
	assert.Equal(t, 2, gw.executedCount())
	// The conclusion request withheld the tool schemas.
	final := llm.inputs[len(llm.inputs)-1]
	assert.Empty(t, final.Tools)
}

func TestRuntimeMaxTurnsForcesConclusion(t *testing.T) {
	toolTurn := []Chunk{&ToolCallChunk{CallID: "", Name: "list_resources", Arguments: `{"kind":"Pod"}`}}
	llm := &scriptedLLM{turns: [][]Chunk{
		toolTurn, toolTurn,
		{&TextChunk{Content: "ran out of budget"}},
	}}
	rec := &recorderEmitter{}
	gw := listPodsGateway()
	gw.execute = func(call ToolCall) *ToolResult {
		// Vary the output so the duplicate detector is not what stops us.
		return &ToolResult{CallID: call.ID, Name: call.Name, Content: time.Now().String()}
	}
	rt := NewRuntime(llm, rec)

	in := baseInput(gw, approval.NewBroker())
	in.MaxTurns = 2
	// Vary arguments so consecutive calls are not identical.
	llm.turns[1] = []Chunk{&ToolCallChunk{Name: "list_resources", Arguments: `{"kind":"Deployment"}`}}

	res, err := rt.Run(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, 3, res.Turns)
	assert.Equal(t, "ran out of budget", res.FinalText)
}

func TestRuntimeRetryBudget(t *testing.T) {
	t.Run("retryable failure before output is retried", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]Chunk{
			{&ErrorChunk{Message: "rate limited", Retryable: true}},
			{&TextChunk{Content: "recovered"}},
		}}
		rec := &recorderEmitter{}
		rt := NewRuntime(llm, rec)

		res, err := rt.Run(context.Background(), baseInput(listPodsGateway(), approval.NewBroker()))
		require.NoError(t, err)
		assert.Equal(t, "recovered", res.FinalText)
		assert.Equal(t, 2, llm.calls)
	})

	t.Run("failure after streamed text is fatal", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]Chunk{
			{&TextChunk{Content: "partial"}, &ErrorChunk{Message: "connection reset", Retryable: true}},
		}}
		rec := &recorderEmitter{}
		rt := NewRuntime(llm, rec)

		_, err := rt.Run(context.Background(), baseInput(listPodsGateway(), approval.NewBroker()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mid-message")
	})

	t.Run("non-retryable failure is fatal", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]Chunk{
			{&ErrorChunk{Message: "invalid api key", Retryable: false}},
		}}
		rt := NewRuntime(llm, &recorderEmitter{})

		_, err := rt.Run(context.Background(), baseInput(listPodsGateway(), approval.NewBroker()))
		require.Error(t, err)
	})

	t.Run("budget exhaustion is fatal", func(t *testing.T) {
		failing := []Chunk{&ErrorChunk{Message: "rate limited", Retryable: true}}
		llm := &scriptedLLM{turns: [][]Chunk{failing, failing, failing, failing}}
		rt := NewRuntime(llm, &recorderEmitter{})

		_, err := rt.Run(context.Background(), baseInput(listPodsGateway(), approval.NewBroker()))
		require.Error(t, err)
		assert.Equal(t, 1+llmRetryBudget, llm.calls)
	})
}

func TestRuntimeAbortDuringApprovalWait(t *testing.T) {
	llm := &scriptedLLM{turns: [][]Chunk{
		{&ToolCallChunk{CallID: "call-1", Name: "run_shell", Arguments: `{"cmd":"ls"}`}},
	}}
	rec := &recorderEmitter{}
	broker := approval.NewBroker()
	rt := NewRuntime(llm, rec)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for broker.PendingCount() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	_, err := rt.Run(ctx, baseInput(shellGateway(), broker))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRuntimeFeedbackTruncation(t *testing.T) {
	large := strings.Repeat("line of log output that goes on and on\n", 2000)
	llm := &scriptedLLM{turns: [][]Chunk{
		{&ToolCallChunk{CallID: "call-1", Name: "list_resources", Arguments: `{}`}},
		{&TextChunk{Content: "summarized"}},
	}}
	rec := &recorderEmitter{}
	gw := listPodsGateway()
	gw.execute = func(call ToolCall) *ToolResult {
		return &ToolResult{CallID: call.ID, Name: call.Name, Content: large}
	}
	rt := NewRuntime(llm, rec)

	_, err := rt.Run(context.Background(), baseInput(gw, approval.NewBroker()))
	require.NoError(t, err)

	// Journal got the complete output.
	outAny, _ := rec.find("tool_call_output")
	assert.Equal(t, large, outAny.(events.ToolCallOutputPayload).Output)

	// Model got the truncated copy.
	last := llm.inputs[1].Messages[len(llm.inputs[1].Messages)-1]
	assert.Less(t, len(last.Content), len(large))
	assert.Contains(t, last.Content, "[TRUNCATED")
}
