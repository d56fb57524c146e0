package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/session"
	"github.com/agentkube/investigator/pkg/tools"
)

// subjectMaxLen bounds the subject line recorded on a subtask card.
const subjectMaxLen = 120

// planExcerptMaxLen bounds the output excerpt stored per plan entry; the
// full output already lives in the event journal under the call_id.
const planExcerptMaxLen = 400

// specialistRunner executes one specialist agent per delegation call and
// records the result as a SubTask. Specialist runs happen inline on the
// supervisor's goroutine; one delegation at a time keeps event ordering
// deterministic.
type specialistRunner struct {
	deps          Deps
	session       *session.Session
	invocation    *tools.Invocation
	modelOverride string
}

// Execute runs the named specialist against the delegated question. A
// specialist failure never kills the supervisor: it is surfaced as a
// tool-level error result. Only context cancellation propagates.
func (r *specialistRunner) Execute(ctx context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	question := questionArg(call.Arguments)
	if strings.TrimSpace(question) == "" {
		return &agent.ToolResult{
			CallID:    call.ID,
			Name:      call.Name,
			Content:   "delegation requires a non-empty question",
			IsError:   true,
			ErrorKind: events.ErrorKindToolFailed,
		}, nil
	}

	result, calls, err := r.run(ctx, call.Name, question)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &agent.ToolResult{
			CallID:    call.ID,
			Name:      call.Name,
			Content:   fmt.Sprintf("specialist %s failed: %v", call.Name, err),
			IsError:   true,
			ErrorKind: events.ErrorKindLLM,
		}, nil
	}

	r.record(ctx, call.Name, question, result, calls)

	return &agent.ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: result.FinalText,
	}, nil
}

// run executes the specialist's full agent loop. The returned recorder
// holds one plan entry per tool call the specialist made.
func (r *specialistRunner) run(ctx context.Context, name, question string) (*agent.Result, *callRecorder, error) {
	agentCfg, err := r.deps.Config.GetAgent(name)
	if err != nil {
		return nil, nil, fmt.Errorf("specialist %s is not configured: %w", name, err)
	}

	provider, err := r.providerFor(agentCfg)
	if err != nil {
		return nil, nil, err
	}
	client, err := r.deps.LLM.ClientFor(provider)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build LLM client for %s: %w", name, err)
	}

	gateway, err := tools.NewGateway(r.deps.Registry, r.invocation, name, agentCfg.Tools)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build tool gateway for %s: %w", name, err)
	}
	recorder := &callRecorder{ToolGateway: gateway}

	runtime := agent.NewRuntime(client, r.deps.Emitter)
	result, err := runtime.Run(ctx, &agent.RunInput{
		TaskID:       r.session.TaskID,
		TraceID:      r.session.TraceID,
		AgentName:    name,
		Instructions: agentCfg.Instructions,
		Input:        []agent.ConversationMessage{{Role: agent.RoleUser, Content: question}},
		Gateway:      recorder,
		Approvals:    r.session.Approvals,
		Provider:     provider,
		MaxTurns:     r.deps.Config.MaxTurnsFor(agentCfg),
	})
	return result, recorder, err
}

// callRecorder wraps a specialist's tool gateway and keeps a plan entry
// per executed call. The entries become SubTask.plan; the failure count
// becomes the card's open-issue status.
type callRecorder struct {
	agent.ToolGateway

	mu      sync.Mutex
	entries []map[string]any
	failed  int
}

// Execute runs the call through the wrapped gateway and records it.
func (c *callRecorder) Execute(ctx context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	result, err := c.ToolGateway.Execute(ctx, call)
	if err != nil || result == nil {
		return result, err
	}

	var args map[string]any
	if call.Arguments != "" {
		_ = json.Unmarshal([]byte(call.Arguments), &args)
	}

	c.mu.Lock()
	c.entries = append(c.entries, map[string]any{
		"tool_name":      call.Name,
		"arguments":      args,
		"output_excerpt": clamp(result.Content, planExcerptMaxLen),
		"call_id":        call.ID,
	})
	if result.IsError {
		c.failed++
	}
	c.mu.Unlock()
	return result, nil
}

// plan returns the recorded entries and the number of failed calls.
func (c *callRecorder) plan() ([]map[string]any, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries, c.failed
}

// providerFor resolves the specialist's provider, honoring the per-request
// model override for every agent in the trace.
func (r *specialistRunner) providerFor(agentCfg *config.AgentConfig) (*config.LLMProviderConfig, error) {
	if r.modelOverride != "" {
		return r.deps.Config.GetLLMProvider(r.modelOverride)
	}
	return r.deps.Config.ProviderFor(agentCfg)
}

// record persists the SubTask digest and broadcasts subtask_added. Both are
// best effort: a store failure loses the card, not the delegation result.
func (r *specialistRunner) record(ctx context.Context, agentName, question string, result *agent.Result, calls *callRecorder) {
	reason := ""
	if result.Truncated {
		reason = "run cut short by the turn limit"
	}

	plan, failed := calls.plan()
	req := models.CreateSubTaskRequest{
		TaskID:    r.session.TaskID,
		Subject:   clamp(question, subjectMaxLen),
		Status:    failed,
		Reason:    reason,
		Goal:      question,
		Plan:      plan,
		Discovery: result.FinalText,
	}

	log := r.deps.Logger.With("task_id", r.session.TaskID, "agent", agentName)

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	st, err := r.deps.Tasks.AddSubTask(writeCtx, req)
	if err != nil {
		log.Warn("Failed to persist subtask", "error", err)
		return
	}

	if err := r.deps.Emitter.EmitSubTaskAdded(ctx, r.session.TaskID, events.SubTaskAddedPayload{
		SubTaskID: st.ID,
		Subject:   req.Subject,
		Status:    req.Status,
		Reason:    req.Reason,
		Goal:      req.Goal,
		Plan:      req.Plan,
		Discovery: req.Discovery,
		AgentName: agentName,
	}); err != nil {
		log.Warn("Failed to emit subtask_added", "error", err)
	}
}

// pastInvestigations adapts the task store to the lookup tool's interface.
type pastInvestigations struct {
	tasks TaskStore
}

// SearchCompleted implements tools.TaskFinder over full-text task search.
func (p *pastInvestigations) SearchCompleted(ctx context.Context, query string, limit int) ([]tools.PastInvestigation, error) {
	rows, err := p.tasks.SearchTasks(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	out := make([]tools.PastInvestigation, 0, len(rows))
	for _, row := range rows {
		hit := tools.PastInvestigation{
			TaskID:      row.ID,
			Severity:    string(row.Severity),
			CompletedAt: row.CompletedAt,
		}
		if row.Title != nil {
			hit.Title = *row.Title
		}
		if row.Summary != nil {
			hit.Summary = *row.Summary
		}
		out = append(out, hit)
	}
	return out, nil
}
