package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/events"
)

// Gateway scopes the shared registry to one agent's allowed tool set and
// binds the per-investigation Invocation. It implements agent.ToolGateway.
//
// Scope enforcement happens here rather than in the registry: the registry
// holds every tool the daemon knows, while each agent sees only the names
// its configuration grants. A call outside the scope fails exactly like a
// call to a tool that does not exist, so the model cannot probe for tools
// it was not given.
type Gateway struct {
	reg       *Registry
	inv       *Invocation
	agentName string
	names     []string
	allowed   map[string]struct{}
}

// NewGateway builds a gateway for one agent, restricted to the given tool
// names. Every name must be registered; unknown names are a configuration
// error and are reported at session start instead of mid-investigation.
func NewGateway(reg *Registry, inv *Invocation, agentName string, names []string) (*Gateway, error) {
	allowed := make(map[string]struct{}, len(names))
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := reg.Get(name); !ok {
			return nil, fmt.Errorf("unknown tool in agent configuration: %s", name)
		}
		if _, dup := allowed[name]; dup {
			continue
		}
		allowed[name] = struct{}{}
		kept = append(kept, name)
	}
	return &Gateway{reg: reg, inv: inv, agentName: agentName, names: kept, allowed: allowed}, nil
}

// ListTools returns the definitions for the agent's allowed tools in
// configuration order, ready to hand to the LLM provider.
func (g *Gateway) ListTools(ctx context.Context) ([]agent.ToolDefinition, error) {
	defs := make([]agent.ToolDefinition, 0, len(g.names))
	for _, name := range g.names {
		t, ok := g.reg.Get(name)
		if !ok {
			return nil, fmt.Errorf("tool disappeared from registry: %s", name)
		}
		defs = append(defs, agent.ToolDefinition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.ParametersSchema,
		})
	}
	return defs, nil
}

// Meta reports the gating and UI metadata for a tool. ok is false when the
// name is outside this agent's scope, which callers treat as unknown.
func (g *Gateway) Meta(name string) (agent.ToolMeta, bool) {
	if _, ok := g.allowed[name]; !ok {
		return agent.ToolMeta{}, false
	}
	t, ok := g.reg.Get(name)
	if !ok {
		return agent.ToolMeta{}, false
	}
	return agent.ToolMeta{
		Gated:     t.Safety == SafetyGated,
		Component: t.Component,
	}, true
}

// Describe renders the human-readable one-liner for a call, used in
// tool_call_requested and approval_requested frames.
func (g *Gateway) Describe(name, arguments string) string {
	if _, ok := g.allowed[name]; !ok {
		return name
	}
	return g.reg.Describe(name, arguments)
}

// Execute runs one tool call. Tool-level failures come back inside the
// result with an ErrorKind so the runtime can journal them and feed the
// message to the model; only parent-context cancellation (abort, shutdown)
// is returned as a Go error.
func (g *Gateway) Execute(ctx context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	if _, ok := g.allowed[call.Name]; !ok {
		return &agent.ToolResult{
			CallID:    call.ID,
			Name:      call.Name,
			Content:   fmt.Sprintf("tool not available: %s", call.Name),
			IsError:   true,
			ErrorKind: events.ErrorKindToolNotFound,
		}, nil
	}

	inv := *g.inv
	inv.AgentName = g.agentName

	out, err := g.reg.Invoke(ctx, &inv, call.Name, call.Arguments)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		kind := events.ErrorKindToolFailed
		switch {
		case errors.Is(err, ErrToolNotFound):
			kind = events.ErrorKindToolNotFound
		case errors.Is(err, ErrToolTimeout):
			kind = events.ErrorKindToolTimeout
		}
		return &agent.ToolResult{
			CallID:    call.ID,
			Name:      call.Name,
			Content:   err.Error(),
			IsError:   true,
			ErrorKind: kind,
		}, nil
	}

	return &agent.ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: out,
	}, nil
}
