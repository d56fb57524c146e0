package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/tools"
)

// Compile-time check that the composite gateway implements agent.ToolGateway.
var _ agent.ToolGateway = (*supervisorGateway)(nil)

// specialistParametersSchema is the argument schema every delegation tool
// shares: a single focused question for the specialist.
const specialistParametersSchema = `{
	"type": "object",
	"properties": {
		"question": {"type": "string", "description": "The concrete question the specialist should answer, with enough context to act on"}
	},
	"required": ["question"],
	"additionalProperties": false
}`

// specialistSpec is the tool-facing identity of one specialist agent.
type specialistSpec struct {
	Name        string
	Description string
}

// supervisorGateway is the supervisor's tool surface: registry tools routed
// to the inner gateway, specialist names routed to full sub-agent runs. The
// supervisor's configured tool order is preserved in listings.
type supervisorGateway struct {
	order       []string
	inner       *tools.Gateway
	specialists map[string]specialistSpec
	runner      *specialistRunner
}

func newSupervisorGateway(order []string, inner *tools.Gateway, specs []specialistSpec, runner *specialistRunner) *supervisorGateway {
	byName := make(map[string]specialistSpec, len(specs))
	for _, sp := range specs {
		byName[sp.Name] = sp
	}
	return &supervisorGateway{
		order:       order,
		inner:       inner,
		specialists: byName,
		runner:      runner,
	}
}

// ListTools merges registry tool definitions and specialist delegation
// tools in the supervisor's configured order.
func (g *supervisorGateway) ListTools(ctx context.Context) ([]agent.ToolDefinition, error) {
	innerDefs, err := g.inner.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]agent.ToolDefinition, len(innerDefs))
	for _, def := range innerDefs {
		byName[def.Name] = def
	}

	defs := make([]agent.ToolDefinition, 0, len(g.order))
	for _, name := range g.order {
		if sp, ok := g.specialists[name]; ok {
			defs = append(defs, agent.ToolDefinition{
				Name:             sp.Name,
				Description:      fmt.Sprintf("Delegate to a specialist agent. %s", sp.Description),
				ParametersSchema: specialistParametersSchema,
			})
			continue
		}
		if def, ok := byName[name]; ok {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// Meta reports specialist delegations as ungated; everything else defers
// to the inner gateway.
func (g *supervisorGateway) Meta(name string) (agent.ToolMeta, bool) {
	if _, ok := g.specialists[name]; ok {
		return agent.ToolMeta{}, true
	}
	return g.inner.Meta(name)
}

// Describe renders the one-line title for a call.
func (g *supervisorGateway) Describe(name, arguments string) string {
	if _, ok := g.specialists[name]; ok {
		if q := questionArg(arguments); q != "" {
			return fmt.Sprintf("Asking %s: %s", name, clamp(q, 80))
		}
		return fmt.Sprintf("Delegating to %s", name)
	}
	return g.inner.Describe(name, arguments)
}

// Execute routes specialist names to sub-agent runs and everything else to
// the inner gateway. A specialist failure comes back as a tool-level error
// so the supervisor can replan; only context cancellation escapes.
func (g *supervisorGateway) Execute(ctx context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	if _, ok := g.specialists[call.Name]; ok {
		return g.runner.Execute(ctx, call)
	}
	return g.inner.Execute(ctx, call)
}

// questionArg extracts the question field from raw delegation arguments.
func questionArg(arguments string) string {
	var args struct {
		Question string `json:"question"`
	}
	if arguments == "" {
		return ""
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return ""
	}
	return args.Question
}

// clamp shortens s to at most max runes with an ellipsis.
func clamp(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
