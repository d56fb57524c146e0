package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/events"
)

func newGatewayFixture(t *testing.T, names []string) (*Gateway, *Invocation) {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.RegisterAll(echoTool("echo"), echoTool("hidden")))
	require.NoError(t, reg.Register(Descriptor{
		Name:      "deploy",
		Safety:    SafetyGated,
		Component: "terminal",
		Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
			return "deployed by " + inv.AgentName, nil
		},
	}))
	require.NoError(t, reg.Register(Descriptor{
		Name:    "slow",
		Timeout: 20 * time.Millisecond,
		Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}))

	inv := &Invocation{TaskID: "task-1", TraceID: "trace-1"}
	gw, err := NewGateway(reg, inv, "supervisor", names)
	require.NoError(t, err)
	return gw, inv
}

func TestNewGateway_RejectsUnknownToolName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoTool("echo")))

	_, err := NewGateway(reg, &Invocation{}, "supervisor", []string{"echo", "ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestGateway_ListToolsHonorsScopeAndOrder(t *testing.T) {
	gw, _ := newGatewayFixture(t, []string{"deploy", "echo"})

	defs, err := gw.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "deploy", defs[0].Name)
	assert.Equal(t, "echo", defs[1].Name)
	assert.Contains(t, defs[1].ParametersSchema, "message")
}

func TestGateway_Meta(t *testing.T) {
	gw, _ := newGatewayFixture(t, []string{"echo", "deploy"})

	meta, ok := gw.Meta("deploy")
	require.True(t, ok)
	assert.True(t, meta.Gated)
	assert.Equal(t, "terminal", meta.Component)

	meta, ok = gw.Meta("echo")
	require.True(t, ok)
	assert.False(t, meta.Gated)
	assert.Empty(t, meta.Component)

	// hidden is registered but outside this agent's scope
	_, ok = gw.Meta("hidden")
	assert.False(t, ok)
}

func TestGateway_ExecuteSuccess(t *testing.T) {
	gw, _ := newGatewayFixture(t, []string{"echo"})

	res, err := gw.Execute(context.Background(), agent.ToolCall{
		ID: "call-1", Name: "echo", Arguments: `{"message": "hi"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "call-1", res.CallID)
	assert.Equal(t, "hi", res.Content)
	assert.False(t, res.IsError)
	assert.Empty(t, res.ErrorKind)
}

func TestGateway_ExecuteStampsAgentName(t *testing.T) {
	gw, inv := newGatewayFixture(t, []string{"deploy"})

	res, err := gw.Execute(context.Background(), agent.ToolCall{ID: "c", Name: "deploy", Arguments: `{}`})
	require.NoError(t, err)
	assert.Equal(t, "deployed by supervisor", res.Content)
	// the shared invocation is not mutated
	assert.Empty(t, inv.AgentName)
}

func TestGateway_ExecuteOutOfScopeTool(t *testing.T) {
	gw, _ := newGatewayFixture(t, []string{"echo"})

	res, err := gw.Execute(context.Background(), agent.ToolCall{ID: "c", Name: "hidden", Arguments: `{}`})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, events.ErrorKindToolNotFound, res.ErrorKind)
	assert.Contains(t, res.Content, "hidden")
}

func TestGateway_ExecuteInvalidArguments(t *testing.T) {
	gw, _ := newGatewayFixture(t, []string{"echo"})

	res, err := gw.Execute(context.Background(), agent.ToolCall{ID: "c", Name: "echo", Arguments: `{}`})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, events.ErrorKindToolFailed, res.ErrorKind)
}

func TestGateway_ExecuteTimeout(t *testing.T) {
	gw, _ := newGatewayFixture(t, []string{"slow"})

	res, err := gw.Execute(context.Background(), agent.ToolCall{ID: "c", Name: "slow", Arguments: `{}`})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, events.ErrorKindToolTimeout, res.ErrorKind)
}

func TestGateway_ExecuteAbortPropagates(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Descriptor{
		Name:    "blocked",
		Timeout: 10 * time.Second,
		Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}))
	gw, err := NewGateway(reg, &Invocation{}, "supervisor", []string{"blocked"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err = gw.Execute(ctx, agent.ToolCall{ID: "c", Name: "blocked", Arguments: `{}`})
	require.ErrorIs(t, err, context.Canceled)
}
