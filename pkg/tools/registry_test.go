package tools

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoTool returns a descriptor that echoes its "message" argument.
func echoTool(name string) Descriptor {
	return Descriptor{
		Name:        name,
		Description: "echoes the message back",
		ParametersSchema: `{
			"type": "object",
			"properties": {
				"message": {"type": "string"}
			},
			"required": ["message"],
			"additionalProperties": false
		}`,
		Title: func(args map[string]any) string {
			return fmt.Sprintf("Echoing %s", stringArg(args, "message"))
		},
		Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
			return stringArg(args, "message"), nil
		},
	}
}

func TestRegistry_RegisterValidation(t *testing.T) {
	t.Run("empty name rejected", func(t *testing.T) {
		reg := NewRegistry()
		desc := echoTool("")
		require.Error(t, reg.Register(desc))
	})

	t.Run("nil invoker rejected", func(t *testing.T) {
		reg := NewRegistry()
		desc := echoTool("echo")
		desc.Run = nil
		require.Error(t, reg.Register(desc))
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(echoTool("echo")))
		err := reg.Register(echoTool("echo"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("malformed schema fails at registration", func(t *testing.T) {
		reg := NewRegistry()
		desc := echoTool("echo")
		desc.ParametersSchema = `{"type": "object", "properties":`
		require.Error(t, reg.Register(desc))
	})

	t.Run("empty schema defaults to open object", func(t *testing.T) {
		reg := NewRegistry()
		desc := echoTool("echo")
		desc.ParametersSchema = ""
		require.NoError(t, reg.Register(desc))

		_, err := reg.Invoke(context.Background(), &Invocation{}, "echo", `{"anything": true}`)
		require.NoError(t, err)
	})
}

func TestRegistry_NamesInRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterAll(echoTool("c"), echoTool("a"), echoTool("b")))
	assert.Equal(t, []string{"c", "a", "b"}, reg.Names())
}

func TestRegistry_Invoke(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoTool("echo")))

	t.Run("happy path", func(t *testing.T) {
		out, err := reg.Invoke(context.Background(), &Invocation{}, "echo", `{"message": "hi"}`)
		require.NoError(t, err)
		assert.Equal(t, "hi", out)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := reg.Invoke(context.Background(), &Invocation{}, "nope", `{}`)
		require.ErrorIs(t, err, ErrToolNotFound)
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("missing required argument", func(t *testing.T) {
		_, err := reg.Invoke(context.Background(), &Invocation{}, "echo", `{}`)
		require.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("wrong argument type", func(t *testing.T) {
		_, err := reg.Invoke(context.Background(), &Invocation{}, "echo", `{"message": 42}`)
		require.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("unexpected extra argument", func(t *testing.T) {
		_, err := reg.Invoke(context.Background(), &Invocation{}, "echo", `{"message": "hi", "extra": 1}`)
		require.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("non-object arguments", func(t *testing.T) {
		_, err := reg.Invoke(context.Background(), &Invocation{}, "echo", `[1, 2, 3]`)
		require.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("unparseable arguments", func(t *testing.T) {
		_, err := reg.Invoke(context.Background(), &Invocation{}, "echo", `not json`)
		require.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("empty arguments validate as empty object", func(t *testing.T) {
		noArgs := Descriptor{
			Name: "ping",
			Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
				return "pong", nil
			},
		}
		require.NoError(t, reg.Register(noArgs))
		out, err := reg.Invoke(context.Background(), &Invocation{}, "ping", "")
		require.NoError(t, err)
		assert.Equal(t, "pong", out)
	})
}

func TestRegistry_InvokeTimeout(t *testing.T) {
	reg := NewRegistry()
	slow := Descriptor{
		Name:    "slow",
		Timeout: 30 * time.Millisecond,
		Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	require.NoError(t, reg.Register(slow))

	start := time.Now()
	_, err := reg.Invoke(context.Background(), &Invocation{}, "slow", `{}`)
	require.ErrorIs(t, err, ErrToolTimeout)
	assert.Contains(t, err.Error(), "slow")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRegistry_InvokeParentCancellation(t *testing.T) {
	reg := NewRegistry()
	blocked := Descriptor{
		Name: "blocked",
		Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	require.NoError(t, reg.Register(blocked))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := reg.Invoke(ctx, &Invocation{}, "blocked", `{}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrToolTimeout,
		"an aborted call must not be reported as a tool timeout")
}

func TestRegistry_Describe(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoTool("echo")))
	untitled := echoTool("untitled")
	untitled.Title = nil
	require.NoError(t, reg.Register(untitled))

	tests := []struct {
		name      string
		tool      string
		arguments string
		expected  string
	}{
		{name: "title from arguments", tool: "echo", arguments: `{"message": "hi"}`, expected: "Echoing hi"},
		{name: "no title template falls back to name", tool: "untitled", arguments: `{"message": "hi"}`, expected: "untitled"},
		{name: "unknown tool falls back to name", tool: "ghost", arguments: `{}`, expected: "ghost"},
		{name: "unparseable arguments fall back to name", tool: "echo", arguments: `{{{`, expected: "echo"},
		{name: "empty arguments render with empty values", tool: "echo", arguments: "", expected: "Echoing "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reg.Describe(tt.tool, tt.arguments))
		})
	}
}

func TestRegistry_SafetyDefaultsToAuto(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoTool("echo")))

	desc, ok := reg.Get("echo")
	require.True(t, ok)
	assert.Equal(t, SafetyAuto, desc.Safety)
}
