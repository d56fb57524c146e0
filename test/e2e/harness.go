// Package e2e exercises the daemon end to end: real HTTP server, real
// PostgreSQL journal and NOTIFY fan-out, scripted LLM, fake cluster.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/api"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/database"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/orchestrator"
	"github.com/agentkube/investigator/pkg/services"
	"github.com/agentkube/investigator/pkg/session"
	"github.com/agentkube/investigator/pkg/todo"
	"github.com/agentkube/investigator/pkg/tools"
	testdb "github.com/agentkube/investigator/test/database"
	"github.com/agentkube/investigator/test/util"
)

// TestApp boots a complete daemon instance for e2e testing: the only
// substitutions are the scripted LLM client and the fake tool backends.
type TestApp struct {
	Config   *config.Config
	DB       *database.Client
	Tasks    *services.TaskService
	Events   *services.EventService
	Emitter  *events.Emitter
	Hub      *events.Hub
	Sessions *session.Manager

	LLM   *ScriptedLLMClient
	Shell *RecordingShell

	Server  *api.Server
	BaseURL string

	t *testing.T
}

// NewTestApp starts a full daemon over a per-test database schema.
// Shutdown is registered via t.Cleanup.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbClient := testdb.NewTestClient(t)
	taskService := services.NewTaskService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	emitter := events.NewEmitter(dbClient.DB())

	hub := events.NewHub()
	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), hub)
	require.NoError(t, listener.Start(ctx))
	hub.SetListener(listener)

	registry := tools.NewRegistry()
	require.NoError(t, registry.RegisterAll(tools.ClusterDescriptors()...))
	require.NoError(t, registry.RegisterAll(todo.Descriptors()...))
	require.NoError(t, registry.Register(tools.RunShellDescriptor()))
	require.NoError(t, registry.Register(tools.LookupDescriptor()))

	llm := NewScriptedLLMClient()
	shell := &RecordingShell{output: `pod "payments-0" deleted`}
	cfg := testAppConfig(t)
	sessions := session.NewManager()
	logger := slog.New(slog.DiscardHandler)

	supervisor := orchestrator.NewSupervisor(orchestrator.Deps{
		Config:   cfg,
		Registry: registry,
		Tasks:    taskService,
		Emitter:  emitter,
		LLM:      &scriptedFactory{client: llm},
		Sessions: sessions,
		Cluster:  fakeCluster{},
		Shell:    shell,
		Logger:   logger,
	})

	server := api.NewServer(ctx, supervisor, sessions, taskService, eventService, hub, dbClient, logger)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		listener.Stop(context.Background())
	})

	return &TestApp{
		Config:   cfg,
		DB:       dbClient,
		Tasks:    taskService,
		Events:   eventService,
		Emitter:  emitter,
		Hub:      hub,
		Sessions: sessions,
		LLM:      llm,
		Shell:    shell,
		Server:   server,
		BaseURL:  fmt.Sprintf("http://%s", ln.Addr().String()),
		t:        t,
	}
}

// testAppConfig mirrors the built-in agent layout at test scale: the
// supervisor with one specialist, scripted provider for everything.
func testAppConfig(t *testing.T) *config.Config {
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
					"lookup_past_investigations", "run_shell", "list_resources",
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

// --- scripted LLM ---

// ScriptedLLMClient replays canned chunk sequences keyed by agent name,
// one script per successive Generate call. A nil script entry blocks until
// the context is cancelled.
type ScriptedLLMClient struct {
	mu      sync.Mutex
	scripts map[string][][]agent.Chunk
	calls   map[string]int
}

func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		scripts: make(map[string][][]agent.Chunk),
		calls:   make(map[string]int),
	}
}

// AddTurn appends one scripted completion for the named agent.
func (c *ScriptedLLMClient) AddTurn(agentName string, chunks ...agent.Chunk) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scripts[agentName] = append(c.scripts[agentName], chunks)
}

// AddBlockingTurn schedules a turn that produces nothing and ends only
// when the run context is cancelled.
func (c *ScriptedLLMClient) AddBlockingTurn(agentName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scripts[agentName] = append(c.scripts[agentName], nil)
}

func (c *ScriptedLLMClient) Generate(ctx context.Context, in *agent.GenerateInput) (<-chan agent.Chunk, error) {
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

func (c *ScriptedLLMClient) Close() error { return nil }

type scriptedFactory struct{ client *ScriptedLLMClient }

func (f *scriptedFactory) ClientFor(*config.LLMProviderConfig) (agent.LLMClient, error) {
	return f.client, nil
}

// --- fake tool backends ---

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

// RecordingShell captures every gated command the agents run.
type RecordingShell struct {
	mu       sync.Mutex
	output   string
	commands []string
}

func (s *RecordingShell) Run(_ context.Context, command, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, command)
	return s.output, nil
}

// Commands returns a copy of the executed command list.
func (s *RecordingShell) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.commands))
	copy(out, s.commands)
	return out
}
