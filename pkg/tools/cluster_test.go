package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCluster records the last call so tests can assert routing and the
// kubecontext each tool passed down.
type fakeCluster struct {
	lastMethod      string
	lastKubecontext string
	lastTailLines   int
	lastSince       time.Duration
	lastWindow      time.Duration
}

func (f *fakeCluster) ResourceYAML(ctx context.Context, kubecontext, kind, namespace, name string) (string, error) {
	f.lastMethod, f.lastKubecontext = "ResourceYAML", kubecontext
	return fmt.Sprintf("kind: %s\nmetadata:\n  name: %s\n  namespace: %s\n", kind, name, namespace), nil
}

func (f *fakeCluster) ResourceDependencies(ctx context.Context, kubecontext, kind, namespace, name string) (string, error) {
	f.lastMethod, f.lastKubecontext = "ResourceDependencies", kubecontext
	return fmt.Sprintf("%s/%s -> ReplicaSet -> Pod", kind, name), nil
}

func (f *fakeCluster) ListResources(ctx context.Context, kubecontext, kind, namespace, labelSelector string) (string, error) {
	f.lastMethod, f.lastKubecontext = "ListResources", kubecontext
	return fmt.Sprintf("NAME READY\n%s-1 1/1\n", kind), nil
}

func (f *fakeCluster) PodLogs(ctx context.Context, kubecontext, namespace, pod, container string, tailLines int) (string, error) {
	f.lastMethod, f.lastKubecontext, f.lastTailLines = "PodLogs", kubecontext, tailLines
	return "log line 1\nlog line 2\n", nil
}

func (f *fakeCluster) SearchLogs(ctx context.Context, kubecontext, namespace, query string, since time.Duration) (string, error) {
	f.lastMethod, f.lastKubecontext, f.lastSince = "SearchLogs", kubecontext, since
	return "matched line\n", nil
}

func (f *fakeCluster) QueryMetrics(ctx context.Context, kubecontext, query string, window time.Duration) (string, error) {
	f.lastMethod, f.lastKubecontext, f.lastWindow = "QueryMetrics", kubecontext, window
	return `{"series": []}`, nil
}

type fakeKube struct{ current string }

func (f *fakeKube) Kubecontext() string        { return f.current }
func (f *fakeKube) SetKubecontext(name string) { f.current = name }

type fakeRunner struct {
	lastCmd         string
	lastKubecontext string
	out             string
	err             error
}

func (f *fakeRunner) Run(ctx context.Context, command, kubecontext string) (string, error) {
	f.lastCmd, f.lastKubecontext = command, kubecontext
	return f.out, f.err
}

type fakeFinder struct {
	hits      []PastInvestigation
	err       error
	lastQuery string
	lastLimit int
}

func (f *fakeFinder) SearchCompleted(ctx context.Context, query string, limit int) ([]PastInvestigation, error) {
	f.lastQuery, f.lastLimit = query, limit
	return f.hits, f.err
}

func newClusterRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.RegisterAll(ClusterDescriptors()...))
	require.NoError(t, reg.Register(RunShellDescriptor()))
	require.NoError(t, reg.Register(LookupDescriptor()))
	return reg
}

func TestClusterDescriptors_RegisterCleanly(t *testing.T) {
	reg := newClusterRegistry(t)
	assert.Equal(t, []string{
		ToolGetResourceYAML,
		ToolGetResourceDependency,
		ToolListResources,
		ToolPodLogs,
		ToolSearchLogs,
		ToolQueryMetrics,
		ToolSetKubecontext,
		ToolRunShell,
		ToolLookupPastInvestigations,
	}, reg.Names())
}

func TestClusterTools_PassCurrentKubecontext(t *testing.T) {
	reg := newClusterRegistry(t)
	fc := &fakeCluster{}
	inv := &Invocation{Cluster: fc, Kube: &fakeKube{current: "prod"}}

	out, err := reg.Invoke(context.Background(), inv, ToolGetResourceYAML,
		`{"kind": "Deployment", "name": "payments-api", "namespace": "payments"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: Deployment")
	assert.Equal(t, "ResourceYAML", fc.lastMethod)
	assert.Equal(t, "prod", fc.lastKubecontext)
}

func TestClusterTools_UnconfiguredReader(t *testing.T) {
	reg := newClusterRegistry(t)

	_, err := reg.Invoke(context.Background(), &Invocation{}, ToolListResources, `{"kind": "Pod"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSetKubecontext_SwitchesSubsequentCalls(t *testing.T) {
	reg := newClusterRegistry(t)
	fc := &fakeCluster{}
	kube := &fakeKube{current: "dev"}
	inv := &Invocation{Cluster: fc, Kube: kube}

	out, err := reg.Invoke(context.Background(), inv, ToolSetKubecontext, `{"name": "staging"}`)
	require.NoError(t, err)
	assert.Equal(t, "kubecontext set to staging", out)

	_, err = reg.Invoke(context.Background(), inv, ToolPodLogs,
		`{"namespace": "payments", "pod": "payments-api-0"}`)
	require.NoError(t, err)
	assert.Equal(t, "staging", fc.lastKubecontext)
}

func TestSetKubecontext_RejectsEmptyName(t *testing.T) {
	reg := newClusterRegistry(t)
	inv := &Invocation{Kube: &fakeKube{}}

	_, err := reg.Invoke(context.Background(), inv, ToolSetKubecontext, `{"name": ""}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")
}

func TestPodLogs_DefaultsTailLines(t *testing.T) {
	reg := newClusterRegistry(t)
	fc := &fakeCluster{}
	inv := &Invocation{Cluster: fc}

	_, err := reg.Invoke(context.Background(), inv, ToolPodLogs,
		`{"namespace": "payments", "pod": "payments-api-0"}`)
	require.NoError(t, err)
	assert.Equal(t, 100, fc.lastTailLines)

	_, err = reg.Invoke(context.Background(), inv, ToolPodLogs,
		`{"namespace": "payments", "pod": "payments-api-0", "tail_lines": 250}`)
	require.NoError(t, err)
	assert.Equal(t, 250, fc.lastTailLines)
}

func TestSearchLogs_WindowParsing(t *testing.T) {
	reg := newClusterRegistry(t)
	fc := &fakeCluster{}
	inv := &Invocation{Cluster: fc}

	_, err := reg.Invoke(context.Background(), inv, ToolSearchLogs,
		`{"query": "OOMKilled", "since": "2h"}`)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, fc.lastSince)

	// Malformed windows fall back to the default instead of failing the call.
	_, err = reg.Invoke(context.Background(), inv, ToolSearchLogs,
		`{"query": "OOMKilled", "since": "yesterday"}`)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, fc.lastSince)
}

func TestRunShell_GatedAndRouted(t *testing.T) {
	desc := RunShellDescriptor()
	assert.Equal(t, SafetyGated, desc.Safety)
	assert.Equal(t, "terminal", desc.Component)

	reg := newClusterRegistry(t)
	runner := &fakeRunner{out: "bin  etc  usr"}
	inv := &Invocation{Shell: runner, Kube: &fakeKube{current: "prod"}}

	out, err := reg.Invoke(context.Background(), inv, ToolRunShell, `{"cmd": "ls /"}`)
	require.NoError(t, err)
	assert.Equal(t, "bin  etc  usr", out)
	assert.Equal(t, "ls /", runner.lastCmd)
	assert.Equal(t, "prod", runner.lastKubecontext)
}

func TestRunShell_Unconfigured(t *testing.T) {
	reg := newClusterRegistry(t)

	_, err := reg.Invoke(context.Background(), &Invocation{}, ToolRunShell, `{"cmd": "ls"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestLookupPastInvestigations(t *testing.T) {
	reg := newClusterRegistry(t)

	t.Run("returns hits as JSON", func(t *testing.T) {
		finder := &fakeFinder{hits: []PastInvestigation{
			{TaskID: "task-1", Title: "Payments crashloop", Severity: "high", Summary: "OOM"},
		}}
		inv := &Invocation{Tasks: finder}

		out, err := reg.Invoke(context.Background(), inv, ToolLookupPastInvestigations,
			`{"query": "payments crashloop"}`)
		require.NoError(t, err)
		assert.Equal(t, "payments crashloop", finder.lastQuery)
		assert.Equal(t, defaultLookupLimit, finder.lastLimit)

		var hits []PastInvestigation
		require.NoError(t, json.Unmarshal([]byte(out), &hits))
		require.Len(t, hits, 1)
		assert.Equal(t, "task-1", hits[0].TaskID)
	})

	t.Run("no matches", func(t *testing.T) {
		inv := &Invocation{Tasks: &fakeFinder{}}
		out, err := reg.Invoke(context.Background(), inv, ToolLookupPastInvestigations,
			`{"query": "nothing"}`)
		require.NoError(t, err)
		assert.Equal(t, "No past investigations matched.", out)
	})

	t.Run("limit above schema maximum rejected", func(t *testing.T) {
		inv := &Invocation{Tasks: &fakeFinder{}}
		_, err := reg.Invoke(context.Background(), inv, ToolLookupPastInvestigations,
			`{"query": "x", "limit": 50}`)
		require.ErrorIs(t, err, ErrInvalidArguments)
	})
}

func TestToolTitles(t *testing.T) {
	reg := newClusterRegistry(t)

	tests := []struct {
		tool      string
		arguments string
		expected  string
	}{
		{ToolGetResourceYAML, `{"kind": "Deployment", "name": "payments-api"}`, "Fetching Deployment payments-api manifest"},
		{ToolListResources, `{"kind": "Pod", "namespace": "prod"}`, "Listing Pod in prod"},
		{ToolListResources, `{"kind": "Node"}`, "Listing Node in all namespaces"},
		{ToolPodLogs, `{"namespace": "prod", "pod": "api-0"}`, "Reading logs from prod/api-0"},
		{ToolSetKubecontext, `{"name": "staging"}`, "Switching kubecontext to staging"},
		{ToolRunShell, `{"cmd": "kubectl get pods"}`, "Running: kubectl get pods"},
		{ToolLookupPastInvestigations, `{"query": "payments"}`, `Searching past investigations for "payments"`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, reg.Describe(tt.tool, tt.arguments))
		})
	}
}
