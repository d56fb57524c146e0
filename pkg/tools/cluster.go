package tools

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

// Names of the built-in cluster tools. Stable across releases; agent
// configurations and UI renderers key on them.
const (
	ToolGetResourceYAML       = "get_resource_yaml"
	ToolGetResourceDependency = "get_resource_dependency"
	ToolListResources         = "list_resources"
	ToolPodLogs               = "pod_logs"
	ToolSearchLogs            = "search_logs"
	ToolQueryMetrics          = "query_metrics"
	ToolSetKubecontext        = "set_kubecontext"
)

// ClusterDescriptors returns the read-only diagnostic tools plus
// set_kubecontext. The concrete ClusterReader backend is resolved at call
// time from the Invocation, so the descriptors themselves are static and
// registered once at startup.
func ClusterDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:        ToolGetResourceYAML,
			Description: "Fetch the full YAML manifest of a single Kubernetes resource, including status.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"kind": {"type": "string", "description": "Resource kind, e.g. Deployment, Pod, Service"},
					"name": {"type": "string", "description": "Resource name"},
					"namespace": {"type": "string", "description": "Namespace; omit for cluster-scoped resources"}
				},
				"required": ["kind", "name"],
				"additionalProperties": false
			}`,
			Component: "yaml_viewer",
			Title: func(args map[string]any) string {
				return fmt.Sprintf("Fetching %s %s manifest", stringArg(args, "kind"), stringArg(args, "name"))
			},
			Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
				cluster, err := clusterOf(inv)
				if err != nil {
					return "", err
				}
				return cluster.ResourceYAML(ctx, kubecontextOf(inv),
					stringArg(args, "kind"), stringArg(args, "namespace"), stringArg(args, "name"))
			},
		},
		{
			Name:        ToolGetResourceDependency,
			Description: "Map the owners, dependents and referenced objects of a Kubernetes resource (e.g. Deployment -> ReplicaSets -> Pods, mounted ConfigMaps, Services selecting it).",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"kind": {"type": "string", "description": "Resource kind"},
					"name": {"type": "string", "description": "Resource name"},
					"namespace": {"type": "string", "description": "Namespace; omit for cluster-scoped resources"}
				},
				"required": ["kind", "name"],
				"additionalProperties": false
			}`,
			Component: "resource_graph",
			Title: func(args map[string]any) string {
				return fmt.Sprintf("Mapping dependencies of %s %s", stringArg(args, "kind"), stringArg(args, "name"))
			},
			Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
				cluster, err := clusterOf(inv)
				if err != nil {
					return "", err
				}
				return cluster.ResourceDependencies(ctx, kubecontextOf(inv),
					stringArg(args, "kind"), stringArg(args, "namespace"), stringArg(args, "name"))
			},
		},
		{
			Name:        ToolListResources,
			Description: "List Kubernetes resources of one kind, optionally filtered by namespace and label selector.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"kind": {"type": "string", "description": "Resource kind to list, e.g. Pod, Deployment, Node"},
					"namespace": {"type": "string", "description": "Namespace; omit for all namespaces"},
					"label_selector": {"type": "string", "description": "Label selector, e.g. app=payments"}
				},
				"required": ["kind"],
				"additionalProperties": false
			}`,
			Component: "resource_table",
			Title: func(args map[string]any) string {
				ns := stringArg(args, "namespace")
				if ns == "" {
					ns = "all namespaces"
				}
				return fmt.Sprintf("Listing %s in %s", stringArg(args, "kind"), ns)
			},
			Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
				cluster, err := clusterOf(inv)
				if err != nil {
					return "", err
				}
				return cluster.ListResources(ctx, kubecontextOf(inv),
					stringArg(args, "kind"), stringArg(args, "namespace"), stringArg(args, "label_selector"))
			},
		},
		{
			Name:        ToolPodLogs,
			Description: "Read recent log lines from one pod, optionally from a specific container.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"namespace": {"type": "string", "description": "Pod namespace"},
					"pod": {"type": "string", "description": "Pod name"},
					"container": {"type": "string", "description": "Container name; omit for the first container"},
					"tail_lines": {"type": "integer", "minimum": 1, "maximum": 2000, "description": "Number of trailing lines, default 100"}
				},
				"required": ["namespace", "pod"],
				"additionalProperties": false
			}`,
			Component: "log_viewer",
			Timeout:   60 * time.Second,
			Title: func(args map[string]any) string {
				return fmt.Sprintf("Reading logs from %s/%s", stringArg(args, "namespace"), stringArg(args, "pod"))
			},
			Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
				cluster, err := clusterOf(inv)
				if err != nil {
					return "", err
				}
				return cluster.PodLogs(ctx, kubecontextOf(inv),
					stringArg(args, "namespace"), stringArg(args, "pod"), stringArg(args, "container"),
					intArg(args, "tail_lines", 100))
			},
		},
		{
			Name:        ToolSearchLogs,
			Description: "Search aggregated logs across a namespace for a query string within a time window.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"namespace": {"type": "string", "description": "Namespace to search; omit for all namespaces"},
					"query": {"type": "string", "description": "Text or query expression to search for"},
					"since": {"type": "string", "description": "Look-back window like 15m or 2h, default 15m"}
				},
				"required": ["query"],
				"additionalProperties": false
			}`,
			Component: "log_viewer",
			Timeout:   60 * time.Second,
			Title: func(args map[string]any) string {
				return fmt.Sprintf("Searching logs for %q", shorten(stringArg(args, "query"), 48))
			},
			Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
				cluster, err := clusterOf(inv)
				if err != nil {
					return "", err
				}
				return cluster.SearchLogs(ctx, kubecontextOf(inv),
					stringArg(args, "namespace"), stringArg(args, "query"),
					durationArg(args, "since", 15*time.Minute))
			},
		},
		{
			Name:        ToolQueryMetrics,
			Description: "Run a metrics query (PromQL) over a recent time window and return the series.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"query": {"type": "string", "description": "PromQL expression"},
					"window": {"type": "string", "description": "Query window like 5m or 1h, default 5m"}
				},
				"required": ["query"],
				"additionalProperties": false
			}`,
			Component: "metrics_chart",
			Timeout:   60 * time.Second,
			Title: func(args map[string]any) string {
				return fmt.Sprintf("Querying metrics: %s", shorten(stringArg(args, "query"), 48))
			},
			Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
				cluster, err := clusterOf(inv)
				if err != nil {
					return "", err
				}
				return cluster.QueryMetrics(ctx, kubecontextOf(inv),
					stringArg(args, "query"), durationArg(args, "window", 5*time.Minute))
			},
		},
		{
			Name:        ToolSetKubecontext,
			Description: "Switch the kubecontext all subsequent cluster tools in this investigation target.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Kubecontext name as known to the local kubeconfig"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`,
			Title: func(args map[string]any) string {
				return fmt.Sprintf("Switching kubecontext to %s", stringArg(args, "name"))
			},
			Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
				if inv.Kube == nil {
					return "", fmt.Errorf("kubecontext state is not wired for this investigation")
				}
				name := stringArg(args, "name")
				if name == "" {
					return "", fmt.Errorf("kubecontext name must not be empty")
				}
				inv.Kube.SetKubecontext(name)
				return fmt.Sprintf("kubecontext set to %s", name), nil
			},
		},
	}
}

func clusterOf(inv *Invocation) (ClusterReader, error) {
	if inv.Cluster == nil {
		return nil, fmt.Errorf("cluster access is not configured")
	}
	return inv.Cluster, nil
}

func kubecontextOf(inv *Invocation) string {
	if inv.Kube == nil {
		return ""
	}
	return inv.Kube.Kubecontext()
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg tolerates both float64 (JSON numbers after Unmarshal) and int
// (arguments built directly in tests).
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// durationArg parses Go duration strings like "15m"; malformed or missing
// values fall back to the default rather than failing the call.
func durationArg(args map[string]any, key string, def time.Duration) time.Duration {
	s := stringArg(args, key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// shorten clamps a string for one-line titles, cutting on a rune boundary.
func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
