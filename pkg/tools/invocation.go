package tools

import (
	"context"
	"time"

	"github.com/agentkube/investigator/pkg/models"
)

// Invocation carries the per-investigation state and capabilities a tool
// invoker may use. One Invocation is built per trace and shared by every
// agent in that investigation; fields left nil mean the capability is not
// wired and invokers must fail with a clear message.
type Invocation struct {
	TaskID    string
	TraceID   string
	AgentName string // stamped per call by the agent's gateway

	Todos   TodoStore
	Tasks   TaskFinder
	Cluster ClusterReader
	Kube    KubecontextStore
	Shell   CommandRunner
}

// TodoStore is the todo board surface the write_todos/read_todos tools use.
// Implemented by todo.Board.
type TodoStore interface {
	// Replace swaps the whole list atomically after validation and emits
	// the todo_updated snapshot event.
	Replace(ctx context.Context, todos []models.Todo) error
	// List returns the current snapshot, reloading the disk mirror if the
	// in-memory state was lost.
	List(ctx context.Context) ([]models.Todo, error)
}

// PastInvestigation is one hit from the completed-task search.
type PastInvestigation struct {
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Severity    string     `json:"severity,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TaskFinder searches completed investigations. Implemented by an adapter
// over services.TaskService.
type TaskFinder interface {
	SearchCompleted(ctx context.Context, query string, limit int) ([]PastInvestigation, error)
}

// ClusterReader is the read-only cluster and observability surface behind
// the diagnostic tools. Concrete backends (kubectl, Prometheus, Loki) are
// wired by the embedding program; this daemon ships only the contract.
type ClusterReader interface {
	ResourceYAML(ctx context.Context, kubecontext, kind, namespace, name string) (string, error)
	ResourceDependencies(ctx context.Context, kubecontext, kind, namespace, name string) (string, error)
	ListResources(ctx context.Context, kubecontext, kind, namespace, labelSelector string) (string, error)
	PodLogs(ctx context.Context, kubecontext, namespace, pod, container string, tailLines int) (string, error)
	SearchLogs(ctx context.Context, kubecontext, namespace, query string, since time.Duration) (string, error)
	QueryMetrics(ctx context.Context, kubecontext, query string, window time.Duration) (string, error)
}

// KubecontextStore reads and changes the cluster context the investigation
// targets. Implemented by session.Session.
type KubecontextStore interface {
	Kubecontext() string
	SetKubecontext(name string)
}

// CommandRunner executes a shell command. Only the gated run_shell tool
// reaches it.
type CommandRunner interface {
	Run(ctx context.Context, command, kubecontext string) (string, error)
}
