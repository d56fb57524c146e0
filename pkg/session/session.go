package session

import (
	"sync"
	"time"

	"github.com/agentkube/investigator/pkg/approval"
	"github.com/agentkube/investigator/pkg/todo"
)

// Session bundles the per-trace mutable state shared by the supervisor,
// its specialists and the HTTP boundary. All cross-component mutation
// goes through the broker, the board or the kubecontext accessors.
type Session struct {
	TaskID    string
	TraceID   string
	StartedAt time.Time

	Abort     *Signal
	Approvals *approval.Broker
	Todos     *todo.Board

	mu          sync.RWMutex
	kubecontext string
}

// New creates the session for a starting investigation. kubecontext is
// the initial cluster context from the request; agents may switch it
// mid-run via set_kubecontext.
func New(taskID, traceID, kubecontext string, todos *todo.Board) *Session {
	return &Session{
		TaskID:      taskID,
		TraceID:     traceID,
		StartedAt:   time.Now().UTC(),
		Abort:       NewSignal(),
		Approvals:   approval.NewBroker(),
		Todos:       todos,
		kubecontext: kubecontext,
	}
}

// Kubecontext returns the cluster context current tool calls target.
func (s *Session) Kubecontext() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kubecontext
}

// SetKubecontext switches the cluster context for subsequent tool calls.
func (s *Session) SetKubecontext(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kubecontext = name
}
