package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/tools"
)

// the session is handed to cluster tools as their kubecontext store
var _ tools.KubecontextStore = (*Session)(nil)

func TestSession_KubecontextSwitch(t *testing.T) {
	s := New("task-1", "trace-1", "dev", nil)
	assert.Equal(t, "dev", s.Kubecontext())

	s.SetKubecontext("prod")
	assert.Equal(t, "prod", s.Kubecontext())
}

func TestSession_NewWiresAbortAndApprovals(t *testing.T) {
	s := New("task-1", "trace-1", "", nil)
	require.NotNil(t, s.Abort)
	require.NotNil(t, s.Approvals)
	assert.False(t, s.Abort.Fired())
	assert.Equal(t, 0, s.Approvals.PendingCount())
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager()
	assert.Equal(t, 0, m.Count())

	s := New("task-1", "trace-1", "", nil)
	require.NoError(t, m.Register(s))
	assert.Equal(t, 1, m.Count())

	err := m.Register(New("task-1", "trace-other", "", nil))
	require.Error(t, err, "double registration for a task must fail")

	got, ok := m.Get("task-1")
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("task-unknown")
	assert.False(t, ok)

	m.Remove("task-1")
	_, ok = m.Get("task-1")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())

	m.Remove("task-1") // removing twice is a no-op
}
