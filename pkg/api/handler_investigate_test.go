package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/ent/taskevent"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/services"
	"github.com/agentkube/investigator/pkg/session"
)

// fakeInvestigator scripts Begin and Run for handler tests. Run publishes
// pre-built frames to the hub, the way a real investigation would through
// the emitter.
type fakeInvestigator struct {
	hub      *events.Hub
	sessions *session.Manager
	beginErr error
	frames   []events.Frame

	mu     sync.Mutex
	ran    bool
	taskID string
}

func (f *fakeInvestigator) Begin(_ context.Context, req *models.InvestigateRequest) (*session.Session, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	sess := session.New("task-1", "trace-1", req.Context, nil)
	if f.sessions != nil {
		if err := f.sessions.Register(sess); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

func (f *fakeInvestigator) Run(_ context.Context, sess *session.Session, _ *models.InvestigateRequest) {
	f.mu.Lock()
	f.ran = true
	f.taskID = sess.TaskID
	f.mu.Unlock()

	for _, frame := range f.frames {
		payload, err := json.Marshal(frame)
		if err != nil {
			panic(err)
		}
		f.hub.Broadcast(events.TaskChannel(sess.TaskID), payload)
	}
}

func frame(step int, kind taskevent.Kind, payload map[string]any) events.Frame {
	return events.Frame{
		StepIndex: step,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// parseSSE splits an SSE body into its data payloads.
func parseSSE(t *testing.T, body string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(body, "\n") {
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(data), &m))
		out = append(out, m)
	}
	return out
}

func newStreamTestServer(inv *fakeInvestigator, sessions *session.Manager, hub *events.Hub) *Server {
	return NewServer(context.Background(), inv, sessions, nil, nil, hub, nil,
		slog.New(slog.DiscardHandler))
}

func TestInvestigateHandlerStreamsUntilDone(t *testing.T) {
	hub := events.NewHub()
	sessions := session.NewManager()
	inv := &fakeInvestigator{
		hub:      hub,
		sessions: sessions,
		frames: []events.Frame{
			frame(0, taskevent.KindTraceStarted, map[string]any{"trace_id": "trace-1"}),
			frame(1, taskevent.KindTextDelta, map[string]any{"text": "two pods", "role": "assistant"}),
			frame(2, taskevent.KindDone, nil),
		},
	}
	s := newStreamTestServer(inv, sessions, hub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/investigate",
		strings.NewReader(`{"prompt":"list pods in default"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/event-stream")
	assert.Equal(t, "task-1", rec.Header().Get("X-Task-ID"))

	got := parseSSE(t, rec.Body.String())
	require.Len(t, got, 3)
	assert.Equal(t, "trace_started", got[0]["kind"])
	assert.Equal(t, float64(0), got[0]["step_index"])
	assert.Equal(t, "two pods", got[1]["text"])
	assert.Equal(t, "done", got[2]["kind"])

	inv.mu.Lock()
	defer inv.mu.Unlock()
	assert.True(t, inv.ran)
	assert.Equal(t, "task-1", inv.taskID)
}

func TestInvestigateHandlerValidationError(t *testing.T) {
	hub := events.NewHub()
	inv := &fakeInvestigator{
		hub:      hub,
		beginErr: services.NewValidationError("prompt", "required"),
	}
	s := newStreamTestServer(inv, session.NewManager(), hub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/investigate",
		strings.NewReader(`{"prompt":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Rejected before any SSE output.
	assert.NotContains(t, rec.Header().Get(echo.HeaderContentType), "text/event-stream")
}

func TestAbortHandlerFiresSignal(t *testing.T) {
	sessions := session.NewManager()
	sess := session.New("task-abort", "trace-1", "", nil)
	require.NoError(t, sessions.Register(sess))

	s := newStreamTestServer(&fakeInvestigator{}, sessions, events.NewHub())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/investigate/task-abort/abort", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, sess.Abort.Fired())

	var resp AbortResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "task-abort", resp.TaskID)
}

func TestApprovalHandlerResolvesPendingCall(t *testing.T) {
	sessions := session.NewManager()
	sess := session.New("task-appr", "trace-1", "", nil)
	require.NoError(t, sessions.Register(sess))
	require.NoError(t, sess.Approvals.Register("call-1", "run_shell"))

	s := newStreamTestServer(&fakeInvestigator{}, sessions, events.NewHub())

	body := `{"call_id":"call-1","decision":"approve_for_session","note":"go ahead"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/investigate/task-appr/approval",
		strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sess.Approvals.SessionApproved("run_shell"))

	res, err := sess.Approvals.Await(context.Background(), "call-1")
	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.True(t, res.ForSession)
	assert.Equal(t, "go ahead", res.Note)
}

func TestApprovalHandlerRejections(t *testing.T) {
	sessions := session.NewManager()
	sess := session.New("task-appr", "trace-1", "", nil)
	require.NoError(t, sessions.Register(sess))

	s := newStreamTestServer(&fakeInvestigator{}, sessions, events.NewHub())

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		return rec
	}

	t.Run("invalid decision", func(t *testing.T) {
		rec := post("/api/v1/investigate/task-appr/approval",
			`{"call_id":"c","decision":"maybe"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing call_id", func(t *testing.T) {
		rec := post("/api/v1/investigate/task-appr/approval",
			`{"decision":"approve"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no live session", func(t *testing.T) {
		rec := post("/api/v1/investigate/no-such-task/approval",
			`{"call_id":"c","decision":"approve"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no pending call", func(t *testing.T) {
		rec := post("/api/v1/investigate/task-appr/approval",
			`{"call_id":"never-registered","decision":"approve"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
