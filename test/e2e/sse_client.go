package e2e

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameTimeout bounds every wait on the event stream. Generous because CI
// shares the NOTIFY round-trip with the container runtime.
const frameTimeout = 15 * time.Second

// eventStream consumes one SSE response in the background and hands
// frames to the test as decoded JSON objects.
type eventStream struct {
	t      *testing.T
	TaskID string

	resp   *http.Response
	frames chan map[string]any
	seen   []map[string]any
}

func newEventStream(t *testing.T, resp *http.Response) *eventStream {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	s := &eventStream{
		t:      t,
		TaskID: resp.Header.Get("X-Task-ID"),
		resp:   resp,
		frames: make(chan map[string]any, 64),
	}
	go s.read()
	t.Cleanup(func() { _ = resp.Body.Close() })
	return s
}

func (s *eventStream) read() {
	defer close(s.frames)
	scanner := bufio.NewScanner(s.resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		data, ok := strings.CutPrefix(scanner.Text(), "data: ")
		if !ok {
			continue
		}
		var frame map[string]any
		if err := json.Unmarshal([]byte(data), &frame); err != nil {
			s.t.Errorf("malformed SSE frame %q: %v", data, err)
			return
		}
		s.frames <- frame
	}
}

// Await reads frames until one of the given kind arrives and returns it.
// Every frame read along the way is retained for Drain.
func (s *eventStream) Await(kind string) map[string]any {
	s.t.Helper()
	deadline := time.After(frameTimeout)
	for {
		select {
		case frame, ok := <-s.frames:
			if !ok {
				s.t.Fatalf("stream closed before %s frame; got %v", kind, kinds(s.seen))
			}
			s.seen = append(s.seen, frame)
			if frame["kind"] == kind {
				return frame
			}
		case <-deadline:
			s.t.Fatalf("timed out waiting for %s frame; got %v", kind, kinds(s.seen))
		}
	}
}

// Drain reads until the server closes the stream and returns every frame
// seen on this connection, in order.
func (s *eventStream) Drain() []map[string]any {
	s.t.Helper()
	deadline := time.After(frameTimeout)
	for {
		select {
		case frame, ok := <-s.frames:
			if !ok {
				return s.seen
			}
			s.seen = append(s.seen, frame)
		case <-deadline:
			s.t.Fatalf("timed out draining stream; got %v", kinds(s.seen))
		}
	}
}

// kinds projects frames onto their kind strings.
func kinds(frames []map[string]any) []string {
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i], _ = f["kind"].(string)
	}
	return out
}

// steps projects frames onto their step indexes.
func steps(frames []map[string]any) []int {
	out := make([]int, len(frames))
	for i, f := range frames {
		v, _ := f["step_index"].(float64)
		out[i] = int(v)
	}
	return out
}

// assertDenseFrom checks that step indexes are consecutive starting at
// first and that done, if present, is the last frame.
func assertDenseFrom(t *testing.T, frames []map[string]any, first int) {
	t.Helper()
	for i, step := range steps(frames) {
		assert.Equal(t, first+i, step, "step_index gap at frame %d", i)
	}
	for i, kind := range kinds(frames) {
		if kind == "done" {
			assert.Equal(t, len(frames)-1, i, "done frame is not last")
		}
	}
}

// Investigate POSTs the investigation request and returns the live SSE
// stream. The task ID comes back in the X-Task-ID header.
func (app *TestApp) Investigate(body string) *eventStream {
	app.t.Helper()
	req, err := http.NewRequest(http.MethodPost, app.BaseURL+"/api/v1/investigate", strings.NewReader(body))
	require.NoError(app.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(app.t, err)
	stream := newEventStream(app.t, resp)
	require.NotEmpty(app.t, stream.TaskID)
	return stream
}

// Reconnect opens the replay endpoint for a task. after < 0 requests the
// full journal.
func (app *TestApp) Reconnect(taskID string, after int) *eventStream {
	app.t.Helper()
	url := fmt.Sprintf("%s/api/v1/investigate/%s/event", app.BaseURL, taskID)
	if after >= 0 {
		url += fmt.Sprintf("?after=%d", after)
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(app.t, err)

	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(app.t, err)
	return newEventStream(app.t, resp)
}

// PostJSON posts a JSON body to an API path and returns status plus the
// decoded response object.
func (app *TestApp) PostJSON(path, body string) (int, map[string]any) {
	app.t.Helper()
	resp, err := http.Post(app.BaseURL+path, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(app.t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(app.t, err)
	decoded := map[string]any{}
	if len(raw) > 0 {
		require.NoError(app.t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// GetTask fetches the full task object as decoded JSON.
func (app *TestApp) GetTask(taskID string) map[string]any {
	app.t.Helper()
	resp, err := http.Get(app.BaseURL + "/api/v1/investigate/" + taskID)
	require.NoError(app.t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(app.t, http.StatusOK, resp.StatusCode)

	var task map[string]any
	require.NoError(app.t, json.NewDecoder(resp.Body).Decode(&task))
	return task
}

// Approve delivers an approval decision for a pending gated call.
func (app *TestApp) Approve(taskID, callID, decision, note string) {
	app.t.Helper()
	body := fmt.Sprintf(`{"call_id":%q,"decision":%q,"note":%q}`, callID, decision, note)
	status, _ := app.PostJSON("/api/v1/investigate/"+taskID+"/approval", body)
	require.Equal(app.t, http.StatusOK, status)
}
