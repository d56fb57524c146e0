package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agentkube/investigator/ent/taskevent"
	"github.com/agentkube/investigator/pkg/events"
)

// envelopeResolveTimeout bounds the journal read that resolves one NOTIFY
// truncation envelope back into a full frame.
const envelopeResolveTimeout = 5 * time.Second

// sseStream writes SSE frames to one response. It owns the response
// headers and flushing; handlers feed it frames and stop at done.
type sseStream struct {
	c  *echo.Context
	rc *http.ResponseController
}

// newSSEStream sets the event-stream headers and commits the response.
func newSSEStream(c *echo.Context) *sseStream {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	return &sseStream{
		c:  c,
		rc: http.NewResponseController(c.Response()),
	}
}

// writeFrame writes one data: frame and flushes it to the client. The id:
// field carries the step index so Last-Event-ID reconnects line up.
func (s *sseStream) writeFrame(stepIndex int, data []byte) error {
	if _, err := fmt.Fprintf(s.c.Response(), "id: %d\ndata: %s\n\n", stepIndex, data); err != nil {
		return err
	}
	return s.rc.Flush()
}

// frameSender resolves truncation envelopes and delivers frames to one SSE
// stream, tracking the last step written so replay and live tail never
// hand the client a duplicate.
type frameSender struct {
	server   *Server
	stream   *sseStream
	taskID   string
	lastStep int
}

// newFrameSender creates a sender that skips frames at or below after.
// Pass -1 for a fresh stream that has replayed nothing.
func (s *Server) newFrameSender(stream *sseStream, taskID string, after int) *frameSender {
	return &frameSender{server: s, stream: stream, taskID: taskID, lastStep: after}
}

// send parses one broadcast payload and writes it if it advances the
// stream. It reports whether the frame was terminal (kind done).
func (f *frameSender) send(ctx context.Context, payload []byte) (terminal bool, err error) {
	var frame events.Frame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return false, fmt.Errorf("malformed frame on channel for task %s: %w", f.taskID, err)
	}

	if frame.StepIndex <= f.lastStep {
		// Already delivered through replay.
		return false, nil
	}

	data := payload
	if frame.IsTruncated() {
		data, err = f.resolveEnvelope(ctx, frame.StepIndex)
		if err != nil {
			return false, err
		}
	}

	if err := f.stream.writeFrame(frame.StepIndex, data); err != nil {
		return false, err
	}
	f.lastStep = frame.StepIndex
	return frame.Kind == taskevent.KindDone, nil
}

// sendRow writes one persisted journal row.
func (f *frameSender) sendRow(frame events.Frame) (terminal bool, err error) {
	data, err := json.Marshal(frame)
	if err != nil {
		return false, err
	}
	if err := f.stream.writeFrame(frame.StepIndex, data); err != nil {
		return false, err
	}
	f.lastStep = frame.StepIndex
	return frame.Kind == taskevent.KindDone, nil
}

// resolveEnvelope fetches the full frame a truncation envelope points at.
// Oversized payloads are never carried through NOTIFY; the journal row is
// authoritative.
func (f *frameSender) resolveEnvelope(ctx context.Context, stepIndex int) ([]byte, error) {
	readCtx, cancel := context.WithTimeout(ctx, envelopeResolveTimeout)
	defer cancel()

	row, err := f.server.events.GetEvent(readCtx, f.taskID, stepIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve truncated frame %d for task %s: %w", stepIndex, f.taskID, err)
	}
	return json.Marshal(events.FrameFromRow(row))
}
