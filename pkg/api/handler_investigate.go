package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/pkg/approval"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
)

// investigateHandler handles POST /api/v1/investigate. It creates the
// task, starts the investigation on the daemon context, and streams the
// event frames inline as SSE until done. A client that drops the
// connection does not kill the run; it reconnects through the replay
// endpoint.
func (s *Server) investigateHandler(c *echo.Context) error {
	var req models.InvestigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess, err := s.investigator.Begin(c.Request().Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}

	// Subscribe before the run starts so frame zero cannot be missed.
	sub, err := s.hub.Subscribe(c.Request().Context(), events.TaskChannel(sess.TaskID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to attach to event stream")
	}
	defer s.hub.Unsubscribe(sub)

	go s.investigator.Run(s.runCtx, sess, &req)

	// The abort and approval endpoints key on the task ID; hand it to the
	// client in a header since SSE leaves no room for a response body.
	c.Response().Header().Set("X-Task-ID", sess.TaskID)

	stream := newSSEStream(c)
	sender := s.newFrameSender(stream, sess.TaskID, -1)
	return s.tail(c, sender, sub)
}

// eventReplayHandler handles GET /api/v1/investigate/:id/event. It replays
// persisted frames with step_index greater than after (query param,
// falling back to Last-Event-ID) and, if the task is still processing,
// follows with the live tail until done.
func (s *Server) eventReplayHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	after := -1
	if v := c.Request().Header.Get("Last-Event-ID"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			after = n
		}
	}
	// The explicit query parameter wins over the SSE header.
	if v := c.QueryParam("after"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "after must be a non-negative integer")
		}
		after = n
	}

	row, err := s.tasks.GetTask(c.Request().Context(), taskID, false)
	if err != nil {
		return mapServiceError(err)
	}

	// Attach to the live channel before reading the journal: anything
	// appended between replay and tail arrives on the subscription, and
	// the sender's step tracking drops what the replay already covered.
	sub, err := s.hub.Subscribe(c.Request().Context(), events.TaskChannel(taskID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to attach to event stream")
	}
	defer s.hub.Unsubscribe(sub)

	rows, err := s.events.ReadEventsSince(c.Request().Context(), taskID, after)
	if err != nil {
		return mapServiceError(err)
	}

	stream := newSSEStream(c)
	sender := s.newFrameSender(stream, taskID, after)

	for _, ev := range rows {
		terminal, err := sender.sendRow(events.FrameFromRow(ev))
		if err != nil {
			return nil // client went away mid-replay
		}
		if terminal {
			return nil
		}
	}

	// A terminal task whose journal holds no done frame (crash before the
	// recovery pass) still must not leave the client hanging.
	if row.Status != task.StatusProcessing {
		return nil
	}

	return s.tail(c, sender, sub)
}

// tail streams live frames from a subscription until done, client
// disconnect, or the hub dropping the subscriber.
func (s *Server) tail(c *echo.Context, sender *frameSender, sub *events.Subscriber) error {
	ctx := c.Request().Context()
	for {
		select {
		case payload, ok := <-sub.Events():
			if !ok {
				// Dropped by the hub; the client recovers via replay.
				return nil
			}
			terminal, err := sender.send(ctx, payload)
			if err != nil {
				s.logger.Debug("SSE stream ended", "task_id", sender.taskID, "error", err)
				return nil
			}
			if terminal {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// abortHandler handles POST /api/v1/investigate/:id/abort. It fires the
// abort signal and returns immediately; error{cancelled} and done follow
// on the event stream once the run unwinds.
func (s *Server) abortHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	sess, ok := s.sessions.Get(taskID)
	if !ok {
		// No live session: distinguish unknown task from finished task.
		if _, err := s.tasks.GetTask(c.Request().Context(), taskID, false); err != nil {
			return mapServiceError(err)
		}
		return echo.NewHTTPError(http.StatusConflict, "investigation is not running")
	}

	sess.Abort.Fire()
	return c.JSON(http.StatusAccepted, &AbortResponse{
		TaskID:  taskID,
		Message: "abort requested",
	})
}

// approvalHandler handles POST /api/v1/investigate/:id/approval. It
// delivers the operator's decision for a gated tool call to the session's
// approval broker and returns immediately.
func (s *Server) approvalHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req models.ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.CallID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "call_id is required")
	}
	if !req.Decision.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "decision must be approve, approve_for_session, or reject")
	}

	sess, ok := s.sessions.Get(taskID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "investigation is not running")
	}

	res := approval.Resolution{
		Approved:   req.Decision != models.DecisionReject,
		ForSession: req.Decision == models.DecisionApproveForSession,
		Note:       req.Note,
	}
	if err := sess.Approvals.Resolve(req.CallID, res); err != nil {
		return mapApprovalError(err)
	}

	return c.JSON(http.StatusOK, &ApprovalResponse{
		TaskID:   taskID,
		CallID:   req.CallID,
		Decision: string(req.Decision),
	})
}

// getTaskHandler handles GET /api/v1/investigate/:id — the full task with
// its event journal and subtasks.
func (s *Server) getTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	row, err := s.tasks.GetTask(c.Request().Context(), taskID, true)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}
