// Package api is the daemon's HTTP surface: the SSE investigation
// endpoints, the approval and abort controls, and the task query API.
// Every streamed event is one SSE frame, data: <json>, terminated by a
// frame with kind "done".
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agentkube/investigator/pkg/database"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/services"
	"github.com/agentkube/investigator/pkg/session"
)

// Investigator starts and drives investigations. Implemented by
// orchestrator.Supervisor.
type Investigator interface {
	Begin(ctx context.Context, req *models.InvestigateRequest) (*session.Session, error)
	Run(ctx context.Context, sess *session.Session, req *models.InvestigateRequest)
}

// Server is the HTTP server. Construct with NewServer, then Start.
type Server struct {
	echo *echo.Echo
	http *http.Server

	investigator Investigator
	sessions     *session.Manager
	tasks        *services.TaskService
	events       *services.EventService
	hub          *events.Hub
	db           *database.Client

	// runCtx is the daemon-lifetime context investigations run under.
	// Runs must not die with the HTTP request that started them; a
	// disconnected client reconnects through the event replay endpoint.
	runCtx context.Context

	logger *slog.Logger
}

// NewServer creates the HTTP server. runCtx must outlive individual
// requests; it is cancelled only on daemon shutdown.
func NewServer(
	runCtx context.Context,
	investigator Investigator,
	sessions *session.Manager,
	tasks *services.TaskService,
	eventService *services.EventService,
	hub *events.Hub,
	db *database.Client,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		investigator: investigator,
		sessions:     sessions,
		tasks:        tasks,
		events:       eventService,
		hub:          hub,
		db:           db,
		runCtx:       runCtx,
		logger:       logger.With("component", "api"),
	}

	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger(s.logger))
	s.registerRoutes(e)
	s.echo = e
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/investigate", s.investigateHandler)
	v1.GET("/investigate/:id", s.getTaskHandler)
	v1.GET("/investigate/:id/event", s.eventReplayHandler)
	v1.POST("/investigate/:id/abort", s.abortHandler)
	v1.POST("/investigate/:id/approval", s.approvalHandler)

	v1.GET("/tasks", s.listTasksHandler)
	v1.POST("/tasks/:id/resolve", s.resolveTaskHandler)

	v1.GET("/health", s.healthHandler)
}

// Handler exposes the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving HTTP on addr until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// StartWithListener serves HTTP on an existing listener. Used by tests
// that bind port 0 and need the resolved address before serving.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.http = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.Serve(ln)
}

// Shutdown drains in-flight requests. SSE responses end when their
// subscribers are closed or the client goes away; Shutdown does not wait
// for investigations, which run on runCtx.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
