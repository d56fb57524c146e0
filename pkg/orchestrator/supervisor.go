package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/models"
	"github.com/agentkube/investigator/pkg/services"
	"github.com/agentkube/investigator/pkg/session"
	"github.com/agentkube/investigator/pkg/todo"
	"github.com/agentkube/investigator/pkg/tools"
)

// terminalEmitTimeout bounds the terminal patch+emit sequence. It runs on a
// fresh context because the run context is usually already cancelled when
// the sequence starts.
const terminalEmitTimeout = 10 * time.Second

// Deps bundles the daemon-wide collaborators a Supervisor needs.
type Deps struct {
	Config   *config.Config
	Registry *tools.Registry
	Tasks    TaskStore
	Emitter  Emitter
	LLM      ClientFactory
	Sessions *session.Manager

	// Cluster and Shell are the concrete backends behind the diagnostic
	// tools; either may be nil, in which case the tools report themselves
	// unavailable.
	Cluster tools.ClusterReader
	Shell   tools.CommandRunner

	Logger *slog.Logger
}

// Supervisor runs investigations. One Supervisor serves the whole daemon;
// per-investigation state lives in the session and the run context.
type Supervisor struct {
	deps Deps
}

// NewSupervisor creates a supervisor over the given collaborators.
func NewSupervisor(deps Deps) *Supervisor {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Supervisor{deps: deps}
}

// Begin validates the request, persists a fresh task in status processing
// and registers the live session. The caller subscribes to the event
// stream with the returned session's task ID and then invokes Run.
func (s *Supervisor) Begin(ctx context.Context, req *models.InvestigateRequest) (*session.Session, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, services.NewValidationError("prompt", "required")
	}
	if req.Model != "" {
		if _, err := s.deps.Config.GetLLMProvider(req.Model); err != nil {
			return nil, services.NewValidationError("model", fmt.Sprintf("unknown LLM provider %q", req.Model))
		}
	}

	taskID := uuid.NewString()
	traceID := uuid.NewString()

	if _, err := s.deps.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		TaskID:          taskID,
		Prompt:          req.Prompt,
		Kubecontext:     req.Context,
		Model:           req.Model,
		ResourceContext: req.ResourceContext,
		LogContext:      req.LogContext,
	}); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	board := todo.NewBoard(taskID, s.deps.Config.System.TodoSnapshotDir, s.deps.Emitter)
	sess := session.New(taskID, traceID, req.Context, board)
	if err := s.deps.Sessions.Register(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Run drives the investigation for a session created by Begin, from
// trace_started through done. It blocks until the stream is closed and
// must not be called with the HTTP request context: the run outlives a
// client disconnect. parent is cancelled only on daemon shutdown.
func (s *Supervisor) Run(parent context.Context, sess *session.Session, req *models.InvestigateRequest) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	sess.Abort.BindCancel(cancel)

	log := s.deps.Logger.With("task_id", sess.TaskID, "trace_id", sess.TraceID)
	log.Info("Investigation started")

	defer func() {
		s.deps.Emitter.Forget(sess.TaskID)
		s.deps.Sessions.Remove(sess.TaskID)
	}()

	if err := s.deps.Emitter.EmitTraceStarted(ctx, sess.TaskID, events.TraceStartedPayload{TraceID: sess.TraceID}); err != nil {
		log.Warn("Failed to emit trace_started", "error", err)
	}

	supervisorCfg, err := s.deps.Config.GetAgent(config.AgentSupervisor)
	if err != nil {
		s.finishFailed(sess, log, fmt.Errorf("supervisor agent is not configured: %w", err))
		return
	}
	provider, err := s.providerFor(supervisorCfg, req.Model)
	if err != nil {
		s.finishFailed(sess, log, err)
		return
	}
	client, err := s.deps.LLM.ClientFor(provider)
	if err != nil {
		s.finishFailed(sess, log, fmt.Errorf("failed to build LLM client: %w", err))
		return
	}

	summarizer := NewSummarizer(client, provider)

	// Metadata pre-pass: a provisional title from the prompt alone, so the
	// task list is scannable while the investigation is still running.
	if title, err := summarizer.PrePass(ctx, req.Prompt); err != nil {
		log.Warn("Title pre-pass failed", "error", err)
	} else if title != "" {
		if _, err := s.deps.Tasks.UpdateTask(ctx, sess.TaskID, models.UpdateTaskRequest{Title: &title}); err != nil {
			log.Warn("Failed to patch provisional title", "error", err)
		}
	}

	gateway, err := s.buildSupervisorGateway(sess, supervisorCfg, req.Model)
	if err != nil {
		s.finishFailed(sess, log, err)
		return
	}

	runtime := agent.NewRuntime(client, s.deps.Emitter)
	result, err := runtime.Run(ctx, &agent.RunInput{
		TaskID:       sess.TaskID,
		TraceID:      sess.TraceID,
		AgentName:    config.AgentSupervisor,
		Instructions: supervisorCfg.Instructions,
		Input:        []agent.ConversationMessage{{Role: agent.RoleUser, Content: buildUserPrompt(req)}},
		Gateway:      gateway,
		Approvals:    sess.Approvals,
		Provider:     provider,
		MaxTurns:     s.deps.Config.MaxTurnsFor(supervisorCfg),
	})
	if err != nil {
		if ctx.Err() != nil || sess.Abort.Fired() {
			s.finishCancelled(sess, log)
			return
		}
		s.finishFailed(sess, log, err)
		return
	}

	summary, remediation := parseReport(result.FinalText)
	log.Info("Investigation finished", "turns", result.Turns, "truncated", result.Truncated)

	// Metadata post-pass: final title, tags and severity informed by the
	// completed summary. Best effort; the provisional title stands on failure.
	meta, err := summarizer.PostPass(ctx, req.Prompt, summary)
	if err != nil {
		log.Warn("Metadata post-pass failed", "error", err)
		meta = &Metadata{}
	}

	s.finishCompleted(sess, log, summary, remediation, meta)
}

// providerFor resolves the LLM provider for an agent, honoring the
// per-request model override for every agent in the trace.
func (s *Supervisor) providerFor(agentCfg *config.AgentConfig, override string) (*config.LLMProviderConfig, error) {
	if override != "" {
		return s.deps.Config.GetLLMProvider(override)
	}
	return s.deps.Config.ProviderFor(agentCfg)
}

// buildSupervisorGateway assembles the supervisor's tool surface: the
// registry tools it is granted plus the specialists as delegation tools.
func (s *Supervisor) buildSupervisorGateway(sess *session.Session, supervisorCfg *config.AgentConfig, modelOverride string) (agent.ToolGateway, error) {
	inv := s.invocation(sess)

	var registryNames []string
	specialists := make([]specialistSpec, 0, len(config.SpecialistAgents))
	for _, name := range supervisorCfg.Tools {
		spec, err := s.deps.Config.GetAgent(name)
		if err != nil {
			registryNames = append(registryNames, name)
			continue
		}
		specialists = append(specialists, specialistSpec{Name: name, Description: spec.Description})
	}

	inner, err := tools.NewGateway(s.deps.Registry, inv, config.AgentSupervisor, registryNames)
	if err != nil {
		return nil, fmt.Errorf("failed to build supervisor tool gateway: %w", err)
	}

	runner := &specialistRunner{
		deps:          s.deps,
		session:       sess,
		invocation:    inv,
		modelOverride: modelOverride,
	}
	return newSupervisorGateway(supervisorCfg.Tools, inner, specialists, runner), nil
}

// invocation builds the per-trace tool capability set shared by the
// supervisor and every specialist.
func (s *Supervisor) invocation(sess *session.Session) *tools.Invocation {
	return &tools.Invocation{
		TaskID:  sess.TaskID,
		TraceID: sess.TraceID,
		Todos:   sess.Todos,
		Tasks:   &pastInvestigations{tasks: s.deps.Tasks},
		Cluster: s.deps.Cluster,
		Kube:    sess,
		Shell:   s.deps.Shell,
	}
}

// finishCompleted runs the success-path terminal sequence: patch the task,
// emit investigation_completed, then done.
func (s *Supervisor) finishCompleted(sess *session.Session, log *slog.Logger, summary, remediation string, meta *Metadata) {
	ctx, cancel := context.WithTimeout(context.Background(), terminalEmitTimeout)
	defer cancel()

	completed := task.StatusCompleted
	patch := models.UpdateTaskRequest{
		Status:      &completed,
		Summary:     &summary,
		Remediation: &remediation,
	}
	if meta.Title != "" {
		patch.Title = &meta.Title
	}
	if len(meta.Tags) > 0 {
		patch.Tags = meta.Tags
	}
	if sev, ok := parseSeverity(meta.Severity); ok {
		patch.Severity = &sev
	}
	if _, err := s.deps.Tasks.UpdateTask(ctx, sess.TaskID, patch); err != nil {
		log.Warn("Failed to patch task on completion", "error", err)
	}

	if err := s.deps.Emitter.EmitInvestigationCompleted(ctx, sess.TaskID, events.InvestigationCompletedPayload{
		Summary:     summary,
		Remediation: remediation,
		Title:       meta.Title,
		Tags:        meta.Tags,
		Severity:    meta.Severity,
	}); err != nil {
		log.Warn("Failed to emit investigation_completed", "error", err)
	}
	s.emitDone(ctx, sess.TaskID, log)
}

// finishCancelled closes out an aborted investigation: error{cancelled},
// status cancelled, done.
func (s *Supervisor) finishCancelled(sess *session.Session, log *slog.Logger) {
	log.Info("Investigation aborted")
	ctx, cancel := context.WithTimeout(context.Background(), terminalEmitTimeout)
	defer cancel()

	if err := s.deps.Emitter.EmitError(ctx, sess.TaskID, events.ErrorPayload{
		ErrorKind: events.ErrorKindCancelled,
		Message:   "investigation aborted",
	}); err != nil {
		log.Warn("Failed to emit cancellation error", "error", err)
	}

	cancelled := task.StatusCancelled
	msg := "aborted by user"
	if _, err := s.deps.Tasks.UpdateTask(ctx, sess.TaskID, models.UpdateTaskRequest{
		Status:       &cancelled,
		ErrorMessage: &msg,
	}); err != nil {
		log.Warn("Failed to patch task on abort", "error", err)
	}
	s.emitDone(ctx, sess.TaskID, log)
}

// finishFailed closes out a fatally failed investigation: error, status
// failed, done.
func (s *Supervisor) finishFailed(sess *session.Session, log *slog.Logger, runErr error) {
	log.Error("Investigation failed", "error", runErr)
	ctx, cancel := context.WithTimeout(context.Background(), terminalEmitTimeout)
	defer cancel()

	if err := s.deps.Emitter.EmitError(ctx, sess.TaskID, events.ErrorPayload{
		ErrorKind: events.ErrorKindLLM,
		Message:   runErr.Error(),
	}); err != nil {
		log.Warn("Failed to emit failure error", "error", err)
	}

	failed := task.StatusFailed
	msg := runErr.Error()
	if _, err := s.deps.Tasks.UpdateTask(ctx, sess.TaskID, models.UpdateTaskRequest{
		Status:       &failed,
		ErrorMessage: &msg,
	}); err != nil {
		log.Warn("Failed to patch task on failure", "error", err)
	}
	s.emitDone(ctx, sess.TaskID, log)
}

func (s *Supervisor) emitDone(ctx context.Context, taskID string, log *slog.Logger) {
	if err := s.deps.Emitter.EmitDone(ctx, taskID); err != nil {
		log.Error("Failed to emit done frame", "error", err)
	}
}

// buildUserPrompt renders the seed user message: the request prompt plus
// any attached resource manifests and log excerpts.
func buildUserPrompt(req *models.InvestigateRequest) string {
	var b strings.Builder
	b.WriteString(req.Prompt)

	if req.Context != "" {
		fmt.Fprintf(&b, "\n\nKubernetes context: %s", req.Context)
	}
	if len(req.ResourceContext) > 0 {
		b.WriteString("\n\nAttached resource manifests:")
		for name, yaml := range req.ResourceContext {
			fmt.Fprintf(&b, "\n\n--- %s ---\n%s", name, yaml)
		}
	}
	if len(req.LogContext) > 0 {
		b.WriteString("\n\nAttached log excerpts:")
		for name, logs := range req.LogContext {
			fmt.Fprintf(&b, "\n\n--- %s ---\n%s", name, logs)
		}
	}
	return b.String()
}

// parseReport splits the supervisor's final message into the summary and
// remediation sections. Two layouts are recognized: "## Summary" /
// "## Remediation" markdown headers, and "SUMMARY:" / "REMEDIATION:" line
// labels. A message in neither form becomes the summary wholesale, so a
// model that ignored the format still yields a usable task record.
func parseReport(text string) (summary, remediation string) {
	lower := strings.ToLower(text)
	sumIdx := strings.Index(lower, "## summary")
	remIdx := strings.Index(lower, "## remediation")

	switch {
	case sumIdx >= 0 && remIdx > sumIdx:
		summary = strings.TrimSpace(text[sumIdx+len("## summary") : remIdx])
		remediation = strings.TrimSpace(text[remIdx+len("## remediation"):])
	case sumIdx >= 0:
		summary = strings.TrimSpace(text[sumIdx+len("## summary"):])
	case remIdx >= 0:
		summary = strings.TrimSpace(text[:remIdx])
		remediation = strings.TrimSpace(text[remIdx+len("## remediation"):])
	default:
		summary, remediation = parseLabeledReport(text)
	}
	return summary, remediation
}

// parseLabeledReport handles the "SUMMARY: ...\nREMEDIATION: ..." layout.
// Each label starts a section running until the next label; text before
// the first label counts toward the summary. No labels at all means the
// whole message is the summary.
func parseLabeledReport(text string) (summary, remediation string) {
	var sum, rem []string
	target := &sum
	labeled := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "summary:"):
			labeled = true
			target = &sum
			if rest := strings.TrimSpace(trimmed[len("summary:"):]); rest != "" {
				*target = append(*target, rest)
			}
		case strings.HasPrefix(lower, "remediation:"):
			labeled = true
			target = &rem
			if rest := strings.TrimSpace(trimmed[len("remediation:"):]); rest != "" {
				*target = append(*target, rest)
			}
		default:
			*target = append(*target, line)
		}
	}

	if !labeled {
		return strings.TrimSpace(text), ""
	}
	return strings.TrimSpace(strings.Join(sum, "\n")), strings.TrimSpace(strings.Join(rem, "\n"))
}

// parseSeverity maps the summarizer's severity string onto the task enum.
func parseSeverity(s string) (task.Severity, bool) {
	sev := task.Severity(strings.ToLower(strings.TrimSpace(s)))
	switch sev {
	case task.SeverityCritical, task.SeverityHigh, task.SeverityMedium, task.SeverityLow, task.SeverityInfo:
		return sev, true
	}
	return "", false
}
