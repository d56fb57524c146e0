// Package agent implements the generic LLM agent loop shared by the
// supervisor and the specialists: stream a completion, forward text deltas,
// dispatch tool calls one at a time through the gateway and the approval
// broker, feed truncated results back, repeat until the model produces a
// final message or the turn budget runs out.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentkube/investigator/pkg/approval"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/events"
)

// llmRetryBudget is the number of times a failed streaming call is retried
// when nothing user-visible was lost. A failure after text deltas already
// reached the stream is fatal: replaying would duplicate visible output.
const llmRetryBudget = 2

// duplicateCallLimit is the number of consecutive identical tool calls
// (same name, same normalized arguments) after which the runtime stops
// executing and forces the model to conclude.
const duplicateCallLimit = 3

// rejectionFeedback is the synthetic tool response fed to the model when
// the operator rejects a gated call, so it can replan instead of retrying.
const rejectionFeedback = "user rejected execution"

// Emitter is the slice of the event emitter the runtime needs.
// Satisfied by *events.Emitter.
type Emitter interface {
	EmitAgentStarted(ctx context.Context, taskID string, payload events.AgentStartedPayload) error
	EmitAgentCompleted(ctx context.Context, taskID string, payload events.AgentCompletedPayload) error
	EmitTextDelta(ctx context.Context, taskID string, payload events.TextDeltaPayload) error
	EmitToolCallRequested(ctx context.Context, taskID string, payload events.ToolCallRequestedPayload) error
	EmitToolCallApproved(ctx context.Context, taskID string, payload events.ToolCallApprovedPayload) error
	EmitToolCallRejected(ctx context.Context, taskID string, payload events.ToolCallRejectedPayload) error
	EmitToolCallOutput(ctx context.Context, taskID string, payload events.ToolCallOutputPayload) error
	EmitError(ctx context.Context, taskID string, payload events.ErrorPayload) error
}

// ApprovalGate is the broker surface the runtime blocks on for gated calls.
// Satisfied by *approval.Broker.
type ApprovalGate interface {
	Register(callID, toolName string) error
	Await(ctx context.Context, callID string) (approval.Resolution, error)
	SessionApproved(toolName string) bool
}

// RunInput configures one agent run.
type RunInput struct {
	TaskID       string
	TraceID      string
	AgentName    string
	Instructions string                // system prompt
	Input        []ConversationMessage // seed messages (user prompt, delegated question)
	Gateway      ToolGateway
	Approvals    ApprovalGate
	Provider     *config.LLMProviderConfig
	MaxTurns     int
	MaxTokens    int
	Temperature  *float64
}

// Result is the outcome of a completed agent run.
type Result struct {
	FinalText string
	Turns     int  // LLM round-trips consumed
	Truncated bool // turn budget exhausted or loop short-circuited
}

// Runtime drives agent loops. One Runtime serves every agent in the daemon;
// all per-run state travels in RunInput.
type Runtime struct {
	llm     LLMClient
	emitter Emitter
}

// NewRuntime creates a runtime over the given LLM client and event emitter.
func NewRuntime(llm LLMClient, emitter Emitter) *Runtime {
	return &Runtime{llm: llm, emitter: emitter}
}

// Run executes the agent loop until a final message, the turn budget, or a
// fatal condition. A fatal error (context cancellation, unretryable LLM
// failure) is returned to the caller; tool-level failures never are — they
// become structured tool responses the model sees.
func (r *Runtime) Run(ctx context.Context, in *RunInput) (*Result, error) {
	log := slog.With("task_id", in.TaskID, "agent", in.AgentName)
	start := time.Now()

	r.mustEmit(ctx, log, "agent_started", r.emitter.EmitAgentStarted(ctx, in.TaskID, events.AgentStartedPayload{
		AgentName: in.AgentName,
	}))

	toolDefs, err := in.Gateway.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools for %s: %w", in.AgentName, err)
	}

	maxTurns := in.MaxTurns
	if maxTurns <= 0 {
		maxTurns = config.DefaultMaxTurns
	}

	messages := make([]ConversationMessage, 0, len(in.Input)+1)
	if in.Instructions != "" {
		messages = append(messages, ConversationMessage{Role: RoleSystem, Content: in.Instructions})
	}
	messages = append(messages, in.Input...)

	loop := &loopState{retriesLeft: llmRetryBudget}

	for turn := 1; turn <= maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := r.streamTurn(ctx, in, messages, toolDefs, loop)
		if err != nil {
			return nil, err
		}

		if len(out.toolCalls) == 0 {
			if strings.TrimSpace(out.text) == "" {
				// A model returning neither text nor tool calls has nothing
				// more to say; treat like a final empty message.
				log.Warn("Model produced empty turn", "turn", turn)
			}
			r.emitCompleted(ctx, log, in, start, turn)
			return &Result{FinalText: out.text, Turns: turn}, nil
		}

		messages = append(messages, ConversationMessage{
			Role:      RoleAssistant,
			Content:   out.text,
			ToolCalls: out.toolCalls,
		})

		for _, call := range out.toolCalls {
			if call.ID == "" {
				call.ID = uuid.NewString()
			}

			if loop.recordCall(call) >= duplicateCallLimit {
				log.Warn("Duplicate tool call loop detected", "tool", call.Name, "repeats", loop.repeatCount)
				messages = append(messages, toolResponse(call,
					fmt.Sprintf("Loop detected: %s was called %d times in a row with identical arguments and is not producing new information. Stop calling tools and state your conclusion from the evidence gathered so far.",
						call.Name, loop.repeatCount)))
				continue
			}

			reply, err := r.dispatchCall(ctx, log, in, call)
			if err != nil {
				return nil, err
			}
			messages = append(messages, reply)
		}

		if loop.repeatCount >= duplicateCallLimit {
			result, err := r.concludeWithoutTools(ctx, in, messages, loop,
				"Tool access has been suspended because of the repeated identical calls. Write your final answer now using only what you already know.")
			if err != nil {
				return nil, err
			}
			result.Turns = turn + 1
			r.emitCompleted(ctx, log, in, start, result.Turns)
			return result, nil
		}
	}

	// Turn budget exhausted mid-investigation: one last completion without
	// tools so the run still ends with a usable answer.
	log.Warn("Turn budget exhausted, forcing conclusion", "max_turns", maxTurns)
	result, err := r.concludeWithoutTools(ctx, in, messages, loop,
		fmt.Sprintf("You have used all %d turns. Stop calling tools and write your final answer now. Note explicitly that the investigation was cut short by the turn limit.", maxTurns))
	if err != nil {
		return nil, err
	}
	result.Turns = maxTurns + 1
	r.emitCompleted(ctx, log, in, start, result.Turns)
	return result, nil
}

// loopState carries cross-turn loop guardrails: the LLM retry budget and
// the consecutive duplicate call detector.
type loopState struct {
	retriesLeft int

	lastCallKey string
	repeatCount int
}

// recordCall updates the duplicate detector and returns the consecutive
// count for this exact call. Arguments are normalized through a JSON
// round-trip so key order and whitespace differences do not hide a loop.
func (s *loopState) recordCall(call ToolCall) int {
	key := call.Name + "\x00" + normalizeArguments(call.Arguments)
	if key == s.lastCallKey {
		s.repeatCount++
	} else {
		s.lastCallKey = key
		s.repeatCount = 1
	}
	return s.repeatCount
}

func normalizeArguments(raw string) string {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	normalized, err := json.Marshal(v)
	if err != nil {
		return raw
	}
	return string(normalized)
}

// turnOutcome is what one streamed completion produced.
type turnOutcome struct {
	text      string
	toolCalls []ToolCall
}

// streamTurn runs one streaming completion, forwarding text deltas to the
// event stream as they arrive. A provider failure before anything visible
// was emitted is retried from the retry budget; after visible output it is
// fatal, since re-streaming would duplicate deltas on the wire.
func (r *Runtime) streamTurn(ctx context.Context, in *RunInput, messages []ConversationMessage, toolDefs []ToolDefinition, loop *loopState) (*turnOutcome, error) {
	log := slog.With("task_id", in.TaskID, "agent", in.AgentName)

	for {
		out, errChunk, emitted, err := r.collectStream(ctx, in, messages, toolDefs)
		if err != nil {
			return nil, err
		}
		if errChunk == nil {
			return out, nil
		}

		if emitted {
			return nil, fmt.Errorf("llm stream failed mid-message: %s", errChunk.Message)
		}
		if !errChunk.Retryable || loop.retriesLeft <= 0 {
			return nil, fmt.Errorf("llm stream failed: %s", errChunk.Message)
		}

		loop.retriesLeft--
		log.Warn("Retrying failed LLM stream", "error", errChunk.Message, "retries_left", loop.retriesLeft)
	}
}

// collectStream drains one chunk stream. emitted reports whether any text
// delta reached the event stream before a failure.
func (r *Runtime) collectStream(ctx context.Context, in *RunInput, messages []ConversationMessage, toolDefs []ToolDefinition) (*turnOutcome, *ErrorChunk, bool, error) {
	log := slog.With("task_id", in.TaskID, "agent", in.AgentName)

	stream, err := r.llm.Generate(ctx, &GenerateInput{
		TaskID:      in.TaskID,
		TraceID:     in.TraceID,
		Agent:       in.AgentName,
		Messages:    messages,
		Config:      in.Provider,
		Tools:       toolDefs,
		MaxTokens:   in.MaxTokens,
		Temperature: in.Temperature,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, false, ctx.Err()
		}
		return nil, &ErrorChunk{Message: err.Error(), Retryable: true}, false, nil
	}

	var (
		text     strings.Builder
		out      = &turnOutcome{}
		errChunk *ErrorChunk
		emitted  bool
	)

	for chunk := range stream {
		switch c := chunk.(type) {
		case *TextChunk:
			text.WriteString(c.Content)
			emitted = true
			r.mustEmit(ctx, log, "text_delta", r.emitter.EmitTextDelta(ctx, in.TaskID, events.TextDeltaPayload{
				Text: c.Content,
				Role: events.RoleAssistant,
			}))
		case *ThinkingChunk:
			emitted = true
			r.mustEmit(ctx, log, "text_delta", r.emitter.EmitTextDelta(ctx, in.TaskID, events.TextDeltaPayload{
				Text: c.Content,
				Role: events.RoleReasoning,
			}))
		case *ToolCallChunk:
			out.toolCalls = append(out.toolCalls, ToolCall{ID: c.CallID, Name: c.Name, Arguments: c.Arguments})
		case *UsageChunk:
			log.Debug("LLM usage", "input_tokens", c.InputTokens, "output_tokens", c.OutputTokens)
		case *ErrorChunk:
			errChunk = c
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, emitted, err
	}

	out.text = text.String()
	return out, errChunk, emitted, nil
}

// dispatchCall executes one tool call end to end: announce, gate, run,
// journal the output and build the tool response for the model. Only
// context cancellation escapes as an error.
func (r *Runtime) dispatchCall(ctx context.Context, log *slog.Logger, in *RunInput, call ToolCall) (ConversationMessage, error) {
	meta, known := in.Gateway.Meta(call.Name)
	if !known {
		log.Warn("Model requested unknown tool", "tool", call.Name)
		r.mustEmit(ctx, log, "error", r.emitter.EmitError(ctx, in.TaskID, events.ErrorPayload{
			ErrorKind: events.ErrorKindToolNotFound,
			Message:   fmt.Sprintf("tool not available: %s", call.Name),
			CallID:    call.ID,
		}))
		return toolResponse(call, fmt.Sprintf("tool not available: %s", call.Name)), nil
	}

	gated := meta.Gated && (in.Approvals == nil || !in.Approvals.SessionApproved(call.Name))
	if gated && in.Approvals == nil {
		// No broker wired means nobody can answer; fail the call rather
		// than hang the investigation.
		return toolResponse(call, fmt.Sprintf("tool %s requires approval but no approver is available", call.Name)), nil
	}

	if gated {
		if err := in.Approvals.Register(call.ID, call.Name); err != nil {
			return ConversationMessage{}, fmt.Errorf("failed to register approval for call %s: %w", call.ID, err)
		}
	}

	r.mustEmit(ctx, log, "tool_call_requested", r.emitter.EmitToolCallRequested(ctx, in.TaskID, events.ToolCallRequestedPayload{
		CallID:           call.ID,
		ToolName:         call.Name,
		Arguments:        argumentsMap(call.Arguments),
		Title:            in.Gateway.Describe(call.Name, call.Arguments),
		ApprovalRequired: gated,
		AgentName:        in.AgentName,
	}))

	if gated {
		decision, err := in.Approvals.Await(ctx, call.ID)
		if err != nil {
			// Abort fired (or the daemon is shutting down) while waiting.
			return ConversationMessage{}, err
		}
		if !decision.Approved {
			r.mustEmit(ctx, log, "tool_call_rejected", r.emitter.EmitToolCallRejected(ctx, in.TaskID, events.ToolCallRejectedPayload{
				CallID:   call.ID,
				UserNote: decision.Note,
			}))
			r.mustEmit(ctx, log, "tool_call_output", r.emitter.EmitToolCallOutput(ctx, in.TaskID, events.ToolCallOutputPayload{
				CallID:  call.ID,
				Output:  rejectionFeedback,
				Success: false,
			}))
			feedback := rejectionFeedback
			if decision.Note != "" {
				feedback = fmt.Sprintf("%s: %s", rejectionFeedback, decision.Note)
			}
			return toolResponse(call, feedback), nil
		}
		r.mustEmit(ctx, log, "tool_call_approved", r.emitter.EmitToolCallApproved(ctx, in.TaskID, events.ToolCallApprovedPayload{
			CallID:   call.ID,
			UserNote: decision.Note,
		}))
	}

	started := time.Now()
	result, err := in.Gateway.Execute(ctx, call)
	if err != nil {
		return ConversationMessage{}, err
	}
	duration := time.Since(started).Milliseconds()

	success := !result.IsError
	payload := events.ToolCallOutputPayload{
		CallID:     call.ID,
		Output:     outputValue(result.Content, meta.Component, success),
		Success:    success,
		DurationMS: duration,
	}
	if success && meta.Component != "" {
		payload.Component = meta.Component
	}
	r.mustEmit(ctx, log, "tool_call_output", r.emitter.EmitToolCallOutput(ctx, in.TaskID, payload))

	feedback := truncateFeedback(result.Content, in.Provider)
	return toolResponse(call, feedback), nil
}

// concludeWithoutTools asks the model for a final answer with the tool
// schemas withheld, appending note as a user message explaining why.
func (r *Runtime) concludeWithoutTools(ctx context.Context, in *RunInput, messages []ConversationMessage, loop *loopState, note string) (*Result, error) {
	messages = append(messages, ConversationMessage{Role: RoleUser, Content: note})

	out, err := r.streamTurn(ctx, in, messages, nil, loop)
	if err != nil {
		return nil, err
	}
	return &Result{FinalText: out.text, Truncated: true}, nil
}

func (r *Runtime) emitCompleted(ctx context.Context, log *slog.Logger, in *RunInput, start time.Time, turns int) {
	r.mustEmit(ctx, log, "agent_completed", r.emitter.EmitAgentCompleted(ctx, in.TaskID, events.AgentCompletedPayload{
		AgentName:  in.AgentName,
		DurationMS: time.Since(start).Milliseconds(),
		Turns:      turns,
	}))
}

// mustEmit logs a failed event write and moves on. A store failure must not
// kill the investigation; the frame is lost but the run continues.
func (r *Runtime) mustEmit(ctx context.Context, log *slog.Logger, kind string, err error) {
	if err == nil || ctx.Err() != nil {
		return
	}
	log.Warn("Failed to emit event", "kind", kind, "error", err)
}

// toolResponse builds the tool-role message fed back to the model.
func toolResponse(call ToolCall, content string) ConversationMessage {
	return ConversationMessage{
		Role:       RoleTool,
		Content:    content,
		ToolCallID: call.ID,
		ToolName:   call.Name,
	}
}

// argumentsMap decodes the raw argument JSON for the event payload.
// Malformed arguments become an empty object; the schema validation in the
// registry reports the real error when the call executes.
func argumentsMap(raw string) map[string]any {
	m := map[string]any{}
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &m)
	}
	return m
}

// truncateFeedback cuts the model-facing copy of a tool result to the
// provider's max_tool_result_tokens budget; the journal keeps the full
// output either way.
func truncateFeedback(content string, provider *config.LLMProviderConfig) string {
	limit := 0 // TruncateForModel applies the daemon default
	if provider != nil && provider.MaxToolResultTokens > 0 {
		limit = provider.MaxToolResultTokens
	}
	return TruncateForModel(content, limit)
}

// outputValue decides what lands in the journal: structured JSON when the
// tool succeeded and carries a UI component hint, the raw text otherwise.
// The journal always gets the complete output; only the model-facing copy
// is truncated.
func outputValue(content, component string, success bool) any {
	if !success || component == "" {
		return content
	}
	var structured any
	if err := json.Unmarshal([]byte(content), &structured); err != nil {
		return content
	}
	return structured
}
