// Package tools implements the tool catalog: the closed set of operations
// agents may perform, each described by a JSON parameter schema, a safety
// class and an in-process invoker. Tools are selected by name, validated
// against their schema, and dispatched through a single path with a
// per-call deadline.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Sentinel errors for tool dispatch. The runtime maps these onto the error
// kinds it reports on the event stream.
var (
	ErrToolNotFound     = errors.New("tool not found")
	ErrInvalidArguments = errors.New("invalid tool arguments")
	ErrToolTimeout      = errors.New("tool call timed out")
)

// DefaultCallTimeout bounds a single tool invocation unless the descriptor
// sets its own.
const DefaultCallTimeout = 30 * time.Second

// SafetyClass controls whether a tool executes immediately or waits for an
// operator decision.
type SafetyClass string

const (
	SafetyAuto  SafetyClass = "auto"
	SafetyGated SafetyClass = "gated"
)

// Invoker executes one validated tool call. args is the schema-validated
// argument object; inv carries the per-investigation capabilities. The
// returned string is the tool output fed back to the model (and persisted).
type Invoker func(ctx context.Context, inv *Invocation, args map[string]any) (string, error)

// TitleFunc renders a one-line human title from validated arguments,
// e.g. "Listing pods in prod".
type TitleFunc func(args map[string]any) string

// Descriptor describes one callable exposed to agents.
type Descriptor struct {
	Name             string
	Description      string        // shown to the LLM
	ParametersSchema string        // JSON Schema (object with required fields)
	Safety           SafetyClass   // auto executes immediately, gated waits for approval
	Component        string        // optional ui_component hint for structured rendering
	Timeout          time.Duration // 0 = DefaultCallTimeout
	Title            TitleFunc     // nil = generic "<name>" title
	Run              Invoker
}

// registeredTool pairs a descriptor with its compiled schema.
type registeredTool struct {
	desc   Descriptor
	schema *jsonschema.Schema
}

// Registry is the process-wide tool catalog. Built once at startup from the
// built-in tool sets, then read concurrently by every investigation.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]*registeredTool
	order  []string // registration order, for deterministic listings
	filter OutputFilter
}

// OutputFilter post-processes successful tool output before it leaves the
// dispatch path. Wired to masking.Service.MaskToolOutput at startup.
type OutputFilter func(output string) string

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*registeredTool)}
}

// SetOutputFilter installs the output filter. Called once during startup,
// before any investigation runs.
func (r *Registry) SetOutputFilter(f OutputFilter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = f
}

// Register adds a descriptor to the catalog. The parameter schema is
// compiled here so a malformed schema fails at startup, not mid-run.
func (r *Registry) Register(desc Descriptor) error {
	if desc.Name == "" {
		return fmt.Errorf("tool descriptor has no name")
	}
	if desc.Run == nil {
		return fmt.Errorf("tool %s has no invoker", desc.Name)
	}
	if desc.Safety == "" {
		desc.Safety = SafetyAuto
	}

	schema, err := compileSchema(desc.Name, desc.ParametersSchema)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[desc.Name]; exists {
		return fmt.Errorf("tool %s already registered", desc.Name)
	}
	r.tools[desc.Name] = &registeredTool{desc: desc, schema: schema}
	r.order = append(r.order, desc.Name)
	return nil
}

// RegisterAll registers a set of descriptors, stopping at the first error.
func (r *Registry) RegisterAll(descs ...Descriptor) error {
	for _, d := range descs {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the descriptor for a tool name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return Descriptor{}, false
	}
	return t.desc, true
}

// Names returns all registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Describe renders the human title for a call from its raw JSON arguments.
// Falls back to the bare tool name when the arguments don't parse or the
// descriptor has no title template — the UI always gets something to show.
func (r *Registry) Describe(name string, arguments string) string {
	r.mu.RLock()
	t, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return name
	}
	if t.desc.Title == nil {
		return name
	}

	args := map[string]any{}
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return name
		}
	}
	return t.desc.Title(args)
}

// Invoke validates the raw JSON arguments against the tool's schema and runs
// the invoker under the per-call deadline. Unknown tools and invalid
// arguments are reported without touching the invoker.
func (r *Registry) Invoke(ctx context.Context, inv *Invocation, name string, arguments string) (string, error) {
	r.mu.RLock()
	t, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	args, err := parseArguments(arguments)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := t.schema.Validate(args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	timeout := t.desc.Timeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := t.desc.Run(callCtx, inv, args)
	if err != nil {
		// A deadline that expired on the call context (not the parent) is a
		// tool timeout; parent cancellation propagates unchanged.
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return "", fmt.Errorf("%w: %s after %s", ErrToolTimeout, name, timeout)
		}
		return "", err
	}

	r.mu.RLock()
	filter := r.filter
	r.mu.RUnlock()
	if filter != nil {
		out = filter(out)
	}
	return out, nil
}

// parseArguments decodes the model-provided JSON argument object.
// Empty arguments mean "no arguments" and validate as {}.
func parseArguments(arguments string) (map[string]any, error) {
	if arguments == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return nil, fmt.Errorf("arguments are not a JSON object: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// compileSchema compiles a descriptor's JSON schema.
func compileSchema(name, source string) (*jsonschema.Schema, error) {
	if source == "" {
		source = `{"type": "object", "properties": {}}`
	}

	var doc any
	if err := json.Unmarshal([]byte(source), &doc); err != nil {
		return nil, fmt.Errorf("tool %s: unmarshal schema: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	resource := name + ".schema.json"
	if err := c.AddResource(resource, doc); err != nil {
		return nil, fmt.Errorf("tool %s: add schema resource: %w", name, err)
	}
	schema, err := c.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("tool %s: compile schema: %w", name, err)
	}
	return schema, nil
}
