package tools

import (
	"context"
	"fmt"
	"time"
)

// ToolRunShell is the only gated built-in: arbitrary shell execution on the
// operator's machine. Every call goes through the approval broker unless the
// operator widened the session allow-set.
const ToolRunShell = "run_shell"

// RunShellDescriptor returns the gated shell tool. The CommandRunner backend
// decides what "shell" means (local exec, remote, dry-run); this daemon only
// enforces gating, timeout and output capture.
func RunShellDescriptor() Descriptor {
	return Descriptor{
		Name:        ToolRunShell,
		Description: "Run a shell command against the current kubecontext, e.g. kubectl or helm. Requires user approval.",
		ParametersSchema: `{
			"type": "object",
			"properties": {
				"cmd": {"type": "string", "description": "Command line to execute"}
			},
			"required": ["cmd"],
			"additionalProperties": false
		}`,
		Safety:    SafetyGated,
		Component: "terminal",
		Timeout:   2 * time.Minute,
		Title: func(args map[string]any) string {
			return fmt.Sprintf("Running: %s", shorten(stringArg(args, "cmd"), 64))
		},
		Run: func(ctx context.Context, inv *Invocation, args map[string]any) (string, error) {
			if inv.Shell == nil {
				return "", fmt.Errorf("shell execution is not configured")
			}
			cmd := stringArg(args, "cmd")
			if cmd == "" {
				return "", fmt.Errorf("cmd must not be empty")
			}
			return inv.Shell.Run(ctx, cmd, kubecontextOf(inv))
		},
	}
}
