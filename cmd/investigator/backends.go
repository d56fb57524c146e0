package main

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/agentkube/investigator/pkg/tools"
)

// The core tool packages define contracts only; the concrete backends
// live here in the wrapper, where the operator's machine (kubectl on
// PATH, local shell) is a legitimate dependency.

// kubectlCluster implements tools.ClusterReader by shelling out to
// kubectl. Read-only: every subcommand used here is a get/describe-class
// operation.
type kubectlCluster struct{}

func newKubectlCluster() *kubectlCluster {
	return &kubectlCluster{}
}

func (k *kubectlCluster) run(ctx context.Context, kubecontext string, args ...string) (string, error) {
	if kubecontext != "" {
		args = append([]string{"--context", kubecontext}, args...)
	}
	cmd := exec.CommandContext(ctx, "kubectl", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("kubectl %s: %s", args[0], msg)
	}
	return stdout.String(), nil
}

func (k *kubectlCluster) ResourceYAML(ctx context.Context, kubecontext, kind, namespace, name string) (string, error) {
	args := []string{"get", kind, name, "-o", "yaml"}
	if namespace != "" {
		args = append(args, "-n", namespace)
	}
	return k.run(ctx, kubecontext, args...)
}

func (k *kubectlCluster) ResourceDependencies(ctx context.Context, kubecontext, kind, namespace, name string) (string, error) {
	// describe surfaces owners, events and referenced objects in one shot.
	args := []string{"describe", kind, name}
	if namespace != "" {
		args = append(args, "-n", namespace)
	}
	return k.run(ctx, kubecontext, args...)
}

func (k *kubectlCluster) ListResources(ctx context.Context, kubecontext, kind, namespace, labelSelector string) (string, error) {
	args := []string{"get", kind, "-o", "wide"}
	if namespace != "" {
		args = append(args, "-n", namespace)
	} else {
		args = append(args, "--all-namespaces")
	}
	if labelSelector != "" {
		args = append(args, "-l", labelSelector)
	}
	return k.run(ctx, kubecontext, args...)
}

func (k *kubectlCluster) PodLogs(ctx context.Context, kubecontext, namespace, pod, container string, tailLines int) (string, error) {
	args := []string{"logs", pod, "-n", namespace, "--tail", strconv.Itoa(tailLines)}
	if container != "" {
		args = append(args, "-c", container)
	}
	return k.run(ctx, kubecontext, args...)
}

// SearchLogs has no aggregator to query locally: it pulls the recent
// logs of every pod in the namespace and filters client-side.
func (k *kubectlCluster) SearchLogs(ctx context.Context, kubecontext, namespace, query string, since time.Duration) (string, error) {
	names, err := k.run(ctx, kubecontext, "get", "pods", "-n", namespace, "-o", "name")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, name := range strings.Fields(names) {
		out, err := k.run(ctx, kubecontext,
			"logs", name, "-n", namespace, "--all-containers", "--prefix",
			"--since", formatSince(since))
		if err != nil {
			continue // pod may have gone away mid-scan
		}
		b.WriteString(out)
	}
	return filterLines(b.String(), query), nil
}

// formatSince renders a duration the way kubectl expects (no fractional
// units, minimum one second).
func formatSince(d time.Duration) string {
	if d < time.Second {
		d = time.Second
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

func (k *kubectlCluster) QueryMetrics(ctx context.Context, kubecontext, query string, window time.Duration) (string, error) {
	// No metrics backend is wired into the local daemon; kubectl top is
	// the best available approximation for resource pressure questions.
	return k.run(ctx, kubecontext, "top", "pod", "--all-namespaces")
}

// filterLines keeps only lines containing the query, case-insensitive.
func filterLines(out, query string) string {
	if query == "" {
		return out
	}
	needle := strings.ToLower(query)
	var b strings.Builder
	matches := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(strings.ToLower(line), needle) {
			b.WriteString(line)
			b.WriteByte('\n')
			matches++
		}
	}
	if matches == 0 {
		return fmt.Sprintf("no log lines matched %q", query)
	}
	return b.String()
}

// localShell implements tools.CommandRunner with the operator's shell.
// Only reachable through the gated run_shell tool, so every execution was
// explicitly approved.
type localShell struct{}

func newLocalShell() *localShell {
	return &localShell{}
}

func (l *localShell) Run(ctx context.Context, command, kubecontext string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if kubecontext != "" {
		// Exported for the command to consume; the agent instructions
		// tell the model to pass --context explicitly for kubectl.
		cmd.Env = append(cmd.Environ(), "KUBECONTEXT="+kubecontext)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("%s\n%s", err, strings.TrimSpace(out.String()))
	}
	return out.String(), nil
}

var _ tools.ClusterReader = (*kubectlCluster)(nil)
var _ tools.CommandRunner = (*localShell)(nil)
