package config

import (
	"os"
	"path/filepath"
)

// SystemConfig holds resolved system-wide infrastructure settings.
type SystemConfig struct {
	// ListenAddr is the HTTP bind address (default: "127.0.0.1:8228").
	// The daemon is local-first; binding beyond loopback is an operator
	// decision made in YAML.
	ListenAddr string

	// TodoSnapshotDir is the root directory for per-task todo board
	// mirrors (default: <user cache dir>/investigator/todos).
	TodoSnapshotDir string
}

// resolveSystemConfig resolves system settings from YAML, applying defaults.
func resolveSystemConfig(sys *SystemYAMLConfig) *SystemConfig {
	cfg := &SystemConfig{
		ListenAddr:      "127.0.0.1:8228",
		TodoSnapshotDir: defaultTodoSnapshotDir(),
	}

	if sys == nil {
		return cfg
	}
	if sys.ListenAddr != "" {
		cfg.ListenAddr = sys.ListenAddr
	}
	if sys.TodoSnapshotDir != "" {
		cfg.TodoSnapshotDir = sys.TodoSnapshotDir
	}
	return cfg
}

func defaultTodoSnapshotDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "investigator", "todos")
}
