package config

import (
	"os"
	"regexp"
)

// envRefPattern matches ${VAR} and ${VAR:-default} references. Bare $VAR is
// deliberately not expanded so regex patterns and shell snippets inside YAML
// values survive untouched.
var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// ExpandEnv expands environment variable references in YAML content before
// parsing.
//
// Supported forms:
//   - ${VAR}          → value of VAR, empty string if unset
//   - ${VAR:-default} → value of VAR, or the literal default if unset or empty
//
// Examples:
//   - api_key_env: ${LLM_KEY_ENV:-ANTHROPIC_API_KEY}
//   - listen_addr: ${LISTEN_ADDR:-127.0.0.1:8228}
//
// Validation catches required fields that end up empty.
func ExpandEnv(data []byte) []byte {
	return envRefPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		groups := envRefPattern.FindSubmatch(match)
		name := string(groups[1])
		value := os.Getenv(name)
		if value == "" && len(groups[2]) > 0 {
			value = string(groups[3])
		}
		return []byte(value)
	})
}
