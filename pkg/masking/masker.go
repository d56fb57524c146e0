// Package masking scrubs secrets from tool output before it reaches the
// journal, the event stream, or the model. Diagnostic tools routinely pull
// back Secret manifests, kubeconfig excerpts and credential-bearing logs;
// everything a tool returns passes through here first.
package masking

// Masker is a structural masker: one that parses the output (YAML/JSON)
// instead of pattern-matching it, so it can mask Secret data while leaving
// ConfigMaps alone.
type Masker interface {
	// Name is the identifier pattern groups reference.
	Name() string

	// AppliesTo is a cheap pre-check (string contains, not parsing).
	AppliesTo(output string) bool

	// Mask returns the masked output. Must return the input unchanged on
	// any parse error; regex patterns still run afterwards.
	Mask(output string) string
}
