package masking

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaskedSecretValue replaces every data value in a masked Secret.
const MaskedSecretValue = "[MASKED_SECRET_DATA]"

var (
	yamlSecretPattern = regexp.MustCompile(`(?m)^kind:\s*Secret`)
	jsonSecretPattern = regexp.MustCompile(`"kind"\s*:\s*"Secret`)
)

// KubernetesSecretMasker blanks data/stringData in Kubernetes Secret
// manifests while leaving ConfigMaps and every other kind untouched. It
// handles single resources, List/SecretList envelopes (kubectl -o yaml/json
// over multiple objects) and multi-document YAML.
type KubernetesSecretMasker struct{}

func (m *KubernetesSecretMasker) Name() string { return "kubernetes_secret" }

// AppliesTo checks for a Secret kind declaration without parsing.
func (m *KubernetesSecretMasker) AppliesTo(output string) bool {
	if !strings.Contains(output, "Secret") {
		return false
	}
	return yamlSecretPattern.MatchString(output) || jsonSecretPattern.MatchString(output)
}

// Mask detects JSON vs YAML and applies the matching parser. The original
// output comes back unchanged on any parse or re-serialization error.
func (m *KubernetesSecretMasker) Mask(output string) string {
	trimmed := strings.TrimSpace(output)

	// JSON first when the output looks like JSON; otherwise the YAML
	// parser would accept it and re-serialize it as YAML.
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if masked := m.maskJSON(output); masked != output {
			return masked
		}
	}

	if masked := m.maskYAML(output); masked != output {
		return masked
	}

	return output
}

// maskYAML walks multi-document YAML and masks any Secret it finds.
func (m *KubernetesSecretMasker) maskYAML(output string) string {
	decoder := yaml.NewDecoder(strings.NewReader(output))
	var documents []map[string]any
	anySecret := false

	for {
		var doc map[string]any
		err := decoder.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return output
		}
		if doc == nil {
			continue
		}
		if maskResource(doc) {
			anySecret = true
		}
		documents = append(documents, doc)
	}

	if !anySecret || len(documents) == 0 {
		return output
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	for _, doc := range documents {
		if err := encoder.Encode(doc); err != nil {
			return output
		}
	}
	if err := encoder.Close(); err != nil {
		return output
	}

	// yaml.Encoder always appends a newline; match the original ending.
	result := strings.TrimRight(buf.String(), "\n")
	if strings.HasSuffix(output, "\n") {
		result += "\n"
	}
	return result
}

func (m *KubernetesSecretMasker) maskJSON(output string) string {
	var obj map[string]any
	if err := json.Unmarshal([]byte(output), &obj); err != nil {
		return output
	}

	if !maskResource(obj) {
		return output
	}

	// kubectl's JSON output is two-space indented; keep the shape.
	result, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return output
	}

	masked := string(result)
	if strings.HasSuffix(output, "\n") {
		masked += "\n"
	}
	return masked
}

// maskResource masks a parsed resource in place. Returns true if anything
// was masked. Handles plain Secrets, SecretList, and generic List items.
func maskResource(resource map[string]any) bool {
	if isSecret(resource) {
		maskSecretData(resource)
		maskAnnotationSecrets(resource)
		return true
	}
	if !isList(resource) {
		return false
	}

	items, ok := resource["items"].([]any)
	if !ok {
		return false
	}
	anySecret := false
	for _, item := range items {
		itemMap, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if isSecret(itemMap) {
			maskSecretData(itemMap)
			maskAnnotationSecrets(itemMap)
			anySecret = true
		}
	}
	return anySecret
}

func isSecret(resource map[string]any) bool {
	kind, _ := resource["kind"].(string)
	return kind == "Secret"
}

func isList(resource map[string]any) bool {
	kind, _ := resource["kind"].(string)
	return kind == "List" || strings.HasSuffix(kind, "List")
}

// maskSecretData blanks every value under data and stringData.
func maskSecretData(resource map[string]any) {
	for _, field := range []string{"data", "stringData"} {
		dataMap, ok := resource[field].(map[string]any)
		if !ok {
			continue
		}
		for key := range dataMap {
			dataMap[key] = MaskedSecretValue
		}
	}
}

// maskAnnotationSecrets catches Secrets embedded in annotation values, most
// commonly kubectl.kubernetes.io/last-applied-configuration which carries a
// full JSON copy of the Secret.
func maskAnnotationSecrets(resource map[string]any) {
	metadata, ok := resource["metadata"].(map[string]any)
	if !ok {
		return
	}
	annotations, ok := metadata["annotations"].(map[string]any)
	if !ok {
		return
	}

	for key, val := range annotations {
		strVal, ok := val.(string)
		if !ok || !strings.Contains(strVal, "Secret") {
			continue
		}

		var embedded map[string]any
		if err := json.Unmarshal([]byte(strVal), &embedded); err != nil {
			continue
		}
		if !isSecret(embedded) {
			continue
		}
		maskSecretData(embedded)
		masked, err := json.Marshal(embedded)
		if err != nil {
			continue
		}
		annotations[key] = string(masked)
	}
}
