package masking

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKubernetesSecretMasker_AppliesTo(t *testing.T) {
	m := &KubernetesSecretMasker{}

	assert.True(t, m.AppliesTo("apiVersion: v1\nkind: Secret\nmetadata:\n  name: x"))
	assert.True(t, m.AppliesTo(`{"kind": "Secret", "data": {}}`))
	assert.True(t, m.AppliesTo("kind: SecretList\nitems: []"))
	assert.False(t, m.AppliesTo("apiVersion: v1\nkind: ConfigMap"))
	assert.False(t, m.AppliesTo("the pod mounts a Secret volume"))
}

func TestKubernetesSecretMasker_YAMLSecret(t *testing.T) {
	m := &KubernetesSecretMasker{}
	in := `apiVersion: v1
kind: Secret
metadata:
  name: db-credentials
  namespace: prod
data:
  username: YWRtaW4=
  password: aHVudGVyMg==
stringData:
  note: plaintext
`
	out := m.Mask(in)

	assert.NotContains(t, out, "YWRtaW4=")
	assert.NotContains(t, out, "aHVudGVyMg==")
	assert.NotContains(t, out, "plaintext")
	assert.Contains(t, out, MaskedSecretValue)
	assert.Contains(t, out, "db-credentials")
	assert.Contains(t, out, "kind: Secret")
}

func TestKubernetesSecretMasker_ConfigMapUntouched(t *testing.T) {
	m := &KubernetesSecretMasker{}
	in := `apiVersion: v1
kind: ConfigMap
metadata:
  name: app-config
data:
  log_level: debug
`
	assert.Equal(t, in, m.Mask(in))
}

func TestKubernetesSecretMasker_MultiDocumentYAML(t *testing.T) {
	m := &KubernetesSecretMasker{}
	in := `kind: ConfigMap
metadata:
  name: cm
data:
  key: visible
---
kind: Secret
metadata:
  name: s
data:
  token: c2VjcmV0
`
	out := m.Mask(in)

	assert.Contains(t, out, "visible")
	assert.NotContains(t, out, "c2VjcmV0")
	assert.Contains(t, out, MaskedSecretValue)
	assert.Equal(t, 2, strings.Count(out, "kind:"))
}

func TestKubernetesSecretMasker_JSONSecret(t *testing.T) {
	m := &KubernetesSecretMasker{}
	in := `{"apiVersion":"v1","kind":"Secret","metadata":{"name":"s"},"data":{"password":"aHVudGVyMg=="}}`
	out := m.Mask(in)

	assert.NotContains(t, out, "aHVudGVyMg==")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	data := parsed["data"].(map[string]any)
	assert.Equal(t, MaskedSecretValue, data["password"])
}

func TestKubernetesSecretMasker_ListWithMixedKinds(t *testing.T) {
	m := &KubernetesSecretMasker{}
	in := `{"kind":"List","items":[` +
		`{"kind":"Secret","metadata":{"name":"s"},"data":{"key":"c2VjcmV0"}},` +
		`{"kind":"ConfigMap","metadata":{"name":"cm"},"data":{"key":"visible"}}]}`
	out := m.Mask(in)

	assert.NotContains(t, out, "c2VjcmV0")
	assert.Contains(t, out, "visible")
}

func TestKubernetesSecretMasker_LastAppliedAnnotation(t *testing.T) {
	m := &KubernetesSecretMasker{}
	in := `apiVersion: v1
kind: Secret
metadata:
  name: s
  annotations:
    kubectl.kubernetes.io/last-applied-configuration: '{"kind":"Secret","data":{"password":"aHVudGVyMg=="}}'
data:
  password: aHVudGVyMg==
`
	out := m.Mask(in)

	assert.NotContains(t, out, "aHVudGVyMg==")
}

func TestKubernetesSecretMasker_InvalidInputUnchanged(t *testing.T) {
	m := &KubernetesSecretMasker{}
	in := "kind: Secret\n\t bad: [unclosed"
	assert.Equal(t, in, m.Mask(in))
}
