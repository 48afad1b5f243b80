package masking

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretYAML = `apiVersion: v1
kind: Secret
metadata:
  name: db-creds
  namespace: prod
data:
  username: YXVyb3Jh
  password: c3VwZXJzZWNyZXQ=
`

const configMapYAML = `apiVersion: v1
kind: ConfigMap
metadata:
  name: app-config
data:
  log_level: debug
`

func TestKubernetesSecretMasker_AppliesTo(t *testing.T) {
	m := &KubernetesSecretMasker{}

	assert.True(t, m.AppliesTo(secretYAML))
	assert.True(t, m.AppliesTo(`{"kind": "Secret", "data": {}}`))
	assert.False(t, m.AppliesTo(configMapYAML))
	assert.False(t, m.AppliesTo("pod web-0 is Running"))
	// "Secret" in prose is not a manifest.
	assert.False(t, m.AppliesTo("the Secret ingredient"))
}

func TestKubernetesSecretMasker_YAMLSecret(t *testing.T) {
	m := &KubernetesSecretMasker{}
	got := m.Mask(secretYAML)

	assert.NotContains(t, got, "c3VwZXJzZWNyZXQ=")
	assert.NotContains(t, got, "YXVyb3Jh")
	assert.Contains(t, got, MaskedSecretValue)
	assert.Contains(t, got, "name: db-creds")
	assert.True(t, strings.HasSuffix(got, "\n"), "trailing newline preserved")
}

func TestKubernetesSecretMasker_ConfigMapUntouched(t *testing.T) {
	m := &KubernetesSecretMasker{}
	assert.Equal(t, configMapYAML, m.Mask(configMapYAML))
}

func TestKubernetesSecretMasker_MultiDocumentYAML(t *testing.T) {
	m := &KubernetesSecretMasker{}
	input := configMapYAML + "---\n" + secretYAML

	got := m.Mask(input)
	assert.Contains(t, got, "log_level: debug", "non-Secret document intact")
	assert.Contains(t, got, MaskedSecretValue)
	assert.NotContains(t, got, "c3VwZXJzZWNyZXQ=")
}

func TestKubernetesSecretMasker_JSONSecret(t *testing.T) {
	m := &KubernetesSecretMasker{}
	input := `{"apiVersion":"v1","kind":"Secret","metadata":{"name":"tls"},"data":{"tls.key":"cHJpdmF0ZQ=="}}`

	got := m.Mask(input)
	assert.NotContains(t, got, "cHJpdmF0ZQ==")

	// Output stays valid JSON, not YAML-reserialized.
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &obj))
	data := obj["data"].(map[string]any)
	assert.Equal(t, MaskedSecretValue, data["tls.key"])
}

func TestKubernetesSecretMasker_JSONList(t *testing.T) {
	m := &KubernetesSecretMasker{}
	input := `{"apiVersion":"v1","kind":"List","items":[` +
		`{"kind":"Secret","metadata":{"name":"a"},"data":{"k":"dmFsdWU="}},` +
		`{"kind":"ConfigMap","metadata":{"name":"b"},"data":{"k":"plain"}}]}`

	got := m.Mask(input)
	assert.NotContains(t, got, "dmFsdWU=")
	assert.Contains(t, got, "plain", "ConfigMap item untouched")
}

func TestKubernetesSecretMasker_StringData(t *testing.T) {
	m := &KubernetesSecretMasker{}
	input := "apiVersion: v1\nkind: Secret\nmetadata:\n  name: s\nstringData:\n  password: plaintext-pass\n"

	got := m.Mask(input)
	assert.NotContains(t, got, "plaintext-pass")
	assert.Contains(t, got, MaskedSecretValue)
}

func TestKubernetesSecretMasker_MalformedInputReturnedAsIs(t *testing.T) {
	m := &KubernetesSecretMasker{}

	malformedYAML := "kind: Secret\n  bad:\nindent: [unclosed"
	assert.Equal(t, malformedYAML, m.Mask(malformedYAML))

	malformedJSON := `{"kind": "Secret", "data": {`
	assert.Equal(t, malformedJSON, m.Mask(malformedJSON))
}

func TestKubernetesSecretMasker_LastAppliedAnnotation(t *testing.T) {
	m := &KubernetesSecretMasker{}
	input := `apiVersion: v1
kind: Secret
metadata:
  name: s
  annotations:
    kubectl.kubernetes.io/last-applied-configuration: '{"kind":"Secret","data":{"k":"c2VjcmV0"}}'
data:
  k: c2VjcmV0
`

	got := m.Mask(input)
	assert.NotContains(t, got, "c2VjcmV0", "embedded annotation copy masked too")
}
