package masking

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaskedSecretValue replaces every data and stringData value of a Kubernetes
// Secret that passes through the scrubber.
const MaskedSecretValue = "[MASKED_SECRET_DATA]"

var (
	yamlSecretKind = regexp.MustCompile(`(?m)^kind:\s*Secret\s*$`)
	jsonSecretKind = regexp.MustCompile(`"kind"\s*:\s*"Secret"`)
)

// KubernetesSecretMasker redacts Secret payloads in kubectl-style output
// while leaving ConfigMaps and every other resource kind untouched. It
// understands single documents, multi-document YAML streams, JSON, and List
// wrappers.
type KubernetesSecretMasker struct{}

func (m *KubernetesSecretMasker) Name() string { return "kubernetes_secret" }

// AppliesTo is the cheap pre-filter: a kind declaration naming Secret in
// either YAML or JSON form. Prose mentioning "Secret" does not qualify.
func (m *KubernetesSecretMasker) AppliesTo(data string) bool {
	return strings.Contains(data, "Secret") &&
		(yamlSecretKind.MatchString(data) || jsonSecretKind.MatchString(data))
}

// Mask parses the output and rewrites Secret data values. Parse or
// re-serialization failures return the input unchanged; the regex sweep that
// runs after this masker still gets its pass.
func (m *KubernetesSecretMasker) Mask(data string) string {
	// JSON-looking input goes to the JSON path first so it is not consumed
	// by the YAML parser and re-serialized as YAML.
	trimmed := strings.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if out := redactJSON(data); out != data {
			return out
		}
	}
	return redactYAML(data)
}

func redactYAML(data string) string {
	dec := yaml.NewDecoder(strings.NewReader(data))
	var docs []map[string]any
	changed := false

	for {
		var doc map[string]any
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return data
		}
		if doc == nil {
			continue
		}
		if redactResource(doc) {
			changed = true
		}
		docs = append(docs, doc)
	}
	if !changed || len(docs) == 0 {
		return data
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return data
		}
	}
	if err := enc.Close(); err != nil {
		return data
	}
	return matchTrailingNewline(buf.String(), data)
}

func redactJSON(data string) string {
	var obj map[string]any
	if err := json.Unmarshal([]byte(data), &obj); err != nil {
		return data
	}
	if !redactResource(obj) {
		return data
	}
	out, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return data
	}
	return matchTrailingNewline(string(out), data)
}

// redactResource walks one decoded resource and returns whether anything was
// redacted. Secrets and SecretLists always count as redacted so their
// re-serialization is kept even when the data map was empty.
func redactResource(resource map[string]any) bool {
	kind, _ := resource["kind"].(string)
	switch {
	case kind == "Secret":
		redactSecretPayload(resource)
		redactAnnotations(resource)
		return true
	case kind == "SecretList":
		for _, item := range resourceItems(resource) {
			redactSecretPayload(item)
		}
		redactAnnotations(resource)
		return true
	case strings.HasSuffix(kind, "List"):
		changed := false
		for _, item := range resourceItems(resource) {
			if redactResource(item) {
				changed = true
			}
		}
		return changed
	}
	return false
}

func resourceItems(resource map[string]any) []map[string]any {
	raw, _ := resource["items"].([]any)
	var out []map[string]any
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// redactSecretPayload overwrites every data and stringData value in place.
// Keys survive so the operator can still see which entries exist.
func redactSecretPayload(resource map[string]any) {
	for _, field := range []string{"data", "stringData"} {
		if values, ok := resource[field].(map[string]any); ok {
			for key := range values {
				values[key] = MaskedSecretValue
			}
		}
	}
}

// redactAnnotations rewrites annotation values that embed a JSON Secret.
// kubectl.kubernetes.io/last-applied-configuration carries a full copy of
// the applied Secret and would leak the data otherwise.
func redactAnnotations(resource map[string]any) {
	metadata, _ := resource["metadata"].(map[string]any)
	annotations, _ := metadata["annotations"].(map[string]any)

	for key, val := range annotations {
		text, ok := val.(string)
		if !ok || !strings.Contains(text, "Secret") {
			continue
		}
		var embedded map[string]any
		if err := json.Unmarshal([]byte(text), &embedded); err != nil {
			continue
		}
		kind, _ := embedded["kind"].(string)
		if kind != "Secret" && kind != "SecretList" {
			continue
		}
		redactSecretPayload(embedded)
		for _, item := range resourceItems(embedded) {
			redactSecretPayload(item)
		}
		if masked, err := json.Marshal(embedded); err == nil {
			annotations[key] = string(masked)
		}
	}
}

// matchTrailingNewline reproduces the input's trailing-newline shape on the
// re-serialized output.
func matchTrailingNewline(out, in string) string {
	out = strings.TrimRight(out, "\n")
	if strings.HasSuffix(in, "\n") {
		out += "\n"
	}
	return out
}
