package masking

// Masker is a code-based masker with structural awareness beyond regex
// matching: it can parse YAML/JSON and mask context-sensitively, e.g. mask
// Kubernetes Secrets but leave ConfigMaps alone.
type Masker interface {
	// Name identifies the masker.
	Name() string

	// AppliesTo is a cheap pre-check (string contains, not parsing).
	AppliesTo(data string) bool

	// Mask applies the masking logic. Must be defensive: return the
	// original data on parse errors.
	Mask(data string) string
}
