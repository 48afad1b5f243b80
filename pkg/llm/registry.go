package llm

import (
	"context"
	"fmt"

	"github.com/aurora-sre/aurora/pkg/config"
)

// Provider is one upstream chat-model vendor.
type Provider interface {
	Name() string
	// Available reports whether credentials for this provider are configured.
	Available() bool
	// Stream runs one streaming chat invocation. Chunks arrive on the first
	// channel; a transport failure arrives on the second and terminates the
	// stream. Both channels are closed when the invocation ends.
	Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, <-chan error)
}

// Registry selects and configures providers per request.
type Registry struct {
	cfg       config.LLMConfig
	providers map[string]Provider
}

// NewRegistry builds a registry with every supported provider. Providers
// with missing credentials are registered but report unavailable; selection
// fails with an actionable message instead of silently falling back.
func NewRegistry(cfg config.LLMConfig) *Registry {
	r := &Registry{
		cfg:       cfg,
		providers: make(map[string]Provider),
	}
	r.register(newAnthropicProvider(cfg))
	r.register(newOpenAIProvider(cfg))
	r.register(newGoogleProvider(cfg))
	r.register(newOpenRouterProvider(cfg))
	return r
}

func (r *Registry) register(p Provider) {
	r.providers[p.Name()] = p
}

// Provider returns a registered provider by name.
func (r *Registry) Provider(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Resolve picks the provider and native model name for a canonical model and
// routing mode. In openrouter mode everything routes through the gateway; in
// direct and auto modes the canonical prefix names the vendor, which must
// have credentials configured. There is no fallback between the two paths.
func (r *Registry) Resolve(model string, mode config.ProviderMode, preference []string) (Provider, string, error) {
	if model == "" {
		model = r.cfg.DefaultModel
	}
	if mode == "" {
		mode = r.cfg.Mode
	}
	canonical := Canonicalize(model)

	if mode == config.ModeOpenRouter {
		p := r.providers[config.ProviderOpenRouter]
		if p == nil || !p.Available() {
			return nil, "", fmt.Errorf("openrouter mode requested but %s is not set", config.EnvOpenRouterAPIKey)
		}
		return p, NativeName(canonical, config.ProviderOpenRouter), nil
	}

	vendor := ProviderFor(canonical)
	if vendor == "" {
		// No vendor prefix: walk the caller's preference order.
		for _, name := range preference {
			if p, ok := r.providers[name]; ok && p.Available() {
				return p, NativeName(name+"/"+canonical, name), nil
			}
		}
		return nil, "", fmt.Errorf("model %q has no provider prefix and no preferred provider is available", model)
	}

	p, ok := r.providers[vendor]
	if !ok {
		return nil, "", fmt.Errorf("unsupported model provider %q", vendor)
	}
	if !p.Available() {
		return nil, "", fmt.Errorf("provider %s is not configured: set %s", vendor, config.KeyEnvVar(vendor))
	}
	return p, NativeName(canonical, vendor), nil
}
