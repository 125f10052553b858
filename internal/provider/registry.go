package provider

import (
	"github.com/rs/zerolog"

	"github.com/Chungus1310/llm-api-wrapper/internal/config"
)

// vendorTable lists every vendor the gateway recognizes, with the environment
// prefix its keys are discovered under.
var vendorTable = []struct {
	name   string
	prefix string
	build  func(keys []string) Provider
}{
	{"mistral", "MISTRAL_KEY", func(keys []string) Provider { return NewMistral(keys) }},
	{"huggingface", "HF_KEY", func(keys []string) Provider { return NewHuggingFace(keys) }},
	{"gemini", "GEMINI_API_KEY", func(keys []string) Provider { return NewGemini(keys) }},
	{"openrouter", "OPENROUTER_KEY", func(keys []string) Provider { return NewOpenRouter(keys) }},
	{"openai", "OPENAI_API_KEY", func(keys []string) Provider { return NewOpenAI(keys) }},
}

// Registry maps vendor names to their handlers. A recognized vendor with no
// configured keys maps to nil: that state is first-class and distinct from an
// unknown name, even though the dispatcher reports both the same way.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry discovers credentials for every known vendor and builds a
// handler per vendor that has at least one key. Missing credentials are not
// an error; the vendor is recorded as unconfigured.
func NewRegistry(logger zerolog.Logger) *Registry {
	providers := make(map[string]Provider, len(vendorTable))
	for _, v := range vendorTable {
		keys := config.DiscoverKeys(v.prefix)
		if len(keys) == 0 {
			providers[v.name] = nil
			logger.Warn().Str("provider", v.name).Msg("No API keys configured")
			continue
		}
		providers[v.name] = v.build(keys)
		logger.Info().Str("provider", v.name).Int("keys", len(keys)).Msg("Provider configured")
	}
	return &Registry{providers: providers}
}

// Providers returns the vendor-to-handler mapping.
func (r *Registry) Providers() map[string]Provider {
	return r.providers
}

// Known reports whether name is a recognized vendor identifier, configured
// or not.
func (r *Registry) Known(name string) bool {
	_, ok := r.providers[name]
	return ok
}
