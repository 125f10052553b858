// Package manager dispatches generation requests to the configured vendor
// handlers.
package manager

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Chungus1310/llm-api-wrapper/internal/provider"
)

// Manager is the single entry point used by the HTTP layer. It looks up the
// vendor handler, applies the fixed inter-request delay and returns the
// handler's result unchanged. It enforces no timeout of its own; per-call
// timeouts vary by vendor (some adapters set an explicit HTTP client timeout,
// the SDK-backed ones rely on SDK defaults), so worst-case latency differs
// across vendors.
type Manager struct {
	providers map[string]provider.Provider
	rateLimit time.Duration
	logger    zerolog.Logger
}

// New builds a manager over the vendor-to-handler mapping. rateLimit is the
// fixed delay applied before every dispatched call; zero disables it.
func New(providers map[string]provider.Provider, rateLimit time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		providers: providers,
		rateLimit: rateLimit,
		logger:    logger,
	}
}

// Request forwards a generation request to the named vendor. An unknown or
// unconfigured vendor yields an error result without any network call; the
// two states are deliberately reported identically, matching the behavior
// callers already depend on.
func (m *Manager) Request(ctx context.Context, vendor string, req *provider.Request) provider.Result {
	p, ok := m.providers[vendor]
	if !ok || p == nil {
		return provider.Errorf("Provider '%s' is not configured or has no API keys.", vendor)
	}

	if m.rateLimit > 0 {
		time.Sleep(m.rateLimit)
	}

	m.logger.Debug().
		Str("provider", vendor).
		Str("model", req.Model).
		Msg("Dispatching request")

	return p.Send(ctx, req)
}
