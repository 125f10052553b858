package manager

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chungus1310/llm-api-wrapper/internal/provider"
)

type stubProvider struct {
	name     string
	result   provider.Result
	calls    int
	lastReq  *provider.Request
	calledAt time.Time
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Send(_ context.Context, req *provider.Request) provider.Result {
	s.calls++
	s.lastReq = req
	s.calledAt = time.Now()
	return s.result
}

func TestRequestDispatch(t *testing.T) {
	stub := &stubProvider{name: "mistral", result: provider.Success("mistral", "hello")}
	m := New(map[string]provider.Provider{"mistral": stub}, 0, zerolog.Nop())

	req := &provider.Request{Prompt: "hi", Model: "m1", Temperature: 0.5, TopP: 0.9}
	result := m.Request(context.Background(), "mistral", req)

	require.False(t, result.IsError(), result.Error)
	assert.Equal(t, "mistral", result.Provider)
	assert.Equal(t, "hello", result.Response.Text)
	assert.Equal(t, 1, stub.calls)

	// The request reaches the handler unchanged.
	assert.Equal(t, 0.5, stub.lastReq.Temperature)
	assert.Equal(t, 0.9, stub.lastReq.TopP)
}

func TestRequestUnknownVendor(t *testing.T) {
	m := New(map[string]provider.Provider{}, 0, zerolog.Nop())

	result := m.Request(context.Background(), "unknown-vendor", &provider.Request{Prompt: "hi"})

	assert.True(t, result.IsError())
	assert.Equal(t, "Provider 'unknown-vendor' is not configured or has no API keys.", result.Error)
}

func TestRequestUnconfiguredVendor(t *testing.T) {
	// Recognized but without keys: same error, no handler invocation.
	m := New(map[string]provider.Provider{"gemini": nil}, 0, zerolog.Nop())

	result := m.Request(context.Background(), "gemini", &provider.Request{Prompt: "hi"})

	assert.True(t, result.IsError())
	assert.Equal(t, "Provider 'gemini' is not configured or has no API keys.", result.Error)
}

func TestRequestErrorPassthrough(t *testing.T) {
	stub := &stubProvider{name: "mistral", result: provider.Errorf("upstream on fire")}
	m := New(map[string]provider.Provider{"mistral": stub}, 0, zerolog.Nop())

	result := m.Request(context.Background(), "mistral", &provider.Request{Prompt: "hi"})

	assert.True(t, result.IsError())
	assert.Equal(t, "upstream on fire", result.Error)
}

func TestRequestRateLimitDelay(t *testing.T) {
	const delay = 50 * time.Millisecond

	stub := &stubProvider{name: "mistral", result: provider.Success("mistral", "ok")}
	m := New(map[string]provider.Provider{"mistral": stub}, delay, zerolog.Nop())

	start := time.Now()
	m.Request(context.Background(), "mistral", &provider.Request{Prompt: "hi"})

	// The fixed delay elapses before the handler is invoked.
	assert.GreaterOrEqual(t, stub.calledAt.Sub(start), delay)
}

func TestRequestNoDelayForUnknownVendor(t *testing.T) {
	m := New(map[string]provider.Provider{}, 200*time.Millisecond, zerolog.Nop())

	start := time.Now()
	m.Request(context.Background(), "nope", &provider.Request{Prompt: "hi"})

	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
