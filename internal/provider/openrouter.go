package provider

import (
	"context"
	"net/http"
	"time"
)

const openRouterBaseURL = "https://openrouter.ai/api"

// OpenRouter calls the OpenRouter chat completions API over raw HTTP. The
// endpoint is OpenAI-compatible, so it shares the Mistral wire shape.
type OpenRouter struct {
	keys    *Keyring
	baseURL string
	client  httpDoer
}

// NewOpenRouter builds an OpenRouter adapter over the given API keys.
func NewOpenRouter(keys []string, opts ...Option) *OpenRouter {
	o := applyOptions(opts)
	p := &OpenRouter{
		keys:    NewKeyring(keys),
		baseURL: openRouterBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
	if o.baseURL != "" {
		p.baseURL = o.baseURL
	}
	if o.client != nil {
		p.client = o.client
	}
	return p
}

func (p *OpenRouter) Name() string { return "openrouter" }

func (p *OpenRouter) Send(ctx context.Context, req *Request) Result {
	key, ok := p.keys.Next()
	if !ok {
		return Errorf("No OpenRouter API key available")
	}

	body := chatRequest{
		Model:       req.Model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
		TopP:        req.TopP,
	}
	text, err := postChat(ctx, p.client, p.baseURL+"/v1/chat/completions", key, body)
	if err != nil {
		return Errorf("%s", err)
	}
	return Success(p.Name(), text)
}
