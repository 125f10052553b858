package provider

import (
	"context"
	"net/http"
	"time"
)

const mistralBaseURL = "https://api.mistral.ai"

// Mistral calls the Mistral chat completions API over raw HTTP.
type Mistral struct {
	keys    *Keyring
	baseURL string
	client  httpDoer
}

// NewMistral builds a Mistral adapter over the given API keys.
func NewMistral(keys []string, opts ...Option) *Mistral {
	o := applyOptions(opts)
	p := &Mistral{
		keys:    NewKeyring(keys),
		baseURL: mistralBaseURL,
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

func (p *Mistral) Name() string { return "mistral" }

func (p *Mistral) Send(ctx context.Context, req *Request) Result {
	key, ok := p.keys.Next()
	if !ok {
		return Errorf("No Mistral API key available")
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
