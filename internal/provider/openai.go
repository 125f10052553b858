package provider

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI calls the OpenAI chat completions API through the official SDK,
// which also owns the request timeout.
type OpenAI struct {
	keys    *Keyring
	baseURL string
}

// NewOpenAI builds an OpenAI adapter over the given API keys.
func NewOpenAI(keys []string, opts ...Option) *OpenAI {
	o := applyOptions(opts)
	return &OpenAI{keys: NewKeyring(keys), baseURL: o.baseURL}
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) Send(ctx context.Context, req *Request) Result {
	key, ok := p.keys.Next()
	if !ok {
		return Errorf("No OpenAI API key available")
	}

	opts := []option.RequestOption{option.WithAPIKey(key)}
	if p.baseURL != "" {
		opts = append(opts, option.WithBaseURL(p.baseURL))
	}
	client := openai.NewClient(opts...)

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
		TopP:        openai.Float(req.TopP),
	})
	if err != nil {
		return Errorf("%s", err)
	}
	if len(completion.Choices) == 0 {
		return Errorf("malformed response: no choices")
	}
	return Success(p.Name(), completion.Choices[0].Message.Content)
}
