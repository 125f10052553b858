package provider

import (
	"context"

	"google.golang.org/genai"
)

// geminiSafetySettings turns every moderation category off. This is a static
// per-vendor setting, not exposed to callers.
var geminiSafetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
}

// Gemini calls the Gemini API through the google.golang.org/genai SDK. Top-k,
// the output token ceiling and the response MIME type are fixed; only
// temperature and top_p come from the caller.
type Gemini struct {
	keys    *Keyring
	baseURL string
}

// NewGemini builds a Gemini adapter over the given API keys.
func NewGemini(keys []string, opts ...Option) *Gemini {
	o := applyOptions(opts)
	return &Gemini{keys: NewKeyring(keys), baseURL: o.baseURL}
}

func (p *Gemini) Name() string { return "gemini" }

func (p *Gemini) Send(ctx context.Context, req *Request) Result {
	key, ok := p.keys.Next()
	if !ok {
		return Errorf("No Gemini API key available")
	}

	cc := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if p.baseURL != "" {
		cc.HTTPOptions.BaseURL = p.baseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return Errorf("%s", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(req.Temperature)),
		TopP:             genai.Ptr(float32(req.TopP)),
		TopK:             genai.Ptr(float32(64)),
		MaxOutputTokens:  8192,
		ResponseMIMEType: "text/plain",
		SafetySettings:   geminiSafetySettings,
	}

	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return Errorf("%s", err)
	}
	return Success(p.Name(), resp.Text())
}
