package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geminiStubRequest mirrors the generateContent REST body the SDK produces.
type geminiStubRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature      float64 `json:"temperature"`
		TopP             float64 `json:"topP"`
		TopK             float64 `json:"topK"`
		MaxOutputTokens  int     `json:"maxOutputTokens"`
		ResponseMimeType string  `json:"responseMimeType"`
	} `json:"generationConfig"`
	SafetySettings []struct {
		Category  string `json:"category"`
		Threshold string `json:"threshold"`
	} `json:"safetySettings"`
}

func geminiStubResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": text}},
			}},
		},
	}
}

func newGeminiTest(t *testing.T, keys []string, handler http.HandlerFunc) *Gemini {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGemini(keys, WithBaseURL(srv.URL))
}

func TestGeminiSend(t *testing.T) {
	var got geminiStubRequest
	var apiKey string

	p := newGeminiTest(t, []string{"gk-1"}, func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("x-goog-api-key")
		assert.Contains(t, r.URL.Path, "generateContent")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(geminiStubResponse("hello"))
	})

	result := p.Send(context.Background(), &Request{
		Prompt:      "hi",
		Model:       "gemini-1.5-flash",
		Temperature: 0.5,
		TopP:        0.9,
	})

	require.False(t, result.IsError(), result.Error)
	assert.Equal(t, "gemini", result.Provider)
	assert.Equal(t, "hello", result.Response.Text)
	assert.Equal(t, "gk-1", apiKey)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "hi", got.Contents[0].Parts[0].Text)

	// Caller-controlled sampling parameters are forwarded verbatim.
	assert.Equal(t, 0.5, got.GenerationConfig.Temperature)
	assert.Equal(t, 0.9, got.GenerationConfig.TopP)

	// The rest of the generation config is fixed per vendor.
	assert.Equal(t, 64.0, got.GenerationConfig.TopK)
	assert.Equal(t, 8192, got.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, "text/plain", got.GenerationConfig.ResponseMimeType)

	// Every moderation category is sent as non-blocking.
	require.Len(t, got.SafetySettings, 4)
	categories := make([]string, 0, len(got.SafetySettings))
	for _, s := range got.SafetySettings {
		assert.Equal(t, "BLOCK_NONE", s.Threshold, s.Category)
		categories = append(categories, s.Category)
	}
	assert.ElementsMatch(t, []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}, categories)
}

func TestGeminiKeyRotation(t *testing.T) {
	var seen []string

	p := newGeminiTest(t, []string{"gk-1", "gk-2"}, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("x-goog-api-key"))
		json.NewEncoder(w).Encode(geminiStubResponse("ok"))
	})

	for i := 0; i < 3; i++ {
		result := p.Send(context.Background(), &Request{Prompt: "hi", Model: "m"})
		require.False(t, result.IsError(), result.Error)
	}

	assert.Equal(t, []string{"gk-1", "gk-2", "gk-1"}, seen)
}

func TestGeminiNoKeys(t *testing.T) {
	calls := 0
	p := newGeminiTest(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	result := p.Send(context.Background(), &Request{Prompt: "hi", Model: "m"})

	assert.True(t, result.IsError())
	assert.Equal(t, "No Gemini API key available", result.Error)
	assert.Equal(t, 0, calls, "no network call should be attempted without a key")
}

func TestGeminiUpstreamError(t *testing.T) {
	p := newGeminiTest(t, []string{"gk-1"}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	})

	result := p.Send(context.Background(), &Request{Prompt: "hi", Model: "m"})

	assert.True(t, result.IsError())
	assert.Contains(t, result.Error, "quota exceeded")
	assert.Nil(t, result.Response)
}
