package provider

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	huggingFaceBaseURL   = "https://router.huggingface.co"
	huggingFaceMaxTokens = 2048
)

// HuggingFace calls the HuggingFace inference router's OpenAI-compatible chat
// endpoint. The upstream call always streams; the adapter drains the whole
// SSE stream and concatenates the delta fragments into a single string, so
// callers only ever see the completed text.
type HuggingFace struct {
	keys    *Keyring
	baseURL string
	client  httpDoer
}

// NewHuggingFace builds a HuggingFace adapter over the given API keys.
func NewHuggingFace(keys []string, opts ...Option) *HuggingFace {
	o := applyOptions(opts)
	p := &HuggingFace{
		keys:    NewKeyring(keys),
		baseURL: huggingFaceBaseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
	if o.baseURL != "" {
		p.baseURL = o.baseURL
	}
	if o.client != nil {
		p.client = o.client
	}
	return p
}

func (p *HuggingFace) Name() string { return "huggingface" }

// streamChunk is one SSE data event of a streamed chat completion.
type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func (p *HuggingFace) Send(ctx context.Context, req *Request) Result {
	key, ok := p.keys.Next()
	if !ok {
		return Errorf("No Hugging Face API key available")
	}

	body := chatRequest{
		Model:       req.Model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   huggingFaceMaxTokens,
		Stream:      true,
	}
	resp, err := postJSON(ctx, p.client, p.baseURL+"/v1/chat/completions", key, body)
	if err != nil {
		return Errorf("%s", err)
	}
	defer resp.Body.Close()

	text, err := collectStream(resp)
	if err != nil {
		return Errorf("%s", err)
	}
	return Success(p.Name(), text)
}

// collectStream reads "data: ..." SSE lines until [DONE] or EOF and joins the
// delta contents in arrival order.
func collectStream(resp *http.Response) (string, error) {
	var out strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}
		var chunk streamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return "", fmt.Errorf("failed to decode stream chunk: %w", err)
		}
		if len(chunk.Choices) > 0 {
			out.WriteString(chunk.Choices[0].Delta.Content)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("stream read failed: %w", err)
	}
	return out.String(), nil
}
