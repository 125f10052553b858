/*
Provider adapters
=================

One adapter per LLM vendor, all behind the same Provider interface. Each
adapter owns its credential keyring and translates the uniform generation
request into the vendor's wire shape (raw HTTP for Mistral, HuggingFace and
OpenRouter; hosted SDKs for Gemini and OpenAI).

Failures never escape an adapter: network errors, non-2xx statuses and SDK
faults are all converted into an error Result at the Send boundary.
*/

package provider

import (
	"context"
	"fmt"
	"net/http"
)

// Request carries the uniform generation parameters forwarded to a vendor.
type Request struct {
	Prompt      string
	Model       string
	Temperature float64
	TopP        float64

	// Extra holds vendor-specific parameters passed through by the caller.
	// None of the current adapters consume them; they exist so callers can
	// forward vendor knobs without a schema change.
	Extra map[string]any
}

// Response is the normalized success payload.
type Response struct {
	Text string `json:"text"`
}

// Result is the outcome of a generation call: either a provider name plus
// normalized text, or an error message. It marshals to the exact JSON shape
// returned by the /generate endpoint.
type Result struct {
	Provider string    `json:"provider,omitempty"`
	Response *Response `json:"response,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// IsError reports whether the result carries an error instead of a response.
func (r Result) IsError() bool {
	return r.Error != ""
}

// Success builds a successful result for the given vendor.
func Success(vendor, text string) Result {
	return Result{Provider: vendor, Response: &Response{Text: text}}
}

// Errorf builds an error result.
func Errorf(format string, args ...any) Result {
	return Result{Error: fmt.Sprintf(format, args...)}
}

// Provider is implemented by each vendor adapter. Send performs exactly one
// outbound call (zero if no credential is available) and never returns a
// partial result: streaming vendors concatenate all fragments before
// returning.
type Provider interface {
	// Name returns the vendor identifier, e.g. "mistral".
	Name() string

	// Send forwards the request to the vendor and normalizes the outcome.
	Send(ctx context.Context, req *Request) Result
}

// httpDoer lets tests swap the transport of the raw-HTTP adapters.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
