// Package handlers implements the gateway's HTTP endpoints.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Chungus1310/llm-api-wrapper/internal/manager"
	"github.com/Chungus1310/llm-api-wrapper/internal/provider"
)

// GenerateRequest is the JSON body accepted by POST /generate. Temperature
// and top_p default to 1.0 when omitted.
type GenerateRequest struct {
	Prompt      string   `json:"prompt"`
	Provider    string   `json:"provider"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	TopP        *float64 `json:"top_p"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Generate handles POST /generate.
type Generate struct {
	manager *manager.Manager
	known   func(name string) bool
	logger  zerolog.Logger
}

// NewGenerate builds the generate handler. known reports whether a provider
// name is a recognized vendor identifier.
func NewGenerate(m *manager.Manager, known func(name string) bool, logger zerolog.Logger) *Generate {
	return &Generate{manager: m, known: known, logger: logger}
}

// ServeHTTP validates the request and forwards it to the dispatcher.
//
// Status policy (inherited, kept on purpose): validation failures are 400,
// but a vendor-side failure still returns 200 with an {"error": ...} body.
// Changing that would break existing callers that switch on the body shape.
func (h *Generate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No JSON body provided"})
		return
	}

	if req.Prompt == "" || req.Provider == "" || req.Model == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Prompt, provider, and model are required"})
		return
	}

	if !h.known(req.Provider) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid provider"})
		return
	}

	temperature := 1.0
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	topP := 1.0
	if req.TopP != nil {
		topP = *req.TopP
	}

	start := time.Now()
	result := h.manager.Request(r.Context(), req.Provider, &provider.Request{
		Prompt:      req.Prompt,
		Model:       req.Model,
		Temperature: temperature,
		TopP:        topP,
	})
	observeRequest(req.Provider, result, time.Since(start))

	if result.IsError() {
		h.logger.Warn().
			Str("provider", req.Provider).
			Str("model", req.Model).
			Str("error", result.Error).
			Msg("Generation failed")
	}

	writeJSON(w, http.StatusOK, result)
}

// Health handles GET /health.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
