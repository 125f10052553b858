/*
LLM API gateway
===============

A thin HTTP gateway that forwards text-generation requests to one of several
LLM vendors, selected per request, rotating through a pool of API keys per
vendor. Keys are discovered from the environment at startup (MISTRAL_KEY1,
MISTRAL_KEY2, ... with a bare MISTRAL_KEY fallback, and likewise per vendor);
an optional LLM_RATE_LIMIT (seconds) inserts a fixed delay before every
dispatched call.
*/

package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Chungus1310/llm-api-wrapper/internal/config"
	"github.com/Chungus1310/llm-api-wrapper/internal/handlers"
	"github.com/Chungus1310/llm-api-wrapper/internal/manager"
	"github.com/Chungus1310/llm-api-wrapper/internal/provider"
)

func main() {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "gateway").
		Logger()

	cfg := config.Load()

	registry := provider.NewRegistry(logger)
	mgr := manager.New(registry.Providers(), cfg.RateLimit, logger)

	r := mux.NewRouter()
	r.Handle("/generate", handlers.NewGenerate(mgr, registry.Known, logger)).Methods("POST")
	r.HandleFunc("/health", handlers.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	logger.Info().Str("addr", cfg.Addr).Dur("rate_limit", cfg.RateLimit).Msg("Starting gateway")
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
