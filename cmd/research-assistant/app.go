// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/research-assistant/internal/assistant"
	"github.com/pdiddy/research-assistant/internal/cache"
	"github.com/pdiddy/research-assistant/internal/lookup"
	"github.com/pdiddy/research-assistant/internal/router"
	"github.com/pdiddy/research-assistant/internal/search"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// app holds the wired services for one CLI invocation.
type app struct {
	cfg       types.AppConfig
	store     *cache.Store
	directory *search.Service
	lookup    *lookup.Lookup
	assistant *assistant.Bridge
	router    *router.Router
}

// newApp wires the cache, provider, assistant and router from cfg.
func newApp(ctx context.Context, cfg types.AppConfig, logger *zap.Logger) (*app, error) {
	store := cache.NewStore(cfg.PapersDir, logger.Named("cache"))

	provider := &search.ArxivProvider{
		Client:    &http.Client{Timeout: cfg.Search.Timeout},
		UserAgent: cfg.Search.UserAgent,
	}
	directory := search.NewService(provider, store, logger.Named("search"))
	local := lookup.New(store)

	gen, err := assistant.NewGeminiGenerator(ctx, assistant.GeminiConfig{
		APIKey: cfg.Assistant.APIKey,
		Model:  cfg.Assistant.Model,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Assistant.APIKey == "" {
		logger.Warn("no Gemini API key configured; questions will return an error",
			zap.String("hint", "set GEMINI_API_KEY or .secrets/gemini-api-key"))
	}
	bridge, err := assistant.NewBridge(gen, cfg.Assistant, logger.Named("assistant"))
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		store:     store,
		directory: directory,
		lookup:    local,
		assistant: bridge,
		router:    router.New(local, directory, bridge, logger.Named("router")),
	}, nil
}

// appFor builds the app for a running command.
func appFor(cmd *cobra.Command) (*app, error) {
	return newApp(cmd.Context(), appConfig, logger)
}
