// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

// Package main is the entry point for the Contentforge content API server.
//
// Contentforge serves the content behind a marketing site and its admin
// dashboard: the YouTube video gallery, FAQs with their home-page selection,
// blogs, case studies, careers, services, social links, testimonials,
// organization settings, and dashboard statistics.
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, config file, env)
//  2. Logging: zerolog global logger
//  3. Store: BadgerDB document store
//  4. HTTP Server: Chi router with auth, rate limiting, and metrics
//
// Shutdown is graceful: SIGINT/SIGTERM drains in-flight requests before the
// store closes.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contentforge/contentforge/internal/api"
	"github.com/contentforge/contentforge/internal/config"
	"github.com/contentforge/contentforge/internal/logging"
	"github.com/contentforge/contentforge/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	s, err := store.Open(&cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			logging.Error().Err(err).Msg("Store close failed")
		}
	}()

	router, err := api.NewRouter(cfg, s)
	if err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", addr).Str("environment", cfg.Server.Environment).Msg("Content API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("Server stopped cleanly")
	return nil
}
