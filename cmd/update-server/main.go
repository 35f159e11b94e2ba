// Package main is used for the update-server daemon.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pires/go-proxyproto"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/orbit-editor/update-server/internal/config"
	"github.com/orbit-editor/update-server/internal/providers"
	"github.com/orbit-editor/update-server/internal/rest"
	"github.com/orbit-editor/update-server/internal/scheduling"
)

func main() {
	var configPath string

	var listen string

	var logLevel string

	cmd := &cobra.Command{
		Use:   "update-server",
		Short: "Update-check endpoint for the desktop client auto-updater",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, listen, logLevel)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration file")
	cmd.Flags().StringVar(&listen, "listen", "", "Override the configured listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")

	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, listen string, logLevel string) error {
	// Load the configuration.
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Apply command line overrides.
	if listen != "" {
		cfg.Listen = listen
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	// Prepare a logger. Verbosity is a deployment choice, production runs
	// quiet while development gets per-request diagnostics.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	// Get the update metadata provider.
	provider, err := providers.Load(ctx, cfg.Provider.Name, cfg.Provider.Settings())
	if err != nil {
		return err
	}

	// Shut down cleanly on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup listener.
	lc := &net.ListenConfig{}

	listener, err := lc.Listen(ctx, "tcp", cfg.Listen)
	if err != nil {
		return err
	}

	if cfg.ProxyProtocol {
		listener = &proxyproto.Listener{Listener: listener}
	}

	// Setup server.
	server, err := rest.NewServer(ctx, provider)
	if err != nil {
		return err
	}

	// Setup the periodic origin probe.
	if cfg.Probe.Crontab != "" {
		scheduler, err := scheduling.NewScheduler()
		if err != nil {
			return err
		}

		err = scheduler.RegisterJob("origin-probe", cfg.Probe.Crontab, provider.Probe)
		if err != nil {
			return err
		}

		scheduler.Start()

		defer func() { _ = scheduler.Shutdown() }()
	}

	slog.Info("Starting update server", "listen", cfg.Listen, "provider", provider.Type(), "origin", provider.Origin())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Serve(ctx, listener)
	})

	g.Go(func() error {
		// Check the origin once at startup so a misconfiguration shows up
		// in the log right away.
		err := provider.Probe(ctx)
		if err != nil {
			slog.Warn("Update origin is unreachable", "origin", provider.Origin(), "error", err)
		}

		return nil
	})

	return g.Wait()
}
