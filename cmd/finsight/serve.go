package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/finsight-io/finsight/internal/config"
	"github.com/finsight-io/finsight/internal/logging"
	"github.com/finsight-io/finsight/internal/server/httplistener"
	"github.com/finsight-io/finsight/internal/server/mcpserver"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Start the finsight MCP server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
		},
		&cli.StringFlag{
			Name:    "listen",
			Usage:   "Address to serve MCP over HTTP (host:port), overrides the config file",
			Aliases: []string{"l"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (trace, debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format (text or json)",
		},
		&cli.BoolFlag{
			Name:  "stdio",
			Usage: "Serve MCP over stdin/stdout instead of HTTP",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.NewConfig(cmd.String("config"))
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to load config: %w", err), 1)
		}

		if listen := cmd.String("listen"); listen != "" {
			cfg.Server.Listen = listen
		}
		if level := cmd.String("log-level"); level != "" {
			cfg.LogLevel = level
		}
		if format := cmd.String("log-format"); format != "" {
			cfg.LogFormat = format
		}

		if err := cfg.Validate(); err != nil {
			return cli.Exit(fmt.Errorf("invalid config: %w", err), 1)
		}

		if cmd.Bool("stdio") {
			// stdout carries the MCP protocol in stdio mode, logs must stay
			// on stderr regardless of the configured format
			slog.SetDefault(slog.New(logging.SetupHandlerText(cfg.LogLevel, os.Stderr)))
		} else {
			SetupLogger(cfg.LogLevel, cfg.LogFormat)
		}
		logger := slog.Default()
		logger.Info("Starting finsight", "version", cmd.Root().Version, "config", cfg)

		server, err := mcpserver.Compile(buildServices(cfg, logger), "finsight", cmd.Root().Version)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to compile MCP server: %w", err), 1)
		}

		if cmd.Bool("stdio") {
			logger.Info("Serving MCP over stdio")
			if err := mcpserver.ServeStdio(ctx, server); err != nil {
				return cli.Exit(fmt.Errorf("stdio server failed: %w", err), 1)
			}
			return nil
		}

		listener, err := httplistener.New(cfg.Server.Listen, mcpserver.Handler(server), logger)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to create HTTP listener: %w", err), 1)
		}

		super, err := supervisor.New(
			supervisor.WithRunnables(listener),
			supervisor.WithLogHandler(logger.Handler()),
			supervisor.WithContext(ctx),
		)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to create supervisor: %w", err), 1)
		}
		if err := super.Run(); err != nil {
			return cli.Exit(fmt.Errorf("failed to run server: %w", err), 1)
		}

		logger.Info("Server shutdown complete")
		return nil
	},
}
