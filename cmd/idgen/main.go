package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/maniartech/idgen/internal/cli"
	"github.com/maniartech/idgen/internal/config"
	"github.com/maniartech/idgen/internal/id"
	"github.com/maniartech/idgen/internal/inspector"
	pkglog "github.com/maniartech/idgen/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:     cfg.Log.Level,
		Pretty:    cfg.Log.Pretty,
		Component: "idgen",
	})
	logger := pkglog.L()
	logger.Debug().Str(pkglog.FieldConfigFile, cfg.File).Msg("config loaded")

	// Initialize dispatcher
	dispatcher, err := id.NewDispatcher(cfg.DispatcherOptions())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create dispatcher")
	}
	logger.Debug().
		Str("node_id", cfg.UUID.NodeID).
		Int64("machine_id", cfg.Snowflake.MachineID).
		Int("nanoid_size", cfg.NanoID.Size).
		Msg("dispatcher initialized")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	ctx = pkglog.WithLogger(ctx, logger)

	app := cli.New(cfg, dispatcher, inspector.New(), os.Stdout, os.Stderr)
	code := app.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
