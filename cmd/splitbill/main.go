package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"splitbill/internal/config"
	"splitbill/internal/logging"
	"splitbill/internal/telemetry"
	"splitbill/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func run(cfg config.Config) error {
	log, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	tracer, err := telemetry.New(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(sctx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	log.Info("starting", "no_seed", cfg.NoSeed, "tracing", cfg.OTLPEndpoint != "")
	model := ui.NewAppModel(ui.Options{
		NoSeed:  cfg.NoSeed,
		Log:     log,
		Tracer:  tracer,
		Context: ctx,
	}).AsTeaModel()

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func main() {
	config.LoadDotEnv()
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitbill: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "splitbill: %v\n", err)
		os.Exit(1)
	}
}
