package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"eventperf/internal/api"
	"eventperf/internal/config"
	"eventperf/internal/trace"
	"eventperf/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// setupLogger points slog at the log file when one is configured. The
// terminal belongs to the TUI, so without a file logs are discarded.
func setupLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "eventperf")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

func run(cfg config.Config) error {
	logger, logFile, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	ctx := context.Background()
	shutdown, err := trace.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	logger.Info("starting", "backend", cfg.BackendURL, "timeout", cfg.Timeout, "tracing", cfg.OTLPEndpoint != "")
	client := api.NewClient(cfg.BackendURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
	)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(ui.NewAppModel(client).AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr, ".env")
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventperf: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "eventperf: %v\n", err)
		os.Exit(1)
	}
}
