package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-grid/internal/config"
	"github.com/vovakirdan/tui-grid/internal/core"
	"github.com/vovakirdan/tui-grid/internal/game"
	"github.com/vovakirdan/tui-grid/internal/platform/tui"
	"github.com/vovakirdan/tui-grid/internal/registry"
	"github.com/vovakirdan/tui-grid/internal/storage"
	"github.com/vovakirdan/tui-grid/internal/world"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

func runGrid(cmd *cobra.Command, _ []string) {
	if err := run(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(successStyle.Render("Game exited successfully"))
}

// loadConfig resolves the config file, preset and flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

// openLogger opens the log file. The terminal belongs to the session, so
// nothing is ever logged to stderr while the loop runs. An empty path
// discards log output.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	lvl := log.InfoLevel
	if level != "" {
		if lvl, err = log.ParseLevel(level); err != nil {
			f.Close()
			return nil, nil, err
		}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "grid",
		Level:           lvl,
	})
	return logger, f, nil
}

// endReason classifies how the loop finished.
func endReason(err error) string {
	switch {
	case err == nil:
		return storage.EndQuit
	case errors.Is(err, context.Canceled):
		return storage.EndSignal
	default:
		return storage.EndError
	}
}

func run(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logFile, err := openLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.Info("config loaded", "source", cfg.Source, "rule", cfg.Rule, "seed", cfg.Seed)

	info, err := registry.Resolve(cfg.Rule)
	if err != nil {
		return err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	// Open session storage; the simulation still runs without it.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	session, err := tui.Open(logger)
	if err != nil {
		return err
	}
	defer session.Close()

	w, h := session.Size()
	m := world.New(core.MapWidth, core.MapHeight, info.Rule, cfg.Wrap)
	g := game.New(m, info.ID, cfg.Runtime(w, h), palette)

	started := time.Now()
	stats, loopErr := tui.NewLoop(session, g, nil, logger).Run(ctx)
	session.Close()

	reason := endReason(loopErr)
	logger.Info("session ended",
		"reason", reason,
		"iterations", stats.Iterations,
		"updates", stats.Updates,
		"events", stats.Events,
		"overruns", stats.Overruns,
		"avg_delta", stats.AverageDelta(),
	)

	if store != nil {
		_, saveErr := store.SaveSession(storage.SessionRecord{
			Rule:        info.ID,
			Seed:        g.Seed(),
			StartedAt:   started,
			EndedAt:     time.Now(),
			Iterations:  stats.Iterations,
			Ticks:       stats.Updates,
			Events:      stats.Events,
			Overruns:    stats.Overruns,
			Generations: m.Generation(),
			Population:  m.Population(),
			EndReason:   reason,
		})
		if saveErr != nil {
			logger.Warn("could not save session", "error", saveErr)
		}
	}

	if reason == storage.EndError {
		logger.Error("loop failed", "error", loopErr)
		return loopErr
	}
	return nil
}
