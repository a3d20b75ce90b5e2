package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"numfield/cmd/numfield/calculator"
	"numfield/internal/config"
	"numfield/internal/logging"
)

// runInteractive starts the commission calculator. Logging goes to the
// configured file since the terminal belongs to the UI.
func runInteractive(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Logging.Options()); err != nil {
		return err
	}
	defer logging.Sync()

	boot := logging.Get(logging.CategoryBoot)
	path := resolveConfigPath()
	boot.Infow("starting calculator", "config", path, "session", logging.SessionID())
	session := logging.StartTimer(logging.CategoryBoot, "calculator session")

	var opts []calculator.Option
	if w := startWatcher(ctx, path); w != nil {
		defer w.Stop()
		opts = append(opts, calculator.WithUpdates(w.Updates()))
	}

	model, err := calculator.New(cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to start calculator: %w", err)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	session.Stop()
	boot.Infow("calculator exited", "error", err)
	reportDebugLog(os.Stderr, cfg.Logging.File)
	return err
}

// reportDebugLog points at the log file once the alt screen is gone, since
// nothing was logged to the terminal while the calculator ran.
func reportDebugLog(w io.Writer, file string) {
	if !logging.IsDebugMode() || file == "" {
		return
	}
	fmt.Fprintf(w, "debug log written to %s (session %s)\n", file, logging.SessionID())
}

// startWatcher watches an existing config file. Hot reload is best effort:
// failures are logged and the calculator runs without it.
func startWatcher(ctx context.Context, path string) *config.Watcher {
	boot := logging.Get(logging.CategoryBoot)
	if _, err := os.Stat(path); err != nil {
		boot.Debugw("no config file to watch", "path", path)
		return nil
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		boot.Warnw("config hot reload unavailable", "error", err)
		return nil
	}
	if err := w.Start(ctx); err != nil {
		boot.Warnw("config hot reload unavailable", "error", err)
		w.Stop()
		return nil
	}
	return w
}
