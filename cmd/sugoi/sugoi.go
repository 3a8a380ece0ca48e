package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/app"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/format"
	"github.com/germanamz/sugoi/pkg/router"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/tty"
	"github.com/germanamz/sugoi/cmd/sugoi/internal/views"
	"github.com/germanamz/sugoi/pkg/config"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// loadDotEnv loads environment variables from path. A missing file is not an
// error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// loadConfig resolves, loads and validates the configuration.
func loadConfig(explicit string) (config.Config, error) {
	cfg, err := config.Load(config.ResolvePath(explicit))
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the slog logger described by lc. The terminal belongs to
// the UI, so records go to a file or nowhere. The returned closer is never
// nil.
func newLogger(lc config.LogConfig) (*slog.Logger, io.Closer, error) {
	if lc.File == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	level, err := lc.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return nil, nil, fmt.Errorf("log: open %s: %w", lc.File, err)
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

// startRoute picks the initial route: the --route flag wins over the
// configured start_route.
func startRoute(flagRoute string, cfg config.Config) router.Route {
	if flagRoute != "" {
		return router.Parse(flagRoute)
	}
	return router.Parse(cfg.StartRoute)
}

// darkBackground decides the palette once, before bubbletea owns the
// terminal.
func darkBackground(theme string) bool {
	switch theme {
	case "dark":
		return true
	case "light":
		return false
	default:
		return lipgloss.HasDarkBackground()
	}
}

// run loads the configuration and runs the TUI until the user quits.
func run(configPath, route string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // fd fits in int
		return errors.New("sugoi needs an interactive terminal")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log, closer, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	format.IsDarkBG = darkBackground(cfg.Theme)
	lipgloss.SetHasDarkBackground(format.IsDarkBG)
	tty.FlushStdin()

	start := startRoute(route, cfg)
	log.Info("starting", "route", start.String(), "language", cfg.Language)

	model := app.New(views.NewEnv(cfg, log), views.Default(), start)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
