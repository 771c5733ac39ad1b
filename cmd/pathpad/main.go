// Command pathpad is a terminal sketchpad for weighted graphs.
//
// Click on empty space to place a node, click a node and then another to
// connect them, press s/g with a node selected to mark start/goal, and p to
// highlight the shortest path between them.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathpad/config"
	"github.com/katalvlaran/pathpad/core"
	"github.com/katalvlaran/pathpad/logging"
	"github.com/katalvlaran/pathpad/session"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(*configPath, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string) error {
	cfg, err := loadConfig(configPath, logLevel)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := session.New(core.NewGraph(),
		session.WithRadius(cfg.Graph.NodeRadius),
		session.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		initialModel(sess, cfg.View, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}

	return nil
}

// loadConfig reads the config file and applies the -log-level override.
func loadConfig(path, logLevel string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel == "" {
		return cfg, nil
	}

	cfg.Log.Level = logLevel
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("-log-level: %w", err)
	}

	return cfg, nil
}

// openLogger writes logs to the configured file; the terminal belongs to the canvas.
func openLogger(c config.Log) (*slog.Logger, func(), error) {
	if c.File == "" {
		return logging.New(c.Format, c.Level, io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(c.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", c.File, err)
	}

	return logging.New(c.Format, c.Level, f), func() { _ = f.Close() }, nil
}
