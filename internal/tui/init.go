// Package tui provides the terminal user interface for almanac.
package tui

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfmartinez/almanac/internal/config"
	"github.com/jfmartinez/almanac/internal/db"
	"github.com/jfmartinez/almanac/internal/event"
)

// OpenRepo opens the event store at dbPath, creating the data
// directory if needed.
func OpenRepo(dbPath string) (event.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// Run starts the TUI.
func Run(repo event.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo event.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	ownRepo := repo == nil
	if repo == nil {
		var err error
		repo, err = OpenRepo(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
	}
	if ownRepo {
		defer func() { _ = repo.Close() }()
	}

	model := New(repo, cfg)
	p := tea.NewProgram(*model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
