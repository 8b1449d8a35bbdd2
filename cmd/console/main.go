package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/treasure-island/internal/config"
	"github.com/jwebster45206/treasure-island/internal/logger"
	"github.com/jwebster45206/treasure-island/internal/storage"
	"github.com/jwebster45206/treasure-island/pkg/game"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	store, err := newSaveStore(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up save storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	if err := store.Ping(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Save storage unavailable: %v\n", err)
		os.Exit(1)
	}

	core := game.NewCore(store, log)

	p := tea.NewProgram(NewConsoleUI(core),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// newSaveStore picks the save backend: Redis when a URL is configured,
// otherwise a local save file.
func newSaveStore(cfg *config.Config, log *slog.Logger) (storage.SaveStore, error) {
	if cfg.RedisURL != "" {
		store, err := storage.NewRedisStore(cfg.RedisURL, cfg.SaveSlot, log)
		if err != nil {
			return nil, err
		}
		if err := store.WaitForConnection(context.Background()); err != nil {
			return nil, err
		}
		log.Info("Using Redis save storage", "slot", cfg.SaveSlot)
		return store, nil
	}

	log.Info("Using file save storage", "path", cfg.SavePath)
	return storage.NewFileStore(cfg.SavePath, log), nil
}
