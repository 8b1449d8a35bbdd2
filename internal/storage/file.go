package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jwebster45206/treasure-island/pkg/state"
)

// DefaultSavePath is the save file written when no path is configured.
const DefaultSavePath = "savegame.json"

// FileStore persists the save document to a single JSON file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// Ensure FileStore implements SaveStore interface
var _ SaveStore = (*FileStore)(nil)

// NewFileStore creates a file-backed save store.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if path == "" {
		path = DefaultSavePath
	}
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

func (f *FileStore) Save(ctx context.Context, player *state.Player, gs *state.GameState) error {
	data, err := encodeDocument(player, gs)
	if err != nil {
		f.logger.Error("Failed to encode save document", "path", f.path, "error", err)
		return fmt.Errorf("failed to encode save document: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		f.logger.Error("Failed to write save file", "path", f.path, "error", err)
		return fmt.Errorf("failed to write save file: %w", err)
	}

	f.logger.Debug("Save file written", "path", f.path, "bytes", len(data))
	return nil
}

func (f *FileStore) Load(ctx context.Context) (*state.Player, *state.GameState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrNoSave
		}
		f.logger.Error("Failed to read save file", "path", f.path, "error", err)
		return nil, nil, ErrCorrupt
	}

	player, gs, err := decodeDocument(data)
	if err != nil {
		f.logger.Warn("Save file rejected", "path", f.path, "error", err)
		return nil, nil, err
	}
	return player, gs, nil
}

// Name returns the save file's base name for user-facing messages.
func (f *FileStore) Name() string {
	return filepath.Base(f.path)
}

func (f *FileStore) Ping(ctx context.Context) error {
	dir := filepath.Dir(f.path)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}
