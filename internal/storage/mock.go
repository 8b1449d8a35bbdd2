package storage

import (
	"context"

	"github.com/jwebster45206/treasure-island/pkg/state"
)

// MockStore is a configurable in-memory SaveStore for tests.
type MockStore struct {
	SaveFunc func(ctx context.Context, player *state.Player, gs *state.GameState) error
	LoadFunc func(ctx context.Context) (*state.Player, *state.GameState, error)
	SaveName string

	// Captured state from the default Save implementation.
	SavedPlayer *state.Player
	SavedState  *state.GameState
	SaveCalls   int
	LoadCalls   int
}

// Ensure MockStore implements SaveStore interface
var _ SaveStore = (*MockStore)(nil)

func (m *MockStore) Save(ctx context.Context, player *state.Player, gs *state.GameState) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, player, gs)
	}
	// Round-trip through the document codec so tests exercise the same
	// serialization path as real backends.
	data, err := encodeDocument(player, gs)
	if err != nil {
		return err
	}
	p, gs2, err := decodeDocument(data)
	if err != nil {
		return err
	}
	m.SavedPlayer = p
	m.SavedState = gs2
	return nil
}

func (m *MockStore) Load(ctx context.Context) (*state.Player, *state.GameState, error) {
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	if m.SavedPlayer == nil || m.SavedState == nil {
		return nil, nil, ErrNoSave
	}
	// Copy through the codec so callers cannot mutate the stored snapshot.
	data, err := encodeDocument(m.SavedPlayer, m.SavedState)
	if err != nil {
		return nil, nil, err
	}
	return decodeDocument(data)
}

func (m *MockStore) Name() string {
	if m.SaveName != "" {
		return m.SaveName
	}
	return "mock"
}

func (m *MockStore) Ping(ctx context.Context) error { return nil }

func (m *MockStore) Close() error { return nil }
