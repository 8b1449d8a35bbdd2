package game

import (
	"io"
	"log/slog"
	"testing"

	"github.com/jwebster45206/treasure-island/internal/storage"
)

// stubRand plays back a fixed sequence of draws, then returns 1.0 so no
// further random events fire.
type stubRand struct {
	values []float64
	index  int
}

func (s *stubRand) Float64() float64 {
	if s.index >= len(s.values) {
		return 1.0
	}
	v := s.values[s.index]
	s.index++
	return v
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestCore builds a core over a MockStore with random events suppressed.
func newTestCore(t *testing.T) (*Core, *storage.MockStore) {
	t.Helper()
	store := &storage.MockStore{}
	core := NewCore(store, testLogger()).WithRand(&stubRand{})
	return core, store
}
