// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds live games for the HTTP surface; nothing outlives the process.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the mutation under the write lock, so Submit calls on the
//     same game never interleave.
//   - Get hands out copies taken under the read lock; callers never share
//     the stored *game.Game.
//   - Sweep drops games untouched for longer than a cutoff.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the lookup interface for live games.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get returns a copy of the game with the given ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update runs fn on the stored game while holding exclusive access.
	// The error from fn is returned unchanged.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error

	// Delete removes a game; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep removes games not touched since before cutoff and reports how many.
	Sweep(ctx context.Context, cutoff time.Time) int
}

type entry struct {
	game    *game.Game
	touched time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games
	games map[string]*entry // keyed by Game.ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &entry{game: g, touched: m.now()}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok {
		return e.game.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	e.touched = m.now()
	return fn(e.game)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	stale := lo.Keys(lo.PickBy(m.games, func(_ string, e *entry) bool {
		return e.touched.Before(cutoff)
	}))
	for _, id := range stale {
		delete(m.games, id)
	}
	return len(stale)
}
