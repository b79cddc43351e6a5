package round

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"blackjack-server/pkg/blackjack"
)

// MemoryStore keeps rounds in process memory.
// It backs tests and single-node deployments that can afford to lose
// rounds on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	rounds map[uuid.UUID]Round
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rounds: make(map[uuid.UUID]Round),
	}
}

// Create persists a new round with the initial state
func (m *MemoryStore) Create(_ context.Context, state blackjack.State) (*Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	round := Round{
		ID:      uuid.New(),
		State:   state,
		Created: now,
		Updated: now,
	}

	m.rounds[round.ID] = round
	return &round, nil
}

// Get returns the round by its ID, or ErrNotFound
func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	round, ok := m.rounds[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &round, nil
}

// Save persists the round's current state
func (m *MemoryStore) Save(_ context.Context, round *Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rounds[round.ID]; !ok {
		return ErrNotFound
	}

	round.Updated = time.Now()
	m.rounds[round.ID] = *round
	return nil
}

// Delete removes the round, or returns ErrNotFound
func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rounds[id]; !ok {
		return ErrNotFound
	}

	delete(m.rounds, id)
	return nil
}
