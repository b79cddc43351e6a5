package round

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"blackjack-server/pkg/blackjack"
)

// ErrNotFound is returned when the round does not exist
var ErrNotFound = errors.New("round not found")

// Round is a persisted blackjack round
type Round struct {
	ID      uuid.UUID       `json:"id"`
	State   blackjack.State `json:"state"`
	Created time.Time       `json:"created"`
	Updated time.Time       `json:"updated"`
}

// Store persists rounds between dispatches
type Store interface {
	// Create persists a new round with the initial state
	Create(ctx context.Context, state blackjack.State) (*Round, error)

	// Get returns the round by its ID, or ErrNotFound
	Get(ctx context.Context, id uuid.UUID) (*Round, error)

	// Save persists the round's current state
	Save(ctx context.Context, round *Round) error

	// Delete removes the round, or returns ErrNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
