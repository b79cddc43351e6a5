package round

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/db"
)

const roundColumns = `
rounds.id,
rounds.state,
rounds.created,
rounds.updated`

// PostgresStore persists rounds in the rounds table
type PostgresStore struct{}

// NewPostgresStore returns a store backed by the database instance
func NewPostgresStore() *PostgresStore {
	return &PostgresStore{}
}

func getRoundByRow(row db.Scanner) (*Round, error) {
	var round Round
	var state []byte
	if err := row.Scan(&round.ID, &state, &round.Created, &round.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}

		return nil, err
	}

	if err := json.Unmarshal(state, &round.State); err != nil {
		return nil, err
	}

	return &round, nil
}

// Create persists a new round with the initial state
func (p *PostgresStore) Create(ctx context.Context, state blackjack.State) (*Round, error) {
	const query = `
INSERT INTO rounds (id, state)
VALUES ($1, $2)
RETURNING ` + roundColumns

	payload, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	row := db.Instance().QueryRowContext(ctx, query, uuid.New(), payload)
	return getRoundByRow(row)
}

// Get returns the round by its ID, or ErrNotFound
func (p *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Round, error) {
	const query = `
SELECT ` + roundColumns + `
FROM rounds
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getRoundByRow(row)
}

// Save persists the round's current state
func (p *PostgresStore) Save(ctx context.Context, round *Round) error {
	const query = `
UPDATE rounds
SET state = $1,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	payload, err := json.Marshal(round.State)
	if err != nil {
		return err
	}

	res, err := db.Instance().ExecContext(ctx, query, payload, round.ID)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the round, or returns ErrNotFound
func (p *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
DELETE FROM rounds
WHERE id = $1`

	res, err := db.Instance().ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}
