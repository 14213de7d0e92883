package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/2008cattiger-cyber/miniature/models"
)

// SQLStore keeps one row per poll, each holding the serialized poll
// document. Save upserts every poll in a single transaction, so a
// concurrent Load sees either the old or the new state of a record,
// never a torn one. Works against sqlite and postgres; $1 placeholders
// bind positionally on both drivers.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// CreateSchema creates the state table. Safe to call multiple times.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS poll_state (
    id TEXT PRIMARY KEY,
    doc TEXT NOT NULL
);
`

// Load reads every poll row. A row that no longer parses is skipped
// and logged; the rest of the state still loads.
func (s *SQLStore) Load() (models.State, error) {
	rows, err := s.db.Query(`SELECT id, doc FROM poll_state`)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to query state: %w", err)
	}
	defer rows.Close()

	state := models.NewState()
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return models.State{}, fmt.Errorf("failed to scan poll row: %w", err)
		}
		var poll models.Poll
		if err := json.Unmarshal([]byte(doc), &poll); err != nil {
			slog.Warn("poll row corrupt, skipping", "poll_id", id, "error", err)
			continue
		}
		state.Polls[id] = &poll
	}
	if err := rows.Err(); err != nil {
		return models.State{}, fmt.Errorf("failed to read state rows: %w", err)
	}
	return state, nil
}

// Save upserts every poll in one transaction. Polls are never deleted,
// so rows absent from the in-memory state are left alone.
func (s *SQLStore) Save(state models.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for id, poll := range state.Polls {
		doc, err := json.Marshal(poll)
		if err != nil {
			return fmt.Errorf("failed to encode poll %s: %w", id, err)
		}
		_, err = tx.Exec(`
			INSERT INTO poll_state (id, doc) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
		`, id, string(doc))
		if err != nil {
			return fmt.Errorf("failed to upsert poll %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state: %w", err)
	}
	return nil
}
