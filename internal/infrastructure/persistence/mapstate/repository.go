package mapstate

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
)

// Repository is the database-backed map state store.
type Repository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

// NewRepository creates a database-backed store.
func NewRepository(db *sql.DB, logger *logging.ChanneledLogger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Load returns the owner's map state, or an empty state when none exists.
func (r *Repository) Load(ownerKey string) (visit.MapState, error) {
	var raw string
	err := r.db.QueryRow(`SELECT state FROM map_states WHERE owner_key = ?`, ownerKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return visit.MapState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load map state: %w", err)
	}

	var state visit.MapState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to decode map state: %w", err)
	}
	if state == nil {
		state = visit.MapState{}
	}
	return state, nil
}

// Save upserts the owner's map state.
func (r *Repository) Save(ownerKey string, state visit.MapState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode map state: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO map_states (owner_key, state, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(owner_key) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		ownerKey, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save map state: %w", err)
	}

	r.logger.Database().Debug("Map state saved", "ownerKey", ownerKey, "entries", len(state))
	return nil
}
