// Package sharing provides repositories for share snapshots and the public
// username directory.
package sharing

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/share"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
)

// SnapshotRepository persists share snapshots keyed by slug.
type SnapshotRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

// NewSnapshotRepository creates the snapshot repository.
func NewSnapshotRepository(db *sql.DB, logger *logging.ChanneledLogger) *SnapshotRepository {
	return &SnapshotRepository{db: db, logger: logger}
}

// Get returns the snapshot stored under slug, or nil when none exists.
func (r *SnapshotRepository) Get(slug string) (*share.Snapshot, error) {
	row := r.db.QueryRow(
		`SELECT slug, id, owner_key, display_name, state, stats, created_at FROM snapshots WHERE slug = ?`,
		slug,
	)

	var snap share.Snapshot
	var ownerKey, displayName sql.NullString
	var rawState, rawStats string
	err := row.Scan(&snap.Slug, &snap.ID, &ownerKey, &displayName, &rawState, &rawStats, &snap.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snap.OwnerKey = ownerKey.String
	snap.DisplayName = displayName.String
	if err := json.Unmarshal([]byte(rawState), &snap.State); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot state: %w", err)
	}
	if err := json.Unmarshal([]byte(rawStats), &snap.Stats); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot stats: %w", err)
	}
	if snap.State == nil {
		snap.State = visit.MapState{}
	}
	return &snap, nil
}

// Put stores a snapshot under key. With merge, an existing snapshot for the
// same slug is overwritten (per-user slugs on re-share); without it an
// existing row is left untouched, since a content-hash slug already encodes
// identity.
func (r *SnapshotRepository) Put(key string, snap *share.Snapshot, merge bool) error {
	rawState, err := json.Marshal(snap.State)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot state: %w", err)
	}
	rawStats, err := json.Marshal(snap.Stats)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot stats: %w", err)
	}

	conflict := `ON CONFLICT(slug) DO NOTHING`
	if merge {
		conflict = `ON CONFLICT(slug) DO UPDATE SET
			id = excluded.id,
			owner_key = excluded.owner_key,
			display_name = excluded.display_name,
			state = excluded.state,
			stats = excluded.stats,
			created_at = excluded.created_at`
	}

	_, err = r.db.Exec(
		`INSERT INTO snapshots (slug, id, owner_key, display_name, state, stats, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?) `+conflict,
		key, snap.ID, snap.OwnerKey, snap.DisplayName, string(rawState), string(rawStats), snap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	r.logger.Database().Debug("Snapshot stored", "slug", key, "merge", merge)
	return nil
}
