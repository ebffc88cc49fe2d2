// Package caching provides TTL caches in front of the snapshot and username
// repositories.
package caching

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/share"
)

// Manager owns the process-wide caches.
type Manager struct {
	snapshots *ttlcache.Cache[string, *share.Snapshot]
	usernames *ttlcache.Cache[string, string]
}

// NewManager creates the cache stores with the given TTLs.
func NewManager(snapshotTTL, usernameTTL time.Duration) *Manager {
	return &Manager{
		snapshots: ttlcache.New[string, *share.Snapshot](
			ttlcache.WithTTL[string, *share.Snapshot](snapshotTTL),
			ttlcache.WithDisableTouchOnHit[string, *share.Snapshot](),
		),
		usernames: ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](usernameTTL),
		),
	}
}

// Start launches the expiration workers. Call once at startup.
func (m *Manager) Start() {
	go m.snapshots.Start()
	go m.usernames.Start()
}

// Stop terminates the expiration workers.
func (m *Manager) Stop() {
	m.snapshots.Stop()
	m.usernames.Stop()
}

// GetSnapshot returns a cached snapshot by slug.
func (m *Manager) GetSnapshot(slug string) (*share.Snapshot, bool) {
	item := m.snapshots.Get(slug)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

// SetSnapshot caches a snapshot under its slug.
func (m *Manager) SetSnapshot(slug string, snap *share.Snapshot) {
	m.snapshots.Set(slug, snap, ttlcache.DefaultTTL)
}

// InvalidateSnapshot drops a cached snapshot, used when a per-user slug is
// merge-overwritten.
func (m *Manager) InvalidateSnapshot(slug string) {
	m.snapshots.Delete(slug)
}

// GetOwnerForUsername returns a cached username resolution.
func (m *Manager) GetOwnerForUsername(username string) (string, bool) {
	item := m.usernames.Get(username)
	if item == nil {
		return "", false
	}
	return item.Value(), true
}

// SetOwnerForUsername caches a username resolution.
func (m *Manager) SetOwnerForUsername(username, ownerKey string) {
	m.usernames.Set(username, ownerKey, ttlcache.DefaultTTL)
}
