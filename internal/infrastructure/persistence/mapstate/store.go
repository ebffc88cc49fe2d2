// Package mapstate persists the sparse province→status map, either in the
// shared database (signed-in owners) or in a local file-backed store
// (anonymous sessions), with a one-time migration between them.
package mapstate

import "github.com/lakbayph/lakbay-go/internal/domain/entities/visit"

// Store is the persistence contract for a traveler's map state.
type Store interface {
	Load(ownerKey string) (visit.MapState, error)
	Save(ownerKey string, state visit.MapState) error
}

// LocalOwnerKey is the fixed key the local fallback store files state under.
const LocalOwnerKey = "lakbay-local"

// Stores bundles both backends and selects between them.
type Stores struct {
	Remote *Repository
	Local  *LocalStore
}

// Select returns the backing store for an owner key: the remote repository
// when a key is present, the local file store otherwise. Store selection is
// always an explicit function of the key, never of ambient auth state.
func (s *Stores) Select(ownerKey string) (Store, string) {
	if ownerKey != "" && s.Remote != nil {
		return s.Remote, ownerKey
	}
	return s.Local, LocalOwnerKey
}

// Migrate moves any local-only state into the remote store for ownerKey and
// clears the local copy. Invoked once per sign-in transition; a missing or
// empty local state is a no-op.
func (s *Stores) Migrate(ownerKey string) error {
	if ownerKey == "" {
		return nil
	}

	local, err := s.Local.Load(LocalOwnerKey)
	if err != nil {
		return err
	}
	if len(local) == 0 {
		return nil
	}

	if err := s.Remote.Save(ownerKey, local); err != nil {
		return err
	}
	return s.Local.Clear(LocalOwnerKey)
}
