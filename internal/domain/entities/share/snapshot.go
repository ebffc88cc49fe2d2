// Package share defines the persisted snapshot record and its dedup hash.
package share

import (
	"time"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
)

// Snapshot is an immutable copy of a traveler's state and stats at share
// time, keyed either by the owner's reserved username or by the content hash
// of (state, stats). Username slugs are merge-overwritten on re-share by the
// same owner; hash slugs never overwrite since the key encodes content
// identity.
type Snapshot struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	OwnerKey    string         `json:"ownerKey,omitempty"`
	DisplayName string         `json:"displayName,omitempty"`
	State       visit.MapState `json:"mapState"`
	Stats       visit.MapStats `json:"stats"`
	CreatedAt   time.Time      `json:"createdAt"`
}
