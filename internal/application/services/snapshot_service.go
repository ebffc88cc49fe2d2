package services

import (
	"fmt"
	"time"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/share"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/caching"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/email"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/geo"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/persistence/sharing"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/security"
	"github.com/lakbayph/lakbay-go/pkg/config"
)

// SnapshotService publishes immutable share snapshots of a traveler's map.
type SnapshotService struct {
	snapshots   *sharing.SnapshotRepository
	usernames   *sharing.UsernameRepository
	registry    *geo.Registry
	cache       *caching.Manager
	email       email.Service
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewSnapshotService creates the snapshot service. The email service may be
// nil when outbound email is disabled.
func NewSnapshotService(
	snapshots *sharing.SnapshotRepository,
	usernames *sharing.UsernameRepository,
	registry *geo.Registry,
	cache *caching.Manager,
	emailService email.Service,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
) *SnapshotService {
	return &SnapshotService{
		snapshots:   snapshots,
		usernames:   usernames,
		registry:    registry,
		cache:       cache,
		email:       emailService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// ShareResult is returned from a publish call.
type ShareResult struct {
	Slug     string `json:"slug"`
	ShareURL string `json:"shareUrl"`
}

// CreateShare publishes the given state under a public slug. Owners with a
// reserved username share under it and each publish overwrites the previous
// snapshot; anonymous shares get a content-hash slug, which is naturally
// idempotent so an existing row is left alone.
func (s *SnapshotService) CreateShare(ownerKey, displayName string, state visit.MapState, notifyEmail string) (*ShareResult, error) {
	marker := s.perfTracker.StartOperation("share_create", ownerKey)
	defer marker.Complete()

	stats := visit.Aggregate(state, s.registry.IDs())
	snap := &share.Snapshot{
		ID:          security.GenerateULID(),
		OwnerKey:    ownerKey,
		DisplayName: displayName,
		State:       state,
		Stats:       stats,
		CreatedAt:   time.Now().UTC(),
	}

	slug := ""
	merge := false
	if ownerKey != "" {
		username, ok, err := s.usernames.UsernameFor(ownerKey)
		if err != nil {
			return nil, err
		}
		if ok {
			slug = username
			merge = true
		}
	}
	if slug == "" {
		slug = share.ContentHash(state, stats)
	}
	snap.Slug = slug

	if err := s.snapshots.Put(slug, snap, merge); err != nil {
		return nil, err
	}
	if merge {
		s.cache.InvalidateSnapshot(slug)
	}

	shareURL := fmt.Sprintf("%s/v/%s", config.PublicBaseURL, slug)
	s.logger.Share().Info("Snapshot published", "slug", slug, "merge", merge, "visited", stats.VisitedCount())

	if notifyEmail != "" && s.email != nil {
		// Delivery failures never fail the share itself.
		go func() {
			if err := s.email.SendShareLinkEmail(notifyEmail, displayName, shareURL); err != nil {
				s.logger.Share().Warn("Share link email failed", "error", err.Error())
			}
		}()
	}

	marker.SetSuccess(true)
	return &ShareResult{Slug: slug, ShareURL: shareURL}, nil
}

// GetShared loads a published snapshot by slug, consulting the cache first.
// Returns nil when the slug is unknown.
func (s *SnapshotService) GetShared(slug string) (*share.Snapshot, error) {
	if snap, ok := s.cache.GetSnapshot(slug); ok {
		return snap, nil
	}

	snap, err := s.snapshots.Get(slug)
	if err != nil {
		return nil, err
	}
	if snap != nil {
		s.cache.SetSnapshot(slug, snap)
	}
	return snap, nil
}
