package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/gamification"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/share"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/geo"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/rendering"
)

// ShareImageService turns a snapshot into a downloadable composite image.
type ShareImageService struct {
	registry    *geo.Registry
	composer    *rendering.Composer
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewShareImageService creates the share image service.
func NewShareImageService(registry *geo.Registry, composer *rendering.Composer, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ShareImageService {
	return &ShareImageService{registry: registry, composer: composer, logger: logger, perfTracker: perfTracker}
}

// Render composes the share image for a snapshot: the map recolored from the
// snapshot state, the achievement and progress cards, and the footer badges.
func (s *ShareImageService) Render(ctx context.Context, snap *share.Snapshot) (*rendering.Composite, error) {
	marker := s.perfTracker.StartOperation("share_image", snap.OwnerKey)
	defer marker.Complete()

	svg := rendering.RecolorSVG(s.registry.SVG(), snap.State)
	info := gamification.GetLevelInfo(snap.Stats.VisitedCount(), s.registry.Total())

	composite, err := s.composer.Compose(ctx, rendering.ComposeRequest{
		SVG:             svg,
		AchievementCard: &rendering.AchievementCard{Info: info},
		ProgressCard:    &rendering.ProgressCard{Stats: snap.Stats},
		CreatedAt:       snap.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compose share image: %w", err)
	}

	s.logger.Render().Info("Share image composed",
		"slug", snap.Slug, "width", composite.Width, "height", composite.Height)
	marker.SetSuccess(true)
	return composite, nil
}

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)

// Filename derives the download filename from the snapshot's display
// identity, falling back to the slug.
func (s *ShareImageService) Filename(snap *share.Snapshot, ext string) string {
	base := strings.ToLower(strings.TrimSpace(snap.DisplayName))
	base = filenameUnsafe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = snap.Slug
	}
	return fmt.Sprintf("lakbay-%s.%s", base, ext)
}
