// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/lakbayph/lakbay-go/internal/application/services"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/caching"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/email"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/geo"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/persistence/database"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/persistence/mapstate"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/persistence/sharing"
	"github.com/lakbayph/lakbay-go/internal/rendering"
	"github.com/lakbayph/lakbay-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services
	AuthService       *services.AuthService
	MapStateService   *services.MapStateService
	SnapshotService   *services.SnapshotService
	ProfileService    *services.ProfileService
	CaptionService    *services.CaptionService
	ShareImageService *services.ShareImageService

	// Infrastructure
	Registry     *geo.Registry
	CacheManager *caching.Manager
	Logger       *logging.ChanneledLogger
	PerfTracker  *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer(db *database.Database, logger *logging.ChanneledLogger) (*Container, error) {
	perfTracker := performance.NewTracker(config.PerfMaxMarkers)
	registry := geo.Default()

	cacheManager := caching.NewManager(config.SnapshotCacheTTL, config.UsernameCacheTTL)

	stores := &mapstate.Stores{
		Remote: mapstate.NewRepository(db.Conn, logger),
		Local:  mapstate.NewLocalStore(config.LocalStatePath),
	}
	snapshotRepo := sharing.NewSnapshotRepository(db.Conn, logger)
	usernameRepo := sharing.NewUsernameRepository(db.Conn, logger)

	var emailService email.Service
	if config.EmailEnabled {
		svc, err := email.NewService()
		if err != nil {
			logger.Startup().Warn("Email disabled", "error", err.Error())
		} else {
			emailService = svc
		}
	}

	composer, err := rendering.NewComposer(logger)
	if err != nil {
		return nil, err
	}

	return &Container{
		AuthService:       services.NewAuthService(logger, perfTracker),
		MapStateService:   services.NewMapStateService(stores, registry, logger, perfTracker),
		SnapshotService:   services.NewSnapshotService(snapshotRepo, usernameRepo, registry, cacheManager, emailService, logger, perfTracker),
		ProfileService:    services.NewProfileService(usernameRepo, cacheManager, logger),
		CaptionService:    services.NewCaptionService(logger),
		ShareImageService: services.NewShareImageService(registry, composer, logger, perfTracker),

		Registry:     registry,
		CacheManager: cacheManager,
		Logger:       logger,
		PerfTracker:  perfTracker,
	}, nil
}
