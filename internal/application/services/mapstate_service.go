package services

import (
	"github.com/lakbayph/lakbay-go/internal/domain/entities/gamification"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/geo"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/persistence/mapstate"
)

// MapStateService orchestrates visit state reads, mutations, and the derived
// stats and level views.
type MapStateService struct {
	stores      *mapstate.Stores
	registry    *geo.Registry
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewMapStateService creates the map state service.
func NewMapStateService(stores *mapstate.Stores, registry *geo.Registry, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *MapStateService {
	return &MapStateService{stores: stores, registry: registry, logger: logger, perfTracker: perfTracker}
}

// StateView bundles the state with everything the map screen derives from it.
type StateView struct {
	State visit.MapState         `json:"state"`
	Stats visit.MapStats         `json:"stats"`
	Level gamification.LevelInfo `json:"level"`
}

// GetState loads the owner's map state and its derived views. Unknown owner
// keys yield an empty state rather than an error.
func (s *MapStateService) GetState(ownerKey string) (*StateView, error) {
	marker := s.perfTracker.StartOperation("mapstate_get", ownerKey)
	defer marker.Complete()

	store, key := s.stores.Select(ownerKey)
	state, err := store.Load(key)
	if err != nil {
		return nil, err
	}

	marker.SetSuccess(true)
	return s.view(state), nil
}

// ReplaceState overwrites the owner's map state wholesale. Invalid status
// values are normalized to not-visited before persisting.
func (s *MapStateService) ReplaceState(ownerKey string, state visit.MapState) (*StateView, error) {
	marker := s.perfTracker.StartOperation("mapstate_replace", ownerKey)
	defer marker.Complete()

	cleaned := visit.MapState{}
	for id, status := range state {
		if !s.registry.Contains(id) {
			s.logger.Map().Debug("Dropping unknown region on replace", "regionId", id)
			continue
		}
		cleaned[id] = visit.Normalize(status)
	}

	store, key := s.stores.Select(ownerKey)
	if err := store.Save(key, cleaned); err != nil {
		return nil, err
	}

	marker.SetSuccess(true)
	return s.view(cleaned), nil
}

// CycleStatus advances one region to the next status in the visit cycle and
// persists the result. The response reflects the post-mutation state.
func (s *MapStateService) CycleStatus(ownerKey, regionID string) (*StateView, visit.Status, error) {
	marker := s.perfTracker.StartOperation("mapstate_cycle", ownerKey)
	defer marker.Complete()

	if !s.registry.Contains(regionID) {
		return nil, "", geo.ErrUnknownRegion
	}

	store, key := s.stores.Select(ownerKey)
	state, err := store.Load(key)
	if err != nil {
		return nil, "", err
	}

	next := visit.NextStatus(state[regionID])
	if next == visit.StatusNotVisited {
		delete(state, regionID)
	} else {
		state[regionID] = next
	}

	if err := store.Save(key, state); err != nil {
		return nil, "", err
	}

	s.logger.Map().Debug("Region cycled", "regionId", regionID, "status", string(next))
	marker.SetSuccess(true)
	return s.view(state), next, nil
}

// MigrateLocal moves the shared local-device state into the owner's remote
// record, clearing the local copy on success.
func (s *MapStateService) MigrateLocal(ownerKey string) (*StateView, error) {
	marker := s.perfTracker.StartOperation("mapstate_migrate", ownerKey)
	defer marker.Complete()

	if err := s.stores.Migrate(ownerKey); err != nil {
		return nil, err
	}

	store, key := s.stores.Select(ownerKey)
	state, err := store.Load(key)
	if err != nil {
		return nil, err
	}

	s.logger.Map().Info("Local state migrated", "ownerKey", ownerKey, "regions", len(state))
	marker.SetSuccess(true)
	return s.view(state), nil
}

// Stats computes the aggregate counts for the owner's current state.
func (s *MapStateService) Stats(ownerKey string) (visit.MapStats, error) {
	store, key := s.stores.Select(ownerKey)
	state, err := store.Load(key)
	if err != nil {
		return visit.MapStats{}, err
	}
	return visit.Aggregate(state, s.registry.IDs()), nil
}

// LevelInfo computes the owner's current achievement level.
func (s *MapStateService) LevelInfo(ownerKey string) (gamification.LevelInfo, error) {
	stats, err := s.Stats(ownerKey)
	if err != nil {
		return gamification.LevelInfo{}, err
	}
	return gamification.GetLevelInfo(stats.VisitedCount(), s.registry.Total()), nil
}

// Levels returns the full level ladder for the current region total.
func (s *MapStateService) Levels() []gamification.Level {
	return gamification.BuildLevels(s.registry.Total())
}

func (s *MapStateService) view(state visit.MapState) *StateView {
	stats := visit.Aggregate(state, s.registry.IDs())
	return &StateView{
		State: state,
		Stats: stats,
		Level: gamification.GetLevelInfo(stats.VisitedCount(), s.registry.Total()),
	}
}
