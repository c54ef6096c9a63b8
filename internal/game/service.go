package game

import (
	"context"
	"fmt"
	"math"

	"github.com/mr-omar-21/chawa-farms/internal/catalog"
	"github.com/mr-omar-21/chawa-farms/internal/concurrency"
	"github.com/mr-omar-21/chawa-farms/internal/domain"
	"github.com/mr-omar-21/chawa-farms/internal/logger"
	"github.com/mr-omar-21/chawa-farms/internal/metrics"
	"github.com/mr-omar-21/chawa-farms/internal/nasa"
	"github.com/mr-omar-21/chawa-farms/internal/repository"
)

// LoginResult is the outcome of a create-or-login request.
type LoginResult struct {
	State   *domain.PlayerState
	Created bool
	Message string
}

// ActionParams carries per-action parameters from the client.
type ActionParams struct {
	FieldID int `json:"field_id"`
}

// ActionResult is the outcome of a single dispatched action. A failed
// action carries no state; the save store is untouched on failure.
type ActionResult struct {
	Success  bool
	Message  string
	NewState *domain.PlayerState
}

// Service defines the game business logic: farm creation/login and the
// per-action state machine.
type Service interface {
	// CreateOrLogin returns the existing save for a known player, or
	// creates a fresh farm in the given region (default region when
	// empty). Returns domain.ErrInvalidRegion for unknown regions and
	// domain.ErrPlayerNameRequired for a blank name. The returned state
	// carries a freshly sampled satellite reading.
	CreateOrLogin(ctx context.Context, playerName, regionName string) (*LoginResult, error)

	// PerformAction validates and applies one action for one player.
	// Unknown players yield domain.ErrPlayerNotFound. Precondition
	// failures are not errors: they return an unsuccessful result and
	// leave the save untouched.
	PerformAction(ctx context.Context, playerName, action string, params ActionParams) (*ActionResult, error)
}

type service struct {
	repo    repository.Save
	catalog *catalog.Catalog
	sim     nasa.Simulator
	locks   *concurrency.LockManager
	randInt func(min, max int) int
}

// NewService creates a new game service.
func NewService(repo repository.Save, cat *catalog.Catalog, sim nasa.Simulator) Service {
	return NewServiceWithRand(repo, cat, sim, defaultRandInt)
}

// NewServiceWithRand creates a game service with injected randomness
// for deterministic tests.
func NewServiceWithRand(repo repository.Save, cat *catalog.Catalog, sim nasa.Simulator, randInt func(min, max int) int) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		sim:     sim,
		locks:   concurrency.NewLockManager(),
		randInt: randInt,
	}
}

func (s *service) CreateOrLogin(ctx context.Context, playerName, regionName string) (*LoginResult, error) {
	log := logger.FromContext(ctx)

	if playerName == "" {
		return nil, domain.ErrPlayerNameRequired
	}

	mu := s.locks.GetLock(playerName)
	mu.Lock()
	defer mu.Unlock()

	exists, err := s.repo.Exists(ctx, playerName)
	if err != nil {
		return nil, fmt.Errorf("failed to check save: %w", err)
	}

	if exists {
		state, err := s.repo.GetState(ctx, playerName)
		if err != nil {
			return nil, fmt.Errorf("failed to load save: %w", err)
		}

		reading := s.sim.Sample(state.Region)
		state.NasaData = &reading
		if err := s.repo.PutState(ctx, playerName, *state); err != nil {
			return nil, fmt.Errorf("failed to store save: %w", err)
		}

		log.Info("Player logged in", "player", playerName, "region", state.Region, "day", state.CurrentDay)
		return &LoginResult{
			State:   state,
			Created: false,
			Message: fmt.Sprintf(MsgWelcomeBackFormat, playerName),
		}, nil
	}

	if regionName == "" {
		regionName = catalog.DefaultRegion
	}
	region, ok := s.catalog.Region(regionName)
	if !ok {
		log.Warn("Rejected unknown region", "player", playerName, "region", regionName)
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRegion, regionName)
	}

	state := NewPlayerState(playerName, regionName, region, s.randInt)
	reading := s.sim.Sample(regionName)
	state.NasaData = &reading
	if err := s.repo.PutState(ctx, playerName, state); err != nil {
		return nil, fmt.Errorf("failed to store save: %w", err)
	}

	metrics.PlayersCreated.WithLabelValues(regionName).Inc()
	log.Info("New farm created", "player", playerName, "region", regionName)
	return &LoginResult{
		State:   &state,
		Created: true,
		Message: fmt.Sprintf(MsgFarmCreatedFormat, playerName, regionName),
	}, nil
}

func (s *service) PerformAction(ctx context.Context, playerName, action string, params ActionParams) (*ActionResult, error) {
	log := logger.FromContext(ctx)

	mu := s.locks.GetLock(playerName)
	mu.Lock()
	defer mu.Unlock()

	state, err := s.repo.GetState(ctx, playerName)
	if err != nil {
		return nil, err
	}

	var result *ActionResult
	switch action {
	case ActionNextDay:
		result, err = s.applyNextDay(state)
	case ActionPlant:
		result = s.applyPlant(state, params.FieldID)
	case ActionWater:
		result = s.applyWater(state, params.FieldID)
	case ActionHarvest:
		result = s.applyHarvest(state, params.FieldID)
	default:
		result = failedResult()
	}
	if err != nil {
		return nil, err
	}

	if !result.Success {
		metrics.ActionsPerformed.WithLabelValues(action, metrics.OutcomeFailure).Inc()
		log.Info("Action rejected", "player", playerName, "action", action, "field_id", params.FieldID)
		return result, nil
	}

	// Auto-save: every successful action overwrites the whole record.
	if err := s.repo.PutState(ctx, playerName, *state); err != nil {
		return nil, fmt.Errorf("failed to store save: %w", err)
	}

	metrics.ActionsPerformed.WithLabelValues(action, metrics.OutcomeSuccess).Inc()
	log.Info("Action applied", "player", playerName, "action", action, "field_id", params.FieldID, "day", state.CurrentDay)
	result.NewState = state
	return result, nil
}

func (s *service) applyNextDay(state *domain.PlayerState) (*ActionResult, error) {
	if err := AdvanceDay(state, s.catalog.Crops, s.randInt); err != nil {
		return nil, err
	}
	metrics.DaysAdvanced.Inc()
	return &ActionResult{Success: true, Message: MsgDayPassed}, nil
}

func (s *service) applyPlant(state *domain.PlayerState, fieldID int) *ActionResult {
	// Planting is hardcoded to maize for now; the field UI offers no
	// other seed.
	cropName := domain.CropMaize
	seedName := cropName + " Seed"

	if state.Inventory[seedName] <= 0 {
		return failedResult()
	}
	field := state.FieldByID(fieldID)
	if field == nil || field.Status != domain.FieldStatusFallow {
		return failedResult()
	}

	field.Crop = cropName
	field.Status = domain.FieldStatusGrowing
	field.GrowthStage = 0
	state.Inventory[seedName]--

	return &ActionResult{Success: true, Message: fmt.Sprintf(MsgPlantedFormat, cropName, fieldID)}
}

func (s *service) applyWater(state *domain.PlayerState, fieldID int) *ActionResult {
	field := state.FieldByID(fieldID)
	if field == nil {
		return failedResult()
	}

	// Any field can be watered, whatever its status, and the fee is
	// charged even if the balance goes negative. Both are long-standing
	// behavior the client depends on.
	field.WaterLevel = math.Min(1.0, field.WaterLevel+domain.WaterPerIrrigation)
	state.Balance -= domain.IrrigationCost

	return &ActionResult{Success: true, Message: fmt.Sprintf(MsgWateredFormat, fieldID, domain.IrrigationCost)}
}

func (s *service) applyHarvest(state *domain.PlayerState, fieldID int) *ActionResult {
	field := state.FieldByID(fieldID)
	if field == nil || field.Status != domain.FieldStatusReady {
		return failedResult()
	}

	cropName := field.Crop
	crop, ok := s.catalog.Crop(cropName)
	if !ok {
		// Planted crop missing from the catalog; treat as a failed
		// precondition rather than corrupting the save.
		return failedResult()
	}

	state.Inventory[domain.HarvestedItemName(cropName)] += crop.Yield
	field.Reset()

	metrics.CropsHarvested.WithLabelValues(cropName).Add(float64(crop.Yield))
	return &ActionResult{Success: true, Message: fmt.Sprintf(MsgHarvestedFormat, crop.Yield, cropName)}
}

func failedResult() *ActionResult {
	return &ActionResult{Success: false, Message: MsgActionNotRecognized}
}
