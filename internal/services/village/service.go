package village

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/darkdepths/darkdepths/internal/domain/village"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/darkdepths/darkdepths/internal/repositories/villages"
	charactersvc "github.com/darkdepths/darkdepths/internal/services/character"
)

// eventReasons holds the flavor excuses shown when a service rolls
// unavailable. Indexed uniformly at roll time.
var eventReasons = map[village.ServiceKind][]string{
	village.ServiceWeaponSmith: {
		"at a wedding in the neighboring village",
		"sick with fever",
		"traveling to the capital for supplies",
		"competing in the annual smithing competition",
	},
	village.ServiceArmorSmith: {
		"attending a guild meeting",
		"sick with the flu",
		"visiting family in the countryside",
		"at a funeral",
	},
	village.ServicePotionShop: {
		"gathering rare herbs in the forest",
		"closed for inventory",
		"the owner is ill (ironically)",
		"restocking from the alchemist guild",
	},
	village.ServiceTavern: {
		"full - there's a festival in town!",
		"closed for renovations",
		"the innkeeper is at a wedding",
		"hosting a private event",
	},
	village.ServiceGeneralMerchant: {
		"robbed - limited stock today",
		"at the market in the next town",
		"closed for religious holiday",
		"taking a well-deserved rest day",
	},
	village.ServiceTemple: {
		"holding a sacred ceremony",
		"the priests are on a pilgrimage",
		"closed for meditation day",
		"performing an important ritual",
	},
	village.ServiceBlacksmith: {
		"at a wedding in the neighboring village",
		"the forge fire went out - relighting",
		"delivering a large order to the castle",
		"sick with exhaustion from overwork",
	},
	village.ServiceEnchanter: {
		"studying ancient texts in seclusion",
		"meditating to restore magical energy",
		"traveling to a magical convergence point",
		"the enchantments went haywire - cleaning up",
	},
	village.ServiceAlchemist: {
		"the lab exploded - closed for repairs",
		"experimenting with dangerous reagents",
		"gathering ingredients from the swamp",
		"teaching at the university today",
	},
	village.ServiceTrainingGround: {
		"flooded from the storm",
		"being used for military drills",
		"closed for tournament preparation",
		"the trainer is recovering from an injury",
	},
}

// DefaultName is the village name used when the player does not pick one
const DefaultName = "The Village"

// Service defines the village service interface
type Service interface {
	// Create founds a village for a character. One per character.
	Create(ctx context.Context, input *CreateInput) (*village.Village, error)

	// Get retrieves a character's village
	Get(ctx context.Context, characterID string) (*village.Village, error)

	// Update applies roster, name, and event setting changes
	Update(ctx context.Context, input *UpdateInput) (*village.Village, error)

	// RollEvents re-rolls availability for every enabled service
	RollEvents(ctx context.Context, characterID string) (*RollEventsResult, error)

	// Delete removes a character's village
	Delete(ctx context.Context, characterID string) error
}

// CreateInput contains data for founding a village
type CreateInput struct {
	CharacterID         string
	Name                string
	Services            []village.ServiceKind
	RandomEventsEnabled bool
	EventDifficulty     village.EventDifficulty
}

// UpdateInput contains partial village changes. Nil fields are untouched.
type UpdateInput struct {
	CharacterID         string
	Name                *string
	Services            []village.ServiceKind // full roster replacement when non-nil
	RandomEventsEnabled *bool
	EventDifficulty     *village.EventDifficulty
}

// RollEventsResult reports the outcome of an availability roll
type RollEventsResult struct {
	Village             *village.Village
	Unavailable         []village.ServiceKind
	Message             string
	RandomEventsSkipped bool
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository       villages.Repository  // Required
	CharacterService charactersvc.Service // Required
	Random           *rand.Rand           // Optional
}

type service struct {
	repository       villages.Repository
	characterService charactersvc.Service

	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewService creates a new village service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}

	svc := &service{
		repository:       cfg.Repository,
		characterService: cfg.CharacterService,
	}

	if cfg.Random != nil {
		svc.rng = cfg.Random
	} else {
		svc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return svc
}

// Create founds a village for a character
func (s *service) Create(ctx context.Context, input *CreateInput) (*village.Village, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterID == "" {
		return nil, apperrors.Validation("character ID is required")
	}

	exists, err := s.characterService.Exists(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFoundf("character '%s' not found", input.CharacterID)
	}

	difficulty := input.EventDifficulty
	if difficulty == "" {
		difficulty = village.EventDifficultyRealistic
	}
	if !difficulty.Valid() {
		return nil, apperrors.Validationf("invalid event difficulty: %s", difficulty)
	}

	name := input.Name
	if name == "" {
		name = DefaultName
	}

	now := time.Now()
	v := &village.Village{
		CharacterID:         input.CharacterID,
		Name:                name,
		Services:            make(map[village.ServiceKind]*village.ServiceState),
		RandomEventsEnabled: input.RandomEventsEnabled,
		EventDifficulty:     difficulty,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	applyRoster(v, input.Services)

	if err := s.repository.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Get retrieves a character's village
func (s *service) Get(ctx context.Context, characterID string) (*village.Village, error) {
	if characterID == "" {
		return nil, apperrors.InvalidArgument("character ID is required")
	}
	return s.repository.Get(ctx, characterID)
}

// Update applies roster, name, and event setting changes
func (s *service) Update(ctx context.Context, input *UpdateInput) (*village.Village, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	v, err := s.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.Validation("village name cannot be empty")
		}
		v.Name = *input.Name
	}
	if input.EventDifficulty != nil {
		if !input.EventDifficulty.Valid() {
			return nil, apperrors.Validationf("invalid event difficulty: %s", *input.EventDifficulty)
		}
		v.EventDifficulty = *input.EventDifficulty
	}
	if input.RandomEventsEnabled != nil {
		v.RandomEventsEnabled = *input.RandomEventsEnabled
	}
	if input.Services != nil {
		applyRoster(v, input.Services)
	}
	v.UpdatedAt = time.Now()

	if err := s.repository.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// RollEvents re-rolls availability for every enabled service
func (s *service) RollEvents(ctx context.Context, characterID string) (*RollEventsResult, error) {
	v, err := s.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if !v.RandomEventsEnabled {
		return &RollEventsResult{
			Village:             v,
			Message:             "Random events disabled",
			RandomEventsSkipped: true,
		}, nil
	}

	chance := v.EventDifficulty.UnavailableChance()
	for _, kind := range village.AllServiceKinds() {
		state := v.Service(kind)
		if !state.Enabled {
			state.Available = false
			state.Reason = ""
			continue
		}
		if s.roll() < chance {
			state.Available = false
			state.Reason = s.pickReason(kind)
		} else {
			state.Available = true
			state.Reason = ""
		}
	}

	now := time.Now()
	v.LastEventRoll = &now
	v.UpdatedAt = now

	if err := s.repository.Update(ctx, v); err != nil {
		return nil, err
	}

	unavailable := v.UnavailableServices()
	result := &RollEventsResult{
		Village:     v,
		Unavailable: unavailable,
		Message:     "All services are available!",
	}
	if len(unavailable) > 0 {
		result.Message = "Some services are unavailable"
	}
	return result, nil
}

// Delete removes a character's village
func (s *service) Delete(ctx context.Context, characterID string) error {
	if characterID == "" {
		return apperrors.InvalidArgument("character ID is required")
	}
	return s.repository.Delete(ctx, characterID)
}

func (s *service) roll() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

func (s *service) pickReason(kind village.ServiceKind) string {
	reasons := eventReasons[kind]
	if len(reasons) == 0 {
		return "closed today"
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return reasons[s.rng.Intn(len(reasons))]
}

// applyRoster replaces the enabled roster. Services newly enabled start
// available, services dropped from the roster lose their state.
func applyRoster(v *village.Village, roster []village.ServiceKind) {
	enabled := make(map[village.ServiceKind]bool, len(roster))
	for _, kind := range roster {
		enabled[kind] = true
	}
	for _, kind := range village.AllServiceKinds() {
		state := v.Service(kind)
		if enabled[kind] {
			if !state.Enabled {
				state.Enabled = true
				state.Available = true
				state.Reason = ""
			}
		} else {
			state.Enabled = false
			state.Available = false
			state.Reason = ""
		}
	}
}
