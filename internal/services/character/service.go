package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"time"

	"github.com/darkdepths/darkdepths/internal/domain/character"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/darkdepths/darkdepths/internal/repositories/characters"
	"github.com/darkdepths/darkdepths/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service defines the character service interface
type Service interface {
	// Create creates a new character from a race/class selection
	Create(ctx context.Context, input *CreateInput) (*character.Character, error)

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// Exists reports whether a character exists
	Exists(ctx context.Context, id string) (bool, error)

	// List retrieves all characters, newest first
	List(ctx context.Context) ([]*character.Character, error)

	// SetPosition moves a character to a dungeon coordinate
	SetPosition(ctx context.Context, characterID, dungeonID string, x, y int) error

	// ClearPosition removes a character from its dungeon (return to surface)
	ClearPosition(ctx context.Context, characterID string) error

	// LevelUp advances a character one level, granting upgrade points
	LevelUp(ctx context.Context, id string) (*character.Character, error)

	// SpendUpgradePoints spends points on a stat or skill
	SpendUpgradePoints(ctx context.Context, input *SpendUpgradePointsInput) (*character.Character, error)

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}

// CreateInput contains data for creating a character
type CreateInput struct {
	Name      string
	Race      character.Race
	Class     character.Class
	BaseStats *character.Stats // optional, defaults to the standard block
}

// UpgradeKind selects what an upgrade purchase applies to
type UpgradeKind string

const (
	UpgradeKindStat  UpgradeKind = "stat"
	UpgradeKindSkill UpgradeKind = "skill"
)

// SpendUpgradePointsInput contains data for an upgrade purchase
type SpendUpgradePointsInput struct {
	CharacterID string
	Kind        UpgradeKind
	Name        string
	Points      int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional
}

// service implements the Service interface
type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// Create creates a new character from a race/class selection
func (s *service) Create(ctx context.Context, input *CreateInput) (*character.Character, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if input.Name == "" {
		return nil, apperrors.Validation("name is required")
	}

	stats, ok := character.StartingStats(input.Race, input.Class, input.BaseStats)
	if !ok {
		if _, raceOK := character.RaceByKey(input.Race); !raceOK {
			return nil, apperrors.Validationf("invalid race: %s", input.Race)
		}
		return nil, apperrors.Validationf("invalid class: %s", input.Class)
	}

	skills, _ := character.StartingSkills(input.Class)

	now := time.Now()
	char := &character.Character{
		ID:             s.uuidGenerator.New(),
		Name:           input.Name,
		Race:           input.Race,
		Class:          input.Class,
		Stats:          stats,
		Skills:         skills,
		Level:          1,
		Health:         character.StartingHealth,
		MaxHealth:      character.StartingHealth,
		Mana:           character.StartingMana,
		MaxMana:        character.StartingMana,
		Gold:           character.StartingGold,
		InventorySlots: character.DefaultInventorySlots,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, apperrors.Wrap(err, "failed to create character").
			WithMeta("character_id", char.ID)
	}
	return char, nil
}

// Get retrieves a character by ID
func (s *service) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("character ID is required")
	}
	return s.repository.Get(ctx, id)
}

// Exists reports whether a character exists
func (s *service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List retrieves all characters
func (s *service) List(ctx context.Context) ([]*character.Character, error) {
	return s.repository.List(ctx)
}

// SetPosition moves a character to a dungeon coordinate
func (s *service) SetPosition(ctx context.Context, characterID, dungeonID string, x, y int) error {
	if characterID == "" {
		return apperrors.InvalidArgument("character ID is required")
	}
	if dungeonID == "" {
		return apperrors.InvalidArgument("dungeon ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return err
	}

	char.CurrentDungeonID = dungeonID
	char.CurrentRoomX = x
	char.CurrentRoomY = y
	char.UpdatedAt = time.Now()

	return s.repository.Update(ctx, char)
}

// ClearPosition removes a character from its dungeon
func (s *service) ClearPosition(ctx context.Context, characterID string) error {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return err
	}

	char.CurrentDungeonID = ""
	char.CurrentRoomX = 0
	char.CurrentRoomY = 0
	char.UpdatedAt = time.Now()

	return s.repository.Update(ctx, char)
}

// LevelUp advances a character one level. Upgrade points gained scale with
// intelligence and willpower, and resources are fully restored.
func (s *service) LevelUp(ctx context.Context, id string) (*character.Character, error) {
	char, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pointsGained := (char.Stats.Intelligence + char.Stats.Willpower) / 4

	char.Level++
	char.UpgradePoints += pointsGained
	char.MaxHealth += 10
	char.MaxMana += 5
	char.Health = char.MaxHealth
	char.Mana = char.MaxMana
	char.Stats = char.Stats.Add(character.Stats{
		WeaponSkill: 2, BallisticSkill: 2,
		Strength: 1, Toughness: 1, Initiative: 1, Agility: 1, Dexterity: 1,
		Intelligence: 1, Willpower: 1, Fellowship: 1,
	})
	char.UpdatedAt = time.Now()

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, apperrors.Wrapf(err, "failed to level up character '%s'", id)
	}
	return char, nil
}

// SpendUpgradePoints spends points on a stat or skill
func (s *service) SpendUpgradePoints(ctx context.Context, input *SpendUpgradePointsInput) (*character.Character, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterID == "" || input.Name == "" || input.Points < 1 {
		return nil, apperrors.Validation("valid character ID, name, and positive points amount required")
	}

	var costFactor int
	switch input.Kind {
	case UpgradeKindStat:
		costFactor = character.UpgradeStatCostFactor
	case UpgradeKindSkill:
		costFactor = character.UpgradeSkillCostFactor
	default:
		return nil, apperrors.Validation("type must be 'stat' or 'skill'")
	}

	char, err := s.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	totalCost := input.Points * costFactor
	if char.UpgradePoints < totalCost {
		return nil, apperrors.Validationf("not enough upgrade points: available %d, required %d",
			char.UpgradePoints, totalCost)
	}

	switch input.Kind {
	case UpgradeKindStat:
		stat, ok := character.StatByName(&char.Stats, input.Name)
		if !ok {
			return nil, apperrors.Validationf("invalid stat name: %s", input.Name)
		}
		*stat += input.Points
	case UpgradeKindSkill:
		if !character.ValidSkill(input.Name) {
			return nil, apperrors.Validationf("invalid skill name: %s", input.Name)
		}
		if char.Skills == nil {
			char.Skills = make(character.Skills)
		}
		char.Skills[character.Skill(input.Name)] += input.Points
	}

	char.UpgradePoints -= totalCost
	char.UpdatedAt = time.Now()

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, apperrors.Wrapf(err, "failed to update character '%s'", input.CharacterID)
	}
	return char, nil
}

// Delete removes a character
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("character ID is required")
	}
	return s.repository.Delete(ctx, id)
}
