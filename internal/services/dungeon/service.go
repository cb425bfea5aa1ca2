package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=mockdungeon -source=service.go

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/darkdepths/darkdepths/internal/domain/character"
	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/darkdepths/darkdepths/internal/maze"
	"github.com/darkdepths/darkdepths/internal/repositories/dungeons"
	charactersvc "github.com/darkdepths/darkdepths/internal/services/character"
	"github.com/darkdepths/darkdepths/internal/uuid"
)

// Service drives a character through dungeon levels. It owns generation,
// movement, and the descend/ascend transitions between levels.
type Service interface {
	// Generate carves a new dungeon instance for a character and places the
	// character at the entrance
	Generate(ctx context.Context, input *GenerateInput) (*dungeon.Dungeon, error)

	// Move steps the character to an adjacent room
	Move(ctx context.Context, characterID string, x, y int) (*dungeon.Room, error)

	// Descend generates the next level down from an exit room
	Descend(ctx context.Context, characterID string) (*dungeon.Dungeon, error)

	// Ascend returns to the previous level from an entrance room
	Ascend(ctx context.Context, characterID string) (*dungeon.Dungeon, error)

	// GetDungeon retrieves a dungeon by ID
	GetDungeon(ctx context.Context, dungeonID string) (*dungeon.Dungeon, error)

	// GetRooms retrieves every room of a dungeon in row-major order
	GetRooms(ctx context.Context, dungeonID string) ([]*dungeon.Room, error)

	// GetCurrentRoom retrieves the room the character currently occupies
	GetCurrentRoom(ctx context.Context, characterID string) (*dungeon.Room, error)
}

// GenerateInput contains data for generating a dungeon
type GenerateInput struct {
	CharacterID string
	Width       int
	Height      int
	Level       int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository       dungeons.Repository  // Required
	CharacterService charactersvc.Service // Required
	UUIDGenerator    uuid.Generator       // Optional
	Random           *rand.Rand           // Optional, seeded from the clock when absent
}

type service struct {
	repository       dungeons.Repository
	characterService charactersvc.Service
	uuidGenerator    uuid.Generator

	// rng is shared and not goroutine safe, so every draw goes through rngMu
	rng   *rand.Rand
	rngMu sync.Mutex

	// charLocks serializes the mutating operations per character
	charLocks sync.Map // characterID → *sync.Mutex
}

// NewService creates a new dungeon service
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

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	if cfg.Random != nil {
		svc.rng = cfg.Random
	} else {
		svc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return svc
}

// lockCharacter takes the per-character mutex, creating it on first use
func (s *service) lockCharacter(characterID string) func() {
	muIface, _ := s.charLocks.LoadOrStore(characterID, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// childRand derives an independent generator so a long carve does not hold
// the shared rng lock
func (s *service) childRand() *rand.Rand {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

// Generate carves a new dungeon instance for a character
func (s *service) Generate(ctx context.Context, input *GenerateInput) (*dungeon.Dungeon, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterID == "" {
		return nil, apperrors.Validation("character ID is required")
	}

	unlock := s.lockCharacter(input.CharacterID)
	defer unlock()

	return s.generateLocked(ctx, input, "")
}

// generateLocked is the generation path shared by Generate and Descend.
// Callers must hold the character lock.
func (s *service) generateLocked(ctx context.Context, input *GenerateInput, parentID string) (*dungeon.Dungeon, error) {
	if input.Level < 1 {
		return nil, apperrors.Validationf("level must be at least 1, got %d", input.Level)
	}

	exists, err := s.characterService.Exists(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Validationf("character '%s' does not exist", input.CharacterID)
	}

	rng := s.childRand()
	grid, err := maze.Carve(input.Width, input.Height, rng)
	if err != nil {
		return nil, err
	}
	maze.AssignRoomTypes(grid, input.Level, rng)

	d := &dungeon.Dungeon{
		ID:          s.uuidGenerator.New(),
		CharacterID: input.CharacterID,
		ParentID:    parentID,
		Name:        dungeon.DefaultName(input.Level),
		Level:       input.Level,
		Difficulty:  input.Level,
		Width:       input.Width,
		Height:      input.Height,
		ExitX:       input.Width - 1,
		ExitY:       input.Height - 1,
		CreatedAt:   time.Now(),
	}

	rooms := grid.Rooms()
	for _, room := range rooms {
		room.DungeonID = d.ID
	}
	// The entrance is known territory from the moment the level exists.
	entrance := grid.At(0, 0)
	entrance.Explored = true
	entrance.Visible = true

	if err := s.repository.CreateWithRooms(ctx, d, rooms); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist dungeon").
			WithMeta("dungeon_id", d.ID)
	}

	if err := s.characterService.SetPosition(ctx, input.CharacterID, d.ID, 0, 0); err != nil {
		return nil, apperrors.Wrap(err, "failed to place character at entrance")
	}

	return d, nil
}

// Move steps the character to an adjacent room
func (s *service) Move(ctx context.Context, characterID string, x, y int) (*dungeon.Room, error) {
	if characterID == "" {
		return nil, apperrors.Validation("character ID is required")
	}

	unlock := s.lockCharacter(characterID)
	defer unlock()

	char, err := s.characterService.Get(ctx, characterID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Validationf("character '%s' does not exist", characterID)
		}
		return nil, err
	}
	if !char.InDungeon() {
		return nil, apperrors.PreconditionFailed("character is not in a dungeon")
	}

	d, err := s.repository.Get(ctx, char.CurrentDungeonID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load current dungeon")
	}
	if !d.Contains(x, y) {
		return nil, apperrors.Validationf("room (%d,%d) out of bounds for %dx%d dungeon",
			x, y, d.Width, d.Height)
	}

	dir, ok := dungeon.DirectionOf(char.CurrentRoomX, char.CurrentRoomY, x, y)
	if !ok {
		return nil, apperrors.Validationf("room (%d,%d) is not adjacent to (%d,%d)",
			x, y, char.CurrentRoomX, char.CurrentRoomY)
	}

	current, err := s.repository.GetRoom(ctx, d.ID, char.CurrentRoomX, char.CurrentRoomY)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "current room missing from store")
	}
	if current.Wall(dir) {
		return nil, apperrors.BlockedPathf("a wall blocks the way %s", dir)
	}

	// Bounds and adjacency are already proven, so the target room must be in
	// the store; any failure here is corruption, not a client mistake.
	if err := s.repository.MarkVisited(ctx, d.ID, x, y); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to mark room visited")
	}
	if err := s.characterService.SetPosition(ctx, characterID, d.ID, x, y); err != nil {
		return nil, apperrors.Wrap(err, "failed to update character position")
	}

	target, err := s.repository.GetRoom(ctx, d.ID, x, y)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "target room missing from store")
	}
	return target, nil
}

// Descend generates the next level down from an exit room
func (s *service) Descend(ctx context.Context, characterID string) (*dungeon.Dungeon, error) {
	if characterID == "" {
		return nil, apperrors.Validation("character ID is required")
	}

	unlock := s.lockCharacter(characterID)
	defer unlock()

	_, d, room, err := s.currentRoomLocked(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if room.Type != dungeon.RoomTypeExit {
		return nil, apperrors.PreconditionFailed("character must stand on the exit to descend")
	}

	// The parent link lets ascend retrace the exact path even when several
	// instances share a depth.
	return s.generateLocked(ctx, &GenerateInput{
		CharacterID: characterID,
		Width:       d.Width,
		Height:      d.Height,
		Level:       d.Level + 1,
	}, d.ID)
}

// Ascend returns to the previous level from an entrance room
func (s *service) Ascend(ctx context.Context, characterID string) (*dungeon.Dungeon, error) {
	if characterID == "" {
		return nil, apperrors.Validation("character ID is required")
	}

	unlock := s.lockCharacter(characterID)
	defer unlock()

	_, d, room, err := s.currentRoomLocked(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if room.Type != dungeon.RoomTypeEntrance {
		return nil, apperrors.PreconditionFailed("character must stand on the entrance to ascend")
	}
	if d.Level <= 1 {
		return nil, apperrors.PreconditionFailed("already at the top level")
	}

	var parent *dungeon.Dungeon
	if d.ParentID != "" {
		parent, err = s.repository.Get(ctx, d.ParentID)
	} else {
		parent, err = s.repository.FindByCharacterAndLevel(ctx, characterID, d.Level-1)
	}
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound("no previous level recorded")
		}
		return nil, err
	}

	// The character reappears on the exit it descended through. The stored
	// exit coordinate must exist in the parent grid; failure is corruption.
	if err := s.repository.MarkVisited(ctx, parent.ID, parent.ExitX, parent.ExitY); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to mark exit room visited")
	}
	if err := s.characterService.SetPosition(ctx, characterID, parent.ID, parent.ExitX, parent.ExitY); err != nil {
		return nil, apperrors.Wrap(err, "failed to reposition character")
	}

	return parent, nil
}

// GetDungeon retrieves a dungeon by ID
func (s *service) GetDungeon(ctx context.Context, dungeonID string) (*dungeon.Dungeon, error) {
	if dungeonID == "" {
		return nil, apperrors.InvalidArgument("dungeon ID is required")
	}
	return s.repository.Get(ctx, dungeonID)
}

// GetRooms retrieves every room of a dungeon
func (s *service) GetRooms(ctx context.Context, dungeonID string) ([]*dungeon.Room, error) {
	if dungeonID == "" {
		return nil, apperrors.InvalidArgument("dungeon ID is required")
	}
	return s.repository.GetRooms(ctx, dungeonID)
}

// GetCurrentRoom retrieves the room the character currently occupies
func (s *service) GetCurrentRoom(ctx context.Context, characterID string) (*dungeon.Room, error) {
	if characterID == "" {
		return nil, apperrors.Validation("character ID is required")
	}
	_, _, room, err := s.currentRoomLocked(ctx, characterID)
	return room, err
}

// currentRoomLocked resolves the character, its dungeon, and its room
func (s *service) currentRoomLocked(ctx context.Context, characterID string) (*character.Character, *dungeon.Dungeon, *dungeon.Room, error) {
	c, err := s.characterService.Get(ctx, characterID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, nil, apperrors.Validationf("character '%s' does not exist", characterID)
		}
		return nil, nil, nil, err
	}
	if !c.InDungeon() {
		return nil, nil, nil, apperrors.PreconditionFailed("character is not in a dungeon")
	}

	d, err := s.repository.Get(ctx, c.CurrentDungeonID)
	if err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "failed to load current dungeon")
	}

	room, err := s.repository.GetRoom(ctx, d.ID, c.CurrentRoomX, c.CurrentRoomY)
	if err != nil {
		return nil, nil, nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "current room missing from store")
	}

	return c, d, room, nil
}
