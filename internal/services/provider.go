package services

import (
	"math/rand"

	"github.com/darkdepths/darkdepths/internal/repositories/characters"
	"github.com/darkdepths/darkdepths/internal/repositories/dungeons"
	"github.com/darkdepths/darkdepths/internal/repositories/villages"
	characterService "github.com/darkdepths/darkdepths/internal/services/character"
	dungeonService "github.com/darkdepths/darkdepths/internal/services/dungeon"
	villageService "github.com/darkdepths/darkdepths/internal/services/village"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	DungeonService   dungeonService.Service
	VillageService   villageService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	DungeonRepository   dungeons.Repository
	VillageRepository   villages.Repository
	Random              *rand.Rand
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	dungeonRepo := cfg.DungeonRepository
	if dungeonRepo == nil {
		dungeonRepo = dungeons.NewInMemoryRepository()
	}

	villageRepo := cfg.VillageRepository
	if villageRepo == nil {
		villageRepo = villages.NewInMemoryRepository()
	}

	// Each service owns its generator; sharing one across services would
	// put two locks in front of the same rand.Rand.
	var dungeonRand, villageRand *rand.Rand
	if cfg.Random != nil {
		dungeonRand = rand.New(rand.NewSource(cfg.Random.Int63()))
		villageRand = rand.New(rand.NewSource(cfg.Random.Int63()))
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Repository: charRepo,
	})

	dungService := dungeonService.NewService(&dungeonService.ServiceConfig{
		Repository:       dungeonRepo,
		CharacterService: charService,
		Random:           dungeonRand,
	})

	villService := villageService.NewService(&villageService.ServiceConfig{
		Repository:       villageRepo,
		CharacterService: charService,
		Random:           villageRand,
	})

	return &Provider{
		CharacterService: charService,
		DungeonService:   dungService,
		VillageService:   villService,
	}
}
