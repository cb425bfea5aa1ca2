package village_test

import (
	"context"
	"math/rand"
	"testing"

	domainchar "github.com/darkdepths/darkdepths/internal/domain/character"
	domain "github.com/darkdepths/darkdepths/internal/domain/village"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/darkdepths/darkdepths/internal/repositories/characters"
	"github.com/darkdepths/darkdepths/internal/repositories/villages"
	charsvc "github.com/darkdepths/darkdepths/internal/services/character"
	villagesvc "github.com/darkdepths/darkdepths/internal/services/village"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (villagesvc.Service, string) {
	t.Helper()

	charSvc := charsvc.NewService(&charsvc.ServiceConfig{
		Repository: characters.NewInMemoryRepository(),
	})
	svc := villagesvc.NewService(&villagesvc.ServiceConfig{
		Repository:       villages.NewInMemoryRepository(),
		CharacterService: charSvc,
		Random:           rand.New(rand.NewSource(99)),
	})

	char, err := charSvc.Create(context.Background(), &charsvc.CreateInput{
		Name: "Mayor", Race: domainchar.RaceHuman, Class: domainchar.ClassCleric,
	})
	require.NoError(t, err)

	return svc, char.ID
}

func TestVillageService_Create(t *testing.T) {
	svc, charID := newTestService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, &villagesvc.CreateInput{
		CharacterID: charID,
		Services:    []domain.ServiceKind{domain.ServiceTavern, domain.ServiceBlacksmith},
	})
	require.NoError(t, err)
	assert.Equal(t, "The Village", v.Name)
	assert.Equal(t, domain.EventDifficultyRealistic, v.EventDifficulty)
	assert.True(t, v.Service(domain.ServiceTavern).Enabled)
	assert.True(t, v.Service(domain.ServiceTavern).Available)
	assert.False(t, v.Service(domain.ServiceTemple).Enabled)

	// One village per character.
	_, err = svc.Create(ctx, &villagesvc.CreateInput{CharacterID: charID})
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))
}

func TestVillageService_Create_Rejections(t *testing.T) {
	svc, charID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &villagesvc.CreateInput{CharacterID: "ghost"})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Create(ctx, &villagesvc.CreateInput{
		CharacterID:     charID,
		EventDifficulty: "IMPOSSIBLE",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestVillageService_Update(t *testing.T) {
	svc, charID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &villagesvc.CreateInput{
		CharacterID: charID,
		Services:    []domain.ServiceKind{domain.ServiceTavern},
	})
	require.NoError(t, err)

	name := "Oakshade"
	enabled := true
	difficulty := domain.EventDifficultyChaotic
	v, err := svc.Update(ctx, &villagesvc.UpdateInput{
		CharacterID:         charID,
		Name:                &name,
		Services:            []domain.ServiceKind{domain.ServiceTemple, domain.ServiceAlchemist},
		RandomEventsEnabled: &enabled,
		EventDifficulty:     &difficulty,
	})
	require.NoError(t, err)
	assert.Equal(t, "Oakshade", v.Name)
	assert.True(t, v.RandomEventsEnabled)
	assert.Equal(t, domain.EventDifficultyChaotic, v.EventDifficulty)
	assert.True(t, v.Service(domain.ServiceTemple).Enabled)
	assert.False(t, v.Service(domain.ServiceTavern).Enabled)
}

func TestVillageService_RollEvents_DisabledIsNoOp(t *testing.T) {
	svc, charID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &villagesvc.CreateInput{
		CharacterID: charID,
		Services:    []domain.ServiceKind{domain.ServiceTavern},
	})
	require.NoError(t, err)

	result, err := svc.RollEvents(ctx, charID)
	require.NoError(t, err)
	assert.True(t, result.RandomEventsSkipped)
	assert.Nil(t, result.Village.LastEventRoll)
}

func TestVillageService_RollEvents_ReliableNeverDisables(t *testing.T) {
	svc, charID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &villagesvc.CreateInput{
		CharacterID:         charID,
		Services:            domain.AllServiceKinds(),
		RandomEventsEnabled: true,
		EventDifficulty:     domain.EventDifficultyReliable,
	})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		result, err := svc.RollEvents(ctx, charID)
		require.NoError(t, err)
		assert.Empty(t, result.Unavailable)
		assert.Equal(t, "All services are available!", result.Message)
		assert.NotNil(t, result.Village.LastEventRoll)
	}
}

func TestVillageService_RollEvents_ChaoticEventuallyDisables(t *testing.T) {
	svc, charID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &villagesvc.CreateInput{
		CharacterID:         charID,
		Services:            domain.AllServiceKinds(),
		RandomEventsEnabled: true,
		EventDifficulty:     domain.EventDifficultyChaotic,
	})
	require.NoError(t, err)

	// At a 35% per-service chance across ten services, twenty rolls without
	// a single outage would be astronomically unlikely.
	sawOutage := false
	for i := 0; i < 20 && !sawOutage; i++ {
		result, err := svc.RollEvents(ctx, charID)
		require.NoError(t, err)
		for _, kind := range result.Unavailable {
			sawOutage = true
			state := result.Village.Service(kind)
			assert.True(t, state.Enabled)
			assert.False(t, state.Available)
			assert.NotEmpty(t, state.Reason)
		}
	}
	assert.True(t, sawOutage)
}

func TestVillageService_RollEvents_DisabledServicesNeverRollAvailable(t *testing.T) {
	svc, charID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &villagesvc.CreateInput{
		CharacterID:         charID,
		Services:            []domain.ServiceKind{domain.ServiceTavern},
		RandomEventsEnabled: true,
		EventDifficulty:     domain.EventDifficultyReliable,
	})
	require.NoError(t, err)

	result, err := svc.RollEvents(ctx, charID)
	require.NoError(t, err)

	for _, kind := range domain.AllServiceKinds() {
		state := result.Village.Service(kind)
		if kind == domain.ServiceTavern {
			assert.True(t, state.Available)
		} else {
			assert.False(t, state.Available)
		}
	}
}

func TestVillageService_Delete(t *testing.T) {
	svc, charID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &villagesvc.CreateInput{CharacterID: charID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, charID))

	_, err = svc.Get(ctx, charID)
	assert.True(t, apperrors.IsNotFound(err))
}
