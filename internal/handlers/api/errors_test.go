package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	"github.com/darkdepths/darkdepths/internal/handlers/api"
	"github.com/darkdepths/darkdepths/internal/services"
	mockcharacter "github.com/darkdepths/darkdepths/internal/services/character/mock"
	mockdungeon "github.com/darkdepths/darkdepths/internal/services/dungeon/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Internal failures must reach the client as a generic 500, never with
// storage details in the body.
func TestInternalErrorsAreNotLeaked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dungeonService := mockdungeon.NewMockService(ctrl)
	dungeonService.EXPECT().GetDungeon(gomock.Any(), "d-1").
		Return(nil, apperrors.Internal("redis: connection refused at 10.0.0.5"))
	dungeonService.EXPECT().GetRooms(gomock.Any(), "d-1").
		Return(nil, nil).AnyTimes()

	handler := api.NewHandler(&api.HandlerConfig{
		Provider: &services.Provider{DungeonService: dungeonService},
	})

	srv := httptest.NewServer(handler.Routes())
	defer srv.Close()

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/dungeons/d-1", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Internal server error", body["message"])
}

func TestBlockedPathMapsToBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dungeonService := mockdungeon.NewMockService(ctrl)
	dungeonService.EXPECT().Move(gomock.Any(), "char-1", 1, 0).
		Return(nil, apperrors.BlockedPath("a wall blocks the way east"))

	handler := api.NewHandler(&api.HandlerConfig{
		Provider: &services.Provider{DungeonService: dungeonService},
	})

	srv := httptest.NewServer(handler.Routes())
	defer srv.Close()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/dungeons/d-1/move", map[string]any{
		"characterId": "char-1", "x": 1, "y": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"], "wall")
}

func TestCharacterServiceErrorsPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	characterService := mockcharacter.NewMockService(ctrl)
	characterService.EXPECT().LevelUp(gomock.Any(), "char-1").
		Return(nil, apperrors.NotFound("character not found: char-1"))

	handler := api.NewHandler(&api.HandlerConfig{
		Provider: &services.Provider{CharacterService: characterService},
	})

	srv := httptest.NewServer(handler.Routes())
	defer srv.Close()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/characters/char-1/level-up", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}
