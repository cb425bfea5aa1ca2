package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkdepths/darkdepths/internal/handlers/api"
	"github.com/darkdepths/darkdepths/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	provider := services.NewProvider(&services.ProviderConfig{
		Random: rand.New(rand.NewSource(11)),
	})
	handler := api.NewHandler(&api.HandlerConfig{
		Provider:      provider,
		DungeonWidth:  6,
		DungeonHeight: 6,
	})

	srv := httptest.NewServer(handler.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func createCharacter(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/characters", map[string]any{
		"name":  "Tester",
		"race":  "HUMAN",
		"class": "WARRIOR",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	char := body["data"].(map[string]any)["character"].(map[string]any)
	return char["id"].(string)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestCharacterEndpoints(t *testing.T) {
	srv := newTestServer(t)

	id := createCharacter(t, srv)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/characters/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	char := body["data"].(map[string]any)["character"].(map[string]any)
	assert.Equal(t, "Tester", char["name"])
	assert.Equal(t, float64(100), char["max_health"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/characters", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	chars := body["data"].(map[string]any)["characters"].([]any)
	assert.Len(t, chars, 1)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/characters/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", body["status"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/characters", map[string]any{
		"name": "Bad", "race": "GNOME", "class": "WARRIOR",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCharacterProgressionEndpoints(t *testing.T) {
	srv := newTestServer(t)
	id := createCharacter(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/characters/"+id+"/level-up", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	char := body["data"].(map[string]any)["character"].(map[string]any)
	assert.Equal(t, float64(2), char["level"])
	assert.Greater(t, char["upgrade_points"].(float64), float64(0))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/characters/"+id+"/spend-upgrade-points", map[string]any{
		"type": "skill", "name": "dodgeSkill", "points": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	char = body["data"].(map[string]any)["character"].(map[string]any)
	skills := char["skills"].(map[string]any)
	assert.Equal(t, float64(11), skills["dodgeSkill"])
}

func TestDungeonFlow(t *testing.T) {
	srv := newTestServer(t)
	charID := createCharacter(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/dungeons/generate", map[string]any{
		"characterId": charID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	d := data["dungeon"].(map[string]any)
	rooms := data["rooms"].([]any)
	assert.Equal(t, "The Dark Depths - Level 1", d["name"])
	assert.Len(t, rooms, 36)

	dungeonID := d["id"].(string)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/dungeons/"+dungeonID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].(map[string]any)["rooms"].([]any), 36)

	resp, body = doJSON(t, http.MethodGet,
		fmt.Sprintf("%s/api/dungeons/%s/current-room?characterId=%s", srv.URL, dungeonID, charID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	room := body["data"].(map[string]any)["room"].(map[string]any)
	assert.Equal(t, "ENTRANCE", room["type"])

	// Find the entrance's open side and move through it.
	var targetX, targetY float64
	found := false
	if !room["south_wall"].(bool) {
		targetX, targetY, found = 0, 1, true
	} else if !room["east_wall"].(bool) {
		targetX, targetY, found = 1, 0, true
	}
	require.True(t, found)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/dungeons/"+dungeonID+"/move", map[string]any{
		"characterId": charID, "x": targetX, "y": targetY,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	moved := body["data"].(map[string]any)["room"].(map[string]any)
	assert.Equal(t, true, moved["explored"])

	// A far-away jump is rejected.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/dungeons/"+dungeonID+"/move", map[string]any{
		"characterId": charID, "x": 5, "y": 5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body["status"])

	// Descending away from the exit is refused.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/dungeons/"+dungeonID+"/descend", map[string]any{
		"characterId": charID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVillageEndpoints(t *testing.T) {
	srv := newTestServer(t)
	charID := createCharacter(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/villages", map[string]any{
		"characterId":         charID,
		"services":            []string{"tavern", "temple"},
		"randomEventsEnabled": true,
		"eventDifficulty":     "RELIABLE",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	v := body["data"].(map[string]any)["village"].(map[string]any)
	assert.Equal(t, "The Village", v["name"])

	// Second village for the same character is refused.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/villages", map[string]any{
		"characterId": charID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/villages/"+charID+"/roll-events", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "All services are available!", body["message"])

	name := "Riverbend"
	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/api/villages/"+charID, map[string]any{
		"name": name,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = body["data"].(map[string]any)["village"].(map[string]any)
	assert.Equal(t, name, v["name"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/villages/"+charID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/villages/"+charID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestComingSoonStubs(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/combat/start", map[string]any{})
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	assert.Equal(t, "Combat system coming soon!", body["message"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/inventory/someone", nil)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	assert.Equal(t, "Inventory system coming soon!", body["message"])
}
