// Package api exposes the game over HTTP with a JSON envelope matching the
// browser client's expectations.
package api

import (
	"net/http"

	"github.com/darkdepths/darkdepths/internal/services"
)

// Handler routes API requests to the game services
type Handler struct {
	provider *services.Provider

	// default grid dimensions for generated dungeons
	dungeonWidth  int
	dungeonHeight int
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	Provider      *services.Provider // Required
	DungeonWidth  int
	DungeonHeight int
}

// NewHandler creates a new API handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.Provider == nil {
		panic("provider is required")
	}

	width := cfg.DungeonWidth
	if width == 0 {
		width = 20
	}
	height := cfg.DungeonHeight
	if height == 0 {
		height = 20
	}

	return &Handler{
		provider:      cfg.Provider,
		dungeonWidth:  width,
		dungeonHeight: height,
	}
}

// Routes builds the full route table
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health)

	// Characters
	mux.HandleFunc("POST /api/characters", h.createCharacter)
	mux.HandleFunc("GET /api/characters", h.listCharacters)
	mux.HandleFunc("GET /api/characters/{id}", h.getCharacter)
	mux.HandleFunc("DELETE /api/characters/{id}", h.deleteCharacter)
	mux.HandleFunc("POST /api/characters/{id}/level-up", h.levelUpCharacter)
	mux.HandleFunc("POST /api/characters/{id}/spend-upgrade-points", h.spendUpgradePoints)

	// Dungeons
	mux.HandleFunc("POST /api/dungeons/generate", h.generateDungeon)
	mux.HandleFunc("GET /api/dungeons/{id}", h.getDungeon)
	mux.HandleFunc("POST /api/dungeons/{id}/move", h.moveToRoom)
	mux.HandleFunc("GET /api/dungeons/{id}/current-room", h.getCurrentRoom)
	mux.HandleFunc("POST /api/dungeons/{id}/descend", h.descendLevel)
	mux.HandleFunc("POST /api/dungeons/{id}/ascend", h.ascendLevel)

	// Villages
	mux.HandleFunc("POST /api/villages", h.createVillage)
	mux.HandleFunc("GET /api/villages/{characterId}", h.getVillage)
	mux.HandleFunc("PATCH /api/villages/{characterId}", h.updateVillage)
	mux.HandleFunc("DELETE /api/villages/{characterId}", h.deleteVillage)
	mux.HandleFunc("POST /api/villages/{characterId}/roll-events", h.rollVillageEvents)

	// Systems still under construction
	mux.HandleFunc("POST /api/combat/start", h.combatComingSoon)
	mux.HandleFunc("GET /api/combat/{id}", h.combatComingSoon)
	mux.HandleFunc("POST /api/combat/{id}/action", h.combatComingSoon)
	mux.HandleFunc("POST /api/combat/{id}/end", h.combatComingSoon)
	mux.HandleFunc("GET /api/inventory/{characterId}", h.inventoryComingSoon)
	mux.HandleFunc("POST /api/inventory/{characterId}/add-item", h.inventoryComingSoon)
	mux.HandleFunc("POST /api/inventory/{characterId}/remove-item", h.inventoryComingSoon)
	mux.HandleFunc("POST /api/inventory/{characterId}/equip", h.inventoryComingSoon)
	mux.HandleFunc("POST /api/inventory/{characterId}/unequip", h.inventoryComingSoon)
	mux.HandleFunc("POST /api/inventory/{characterId}/use-item", h.inventoryComingSoon)

	return mux
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Dungeon crawler backend is running!",
	})
}
