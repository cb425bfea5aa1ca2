package api

import (
	"net/http"

	"github.com/darkdepths/darkdepths/internal/domain/dungeon"
	apperrors "github.com/darkdepths/darkdepths/internal/errors"
	dungeonsvc "github.com/darkdepths/darkdepths/internal/services/dungeon"
	"golang.org/x/sync/errgroup"
)

type generateDungeonRequest struct {
	CharacterID string `json:"characterId"`
	Level       int    `json:"level"`
}

func (h *Handler) generateDungeon(w http.ResponseWriter, r *http.Request) {
	var req generateDungeonRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.Level == 0 {
		req.Level = 1
	}

	d, err := h.provider.DungeonService.Generate(r.Context(), &dungeonsvc.GenerateInput{
		CharacterID: req.CharacterID,
		Width:       h.dungeonWidth,
		Height:      h.dungeonHeight,
		Level:       req.Level,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	rooms, err := h.provider.DungeonService.GetRooms(r.Context(), d.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, map[string]any{
		"dungeon": d,
		"rooms":   rooms,
	})
}

func (h *Handler) getDungeon(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// The client renders the frame and the grid together, so fetch both at once.
	var (
		d     *dungeon.Dungeon
		rooms []*dungeon.Room
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		d, err = h.provider.DungeonService.GetDungeon(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		rooms, err = h.provider.DungeonService.GetRooms(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"dungeon": d,
		"rooms":   rooms,
	})
}

type moveRequest struct {
	CharacterID string `json:"characterId"`
	X           *int   `json:"x"`
	Y           *int   `json:"y"`
}

func (h *Handler) moveToRoom(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.CharacterID == "" || req.X == nil || req.Y == nil {
		respondError(w, r, apperrors.Validation("characterId, x, and y are required"))
		return
	}

	room, err := h.provider.DungeonService.Move(r.Context(), req.CharacterID, *req.X, *req.Y)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"room": room})
}

func (h *Handler) getCurrentRoom(w http.ResponseWriter, r *http.Request) {
	characterID := r.URL.Query().Get("characterId")
	if characterID == "" {
		respondError(w, r, apperrors.Validation("characterId query parameter is required"))
		return
	}

	room, err := h.provider.DungeonService.GetCurrentRoom(r.Context(), characterID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"room": room})
}

type levelTransitionRequest struct {
	CharacterID string `json:"characterId"`
}

func (h *Handler) descendLevel(w http.ResponseWriter, r *http.Request) {
	var req levelTransitionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	d, err := h.provider.DungeonService.Descend(r.Context(), req.CharacterID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	rooms, err := h.provider.DungeonService.GetRooms(r.Context(), d.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, map[string]any{
		"dungeon": d,
		"rooms":   rooms,
	})
}

func (h *Handler) ascendLevel(w http.ResponseWriter, r *http.Request) {
	var req levelTransitionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	d, err := h.provider.DungeonService.Ascend(r.Context(), req.CharacterID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	rooms, err := h.provider.DungeonService.GetRooms(r.Context(), d.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"dungeon": d,
		"rooms":   rooms,
	})
}
