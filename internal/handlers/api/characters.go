package api

import (
	"net/http"

	"github.com/darkdepths/darkdepths/internal/domain/character"
	charsvc "github.com/darkdepths/darkdepths/internal/services/character"
)

type createCharacterRequest struct {
	Name      string           `json:"name"`
	Race      character.Race   `json:"race"`
	Class     character.Class  `json:"class"`
	BaseStats *character.Stats `json:"baseStats,omitempty"`
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var req createCharacterRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	char, err := h.provider.CharacterService.Create(r.Context(), &charsvc.CreateInput{
		Name:      req.Name,
		Race:      req.Race,
		Class:     req.Class,
		BaseStats: req.BaseStats,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, map[string]any{"character": char})
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	chars, err := h.provider.CharacterService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if chars == nil {
		chars = []*character.Character{}
	}
	respondData(w, http.StatusOK, map[string]any{"characters": chars})
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	char, err := h.provider.CharacterService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"character": char})
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	if err := h.provider.CharacterService.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "Character deleted", nil)
}

func (h *Handler) levelUpCharacter(w http.ResponseWriter, r *http.Request) {
	char, err := h.provider.CharacterService.LevelUp(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"character": char})
}

type spendUpgradePointsRequest struct {
	Type   string `json:"type"` // "stat" or "skill"
	Name   string `json:"name"`
	Points int    `json:"points"`
}

func (h *Handler) spendUpgradePoints(w http.ResponseWriter, r *http.Request) {
	var req spendUpgradePointsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	char, err := h.provider.CharacterService.SpendUpgradePoints(r.Context(), &charsvc.SpendUpgradePointsInput{
		CharacterID: r.PathValue("id"),
		Kind:        charsvc.UpgradeKind(req.Type),
		Name:        req.Name,
		Points:      req.Points,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"character": char})
}
