package api

import (
	"net/http"

	"github.com/darkdepths/darkdepths/internal/domain/village"
	villagesvc "github.com/darkdepths/darkdepths/internal/services/village"
)

type createVillageRequest struct {
	CharacterID         string                  `json:"characterId"`
	Name                string                  `json:"name"`
	Services            []village.ServiceKind   `json:"services"`
	RandomEventsEnabled bool                    `json:"randomEventsEnabled"`
	EventDifficulty     village.EventDifficulty `json:"eventDifficulty"`
}

func (h *Handler) createVillage(w http.ResponseWriter, r *http.Request) {
	var req createVillageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	v, err := h.provider.VillageService.Create(r.Context(), &villagesvc.CreateInput{
		CharacterID:         req.CharacterID,
		Name:                req.Name,
		Services:            req.Services,
		RandomEventsEnabled: req.RandomEventsEnabled,
		EventDifficulty:     req.EventDifficulty,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, map[string]any{"village": v})
}

func (h *Handler) getVillage(w http.ResponseWriter, r *http.Request) {
	v, err := h.provider.VillageService.Get(r.Context(), r.PathValue("characterId"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"village": v})
}

type updateVillageRequest struct {
	Name                *string                  `json:"name,omitempty"`
	Services            []village.ServiceKind    `json:"services,omitempty"`
	RandomEventsEnabled *bool                    `json:"randomEventsEnabled,omitempty"`
	EventDifficulty     *village.EventDifficulty `json:"eventDifficulty,omitempty"`
}

func (h *Handler) updateVillage(w http.ResponseWriter, r *http.Request) {
	var req updateVillageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	v, err := h.provider.VillageService.Update(r.Context(), &villagesvc.UpdateInput{
		CharacterID:         r.PathValue("characterId"),
		Name:                req.Name,
		Services:            req.Services,
		RandomEventsEnabled: req.RandomEventsEnabled,
		EventDifficulty:     req.EventDifficulty,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"village": v})
}

func (h *Handler) deleteVillage(w http.ResponseWriter, r *http.Request) {
	if err := h.provider.VillageService.Delete(r.Context(), r.PathValue("characterId")); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "Village deleted", nil)
}

func (h *Handler) rollVillageEvents(w http.ResponseWriter, r *http.Request) {
	result, err := h.provider.VillageService.RollEvents(r.Context(), r.PathValue("characterId"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	unavailable := result.Unavailable
	if unavailable == nil {
		unavailable = []village.ServiceKind{}
	}
	respondMessage(w, http.StatusOK, result.Message, map[string]any{
		"village":             result.Village,
		"unavailableServices": unavailable,
	})
}
