package api

import "net/http"

// Combat and inventory ship with the client UI but their server systems are
// not built yet. The endpoints answer so the client can degrade gracefully.

func (h *Handler) combatComingSoon(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, envelope{
		Status:  "error",
		Message: "Combat system coming soon!",
	})
}

func (h *Handler) inventoryComingSoon(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, envelope{
		Status:  "error",
		Message: "Inventory system coming soon!",
	})
}
