package guest

import (
	"log"
	"net/http"

	"cabinadmin/internal/api"
)

type Handlers struct {
	Repo *Repository
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("[guest/handlers] list failed: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Guest{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}
