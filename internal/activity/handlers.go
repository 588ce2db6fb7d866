package activity

import (
	"log"
	"net/http"
	"strconv"

	"cabinadmin/internal/api"
)

type Handlers struct {
	Repo *Repository
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("[activity/handlers] list failed: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Entry{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}
