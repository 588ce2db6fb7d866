package seed

import (
	"context"
	"errors"
	"net/http"

	"cabinadmin/internal/api"
)

type Handlers struct {
	Loader *Loader
}

// ResetAll wipes and reloads all sample data. Dev only.
func (h Handlers) ResetAll(w http.ResponseWriter, r *http.Request) {
	h.trigger(w, r, h.Loader.ResetAll)
}

// RefreshBookings reloads sample bookings against the stored guests and cabins. Dev only.
func (h Handlers) RefreshBookings(w http.ResponseWriter, r *http.Request) {
	h.trigger(w, r, h.Loader.RefreshBookings)
}

func (h Handlers) Status(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, h.Loader.Progress.Snapshot())
}

func (h Handlers) trigger(w http.ResponseWriter, r *http.Request, run func(context.Context) (Result, error)) {
	// A started run is not abandoned when the client goes away.
	res, err := run(context.WithoutCancel(r.Context()))
	if errors.Is(err, ErrBusy) {
		api.WriteError(w, http.StatusConflict, "SEED_BUSY", err.Error())
		return
	}
	if err != nil {
		api.WriteJSON(w, http.StatusInternalServerError, map[string]any{
			"error":  api.APIError{Code: "SEED_FAILED", Message: res.Message},
			"result": res,
		})
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}
