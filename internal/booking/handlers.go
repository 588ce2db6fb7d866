package booking

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cabinadmin/internal/activity"
	"cabinadmin/internal/api"
	"cabinadmin/internal/settings"
	"cabinadmin/pkg/db"
)

const actorDashboard = "dashboard"

type Handlers struct {
	DB       *pgxpool.Pool
	Bookings *Repository
	Settings *settings.Repository
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	var filter *Status
	if raw := r.URL.Query().Get("status"); raw != "" && raw != "all" {
		st, err := ParseStatus(raw)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status")
			return
		}
		filter = &st
	}

	items, err := h.Bookings.List(r.Context(), filter)
	if err != nil {
		log.Printf("[booking/handlers] list failed: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []ListItem{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	d, err := h.Bookings.GetByID(r.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
		return
	}
	if err != nil {
		log.Printf("[booking/handlers] get %d failed: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, d)
}

func (h Handlers) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	var req CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	s, err := h.Settings.Get(r.Context())
	if err != nil {
		log.Printf("[booking/handlers] load settings failed: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	var update CheckInUpdate
	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}
		update, err = PlanCheckIn(*b, req, s.BreakfastPrice)
		if err != nil {
			return err
		}
		if err := ApplyCheckIn(r.Context(), tx, id, update); err != nil {
			return err
		}
		return activity.Insert(r.Context(), tx, activity.ActionBookingCheckedIn, &id, actorDashboard, map[string]any{
			"addedBreakfast": req.AddBreakfast && !b.HasBreakfast,
			"totalPrice":     update.TotalPrice.String(),
		})
	})
	if err != nil {
		h.writeMutationError(w, id, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"id":           id,
		"status":       update.Status,
		"isPaid":       update.IsPaid,
		"hasBreakfast": update.HasBreakfast,
		"extrasPrice":  update.ExtrasPrice,
		"totalPrice":   update.TotalPrice,
	})
}

func (h Handlers) CheckOut(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}
		if err := PlanCheckOut(*b); err != nil {
			return err
		}
		if err := UpdateStatus(r.Context(), tx, id, StatusCheckedOut); err != nil {
			return err
		}
		return activity.Insert(r.Context(), tx, activity.ActionBookingCheckedOut, &id, actorDashboard, nil)
	})
	if err != nil {
		h.writeMutationError(w, id, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "status": StatusCheckedOut})
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		deleted, err := Delete(r.Context(), tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return pgx.ErrNoRows
		}
		return activity.Insert(r.Context(), tx, activity.ActionBookingDeleted, &id, actorDashboard, nil)
	})
	if err != nil {
		h.writeMutationError(w, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handlers) writeMutationError(w http.ResponseWriter, id int64, err error) {
	var verr ValidationError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
	case errors.As(err, &verr) && verr.Code == "INVALID_STATE_TRANSITION":
		api.WriteError(w, http.StatusConflict, verr.Code, verr.Message)
	case errors.As(err, &verr):
		api.WriteError(w, http.StatusBadRequest, verr.Code, verr.Message)
	default:
		log.Printf("[booking/handlers] mutation on booking %d failed: %v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func bookingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return 0, false
	}
	return id, true
}
