package settings

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"cabinadmin/internal/api"
)

// Settings is the single hotel-wide settings row.
type Settings struct {
	MinBookingLength    int             `json:"minBookingLength"`
	MaxBookingLength    int             `json:"maxBookingLength"`
	MaxGuestsPerBooking int             `json:"maxGuestsPerBooking"`
	BreakfastPrice      decimal.Decimal `json:"breakfastPrice"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context) (*Settings, error) {
	const q = `
SELECT min_booking_length, max_booking_length, max_guests_per_booking, breakfast_price::text
FROM settings
WHERE id = 1
`
	var s Settings
	var breakfast string
	if err := r.db.QueryRow(ctx, q).Scan(&s.MinBookingLength, &s.MaxBookingLength, &s.MaxGuestsPerBooking, &breakfast); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(breakfast)
	if err != nil {
		return nil, err
	}
	s.BreakfastPrice = price
	return &s, nil
}

// Reader is satisfied by *Repository.
type Reader interface {
	Get(ctx context.Context) (*Settings, error)
}

type Handlers struct {
	Repo Reader
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.Get(r.Context())
	if err != nil {
		log.Printf("[settings] get failed: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, s)
}
