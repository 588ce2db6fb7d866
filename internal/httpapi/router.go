package httpapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"cabinadmin/internal/activity"
	"cabinadmin/internal/api"
	"cabinadmin/internal/booking"
	"cabinadmin/internal/cabin"
	"cabinadmin/internal/guest"
	"cabinadmin/internal/prefs"
	"cabinadmin/internal/seed"
	"cabinadmin/internal/settings"
	"cabinadmin/pkg/config"
)

type Dependencies struct {
	Cfg   config.Config
	DB    *pgxpool.Pool
	Prefs prefs.KV
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	activityRepo := activity.NewRepository(deps.DB)
	settingsRepo := settings.NewRepository(deps.DB)
	bookingHandlers := booking.Handlers{
		DB:       deps.DB,
		Bookings: booking.NewRepository(deps.DB),
		Settings: settingsRepo,
	}
	cabinHandlers := cabin.Handlers{Repo: cabin.NewRepository(deps.DB)}
	guestHandlers := guest.Handlers{Repo: guest.NewRepository(deps.DB)}
	settingsHandlers := settings.Handlers{Repo: settingsRepo}
	activityHandlers := activity.Handlers{Repo: activityRepo}

	prefsKV := deps.Prefs
	if prefsKV == nil {
		prefsKV = prefs.NewMemoryKV()
	}
	prefsHandlers := prefs.Handlers{KV: prefsKV}

	r.Route("/v1", func(r chi.Router) {
		// Browser dashboard on a separate origin.
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.DashboardAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAgeSeconds:  600,
		}))

		r.Get("/bookings", bookingHandlers.List)
		r.Get("/bookings/{id}", bookingHandlers.Get)
		r.Post("/bookings/{id}/check-in", bookingHandlers.CheckIn)
		r.Post("/bookings/{id}/check-out", bookingHandlers.CheckOut)
		r.Delete("/bookings/{id}", bookingHandlers.Delete)

		r.Get("/cabins", cabinHandlers.List)
		r.Get("/cabins/{id}", cabinHandlers.Get)
		r.Get("/guests", guestHandlers.List)
		r.Get("/settings", settingsHandlers.Get)
		r.Get("/activity", activityHandlers.List)

		r.Get("/prefs/{key}", prefsHandlers.Get)
		r.Put("/prefs/{key}", prefsHandlers.Put)

		// Sample data loading wipes tables. Never mounted in prod.
		if !deps.Cfg.IsProd() {
			loader := seed.NewLoader(seed.NewRepository(deps.DB))
			loader.Recorder = activityRepo
			if loc, err := deps.Cfg.SeedLocation(); err != nil {
				log.Printf("[httpapi] SEED_TIMEZONE %q: %v; using local time", deps.Cfg.SeedTimezone, err)
			} else {
				loader.Location = loc
			}
			seedHandlers := seed.Handlers{Loader: loader}

			r.Route("/dev/seed", func(r chi.Router) {
				r.Post("/", seedHandlers.ResetAll)
				r.Post("/bookings", seedHandlers.RefreshBookings)
				r.Get("/status", seedHandlers.Status)
			})
		}
	})

	return r
}
