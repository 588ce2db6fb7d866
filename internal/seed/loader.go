package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"cabinadmin/internal/activity"
	"cabinadmin/internal/booking"
	"cabinadmin/internal/cabin"
	"cabinadmin/internal/sampledata"
)

var ErrBusy = errors.New("a seed run is already in progress")

const actorSeed = "seed"

// Recorder persists the outcome of a run. Optional.
type Recorder interface {
	Record(ctx context.Context, action activity.Action, bookingID *int64, actor string, metadata any) error
}

// Loader resets the store to the sample data set.
//
// Ordering contract:
// - bookings are deleted before guests and cabins, since they reference both;
// - guests and cabins are created, and their ids known, before bookings are derived.
type Loader struct {
	Store    Store
	Progress *Progress
	Recorder Recorder

	// Now defaults to time.Now. Location, when set, decides which calendar day is "today".
	Now      func() time.Time
	Location *time.Location
}

func NewLoader(store Store) *Loader {
	return &Loader{Store: store, Progress: &Progress{}}
}

type Result struct {
	RunID      string `json:"runId"`
	Message    string `json:"message"`
	FailedStep string `json:"failedStep,omitempty"`
	Guests     int    `json:"guests"`
	Cabins     int    `json:"cabins"`
	Bookings   int    `json:"bookings"`
}

// ResetAll deletes every booking, guest and cabin, then recreates the sample data.
func (l *Loader) ResetAll(ctx context.Context) (Result, error) {
	return l.run(ctx, activity.ActionSeedResetAll, "Starting upload...", "All data uploaded successfully!", l.resetSteps)
}

// RefreshBookings replaces only the bookings, reusing the guests and cabins already stored.
// Prices come from the stored cabin rows, so cabin edits made since the last reset apply.
func (l *Loader) RefreshBookings(ctx context.Context) (Result, error) {
	return l.run(ctx, activity.ActionSeedBookings, "Starting bookings upload...", "Bookings uploaded successfully!", l.refreshSteps)
}

func (l *Loader) run(ctx context.Context, action activity.Action, startMsg, okMsg string, build func(at time.Time, res *Result) []step) (Result, error) {
	if l.Progress == nil {
		l.Progress = &Progress{}
	}
	at := l.now()
	res := Result{RunID: uuid.NewString()}
	if !l.Progress.begin(res.RunID, startMsg, at) {
		return Result{}, ErrBusy
	}

	log.Printf("[seed] run %s: %s", res.RunID, startMsg)
	err := runSteps(ctx, build(at, &res), func(name string) {
		l.Progress.step(name)
		log.Printf("[seed] run %s: %s", res.RunID, name)
	})
	if err != nil {
		var se *StepError
		if errors.As(err, &se) {
			res.FailedStep = se.Step
		}
		res.Message = "Error: " + err.Error()
		log.Printf("[seed] run %s failed: %v", res.RunID, err)
	} else {
		res.Message = okMsg
		log.Printf("[seed] run %s: %s (guests=%d cabins=%d bookings=%d)", res.RunID, okMsg, res.Guests, res.Cabins, res.Bookings)
	}

	l.Progress.finish(res.Message, l.now())
	l.record(ctx, action, res)
	return res, err
}

func (l *Loader) resetSteps(at time.Time, res *Result) []step {
	var guestIDs, cabinIDs IDMap
	cabinTemplates := sampledata.Cabins()

	return []step{
		{"delete bookings", func(ctx context.Context) error { return l.Store.DeleteAll(ctx, TableBookings) }},
		{"delete guests", func(ctx context.Context) error { return l.Store.DeleteAll(ctx, TableGuests) }},
		{"delete cabins", func(ctx context.Context) error { return l.Store.DeleteAll(ctx, TableCabins) }},
		{"create guests", func(ctx context.Context) error {
			templates := sampledata.Guests()
			ids, err := l.Store.InsertGuests(ctx, templates)
			if err != nil {
				return err
			}
			if guestIDs, err = NewIDMap(ids, len(templates)); err != nil {
				return err
			}
			res.Guests = guestIDs.Len()
			return nil
		}},
		{"create cabins", func(ctx context.Context) error {
			ids, err := l.Store.InsertCabins(ctx, cabinTemplates)
			if err != nil {
				return err
			}
			if cabinIDs, err = NewIDMap(ids, len(cabinTemplates)); err != nil {
				return err
			}
			res.Cabins = cabinIDs.Len()
			return nil
		}},
		{"create bookings", func(ctx context.Context) error {
			return l.createBookings(ctx, at, guestIDs, cabinIDs, ratesOf(cabinTemplates), res)
		}},
	}
}

func (l *Loader) refreshSteps(at time.Time, res *Result) []step {
	return []step{
		{"delete bookings", func(ctx context.Context) error { return l.Store.DeleteAll(ctx, TableBookings) }},
		{"create bookings", func(ctx context.Context) error {
			ids, err := l.Store.OrderedIDs(ctx, TableGuests)
			if err != nil {
				return err
			}
			guestIDs, err := NewIDMap(ids, len(sampledata.Guests()))
			if err != nil {
				return fmt.Errorf("guests do not match sample data (run a full reset): %w", err)
			}

			cabins, err := l.Store.Cabins(ctx)
			if err != nil {
				return err
			}
			cabinIDs, err := NewIDMap(cabinIDsOf(cabins), len(sampledata.Cabins()))
			if err != nil {
				return fmt.Errorf("cabins do not match sample data (run a full reset): %w", err)
			}
			res.Guests, res.Cabins = guestIDs.Len(), cabinIDs.Len()

			return l.createBookings(ctx, at, guestIDs, cabinIDs, ratesOf(cabins), res)
		}},
	}
}

func (l *Loader) createBookings(ctx context.Context, at time.Time, guestIDs, cabinIDs IDMap, rates []booking.Rates, res *Result) error {
	bookings, err := Materialize(sampledata.Bookings(at), guestIDs, cabinIDs, rates, at)
	if err != nil {
		return err
	}
	if err := l.Store.InsertBookings(ctx, bookings); err != nil {
		return err
	}
	res.Bookings = len(bookings)
	return nil
}

// Materialize derives prices and status for each template and substitutes store ids for
// template positions. rates is indexed by cabin position - 1.
func Materialize(templates []sampledata.BookingTemplate, guestIDs, cabinIDs IDMap, rates []booking.Rates, at time.Time) ([]booking.Booking, error) {
	out := make([]booking.Booking, 0, len(templates))
	for i, t := range templates {
		if t.CabinPos < 1 || t.CabinPos > len(rates) {
			return nil, fmt.Errorf("booking %d: cabin position %d out of range", i+1, t.CabinPos)
		}
		cabinID, ok := cabinIDs.Lookup(t.CabinPos)
		if !ok {
			return nil, fmt.Errorf("booking %d: no cabin id for position %d", i+1, t.CabinPos)
		}
		guestID, ok := guestIDs.Lookup(t.GuestPos)
		if !ok {
			return nil, fmt.Errorf("booking %d: no guest id for position %d", i+1, t.GuestPos)
		}

		d, err := booking.Derive(booking.Stay{
			StartDate:    t.StartDate,
			EndDate:      t.EndDate,
			NumGuests:    t.NumGuests,
			HasBreakfast: t.HasBreakfast,
		}, rates[t.CabinPos-1], at)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", i+1, err)
		}

		out = append(out, booking.Booking{
			CreatedAt:    t.CreatedAt,
			StartDate:    t.StartDate,
			EndDate:      t.EndDate,
			NumNights:    d.NumNights,
			NumGuests:    t.NumGuests,
			CabinPrice:   d.CabinPrice,
			ExtrasPrice:  d.ExtrasPrice,
			TotalPrice:   d.TotalPrice,
			Status:       d.Status,
			HasBreakfast: t.HasBreakfast,
			IsPaid:       t.IsPaid,
			Observations: t.Observations,
			CabinID:      cabinID,
			GuestID:      guestID,
		})
	}
	return out, nil
}

func (l *Loader) now() time.Time {
	t := time.Now()
	if l.Now != nil {
		t = l.Now()
	}
	if l.Location != nil {
		t = t.In(l.Location)
	}
	return t
}

func (l *Loader) record(ctx context.Context, action activity.Action, res Result) {
	if l.Recorder == nil {
		return
	}
	err := l.Recorder.Record(ctx, action, nil, actorSeed, map[string]any{
		"runId":      res.RunID,
		"ok":         res.FailedStep == "",
		"failedStep": res.FailedStep,
		"message":    res.Message,
		"guests":     res.Guests,
		"cabins":     res.Cabins,
		"bookings":   res.Bookings,
	})
	if err != nil {
		log.Printf("[seed] run %s: record activity failed: %v", res.RunID, err)
	}
}

func ratesOf(cabins []cabin.Cabin) []booking.Rates {
	out := make([]booking.Rates, len(cabins))
	for i, c := range cabins {
		out[i] = booking.Rates{RegularPrice: c.RegularPrice, Discount: c.Discount}
	}
	return out
}

func cabinIDsOf(cabins []cabin.Cabin) []int64 {
	out := make([]int64, len(cabins))
	for i, c := range cabins {
		out[i] = c.ID
	}
	return out
}
