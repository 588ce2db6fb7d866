package booking

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

// DefaultBreakfastPrice is the per-guest, per-night breakfast rate used for sample data.
var DefaultBreakfastPrice = decimal.NewFromInt(15)

// Stay is the part of a booking that pricing and status depend on.
type Stay struct {
	StartDate    time.Time
	EndDate      time.Time
	NumGuests    int
	HasBreakfast bool
}

// Rates are the cabin pricing inputs.
type Rates struct {
	RegularPrice decimal.Decimal
	Discount     decimal.Decimal
}

type Derived struct {
	NumNights   int
	CabinPrice  decimal.Decimal
	ExtrasPrice decimal.Decimal
	TotalPrice  decimal.Decimal
	Status      Status
}

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Derive computes nights, prices and lifecycle status for a stay.
//
// Rules:
// - Nights are whole calendar days between start and end, read in now's location.
// - cabinPrice = nights * (regularPrice - discount).
// - extrasPrice = nights * DefaultBreakfastPrice * guests when breakfast is included.
// - Status compares dates only, never times of day.
func Derive(stay Stay, rates Rates, at time.Time) (Derived, error) {
	nights := NumNights(stay.StartDate, stay.EndDate, at.Location())
	if nights < 1 {
		return Derived{}, ValidationError{Code: "BOOKING_NIGHTS_INVALID", Message: "end date must be at least one night after start date"}
	}
	if stay.NumGuests < 1 {
		return Derived{}, ValidationError{Code: "BOOKING_GUESTS_INVALID", Message: "number of guests must be > 0"}
	}

	cabinPrice := decimal.NewFromInt(int64(nights)).Mul(rates.RegularPrice.Sub(rates.Discount))
	extras := decimal.Zero
	if stay.HasBreakfast {
		extras = BreakfastPrice(nights, stay.NumGuests, DefaultBreakfastPrice)
	}

	return Derived{
		NumNights:   nights,
		CabinPrice:  cabinPrice,
		ExtrasPrice: extras,
		TotalPrice:  cabinPrice.Add(extras),
		Status:      DeriveStatus(stay.StartDate, stay.EndDate, at),
	}, nil
}

// BreakfastPrice is nights * rate * guests.
func BreakfastPrice(nights, guests int, rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(nights) * int64(guests)))
}

// NumNights counts calendar days from start to end in loc. DST shifts do not change the count.
func NumNights(start, end time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	sy, sm, sd := start.In(loc).Date()
	ey, em, ed := end.In(loc).Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// DeriveStatus applies the checks in order; a later match overwrites an earlier one.
func DeriveStatus(start, end, at time.Time) Status {
	today := now.With(at).BeginningOfDay()
	startDay := now.With(start.In(at.Location())).BeginningOfDay()
	endDay := now.With(end.In(at.Location())).BeginningOfDay()

	var status Status
	if endDay.Before(today) {
		status = StatusCheckedOut
	}
	if !startDay.Before(today) {
		status = StatusUnconfirmed
	}
	if !endDay.Before(today) && startDay.Before(today) {
		status = StatusCheckedIn
	}
	return status
}
