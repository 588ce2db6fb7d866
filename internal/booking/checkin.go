package booking

import (
	"github.com/shopspring/decimal"
)

type CheckInRequest struct {
	ConfirmPaid  bool `json:"confirmPaid"`
	AddBreakfast bool `json:"addBreakfast"`
}

// CheckInUpdate is the set of columns a check-in writes.
type CheckInUpdate struct {
	Status       Status
	IsPaid       bool
	HasBreakfast bool
	ExtrasPrice  decimal.Decimal
	TotalPrice   decimal.Decimal
}

// PlanCheckIn validates a check-in and prices the optional breakfast add-on.
// Staff must confirm the guest paid the full amount, including any added breakfast.
func PlanCheckIn(b Booking, req CheckInRequest, breakfastRate decimal.Decimal) (CheckInUpdate, error) {
	if !CanTransition(b.Status, StatusCheckedIn) {
		return CheckInUpdate{}, ValidationError{Code: "INVALID_STATE_TRANSITION", Message: "only unconfirmed bookings can be checked in"}
	}
	if !req.ConfirmPaid {
		return CheckInUpdate{}, ValidationError{Code: "PAYMENT_NOT_CONFIRMED", Message: "payment must be confirmed before check-in"}
	}

	out := CheckInUpdate{
		Status:       StatusCheckedIn,
		IsPaid:       true,
		HasBreakfast: b.HasBreakfast,
		ExtrasPrice:  b.ExtrasPrice,
		TotalPrice:   b.TotalPrice,
	}
	if req.AddBreakfast && !b.HasBreakfast {
		add := BreakfastPrice(b.NumNights, b.NumGuests, breakfastRate)
		out.HasBreakfast = true
		out.ExtrasPrice = b.ExtrasPrice.Add(add)
		out.TotalPrice = b.TotalPrice.Add(add)
	}
	return out, nil
}

func PlanCheckOut(b Booking) error {
	if !CanTransition(b.Status, StatusCheckedOut) {
		return ValidationError{Code: "INVALID_STATE_TRANSITION", Message: "only checked-in bookings can be checked out"}
	}
	return nil
}
