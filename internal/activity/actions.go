package activity

type Action string

const (
	ActionBookingCheckedIn  Action = "BOOKING_CHECKED_IN"
	ActionBookingCheckedOut Action = "BOOKING_CHECKED_OUT"
	ActionBookingDeleted    Action = "BOOKING_DELETED"
	ActionSeedResetAll      Action = "SEED_RESET_ALL"
	ActionSeedBookings      Action = "SEED_REFRESH_BOOKINGS"
)
