package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a stored booking row with derived fields attached.
type Booking struct {
	ID           int64           `json:"id"`
	CreatedAt    time.Time       `json:"createdAt"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	NumNights    int             `json:"numNights"`
	NumGuests    int             `json:"numGuests"`
	CabinPrice   decimal.Decimal `json:"cabinPrice"`
	ExtrasPrice  decimal.Decimal `json:"extrasPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       Status          `json:"status"`
	HasBreakfast bool            `json:"hasBreakfast"`
	IsPaid       bool            `json:"isPaid"`
	Observations string          `json:"observations"`
	CabinID      int64           `json:"cabinId"`
	GuestID      int64           `json:"guestId"`
}

// ListItem is a booking with the guest and cabin fields the bookings table shows.
type ListItem struct {
	Booking
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	CabinName  string `json:"cabinName"`
}

type GuestSummary struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	NationalID  string `json:"nationalId"`
	Nationality string `json:"nationality"`
	CountryFlag string `json:"countryFlag,omitempty"`
}

type CabinSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Detail struct {
	Booking
	Guest GuestSummary `json:"guest"`
	Cabin CabinSummary `json:"cabin"`
}
