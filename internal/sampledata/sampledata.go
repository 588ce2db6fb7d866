// Package sampledata holds the static demo guests, cabins and bookings used to reset a
// development database. Bookings refer to guests and cabins by 1-based position in
// these lists; the seed loader maps positions to store ids.
package sampledata

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"

	"cabinadmin/internal/cabin"
	"cabinadmin/internal/guest"
)

// BookingTemplate is a demo booking before ids are assigned and prices derived.
type BookingTemplate struct {
	CabinPos     int
	GuestPos     int
	CreatedAt    time.Time
	StartDate    time.Time
	EndDate      time.Time
	NumGuests    int
	HasBreakfast bool
	IsPaid       bool
	Observations string
}

func Guests() []guest.Guest {
	out := make([]guest.Guest, len(guests))
	copy(out, guests)
	return out
}

func Cabins() []cabin.Cabin {
	out := make([]cabin.Cabin, len(cabins))
	copy(out, cabins)
	return out
}

// Bookings materializes the booking list relative to at's calendar day.
func Bookings(at time.Time) []BookingTemplate {
	today := now.With(at).BeginningOfDay()
	fromToday := func(days int) time.Time { return today.AddDate(0, 0, days) }

	out := make([]BookingTemplate, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingTemplate{
			CabinPos:     b.cabin,
			GuestPos:     b.guest,
			CreatedAt:    fromToday(b.created).Add(9*time.Hour + time.Duration(b.guest)*17*time.Minute),
			StartDate:    fromToday(b.start),
			EndDate:      fromToday(b.end),
			NumGuests:    b.numGuests,
			HasBreakfast: b.breakfast,
			IsPaid:       b.paid,
			Observations: b.observations,
		})
	}
	return out
}

var guests = []guest.Guest{
	{FullName: "Jonas Schmedtmann", Email: "hello@jonas.io", NationalID: "3525436345", Nationality: "Portugal", CountryFlag: "https://flagcdn.com/pt.svg"},
	{FullName: "Jonathan Smith", Email: "johnsmith@test.eu", NationalID: "4534593454", Nationality: "Great Britain", CountryFlag: "https://flagcdn.com/gb.svg"},
	{FullName: "Jonatan Johansson", Email: "jonatan@example.com", NationalID: "9374074454", Nationality: "Finland", CountryFlag: "https://flagcdn.com/fi.svg"},
	{FullName: "Jonas Mueller", Email: "jonas@example.eu", NationalID: "1233212288", Nationality: "Germany", CountryFlag: "https://flagcdn.com/de.svg"},
	{FullName: "Jonas Anderson", Email: "anderson@example.com", NationalID: "0988520146", Nationality: "Bolivia (Plurinational State of)", CountryFlag: "https://flagcdn.com/bo.svg"},
	{FullName: "Jonathan Williams", Email: "jowi@gmail.com", NationalID: "633678543", Nationality: "United States of America", CountryFlag: "https://flagcdn.com/us.svg"},
	{FullName: "Emma Watson", Email: "emma@gmail.com", NationalID: "1234578901", Nationality: "United Kingdom", CountryFlag: "https://flagcdn.com/gb.svg"},
	{FullName: "Juan Hernandez", Email: "juan@yahoo.com", NationalID: "4343433333", Nationality: "Mexico", CountryFlag: "https://flagcdn.com/mx.svg"},
	{FullName: "Julie Nguyen", Email: "julie@gmail.com", NationalID: "9353454234", Nationality: "Vietnam", CountryFlag: "https://flagcdn.com/vn.svg"},
	{FullName: "Khadija Ahmed", Email: "khadija@gmail.com", NationalID: "9877454345", Nationality: "Sudan", CountryFlag: "https://flagcdn.com/sd.svg"},
	{FullName: "Gabriel Silva", Email: "gabriel@gmail.com", NationalID: "4543453356", Nationality: "Brazil", CountryFlag: "https://flagcdn.com/br.svg"},
	{FullName: "Maria Gomez", Email: "maria@example.com", NationalID: "5434534535", Nationality: "Colombia", CountryFlag: "https://flagcdn.com/co.svg"},
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var cabins = []cabin.Cabin{
	{Name: "001", MaxCapacity: 2, RegularPrice: price("250"), Discount: price("0"), Description: "Discover the ultimate luxury getaway for couples in the cozy wooden cabin 001."},
	{Name: "002", MaxCapacity: 2, RegularPrice: price("350"), Discount: price("25"), Description: "Escape to the serenity of nature and indulge in luxury in our cozy cabin 002."},
	{Name: "003", MaxCapacity: 4, RegularPrice: price("300"), Discount: price("0"), Description: "Experience luxury family living in our medium-sized wooden cabin 003."},
	{Name: "004", MaxCapacity: 4, RegularPrice: price("500"), Discount: price("50"), Description: "Indulge in the ultimate luxury family vacation in this medium-sized cabin 004."},
	{Name: "005", MaxCapacity: 6, RegularPrice: price("350"), Discount: price("0"), Description: "Enjoy a comfortable and cozy getaway with your group or family in our spacious cabin 005."},
	{Name: "006", MaxCapacity: 6, RegularPrice: price("800"), Discount: price("100"), Description: "Experience the epitome of luxury with your group or family in our spacious wooden cabin 006."},
	{Name: "007", MaxCapacity: 8, RegularPrice: price("600"), Discount: price("100"), Description: "Accommodate your large group or multiple families in the spacious and grand wooden cabin 007."},
	{Name: "008", MaxCapacity: 10, RegularPrice: price("1400"), Discount: price("0"), Description: "Experience the epitome of luxury and grandeur with your large group or multiple families in cabin 008."},
}

type bookingSpec struct {
	created, start, end int
	cabin, guest        int
	numGuests           int
	breakfast, paid     bool
	observations        string
}

var bookings = []bookingSpec{
	// cabin 001
	{created: -20, start: 0, end: 7, cabin: 1, guest: 2, numGuests: 1, breakfast: true, paid: false, observations: "I have a gluten allergy and would like to request a gluten-free breakfast."},
	{created: -33, start: -23, end: -13, cabin: 1, guest: 3, numGuests: 2, breakfast: true, paid: true},
	{created: -27, start: 12, end: 18, cabin: 1, guest: 4, numGuests: 2, breakfast: false, paid: false},

	// cabin 002
	{created: -45, start: -45, end: -29, cabin: 2, guest: 5, numGuests: 2, breakfast: false, paid: true},
	{created: -2, start: 15, end: 18, cabin: 2, guest: 6, numGuests: 2, breakfast: true, paid: true},
	{created: -5, start: 33, end: 48, cabin: 2, guest: 7, numGuests: 2, breakfast: true, paid: false},

	// cabin 003
	{created: -65, start: -25, end: -20, cabin: 3, guest: 8, numGuests: 4, breakfast: true, paid: true},
	{created: -2, start: -2, end: 0, cabin: 3, guest: 9, numGuests: 3, breakfast: false, paid: true},
	{created: -14, start: -1, end: 4, cabin: 3, guest: 10, numGuests: 4, breakfast: true, paid: true, observations: "Two of the guests will arrive on the second evening."},

	// cabin 004
	{created: -30, start: -4, end: 8, cabin: 4, guest: 11, numGuests: 4, breakfast: true, paid: true},
	{created: -1, start: 12, end: 17, cabin: 4, guest: 12, numGuests: 1, breakfast: false, paid: false},
	{created: -3, start: 50, end: 52, cabin: 4, guest: 1, numGuests: 3, breakfast: false, paid: false},

	// cabin 005
	{created: 0, start: 14, end: 21, cabin: 5, guest: 2, numGuests: 5, breakfast: true, paid: false},
	{created: -6, start: -3, end: 1, cabin: 5, guest: 3, numGuests: 6, breakfast: false, paid: true},
	{created: -4, start: 8, end: 12, cabin: 5, guest: 4, numGuests: 4, breakfast: true, paid: false},

	// cabin 006
	{created: -3, start: 0, end: 11, cabin: 6, guest: 5, numGuests: 6, breakfast: true, paid: true},
	{created: -16, start: -8, end: -6, cabin: 6, guest: 6, numGuests: 5, breakfast: false, paid: true},
	{created: -18, start: -2, end: 5, cabin: 6, guest: 7, numGuests: 3, breakfast: false, paid: true},

	// cabin 007
	{created: -2, start: -2, end: 2, cabin: 7, guest: 8, numGuests: 8, breakfast: true, paid: true},
	{created: -7, start: 40, end: 50, cabin: 7, guest: 9, numGuests: 7, breakfast: true, paid: true},
	{created: -55, start: 32, end: 37, cabin: 7, guest: 10, numGuests: 6, breakfast: false, paid: false},

	// cabin 008
	{created: -8, start: -5, end: 0, cabin: 8, guest: 11, numGuests: 9, breakfast: true, paid: true},
	{created: -6, start: 0, end: 5, cabin: 8, guest: 12, numGuests: 10, breakfast: false, paid: false, observations: "We will be bringing our small dog with us."},
	{created: -1, start: 8, end: 10, cabin: 8, guest: 1, numGuests: 7, breakfast: true, paid: false},
}
