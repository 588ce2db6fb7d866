package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2024, time.June, 15+offset, 0, 0, 0, 0, time.UTC)
}

func TestDerive_CabinPriceUsesDiscountedRate(t *testing.T) {
	got, err := Derive(
		Stay{StartDate: day(5), EndDate: day(8), NumGuests: 2},
		Rates{RegularPrice: decimal.NewFromInt(100), Discount: decimal.NewFromInt(10)},
		fixedNow,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.NumNights != 3 {
		t.Fatalf("expected 3 nights, got %d", got.NumNights)
	}
	if !got.CabinPrice.Equal(decimal.NewFromInt(270)) {
		t.Fatalf("expected cabin price 270, got %s", got.CabinPrice)
	}
	if !got.ExtrasPrice.IsZero() {
		t.Fatalf("expected no extras without breakfast, got %s", got.ExtrasPrice)
	}
	if !got.TotalPrice.Equal(got.CabinPrice) {
		t.Fatalf("expected total == cabin price, got %s vs %s", got.TotalPrice, got.CabinPrice)
	}
}

func TestDerive_BreakfastExtras(t *testing.T) {
	got, err := Derive(
		Stay{StartDate: day(1), EndDate: day(4), NumGuests: 2, HasBreakfast: true},
		Rates{RegularPrice: decimal.NewFromInt(250), Discount: decimal.Zero},
		fixedNow,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.ExtrasPrice.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected extras 90, got %s", got.ExtrasPrice)
	}
	if !got.TotalPrice.Equal(got.CabinPrice.Add(got.ExtrasPrice)) {
		t.Fatalf("expected total = cabin + extras, got %s", got.TotalPrice)
	}
	if !got.TotalPrice.Equal(decimal.NewFromInt(840)) {
		t.Fatalf("expected total 840, got %s", got.TotalPrice)
	}
}

func TestDerive_TotalIsAlwaysCabinPlusExtras(t *testing.T) {
	rates := Rates{RegularPrice: decimal.RequireFromString("499.99"), Discount: decimal.RequireFromString("25.50")}
	for nights := 1; nights <= 14; nights++ {
		for guests := 1; guests <= 6; guests++ {
			for _, breakfast := range []bool{false, true} {
				got, err := Derive(Stay{StartDate: day(-3), EndDate: day(-3 + nights), NumGuests: guests, HasBreakfast: breakfast}, rates, fixedNow)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !got.TotalPrice.Equal(got.CabinPrice.Add(got.ExtrasPrice)) {
					t.Fatalf("nights=%d guests=%d breakfast=%v: total %s != %s + %s", nights, guests, breakfast, got.TotalPrice, got.CabinPrice, got.ExtrasPrice)
				}
				if !breakfast && !got.ExtrasPrice.IsZero() {
					t.Fatalf("expected zero extras without breakfast")
				}
			}
		}
	}
}

func TestDerive_RejectsZeroNightsAndGuests(t *testing.T) {
	rates := Rates{RegularPrice: decimal.NewFromInt(100)}

	_, err := Derive(Stay{StartDate: day(2), EndDate: day(2), NumGuests: 1}, rates, fixedNow)
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != "BOOKING_NIGHTS_INVALID" {
		t.Fatalf("expected BOOKING_NIGHTS_INVALID, got %v", err)
	}

	_, err = Derive(Stay{StartDate: day(4), EndDate: day(2), NumGuests: 1}, rates, fixedNow)
	if !errors.As(err, &verr) || verr.Code != "BOOKING_NIGHTS_INVALID" {
		t.Fatalf("expected BOOKING_NIGHTS_INVALID for reversed dates, got %v", err)
	}

	_, err = Derive(Stay{StartDate: day(2), EndDate: day(3), NumGuests: 0}, rates, fixedNow)
	if !errors.As(err, &verr) || verr.Code != "BOOKING_GUESTS_INVALID" {
		t.Fatalf("expected BOOKING_GUESTS_INVALID, got %v", err)
	}
}

func TestNumNights_IgnoresTimeOfDayAndDST(t *testing.T) {
	start := time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 10, 0, 15, 0, 0, time.UTC)
	if got := NumNights(start, end, time.UTC); got != 1 {
		t.Fatalf("expected 1 night across midnight, got %d", got)
	}

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Spans the 2024-03-10 spring-forward transition.
	start = time.Date(2024, time.March, 9, 15, 0, 0, 0, ny)
	end = time.Date(2024, time.March, 12, 10, 0, 0, 0, ny)
	if got := NumNights(start, end, ny); got != 3 {
		t.Fatalf("expected 3 nights across DST, got %d", got)
	}
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       Status
	}{
		{"ended yesterday", day(-4), day(-1), StatusCheckedOut},
		{"starts later today", day(0).Add(18 * time.Hour), day(3), StatusUnconfirmed},
		{"starts today at midnight", day(0), day(2), StatusUnconfirmed},
		{"starts in future", day(10), day(12), StatusUnconfirmed},
		{"ends today, started before", day(-2), day(0), StatusCheckedIn},
		{"ends today earlier than now", day(-2), day(0).Add(6 * time.Hour), StatusCheckedIn},
		{"mid stay", day(-1), day(5), StatusCheckedIn},
	}
	for _, tc := range cases {
		if got := DeriveStatus(tc.start, tc.end, fixedNow); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestDeriveStatus_UsesNowLocationForToday(t *testing.T) {
	// 2024-06-15 02:00 UTC is still 2024-06-14 in Los Angeles.
	la := time.FixedZone("PDT", -7*3600)
	at := time.Date(2024, time.June, 15, 2, 0, 0, 0, time.UTC).In(la)
	start := time.Date(2024, time.June, 15, 0, 0, 0, 0, la)
	end := time.Date(2024, time.June, 17, 0, 0, 0, 0, la)
	if got := DeriveStatus(start, end, at); got != StatusUnconfirmed {
		t.Fatalf("expected unconfirmed for a stay starting tomorrow local time, got %q", got)
	}
}
