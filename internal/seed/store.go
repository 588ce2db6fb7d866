package seed

import (
	"context"
	"fmt"

	"cabinadmin/internal/booking"
	"cabinadmin/internal/cabin"
	"cabinadmin/internal/guest"
)

type Table string

const (
	TableBookings Table = "bookings"
	TableGuests   Table = "guests"
	TableCabins   Table = "cabins"
)

func (t Table) validate() error {
	switch t {
	case TableBookings, TableGuests, TableCabins:
		return nil
	default:
		return fmt.Errorf("unknown table: %q", string(t))
	}
}

// Store is the data backend the loader writes to. Calls are never concurrent.
type Store interface {
	// DeleteAll removes every row of table.
	DeleteAll(ctx context.Context, table Table) error
	// InsertGuests returns the assigned ids in input order.
	InsertGuests(ctx context.Context, guests []guest.Guest) ([]int64, error)
	// InsertCabins returns the assigned ids in input order.
	InsertCabins(ctx context.Context, cabins []cabin.Cabin) ([]int64, error)
	InsertBookings(ctx context.Context, bookings []booking.Booking) error
	// OrderedIDs lists the ids of table ascending.
	OrderedIDs(ctx context.Context, table Table) ([]int64, error)
	// Cabins lists current cabin rows ordered by id ascending.
	Cabins(ctx context.Context) ([]cabin.Cabin, error)
}
