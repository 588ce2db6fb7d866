package seed

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cabinadmin/internal/booking"
	"cabinadmin/internal/cabin"
	"cabinadmin/internal/guest"
)

// MemoryStore is an in-process Store. Ids keep increasing across deletes, like a
// Postgres identity column, and bookings must reference existing guests and cabins.
type MemoryStore struct {
	mutex    sync.RWMutex
	lastID   map[Table]int64
	guests   map[int64]guest.Guest
	cabins   map[int64]cabin.Cabin
	bookings map[int64]booking.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lastID:   make(map[Table]int64),
		guests:   make(map[int64]guest.Guest),
		cabins:   make(map[int64]cabin.Cabin),
		bookings: make(map[int64]booking.Booking),
	}
}

func (s *MemoryStore) DeleteAll(ctx context.Context, table Table) error {
	if err := table.validate(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	switch table {
	case TableBookings:
		s.bookings = make(map[int64]booking.Booking)
	case TableGuests:
		for _, b := range s.bookings {
			if _, ok := s.guests[b.GuestID]; ok {
				return fmt.Errorf("delete guests: booking %d still references guest %d", b.ID, b.GuestID)
			}
		}
		s.guests = make(map[int64]guest.Guest)
	case TableCabins:
		for _, b := range s.bookings {
			if _, ok := s.cabins[b.CabinID]; ok {
				return fmt.Errorf("delete cabins: booking %d still references cabin %d", b.ID, b.CabinID)
			}
		}
		s.cabins = make(map[int64]cabin.Cabin)
	}
	return nil
}

func (s *MemoryStore) InsertGuests(ctx context.Context, guests []guest.Guest) ([]int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := make([]int64, 0, len(guests))
	for _, g := range guests {
		g.ID = s.nextID(TableGuests)
		if g.CreatedAt.IsZero() {
			g.CreatedAt = time.Now()
		}
		s.guests[g.ID] = g
		ids = append(ids, g.ID)
	}
	return ids, nil
}

func (s *MemoryStore) InsertCabins(ctx context.Context, cabins []cabin.Cabin) ([]int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := make([]int64, 0, len(cabins))
	for _, c := range cabins {
		c.ID = s.nextID(TableCabins)
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		s.cabins[c.ID] = c
		ids = append(ids, c.ID)
	}
	return ids, nil
}

// InsertBookings is all-or-nothing.
func (s *MemoryStore) InsertBookings(ctx context.Context, bookings []booking.Booking) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, b := range bookings {
		if _, ok := s.guests[b.GuestID]; !ok {
			return fmt.Errorf("insert bookings: row %d references missing guest %d", i+1, b.GuestID)
		}
		if _, ok := s.cabins[b.CabinID]; !ok {
			return fmt.Errorf("insert bookings: row %d references missing cabin %d", i+1, b.CabinID)
		}
	}
	for _, b := range bookings {
		b.ID = s.nextID(TableBookings)
		s.bookings[b.ID] = b
	}
	return nil
}

func (s *MemoryStore) OrderedIDs(ctx context.Context, table Table) ([]int64, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var ids []int64
	switch table {
	case TableBookings:
		ids = keys(s.bookings)
	case TableGuests:
		ids = keys(s.guests)
	case TableCabins:
		ids = keys(s.cabins)
	}
	return ids, nil
}

func (s *MemoryStore) Cabins(ctx context.Context) ([]cabin.Cabin, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]cabin.Cabin, 0, len(s.cabins))
	for _, id := range keys(s.cabins) {
		out = append(out, s.cabins[id])
	}
	return out, nil
}

// Bookings returns the stored bookings ordered by id.
func (s *MemoryStore) Bookings() []booking.Booking {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]booking.Booking, 0, len(s.bookings))
	for _, id := range keys(s.bookings) {
		out = append(out, s.bookings[id])
	}
	return out
}

// UpdateCabin replaces a stored cabin row, keeping its id.
func (s *MemoryStore) UpdateCabin(c cabin.Cabin) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.cabins[c.ID]; !ok {
		return fmt.Errorf("cabin %d not found", c.ID)
	}
	s.cabins[c.ID] = c
	return nil
}

func (s *MemoryStore) nextID(t Table) int64 {
	s.lastID[t]++
	return s.lastID[t]
}

func keys[V any](m map[int64]V) []int64 {
	out := make([]int64, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
