package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"cabinadmin/internal/booking"
	"cabinadmin/internal/cabin"
	"cabinadmin/internal/guest"
	"cabinadmin/pkg/db"
)

// Repository is the Postgres Store.
type Repository struct {
	db     *pgxpool.Pool
	cabins *cabin.Repository
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{db: pool, cabins: cabin.NewRepository(pool)}
}

func (r *Repository) DeleteAll(ctx context.Context, table Table) error {
	if err := table.validate(); err != nil {
		return err
	}
	// Table names are validated above; identifiers cannot be bound as parameters.
	_, err := r.db.Exec(ctx, `DELETE FROM `+pgx.Identifier{string(table)}.Sanitize()+` WHERE id > 0`)
	return err
}

func (r *Repository) InsertGuests(ctx context.Context, guests []guest.Guest) ([]int64, error) {
	const q = `
INSERT INTO guests (full_name, email, national_id, nationality, country_flag)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	b := &pgx.Batch{}
	for _, g := range guests {
		b.Queue(q, g.FullName, g.Email, g.NationalID, g.Nationality, g.CountryFlag)
	}
	return r.insertReturningIDs(ctx, b)
}

func (r *Repository) InsertCabins(ctx context.Context, cabins []cabin.Cabin) ([]int64, error) {
	const q = `
INSERT INTO cabins (name, max_capacity, regular_price, discount, description, image)
VALUES ($1, $2, $3::numeric, $4::numeric, $5, $6)
RETURNING id
`
	b := &pgx.Batch{}
	for _, c := range cabins {
		b.Queue(q, c.Name, c.MaxCapacity, c.RegularPrice.String(), c.Discount.String(), c.Description, c.Image)
	}
	return r.insertReturningIDs(ctx, b)
}

// insertReturningIDs runs the batch in one transaction and reads ids in queue order.
func (r *Repository) insertReturningIDs(ctx context.Context, b *pgx.Batch) ([]int64, error) {
	ids := make([]int64, 0, b.Len())
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, b)
		for i := 0; i < b.Len(); i++ {
			var id int64
			if err := br.QueryRow().Scan(&id); err != nil {
				_ = br.Close()
				return err
			}
			ids = append(ids, id)
		}
		return br.Close()
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

var bookingCopyColumns = []string{
	"created_at", "start_date", "end_date", "num_nights", "num_guests",
	"cabin_price", "extras_price", "total_price", "status",
	"has_breakfast", "is_paid", "observations", "cabin_id", "guest_id",
}

func (r *Repository) InsertBookings(ctx context.Context, bookings []booking.Booking) error {
	now := time.Now()
	_, err := r.db.CopyFrom(ctx, pgx.Identifier{string(TableBookings)}, bookingCopyColumns,
		pgx.CopyFromSlice(len(bookings), func(i int) ([]any, error) {
			b := bookings[i]
			createdAt := b.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			return []any{
				createdAt, b.StartDate, b.EndDate, b.NumNights, b.NumGuests,
				numeric(b.CabinPrice), numeric(b.ExtrasPrice), numeric(b.TotalPrice), string(b.Status),
				b.HasBreakfast, b.IsPaid, b.Observations, b.CabinID, b.GuestID,
			}, nil
		}),
	)
	return err
}

func (r *Repository) OrderedIDs(ctx context.Context, table Table) ([]int64, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT id FROM `+pgx.Identifier{string(table)}.Sanitize()+` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (r *Repository) Cabins(ctx context.Context) ([]cabin.Cabin, error) {
	return r.cabins.List(ctx)
}

func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}
