package booking

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `b.id, b.created_at, b.start_date, b.end_date, b.num_nights, b.num_guests,
       b.cabin_price::text, b.extras_price::text, b.total_price::text, b.status,
       b.has_breakfast, b.is_paid, b.observations, b.cabin_id, b.guest_id`

type moneyText struct {
	cabin, extras, total string
}

func (m moneyText) apply(b *Booking) error {
	var err error
	if b.CabinPrice, err = decimal.NewFromString(m.cabin); err != nil {
		return err
	}
	if b.ExtrasPrice, err = decimal.NewFromString(m.extras); err != nil {
		return err
	}
	if b.TotalPrice, err = decimal.NewFromString(m.total); err != nil {
		return err
	}
	return nil
}

func bookingDest(b *Booking, m *moneyText, status *string) []any {
	return []any{
		&b.ID, &b.CreatedAt, &b.StartDate, &b.EndDate, &b.NumNights, &b.NumGuests,
		&m.cabin, &m.extras, &m.total, status,
		&b.HasBreakfast, &b.IsPaid, &b.Observations, &b.CabinID, &b.GuestID,
	}
}

// List returns bookings newest stay first. A nil status lists all.
func (r *Repository) List(ctx context.Context, status *Status) ([]ListItem, error) {
	q := `
SELECT ` + bookingColumns + `, g.full_name, g.email, c.name
FROM bookings b
JOIN guests g ON g.id = b.guest_id
JOIN cabins c ON c.id = b.cabin_id
WHERE ($1::text IS NULL OR b.status = $1)
ORDER BY b.start_date DESC, b.id DESC
`
	var filter *string
	if status != nil {
		s := string(*status)
		filter = &s
	}
	rows, err := r.db.Query(ctx, q, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListItem
	for rows.Next() {
		var it ListItem
		var m moneyText
		var st string
		dest := append(bookingDest(&it.Booking, &m, &st), &it.GuestName, &it.GuestEmail, &it.CabinName)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if err := m.apply(&it.Booking); err != nil {
			return nil, err
		}
		it.Status = Status(st)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Detail, error) {
	q := `
SELECT ` + bookingColumns + `,
       g.id, g.full_name, g.email, g.national_id, g.nationality, g.country_flag,
       c.id, c.name
FROM bookings b
JOIN guests g ON g.id = b.guest_id
JOIN cabins c ON c.id = b.cabin_id
WHERE b.id = $1
`
	var d Detail
	var m moneyText
	var st string
	dest := append(bookingDest(&d.Booking, &m, &st),
		&d.Guest.ID, &d.Guest.FullName, &d.Guest.Email, &d.Guest.NationalID, &d.Guest.Nationality, &d.Guest.CountryFlag,
		&d.Cabin.ID, &d.Cabin.Name,
	)
	if err := r.db.QueryRow(ctx, q, id).Scan(dest...); err != nil {
		return nil, err
	}
	if err := m.apply(&d.Booking); err != nil {
		return nil, err
	}
	d.Status = Status(st)
	return &d, nil
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*Booking, error) {
	q := `
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.id = $1
FOR UPDATE
`
	var b Booking
	var m moneyText
	var st string
	if err := tx.QueryRow(ctx, q, id).Scan(bookingDest(&b, &m, &st)...); err != nil {
		return nil, err
	}
	if err := m.apply(&b); err != nil {
		return nil, err
	}
	b.Status = Status(st)
	return &b, nil
}

func ApplyCheckIn(ctx context.Context, tx pgx.Tx, id int64, u CheckInUpdate) error {
	const q = `
UPDATE bookings
SET status = $2, is_paid = $3, has_breakfast = $4,
    extras_price = $5::numeric, total_price = $6::numeric
WHERE id = $1
`
	_, err := tx.Exec(ctx, q, id, string(u.Status), u.IsPaid, u.HasBreakfast, u.ExtrasPrice.String(), u.TotalPrice.String())
	return err
}

func UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, next Status) error {
	const q = `UPDATE bookings SET status = $2 WHERE id = $1`
	_, err := tx.Exec(ctx, q, id, string(next))
	return err
}

// Delete reports whether a row was removed.
func Delete(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
