package cabin

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

// List returns all cabins ordered by id ascending.
func (r *Repository) List(ctx context.Context) ([]Cabin, error) {
	const q = `
SELECT id, created_at, name, max_capacity, regular_price::text, discount::text, description, image
FROM cabins
ORDER BY id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Cabin
	for rows.Next() {
		c, err := scanCabin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Cabin, error) {
	const q = `
SELECT id, created_at, name, max_capacity, regular_price::text, discount::text, description, image
FROM cabins
WHERE id = $1
`
	c, err := scanCabin(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCabin(row pgx.Row) (Cabin, error) {
	var c Cabin
	var regular, discount string
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.Name, &c.MaxCapacity, &regular, &discount, &c.Description, &c.Image); err != nil {
		return Cabin{}, err
	}
	var err error
	if c.RegularPrice, err = decimal.NewFromString(regular); err != nil {
		return Cabin{}, err
	}
	if c.Discount, err = decimal.NewFromString(discount); err != nil {
		return Cabin{}, err
	}
	return c, nil
}
