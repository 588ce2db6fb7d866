package guest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Guest, error) {
	const q = `
SELECT id, created_at, full_name, email, national_id, nationality, country_flag
FROM guests
ORDER BY full_name ASC, id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Guest
	for rows.Next() {
		var g Guest
		if err := rows.Scan(&g.ID, &g.CreatedAt, &g.FullName, &g.Email, &g.NationalID, &g.Nationality, &g.CountryFlag); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
