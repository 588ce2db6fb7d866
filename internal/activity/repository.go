package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	ID        int64           `json:"id"`
	Action    Action          `json:"action"`
	BookingID *int64          `json:"bookingId,omitempty"`
	Actor     string          `json:"actor"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const insertQuery = `
INSERT INTO activity_logs (action, booking_id, actor, metadata)
VALUES ($1, $2, $3, CAST($4 AS jsonb))
`

// Insert writes an entry inside the caller's transaction.
func Insert(ctx context.Context, tx pgx.Tx, action Action, bookingID *int64, actor string, metadata any) error {
	_, err := tx.Exec(ctx, insertQuery, string(action), bookingID, actor, encodeMetadata(metadata))
	return err
}

// Record writes an entry outside any transaction.
func (r *Repository) Record(ctx context.Context, action Action, bookingID *int64, actor string, metadata any) error {
	_, err := r.db.Exec(ctx, insertQuery, string(action), bookingID, actor, encodeMetadata(metadata))
	return err
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const q = `
SELECT id, action, booking_id, actor, COALESCE(metadata, '{}'::jsonb), created_at
FROM activity_logs
ORDER BY created_at DESC, id DESC
LIMIT $1
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var action string
		if err := rows.Scan(&e.ID, &action, &e.BookingID, &e.Actor, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Action = Action(action)
		out = append(out, e)
	}
	return out, rows.Err()
}

func encodeMetadata(metadata any) *string {
	if metadata == nil {
		return nil
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}
