package order_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// Note is a single entry in an order's append-only note log.
type Note struct {
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *repo) GetNotes(ctx context.Context, orderID string) ([]Note, error) {
	query, args, err := r.builder.Select("note", "created_at").
		From("order_notes").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.Note, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
