package bookrepo

import (
	"context"
	"errors"

	"booklending/model"
	"booklending/util/database"

	"github.com/jackc/pgx/v5"
)

type Repo interface {
	List(ctx context.Context, limit int64) ([]model.Book, error)
	ByID(ctx context.Context, id int64) (*model.Book, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context, limit int64) ([]model.Book, error) {
	const q = `
	SELECT id, title, location, description
	FROM books
	ORDER BY id
	LIMIT $1`
	rows, err := r.db.Pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Location, &b.Description); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ByID returns nil, nil when no book matches; a missing id is a
// normal outcome, not a failure.
func (r *repo) ByID(ctx context.Context, id int64) (*model.Book, error) {
	b := &model.Book{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, title, location, description
		FROM books
		WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Title, &b.Location, &b.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
