// repository/loan/repo.go
package loanrepo

import (
	"context"
	"time"

	"booklending/model"
	"booklending/util/database"
)

type Repo interface {
	Insert(ctx context.Context, userID, bookID int64, checkout, due time.Time) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]model.LoanWithBook, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

// Insert writes one ledger row. The foreign keys on user_id/book_id
// reject dangling references; a violation surfaces as a
// pgconn.PgError the service layer maps.
func (r *repo) Insert(ctx context.Context, userID, bookID int64, checkout, due time.Time) (int64, error) {
	const q = `
		INSERT INTO loans (user_id, book_id, checkout_date, due_date)
		VALUES ($1,$2,$3,$4)
		RETURNING id`
	var id int64
	if err := r.db.Pool.QueryRow(ctx, q, userID, bookID, checkout, due).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) ListForUser(ctx context.Context, userID int64) ([]model.LoanWithBook, error) {
	const q = `
	SELECT l.id, l.book_id, b.title, b.location, l.checkout_date, l.due_date
	FROM loans l
	JOIN books b ON b.id = l.book_id
	WHERE l.user_id = $1
	ORDER BY l.id DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.LoanWithBook{}
	for rows.Next() {
		var lw model.LoanWithBook
		if err := rows.Scan(&lw.LoanID, &lw.BookID, &lw.BookTitle, &lw.BookLocation, &lw.CheckoutDate, &lw.DueDate); err != nil {
			return nil, err
		}
		out = append(out, lw)
	}
	return out, rows.Err()
}
