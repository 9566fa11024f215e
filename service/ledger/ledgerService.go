package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"booklending/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// LoanPeriodDays is the fixed lending period applied at checkout.
const LoanPeriodDays = 14

// errors used by controllers

type ErrCode string

const (
	ErrUserNotFound ErrCode = "USER_NOT_FOUND"
	ErrBookNotFound ErrCode = "BOOK_NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

// Err builds a coded error for the given code.
func Err(c ErrCode) error { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// DueDate computes the fixed due date for a checkout day.
func DueDate(today time.Time) time.Time {
	return today.AddDate(0, 0, LoanPeriodDays)
}

type Repo interface {
	Insert(ctx context.Context, userID, bookID int64, checkout, due time.Time) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]model.LoanWithBook, error)
}

type Service interface {
	// Checkout appends one loan for the member and book, due in
	// LoanPeriodDays. A dangling user or book id fails with
	// USER_NOT_FOUND / BOOK_NOT_FOUND via the store's foreign keys,
	// so there is no check-then-act window.
	Checkout(ctx context.Context, userID, bookID int64, today time.Time) (int64, error)

	// ListForUser returns the member's loans joined with their books,
	// most recent first.
	ListForUser(ctx context.Context, userID int64) ([]model.LoanWithBook, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Checkout(ctx context.Context, userID, bookID int64, today time.Time) (int64, error) {
	id, err := s.r.Insert(ctx, userID, bookID, today, DueDate(today))
	if err != nil {
		if c := mapFKViolation(err); c != "" {
			return 0, Err(c)
		}
		return 0, err
	}
	return id, nil
}

func mapFKViolation(err error) ErrCode {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.ForeignKeyViolation {
		return ""
	}
	cn := strings.ToLower(pgErr.ConstraintName)
	if strings.Contains(cn, "user") {
		return ErrUserNotFound
	}
	if strings.Contains(cn, "book") {
		return ErrBookNotFound
	}
	return ErrBookNotFound
}

func (s *service) ListForUser(ctx context.Context, userID int64) ([]model.LoanWithBook, error) {
	return s.r.ListForUser(ctx, userID)
}
