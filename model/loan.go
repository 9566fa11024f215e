// model/loan.go
package model

import "time"

// Loan is an append-only ledger row. There is no return/renew
// transition; once written a loan never changes.
type Loan struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	BookID       int64      `json:"book_id"`
	CheckoutDate time.Time  `json:"checkout_date"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

// LoanWithBook is the joined view returned by the loans listing.
type LoanWithBook struct {
	LoanID       int64      `json:"loan_id"`
	BookID       int64      `json:"book_id"`
	BookTitle    string     `json:"book_title"`
	BookLocation string     `json:"book_location"`
	CheckoutDate time.Time  `json:"checkout_date"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}
