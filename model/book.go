// model/book.go
package model

type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}
