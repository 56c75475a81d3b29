package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book id does not resolve to a live record.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is returned when an insert collides on the isbn unique
// constraint. Practically unreachable with random token generation, but the
// store surfaces it so callers can tell it apart from other failures.
var ErrDuplicateISBN = errors.New("duplicate isbn")

// Book is the persisted book record. ID and ISBN are assigned by the server
// at creation and never change afterwards. UpdatedAt stays nil until the
// record is replaced for the first time.
type Book struct {
	ID              int64
	Title           string
	Author          string
	Publisher       string
	PublicationYear int
	ISBN            string
	Price           *float64
	Pages           int
	Description     string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
