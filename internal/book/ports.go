package book

import "context"

// Repository is the contract for book persistence.
type Repository interface {
	// Insert stores a new book, assigning its id and created timestamp on
	// b. A caller-supplied id is ignored. Returns ErrDuplicateISBN when the
	// isbn collides with an existing record.
	Insert(ctx context.Context, b *Book) error

	// GetByID returns the book with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Book, error)

	// Update overwrites all mutable fields of an existing record. Returns
	// ErrNotFound when the id does not resolve.
	Update(ctx context.Context, b *Book) error

	// Delete removes the record with the given id. Returns ErrNotFound when
	// the id does not resolve.
	Delete(ctx context.Context, id int64) error

	// List returns at most page.Size books at the page's offset, newest
	// first (id descending), plus the total number of rows matching the
	// filter regardless of the window.
	List(ctx context.Context, f Filter, page Page) ([]Book, int64, error)
}
